package manifest

// installRDFTemplate is the layout of install.rdf. Target application
// blocks are separated from their neighbours by a single blank line.
const installRDFTemplate = `
<?xml version="1.0" encoding="utf-8"?>
<RDF xmlns="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:em="http://www.mozilla.org/2004/em-rdf#">
  <Description about="urn:mozilla:install-manifest">
    <em:id>{{xml .ID}}</em:id>
    <em:version>{{xml .Version}}</em:version>
    <em:type>{{.Type}}</em:type>
    <em:unpack>{{.Unpack}}</em:unpack>
{{range .Targets}}
    <em:targetApplication>
      <Description>
        <em:id>{{xml .ID}}</em:id>
        <em:minVersion>{{xml .MinVersion}}</em:minVersion>
        <em:maxVersion>{{xml .MaxVersion}}</em:maxVersion>
      </Description>
    </em:targetApplication>
{{end}}
    <em:name>{{xml .Name}}</em:name>
    <em:description>{{xml .Description}}</em:description>
    <em:creator>{{xml .Creator}}</em:creator>
  </Description>
</RDF>
`
