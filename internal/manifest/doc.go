// Package manifest renders the install.rdf descriptor of a Mozilla add-on.
// The version string of every rendered manifest carries the UTC date stamp
// and the unix epoch seconds of a single instant supplied by the caller.
//
// # Output
//
// For the built-in Hippie add-on the rendered document looks like:
//
//	<?xml version="1.0" encoding="utf-8"?>
//	<RDF xmlns="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:em="http://www.mozilla.org/2004/em-rdf#">
//	  <Description about="urn:mozilla:install-manifest">
//	    <em:id>hippie@mook.github.io</em:id>
//	    <em:version>0.0.0.20240305.1709596800</em:version>
//	    ...
//
// # Usage
//
// Render the built-in add-on:
//
//	doc := manifest.Generate(time.Now())
//
// Render an add-on described in a YAML or JSON file:
//
//	loader := manifest.NewLoader()
//	addon, err := loader.Load("addon.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := manifest.Render(*addon, time.Now())
//
// # Error Handling
//
// The package defines sentinel errors for descriptor loading:
//   - ErrFileNotFound: descriptor file does not exist
//   - ErrInvalidFormat: file is not valid YAML/JSON
//   - ErrUnsupportedExt: unsupported file extension
//   - ErrNoTargets: descriptor declares no target application
//   - ErrInvalidDescriptor: a required descriptor field is missing
package manifest
