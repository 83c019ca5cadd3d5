package manifest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"
)

// VersionPrefix is the fixed major.minor.patch part of every version string
const VersionPrefix = "0.0.0"

// DateStampLayout formats the UTC calendar date as YYYYMMDD
const DateStampLayout = "20060102"

var installRDF = template.Must(template.New("install.rdf").
	Funcs(template.FuncMap{"xml": escapeXML}).
	Parse(installRDFTemplate))

// templateData is the value handed to installRDFTemplate
type templateData struct {
	AddOn
	Version string
}

// Version returns 0.0.0.<YYYYMMDD>.<epoch seconds> for the given instant.
// Both time-derived fields come from now converted to UTC.
func Version(now time.Time) string {
	now = now.UTC()
	return VersionPrefix + "." + now.Format(DateStampLayout) + "." + strconv.FormatInt(now.Unix(), 10)
}

// Render renders the install manifest of an add-on at the given instant.
// The result carries no leading or trailing whitespace.
func Render(a AddOn, now time.Time) (string, error) {
	var buf bytes.Buffer
	data := templateData{AddOn: a, Version: Version(now)}
	if err := installRDF.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render manifest: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Generate renders the built-in Hippie manifest at the given instant
func Generate(now time.Time) string {
	doc, err := Render(Hippie(), now)
	if err != nil {
		// The built-in descriptor only holds strings, ints and bools.
		panic(err)
	}
	return doc
}

func escapeXML(s string) (string, error) {
	var buf strings.Builder
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
