package epub

import (
	"encoding/xml"
	"strings"
	"time"
)

// uniqueIdentifierID is the xml id of the dc:identifier element and the
// value of the package's unique-identifier attribute.
const uniqueIdentifierID = "book-id"

// modifiedTimeLayout is the dcterms:modified format required by EPUB 3:
// UTC, second precision.
const modifiedTimeLayout = "2006-01-02T15:04:05Z"

// metaDecl is a single metadata declaration in the package document.
// XMLName carries the element name (a dc:* element or meta); unused
// attributes are omitted from the output.
type metaDecl struct {
	XMLName  xml.Name
	ID       string `xml:"id,attr,omitempty"`
	Property string `xml:"property,attr,omitempty"`
	Name     string `xml:"name,attr,omitempty"`
	Content  string `xml:"content,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// dcElement builds a Dublin Core declaration such as <dc:creator>.
func dcElement(name, value string) metaDecl {
	return metaDecl{XMLName: xml.Name{Local: "dc:" + name}, Value: value}
}

// metaProperty builds an EPUB 3 <meta property="...">value</meta> declaration.
func metaProperty(property, value string) metaDecl {
	return metaDecl{XMLName: xml.Name{Local: "meta"}, Property: property, Value: value}
}

// renderMetadata converts Metadata into the ordered declaration sequence of
// the package document. The emission order is fixed: it matters for reader
// compatibility and keeps the output deterministic.
//
// renderMetadata never rejects input. Absent optional fields are omissions,
// not errors, and suppress their declaration entirely.
func renderMetadata(md Metadata, modified time.Time) []metaDecl {
	decls := []metaDecl{
		dcElement("title", md.Title),
		dcElement("language", md.Language),
		{XMLName: xml.Name{Local: "dc:identifier"}, ID: uniqueIdentifierID, Value: md.Identifier},
		metaProperty("dcterms:modified", modified.UTC().Format(modifiedTimeLayout)),
	}

	if md.Author != "" {
		decls = append(decls, dcElement("creator", md.Author))
	}
	if md.Description != "" {
		decls = append(decls, dcElement("description", md.Description))
	}
	if md.Publisher != "" {
		decls = append(decls, dcElement("publisher", md.Publisher))
	}

	// The date element is always present, even when the caller supplies an
	// empty string; the value is a pass-through.
	decls = append(decls, dcElement("date", md.Date))

	for _, s := range md.Subjects {
		decls = append(decls, dcElement("subject", s))
	}

	for _, m := range md.AccessModes {
		decls = append(decls, metaProperty("schema:accessMode", m))
	}
	if combo := mostCompleteAccessModeSet(md.AccessModesSufficient); combo != "" {
		decls = append(decls, metaProperty("schema:accessModeSufficient", combo))
	}
	for _, f := range md.AccessibilityFeatures {
		decls = append(decls, metaProperty("schema:accessibilityFeature", f))
	}
	for _, h := range md.AccessibilityHazards {
		decls = append(decls, metaProperty("schema:accessibilityHazard", h))
	}
	if md.AccessibilitySummary != "" {
		decls = append(decls, metaProperty("schema:accessibilitySummary", md.AccessibilitySummary))
	}

	if md.CertifiedBy != "" {
		decls = append(decls, metaProperty("a11y:certifiedBy", md.CertifiedBy))
	}
	if md.CertifierCredential != "" {
		decls = append(decls, metaProperty("a11y:certifierCredential", md.CertifierCredential))
	}
	if md.CertifierReport != "" {
		decls = append(decls, metaProperty("a11y:certifierReport", md.CertifierReport))
	}

	for _, url := range md.ConformsTo {
		decls = append(decls, metaProperty("dcterms:conformsTo", url))
	}

	if md.Cover != "" {
		decls = append(decls, metaDecl{
			XMLName: xml.Name{Local: "meta"},
			Name:    "cover",
			Content: coverImageID,
		})
	}

	return decls
}

// mostCompleteAccessModeSet selects the single most complete combination:
// the one with the greatest member count, comma-joined. Ties resolve to the
// first-encountered maximal combination. Returns "" when no non-empty
// combination exists.
func mostCompleteAccessModeSet(combos [][]string) string {
	var best []string
	for _, c := range combos {
		if len(c) > len(best) {
			best = c
		}
	}
	if len(best) == 0 {
		return ""
	}
	return strings.Join(best, ",")
}
