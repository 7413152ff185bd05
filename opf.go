package epub

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"
)

// Namespaces and vocabulary prefixes declared by the package document.
const (
	opfNamespace = "http://www.idpf.org/2007/opf"
	dcNamespace  = "http://purl.org/dc/elements/1.1/"

	// packagePrefixes declares the schema.org accessibility and a11y
	// certification vocabularies used by the metadata block.
	packagePrefixes = "schema: http://schema.org/ a11y: http://www.idpf.org/epub/vocab/package/a11y/#"
)

// opfPackage is the root <package> element of the package document.
type opfPackage struct {
	XMLName          xml.Name    `xml:"package"`
	Xmlns            string      `xml:"xmlns,attr"`
	Version          string      `xml:"version,attr"`
	UniqueIdentifier string      `xml:"unique-identifier,attr"`
	Prefix           string      `xml:"prefix,attr"`
	Lang             string      `xml:"xml:lang,attr"`
	Metadata         opfMetadata `xml:"metadata"`
	Manifest         opfManifest `xml:"manifest"`
	Spine            opfSpine    `xml:"spine"`
}

// opfMetadata wraps the <metadata> element. Each declaration carries its
// own element name, so the renderer's emission order is the document order.
type opfMetadata struct {
	XmlnsDC string `xml:"xmlns:dc,attr"`
	Decls   []metaDecl
}

// opfManifest wraps the <manifest> element.
type opfManifest struct {
	Items []opfItem `xml:"item"`
}

// opfItem represents a single <item> in the manifest.
type opfItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr,omitempty"`
}

// opfSpine wraps the <spine> element.
type opfSpine struct {
	Toc      string       `xml:"toc,attr"`
	ItemRefs []opfItemRef `xml:"itemref"`
}

// opfItemRef represents a single <itemref> in the spine.
type opfItemRef struct {
	IDRef string `xml:"idref,attr"`
}

// assemblePackage composes the metadata, manifest, and spine blocks into
// one serialized package document. Element order is fixed; the manifest
// entries must already be validated.
func assemblePackage(cfg Config, md Metadata, chapters []Chapter, entries []manifestEntry, modified time.Time) ([]byte, error) {
	items := make([]opfItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, opfItem{
			ID:         e.ID,
			Href:       e.Href,
			MediaType:  e.MediaType,
			Properties: e.Properties,
		})
	}

	spine := buildSpine(chapters)
	refs := make([]opfItemRef, 0, len(spine))
	for _, s := range spine {
		refs = append(refs, opfItemRef{IDRef: s.IDRef})
	}

	pkg := opfPackage{
		Xmlns:            opfNamespace,
		Version:          cfg.Version,
		UniqueIdentifier: uniqueIdentifierID,
		Prefix:           packagePrefixes,
		Lang:             md.Language,
		Metadata: opfMetadata{
			XmlnsDC: dcNamespace,
			Decls:   renderMetadata(md, modified),
		},
		Manifest: opfManifest{Items: items},
		Spine:    opfSpine{Toc: navID, ItemRefs: refs},
	}

	return marshalDocument(pkg, xml.Header)
}

// marshalDocument serializes doc with two-space indentation, prefixed with
// header and terminated by a newline.
func marshalDocument(doc any, header string) ([]byte, error) {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("epub: serialize document: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.Write(out)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
