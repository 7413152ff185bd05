package epub

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testModified is the fixed clock value used for deterministic documents.
var testModified = time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)

// testWriter returns a Writer with a fixed clock.
func testWriter(t *testing.T) *Writer {
	t.Helper()
	w := NewWriter(DefaultConfig())
	w.now = func() time.Time { return testModified }
	return w
}

// minimalMetadata returns the smallest valid Metadata.
func minimalMetadata() Metadata {
	return Metadata{Title: "T", Language: "en", Identifier: "id1"}
}

// chapterMarkup is a minimal XHTML chapter document used across tests.
const chapterMarkup = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml"><head><title>c</title></head><body><p>text</p></body></html>`

// staticChapter builds a chapter whose renderer ignores the language code.
func staticChapter(filename, title, markup string) Chapter {
	return Chapter{
		Filename: filename,
		Title:    title,
		Content:  func(string) string { return markup },
	}
}

// writeTestFile writes content to name under a fresh temp dir and returns
// the file path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("writeTestFile %s: %v", name, err)
	}
	return p
}

// generateTestEPub runs Generate with a fixed clock into a temp destination
// and returns the destination path. It calls t.Fatal on any error.
func generateTestEPub(t *testing.T, md Metadata, chapters []Chapter, images []ImageResource, styles []StylesheetResource) string {
	t.Helper()
	dest := filepath.Join(t.TempDir(), "book.epub")
	if err := testWriter(t).Generate(dest, md, chapters, images, styles); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return dest
}

// readArchive opens a generated archive and returns entry contents keyed by
// path plus the entry order.
func readArchive(t *testing.T, path string) (map[string][]byte, []string) {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("readArchive: open %s: %v", path, err)
	}
	defer zr.Close()

	files := make(map[string][]byte, len(zr.File))
	order := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("readArchive: open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("readArchive: read entry %s: %v", f.Name, err)
		}
		files[f.Name] = data
		order = append(order, f.Name)
	}
	return files, order
}

// parsedPackage and friends re-parse generated package documents so tests
// can assert referential consistency rather than compare raw strings.
type parsedPackage struct {
	XMLName          xml.Name       `xml:"package"`
	Version          string         `xml:"version,attr"`
	UniqueIdentifier string         `xml:"unique-identifier,attr"`
	Metadata         parsedMetadata `xml:"metadata"`
	Manifest         parsedManifest `xml:"manifest"`
	Spine            parsedSpine    `xml:"spine"`
}

type parsedMetadata struct {
	Titles      []string           `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creators    []string           `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Languages   []string           `xml:"http://purl.org/dc/elements/1.1/ language"`
	Identifiers []parsedIdentifier `xml:"http://purl.org/dc/elements/1.1/ identifier"`
	Dates       []string           `xml:"http://purl.org/dc/elements/1.1/ date"`
	Subjects    []string           `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Metas       []parsedMeta       `xml:"meta"`
}

type parsedIdentifier struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type parsedMeta struct {
	Property string `xml:"property,attr"`
	Name     string `xml:"name,attr"`
	Content  string `xml:"content,attr"`
	Value    string `xml:",chardata"`
}

type parsedManifest struct {
	Items []parsedItem `xml:"item"`
}

type parsedItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr"`
}

type parsedSpine struct {
	Toc      string          `xml:"toc,attr"`
	ItemRefs []parsedItemRef `xml:"itemref"`
}

type parsedItemRef struct {
	IDRef string `xml:"idref,attr"`
}

// parsePackageDoc unmarshals a serialized package document.
func parsePackageDoc(t *testing.T, data []byte) parsedPackage {
	t.Helper()
	var pkg parsedPackage
	if err := xml.Unmarshal(data, &pkg); err != nil {
		t.Fatalf("parsePackageDoc: %v", err)
	}
	return pkg
}

// parsedNav re-parses a generated navigation document.
type parsedNav struct {
	XMLName xml.Name        `xml:"html"`
	Title   string          `xml:"head>title"`
	Links   []parsedNavLink `xml:"body>nav>ol>li>a"`
}

type parsedNavLink struct {
	Href  string `xml:"href,attr"`
	Label string `xml:",chardata"`
}

// parseNavDoc unmarshals a serialized navigation document.
func parseNavDoc(t *testing.T, data []byte) parsedNav {
	t.Helper()
	var nav parsedNav
	if err := xml.Unmarshal(data, &nav); err != nil {
		t.Fatalf("parseNavDoc: %v", err)
	}
	return nav
}
