package epub

import (
	"bytes"
	"strings"
	"testing"
)

// assembleTestPackage builds a package document for the given inputs with
// the fixed test clock.
func assembleTestPackage(t *testing.T, md Metadata, chapters []Chapter, images []ImageResource, styles []StylesheetResource) []byte {
	t.Helper()
	entries, err := buildManifest(md, chapters, images, styles)
	if err != nil {
		t.Fatalf("buildManifest: %v", err)
	}
	doc, err := assemblePackage(DefaultConfig(), md, chapters, entries, testModified)
	if err != nil {
		t.Fatalf("assemblePackage: %v", err)
	}
	return doc
}

func TestAssemblePackageStructure(t *testing.T) {
	md := minimalMetadata()
	md.Cover = "front.jpg"
	chapters := testChapters(2)
	images := []ImageResource{{ID: "map", Path: "map.png"}}

	doc := assembleTestPackage(t, md, chapters, images, nil)
	pkg := parsePackageDoc(t, doc)

	if pkg.Version != "3.0" {
		t.Errorf("version = %q, want 3.0", pkg.Version)
	}
	if pkg.UniqueIdentifier != uniqueIdentifierID {
		t.Errorf("unique-identifier = %q, want %q", pkg.UniqueIdentifier, uniqueIdentifierID)
	}
	if len(pkg.Metadata.Identifiers) != 1 || pkg.Metadata.Identifiers[0].ID != uniqueIdentifierID {
		t.Errorf("identifier anchors = %+v, want one with id %q", pkg.Metadata.Identifiers, uniqueIdentifierID)
	}

	wantIDs := []string{"nav", "cover-image", "style", "chapter1", "chapter2", "map"}
	if len(pkg.Manifest.Items) != len(wantIDs) {
		t.Fatalf("manifest item count = %d, want %d", len(pkg.Manifest.Items), len(wantIDs))
	}
	for i, want := range wantIDs {
		if pkg.Manifest.Items[i].ID != want {
			t.Errorf("manifest item %d id = %q, want %q", i, pkg.Manifest.Items[i].ID, want)
		}
	}

	if pkg.Spine.Toc != "nav" {
		t.Errorf("spine toc = %q, want nav", pkg.Spine.Toc)
	}
	if len(pkg.Spine.ItemRefs) != len(chapters) {
		t.Fatalf("spine length = %d, want %d", len(pkg.Spine.ItemRefs), len(chapters))
	}
	manifestIDs := make(map[string]bool, len(pkg.Manifest.Items))
	for _, item := range pkg.Manifest.Items {
		manifestIDs[item.ID] = true
	}
	for i, ref := range pkg.Spine.ItemRefs {
		if !manifestIDs[ref.IDRef] {
			t.Errorf("spine ref %d (%q) has no manifest item", i, ref.IDRef)
		}
	}

	// Root attributes the parsed structs cannot carry.
	text := string(doc)
	if !strings.Contains(text, `xml:lang="en"`) {
		t.Error("package document missing xml:lang attribute")
	}
	if !strings.Contains(text, `xmlns:dc="http://purl.org/dc/elements/1.1/"`) {
		t.Error("package document missing dc namespace declaration")
	}
	if !strings.Contains(text, "schema: http://schema.org/") {
		t.Error("package document missing schema vocabulary prefix")
	}
}

func TestAssemblePackageEscapesText(t *testing.T) {
	md := minimalMetadata()
	md.Title = `Bed & <Breakfast> "B"`
	md.Author = "A & B"

	doc := assembleTestPackage(t, md, testChapters(1), nil, nil)
	text := string(doc)

	if !strings.Contains(text, "Bed &amp; &lt;Breakfast&gt;") {
		t.Errorf("title not escaped:\n%s", text)
	}
	if !strings.Contains(text, "A &amp; B") {
		t.Errorf("creator not escaped:\n%s", text)
	}

	// Re-parsing must round-trip the original values.
	pkg := parsePackageDoc(t, doc)
	if len(pkg.Metadata.Titles) != 1 || pkg.Metadata.Titles[0] != md.Title {
		t.Errorf("parsed title = %v, want %q", pkg.Metadata.Titles, md.Title)
	}
}

func TestAssemblePackageOmission(t *testing.T) {
	doc := assembleTestPackage(t, minimalMetadata(), testChapters(1), nil, nil)
	pkg := parsePackageDoc(t, doc)

	if len(pkg.Metadata.Creators) != 0 {
		t.Errorf("creators = %v, want none for absent author", pkg.Metadata.Creators)
	}
	if strings.Contains(string(doc), "<dc:creator") {
		t.Error("package document contains an empty creator element")
	}
	if len(pkg.Metadata.Dates) != 1 {
		t.Errorf("dates = %v, want exactly one (empty pass-through)", pkg.Metadata.Dates)
	}
}

func TestAssemblePackageDeterministic(t *testing.T) {
	md := minimalMetadata()
	md.Subjects = []string{"One", "Two"}
	chapters := testChapters(3)

	first := assembleTestPackage(t, md, chapters, nil, nil)
	second := assembleTestPackage(t, md, chapters, nil, nil)
	if !bytes.Equal(first, second) {
		t.Error("identical inputs produced different package documents")
	}
}
