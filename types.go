package epub

// Metadata holds the publication-level book data supplied by the caller.
// Title, Language, and Identifier must be present; every other field is
// optional, and an absent value suppresses the corresponding declaration in
// the package document entirely (no empty elements are ever emitted).
// The package reads these fields but never validates their semantic
// correctness.
type Metadata struct {
	// Title is the dc:title value.
	Title string

	// Language is the publication language as a BCP 47 tag (e.g., "en", "zh-CN").
	Language string

	// Identifier is the unique publication identifier (ISBN, URN, URI).
	// It carries the package's unique-identifier anchor.
	Identifier string

	// Author is the dc:creator value. Empty means no creator declaration.
	Author string

	// Description is the dc:description value.
	Description string

	// Publisher is the dc:publisher value.
	Publisher string

	// Date is the publication date. Unlike the other optional fields it is
	// always emitted, even when empty; the value is a deliberate
	// pass-through from the caller.
	Date string

	// Subjects are emitted as one dc:subject declaration per entry,
	// preserving input order.
	Subjects []string

	// AccessModes lists the ways the content can be consumed
	// (schema:accessMode, e.g. "textual", "visual").
	AccessModes []string

	// AccessModesSufficient lists combinations of access modes that are
	// each sufficient on their own. Exactly one schema:accessModeSufficient
	// declaration is emitted, for the first combination with the greatest
	// member count.
	AccessModesSufficient [][]string

	// AccessibilityFeatures lists schema:accessibilityFeature values.
	AccessibilityFeatures []string

	// AccessibilityHazards lists schema:accessibilityHazard values.
	AccessibilityHazards []string

	// AccessibilitySummary is the schema:accessibilitySummary value.
	AccessibilitySummary string

	// CertifiedBy names the accessibility certifier (a11y:certifiedBy).
	CertifiedBy string

	// CertifierCredential is the certifier's credential (a11y:certifierCredential).
	CertifierCredential string

	// CertifierReport is a URL to the certification report (a11y:certifierReport).
	CertifierReport string

	// ConformsTo lists conformance standard URLs (dcterms:conformsTo).
	ConformsTo []string

	// Cover is the source file path of the cover image. Empty means the
	// publication has no cover.
	Cover string
}

// Chapter is a single content document. The chapter sequence passed to
// Generate is both the reading order and the navigation order; it is never
// reordered.
type Chapter struct {
	// Filename is the archive-stable file name under OEBPS/Text/.
	// Filenames must be unique across all chapters.
	Filename string

	// Title is the navigation label for this chapter. When empty, the
	// label falls back to the first title or heading found in the rendered
	// markup, then to Filename.
	Title string

	// Content renders the full XHTML markup for the given language code.
	// The result is treated as an opaque, already-valid markup blob and
	// written into the archive verbatim.
	Content func(language string) string
}

// ImageResource is an image file copied into the archive under OEBPS/Images/.
type ImageResource struct {
	// ID is the caller-assigned manifest id. Ids must be unique across all
	// resources and must not collide with the reserved ids
	// (nav, cover-image, style, chapterN).
	ID string

	// Path is the source file path. The base name becomes the archive
	// name; the lower-cased extension determines the media type.
	Path string
}

// StylesheetResource is an extra CSS file copied into the archive under
// OEBPS/Styles/.
type StylesheetResource struct {
	// ID is the caller-assigned manifest id (same rules as ImageResource.ID).
	ID string

	// Path is the source file path.
	Path string
}

// Config carries the closed set of format constants used by a Writer, so
// multiple target-format versions could coexist.
type Config struct {
	// Version is the package document version token (e.g., "3.0").
	Version string

	// Mimetype is the literal content of the archive's mimetype entry.
	Mimetype string
}

// DefaultConfig returns the EPUB 3 configuration used by the package-level
// Generate function.
func DefaultConfig() Config {
	return Config{
		Version:  "3.0",
		Mimetype: mimetypeContent,
	}
}

// manifestEntry is one <item> of the package manifest. Entries are derived
// once per generation call, consumed immediately by serialization, and
// discarded after.
type manifestEntry struct {
	// ID is the manifest item id.
	ID string

	// Href is the resource path relative to the package document.
	Href string

	// MediaType is the MIME type of the resource.
	MediaType string

	// Properties holds the special properties token ("nav", "cover-image"),
	// empty for ordinary entries.
	Properties string
}

// spineEntry is an ordered reference to a chapter's manifest id, 1:1 with
// the chapter sequence in the same order.
type spineEntry struct {
	// IDRef is the referenced manifest item id.
	IDRef string
}
