// Package epub provides a pure-Go library for assembling EPUB 3 publication
// containers from in-memory book data.
//
// The package derives a consistent, cross-referenced set of structural
// documents (container pointer, package document, navigation document) and
// writes every resource into a ZIP archive at the paths those documents
// declare. Every id referenced in the spine exists in the manifest, every
// manifest href corresponds to an archive entry actually written, and the
// navigation links resolve to the same files as the chapter manifest entries.
//
// # Generating an EPUB
//
// Use [Generate] to write a complete archive in one call:
//
//	md := epub.Metadata{
//	    Title:      "A Study in Scarlet",
//	    Language:   "en",
//	    Identifier: "urn:isbn:9780000000001",
//	}
//	chapters := []epub.Chapter{{
//	    Filename: "ch1.xhtml",
//	    Title:    "Chapter One",
//	    Content:  func(lang string) string { return renderChapterOne(lang) },
//	}}
//	if err := epub.Generate("scarlet.epub", md, chapters, nil, nil); err != nil {
//	    log.Fatal(err)
//	}
//
// Use [NewWriter] with a [Config] to target a different format version or
// mimetype token.
//
// # All-or-nothing contract
//
// Generation either produces a complete archive or nothing: any failure after
// the destination file was created removes it again and surfaces a single
// error wrapping both [ErrGenerationFailed] and the underlying cause.
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - [ErrArchiveCreate] – the destination cannot be opened for writing
//   - [ErrUnsupportedImageFormat] – an image extension has no known media type
//   - [ErrSourceUnreadable] – an image or stylesheet source cannot be read
//   - [ErrInvalidResourceID] – a caller-supplied id or filename is empty,
//     reserved, or duplicated
//   - [ErrGenerationFailed] – aggregate wrapper for any failure after the
//     archive was created
//
// Absent optional metadata fields are omissions, not errors: the
// corresponding declaration is suppressed entirely.
package epub
