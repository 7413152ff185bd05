package epub

import "errors"

// Sentinel errors returned by the epub package.
var (
	// ErrArchiveCreate indicates the destination archive could not be
	// opened for writing (invalid path, permissions). Nothing is retained
	// on disk.
	ErrArchiveCreate = errors.New("epub: cannot create archive")

	// ErrUnsupportedImageFormat indicates an image or cover path has a
	// file extension with no known media type. The format is never
	// silently defaulted.
	ErrUnsupportedImageFormat = errors.New("epub: unsupported image format")

	// ErrSourceUnreadable indicates an image or stylesheet source file
	// could not be read while copying it into the archive.
	ErrSourceUnreadable = errors.New("epub: source resource unreadable")

	// ErrInvalidResourceID indicates a caller-supplied resource id or
	// chapter filename is empty, collides with a reserved id
	// (nav, cover-image, style, chapterN), or duplicates another entry.
	ErrInvalidResourceID = errors.New("epub: invalid resource id")

	// ErrGenerationFailed wraps any failure that occurs after the
	// destination archive was created. The partially written archive is
	// removed; errors.Is reports both this sentinel and the underlying
	// cause.
	ErrGenerationFailed = errors.New("epub: generation failed")
)
