package epub

import (
	"fmt"
	"strconv"
	"strings"
)

// Reserved manifest ids. Caller-supplied resource ids must not collide with
// these.
const (
	navID           = "nav"
	styleID         = "style"
	coverImageID    = "cover-image"
	chapterIDPrefix = "chapter"
)

// chapterID returns the manifest id of the n-th chapter (1-based).
func chapterID(n int) string {
	return chapterIDPrefix + strconv.Itoa(n)
}

// isReservedID reports whether id belongs to the reserved manifest id set:
// nav, style, cover-image, or chapterN for any decimal N.
func isReservedID(id string) bool {
	switch id {
	case navID, styleID, coverImageID:
		return true
	}
	rest, ok := strings.CutPrefix(id, chapterIDPrefix)
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// buildManifest enumerates every archive member that must appear in the
// package manifest, in output order: navigation document, cover image (iff
// a cover is declared), default stylesheet, chapters, images, extra
// stylesheets.
//
// Caller-supplied ids and chapter filenames are validated: empty values,
// reserved ids, and duplicates are rejected with ErrInvalidResourceID.
func buildManifest(md Metadata, chapters []Chapter, images []ImageResource, styles []StylesheetResource) ([]manifestEntry, error) {
	entries := []manifestEntry{
		{ID: navID, Href: navName, MediaType: xhtmlMediaType, Properties: "nav"},
	}

	if md.Cover != "" {
		href, mt, err := locateCover(md.Cover)
		if err != nil {
			return nil, err
		}
		entries = append(entries, manifestEntry{ID: coverImageID, Href: href, MediaType: mt, Properties: "cover-image"})
	}

	entries = append(entries, manifestEntry{ID: styleID, Href: stylesheetHref, MediaType: cssMediaType})

	seenFilenames := make(map[string]bool, len(chapters))
	for i, ch := range chapters {
		if ch.Filename == "" {
			return nil, fmt.Errorf("epub: chapter %d has an empty filename: %w", i+1, ErrInvalidResourceID)
		}
		if seenFilenames[ch.Filename] {
			return nil, fmt.Errorf("epub: duplicate chapter filename %q: %w", ch.Filename, ErrInvalidResourceID)
		}
		seenFilenames[ch.Filename] = true
		entries = append(entries, manifestEntry{
			ID:        chapterID(i + 1),
			Href:      textDir + "/" + ch.Filename,
			MediaType: xhtmlMediaType,
		})
	}

	seenIDs := make(map[string]bool, len(images)+len(styles))
	for _, img := range images {
		if err := validateResourceID(img.ID, seenIDs); err != nil {
			return nil, err
		}
		href, mt, err := locateImage(img.Path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, manifestEntry{ID: img.ID, Href: href, MediaType: mt})
	}
	for _, st := range styles {
		if err := validateResourceID(st.ID, seenIDs); err != nil {
			return nil, err
		}
		entries = append(entries, manifestEntry{ID: st.ID, Href: locateStylesheet(st.Path), MediaType: cssMediaType})
	}

	return entries, nil
}

// validateResourceID checks a caller-supplied id against the reserved set
// and the ids already seen, recording it on success.
func validateResourceID(id string, seen map[string]bool) error {
	if id == "" {
		return fmt.Errorf("epub: resource has an empty id: %w", ErrInvalidResourceID)
	}
	if isReservedID(id) {
		return fmt.Errorf("epub: resource id %q is reserved: %w", id, ErrInvalidResourceID)
	}
	if seen[id] {
		return fmt.Errorf("epub: duplicate resource id %q: %w", id, ErrInvalidResourceID)
	}
	seen[id] = true
	return nil
}
