package epub

import (
	"fmt"
	"path/filepath"
	"strings"
)

// imageMediaTypes maps lower-cased image file extensions to their MIME
// types. Extensions outside this map are rejected, never guessed.
var imageMediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
}

// cssMediaType is the media type of every stylesheet entry.
const cssMediaType = "text/css"

// xhtmlMediaType is the media type of the navigation document and every
// chapter entry.
const xhtmlMediaType = "application/xhtml+xml"

// imageMediaType derives the MIME type from the lower-cased extension of
// path. Unrecognized extensions return ErrUnsupportedImageFormat.
func imageMediaType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mt, ok := imageMediaTypes[ext]
	if !ok {
		return "", fmt.Errorf("epub: image %s: no media type for extension %q: %w", path, ext, ErrUnsupportedImageFormat)
	}
	return mt, nil
}

// locateImage derives the package-relative href and media type for an image
// source path. The archive name is the source file's base name under Images/.
func locateImage(path string) (href, mediaType string, err error) {
	mt, err := imageMediaType(path)
	if err != nil {
		return "", "", err
	}
	return imagesDir + "/" + filepath.Base(path), mt, nil
}

// locateStylesheet derives the package-relative href for a stylesheet
// source path: the base name under Styles/.
func locateStylesheet(path string) string {
	return stylesDir + "/" + filepath.Base(path)
}

// locateCover derives the href and media type for the cover image. The
// archive name is always Images/cover<ext> regardless of the source base
// name, so exactly one cover entry can ever exist.
func locateCover(path string) (href, mediaType string, err error) {
	mt, err := imageMediaType(path)
	if err != nil {
		return "", "", err
	}
	ext := strings.ToLower(filepath.Ext(path))
	return imagesDir + "/cover" + ext, mt, nil
}
