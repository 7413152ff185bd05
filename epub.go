package epub

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
)

// Writer assembles EPUB 3 containers using a fixed Config.
//
// A Writer is stateless across calls and safe for concurrent use, but the
// destination archive of one Generate invocation is exclusively owned for
// the invocation's whole duration: callers must serialize access to the
// same destination path.
type Writer struct {
	cfg Config

	// now supplies the dcterms:modified timestamp; overridden in tests
	// for deterministic output.
	now func() time.Time
}

// NewWriter returns a Writer using cfg. Zero-valued Config fields fall back
// to their DefaultConfig values.
func NewWriter(cfg Config) *Writer {
	def := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = def.Version
	}
	if cfg.Mimetype == "" {
		cfg.Mimetype = def.Mimetype
	}
	return &Writer{cfg: cfg, now: time.Now}
}

// Generate writes a complete EPUB 3 container to dest using DefaultConfig.
// See (*Writer).Generate for the contract.
func Generate(dest string, md Metadata, chapters []Chapter, images []ImageResource, styles []StylesheetResource) error {
	return NewWriter(DefaultConfig()).Generate(dest, md, chapters, images, styles)
}

// Generate assembles the publication into a single archive at dest.
//
// The operation is synchronous and all-or-nothing. When the destination
// cannot be created, the returned error wraps ErrArchiveCreate and nothing
// is retained. Any later failure removes the partially written file and
// returns a single error wrapping both ErrGenerationFailed and the
// underlying cause. No failure is retried.
func (w *Writer) Generate(dest string, md Metadata, chapters []Chapter, images []ImageResource, styles []StylesheetResource) error {
	ar, err := createArchive(dest)
	if err != nil {
		return fmt.Errorf("epub: create archive %s: %w: %w", dest, ErrArchiveCreate, err)
	}

	if err := w.write(ar, md, chapters, images, styles); err != nil {
		err = fmt.Errorf("epub: generate %s: %w: %w", dest, ErrGenerationFailed, err)
		return multierr.Append(err, ar.discard())
	}

	if err := ar.close(); err != nil {
		err = fmt.Errorf("epub: generate %s: %w: %w", dest, ErrGenerationFailed, err)
		if rmErr := os.Remove(dest); rmErr != nil {
			err = multierr.Append(err, rmErr)
		}
		return err
	}
	return nil
}

// write performs the ordered archive writes. The manifest is derived first
// so that each written path matches an href the package document declares.
func (w *Writer) write(ar *archiveWriter, md Metadata, chapters []Chapter, images []ImageResource, styles []StylesheetResource) error {
	entries, err := buildManifest(md, chapters, images, styles)
	if err != nil {
		return err
	}

	// The mimetype entry must be the first archive member, stored.
	if err := ar.addStored(mimetypePath, []byte(w.cfg.Mimetype)); err != nil {
		return err
	}
	if err := ar.add(containerPath, []byte(containerXML)); err != nil {
		return err
	}

	pkg, err := assemblePackage(w.cfg, md, chapters, entries, w.now())
	if err != nil {
		return err
	}
	if err := ar.add(opfPath, pkg); err != nil {
		return err
	}

	nav, err := buildNav(md, chapters)
	if err != nil {
		return err
	}
	if err := ar.add(navPath, nav); err != nil {
		return err
	}

	for i, ch := range chapters {
		if ch.Content == nil {
			return fmt.Errorf("epub: chapter %d (%s) has no content renderer", i+1, ch.Filename)
		}
		markup := ch.Content(md.Language)
		if err := ar.add(rootDir+"/"+textDir+"/"+ch.Filename, []byte(markup)); err != nil {
			return err
		}
	}

	if err := ar.add(rootDir+"/"+stylesheetHref, []byte(defaultStylesheet)); err != nil {
		return err
	}

	for _, img := range images {
		href, _, err := locateImage(img.Path)
		if err != nil {
			return err
		}
		if err := ar.addFile(rootDir+"/"+href, img.Path); err != nil {
			return err
		}
	}
	for _, st := range styles {
		if err := ar.addFile(rootDir+"/"+locateStylesheet(st.Path), st.Path); err != nil {
			return err
		}
	}

	// The cover is written last, at its reserved path.
	if md.Cover != "" {
		href, _, err := locateCover(md.Cover)
		if err != nil {
			return err
		}
		if err := ar.addFile(rootDir+"/"+href, md.Cover); err != nil {
			return err
		}
	}

	return nil
}
