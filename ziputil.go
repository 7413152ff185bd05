package epub

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
)

// archiveWriter wraps an archive/zip writer over a destination file.
// Entries appear in the archive strictly in call order; the EPUB container
// format requires the mimetype entry first and stored uncompressed.
type archiveWriter struct {
	path string
	file *os.File
	zw   *zip.Writer
}

// createArchive creates the destination file and returns an archiveWriter
// over it.
func createArchive(path string) (*archiveWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &archiveWriter{
		path: path,
		file: f,
		zw:   zip.NewWriter(f),
	}, nil
}

// addStored writes an entry without compression.
func (a *archiveWriter) addStored(name string, data []byte) error {
	w, err := a.zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
	if err != nil {
		return fmt.Errorf("epub: create archive entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("epub: write archive entry %s: %w", name, err)
	}
	return nil
}

// add writes a deflate-compressed entry.
func (a *archiveWriter) add(name string, data []byte) error {
	w, err := a.zw.Create(name)
	if err != nil {
		return fmt.Errorf("epub: create archive entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("epub: write archive entry %s: %w", name, err)
	}
	return nil
}

// addFile copies a file-system file into the archive at name. A source
// that cannot be opened surfaces ErrSourceUnreadable.
func (a *archiveWriter) addFile(name, src string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("epub: open source %s: %w: %w", src, ErrSourceUnreadable, err)
	}
	defer f.Close()

	w, err := a.zw.Create(name)
	if err != nil {
		return fmt.Errorf("epub: create archive entry %s: %w", name, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("epub: copy %s into archive entry %s: %w", src, name, err)
	}
	return nil
}

// close finalizes the archive and closes the destination file.
func (a *archiveWriter) close() error {
	return multierr.Append(a.zw.Close(), a.file.Close())
}

// discard abandons a partially written archive: the writer and file are
// closed and the destination file is removed.
func (a *archiveWriter) discard() error {
	err := multierr.Append(a.zw.Close(), a.file.Close())
	if rmErr := os.Remove(a.path); rmErr != nil {
		err = multierr.Append(err, rmErr)
	}
	return err
}
