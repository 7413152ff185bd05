package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	epub "github.com/thijskuilman/goepub"
)

// bookFile is the declarative YAML description of a publication. Relative
// file paths are interpreted against the book file's directory.
type bookFile struct {
	Title       string   `yaml:"title"`
	Language    string   `yaml:"language"`
	Identifier  string   `yaml:"identifier"`
	Author      string   `yaml:"author"`
	Description string   `yaml:"description"`
	Publisher   string   `yaml:"publisher"`
	Date        string   `yaml:"date"`
	Subjects    []string `yaml:"subjects"`

	AccessModes           []string   `yaml:"access_modes"`
	AccessModesSufficient [][]string `yaml:"access_modes_sufficient"`
	AccessibilityFeatures []string   `yaml:"accessibility_features"`
	AccessibilityHazards  []string   `yaml:"accessibility_hazards"`
	AccessibilitySummary  string     `yaml:"accessibility_summary"`

	CertifiedBy         string   `yaml:"certified_by"`
	CertifierCredential string   `yaml:"certifier_credential"`
	CertifierReport     string   `yaml:"certifier_report"`
	ConformsTo          []string `yaml:"conforms_to"`

	Cover  string `yaml:"cover"`
	Output string `yaml:"output"`

	Chapters    []chapterFile  `yaml:"chapters"`
	Images      []resourceFile `yaml:"images"`
	Stylesheets []resourceFile `yaml:"stylesheets"`
}

// chapterFile describes one chapter of the book file.
type chapterFile struct {
	// Title is the navigation label. Optional; the library falls back to
	// the chapter markup's first heading.
	Title string `yaml:"title"`

	// File is the path of the XHTML content file.
	File string `yaml:"file"`

	// Name is the archive file name under OEBPS/Text/.
	// Defaults to the base name of File.
	Name string `yaml:"name"`
}

// resourceFile describes one image or stylesheet resource.
type resourceFile struct {
	ID   string `yaml:"id"`
	File string `yaml:"file"`
}

// loadBookFile reads and validates a book file. Chapter archive names are
// defaulted from their source file names.
func loadBookFile(path string) (*bookFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read book file: %w", err)
	}

	var bf bookFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parse book file %s: %w", path, err)
	}

	if bf.Title == "" || bf.Language == "" {
		return nil, fmt.Errorf("book file %s: title and language are required", path)
	}
	if len(bf.Chapters) == 0 {
		return nil, fmt.Errorf("book file %s: at least one chapter is required", path)
	}
	for i := range bf.Chapters {
		ch := &bf.Chapters[i]
		if ch.File == "" {
			return nil, fmt.Errorf("book file %s: chapter %d has no file", path, i+1)
		}
		if ch.Name == "" {
			ch.Name = filepath.Base(ch.File)
		}
	}
	for i, img := range bf.Images {
		if img.ID == "" || img.File == "" {
			return nil, fmt.Errorf("book file %s: image %d needs both id and file", path, i+1)
		}
	}
	for i, st := range bf.Stylesheets {
		if st.ID == "" || st.File == "" {
			return nil, fmt.Errorf("book file %s: stylesheet %d needs both id and file", path, i+1)
		}
	}

	return &bf, nil
}

// resolvePaths rebases every relative source path in the book file onto dir.
func (bf *bookFile) resolvePaths(dir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range bf.Chapters {
		bf.Chapters[i].File = resolve(bf.Chapters[i].File)
	}
	for i := range bf.Images {
		bf.Images[i].File = resolve(bf.Images[i].File)
	}
	for i := range bf.Stylesheets {
		bf.Stylesheets[i].File = resolve(bf.Stylesheets[i].File)
	}
	bf.Cover = resolve(bf.Cover)
}

// metadata converts the book file's scalar fields into library metadata.
func (bf *bookFile) metadata() epub.Metadata {
	return epub.Metadata{
		Title:                 bf.Title,
		Language:              bf.Language,
		Identifier:            bf.Identifier,
		Author:                bf.Author,
		Description:           bf.Description,
		Publisher:             bf.Publisher,
		Date:                  bf.Date,
		Subjects:              bf.Subjects,
		AccessModes:           bf.AccessModes,
		AccessModesSufficient: bf.AccessModesSufficient,
		AccessibilityFeatures: bf.AccessibilityFeatures,
		AccessibilityHazards:  bf.AccessibilityHazards,
		AccessibilitySummary:  bf.AccessibilitySummary,
		CertifiedBy:           bf.CertifiedBy,
		CertifierCredential:   bf.CertifierCredential,
		CertifierReport:       bf.CertifierReport,
		ConformsTo:            bf.ConformsTo,
		Cover:                 bf.Cover,
	}
}

// chapterList reads every chapter's content eagerly so that missing source
// files fail before any archive is created.
func (bf *bookFile) chapterList() ([]epub.Chapter, error) {
	chapters := make([]epub.Chapter, 0, len(bf.Chapters))
	for _, ch := range bf.Chapters {
		data, err := os.ReadFile(ch.File)
		if err != nil {
			return nil, fmt.Errorf("read chapter %s: %w", ch.File, err)
		}
		markup := string(data)
		chapters = append(chapters, epub.Chapter{
			Filename: ch.Name,
			Title:    ch.Title,
			Content:  func(string) string { return markup },
		})
	}
	return chapters, nil
}

// imageList converts the book file's image entries.
func (bf *bookFile) imageList() []epub.ImageResource {
	images := make([]epub.ImageResource, 0, len(bf.Images))
	for _, img := range bf.Images {
		images = append(images, epub.ImageResource{ID: img.ID, Path: img.File})
	}
	return images
}

// stylesheetList converts the book file's stylesheet entries.
func (bf *bookFile) stylesheetList() []epub.StylesheetResource {
	styles := make([]epub.StylesheetResource, 0, len(bf.Stylesheets))
	for _, st := range bf.Stylesheets {
		styles = append(styles, epub.StylesheetResource{ID: st.ID, Path: st.File})
	}
	return styles
}
