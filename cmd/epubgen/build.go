package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	epub "github.com/thijskuilman/goepub"
)

func newBuildCommand(newLogger func() *slog.Logger) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "build <book.yaml>",
		Short: "Assemble an EPUB 3 archive from a book file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(newLogger(), args[0], outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination path (overrides the book file's output)")

	return cmd
}

func runBuild(logger *slog.Logger, bookPath, output string) error {
	bf, err := loadBookFile(bookPath)
	if err != nil {
		return err
	}
	bf.resolvePaths(filepath.Dir(bookPath))

	if output == "" {
		output = bf.Output
	}
	if output == "" {
		output = strings.TrimSuffix(filepath.Base(bookPath), filepath.Ext(bookPath)) + ".epub"
	}

	md := bf.metadata()
	if md.Identifier == "" {
		md.Identifier = "urn:uuid:" + uuid.NewString()
		logger.Info("book file has no identifier, generated one", "identifier", md.Identifier)
	}
	if tag, err := language.Parse(md.Language); err == nil {
		md.Language = tag.String()
	} else {
		logger.Warn("language tag not recognized, passing through", "language", md.Language)
	}

	chapters, err := bf.chapterList()
	if err != nil {
		return err
	}

	// Generation owns the destination exclusively for its whole duration;
	// the lock serializes concurrent epubgen runs on the same output.
	lock := flock.New(output + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", output, err)
	}
	if !locked {
		return fmt.Errorf("another build is writing %s", output)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	logger.Info("building archive",
		"output", output,
		"chapters", len(chapters),
		"images", len(bf.Images),
		"stylesheets", len(bf.Stylesheets),
		"cover", md.Cover != "")

	if err := epub.Generate(output, md, chapters, bf.imageList(), bf.stylesheetList()); err != nil {
		return err
	}

	logger.Info("archive complete", "output", output)
	return nil
}
