package output

import (
	"context"
	"io"
	"os"

	"github.com/mook/hippie/internal/domain"
	"github.com/mook/hippie/internal/utils"
)

// StdoutPath selects standard output as the destination
const StdoutPath = "-"

// Writer writes a rendered manifest to stdout or a file
type Writer struct {
	path   string
	force  bool
	dryRun bool
	stdout io.Writer
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Path   string
	Force  bool
	DryRun bool
	Stdout io.Writer
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Path == "" {
		opts.Path = StdoutPath
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	return &Writer{
		path:   opts.Path,
		force:  opts.Force,
		dryRun: opts.DryRun,
		stdout: opts.Stdout,
	}
}

// Write emits the manifest followed by a single newline
func (w *Writer) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := []byte(content + "\n")

	if w.ToStdout() {
		if w.dryRun {
			return nil
		}
		if _, err := w.stdout.Write(data); err != nil {
			return domain.NewWriteError("stdout", err)
		}
		return nil
	}

	path := utils.ExpandHome(w.path)

	if !w.force {
		exists, err := utils.PathExists(path)
		if err != nil {
			return domain.NewWriteError(path, err)
		}
		if exists {
			return domain.NewWriteError(path, domain.ErrOutputExists)
		}
	}

	// Dry run - just return
	if w.dryRun {
		return nil
	}

	if err := utils.EnsureParentDir(path); err != nil {
		return domain.NewWriteError(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return domain.NewWriteError(path, err)
	}

	return nil
}

// ToStdout reports whether the writer targets standard output
func (w *Writer) ToStdout() bool {
	return w.path == StdoutPath
}

// Path returns the destination path, "-" for stdout
func (w *Writer) Path() string {
	return w.path
}
