package output

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mook/hippie/internal/domain"
)

const sample = "<RDF>\n</RDF>"

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestNewWriter_Defaults(t *testing.T) {
	w := NewWriter(WriterOptions{})

	assert.True(t, w.ToStdout())
	assert.Equal(t, StdoutPath, w.Path())
}

func TestWriter_Write_Stdout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterOptions{Stdout: &buf})

	err := w.Write(context.Background(), sample)

	require.NoError(t, err)
	assert.Equal(t, sample+"\n", buf.String())
}

func TestWriter_Write_StdoutDryRun(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterOptions{Stdout: &buf, DryRun: true})

	require.NoError(t, w.Write(context.Background(), sample))
	assert.Empty(t, buf.String())
}

func TestWriter_Write_StdoutFailure(t *testing.T) {
	w := NewWriter(WriterOptions{Stdout: failingWriter{}})

	err := w.Write(context.Background(), sample)

	assert.ErrorIs(t, err, domain.ErrWriteFailed)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestWriter_Write_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "install.rdf")
	w := NewWriter(WriterOptions{Path: path})

	require.NoError(t, w.Write(context.Background(), sample))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sample+"\n", string(data))
}

func TestWriter_Write_FileExists(t *testing.T) {
	tests := []struct {
		name     string
		force    bool
		dryRun   bool
		wantErr  error
		wantData string
	}{
		{
			name:     "refuses to overwrite",
			wantErr:  domain.ErrOutputExists,
			wantData: "old",
		},
		{
			name:     "force overwrites",
			force:    true,
			wantData: sample + "\n",
		},
		{
			name:     "force with dry run keeps file",
			force:    true,
			dryRun:   true,
			wantData: "old",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "install.rdf")
			require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

			w := NewWriter(WriterOptions{Path: path, Force: tt.force, DryRun: tt.dryRun})
			err := w.Write(context.Background(), sample)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrWriteFailed)
			} else {
				assert.NoError(t, err)
			}

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantData, string(data))
		})
	}
}

func TestWriter_Write_FileDryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.rdf")
	w := NewWriter(WriterOptions{Path: path, DryRun: true})

	require.NoError(t, w.Write(context.Background(), sample))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_Write_Cancelled(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterOptions{Stdout: &buf})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Write(ctx, sample)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestWriter_Write_StatFailureIsReported(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "build")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))
	path := filepath.Join(blocker, "install.rdf")

	err := NewWriter(WriterOptions{Path: path}).Write(context.Background(), sample)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWriteFailed)
	assert.NotErrorIs(t, err, domain.ErrOutputExists)
}
