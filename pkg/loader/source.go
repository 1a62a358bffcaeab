package loader

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/tabread/internal/namegen"
	"github.com/leapstack-labs/tabread/internal/textenc"
)

// rowSource acquires the decoded character stream for one load. It is the
// only part of the pipeline that differs between the file and text loader
// variants.
type rowSource interface {
	// open returns the decoded UTF-8 stream and a closer for the
	// underlying resource. The closer is never nil.
	open(encodingLabel string) (io.Reader, io.Closer, error)

	// meta returns the attributes available to name templates.
	meta() namegen.Metadata

	// describe returns the source description used in errors and logs.
	describe() string

	// kind reports "file" or "text".
	kind() string
}

// fileSource reads a CSV file, resolving its encoding first.
type fileSource struct {
	path string
}

func (s *fileSource) open(encodingLabel string) (io.Reader, io.Closer, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, &ValidationError{Source: s.path, Reason: err.Error()}
	}

	enc, r, err := textenc.Resolve(f, encodingLabel)
	if err != nil {
		_ = f.Close()
		return nil, nil, &ValidationError{Source: s.path, Reason: err.Error()}
	}
	return textenc.NewReader(r, enc), f, nil
}

func (s *fileSource) meta() namegen.Metadata {
	base := filepath.Base(s.path)
	return namegen.Metadata{
		Format:   formatNameCSV,
		Filename: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

func (s *fileSource) describe() string { return s.path }

func (s *fileSource) kind() string { return "file" }

// textSource reads an in-memory blob that is already decoded text.
// Leading and trailing whitespace is trimmed before tokenizing.
type textSource struct {
	text string
}

func (s *textSource) open(string) (io.Reader, io.Closer, error) {
	return strings.NewReader(strings.TrimSpace(s.text)), noopCloser{}, nil
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

func (s *textSource) meta() namegen.Metadata {
	return namegen.Metadata{Format: formatNameCSV}
}

func (s *textSource) describe() string { return "(text)" }

func (s *textSource) kind() string { return "text" }
