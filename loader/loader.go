// Package loader reads SIE files from disk and hands them to the parser.
//
// The SIE 4B specification mandates CP437 (IBM PC 8-bit extended ASCII)
// as the file encoding, so the loader transcodes to UTF-8 before parsing.
// Files that have already been transcoded can be loaded with
// WithEncoding(EncodingUTF8).
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/charmap"

	"github.com/forsslund/sie/document"
	"github.com/forsslund/sie/parser"
	"github.com/forsslund/sie/telemetry"
)

// Encoding selects how raw file bytes are decoded.
type Encoding string

const (
	// EncodingCP437 is the encoding the SIE standard mandates.
	EncodingCP437 Encoding = "cp437"
	// EncodingUTF8 passes the bytes through untouched.
	EncodingUTF8 Encoding = "utf8"
)

// Loader reads and decodes SIE files.
type Loader struct {
	encoding Encoding
	strict   bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithEncoding overrides the default CP437 decoding.
func WithEncoding(enc Encoding) Option {
	return func(l *Loader) {
		l.encoding = enc
	}
}

// WithStrictBalance propagates strict balance mode to the parser.
func WithStrictBalance() Option {
	return func(l *Loader) {
		l.strict = true
	}
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{encoding: EncodingCP437}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads, decodes and parses the named SIE file.
func (l *Loader) Load(ctx context.Context, filename string) (*document.Document, error) {
	timer := telemetry.FromContext(ctx).Start(fmt.Sprintf("load %s", filepath.Base(filename)))
	defer timer.End()

	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	return l.LoadBytes(ctx, filename, raw)
}

// LoadBytes decodes and parses already-read file contents. The filename is
// only used in error messages.
func (l *Loader) LoadBytes(ctx context.Context, filename string, raw []byte) (*document.Document, error) {
	decoded, err := l.decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	opts := []parser.Option{parser.WithFilename(filename)}
	if l.strict {
		opts = append(opts, parser.WithStrictBalance())
	}

	return parser.ParseString(ctx, decoded, opts...)
}

// decode transcodes raw file bytes into UTF-8 text.
func (l *Loader) decode(raw []byte) (string, error) {
	switch l.encoding {
	case EncodingUTF8:
		return string(raw), nil
	case EncodingCP437:
		decoded, err := charmap.CodePage437.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", l.encoding)
	}
}
