package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

// cp437Sample is a minimal SIE file in CP437 encoding. The byte 0x94 is
// the CP437 code point for 'ö' and 0x84 for 'ä'.
var cp437Sample = []byte(
	"#FLAGGA 0\r\n" +
		"#FNAMN \"F\x94retaget AB\"\r\n" +
		"#KONTO 1930 \"F\x94retagskonto\"\r\n" +
		"#KONTO 3041 \"F\x94rs\x84ljning\"\r\n")

func TestLoadBytesCP437(t *testing.T) {
	doc, err := New().LoadBytes(context.Background(), "test.se", cp437Sample)
	assert.NoError(t, err)

	assert.Equal(t, "Företaget AB", doc.Company.Name)

	bank, ok := doc.Account("1930")
	assert.True(t, ok)
	assert.Equal(t, "Företagskonto", bank.Name)

	sales, ok := doc.Account("3041")
	assert.True(t, ok)
	assert.Equal(t, "Försäljning", sales.Name)
}

func TestLoadBytesUTF8(t *testing.T) {
	src := []byte("#FNAMN \"Företaget AB\"\n")

	doc, err := New(WithEncoding(EncodingUTF8)).LoadBytes(context.Background(), "test.se", src)
	assert.NoError(t, err)
	assert.Equal(t, "Företaget AB", doc.Company.Name)
}

func TestLoadBytesUnsupportedEncoding(t *testing.T) {
	_, err := New(WithEncoding("latin1")).LoadBytes(context.Background(), "test.se", []byte("#FLAGGA 0"))
	assert.Error(t, err)
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "year.se")
	assert.NoError(t, os.WriteFile(path, cp437Sample, 0600))

	doc, err := New().Load(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, "Företaget AB", doc.Company.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New().Load(context.Background(), filepath.Join(t.TempDir(), "missing.se"))
	assert.Error(t, err)
}

func TestLoadStrictBalance(t *testing.T) {
	src := []byte(
		"#VER A 1 20240115\n" +
			"{\n" +
			"#TRANS 1930 {} 100.00\n" +
			"#TRANS 3041 {} -90.00\n" +
			"}\n")

	// Default mode records the finding.
	doc, err := New(WithEncoding(EncodingUTF8)).LoadBytes(context.Background(), "test.se", src)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(doc.Unbalanced()))

	// Strict mode fails the load.
	_, err = New(WithEncoding(EncodingUTF8), WithStrictBalance()).LoadBytes(context.Background(), "test.se", src)
	assert.Error(t, err)
}
