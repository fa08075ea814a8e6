package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/forsslund/sie/parser"
)

func TestErrorRendererParseError(t *testing.T) {
	source := []byte("#FLAGGA 0\n#KONTO 1930\n#VALUTA SEK\n")

	_, err := parser.Parse(context.Background(), source)
	assert.Error(t, err)

	var perr *parser.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)

	out := NewErrorRenderer(source, "utf8").Render(err)

	// The message plus the offending line with a caret under it.
	assert.True(t, strings.Contains(out, "#KONTO"))
	assert.True(t, strings.Contains(out, "expected account id and name"))
	assert.True(t, strings.Contains(out, "^"))
}

func TestErrorRendererPlainError(t *testing.T) {
	out := NewErrorRenderer(nil, "utf8").Render(errors.New("something broke"))
	assert.True(t, strings.Contains(out, "something broke"))
	assert.False(t, strings.Contains(out, "^"))
}

func TestErrorRendererCP437Context(t *testing.T) {
	// 0x94 is CP437 for 'ö'; the rendered excerpt must be transcoded.
	source := []byte("#KONTO 1930 \"F\x94retagskonto\n")

	perr := &parser.ParseError{Line: 1, Message: "unterminated quoted field"}
	out := NewErrorRenderer(source, "cp437").Render(perr)
	assert.True(t, strings.Contains(out, "Företagskonto"))
}

func TestRenderAll(t *testing.T) {
	r := NewErrorRenderer(nil, "utf8")

	assert.Equal(t, "", r.RenderAll(nil))

	out := r.RenderAll([]error{errors.New("first"), errors.New("second")})
	assert.True(t, strings.Contains(out, "first"))
	assert.True(t, strings.Contains(out, "second"))
}

func TestCommandError(t *testing.T) {
	err := NewCommandError(2)
	assert.Equal(t, "command failed", err.Error())
	assert.Equal(t, 2, err.ExitCode())
}
