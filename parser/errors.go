package parser

import "fmt"

// ParseError is a structural malformation of the input: an unterminated
// quote, a transaction outside a voucher body, a mismatched scope
// delimiter, or an unparsable numeric or date field. It aborts the parse
// immediately; no partial Document is returned.
type ParseError struct {
	Filename string
	Line     int // 1-based source line number
	Message  string
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func newParseError(line int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidationError is a semantic violation detected after structural
// parsing succeeded, such as a deferred override referencing an account
// identifier absent from the document. ID names the offending identifier.
type ValidationError struct {
	ID      string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(id, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		ID:      id,
		Message: fmt.Sprintf(format, args...),
	}
}
