package parser

// FieldKind classifies a scanned field.
type FieldKind uint8

const (
	// FieldText is a bare or quoted field value.
	FieldText FieldKind = iota
	// FieldOpenBrace is a bare '{' scope delimiter.
	FieldOpenBrace
	// FieldCloseBrace is a bare '}' scope delimiter.
	FieldCloseBrace
)

// String returns a short name for the field kind.
func (k FieldKind) String() string {
	switch k {
	case FieldOpenBrace:
		return "{"
	case FieldCloseBrace:
		return "}"
	default:
		return "TEXT"
	}
}

// Field is one scanned field of a record line. Quoted fields have their
// surrounding quotes removed and escapes resolved.
type Field struct {
	Kind   FieldKind
	Text   string
	Quoted bool
}

// Line is the tokenized form of one source line: the record tag followed
// by its fields. Lines holding a bare scope delimiter carry the delimiter
// as their Tag. A Line with an empty Tag was blank or unrecognized and is
// skipped by the dispatcher.
type Line struct {
	Number int // 1-based source line number
	Tag    string
	Fields []Field
}

// Empty reports whether the line carries no record.
func (l Line) Empty() bool {
	return l.Tag == ""
}

// Text returns the text of field i, or the empty string when the line has
// fewer fields.
func (l Line) Text(i int) string {
	if i < 0 || i >= len(l.Fields) {
		return ""
	}
	return l.Fields[i].Text
}
