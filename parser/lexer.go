package parser

// The field tokenizer. SIE is line oriented: every record is a single line
// starting with a #TAG, followed by whitespace-separated fields that may be
// double-quoted to embed spaces. The bare tokens '{' and '}' delimit
// voucher bodies and are recognized as scope delimiters wherever they
// appear, never as ordinary fields.

// ScanLine tokenizes one decoded line. Blank lines and lines that do not
// start with '#', '{' or '}' yield an empty Line and are skipped. An
// unterminated quoted field is a ParseError carrying the line number.
func ScanLine(raw string, number int) (Line, error) {
	s := scanner{src: raw, line: number}
	s.skipSpace()

	if s.eof() {
		return Line{Number: number}, nil
	}

	ln := Line{Number: number}

	switch ch := s.peek(); {
	case ch == '{':
		s.pos++
		ln.Tag = "{"
	case ch == '}':
		s.pos++
		ln.Tag = "}"
	case ch == '#':
		ln.Tag = s.scanBare()
	default:
		// Unrecognized leading symbol; tolerated and skipped.
		return Line{Number: number}, nil
	}

	for {
		s.skipSpace()
		if s.eof() {
			return ln, nil
		}

		switch ch := s.peek(); ch {
		case '{':
			s.pos++
			ln.Fields = append(ln.Fields, Field{Kind: FieldOpenBrace, Text: "{"})
		case '}':
			s.pos++
			ln.Fields = append(ln.Fields, Field{Kind: FieldCloseBrace, Text: "}"})
		case '"':
			text, err := s.scanQuoted()
			if err != nil {
				return Line{}, err
			}
			ln.Fields = append(ln.Fields, Field{Kind: FieldText, Text: text, Quoted: true})
		default:
			ln.Fields = append(ln.Fields, Field{Kind: FieldText, Text: s.scanBare()})
		}
	}
}

// scanner walks a single line byte by byte.
type scanner struct {
	src  string
	pos  int
	line int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		ch := s.src[s.pos]
		if ch != ' ' && ch != '\t' && ch != '\r' {
			break
		}
		s.pos++
	}
}

// scanBare scans an unquoted token. Bare tokens end at whitespace, a
// quote, or a scope delimiter, so "{}" splits into two delimiter fields.
func (s *scanner) scanBare() string {
	start := s.pos
	for !s.eof() {
		ch := s.src[s.pos]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '"' || ch == '{' || ch == '}' {
			break
		}
		s.pos++
	}
	return s.src[start:s.pos]
}

// scanQuoted scans a double-quoted field, resolving backslash escapes.
// The closing quote is required.
func (s *scanner) scanQuoted() (string, error) {
	s.pos++ // opening quote

	var buf []byte
	for !s.eof() {
		ch := s.src[s.pos]
		switch ch {
		case '"':
			s.pos++
			return string(buf), nil
		case '\\':
			if s.pos+1 < len(s.src) {
				s.pos++
				buf = append(buf, s.src[s.pos])
				s.pos++
				continue
			}
			s.pos++
		default:
			buf = append(buf, ch)
			s.pos++
		}
	}

	return "", newParseError(s.line, "unterminated quoted field")
}
