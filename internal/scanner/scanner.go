package scanner

import (
	"bufio"
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
)

// Code heavily inspired by the influxdata/influxql repository
// https://github.com/influxdata/influxql/blob/57f403b00b124eb900835c0c944e9b60d848db5e/scanner.go#L12

var (
	errBadString = errors.New("bad string")
	errBadEscape = errors.New("bad escape")
)

// Scanner represents a lexical scanner for the pipeline language.
type Scanner struct {
	r *reader
}

// NewScanner returns a new instance of Scanner.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: &reader{r: bufio.NewReaderSize(r, 128)}}
}

// Scan returns the next token and position from the underlying reader.
// Also returns the literal text read for identifiers, variables, strings and numbers
// since these token types can have different literal representations.
func (s *Scanner) Scan() TokenInfo {
	ti := s.scan()
	ti.End = s.r.nextPos()
	return ti
}

func (s *Scanner) scan() TokenInfo {
	// Read next code point.
	ch0, pos := s.r.read()

	// If we see whitespace then consume all contiguous whitespace.
	// If we see a letter, or certain acceptable special characters, then consume
	// as an ident or reserved word.
	if isWhitespace(ch0) {
		return s.scanWhitespace()
	} else if isIdentFirstChar(ch0) {
		s.r.unread()
		return s.scanIdent(true)
	} else if isDigit(ch0) {
		return s.scanNumber()
	}

	// Otherwise parse individual characters.
	switch ch0 {
	case eof:
		return TokenInfo{Tok: EOF, Pos: pos}
	case '\n':
		return TokenInfo{Tok: NEWLINE, Pos: pos}
	case '#':
		s.skipUntilNewline()
		return TokenInfo{Tok: COMMENT, Pos: pos}
	case '"', '\'':
		return s.scanString()
	case '$':
		ch1, _ := s.r.read()
		s.r.unread()
		if !isIdentFirstChar(ch1) {
			return TokenInfo{Tok: ILLEGAL, Pos: pos, Lit: "$"}
		}
		ti := s.scanIdent(false)
		return TokenInfo{Tok: VARIABLE, Pos: pos, Lit: ti.Lit}
	case '.':
		ch1, _ := s.r.read()
		s.r.unread()
		if isDigit(ch1) {
			return s.scanNumber()
		}
		return TokenInfo{Tok: DOT, Pos: pos}
	case '+':
		return TokenInfo{Tok: ADD, Pos: pos}
	case '-':
		ch1, _ := s.r.read()
		if isDigit(ch1) {
			s.r.unread()
			return s.scanNumber()
		}
		s.r.unread()
		return TokenInfo{Tok: SUB, Pos: pos}
	case '*':
		return TokenInfo{Tok: MUL, Pos: pos}
	case '/':
		return TokenInfo{Tok: DIV, Pos: pos}
	case '%':
		return TokenInfo{Tok: MOD, Pos: pos}
	case '&':
		if ch1, _ := s.r.read(); ch1 == '&' {
			return TokenInfo{Tok: AND, Pos: pos}
		}
		s.r.unread()
	case '|':
		if ch1, _ := s.r.read(); ch1 == '|' {
			return TokenInfo{Tok: OR, Pos: pos}
		}
		s.r.unread()
		return TokenInfo{Tok: PIPE, Pos: pos}
	case '=':
		if ch1, _ := s.r.read(); ch1 == '=' {
			return TokenInfo{Tok: EQ, Pos: pos}
		}
		s.r.unread()
	case '!':
		if ch1, _ := s.r.read(); ch1 == '=' {
			return TokenInfo{Tok: NEQ, Pos: pos}
		}
		s.r.unread()
		return TokenInfo{Tok: NOT, Pos: pos}
	case '>':
		if ch1, _ := s.r.read(); ch1 == '=' {
			return TokenInfo{Tok: GTE, Pos: pos}
		}
		s.r.unread()
		return TokenInfo{Tok: GT, Pos: pos}
	case '<':
		if ch1, _ := s.r.read(); ch1 == '=' {
			return TokenInfo{Tok: LTE, Pos: pos}
		}
		s.r.unread()
		return TokenInfo{Tok: LT, Pos: pos}
	case '(':
		return TokenInfo{Tok: LPAREN, Pos: pos}
	case ')':
		return TokenInfo{Tok: RPAREN, Pos: pos}
	case '{':
		return TokenInfo{Tok: LBRACKET, Pos: pos}
	case '}':
		return TokenInfo{Tok: RBRACKET, Pos: pos}
	case '[':
		return TokenInfo{Tok: LSBRACKET, Pos: pos}
	case ']':
		return TokenInfo{Tok: RSBRACKET, Pos: pos}
	case ',':
		return TokenInfo{Tok: COMMA, Pos: pos}
	case ';':
		return TokenInfo{Tok: SEMICOLON, Pos: pos}
	}

	return TokenInfo{Tok: ILLEGAL, Pos: pos, Lit: string(ch0)}
}

// scanWhitespace consumes the current rune and all contiguous whitespace.
func (s *Scanner) scanWhitespace() TokenInfo {
	// Create a buffer and read the current character into it.
	var buf bytes.Buffer
	ch, pos := s.r.curr()
	_, _ = buf.WriteRune(ch)

	// Read every subsequent whitespace character into the buffer.
	// Non-whitespace characters and EOF will cause the loop to exit.
	for {
		ch, _ = s.r.read()
		if ch == eof {
			break
		} else if !isWhitespace(ch) {
			s.r.unread()
			break
		} else {
			_, _ = buf.WriteRune(ch)
		}
	}

	return TokenInfo{Tok: WS, Pos: pos, Lit: buf.String()}
}

// skipUntilNewline skips characters until it reaches a newline, which is left unread.
func (s *Scanner) skipUntilNewline() {
	for {
		ch, _ := s.r.read()
		if ch == eof {
			return
		}
		if ch == '\n' {
			s.r.unread()
			return
		}
	}
}

func (s *Scanner) scanIdent(lookup bool) TokenInfo {
	// Save the starting position of the identifier.
	_, pos := s.r.read()
	s.r.unread()

	var buf bytes.Buffer
	for {
		ch, _ := s.r.read()
		if ch == eof || !isIdentChar(ch) {
			s.r.unread()
			break
		}
		_, _ = buf.WriteRune(ch)
	}
	lit := buf.String()

	// If the literal matches a keyword then return that keyword.
	if lookup {
		if tok := Lookup(lit); tok != IDENT {
			return TokenInfo{Tok: tok, Pos: pos}
		}
	}
	return TokenInfo{Tok: IDENT, Pos: pos, Lit: lit}
}

// scanString consumes a contiguous string of non-quote characters.
// Quote characters can be consumed if they're first escaped with a backslash.
func (s *Scanner) scanString() TokenInfo {
	s.r.unread()
	_, pos := s.r.curr()

	lit, err := ScanString(s.r)
	if errors.Is(err, errBadString) {
		return TokenInfo{Tok: BADSTRING, Pos: pos, Lit: lit}
	} else if errors.Is(err, errBadEscape) {
		_, pos = s.r.curr()
		return TokenInfo{Tok: BADESCAPE, Pos: pos, Lit: lit}
	}
	return TokenInfo{Tok: STRING, Pos: pos, Lit: lit}
}

// scanNumber consumes anything that looks like the start of a number.
func (s *Scanner) scanNumber() TokenInfo {
	var buf bytes.Buffer

	// Check if the initial rune is a ".".
	ch, pos := s.r.curr()
	if ch == '.' {
		// Unread the full stop so we can read it later.
		s.r.unread()
	} else if ch == '-' {
		buf.WriteRune(ch)
	} else {
		s.r.unread()
	}

	// Read as many digits as possible.
	_, _ = buf.WriteString(s.scanDigits())

	// If next code points are a full stop and digit then consume them.
	isDecimal := false
	if ch0, _ := s.r.read(); ch0 == '.' {
		if ch1, _ := s.r.read(); isDigit(ch1) {
			isDecimal = true
			_, _ = buf.WriteRune(ch0)
			_, _ = buf.WriteRune(ch1)
			_, _ = buf.WriteString(s.scanDigits())
		} else {
			s.r.unread()
			s.r.unread()
		}
	} else {
		s.r.unread()
	}

	if !isDecimal {
		return TokenInfo{Tok: INTEGER, Pos: pos, Lit: buf.String()}
	}
	return TokenInfo{Tok: NUMBER, Pos: pos, Lit: buf.String()}
}

// scanDigits consumes a contiguous series of digits.
func (s *Scanner) scanDigits() string {
	var buf bytes.Buffer
	for {
		ch, _ := s.r.read()
		if !isDigit(ch) {
			s.r.unread()
			break
		}
		_, _ = buf.WriteRune(ch)
	}
	return buf.String()
}

// isWhitespace returns true if the rune is a space, tab, or carriage return.
// Newlines are statement separators and are scanned as their own token.
func isWhitespace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\r' }

// isLetter returns true if the rune is a letter.
func isLetter(ch rune) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool { return (ch >= '0' && ch <= '9') }

// isIdentChar returns true if the rune can be used in an unquoted identifier.
func isIdentChar(ch rune) bool { return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '-' }

// isIdentFirstChar returns true if the rune can be used as the first char in an unquoted identifer.
func isIdentFirstChar(ch rune) bool { return isLetter(ch) || ch == '_' }

// ScanAll reads every token of r, up to and including EOF.
// Whitespace and comments are dropped, newlines are kept since they separate statements.
func ScanAll(r io.Reader) []TokenInfo {
	s := NewScanner(r)

	var tokens []TokenInfo
	for {
		ti := s.Scan()
		if ti.Tok == WS || ti.Tok == COMMENT {
			continue
		}
		tokens = append(tokens, ti)
		if ti.Tok == EOF {
			return tokens
		}
	}
}

// reader represents a buffered rune reader used by the scanner.
// It provides a fixed-length circular buffer that can be unread.
type reader struct {
	r   io.RuneScanner
	i   int // buffer index
	n   int // buffer char count
	pos Pos // next rune position
	buf [3]struct {
		ch  rune
		pos Pos
	}
	eof bool // true if reader has ever seen eof.
}

// ReadRune reads the next rune from the reader.
// This is a wrapper function to implement the io.RuneReader interface.
// Note that this function does not return size.
func (r *reader) ReadRune() (ch rune, size int, err error) {
	ch, _ = r.read()
	if ch == eof {
		err = io.EOF
	}
	return
}

// UnreadRune pushes the previously read rune back onto the buffer.
// This is a wrapper function to implement the io.RuneScanner interface.
func (r *reader) UnreadRune() error {
	r.unread()
	return nil
}

// read reads the next rune from the reader.
func (r *reader) read() (ch rune, pos Pos) {
	// If we have unread characters then read them off the buffer first.
	if r.n > 0 {
		r.n--
		return r.curr()
	}

	// Read next rune from underlying reader.
	// Any error (including io.EOF) should return as EOF.
	ch, _, err := r.r.ReadRune()
	if err != nil {
		ch = eof
	}

	// Save character and position to the buffer.
	r.i = (r.i + 1) % len(r.buf)
	buf := &r.buf[r.i]
	buf.ch, buf.pos = ch, r.pos

	// Update position.
	// EOF has no width: every EOF read is at the end of the input.
	if ch == '\n' {
		r.pos.Line++
		r.pos.Char = 0
		r.pos.Offset++
	} else if ch != eof {
		r.pos.Char++
		r.pos.Offset++
	}

	// Mark the reader as EOF.
	// This is used so we don't double count EOF characters.
	if ch == eof {
		r.eof = true
	}

	return r.curr()
}

// unread pushes the previously read rune back onto the buffer.
func (r *reader) unread() {
	r.n++
}

// curr returns the last read character and position.
func (r *reader) curr() (ch rune, pos Pos) {
	i := (r.i - r.n + len(r.buf)) % len(r.buf)
	buf := &r.buf[i]
	return buf.ch, buf.pos
}

// nextPos returns the position of the next rune to be read.
func (r *reader) nextPos() Pos {
	if r.n == 0 {
		if r.eof {
			return r.buf[r.i].pos
		}
		return r.pos
	}

	i := (r.i - r.n + 1 + len(r.buf)) % len(r.buf)
	return r.buf[i].pos
}

// eof is a marker code point to signify that the reader can't read any more.
const eof = rune(0)

// ScanString reads a quoted string from a rune reader.
// The string can be delimited by single or double quotes.
func ScanString(r io.RuneScanner) (string, error) {
	ending, _, err := r.ReadRune()
	if err != nil {
		return "", errBadString
	}

	var buf bytes.Buffer
	for {
		ch0, _, err := r.ReadRune()
		if ch0 == ending {
			return buf.String(), nil
		} else if err != nil || ch0 == '\n' {
			return buf.String(), errBadString
		} else if ch0 == '\\' {
			// If the next character is an escape then write the escaped char.
			// If it's not a valid escape then return an error.
			ch1, _, _ := r.ReadRune()
			switch ch1 {
			case 'n':
				_, _ = buf.WriteRune('\n')
			case 't':
				_, _ = buf.WriteRune('\t')
			case '\\':
				_, _ = buf.WriteRune('\\')
			case '"':
				_, _ = buf.WriteRune('"')
			case '\'':
				_, _ = buf.WriteRune('\'')
			default:
				return string(ch0) + string(ch1), errBadEscape
			}
		} else {
			_, _ = buf.WriteRune(ch0)
		}
	}
}
