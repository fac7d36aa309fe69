package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/go-yayaml/errors"
	"github.com/KimNorgaard/go-yayaml/token"
)

// Line is a significant source line: not blank and not a comment.
type Line struct {
	Text   string // content after the leading whitespace
	Indent int    // number of leading whitespace runes
	Number int    // 1-based line number
}

// Lexer holds the state for tokenizing YAYAML source.
type Lexer struct {
	input    string
	pos      int // byte offset of the next unread line
	line     int // number of the line starting at pos
	maxDepth int // 0 means unbounded
}

// New creates and returns a new Lexer. A positive maxDepth limits how
// deeply lines may nest.
func New(input string, maxDepth int) *Lexer {
	return &Lexer{input: input, line: 1, maxDepth: maxDepth}
}

// NextLine returns the next significant line, skipping blank lines and
// full-line comments. Lines are separated by any run of CR and LF.
func (l *Lexer) NextLine() (Line, bool) {
	for l.pos < len(l.input) {
		end := strings.IndexAny(l.input[l.pos:], "\r\n")
		if end < 0 {
			end = len(l.input)
		} else {
			end += l.pos
		}
		raw := l.input[l.pos:end]
		num := l.line
		l.pos = end
		l.skipBreak()

		indent, width := leadingSpace(raw)
		text := raw[width:]
		if text == "" || text[0] == '#' {
			continue
		}
		return Line{Text: text, Indent: indent, Number: num}, true
	}
	return Line{}, false
}

// Tokenize consumes the remaining input and arranges its lines into a
// forest. A line becomes a child of the line before it when it is indented
// strictly further; otherwise it closes every open ancestor whose indent is
// not smaller than its own and becomes the next sibling under what is left.
func (l *Lexer) Tokenize() ([]*token.Token, error) {
	forest := []*token.Token{}
	// Open ancestors, outermost first. The forest itself sits below the
	// bottom of the stack and is never closed.
	var stack []*token.Token
	var prev *token.Token

	for {
		line, ok := l.NextLine()
		if !ok {
			break
		}
		tok := &token.Token{Text: line.Text, Indent: line.Indent, Line: line.Number}

		if prev != nil && tok.Indent > prev.Indent {
			stack = append(stack, prev)
			prev.Children = append(prev.Children, tok)
		} else {
			for len(stack) > 0 && tok.Indent <= stack[len(stack)-1].Indent {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				forest = append(forest, tok)
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, tok)
			}
		}

		if l.maxDepth > 0 && len(stack) >= l.maxDepth {
			return nil, &errors.SyntaxError{Line: line.Number, Err: errors.ErrMaxDepth}
		}
		prev = tok
	}
	return forest, nil
}

// skipBreak consumes a single line break (CR, LF or CRLF) at pos.
func (l *Lexer) skipBreak() {
	if l.pos >= len(l.input) {
		return
	}
	if l.input[l.pos] == '\r' {
		l.pos++
		if l.pos < len(l.input) && l.input[l.pos] == '\n' {
			l.pos++
		}
	} else {
		l.pos++
	}
	l.line++
}

// leadingSpace returns the number of whitespace runes at the start of s
// and their width in bytes. Tabs count as one, like every other space.
func leadingSpace(s string) (runes, width int) {
	for width < len(s) {
		r, size := utf8.DecodeRuneInString(s[width:])
		if !IsSpace(r) {
			break
		}
		runes++
		width += size
	}
	return runes, width
}

// IsSpace reports whether r separates or indents: Unicode White_Space
// except NEL, plus the byte order mark.
func IsSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
