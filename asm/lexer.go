package asm

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/joha7809/Chisel-Erode/isa"
)

// Lex splits source into tokens. It never fails: characters that start no
// token are dropped.
//
// Numbers are decimal. A '-' directly before a digit marks the immediate as
// negative; the parser decides what to do with it. Digit runs too long for
// 64 bits saturate, so the range checks downstream still reject them.
func Lex(source string) []Token {
	l := lexer{src: source}
	tokens := make([]Token, 0, 16)

	for {
		tok, ok := l.nextToken()
		if !ok {
			return tokens
		}

		tokens = append(tokens, tok)
	}
}

type lexer struct {
	src  string
	pos  int
	line int
}

func (l *lexer) nextToken() (Token, bool) {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.src) {
			return Token{}, false
		}

		start := l.pos
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])

		switch {
		case r == '#':
			return l.lexComment(start), true
		case r == ',':
			l.pos++
			return l.single(TokenComma, start), true
		case r == ';':
			l.pos++
			return l.single(TokenTerminator, start), true
		case isDigit(r):
			return l.lexImmediate(start, false), true
		case r == '-' && isDigit(l.peek(1)):
			l.pos++
			return l.lexImmediate(start, true), true
		case r == 'R' && isDigit(l.peek(1)):
			return l.lexRegister(start), true
		case unicode.IsLetter(r) || r == '_':
			return l.lexIdentifier(start), true
		default:
			l.pos += size
		}
	}
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}

		if r == '\n' {
			l.line++
		}
		l.pos += size
	}
}

func (l *lexer) peek(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return 0
	}

	return rune(l.src[l.pos+offset])
}

func (l *lexer) span(start int) Span {
	return Span{Start: start, End: l.pos, Line: l.line}
}

func (l *lexer) single(kind TokenKind, start int) Token {
	return Token{Kind: kind, Span: l.span(start), Text: l.src[start:l.pos]}
}

func (l *lexer) lexComment(start int) Token {
	end := strings.IndexByte(l.src[start:], '\n')
	if end < 0 {
		l.pos = len(l.src)
	} else {
		l.pos = start + end
	}

	return Token{
		Kind: TokenComment,
		Span: l.span(start),
		Text: l.src[start+1 : l.pos],
	}
}

func (l *lexer) digits() uint64 {
	from := l.pos
	for l.pos < len(l.src) && isDigit(rune(l.src[l.pos])) {
		l.pos++
	}

	value, err := strconv.ParseUint(l.src[from:l.pos], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return value
}

func (l *lexer) lexImmediate(start int, negative bool) Token {
	value := l.digits()

	return Token{
		Kind:     TokenImmediate,
		Span:     l.span(start),
		Text:     l.src[start:l.pos],
		Value:    value,
		Negative: negative,
	}
}

func (l *lexer) lexRegister(start int) Token {
	l.pos++ // 'R'
	value := l.digits()

	return Token{
		Kind:  TokenRegister,
		Span:  l.span(start),
		Text:  l.src[start:l.pos],
		Value: value,
	}
}

func (l *lexer) lexIdentifier(start int) Token {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentRune(r) {
			break
		}
		l.pos += size
	}

	text := l.src[start:l.pos]
	tok := Token{Span: l.span(start), Text: text}

	if strings.HasSuffix(text, ":") {
		tok.Kind = TokenLabelDef
		tok.Text = strings.TrimRight(text, ":")
	} else if op, ok := isa.OpcodeFromMnemonic(text); ok {
		tok.Kind = TokenOpcode
		tok.Opcode = op
	} else {
		tok.Kind = TokenLabelRef
	}

	return tok
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ':'
}
