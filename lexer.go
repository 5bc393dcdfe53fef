package speedreading

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into display tokens on runs of whitespace.
// Punctuation stays attached to its word. Empty or all-whitespace input
// yields a nil slice.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Lexer walks a text and emits words with their source offsets.
type Lexer struct {
	text string
}

func NewLexer(text string) *Lexer {
	return &Lexer{text: text}
}

// Lex is shorthand for NewLexer(text).Words().
func Lex(text string) []Word {
	return NewLexer(text).Words()
}

// Words returns the same tokens as Tokenize, in order, with positions and
// byte offsets into the source.
func (l *Lexer) Words() []Word {
	var words []Word
	text := l.text
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}

		words = append(words, Word{
			Text:      text[start:i],
			Position:  len(words),
			StartByte: start,
			EndByte:   i,
		})
	}
	return words
}
