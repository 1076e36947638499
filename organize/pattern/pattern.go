package pattern

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind identifies a token type.
type Kind int

const (
	// Literal must match exactly.
	Literal Kind = iota
	// Wildcard matches any run of characters.
	Wildcard
	// NamedWildcard behaves like Wildcard and records the matched text.
	NamedWildcard
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Wildcard:
		return "wildcard"
	case NamedWildcard:
		return "named"
	}
	return "unknown"
}

// Token is one element of a compiled pattern. Text holds the literal text
// (already folded for case-insensitive patterns) or the capture name.
type Token struct {
	Kind Kind
	Text string

	units []rune
}

// Pattern is a compiled pattern. It is immutable and safe for concurrent use.
type Pattern struct {
	raw           string
	tokens        []Token
	names         []string
	caseSensitive bool
}

// MustCompile is like Compile but panics on error.
func MustCompile(raw string, caseSensitive bool) *Pattern {
	p, err := Compile(raw, caseSensitive)
	if err != nil {
		panic(err)
	}
	return p
}

// Compile parses raw into a Pattern. Errors are *SyntaxError.
func Compile(raw string, caseSensitive bool) (*Pattern, error) {
	p := &Pattern{raw: raw, caseSensitive: caseSensitive}
	var literal strings.Builder
	flush := func() {
		if literal.Len() == 0 {
			return
		}
		text := literal.String()
		units, _ := decode(text, false)
		p.tokens = append(p.tokens, Token{Kind: Literal, Text: text, units: units})
		literal.Reset()
	}

	seen := map[string]bool{}
	for i := 0; i < len(raw); {
		switch raw[i] {
		case '*':
			flush()
			p.tokens = append(p.tokens, Token{Kind: Wildcard})
			i++
		case '{':
			end := strings.IndexByte(raw[i+1:], '}')
			if end == -1 {
				return nil, newSyntaxError(raw, i, "unterminated capture")
			}
			name := raw[i+1 : i+1+end]
			if name == "" {
				return nil, newSyntaxError(raw, i, "empty capture name")
			}
			for j, r := range name {
				if !isIdentRune(r) {
					return nil, newSyntaxError(raw, i+1+j, "invalid character "+string(r)+" in capture name")
				}
			}
			if seen[name] {
				return nil, newSyntaxError(raw, i, "duplicate capture name "+name)
			}
			seen[name] = true
			flush()
			p.tokens = append(p.tokens, Token{Kind: NamedWildcard, Text: name})
			p.names = append(p.names, name)
			i += end + 2
		default:
			next := i + 1
			for next < len(raw) && raw[next] != '*' && raw[next] != '{' {
				next++
			}
			text := raw[i:next]
			if !caseSensitive {
				text = Fold(text)
			}
			literal.WriteString(text)
			i = next
		}
	}
	flush()
	return p, nil
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Fold lower-cases text rune by rune. Invalid UTF-8 bytes are kept as is, so
// names that differ only in those bytes stay distinct.
func Fold(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); {
		r, width := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && width == 1 {
			out.WriteByte(text[i])
		} else {
			out.WriteRune(unicode.ToLower(r))
		}
		i += width
	}
	return out.String()
}

// decode splits text into comparable units and their byte offsets; offsets
// has one extra element holding len(text). A valid rune is its own unit,
// lower-cased when folding. An invalid byte b becomes the negative unit -1-b
// so it only equals the same byte.
func decode(text string, folding bool) ([]rune, []int) {
	units := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for i := 0; i < len(text); {
		r, width := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == utf8.RuneError && width == 1:
			r = -1 - rune(text[i])
		case folding:
			r = unicode.ToLower(r)
		}
		units = append(units, r)
		offsets = append(offsets, i)
		i += width
	}
	return units, append(offsets, len(text))
}

// String returns the pattern source.
func (p *Pattern) String() string { return p.raw }

// CaseSensitive reports whether the pattern compares case-sensitively.
func (p *Pattern) CaseSensitive() bool { return p.caseSensitive }

// Names returns capture names in order of appearance.
func (p *Pattern) Names() []string {
	return append([]string(nil), p.names...)
}

// HasCaptures reports whether the pattern declares any {name} capture.
func (p *Pattern) HasCaptures() bool { return len(p.names) > 0 }

// Tokens returns a copy of the compiled tokens.
func (p *Pattern) Tokens() []Token {
	return append([]Token(nil), p.tokens...)
}

// Test reports whether input matches without collecting captures.
func (p *Pattern) Test(input string) bool {
	_, ok := p.Match(input)
	return ok
}
