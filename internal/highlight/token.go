// Package highlight splits example source code into classified spans for
// presentational coloring. It understands just enough JSX/TypeScript to make
// component snippets readable and never fails on unexpected input.
package highlight

import "fmt"

// Kind classifies a span of source text.
type Kind int

const (
	Plain Kind = iota
	Comment
	Keyword
	TagBracket
	TagName
	String
	AttrName
	AttrEquals
	Brace
	Paren
)

var kindNames = [...]string{
	Plain:      "plain-text",
	Comment:    "comment",
	Keyword:    "keyword",
	TagBracket: "tag-bracket",
	TagName:    "tag-name",
	String:     "string",
	AttrName:   "attribute-name",
	AttrEquals: "attribute-equals",
	Brace:      "brace",
	Paren:      "paren",
}

// String returns the kind's wire name, e.g. "tag-bracket".
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name so JSON and YAML output stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown token kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind from its wire name.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", string(b))
}

// Token is a contiguous, classified span of a single line.
type Token struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
}

// Line is one tokenized source line with its 1-based display number.
type Line struct {
	Number int     `json:"number" yaml:"number"`
	Tokens []Token `json:"tokens" yaml:"tokens"`
}

// Text rebuilds the original line from its tokens.
func (l Line) Text() string {
	n := 0
	for _, t := range l.Tokens {
		n += len(t.Text)
	}
	b := make([]byte, 0, n)
	for _, t := range l.Tokens {
		b = append(b, t.Text...)
	}
	return string(b)
}
