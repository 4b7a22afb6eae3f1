package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// keywords recognized by the tokenizer. A keyword only counts when followed
// by a boundary, so "typeof" is not split into "type" + "of".
var keywords = []string{
	"import", "export", "from", "function", "return",
	"const", "let", "var",
	"interface", "type", "extends", "typeof", "as", "default",
}

// rule pairs a matcher with the tokens it produces. match reports the number
// of bytes consumed at the start of s, or 0 when the rule does not apply.
type rule struct {
	match func(s string) int
	emit  func(dst []Token, s string) []Token
}

// rules are tried in priority order; the first match wins.
var rules = []rule{
	{matchComment, single(Comment)},
	{matchKeyword, single(Keyword)},
	{matchTagOpen, emitTagOpen},
	{matchTagClose, single(TagBracket)},
	{quoted('"'), single(String)},
	{quoted('\''), single(String)},
	{quoted('`'), single(String)},
	{matchAttribute, emitAttribute},
	{oneOf("{}"), single(Brace)},
	{oneOf("()"), single(Paren)},
}

// Tokenize splits one line into classified spans. Concatenating the Text of
// the result always reproduces line exactly; an empty line yields no tokens.
func Tokenize(line string) []Token {
	tokens := make([]Token, 0, 8)
	i := 0
	for i < len(line) {
		rest := line[i:]
		if r, n := firstMatch(rest); n > 0 {
			tokens = r.emit(tokens, rest[:n])
			i += n
			continue
		}

		// Plain run: always take at least one rune, then stop where any
		// rule would match.
		start := i
		for {
			_, size := utf8.DecodeRuneInString(line[i:])
			i += size
			if i >= len(line) {
				break
			}
			if _, n := firstMatch(line[i:]); n > 0 {
				break
			}
		}
		tokens = append(tokens, Token{Kind: Plain, Text: line[start:i]})
	}
	return tokens
}

// Lines tokenizes a block of code, one entry per "\n"-separated line.
func Lines(code string) []Line {
	raw := strings.Split(code, "\n")
	lines := make([]Line, len(raw))
	for i, l := range raw {
		lines[i] = Line{Number: i + 1, Tokens: Tokenize(l)}
	}
	return lines
}

func firstMatch(s string) (rule, int) {
	for _, r := range rules {
		if n := r.match(s); n > 0 {
			return r, n
		}
	}
	return rule{}, 0
}

func single(kind Kind) func([]Token, string) []Token {
	return func(dst []Token, s string) []Token {
		return append(dst, Token{Kind: kind, Text: s})
	}
}

// matchComment takes the whole remainder when it starts with optional
// whitespace followed by "//". String literals are not taken into account.
func matchComment(s string) int {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	if strings.HasPrefix(trimmed, "//") {
		return len(s)
	}
	return 0
}

func matchKeyword(s string) int {
	for _, kw := range keywords {
		if strings.HasPrefix(s, kw) && atBoundary(s[len(kw):]) {
			return len(kw)
		}
	}
	return 0
}

func atBoundary(rest string) bool {
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r) || strings.ContainsRune("{(<,", r)
}

// matchTagOpen matches "<Name" or "</Name" where Name is capitalized.
func matchTagOpen(s string) int {
	if len(s) < 2 || s[0] != '<' {
		return 0
	}
	j := 1
	if s[j] == '/' {
		j++
	}
	if j >= len(s) || !isUpper(s[j]) {
		return 0
	}
	j++
	for j < len(s) && isLetter(s[j]) {
		j++
	}
	return j
}

func emitTagOpen(dst []Token, s string) []Token {
	bracket := 1
	if s[1] == '/' {
		bracket = 2
	}
	return append(dst,
		Token{Kind: TagBracket, Text: s[:bracket]},
		Token{Kind: TagName, Text: s[bracket:]},
	)
}

func matchTagClose(s string) int {
	switch {
	case strings.HasPrefix(s, "/>"):
		return 2
	case strings.HasPrefix(s, ">"):
		return 1
	}
	return 0
}

// quoted matches a literal delimited by q with no embedded q.
func quoted(q byte) func(string) int {
	return func(s string) int {
		if len(s) < 2 || s[0] != q {
			return 0
		}
		end := strings.IndexByte(s[1:], q)
		if end < 0 {
			return 0
		}
		return end + 2
	}
}

// matchAttribute matches an identifier immediately followed by "=".
func matchAttribute(s string) int {
	if s == "" || !isLetter(s[0]) {
		return 0
	}
	j := 1
	for j < len(s) && (isLetter(s[j]) || isDigit(s[j])) {
		j++
	}
	if j < len(s) && s[j] == '=' {
		return j + 1
	}
	return 0
}

func emitAttribute(dst []Token, s string) []Token {
	return append(dst,
		Token{Kind: AttrName, Text: s[:len(s)-1]},
		Token{Kind: AttrEquals, Text: "="},
	)
}

func oneOf(set string) func(string) int {
	return func(s string) int {
		if s != "" && strings.IndexByte(set, s[0]) >= 0 {
			return 1
		}
		return 0
	}
}

func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isLetter(c byte) bool { return isUpper(c) || (c >= 'a' && c <= 'z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
