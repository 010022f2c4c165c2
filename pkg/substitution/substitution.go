// Package substitution holds the closed set of placeholder tokens and the
// literal replacement applied to template contents.
//
// Tokens are replaced verbatim in a single left-to-right pass: a value that
// happens to contain another token is never expanded again. Adding a token
// is a change to Tokens, not to the replacement logic.
package substitution

import (
	"strings"
)

// Token is a literal placeholder such as "{{ profile }}".
type Token string

// The fixed token set, in the order values are resolved.
const (
	DrupalVersion      Token = "{{ drupal.version }}"
	GitURL             Token = "{{ git.url }}"
	Profile            Token = "{{ profile }}"
	ProfileName        Token = "{{ profile.name }}"
	ProfileDescription Token = "{{ profile.description }}"
	SiteName           Token = "{{ site.name }}"
)

// Tokens lists every known token.
var Tokens = []Token{
	DrupalVersion,
	GitURL,
	Profile,
	ProfileName,
	ProfileDescription,
	SiteName,
}

// Pair is one token and the value it is replaced with.
type Pair struct {
	Token Token  `json:"token"`
	Value string `json:"value"`
}

// Mapping is an immutable, ordered token to value table.
type Mapping struct {
	pairs    []Pair
	replacer *strings.Replacer
}

// New builds a mapping from values keyed by token. Tokens missing from
// values are left out of the mapping and stay untouched in templates.
// Tokens outside the known set are ignored.
func New(values map[Token]string) *Mapping {
	m := &Mapping{}
	oldnew := make([]string, 0, len(Tokens)*2)
	for _, tok := range Tokens {
		v, ok := values[tok]
		if !ok {
			continue
		}
		m.pairs = append(m.pairs, Pair{Token: tok, Value: v})
		oldnew = append(oldnew, string(tok), v)
	}
	m.replacer = strings.NewReplacer(oldnew...)
	return m
}

// Apply replaces every occurrence of every token in s.
func (m *Mapping) Apply(s string) string {
	if m == nil || len(m.pairs) == 0 {
		return s
	}
	return m.replacer.Replace(s)
}

// ApplyBytes is Apply for file contents.
func (m *Mapping) ApplyBytes(b []byte) []byte {
	return []byte(m.Apply(string(b)))
}

// Value returns the value bound to tok.
func (m *Mapping) Value(tok Token) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, p := range m.pairs {
		if p.Token == tok {
			return p.Value, true
		}
	}
	return "", false
}

// Pairs returns a copy of the mapping in token order.
func (m *Mapping) Pairs() []Pair {
	if m == nil {
		return nil
	}
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Len returns the number of bound tokens.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}
