package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// KeyRoot is the namespace token that prefixes every canonical lookup key.
const KeyRoot = "data"

// MaxDepth is the number of levels in the address hierarchy:
// country, administrative area, locality, dependent locality.
const MaxDepth = 4

// Address is the caller-facing input a lookup key is derived from. Only the
// hierarchical fields participate in key construction; everything below the
// first empty level is ignored.
type Address struct {
	RegionCode         string `json:"region_code"`
	AdministrativeArea string `json:"administrative_area,omitempty"`
	Locality           string `json:"locality,omitempty"`
	DependentLocality  string `json:"dependent_locality,omitempty"`

	// Language is an optional BCP-47 base language. When it is set, every
	// level's canonical encoding carries a "--<lang>" suffix so that
	// language variants of the same node cache under distinct keys.
	Language string `json:"language,omitempty"`
}

// LookupKey is an ordered path identifying one node of the address
// hierarchy. It is an immutable value; construct it with KeyForAddress or
// ParseKey.
type LookupKey struct {
	nodes    []string
	language string
}

// KeyForAddress derives the lookup key for an address, descending the
// hierarchy until the first empty level.
func KeyForAddress(a Address) LookupKey {
	nodes := make([]string, 0, MaxDepth)
	for _, part := range []string{
		a.RegionCode,
		a.AdministrativeArea,
		a.Locality,
		a.DependentLocality,
	} {
		if part == "" {
			break
		}
		nodes = append(nodes, part)
	}
	return LookupKey{nodes: nodes, language: a.Language}
}

// ParseKey parses a canonical key string such as "data/US/CA" back into a
// LookupKey. A trailing "--<lang>" suffix on the last segment is taken as
// the key's language.
func ParseKey(s string) (LookupKey, error) {
	parts := strings.Split(s, "/")
	if parts[0] != KeyRoot {
		return LookupKey{}, eris.Errorf("model: key %q does not start with %q", s, KeyRoot)
	}
	if len(parts) < 2 || len(parts) > MaxDepth+1 {
		return LookupKey{}, eris.Errorf("model: key %q has depth %d, want 1..%d", s, len(parts)-1, MaxDepth)
	}

	nodes := make([]string, len(parts)-1)
	copy(nodes, parts[1:])

	var language string
	last := len(nodes) - 1
	if base, lang, ok := strings.Cut(nodes[last], "--"); ok {
		nodes[last] = base
		language = lang
	}

	for _, n := range nodes {
		if n == "" {
			return LookupKey{}, eris.Errorf("model: key %q has an empty segment", s)
		}
	}
	return LookupKey{nodes: nodes, language: language}, nil
}

// Depth reports how many levels the key addresses (1..MaxDepth), or 0 for
// the zero key.
func (k LookupKey) Depth() int { return len(k.nodes) }

// Language returns the key's language suffix, if any.
func (k LookupKey) Language() string { return k.language }

// Node returns the region code at the given 1-indexed depth.
func (k LookupKey) Node(depth int) string { return k.nodes[depth-1] }

// KeyString encodes the prefix of the key up to the given depth
// (1..Depth()). Encodings are strictly hierarchical: KeyString(d) always
// extends KeyString(d-1), modulo the language suffix carried by the last
// segment.
func (k LookupKey) KeyString(depth int) string {
	var b strings.Builder
	b.WriteString(KeyRoot)
	for i := 0; i < depth && i < len(k.nodes); i++ {
		b.WriteByte('/')
		b.WriteString(k.nodes[i])
	}
	if k.language != "" {
		b.WriteString("--")
		b.WriteString(k.language)
	}
	return b.String()
}

// String returns the full canonical encoding of the key.
func (k LookupKey) String() string { return k.KeyString(len(k.nodes)) }

// KeyDepth reports the hierarchy depth a canonical key string addresses:
// "data/US" is 1, "data/US/CA" is 2. Strings outside the key namespace
// report 0.
func KeyDepth(key string) int {
	if key == KeyRoot {
		return 0
	}
	if !strings.HasPrefix(key, KeyRoot+"/") {
		return 0
	}
	return strings.Count(key, "/")
}
