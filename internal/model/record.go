package model

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// Record holds the parsed metadata for one hierarchy node. Records are
// immutable once built; the record cache is their sole long-term owner.
type Record struct {
	// ID is the canonical key the record describes. The serving host may
	// answer with an empty object for a node it knows nothing about, in
	// which case ID is empty.
	ID string

	Name      string
	LatinName string

	// Format is the address format template, e.g. "%N%n%O%n%A%n%C %S %Z".
	Format string

	// Required lists the single-letter field tokens that must be present
	// in a valid address, e.g. ["A", "C", "Z"].
	Required []string

	// PostalPattern matches valid postal codes for the node, nil when the
	// node does not constrain them. PostalExample holds sample codes.
	PostalPattern *regexp.Regexp
	PostalExample string

	Language  string
	Languages []string

	// SubKeys and SubNames enumerate the node's children, parallel slices.
	SubKeys  []string
	SubNames []string
}

// recordJSON mirrors the serialized wire form. All values are strings;
// list-valued fields are "~"-separated.
type recordJSON struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	Name      string `json:"name"`
	LatinName string `json:"lname"`
	Format    string `json:"fmt"`
	Required  string `json:"require"`
	Zip       string `json:"zip"`
	ZipEx     string `json:"zipex"`
	Language  string `json:"lang"`
	Languages string `json:"languages"`
	SubKeys   string `json:"sub_keys"`
	SubNames  string `json:"sub_names"`
}

// defaultFormat and defaultRequired are the implicit defaults every
// country-level record inherits unless it sets its own.
const (
	defaultFormat   = "%N%n%O%n%A%n%C"
	defaultRequired = "AC"
)

// ParseRecord parses one serialized record. Malformed input is an error;
// an empty object is not: it parses to a Record with an empty ID, which
// callers treat as "the host has no data for this node".
func ParseRecord(data []byte) (*Record, error) {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(err, "model: parse record")
	}

	rec := &Record{
		ID:            raw.ID,
		Name:          raw.Name,
		LatinName:     raw.LatinName,
		Format:        raw.Format,
		Required:      splitTokens(raw.Required),
		PostalExample: raw.ZipEx,
		Language:      raw.Language,
		Languages:     splitList(raw.Languages),
		SubKeys:       splitList(raw.SubKeys),
		SubNames:      splitList(raw.SubNames),
	}

	if raw.Zip != "" {
		pattern, err := regexp.Compile(raw.Zip)
		if err != nil {
			return nil, eris.Wrapf(err, "model: record %q: compile postal pattern", raw.ID)
		}
		rec.PostalPattern = pattern
	}

	return rec, nil
}

// MergeDefaults returns a copy of the record with the implicit default
// format and required fields filled in where the record carries none.
// Only country-level records merge defaults; deeper levels keep exactly
// their explicit fields.
func (r *Record) MergeDefaults() *Record {
	merged := *r
	if merged.Format == "" {
		merged.Format = defaultFormat
	}
	if len(merged.Required) == 0 {
		merged.Required = splitTokens(defaultRequired)
	}
	return &merged
}

// splitTokens splits a compact field-token string ("ACZ") into its
// single-letter tokens.
func splitTokens(s string) []string {
	if s == "" {
		return nil
	}
	tokens := make([]string, 0, len(s))
	for _, r := range s {
		tokens = append(tokens, string(r))
	}
	return tokens
}

// splitList splits a "~"-separated list field.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "~")
}
