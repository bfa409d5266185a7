package model

import (
	"encoding/json"
	"slices"
	"strings"
)

// Part is an optional name component. The zero value is absent.
type Part struct {
	Value string
	Valid bool
}

// Some returns a present Part holding v
func Some(v string) Part {
	return Part{Value: v, Valid: true}
}

// Get returns the value and whether it is present
func (p Part) Get() (string, bool) {
	return p.Value, p.Valid
}

// String returns the value, or "" when absent
func (p Part) String() string {
	return p.Value
}

// MarshalJSON encodes an absent Part as null
func (p Part) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// UnmarshalJSON decodes null as an absent Part
func (p *Part) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Part{}
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Some(v)
	return nil
}

// MarshalYAML encodes an absent Part as null
func (p Part) MarshalYAML() (interface{}, error) {
	if !p.Valid {
		return nil, nil
	}
	return p.Value, nil
}

// ParsedName is the structured result of parsing one human name
type ParsedName struct {
	Input string `json:"input" yaml:"input"` // Verbatim input

	Salutation Part     `json:"salutation" yaml:"salutation"` // Mr, Dr, ...
	ForeName   Part     `json:"foreName" yaml:"foreName"`
	MiddleName Part     `json:"middleName" yaml:"middleName"` // May hold several space-joined words
	SurName    Part     `json:"surName" yaml:"surName"`
	Generation Part     `json:"generation" yaml:"generation"` // III, 3rd, Jr, ...
	Suffix     Part     `json:"suffix" yaml:"suffix"`         // Esq, PhD, ...
	Aliases    []string `json:"aliases" yaml:"aliases"`       // Discovery order

	HasCorporateEntity  bool `json:"hasCorporateEntity" yaml:"hasCorporateEntity"`
	HasNonName          bool `json:"hasNonName" yaml:"hasNonName"`
	HasSurNamePrefix    bool `json:"hasSurNamePrefix" yaml:"hasSurNamePrefix"`
	HasSupplementalInfo bool `json:"hasSupplementalInfo" yaml:"hasSupplementalInfo"`
}

// NewParsedName returns an empty record for input with a non-nil alias list
func NewParsedName(input string) ParsedName {
	return ParsedName{
		Input:   input,
		Aliases: []string{},
	}
}

// Clone returns a copy that shares no mutable state with n
func (n ParsedName) Clone() ParsedName {
	out := n
	out.Aliases = slices.Clone(n.Aliases)
	if out.Aliases == nil {
		out.Aliases = []string{}
	}
	return out
}

// FullName reassembles the present parts as
// "Salutation Fore Middle Sur Generation, Suffix".
func (n ParsedName) FullName() string {
	var words []string
	for _, p := range []Part{n.Salutation, n.ForeName, n.MiddleName, n.SurName, n.Generation} {
		if p.Valid && p.Value != "" {
			words = append(words, p.Value)
		}
	}

	full := strings.Join(words, " ")
	if n.Suffix.Valid && n.Suffix.Value != "" {
		if full == "" {
			return n.Suffix.Value
		}
		full += ", " + n.Suffix.Value
	}
	return full
}

// Flag names as reported by Flags
const (
	FlagCorporateEntity  = "corporate_entity"
	FlagNonName          = "non_name"
	FlagSurNamePrefix    = "surname_prefix"
	FlagSupplementalInfo = "supplemental_info"
)

// Flags returns the names of the flags that are set, in declaration order
func (n ParsedName) Flags() []string {
	var flags []string
	if n.HasCorporateEntity {
		flags = append(flags, FlagCorporateEntity)
	}
	if n.HasNonName {
		flags = append(flags, FlagNonName)
	}
	if n.HasSurNamePrefix {
		flags = append(flags, FlagSurNamePrefix)
	}
	if n.HasSupplementalInfo {
		flags = append(flags, FlagSupplementalInfo)
	}
	return flags
}
