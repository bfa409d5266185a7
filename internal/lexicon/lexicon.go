// Package lexicon holds the compiled-in word tables used to classify name
// tokens. Tables are built once at init and never mutated, so they are safe
// for concurrent use without locking.
package lexicon

import (
	"slices"
	"strings"
)

// Table is an immutable set of uppercase words
type Table struct {
	name  string
	words map[string]struct{}
}

func newTable(name string, words ...string) Table {
	t := Table{
		name:  name,
		words: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		t.words[strings.ToUpper(w)] = struct{}{}
	}
	return t
}

// Name returns the table identifier
func (t Table) Name() string {
	return t.name
}

// Contains reports whether token, upper-cased, is in the table
func (t Table) Contains(token string) bool {
	if token == "" {
		return false
	}
	_, ok := t.words[strings.ToUpper(token)]
	return ok
}

// Len returns the number of words
func (t Table) Len() int {
	return len(t.words)
}

// Words returns the words in sorted order
func (t Table) Words() []string {
	words := make([]string, 0, len(t.words))
	for w := range t.words {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

var (
	// Salutations are titles that open a name. "ST" is deliberately absent
	// so that "St" reaches the surname prefix rule.
	Salutations = newTable("salutations",
		"MR", "MRS", "MS", "MISS", "MX", "MESSRS", "MMES",
		"DR", "PROF", "REV", "FR", "SIR", "DAME", "LADY", "HON",
		"CAPT", "COL", "GEN", "LT", "MAJ", "SGT", "CPL", "PVT", "ADM", "CMDR",
		"GOV", "SEN", "REP", "PRES", "AMB", "RABBI", "IMAM",
		"MME", "MLLE", "HERR", "FRAU", "SRA", "SRTA",
	)

	// Generations mark lineage order
	Generations = newTable("generations",
		"JR", "SR", "JUNIOR", "SENIOR",
		"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
		"1ST", "2ND", "3RD", "4TH", "5TH", "6TH", "7TH", "8TH", "9TH", "10TH",
		"FIRST", "SECOND", "THIRD", "FOURTH", "FIFTH",
		"SIXTH", "SEVENTH", "EIGHTH", "NINTH", "TENTH",
	)

	// Suffixes are post-nominal credentials and honours
	Suffixes = newTable("suffixes",
		"ESQ", "ESQUIRE",
		"PHD", "MD", "DDS", "DMD", "DVM", "JD", "LLD", "LLM", "EDD", "PSYD", "PHARMD",
		"MBA", "CPA", "CFA", "RN", "LPN", "PE",
		"RET", "USA", "USN", "USMC", "USAF",
		"KC", "QC", "OBE", "MBE", "CBE", "KBE",
	)

	// SurnamePrefixes attach to the word that follows them. The apostrophe
	// forms come from Irish and Dutch particles such as 'O and 'T.
	SurnamePrefixes = newTable("surname_prefixes",
		"AB", "ABU", "AF", "AL", "AP", "BAR", "BAT", "BEN", "BIN", "BINT", "IBN",
		"DA", "DAL", "DAS", "DE", "DEL", "DELA", "DELLA", "DEN", "DER", "DES", "DI", "DOS", "DU",
		"EL", "FITZ", "LA", "LE", "MAC", "MC",
		"SAN", "SANTA", "SAINT", "ST", "STE",
		"TEN", "TER", "VAN", "VANDER", "VON", "VOM", "ZU",
		"'O", "'T",
	)

	// NonName words introduce an alias. Separators are stripped before
	// lookup, so "a/k/a" and "a.k.a." both arrive as "aka".
	NonName = newTable("non_name",
		"AKA", "FKA", "NKA", "ALIAS",
	)

	// CorporateEntities mark a business rather than a person
	CorporateEntities = newTable("corporate_entities",
		"INC", "INCORPORATED", "LLC", "LLP", "LP", "LTD", "LIMITED",
		"CORP", "CORPORATION", "CO", "COMPANY", "PLC", "GMBH", "AG", "PTY",
		"TRUST", "FOUNDATION", "BANK", "ASSOCIATION", "ASSOCIATES",
		"PARTNERS", "PARTNERSHIP", "HOLDINGS", "GROUP", "ENTERPRISES", "INDUSTRIES", "DBA",
	)

	// SupplementalInfo words add status information that is not part of
	// the name
	SupplementalInfo = newTable("supplemental_info",
		"DECEASED", "DECD", "DEC'D", "DECEDENT", "DEFUNCT", "DISSOLVED",
		"MINOR", "ETAL", "ETUX", "ETVIR",
	)
)

// All returns every table in classification order
func All() []Table {
	return []Table{
		Salutations,
		Generations,
		Suffixes,
		SurnamePrefixes,
		NonName,
		CorporateEntities,
		SupplementalInfo,
	}
}

// Lookup returns the table with the given name
func Lookup(name string) (Table, bool) {
	for _, t := range All() {
		if t.name == name {
			return t, true
		}
	}
	return Table{}, false
}
