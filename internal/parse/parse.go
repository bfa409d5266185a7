// Package parse splits a free-form human name into its components.
//
// Parse cleans the input, splits it into tokens and walks them with a cursor.
// At each position a fixed sequence of rules may remove the token into a
// field of the result, merge it with its neighbours, or leave it for the
// positional fore/middle/surname assignment that runs once the walk is over.
package parse

import (
	"strings"

	"github.com/ppiankov/nameparser/internal/lexicon"
	"github.com/ppiankov/nameparser/internal/model"
)

// filler is dropped wherever it appears ("the 3rd", "a/k/a the Batman")
const filler = "the"

// Parse parses one name. It is total: every string, including "", yields a
// record, with unmatched parts left absent. It keeps no state between calls
// and is safe for concurrent use.
func Parse(input string) model.ParsedName {
	name := model.NewParsedName(input)

	c := &classifier{
		name: &name,
		seq:  tokenize(input),
	}
	c.run()
	assign(&name, c.seq)

	return name
}

// outcome tells the cursor loop what a rule did to the current position
type outcome int

const (
	pass    outcome = iota // rule did not apply, try the next one
	consume                // token removed, examine the same position again
	advance                // move past the current position
)

// classifier owns the working sequence for one Parse call
type classifier struct {
	name *model.ParsedName
	seq  tokens
}

type rule func(c *classifier, i int) outcome

// rules run in this order at every cursor position
var rules = []rule{
	(*classifier).dropFiller,
	(*classifier).salutation,
	(*classifier).generation,
	(*classifier).suffix,
	(*classifier).surnamePrefix,
	(*classifier).quotedAlias,
	(*classifier).introducedAlias,
	(*classifier).corporateEntity,
	(*classifier).supplementalInfo,
}

func (c *classifier) run() {
	i := 0
	for c.seq.has(i) {
		i = c.step(i)
	}
}

// step applies the rules at position i and returns the next cursor position
func (c *classifier) step(i int) int {
	for _, r := range rules {
		switch r(c, i) {
		case consume:
			return i
		case advance:
			return i + 1
		}
	}
	return i + 1
}

func (c *classifier) dropFiller(i int) outcome {
	if !strings.EqualFold(c.seq.at(i), filler) {
		return pass
	}
	c.seq.remove(i)
	return consume
}

// record moves the token at i into an unset field when table matches it
func (c *classifier) record(field *model.Part, table lexicon.Table, i int) outcome {
	if field.Valid || !table.Contains(c.seq.at(i)) {
		return pass
	}
	*field = model.Some(c.seq.remove(i))
	return consume
}

func (c *classifier) salutation(i int) outcome {
	return c.record(&c.name.Salutation, lexicon.Salutations, i)
}

func (c *classifier) generation(i int) outcome {
	return c.record(&c.name.Generation, lexicon.Generations, i)
}

func (c *classifier) suffix(i int) outcome {
	return c.record(&c.name.Suffix, lexicon.Suffixes, i)
}

// surnamePrefix glues a prefix such as "Von" to the following word. A name
// cannot open with a prefix, so position 0 never matches.
func (c *classifier) surnamePrefix(i int) outcome {
	if c.name.HasSurNamePrefix || i == 0 || !lexicon.SurnamePrefixes.Contains(c.seq.at(i)) {
		return pass
	}
	c.name.HasSurNamePrefix = true
	c.seq.mergeNext(i)
	return advance
}

// quotedAlias extracts a phrase opened by ' or " into the aliases
func (c *classifier) quotedAlias(i int) outcome {
	tok := c.seq.at(i)
	if tok == "" || (tok[0] != '\'' && tok[0] != '"') {
		return pass
	}
	quote := tok[0]

	if c.closingQuoteAhead(i, quote) {
		c.collectQuoted(i, quote)
	} else {
		// Unterminated: the opening token closes itself
		c.seq.set(i, tok+string(quote))
	}

	phrase := c.seq.remove(i)
	c.name.HasNonName = true
	c.name.Aliases = append(c.name.Aliases, phrase[1:len(phrase)-1])
	return consume
}

// closingQuoteAhead reports whether the token at i or any later token holds
// quote past its first byte
func (c *classifier) closingQuoteAhead(i int, quote byte) bool {
	for j := i; c.seq.has(j); j++ {
		if strings.LastIndexByte(c.seq.at(j), quote) > 0 {
			return true
		}
	}
	return false
}

// collectQuoted merges tokens into position i until it ends with quote. A
// closing quote found inside a token splits the rest of that token back into
// the sequence.
func (c *classifier) collectQuoted(i int, quote byte) {
	for {
		acc := c.seq.at(i)
		if len(acc) > 1 && acc[len(acc)-1] == quote {
			return
		}
		if j := strings.LastIndexByte(acc, quote); j > 0 {
			c.seq.splitAt(i, j+1)
			return
		}
		if !c.seq.mergeNext(i) {
			c.seq.set(i, acc+string(quote))
			return
		}
	}
}

// introducedAlias handles "aka"-style markers: the marker is dropped and the
// word after it, with a leading "the" folded in, becomes an alias
func (c *classifier) introducedAlias(i int) outcome {
	if !lexicon.NonName.Contains(c.seq.at(i)) {
		return pass
	}
	c.name.HasNonName = true
	c.seq.remove(i)

	if !c.seq.has(i) {
		return consume
	}
	if strings.EqualFold(c.seq.at(i), filler) {
		c.seq.mergeNext(i)
	}
	c.name.Aliases = append(c.name.Aliases, c.seq.remove(i))
	return consume
}

// corporateEntity flags the record but keeps the token for the surname
func (c *classifier) corporateEntity(i int) outcome {
	if !c.name.HasCorporateEntity && lexicon.CorporateEntities.Contains(c.seq.at(i)) {
		c.name.HasCorporateEntity = true
	}
	return pass
}

func (c *classifier) supplementalInfo(i int) outcome {
	if c.name.HasSupplementalInfo || !lexicon.SupplementalInfo.Contains(c.seq.at(i)) {
		return pass
	}
	c.name.HasSupplementalInfo = true
	c.seq.remove(i)
	return consume
}

// assign hands the surviving tokens out by position: first is the fore
// name, last is the surname, anything between is the middle name.
func assign(name *model.ParsedName, seq tokens) {
	if len(seq) == 0 {
		return
	}
	name.ForeName = model.Some(seq[0])

	rest := seq[1:]
	switch len(rest) {
	case 0:
	case 1:
		name.SurName = model.Some(rest[0])
	default:
		name.MiddleName = model.Some(strings.Join(rest[:len(rest)-1], " "))
		name.SurName = model.Some(rest[len(rest)-1])
	}
}
