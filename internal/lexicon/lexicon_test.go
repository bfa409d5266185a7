package lexicon

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ContainsIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		table Table
		token string
		want  bool
	}{
		{Salutations, "Dr", true},
		{Salutations, "dr", true},
		{Salutations, "St", false},
		{Generations, "iii", true},
		{Generations, "3rd", true},
		{Generations, "Third", true},
		{Generations, "Sr", true},
		{Suffixes, "PhD", true},
		{Suffixes, "Sr", false},
		{SurnamePrefixes, "Von", true},
		{SurnamePrefixes, "St", true},
		{SurnamePrefixes, "Saint", true},
		{SurnamePrefixes, "Ben", true},
		{SurnamePrefixes, "'o", true},
		{SurnamePrefixes, "O'Hara", false},
		{NonName, "aka", true},
		{NonName, "a/k/a", false},
		{CorporateEntities, "Inc", true},
		{SupplementalInfo, "deceased", true},
		{SupplementalInfo, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.table.Name()+"/"+tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.table.Contains(tt.token))
		})
	}
}

func TestTables_SalutationAndGenerationDisjoint(t *testing.T) {
	// Salutation runs before generation; an overlap would steal "Sr".
	for _, w := range Generations.Words() {
		assert.False(t, Salutations.Contains(w), "%q is both a salutation and a generation", w)
	}
}

func TestTables_NoFillerWord(t *testing.T) {
	for _, table := range All() {
		assert.False(t, table.Contains("the"), "table %s must not contain the filler word", table.Name())
	}
}

func TestTable_WordsSorted(t *testing.T) {
	words := NonName.Words()
	require.Len(t, words, NonName.Len())
	assert.True(t, sort.StringsAreSorted(words))
	assert.Contains(t, words, "AKA")
}

func TestLookup(t *testing.T) {
	table, ok := Lookup("generations")
	require.True(t, ok)
	assert.True(t, table.Contains("IV"))

	_, ok = Lookup("missing")
	assert.False(t, ok)

	assert.Len(t, All(), 7)
}
