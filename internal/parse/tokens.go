package parse

import (
	"slices"
	"strings"
)

// separators are dropped from the input before it is split
var separators = strings.NewReplacer(".", "", ",", "", "/", "", `\`, "")

// tokenize strips separators, collapses whitespace runs and splits the input
// into words. Empty or punctuation-only input yields no tokens.
func tokenize(input string) tokens {
	return tokens(strings.Fields(separators.Replace(input)))
}

// tokens is the working sequence consumed by the classifier. Reads past
// either end yield "" and report absence rather than panic.
type tokens []string

// has reports whether position i holds a token
func (t tokens) has(i int) bool {
	return i >= 0 && i < len(t)
}

// at returns the token at i, or "" when there is none
func (t tokens) at(i int) string {
	if !t.has(i) {
		return ""
	}
	return t[i]
}

// set replaces the token at i
func (t tokens) set(i int, s string) {
	if t.has(i) {
		t[i] = s
	}
}

// remove deletes the token at i and returns it
func (t *tokens) remove(i int) string {
	if !t.has(i) {
		return ""
	}
	s := (*t)[i]
	*t = slices.Delete(*t, i, i+1)
	return s
}

// mergeNext joins the token at i with its follower, space separated, and
// drops the follower. It reports false and leaves the sequence untouched
// when there is no follower.
func (t *tokens) mergeNext(i int) bool {
	if !t.has(i) || !t.has(i+1) {
		return false
	}
	(*t)[i] += " " + (*t)[i+1]
	*t = slices.Delete(*t, i+1, i+2)
	return true
}

// splitAt cuts the token at i after byte offset n and inserts the remainder
// as a new token right after it.
func (t *tokens) splitAt(i, n int) {
	s := t.at(i)
	if n <= 0 || n >= len(s) {
		return
	}
	(*t)[i] = s[:n]
	*t = slices.Insert(*t, i+1, s[n:])
}
