package affix

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandSuffixNoRemove(t *testing.T) {
	m := newEmptyModel()
	rule := &AffixRule{Type: Suffix, Entries: []AffixEntry{{Add: "s"}}}
	got := Expand(m, "hello", rule, DefaultMaxRecurseDepth)
	require.Equal(t, []string{"hellos"}, got)
}

func TestExpandSuffixWithRemoveAndCondition(t *testing.T) {
	m := newEmptyModel()
	cond := regexp.MustCompile("[^aeiou]y$")
	rule := &AffixRule{Type: Suffix, Entries: []AffixEntry{{Remove: "y", Add: "ied", Match: cond}}}

	got := Expand(m, "tested", rule, DefaultMaxRecurseDepth)
	require.Empty(t, got) // doesn't end in a consonant + y

	got = Expand(m, "marry", rule, DefaultMaxRecurseDepth)
	require.Equal(t, []string{"married"}, got)
}

func TestExpandPrefix(t *testing.T) {
	m := newEmptyModel()
	rule := &AffixRule{Type: Prefix, Entries: []AffixEntry{{Add: "un"}}}
	got := Expand(m, "test", rule, DefaultMaxRecurseDepth)
	require.Equal(t, []string{"untest"}, got)
}

func TestExpandContinuationRecursion(t *testing.T) {
	m := newEmptyModel()
	m.Rules["S"] = &AffixRule{Type: Suffix, Entries: []AffixEntry{{Add: "s"}}}
	rule := &AffixRule{Type: Suffix, Entries: []AffixEntry{{Add: "ed", Continuation: []string{"S"}}}}

	got := Expand(m, "walk", rule, DefaultMaxRecurseDepth)
	require.Contains(t, got, "walked")
	require.Contains(t, got, "walkeds")
}

func TestExpandDepthCapStopsCycles(t *testing.T) {
	m := newEmptyModel()
	m.Rules["A"] = &AffixRule{Type: Suffix, Entries: []AffixEntry{{Add: "x", Continuation: []string{"A"}}}}

	got := Expand(m, "root", m.Rules["A"], 3)
	require.NotEmpty(t, got)
	require.LessOrEqual(t, len(got), 3)
}
