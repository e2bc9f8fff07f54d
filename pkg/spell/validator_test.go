package spell

import (
	"testing"

	"github.com/bastiangx/affixspell/pkg/affix"
	"github.com/bastiangx/affixspell/pkg/dictionary"
	"github.com/bastiangx/affixspell/pkg/wordgraph"
	"github.com/stretchr/testify/require"
)

const nspellTestAff = `
TRY esianrtolcdugmphbyfvkwzxjq
PFX A Y 1
PFX A 0 un .
SFX B Y 1
SFX B 0 s .
SFX D Y 1
SFX D 0 ed .
`

func newValidator(t *testing.T, affText, dicText string) *Validator {
	t.Helper()
	model := affix.Parse(affText)
	graph := wordgraph.New()
	loader := dictionary.NewLoader(graph, model, affix.DefaultMaxRecurseDepth)
	loader.LoadDictionary(dicText)
	return New(graph, model)
}

func TestAffixApplicationScenario(t *testing.T) {
	v := newValidator(t, nspellTestAff, "hello/B\ntest/AD\n")

	require.True(t, v.Correct("hello"))
	require.True(t, v.Correct("hellos"))
	require.True(t, v.Correct("tested"))
	require.True(t, v.Correct("untest"))
	require.False(t, v.Correct("unhello"))
	require.True(t, v.Correct("HELLO"))
}

func TestForbiddenViaPersonalScenario(t *testing.T) {
	model := affix.Parse("")
	graph := wordgraph.New()
	loader := dictionary.NewLoader(graph, model, affix.DefaultMaxRecurseDepth)
	loader.LoadDictionary("hello\n")
	loader.LoadPersonal("*hello\n")

	v := New(graph, model)
	result := v.Spell("hello")
	require.True(t, result.Forbidden)
	require.False(t, result.Correct)
}

func TestCaseCascadeFallsBackToLowercase(t *testing.T) {
	v := newValidator(t, "", "hello\n")
	require.True(t, v.Correct("Hello"))
	require.True(t, v.Correct("HELLO"))
	require.False(t, v.Correct("earth"))
}

func TestKeepCaseBlocksLowercaseFallback(t *testing.T) {
	aff := "KEEPCASE K\n"
	model := affix.Parse(aff)
	graph := wordgraph.New()
	graph.Insert("McDonald", []string{"K"})
	graph.Insert("hello", []string{"K"})
	v := New(graph, model)

	require.True(t, v.Correct("McDonald"))
	require.False(t, v.Correct("mcdonald"))
	require.False(t, v.Correct("MCDONALD"))

	require.True(t, v.Correct("hello"))
	require.False(t, v.Correct("Hello"))
	require.False(t, v.Correct("HELLO"))
}

func TestCompoundMatching(t *testing.T) {
	aff := "COMPOUNDRULE 1\nCOMPOUNDRULE AB\n"
	model := affix.Parse(aff)
	graph := wordgraph.New()
	loader := dictionary.NewLoader(graph, model, affix.DefaultMaxRecurseDepth)
	loader.LoadDictionary("sun/A\nflower/B\n")

	v := New(graph, model)
	require.True(t, v.Correct("sunflower"))
	require.False(t, v.Correct("flowersun"))
}

func TestBlankInputIsNeutral(t *testing.T) {
	v := newValidator(t, "", "hello\n")
	result := v.Spell("   ")
	require.False(t, result.Correct)
	require.False(t, result.Forbidden)
	require.False(t, result.Warn)
}
