package suggest

import (
	"testing"

	"github.com/bastiangx/affixspell/pkg/affix"
	"github.com/bastiangx/affixspell/pkg/dictionary"
	"github.com/bastiangx/affixspell/pkg/spell"
	"github.com/bastiangx/affixspell/pkg/wordgraph"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, affText, dicText string) *Engine {
	t.Helper()
	model := affix.Parse(affText)
	graph := wordgraph.New()
	loader := dictionary.NewLoader(graph, model, affix.DefaultMaxRecurseDepth)
	loader.LoadDictionary(dicText)
	return New(spell.New(graph, model), 1024)
}

func TestReplacementTableSuggestionRanksFirst(t *testing.T) {
	aff := "REP 2\nREP ie ei\nREP ei ie\n"
	engine := newTestEngine(t, aff, "receive\n")

	results := engine.Suggest("recieve")
	require.NotEmpty(t, results)
	require.Equal(t, "receive", results[0])
}

func TestEditDistanceSuggestionFindsClosestWord(t *testing.T) {
	dic := "hello\nworld\ntest\nhappy\ncolor\nspell\nwork\nlike\nrun\njump\n"
	engine := newTestEngine(t, "", dic)

	results := engine.Suggest("helo")
	require.Contains(t, results, "hello")

	noisy := engine.Suggest("xyz")
	require.LessOrEqual(t, len(noisy), 10)
}

func TestSuggestOnCorrectWordReturnsEmpty(t *testing.T) {
	engine := newTestEngine(t, "", "hello\n")
	require.Empty(t, engine.Suggest("hello"))
}

func TestSuggestOnEmptyInputReturnsEmpty(t *testing.T) {
	engine := newTestEngine(t, "", "hello\n")
	require.Empty(t, engine.Suggest("   "))
}

func TestSuggestCapsAtTenResults(t *testing.T) {
	dic := "cat\ncar\ncan\ncap\ncab\ncad\ncam\ncaw\ncay\ncaz\ncak\n"
	engine := newTestEngine(t, "", dic)

	results := engine.Suggest("ca")
	require.LessOrEqual(t, len(results), 10)
}

// TestValidateWeightIsNotStaleAcrossStrategies guards against caching a
// candidate's weight alongside its validity: a candidate first validated by
// a non-replacement strategy (weight 0) must still earn the replacement
// table's weight 10 on a later call, since only validity is memoized.
func TestValidateWeightIsNotStaleAcrossStrategies(t *testing.T) {
	engine := newTestEngine(t, "", "receive\n")

	valid, weight, ok := engine.validate("receive", 0)
	require.True(t, ok)
	require.True(t, valid)
	require.Equal(t, 0, weight)

	valid, weight, ok = engine.validate("receive", 10)
	require.True(t, ok)
	require.True(t, valid)
	require.Equal(t, 10, weight)
}
