package dictionary

import (
	"testing"

	"github.com/bastiangx/affixspell/pkg/affix"
	"github.com/bastiangx/affixspell/pkg/wordgraph"
	"github.com/stretchr/testify/require"
)

func newTestLoader(aff string) (*Loader, *wordgraph.WordGraph) {
	model := affix.Parse(aff)
	graph := wordgraph.New()
	return NewLoader(graph, model, affix.DefaultMaxRecurseDepth), graph
}

const nspellAff = `
TRY esianrtolcdugmphbyfvkwzxjq
PFX A Y 1
PFX A 0 un .
SFX B Y 1
SFX B 0 s .
SFX D Y 1
SFX D 0 ed .
`

func TestLoadDictionaryWithAffixExpansion(t *testing.T) {
	loader, graph := newTestLoader(nspellAff)
	loader.LoadDictionary("hello/B\ntest/AD\n")

	require.True(t, graph.Has("hello"))
	require.True(t, graph.Has("hellos"))
	require.True(t, graph.Has("test"))
	require.True(t, graph.Has("untest"))
	require.True(t, graph.Has("tested"))
	require.False(t, graph.Has("unhello"))
}

func TestLoadDictionarySkipsCountHeader(t *testing.T) {
	loader, graph := newTestLoader(nspellAff)
	loader.LoadDictionary("2\nhello\nworld\n")

	require.True(t, graph.Has("hello"))
	require.True(t, graph.Has("world"))
	require.False(t, graph.Has("2"))
}

func TestEscapedSlashInWord(t *testing.T) {
	loader, graph := newTestLoader(nspellAff)
	loader.LoadDictionary(`a\/b` + "\n")

	require.True(t, graph.Has("a/b"))
}

func TestNeedAffixSkipsStandaloneRoot(t *testing.T) {
	aff := "NEEDAFFIX Z\nSFX B Y 1\nSFX B 0 s .\n"
	loader, graph := newTestLoader(aff)
	loader.LoadDictionary("cat/BZ\n")

	require.False(t, graph.Has("cat"))
	require.True(t, graph.Has("cats"))
}

func TestCombineablePrefixSuffixCombination(t *testing.T) {
	aff := "PFX A Y 1\nPFX A 0 un .\nSFX B Y 1\nSFX B 0 able .\n"
	loader, graph := newTestLoader(aff)
	loader.LoadDictionary("do/AB\n")

	require.True(t, graph.Has("undo"))
	require.True(t, graph.Has("doable"))
	require.True(t, graph.Has("undoable"))
}

func TestPersonalForbidden(t *testing.T) {
	loader, graph := newTestLoader(nspellAff)
	loader.LoadDictionary("hello\n")
	loader.LoadPersonal("*hello\n")

	flags, ok := graph.GetFlags("hello")
	require.True(t, ok)
	require.Contains(t, flags, affix.ForbiddenMarker)
}

func TestPersonalAddInheritingModel(t *testing.T) {
	loader, graph := newTestLoader(nspellAff)
	loader.LoadDictionary("hello/B\n")
	loader.LoadPersonal("hullo/hello\n")

	flags, ok := graph.GetFlags("hullo")
	require.True(t, ok)
	require.Equal(t, []string{"B"}, flags)
}

func TestCompoundRuleCodesPopulated(t *testing.T) {
	aff := "COMPOUNDRULE 1\nCOMPOUNDRULE AB*\n"
	loader, _ := newTestLoader(aff)
	loader.LoadDictionary("sun/A\nflower/B\n")

	require.Equal(t, []string{"sun"}, loader.Model.CompoundRuleCodes["A"])
	require.Equal(t, []string{"flower"}, loader.Model.CompoundRuleCodes["B"])
}
