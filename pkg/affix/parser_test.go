package affix

import (
	"testing"

	"github.com/bastiangx/affixspell/internal/utils"
	"github.com/stretchr/testify/require"
)

const testAff = `
# comment line
SET UTF-8
TRY esianrtolcdugmphbyfvkwzxjq
KEY qwertyuiop|asdfghjkl|zxcvbnm
REP 2
REP ie ei
REP ei ie
PFX A Y 1
PFX A 0 un .
SFX B Y 2
SFX B 0 s .
SFX B 0 es [sxz]
SFX D Y 1
SFX D y ied [^aeiou]y
COMPOUNDRULE 1
COMPOUNDRULE AB*
ONLYINCOMPOUND C
FORBIDDENWORD X
NOSUGGEST N
KEEPCASE K
NEEDAFFIX Z
COMPOUNDMIN 2
FORBIDWARN
`

func TestParseBasicDirectives(t *testing.T) {
	m := Parse(testAff)

	require.Equal(t, "X", m.Flags.ForbiddenWord)
	require.Equal(t, "N", m.Flags.NoSuggest)
	require.Equal(t, "K", m.Flags.KeepCase)
	require.Equal(t, "Z", m.Flags.NeedAffix)
	require.Equal(t, "C", m.Flags.OnlyInCompound)
	require.Equal(t, 2, m.Flags.CompoundMin)
	require.True(t, m.Flags.ForbidWarn)

	require.Len(t, m.ReplacementTable, 2)
	require.Equal(t, ReplacementPair{From: "ie", To: "ei"}, m.ReplacementTable[0])

	require.Contains(t, m.Rules, "A")
	require.Equal(t, Prefix, m.Rules["A"].Type)
	require.True(t, m.Rules["A"].Combineable)

	require.Contains(t, m.Rules, "B")
	require.Len(t, m.Rules["B"].Entries, 2)

	require.Equal(t, []string{"AB*"}, m.CompoundRules)
	require.Contains(t, m.CompoundRuleCodes, "A")
	require.Contains(t, m.CompoundRuleCodes, "B")
	require.Contains(t, m.CompoundRuleCodes, "C")
}

func TestTryAlphabetCompletion(t *testing.T) {
	m := Parse("TRY abc\n")
	require.True(t, len(m.Flags.Try) >= len(builtinFrequencyAlphabet))
	require.Equal(t, byte('a'), m.Flags.Try[0])
}

func TestDefaultsWhenAbsent(t *testing.T) {
	m := Parse("\n")
	require.Equal(t, builtinFrequencyAlphabet, m.Flags.Try)
	require.NotEmpty(t, m.Flags.Key)
	require.Equal(t, 3, m.Flags.CompoundMin)
}

func TestMalformedConditionSkipsEntryNotRule(t *testing.T) {
	aff := "SFX T Y 2\nSFX T 0 s [unterminated\nSFX T 0 es .\n"
	m := Parse(aff)
	require.Contains(t, m.Rules, "T")
	require.Len(t, m.Rules["T"].Entries, 1)
}

func TestFlagStringEncodings(t *testing.T) {
	require.Equal(t, []string{"A", "B"}, utils.ParseFlagString("AB", utils.FlagShort))
	require.Equal(t, []string{"Aa", "Bb"}, utils.ParseFlagString("AaBb", utils.FlagLong))
	require.Equal(t, []string{"1", "20", "3"}, utils.ParseFlagString("1,20,3", utils.FlagNum))
}
