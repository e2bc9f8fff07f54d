/*
Package affix parses the Hunspell .aff grammar into an AffixModel and
expands a root word plus its flag codes into the full set of derived
surface forms.
*/
package affix

import (
	"regexp"

	"github.com/bastiangx/affixspell/internal/utils"
)

// RuleType distinguishes prefix rules from suffix rules (spec §3.3).
type RuleType int

const (
	Suffix RuleType = iota
	Prefix
)

// AffixEntry is one transformation within a rule (spec §3.3).
type AffixEntry struct {
	Add          string
	Remove       string
	Match        *regexp.Regexp // nil means unconditional
	Continuation []string
}

// AffixRule is a named group of transformation entries (spec §3.3).
type AffixRule struct {
	Type        RuleType
	Combineable bool
	Entries     []AffixEntry
}

// ReplacementPair is one REP directive entry (spec §3.2).
type ReplacementPair struct {
	From string
	To   string
}

// ConversionPair is one ICONV/OCONV directive entry (spec §3.2, §6.1).
type ConversionPair struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Flags holds the scalar settings of spec §3.4. The enumerated options are
// explicit fields; anything else goes in Overflow keyed by directive name
// (spec §9 "Dynamic shape of flags").
type Flags struct {
	Encoding utils.FlagEncoding

	Key []string // keyboard adjacency groups (KEY)
	Try string   // TRY alphabet, already completed with frequency fallback

	NoSuggest      string
	Warn           string
	ForbiddenWord  string
	KeepCase       string
	OnlyInCompound string
	NeedAffix      string
	WordChars      string

	CompoundMin int
	ForbidWarn  bool

	Overflow map[string]string
}

// AffixModel is the immutable-after-parse result of parsing a .aff file
// (spec §3.2).
type AffixModel struct {
	Rules             map[string]*AffixRule
	ReplacementTable  []ReplacementPair
	ConversionIn      []ConversionPair
	ConversionOut     []ConversionPair
	CompoundRules     []string
	CompoundRuleCodes map[string][]string // flag code -> roots carrying it; populated by the dictionary loader
	Flags             Flags
}

// ForbiddenMarker is the internal flag personal dictionaries attach to a
// word via "*word" when the affix model has no FORBIDDENWORD flag defined
// (spec §4.4 step 3, §6.3).
const ForbiddenMarker = "__FORBIDDEN__"

// builtinFrequencyAlphabet is the built-in frequency-sorted English
// alphabet used to complete TRY when the .aff's own TRY chars don't cover
// every letter (spec §4.1).
const builtinFrequencyAlphabet = "etaoinshrdlcumwfgypbvkjxqz"

// defaultKeyGroups is the built-in QWERTY-ish keyboard layout used when no
// KEY directive is present (spec §4.1).
var defaultKeyGroups = []string{
	"qwertyuiop", "asdfghjkl", "zxcvbnm",
	"qaz", "wsx", "edc", "rfv", "tgb", "yhn", "ujm", "ik", "ol", "p",
}

func newEmptyModel() *AffixModel {
	return &AffixModel{
		Rules:             make(map[string]*AffixRule),
		CompoundRuleCodes: make(map[string][]string),
		Flags: Flags{
			CompoundMin: 3,
			Overflow:    make(map[string]string),
		},
	}
}
