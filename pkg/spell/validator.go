/*
Package spell implements the validator: normalization, the case-cascade
word lookup (FindForm), and compound-pattern matching that together
answer "is this token a valid word?" (spec §4.4).
*/
package spell

import (
	"regexp"
	"strings"

	"github.com/bastiangx/affixspell/internal/utils"
	"github.com/bastiangx/affixspell/pkg/affix"
	"github.com/bastiangx/affixspell/pkg/wordgraph"
	"golang.org/x/text/unicode/norm"
)

// Result is the outcome of Spell (spec §4.4).
type Result struct {
	Correct   bool
	Forbidden bool
	Warn      bool
}

// Validator answers correctness questions against a word graph and its
// affix model.
type Validator struct {
	Graph            *wordgraph.WordGraph
	Model            *affix.AffixModel
	compoundPatterns []*regexp.Regexp
}

// New builds a Validator, precompiling the compound-rule patterns once
// (spec §4.4.2, §9 — not rebuilt on later mutation).
func New(graph *wordgraph.WordGraph, model *affix.AffixModel) *Validator {
	return &Validator{
		Graph:            graph,
		Model:            model,
		compoundPatterns: buildCompoundPatterns(model),
	}
}

// RebuildCompoundPatterns recompiles the compound patterns from the
// model's current CompoundRuleCodes. Not called automatically by any
// mutator (spec §9 open question #1) — exposed for callers who want the
// opposite tradeoff.
func (v *Validator) RebuildCompoundPatterns() {
	v.compoundPatterns = buildCompoundPatterns(v.Model)
}

// Correct reports whether token is a valid word.
func (v *Validator) Correct(token string) bool {
	return v.Spell(token).Correct
}

// Spell implements spec §4.4's full algorithm.
func (v *Validator) Spell(token string) Result {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return Result{}
	}

	normalized := v.ApplyConversionIn(norm.NFC.String(trimmed))

	flags, _, found := v.FindForm(normalized, true)
	result := Result{}
	if found {
		result.Correct = true
		if v.isForbidden(flags) {
			result.Forbidden = true
			result.Correct = false
		}
		if containsFlag(flags, v.Model.Flags.Warn) {
			result.Warn = true
			if v.Model.Flags.ForbidWarn {
				result.Correct = false
			}
		}
		return result
	}

	if v.IsCompound(normalized) {
		result.Correct = true
	}
	return result
}

// FindForm implements the case cascade of spec §4.4.1: exact match, then
// (for all-uppercase input) capitalized, then lowercase, skipping
// candidates the ignore rule rejects.
func (v *Validator) FindForm(value string, includeForbidden bool) (flags []string, matched string, ok bool) {
	if exactFlags, found := v.Graph.GetFlags(value); found {
		if !containsFlag(exactFlags, v.Model.Flags.OnlyInCompound) &&
			(includeForbidden || !v.isForbidden(exactFlags)) {
			return exactFlags, value, true
		}
	}

	if utils.IsAllUpper(value) {
		runes := []rune(value)
		candidate := string(runes[:1]) + strings.ToLower(string(runes[1:]))
		if f, ok := v.tryIgnoreCandidate(candidate, includeForbidden); ok {
			return f, candidate, true
		}
	}

	lowerCandidate := strings.ToLower(value)
	if f, ok := v.tryIgnoreCandidate(lowerCandidate, includeForbidden); ok {
		return f, lowerCandidate, true
	}

	return nil, "", false
}

func (v *Validator) tryIgnoreCandidate(candidate string, includeForbidden bool) ([]string, bool) {
	flags, found := v.Graph.GetFlags(candidate)
	if !found {
		return nil, false
	}
	if containsFlag(flags, v.Model.Flags.KeepCase) {
		return nil, false
	}
	if !includeForbidden && v.isForbidden(flags) {
		return nil, false
	}
	return flags, true
}

func (v *Validator) isForbidden(flags []string) bool {
	return containsFlag(flags, v.Model.Flags.ForbiddenWord) || containsFlag(flags, affix.ForbiddenMarker)
}

func containsFlag(flags []string, target string) bool {
	if target == "" {
		return false
	}
	for _, f := range flags {
		if f == target {
			return true
		}
	}
	return false
}

// ApplyConversionIn runs every ICONV pair over s, in declared order
// (spec §3.2, §4.4).
func (v *Validator) ApplyConversionIn(s string) string {
	return applyConversions(s, v.Model.ConversionIn)
}

// ApplyConversionOut runs every OCONV pair over s, in declared order
// (spec §3.2, §4.5.4).
func (v *Validator) ApplyConversionOut(s string) string {
	return applyConversions(s, v.Model.ConversionOut)
}

func applyConversions(s string, pairs []affix.ConversionPair) string {
	for _, p := range pairs {
		s = p.Pattern.ReplaceAllString(s, p.Replacement)
	}
	return s
}

// IsCompound reports whether token matches any precompiled compound
// pattern and is long enough to qualify (spec §4.4.2).
func (v *Validator) IsCompound(token string) bool {
	if len([]rune(token)) < 2*v.Model.Flags.CompoundMin {
		return false
	}
	for _, p := range v.compoundPatterns {
		if p.MatchString(token) {
			return true
		}
	}
	return false
}

// buildCompoundPatterns compiles every COMPOUNDRULE pattern by substituting
// each literal flag character with an alternation of its registered roots
// (spec §4.4.2). Rules referencing an undefined or empty-bucket flag, or
// that fail to compile, are omitted (spec §7).
func buildCompoundPatterns(model *affix.AffixModel) []*regexp.Regexp {
	var patterns []*regexp.Regexp
	for _, rule := range model.CompoundRules {
		built, ok := buildCompoundPattern(model, rule)
		if !ok {
			continue
		}
		re, err := regexp.Compile("^" + built + "$")
		if err != nil {
			continue
		}
		patterns = append(patterns, re)
	}
	return patterns
}

func buildCompoundPattern(model *affix.AffixModel, rule string) (string, bool) {
	var b strings.Builder
	for _, r := range rule {
		switch r {
		case '*', '?':
			b.WriteRune(r)
		case '(':
			b.WriteByte('(')
		case ')':
			b.WriteString(")?")
		default:
			roots, ok := model.CompoundRuleCodes[string(r)]
			if !ok || len(roots) == 0 {
				return "", false
			}
			b.WriteByte('(')
			for i, word := range roots {
				if i > 0 {
					b.WriteByte('|')
				}
				b.WriteString(regexp.QuoteMeta(word))
			}
			b.WriteByte(')')
		}
	}
	return b.String(), true
}
