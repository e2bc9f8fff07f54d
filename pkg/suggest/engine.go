/*
Package suggest generates and ranks spelling suggestions for a token that
fails validation, using the validator's FindForm for candidate checking
(spec §4.5).
*/
package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/affixspell/internal/utils"
	"github.com/bastiangx/affixspell/pkg/spell"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const maxSuggestions = 10

type candidate struct {
	text   string
	weight int
}

type validCandidate struct {
	text        string
	weight      int
	casingMatch bool
}

// Engine ranks and generates suggestions against a Validator.
type Engine struct {
	Validator *spell.Validator
	Cache     *ValidationCache
	collator  *collate.Collator
}

// New builds a suggestion engine backed by a memoization cache of the
// given capacity (spec §9 "memoization caches").
func New(v *spell.Validator, cacheCapacity int) *Engine {
	return &Engine{
		Validator: v,
		Cache:     NewValidationCache(cacheCapacity),
		collator:  collate.New(language.Und),
	}
}

// Suggest returns at most 10 distinct suggestions for token, ordered by
// decreasing likelihood (spec §4.5).
func (e *Engine) Suggest(token string) []string {
	v := strings.TrimSpace(token)
	if v == "" {
		return nil
	}
	v = e.Validator.ApplyConversionIn(v)
	if v == "" || e.Validator.Correct(v) {
		return nil
	}

	casing := utils.DetectCasing(v)
	seeds := caseVariants(v, casing)

	var candidates []candidate
	for _, s := range replacementCandidates(v, e.Validator.Model.ReplacementTable) {
		candidates = append(candidates, candidate{s, 10})
	}
	for _, s := range keyboardSwap(v, e.Validator.Model.Flags.Key) {
		candidates = append(candidates, candidate{s, 0})
	}
	for _, s := range doubleMissingChar(v) {
		candidates = append(candidates, candidate{s, 0})
	}
	for _, s := range seeds {
		candidates = append(candidates, candidate{s, 0})
	}
	for _, s := range editDistance1(seeds, e.Validator.Model.Flags.Try) {
		candidates = append(candidates, candidate{s, 0})
	}

	valid := e.validateAll(candidates, casing)

	if len(valid) == 0 {
		d1 := make([]string, 0, len(candidates))
		for _, c := range candidates {
			d1 = append(d1, c.text)
		}
		for _, batch := range editDistance2Batches(d1, len([]rune(v))) {
			var batchCandidates []candidate
			for _, s := range editDistance1(batch, e.Validator.Model.Flags.Try) {
				batchCandidates = append(batchCandidates, candidate{s, 0})
			}
			batchValid := e.validateAll(batchCandidates, casing)
			if len(batchValid) > 0 {
				valid = batchValid
				break
			}
		}
	}

	return e.rankAndOutput(valid, casing)
}

// validateAll checks every raw candidate through FindForm, memoizing by
// exact string, and discards NOSUGGEST terminals (spec §4.5.2).
func (e *Engine) validateAll(candidates []candidate, inputCasing utils.Casing) []validCandidate {
	seen := make(map[string]bool, len(candidates))
	var out []validCandidate

	for _, c := range candidates {
		if c.text == "" || seen[c.text] {
			continue
		}
		seen[c.text] = true

		valid, weight, ok := e.validate(c.text, c.weight)
		if !ok || !valid {
			continue
		}
		out = append(out, validCandidate{
			text:        c.text,
			weight:      weight,
			casingMatch: utils.DetectCasing(c.text) == inputCasing,
		})
	}
	return out
}

// validate reports whether text is a valid word and, if so, the weight it
// earns from the strategy that produced it this call. Validity is memoized
// in e.Cache since it depends only on graph state; weight is strategy-
// dependent (spec §4.5.2) and is always recomputed, never cached, so a
// candidate string revalidated later under a different strategy gets that
// strategy's weight instead of one memoized from an earlier call.
func (e *Engine) validate(text string, strategyWeight int) (valid bool, weight int, ok bool) {
	isValid, found := e.Cache.Get(text)
	if !found {
		flags, _, foundForm := e.Validator.FindForm(text, false)
		isValid = foundForm && !containsFlagValue(flags, e.Validator.Model.Flags.NoSuggest)
		e.Cache.Put(text, isValid)
	}

	w := 0
	if isValid {
		w = strategyWeight
	}
	return isValid, w, true
}

func containsFlagValue(flags []string, target string) bool {
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

// rankAndOutput implements spec §4.5.3-4.5.4: sort by weight, then casing
// match, then locale-aware alphabetical; apply OCONV; dedupe
// case-insensitively; cap at 10.
func (e *Engine) rankAndOutput(valid []validCandidate, _ utils.Casing) []string {
	sort.SliceStable(valid, func(i, j int) bool {
		a, b := valid[i], valid[j]
		if a.weight != b.weight {
			return a.weight > b.weight
		}
		if a.casingMatch != b.casingMatch {
			return a.casingMatch
		}
		return e.collator.CompareString(a.text, b.text) < 0
	})

	seen := make(map[string]bool, len(valid))
	var out []string
	for _, c := range valid {
		converted := e.Validator.ApplyConversionOut(c.text)
		key := strings.ToLower(converted)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, converted)
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}
