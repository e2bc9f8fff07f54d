package suggest

import (
	"strings"
	"unicode"

	"github.com/bastiangx/affixspell/internal/utils"
	"github.com/bastiangx/affixspell/pkg/affix"
)

// replacementCandidates implements strategy 1 (spec §4.5.1): for every
// (from, to) pair, substitute every occurrence offset of from in v.
func replacementCandidates(v string, table []affix.ReplacementPair) []string {
	var out []string
	for _, pair := range table {
		if pair.From == "" {
			continue
		}
		start := 0
		for start <= len(v) {
			idx := strings.Index(v[start:], pair.From)
			if idx < 0 {
				break
			}
			pos := start + idx
			out = append(out, v[:pos]+pair.To+v[pos+len(pair.From):])
			start = pos + len(pair.From)
		}
	}
	return out
}

// keyboardSwap implements strategy 2: single-character substitutions drawn
// from each KEY adjacency group containing the lowercase form of the
// character at that position, preserving the original position's case.
func keyboardSwap(v string, keyGroups []string) []string {
	runes := []rune(v)
	var out []string
	for i, c := range runes {
		cl := unicode.ToLower(c)
		upper := c != cl
		seen := map[rune]bool{}
		for _, group := range keyGroups {
			if !strings.ContainsRune(group, cl) {
				continue
			}
			for _, g := range group {
				if g == cl || seen[g] {
					continue
				}
				seen[g] = true
				rep := g
				if upper {
					rep = unicode.ToUpper(g)
				}
				variant := append([]rune{}, runes...)
				variant[i] = rep
				out = append(out, string(variant))
			}
		}
	}
	return out
}

// doubleMissingChar implements strategy 3: a growing candidate set seeded
// with "", extended one character at a time, branching into a doubled
// form whenever the current character differs from the next one, capped
// at three branch generations.
func doubleMissingChar(v string) []string {
	runes := []rune(v)
	accumulated := []string{""}
	growths := 0
	for i, c := range runes {
		extended := make([]string, 0, len(accumulated)*2)
		for _, e := range accumulated {
			differsFromNext := i+1 >= len(runes) || runes[i+1] != c
			if growths < 3 && differsFromNext {
				extended = append(extended, e+string(c)+string(c))
				growths++
			}
			extended = append(extended, e+string(c))
		}
		accumulated = extended
	}
	return accumulated
}

// caseVariants implements strategy 4.
func caseVariants(v string, casing utils.Casing) []string {
	variants := []string{v}
	lower := strings.ToLower(v)
	if v == lower || casing == utils.CasingUndefined {
		variants = append(variants, utils.Capitalize(v))
	}
	upper := strings.ToUpper(v)
	if v != upper {
		variants = append(variants, upper)
	}
	return variants
}

func casedness(r rune) int {
	switch {
	case unicode.IsUpper(r):
		return 1
	case unicode.IsLower(r):
		return -1
	default:
		return 0
	}
}

// editDistance1 implements strategy 5: remove, transpose, a case-switch
// variant pair, and TRY-alphabet insert/replace, applied at every rune
// position of every seed in values.
func editDistance1(values []string, try string) []string {
	tryRunes := []rune(try)
	var out []string

	for _, w := range values {
		runes := []rune(w)
		n := len(runes)

		for p := 0; p <= n; p++ {
			if p < n {
				out = append(out, string(runes[:p])+string(runes[p+1:]))
			}
			if p+1 < n {
				transposed := append([]rune{}, runes...)
				transposed[p], transposed[p+1] = transposed[p+1], transposed[p]
				out = append(out, string(transposed))
			}
			if p < n && p+1 < n && (p+2 >= n || casedness(runes[p+1]) != casedness(runes[p+2])) {
				out = append(out, string(runes[:p])+utils.SwitchCase(string(runes[p+1:])))
				out = append(out, string(runes[:p])+utils.SwitchCase(string(runes[p+1]))+utils.SwitchCase(string(runes[p]))+string(runes[p+2:]))
			}

			var anchorUpper bool
			if p < n {
				anchorUpper = unicode.IsUpper(runes[p])
			}
			for _, ch := range tryRunes {
				out = append(out, string(runes[:p])+string(ch)+string(runes[p:]))
				if p < n {
					out = append(out, string(runes[:p])+string(ch)+string(runes[p+1:]))
				}
				if anchorUpper && unicode.IsLower(ch) {
					upperCh := unicode.ToUpper(ch)
					out = append(out, string(runes[:p])+string(upperCh)+string(runes[p:]))
					if p < n {
						out = append(out, string(runes[:p])+string(upperCh)+string(runes[p+1:]))
					}
				}
			}
		}
	}
	return out
}

// editDistance2Batches implements strategy 6's batching formula: batch
// size max((10-len(v))^3, 1), total items bounded by
// min(len(d1), max(15-len(v), 3)^3).
func editDistance2Batches(d1 []string, lenV int) [][]string {
	batchSize := cube(max1(10 - lenV))
	cap_ := min2(len(d1), cube(max3(15-lenV, 3)))

	limited := d1
	if len(limited) > cap_ {
		limited = limited[:cap_]
	}

	var batches [][]string
	for i := 0; i < len(limited); i += batchSize {
		end := i + batchSize
		if end > len(limited) {
			end = len(limited)
		}
		batches = append(batches, limited[i:end])
	}
	return batches
}

func cube(n int) int { return n * n * n }

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func max3(n, floor int) int {
	if n < floor {
		return floor
	}
	return n
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}
