/*
Package dictionary reads .dic lines and personal-dictionary lines into a
word graph, expanding each root through the affix model's rules.
*/
package dictionary

import (
	"strings"

	"github.com/bastiangx/affixspell/internal/utils"
	"github.com/bastiangx/affixspell/pkg/affix"
	"github.com/bastiangx/affixspell/pkg/wordgraph"
	"golang.org/x/text/unicode/norm"
)

// Loader inserts .dic roots (and their affix-expanded derived forms) into
// a word graph.
type Loader struct {
	Graph    *wordgraph.WordGraph
	Model    *affix.AffixModel
	MaxDepth int
}

// NewLoader creates a loader bound to graph and model.
func NewLoader(graph *wordgraph.WordGraph, model *affix.AffixModel, maxDepth int) *Loader {
	return &Loader{Graph: graph, Model: model, MaxDepth: maxDepth}
}

// LoadDictionary parses a complete .dic payload: an optional decimal
// word-count line (the first non-blank line), then one "word[/flagstring]"
// entry per line (spec §4.2, §6.2).
func (l *Loader) LoadDictionary(dicText string) {
	lines := utils.SplitLines(dicText)

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start < len(lines) && utils.IsPureDecimal(strings.TrimSpace(lines[start])) {
		start++
	}

	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		word, flagStr := splitWordFlags(line)
		if word == "" {
			continue
		}
		codes := utils.ParseFlagString(flagStr, l.Model.Flags.Encoding)
		l.AddRoot(word, codes)
	}
}

// AddRoot inserts word (unless NEEDAFFIX forbids standalone use) and
// expands it through every affix rule named by codes, inserting each
// derived surface form with an empty flag list, plus prefix x suffix
// combinations where both rules are combineable (spec §4.2).
//
// word is normalized to NFC first, so precomposed and decomposed forms of
// the same accented word (e.g. from a .dic file saved by a different
// editor) collapse to one trie entry instead of two.
func (l *Loader) AddRoot(word string, codes []string) {
	if word == "" {
		return
	}
	word = norm.NFC.String(word)

	needAffix := l.Model.Flags.NeedAffix
	skipRoot := false
	if needAffix != "" {
		for _, c := range codes {
			if c == needAffix {
				skipRoot = true
				break
			}
		}
	}
	if !skipRoot {
		l.Graph.Insert(word, codes)
	}

	for _, code := range codes {
		if _, ok := l.Model.CompoundRuleCodes[code]; ok {
			l.Model.CompoundRuleCodes[code] = append(l.Model.CompoundRuleCodes[code], word)
		}

		rule, ok := l.Model.Rules[code]
		if !ok {
			continue
		}

		derivedForms := affix.Expand(l.Model, word, rule, l.MaxDepth)
		for _, derived := range derivedForms {
			l.Graph.Insert(derived, nil)
		}

		if !rule.Combineable {
			continue
		}
		for _, other := range codes {
			if other == code {
				continue
			}
			otherRule, ok := l.Model.Rules[other]
			if !ok || !otherRule.Combineable || otherRule.Type == rule.Type {
				continue
			}
			for _, derived := range derivedForms {
				combined := affix.Expand(l.Model, derived, otherRule, l.MaxDepth)
				for _, c := range combined {
					l.Graph.Insert(c, nil)
				}
			}
		}
	}
}

// splitWordFlags finds the first unescaped '/' in line and splits it into
// the root word (with "\/" decoded to "/") and the raw flag string after
// the slash. If no unescaped slash exists, the whole line is the word and
// the flag string is empty (spec §4.2, §6.2).
func splitWordFlags(line string) (word, flagStr string) {
	runes := []rune(line)
	splitAt := -1
	for i := 0; i < len(runes); i++ {
		if runes[i] == '/' && (i == 0 || runes[i-1] != '\\') {
			splitAt = i
			break
		}
	}

	if splitAt < 0 {
		return decodeEscapedSlash(line), ""
	}
	return decodeEscapedSlash(string(runes[:splitAt])), string(runes[splitAt+1:])
}

func decodeEscapedSlash(s string) string {
	return strings.ReplaceAll(s, `\/`, "/")
}
