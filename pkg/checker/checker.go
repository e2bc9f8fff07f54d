/*
Package checker assembles the word graph, affix model, dictionary loader,
validator, and suggestion engine into the public spell-checking surface
(spec §6.4).
*/
package checker

import (
	"errors"
	"strings"

	"github.com/bastiangx/affixspell/pkg/affix"
	"github.com/bastiangx/affixspell/pkg/dictionary"
	"github.com/bastiangx/affixspell/pkg/spell"
	"github.com/bastiangx/affixspell/pkg/suggest"
	"github.com/bastiangx/affixspell/pkg/wordgraph"
)

// ErrMissingAffix is returned by New when affText is empty (spec §7, the
// only hard construction error).
var ErrMissingAffix = errors.New("checker: missing affix text")

const defaultCacheCapacity = 4096

// Checker is the assembled spell-checking surface.
type Checker struct {
	graph     *wordgraph.WordGraph
	model     *affix.AffixModel
	loader    *dictionary.Loader
	validator *spell.Validator
	engine    *suggest.Engine
	maxDepth  int
}

// Result mirrors spell.Result for callers that don't want to import the
// validator package directly.
type Result = spell.Result

// Stats mirrors wordgraph.Stats.
type Stats = wordgraph.Stats

// New parses affText and, if non-empty, dicText, and assembles a Checker.
// Fails with ErrMissingAffix when affText is empty (spec §7, §6.4).
func New(affText, dicText string) (*Checker, error) {
	return NewWithCacheCapacity(affText, dicText, defaultCacheCapacity)
}

// NewWithCacheCapacity is New with an explicit suggestion validation cache
// capacity (spec §9 "memoization caches").
func NewWithCacheCapacity(affText, dicText string, cacheCapacity int) (*Checker, error) {
	if strings.TrimSpace(affText) == "" {
		return nil, ErrMissingAffix
	}

	model := affix.Parse(affText)
	graph := wordgraph.New()
	loader := dictionary.NewLoader(graph, model, affix.DefaultMaxRecurseDepth)
	if dicText != "" {
		loader.LoadDictionary(dicText)
	}

	validator := spell.New(graph, model)
	engine := suggest.New(validator, cacheCapacity)

	return &Checker{
		graph:     graph,
		model:     model,
		loader:    loader,
		validator: validator,
		engine:    engine,
		maxDepth:  affix.DefaultMaxRecurseDepth,
	}, nil
}

// Correct reports whether s is a valid word (spec §4.4, §6.4).
func (c *Checker) Correct(s string) bool {
	return c.validator.Correct(s)
}

// Spell reports correctness, forbidden, and warn status for s (spec §4.4).
func (c *Checker) Spell(s string) Result {
	return c.validator.Spell(s)
}

// Suggest returns at most 10 ranked suggestions for s (spec §4.5).
func (c *Checker) Suggest(s string) []string {
	return c.engine.Suggest(s)
}

// Add inserts word into the dictionary, inheriting modelWord's flags when
// non-empty (spec §4.6, §6.4). Clears the suggestion cache since the word
// graph's shared state changed (spec §9 "clear entirely").
func (c *Checker) Add(word, modelWord string) {
	c.loader.Add(word, modelWord)
	c.engine.Cache.Clear()
}

// Remove deletes word from the word graph; a no-op if absent (spec §4.6,
// §7).
func (c *Checker) Remove(word string) {
	c.graph.Remove(word)
	c.engine.Cache.Clear()
}

// Dictionary loads an additional .dic payload (spec §6.2, §6.4).
func (c *Checker) Dictionary(text string) {
	c.loader.LoadDictionary(text)
	c.engine.Cache.Clear()
}

// Personal loads a personal-dictionary payload (spec §6.3, §6.4).
func (c *Checker) Personal(text string) {
	c.loader.LoadPersonal(text)
	c.engine.Cache.Clear()
}

// WordCharacters returns the WORDCHARS directive's value, or nil when
// absent (spec §6.4).
func (c *Checker) WordCharacters() *string {
	if c.model.Flags.WordChars == "" {
		return nil
	}
	wc := c.model.Flags.WordChars
	return &wc
}

// GetStats returns the word graph's current size statistics (spec §6.4).
func (c *Checker) GetStats() Stats {
	return c.graph.Stats()
}

// HasPrefix reports whether any stored word has prefix p (spec §8.1).
func (c *Checker) HasPrefix(p string) bool {
	return c.graph.HasPrefix(p)
}

// RebuildCompoundPatterns recompiles compound-rule patterns from the
// model's current state (spec §9 open question #1 — not automatic).
func (c *Checker) RebuildCompoundPatterns() {
	c.validator.RebuildCompoundPatterns()
}
