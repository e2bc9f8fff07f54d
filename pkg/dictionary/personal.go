package dictionary

import (
	"strings"

	"github.com/bastiangx/affixspell/internal/utils"
	"github.com/bastiangx/affixspell/pkg/affix"
	"golang.org/x/text/unicode/norm"
)

// Add inserts word, inheriting modelWord's flag list from the graph when
// modelWord is non-empty (spec §4.6 "add(word, model?)").
func (l *Loader) Add(word, modelWord string) {
	if modelWord == "" {
		l.AddRoot(word, nil)
		return
	}
	flags, _ := l.Graph.GetFlags(modelWord)
	l.AddRoot(word, flags)
}

// LoadPersonal parses a personal-dictionary payload: one entry per line,
// "*word" marks forbidden, "word/model" inherits model's flags, anything
// else is a plain add (spec §4.6, §6.3).
func (l *Loader) LoadPersonal(text string) {
	for _, line := range utils.SplitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "*"):
			l.markForbidden(line[1:])
		default:
			if idx := strings.IndexByte(line, '/'); idx >= 0 {
				l.Add(line[:idx], line[idx+1:])
			} else {
				l.Add(line, "")
			}
		}
	}
}

// markForbidden sets FORBIDDENWORD (or the internal marker, when the
// affix model defines no such flag) on word's existing flag set.
func (l *Loader) markForbidden(word string) {
	word = norm.NFC.String(word)
	existing, _ := l.Graph.GetFlags(word)

	marker := affix.ForbiddenMarker
	if l.Model.Flags.ForbiddenWord != "" {
		marker = l.Model.Flags.ForbiddenWord
	}

	already := false
	for _, f := range existing {
		if f == marker {
			already = true
			break
		}
	}
	newFlags := existing
	if !already {
		newFlags = append(append([]string{}, existing...), marker)
	}
	l.Graph.Insert(word, newFlags)
}
