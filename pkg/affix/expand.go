package affix

import "strings"

// DefaultMaxRecurseDepth caps continuation-flag recursion so malformed
// affix data with cyclic continuations can't spin forever (spec §9).
const DefaultMaxRecurseDepth = 16

// Expand applies rule to value, producing every surface form the rule's
// entries (and their continuation flags, recursively) generate (spec
// §4.3). maxDepth bounds the continuation recursion.
func Expand(model *AffixModel, value string, rule *AffixRule, maxDepth int) []string {
	return expand(model, value, rule, maxDepth, 0)
}

func expand(model *AffixModel, value string, rule *AffixRule, maxDepth, depth int) []string {
	if rule == nil || depth >= maxDepth {
		return nil
	}

	var results []string
	for _, entry := range rule.Entries {
		if entry.Match != nil && !entry.Match.MatchString(value) {
			continue
		}

		var newForm string
		switch {
		case entry.Remove != "" && rule.Type == Suffix:
			if !strings.HasSuffix(value, entry.Remove) {
				continue
			}
			newForm = value[:len(value)-len(entry.Remove)] + entry.Add
		case entry.Remove != "" && rule.Type == Prefix:
			if !strings.HasPrefix(value, entry.Remove) {
				continue
			}
			newForm = entry.Add + value[len(entry.Remove):]
		case rule.Type == Suffix:
			newForm = value + entry.Add
		default: // Prefix, no remove
			newForm = entry.Add + value
		}

		results = append(results, newForm)

		for _, cont := range entry.Continuation {
			if contRule, ok := model.Rules[cont]; ok {
				results = append(results, expand(model, newForm, contRule, maxDepth, depth+1)...)
			}
		}
	}
	return results
}
