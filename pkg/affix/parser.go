package affix

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/bastiangx/affixspell/internal/utils"
	"golang.org/x/text/unicode/norm"
)

// Parse reads the entire .aff text into a fully-populated AffixModel.
// Malformed directives, counts, or entries are skipped; parsing continues
// with the rest of the file (spec §7). affText is normalized to NFC first
// so accented characters in PFX/SFX conditions and strip/add fields match
// however the source file encoded them.
func Parse(affText string) *AffixModel {
	model := newEmptyModel()
	lines := utils.SplitLines(norm.NFC.String(affText))

	i := 0
	for i < len(lines) {
		line := lines[i]
		i++
		if utils.IsCommentOrBlank(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "REP":
			i = parseRepTable(model, fields, lines, i)
		case "ICONV":
			i = parseConvTable(model, fields, lines, i, &model.ConversionIn)
		case "OCONV":
			i = parseConvTable(model, fields, lines, i, &model.ConversionOut)
		case "COMPOUNDRULE":
			i = parseCompoundRules(model, fields, lines, i)
		case "PFX":
			i = parseAffixRule(model, fields, lines, i, Prefix)
		case "SFX":
			i = parseAffixRule(model, fields, lines, i, Suffix)
		case "TRY":
			if len(fields) >= 2 {
				model.Flags.Try = buildTryAlphabet(fields[1])
			}
		case "KEY":
			if len(fields) >= 2 {
				model.Flags.Key = strings.Split(fields[1], "|")
			}
		case "FLAG":
			if len(fields) >= 2 {
				model.Flags.Encoding = utils.ParseFlagEncoding(fields[1])
			}
		case "ONLYINCOMPOUND":
			if len(fields) >= 2 {
				model.Flags.OnlyInCompound = fields[1]
				ensureBucket(model, fields[1])
			}
		case "FORBIDDENWORD":
			setIfPresent(fields, &model.Flags.ForbiddenWord)
		case "WARN":
			setIfPresent(fields, &model.Flags.Warn)
		case "NOSUGGEST":
			setIfPresent(fields, &model.Flags.NoSuggest)
		case "KEEPCASE":
			setIfPresent(fields, &model.Flags.KeepCase)
		case "NEEDAFFIX":
			setIfPresent(fields, &model.Flags.NeedAffix)
		case "WORDCHARS":
			setIfPresent(fields, &model.Flags.WordChars)
		case "COMPOUNDMIN":
			if len(fields) >= 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					model.Flags.CompoundMin = n
				}
			}
		case "FORBIDWARN":
			model.Flags.ForbidWarn = true
		case "SET":
			// encoding directive is ignored; text is pre-decoded (spec §6.1)
		default:
			if len(fields) >= 2 {
				model.Flags.Overflow[fields[0]] = fields[1]
			}
		}
	}

	if model.Flags.Try == "" {
		model.Flags.Try = builtinFrequencyAlphabet
	}
	if len(model.Flags.Key) == 0 {
		model.Flags.Key = append([]string{}, defaultKeyGroups...)
	}

	return model
}

func setIfPresent(fields []string, dst *string) {
	if len(fields) >= 2 {
		*dst = fields[1]
	}
}

func ensureBucket(model *AffixModel, code string) {
	if _, ok := model.CompoundRuleCodes[code]; !ok {
		model.CompoundRuleCodes[code] = nil
	}
}

// buildTryAlphabet takes the lowercase characters from chars in source
// order, then appends any missing letters from the built-in
// frequency-sorted alphabet (spec §4.1).
func buildTryAlphabet(chars string) string {
	seen := make(map[rune]bool)
	var b strings.Builder
	for _, r := range chars {
		if unicode.IsLower(r) && !seen[r] {
			seen[r] = true
			b.WriteRune(r)
		}
	}
	for _, r := range builtinFrequencyAlphabet {
		if !seen[r] {
			seen[r] = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func parseRepTable(model *AffixModel, header []string, lines []string, i int) int {
	if len(header) < 2 {
		return i
	}
	n, ok := parseCount(header[1])
	if !ok {
		return i
	}
	for c := 0; c < n && i < len(lines); c++ {
		fields := strings.Fields(lines[i])
		i++
		if len(fields) != 3 || fields[0] != "REP" {
			continue
		}
		model.ReplacementTable = append(model.ReplacementTable, ReplacementPair{
			From: fields[1],
			To:   fields[2],
		})
	}
	return i
}

func parseConvTable(model *AffixModel, header []string, lines []string, i int, dst *[]ConversionPair) int {
	if len(header) < 2 {
		return i
	}
	n, ok := parseCount(header[1])
	if !ok {
		return i
	}
	directive := header[0]
	for c := 0; c < n && i < len(lines); c++ {
		fields := strings.Fields(lines[i])
		i++
		if len(fields) != 3 || fields[0] != directive {
			continue
		}
		re, err := regexp.Compile(fields[1])
		if err != nil {
			continue // invalid patterns are silently dropped (spec §4.1)
		}
		*dst = append(*dst, ConversionPair{Pattern: re, Replacement: fields[2]})
	}
	return i
}

func parseCompoundRules(model *AffixModel, header []string, lines []string, i int) int {
	if len(header) < 2 {
		return i
	}
	n, ok := parseCount(header[1])
	if !ok {
		return i
	}
	for c := 0; c < n && i < len(lines); c++ {
		fields := strings.Fields(lines[i])
		i++
		if len(fields) != 2 || fields[0] != "COMPOUNDRULE" {
			continue
		}
		pattern := fields[1]
		model.CompoundRules = append(model.CompoundRules, pattern)
		for _, r := range pattern {
			if r == '*' || r == '?' || r == '(' || r == ')' {
				continue
			}
			ensureBucket(model, string(r))
		}
	}
	return i
}

func parseAffixRule(model *AffixModel, header []string, lines []string, i int, ruleType RuleType) int {
	if len(header) < 4 {
		return i
	}
	flag := header[1]
	combineable := header[2] == "Y"
	n, ok := parseCount(header[3])
	if !ok {
		return i
	}

	rule := &AffixRule{Type: ruleType, Combineable: combineable}
	directive := header[0]

	for c := 0; c < n && i < len(lines); c++ {
		fields := strings.Fields(lines[i])
		i++
		if len(fields) < 4 || fields[0] != directive {
			continue
		}

		remove := fields[2]
		if remove == "0" {
			remove = ""
		}

		addRaw := fields[3]
		add := addRaw
		var continuation []string
		if idx := strings.IndexByte(addRaw, '/'); idx >= 0 {
			add = addRaw[:idx]
			continuation = utils.ParseFlagString(addRaw[idx+1:], model.Flags.Encoding)
		}
		if add == "0" {
			add = ""
		}

		var match *regexp.Regexp
		if len(fields) >= 5 && fields[4] != "." {
			pattern := fields[4]
			if ruleType == Suffix {
				pattern = pattern + "$"
			} else {
				pattern = "^" + pattern
			}
			compiled, err := regexp.Compile(pattern)
			if err != nil {
				continue // entries whose condition fails to compile are skipped
			}
			match = compiled
		}

		rule.Entries = append(rule.Entries, AffixEntry{
			Add:          add,
			Remove:       remove,
			Match:        match,
			Continuation: continuation,
		})
	}

	model.Rules[flag] = rule
	return i
}
