package utils

import "strings"

// FlagEncoding is the FLAG directive's encoding mode (spec §3.4, §4.1).
type FlagEncoding int

const (
	FlagShort FlagEncoding = iota
	FlagLong
	FlagNum
	FlagUTF8
)

// ParseFlagEncoding maps the FLAG directive's argument to a FlagEncoding,
// defaulting to short for anything unrecognized.
func ParseFlagEncoding(arg string) FlagEncoding {
	switch arg {
	case "long":
		return FlagLong
	case "num":
		return FlagNum
	case "UTF-8":
		return FlagUTF8
	default:
		return FlagShort
	}
}

// ParseFlagString decodes a raw flag string into individual flag codes
// according to the given encoding (spec §4.1 "Flag-string parsing").
func ParseFlagString(raw string, enc FlagEncoding) []string {
	if raw == "" {
		return nil
	}
	switch enc {
	case FlagLong:
		runes := []rune(raw)
		var codes []string
		for i := 0; i+1 < len(runes); i += 2 {
			codes = append(codes, string(runes[i:i+2]))
		}
		return codes
	case FlagNum:
		parts := strings.Split(raw, ",")
		codes := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				codes = append(codes, p)
			}
		}
		return codes
	default: // FlagShort, FlagUTF8: one code point per flag
		runes := []rune(raw)
		codes := make([]string, 0, len(runes))
		for _, r := range runes {
			codes = append(codes, string(r))
		}
		return codes
	}
}
