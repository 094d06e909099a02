package assist

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Kind tags the parse strategy that succeeded on a raw response.
type Kind int

const (
	// KindJSON means the response body (possibly after unfencing) was valid JSON.
	KindJSON Kind = iota
	// KindFencedText means a fenced block was found but its body is plain text.
	KindFencedText
	// KindDelimitedLines means the response decomposed into bullet-like lines.
	KindDelimitedLines
	// KindUnrecognized means no strategy recovered anything usable.
	KindUnrecognized
)

// Parsed is the tagged result of running the parser chain over a response.
// Exactly one of JSON, Text, or Lines is meaningful depending on Kind.
type Parsed struct {
	Kind  Kind
	JSON  json.RawMessage
	Text  string
	Lines []string
}

var fenceRe = regexp.MustCompile("(?is)^```[a-z]*\\s*\\n?(.*?)```\\s*$")

// Parse runs the typed parser chain over a raw model response: strict JSON,
// then fenced-block stripping, then bullet-line splitting. The first
// strategy that yields something usable wins.
func Parse(raw string) Parsed {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Parsed{Kind: KindUnrecognized}
	}

	if json.Valid([]byte(trimmed)) && looksStructured(trimmed) {
		return Parsed{Kind: KindJSON, JSON: json.RawMessage(trimmed)}
	}

	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		inner := strings.TrimSpace(m[1])
		if json.Valid([]byte(inner)) && looksStructured(inner) {
			return Parsed{Kind: KindJSON, JSON: json.RawMessage(inner)}
		}
		if inner != "" {
			return Parsed{Kind: KindFencedText, Text: inner}
		}
	}

	// Some models prefix chatter before the JSON body; salvage the first
	// array or object block before falling back to line splitting.
	if block := extractJSONBlock(trimmed); block != "" {
		return Parsed{Kind: KindJSON, JSON: json.RawMessage(block)}
	}

	if lines := SplitBullets(trimmed); len(lines) > 0 {
		return Parsed{Kind: KindDelimitedLines, Lines: lines}
	}

	return Parsed{Kind: KindUnrecognized}
}

func looksStructured(s string) bool {
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")
}

func extractJSONBlock(s string) string {
	for _, pair := range [][2]string{{"[", "]"}, {"{", "}"}} {
		start := strings.Index(s, pair[0])
		end := strings.LastIndex(s, pair[1])
		if start != -1 && end > start {
			candidate := strings.TrimSpace(s[start : end+1])
			if json.Valid([]byte(candidate)) {
				return candidate
			}
		}
	}
	return ""
}

var bulletSplitRe = regexp.MustCompile(`\r?\n|\x{2022}|(?:^|\s)-\s`)
var bulletPrefixRe = regexp.MustCompile(`^\s*[-*\x{2022}]\s*`)

// SplitBullets decomposes loosely delimited text into cleaned bullet lines.
func SplitBullets(text string) []string {
	parts := bulletSplitRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		cleaned := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(p, ""))
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
