package assist

import (
	"encoding/json"
	"html"
	"strings"
)

// SummarySuggestion is one leveled suggestion returned by the summary
// prompt.
type SummarySuggestion struct {
	Summary         string `json:"summary"`
	ExperienceLevel string `json:"experience_level"`
}

// ParseSummarySuggestions normalizes the summary-prompt response into a list
// of suggestions. A single object is wrapped into a one-element list.
func ParseSummarySuggestions(raw string) ([]SummarySuggestion, error) {
	parsed := Parse(raw)
	if parsed.Kind != KindJSON {
		return nil, ErrUnusableResponse
	}

	var list []SummarySuggestion
	if err := json.Unmarshal(parsed.JSON, &list); err == nil && len(list) > 0 {
		return list, nil
	}

	var single SummarySuggestion
	if err := json.Unmarshal(parsed.JSON, &single); err == nil && single.Summary != "" {
		return []SummarySuggestion{single}, nil
	}
	return nil, ErrUnusableResponse
}

// NormalizeBulletsHTML converts a bullet-generation response into a single
// <ul> fragment. Accepted shapes, tried in order: a JSON array of strings, a
// JSON object with a bullet_points array, HTML that already contains <li>
// items, and loosely delimited bullet lines.
func NormalizeBulletsHTML(raw string) (string, error) {
	if trimmed := strings.TrimSpace(raw); strings.Contains(trimmed, "<li") && !strings.HasPrefix(trimmed, "```") {
		return trimmed, nil
	}
	parsed := Parse(raw)
	switch parsed.Kind {
	case KindJSON:
		var items []string
		if err := json.Unmarshal(parsed.JSON, &items); err == nil {
			if out := toHTMLList(items); out != "" {
				return out, nil
			}
		}
		var wrapped struct {
			BulletPoints []string `json:"bullet_points"`
		}
		if err := json.Unmarshal(parsed.JSON, &wrapped); err == nil {
			if out := toHTMLList(wrapped.BulletPoints); out != "" {
				return out, nil
			}
		}
		return "", ErrUnusableResponse
	case KindFencedText:
		return bulletsFromText(parsed.Text)
	case KindDelimitedLines:
		if out := toHTMLList(parsed.Lines); out != "" {
			return out, nil
		}
		return "", ErrUnusableResponse
	default:
		return "", ErrUnusableResponse
	}
}

func bulletsFromText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if strings.Contains(trimmed, "<li") {
		return trimmed, nil
	}
	if out := toHTMLList(SplitBullets(trimmed)); out != "" {
		return out, nil
	}
	return "", ErrUnusableResponse
}

// NormalizeDescription extracts plain prose from a response, unfencing it if
// the model wrapped it in a code block.
func NormalizeDescription(raw string) (string, error) {
	parsed := Parse(raw)
	switch parsed.Kind {
	case KindFencedText:
		return parsed.Text, nil
	case KindDelimitedLines:
		return strings.Join(parsed.Lines, " "), nil
	case KindJSON:
		var s string
		if err := json.Unmarshal(parsed.JSON, &s); err == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s), nil
		}
		return "", ErrUnusableResponse
	default:
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			return trimmed, nil
		}
		return "", ErrEmptyResponse
	}
}

// Unfence strips a surrounding code fence, keeping the body verbatim. Used
// where the response is long-form text and line breaks must survive.
func Unfence(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyResponse
	}
	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		if inner := strings.TrimSpace(m[1]); inner != "" {
			return inner, nil
		}
		return "", ErrEmptyResponse
	}
	return trimmed, nil
}

func toHTMLList(items []string) string {
	var b strings.Builder
	count := 0
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(strings.TrimSpace(item)))
		b.WriteString("</li>")
		count++
	}
	if count == 0 {
		return ""
	}
	return "<ul>" + b.String() + "</ul>"
}
