package assist

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Guidance is the structured career analysis derived from resume text. The
// field names match the wire format the guidance dashboard consumes.
type Guidance struct {
	FutureProjects string   `json:"future_projects"`
	SkillUpgrade   string   `json:"skill_upgrade"`
	CareerRoadmap  string   `json:"career_roadmap"`
	Strengths      string   `json:"strengths"`
	Weaknesses     string   `json:"weaknesses"`
	ResumeAnalysis string   `json:"resume_analysis"`
	Skills         []string `json:"skills"`
	ATSScore       Score    `json:"ats_score"`
	ResumeScore    Score    `json:"resume_score"`
	ATSFeedback    string   `json:"ats_feedback"`
	ResumeFeedback string   `json:"resume_feedback"`
}

// Score is a 0-100 rating. Models emit it as a bare number, a float, or a
// quoted string; all three decode, and the value is clamped to the range.
type Score int

func (s *Score) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		var quoted string
		if strErr := json.Unmarshal(data, &quoted); strErr != nil {
			return err
		}
		n = json.Number(strings.TrimSpace(quoted))
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("score %q: %w", n.String(), err)
	}
	v := int(f)
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	*s = Score(v)
	return nil
}

// ParseGuidance decodes a model response into Guidance. Only a JSON object
// is usable here; the parser chain still tolerates fences and leading
// chatter around it. Blank skill entries are dropped.
func ParseGuidance(raw string) (Guidance, error) {
	parsed := Parse(raw)
	if parsed.Kind != KindJSON {
		return Guidance{}, fmt.Errorf("%w: guidance response is not JSON", ErrUnusableResponse)
	}

	var g Guidance
	if err := json.Unmarshal(parsed.JSON, &g); err != nil {
		return Guidance{}, fmt.Errorf("%w: %v", ErrUnusableResponse, err)
	}

	skills := make([]string, 0, len(g.Skills))
	for _, skill := range g.Skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	g.Skills = skills
	return g, nil
}
