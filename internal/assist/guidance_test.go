package assist

import (
	"errors"
	"testing"
)

const guidanceReply = `{
	"future_projects": "Build a distributed job queue.",
	"skill_upgrade": "Learn Kubernetes operators.",
	"career_roadmap": "Senior engineer within two years.",
	"strengths": "Strong backend fundamentals.",
	"weaknesses": "Sparse quantified impact.",
	"resume_analysis": "Solid but generic.",
	"skills": ["Go", " PostgreSQL ", ""],
	"ats_score": 72,
	"resume_score": "85",
	"ats_feedback": "Add more role keywords.",
	"resume_feedback": "Quantify achievements."
}`

func TestParseGuidanceObject(t *testing.T) {
	g, err := ParseGuidance(guidanceReply)
	if err != nil {
		t.Fatalf("parse guidance: %v", err)
	}
	if g.ATSScore != 72 {
		t.Fatalf("unexpected ats score: %d", g.ATSScore)
	}
	if g.ResumeScore != 85 {
		t.Fatalf("quoted score did not decode: %d", g.ResumeScore)
	}
	if len(g.Skills) != 2 || g.Skills[1] != "PostgreSQL" {
		t.Fatalf("skills not trimmed and filtered: %v", g.Skills)
	}
	if g.Strengths != "Strong backend fundamentals." {
		t.Fatalf("unexpected strengths: %q", g.Strengths)
	}
}

func TestParseGuidanceFenced(t *testing.T) {
	g, err := ParseGuidance("```json\n" + guidanceReply + "\n```")
	if err != nil {
		t.Fatalf("parse fenced guidance: %v", err)
	}
	if g.ATSScore != 72 {
		t.Fatalf("unexpected ats score: %d", g.ATSScore)
	}
}

func TestParseGuidanceClampsScores(t *testing.T) {
	g, err := ParseGuidance(`{"ats_score": 180, "resume_score": -4}`)
	if err != nil {
		t.Fatalf("parse guidance: %v", err)
	}
	if g.ATSScore != 100 || g.ResumeScore != 0 {
		t.Fatalf("scores not clamped: ats=%d resume=%d", g.ATSScore, g.ResumeScore)
	}
}

func TestParseGuidanceRejectsProse(t *testing.T) {
	if _, err := ParseGuidance("I could not analyze this resume."); !errors.Is(err, ErrUnusableResponse) {
		t.Fatalf("expected ErrUnusableResponse, got %v", err)
	}
}
