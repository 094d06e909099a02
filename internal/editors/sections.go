package editors

import (
	"context"
	"strings"

	"resume-builder/internal/assist"
	"resume-builder/internal/resume"
)

// NewEducationEditor returns the editor for the education section.
// University name is the entry's title field: required once the entry holds
// any content.
func NewEducationEditor(store *resume.Store, gw Gateway) *ListEditor[resume.Education] {
	return &ListEditor[resume.Education]{
		store:     store,
		gw:        gw,
		key:       resume.SectionEducation,
		empty:     func() resume.Education { return resume.Education{} },
		seed:      func(d resume.Document) []resume.Education { return d.Education },
		normalize: resume.NormalizeEducation,
		merge:     func(d *resume.Document, v []resume.Education) { d.Education = v },
		validate: func(entries []resume.Education) error {
			for _, e := range entries {
				if !e.IsEmpty() && strings.TrimSpace(e.UniversityName) == "" {
					return &ValidationError{Field: "universityName", Reason: "is required"}
				}
			}
			return nil
		},
	}
}

// NewSkillsEditor returns the editor for the skills section.
func NewSkillsEditor(store *resume.Store, gw Gateway) *ListEditor[resume.Skill] {
	return &ListEditor[resume.Skill]{
		store:     store,
		gw:        gw,
		key:       resume.SectionSkills,
		empty:     func() resume.Skill { return resume.Skill{} },
		seed:      func(d resume.Document) []resume.Skill { return d.Skills },
		normalize: resume.NormalizeSkills,
		merge:     func(d *resume.Document, v []resume.Skill) { d.Skills = v },
		validate: func(entries []resume.Skill) error {
			for _, s := range entries {
				if !s.IsEmpty() && strings.TrimSpace(s.Name) == "" {
					return &ValidationError{Field: "name", Reason: "is required"}
				}
				if s.Rating < 0 || s.Rating > 5 {
					return &ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
				}
			}
			return nil
		},
	}
}

// NewCertificationsEditor returns the editor for the certifications section.
func NewCertificationsEditor(store *resume.Store, gw Gateway) *ListEditor[resume.Certification] {
	return &ListEditor[resume.Certification]{
		store:     store,
		gw:        gw,
		key:       resume.SectionCertifications,
		empty:     func() resume.Certification { return resume.Certification{} },
		seed:      func(d resume.Document) []resume.Certification { return d.Certifications },
		normalize: resume.NormalizeCertifications,
		merge:     func(d *resume.Document, v []resume.Certification) { d.Certifications = v },
		validate: func(entries []resume.Certification) error {
			for _, c := range entries {
				if !c.IsEmpty() && strings.TrimSpace(c.Title) == "" {
					return &ValidationError{Field: "title", Reason: "is required"}
				}
			}
			return nil
		},
	}
}

// NewInterestsEditor returns the editor for the interests section. Blank
// entries are tolerated in the draft and filtered out on save.
func NewInterestsEditor(store *resume.Store, gw Gateway) *ListEditor[string] {
	return &ListEditor[string]{
		store:     store,
		gw:        gw,
		key:       resume.SectionInterests,
		empty:     func() string { return "" },
		seed:      func(d resume.Document) []string { return d.Interests },
		normalize: resume.NormalizeInterests,
		merge:     func(d *resume.Document, v []string) { d.Interests = v },
	}
}

// ExperienceEditor edits work history entries and can prefill an entry's
// rich-text summary with AI-generated bullet points.
type ExperienceEditor struct {
	ListEditor[resume.Experience]
	ai assist.Client
}

// NewExperienceEditor returns the editor for the experience section.
func NewExperienceEditor(store *resume.Store, gw Gateway, ai assist.Client) *ExperienceEditor {
	return &ExperienceEditor{
		ListEditor: ListEditor[resume.Experience]{
			store:     store,
			gw:        gw,
			key:       resume.SectionExperience,
			empty:     func() resume.Experience { return resume.Experience{} },
			seed:      func(d resume.Document) []resume.Experience { return d.Experience },
			normalize: resume.NormalizeExperience,
			merge:     func(d *resume.Document, v []resume.Experience) { d.Experience = v },
			validate: func(entries []resume.Experience) error {
				for _, e := range entries {
					if !e.IsEmpty() && strings.TrimSpace(e.Title) == "" {
						return &ValidationError{Field: "title", Reason: "is required"}
					}
				}
				return nil
			},
		},
		ai: ai,
	}
}

// GenerateBullets asks the assist gateway for bullet points based on the
// entry's position title and writes the normalized HTML list into the
// draft. It never saves; the user still has to invoke Save.
func (e *ExperienceEditor) GenerateBullets(ctx context.Context, index int) error {
	if index < 0 || index >= len(e.draft) {
		return &ValidationError{Field: "index", Reason: "is out of range"}
	}
	title := strings.TrimSpace(e.draft[index].Title)
	if title == "" {
		return &ValidationError{Field: "title", Reason: "is required before generating"}
	}

	raw, err := e.ai.SendPrompt(ctx, assist.ExperienceBulletsPrompt(title))
	if err != nil {
		return err
	}
	html, err := assist.NormalizeBulletsHTML(raw)
	if err != nil {
		return err
	}
	e.draft[index].WorkSummary = html
	return nil
}

// ProjectsEditor edits project entries and can prefill a description from
// the project's title and tech stack.
type ProjectsEditor struct {
	ListEditor[resume.Project]
	ai assist.Client
}

// NewProjectsEditor returns the editor for the projects section.
func NewProjectsEditor(store *resume.Store, gw Gateway, ai assist.Client) *ProjectsEditor {
	return &ProjectsEditor{
		ListEditor: ListEditor[resume.Project]{
			store:     store,
			gw:        gw,
			key:       resume.SectionProjects,
			empty:     func() resume.Project { return resume.Project{} },
			seed:      func(d resume.Document) []resume.Project { return d.Projects },
			normalize: resume.NormalizeProjects,
			merge:     func(d *resume.Document, v []resume.Project) { d.Projects = v },
			validate: func(entries []resume.Project) error {
				for _, p := range entries {
					if !p.IsEmpty() && strings.TrimSpace(p.Title) == "" {
						return &ValidationError{Field: "title", Reason: "is required"}
					}
				}
				return nil
			},
		},
		ai: ai,
	}
}

// GenerateDescription asks the assist gateway for a project description.
// Both title and tech stack must be filled in first.
func (e *ProjectsEditor) GenerateDescription(ctx context.Context, index int) error {
	if index < 0 || index >= len(e.draft) {
		return &ValidationError{Field: "index", Reason: "is out of range"}
	}
	entry := e.draft[index]
	if strings.TrimSpace(entry.Title) == "" || strings.TrimSpace(entry.TechStack) == "" {
		return &ValidationError{Field: "title", Reason: "and techStack are required before generating"}
	}

	raw, err := e.ai.SendPrompt(ctx, assist.ProjectDescriptionPrompt(entry.Title, entry.TechStack))
	if err != nil {
		return err
	}
	desc, err := assist.NormalizeDescription(raw)
	if err != nil {
		return err
	}
	e.draft[index].Description = desc
	return nil
}
