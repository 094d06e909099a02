package render

import (
	"fmt"
	"html"
	"strings"

	"resume-builder/internal/resume"
)

// Section renderers are pure functions from a document to an HTML fragment.
// A renderer that receives an empty or missing section returns the empty
// string, so no container is emitted for sections with nothing to show.

func personalSection(doc resume.Document) string {
	var b strings.Builder
	b.WriteString(`<header class="personal">`)
	fmt.Fprintf(&b, `<h1 style="color:%s">%s %s</h1>`,
		esc(doc.ThemeColor), esc(doc.FirstName), esc(doc.LastName))
	if doc.JobTitle != "" {
		fmt.Fprintf(&b, `<h2>%s</h2>`, esc(doc.JobTitle))
	}
	if doc.Address != "" {
		fmt.Fprintf(&b, `<span class="address">%s</span>`, esc(doc.Address))
	}
	var contacts []string
	if doc.Phone != "" {
		contacts = append(contacts, esc(doc.Phone))
	}
	if doc.Email != "" {
		contacts = append(contacts, esc(doc.Email))
	}
	if doc.GitHub != "" {
		contacts = append(contacts, fmt.Sprintf(`<a href="%s">GitHub</a>`, esc(doc.GitHub)))
	}
	if doc.LinkedIn != "" {
		contacts = append(contacts, fmt.Sprintf(`<a href="%s">LinkedIn</a>`, esc(doc.LinkedIn)))
	}
	if len(contacts) > 0 {
		fmt.Fprintf(&b, `<div class="contacts">%s</div>`, strings.Join(contacts, " · "))
	}
	b.WriteString(`</header>`)
	return b.String()
}

func summarySection(doc resume.Document) string {
	if strings.TrimSpace(doc.Summary) == "" {
		return ""
	}
	return fmt.Sprintf(`<section class="summary"><p>%s</p></section>`, esc(doc.Summary))
}

func experienceSection(doc resume.Document) string {
	entries := nonEmptyExperience(doc.Experience)
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="experience">`)
	b.WriteString(sectionTitle("Professional Experience", doc.ThemeColor))
	for _, e := range entries {
		b.WriteString(`<article class="entry">`)
		fmt.Fprintf(&b, `<h3 style="color:%s">%s</h3>`, esc(doc.ThemeColor), esc(e.Title))
		meta := joinNonEmpty(", ", e.CompanyName, e.City, e.State)
		dates := joinNonEmpty(" - ", e.StartDate, e.EndDate)
		if meta != "" || dates != "" {
			fmt.Fprintf(&b, `<div class="meta"><span>%s</span><span class="dates">%s</span></div>`,
				esc(meta), esc(dates))
		}
		if e.WorkSummary != "" {
			// Rich-text fragment produced by the experience editor; not escaped.
			fmt.Fprintf(&b, `<div class="work-summary">%s</div>`, e.WorkSummary)
		}
		b.WriteString(`</article>`)
	}
	b.WriteString(`</section>`)
	return b.String()
}

func projectsSection(doc resume.Document) string {
	entries := nonEmptyProjects(doc.Projects)
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="projects">`)
	b.WriteString(sectionTitle("Projects", doc.ThemeColor))
	for _, p := range entries {
		b.WriteString(`<article class="entry">`)
		fmt.Fprintf(&b, `<h3 style="color:%s">%s</h3>`, esc(doc.ThemeColor), esc(p.Title))
		if p.TechStack != "" {
			fmt.Fprintf(&b, `<div class="tech-stack">%s</div>`, esc(p.TechStack))
		}
		if p.Description != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(p.Description))
		}
		var links []string
		if p.GitHubLink != "" {
			links = append(links, fmt.Sprintf(`<a href="%s">GitHub</a>`, esc(p.GitHubLink)))
		}
		if p.LiveURL != "" {
			links = append(links, fmt.Sprintf(`<a href="%s">Live</a>`, esc(p.LiveURL)))
		}
		if len(links) > 0 {
			fmt.Fprintf(&b, `<div class="links">%s</div>`, strings.Join(links, " · "))
		}
		b.WriteString(`</article>`)
	}
	b.WriteString(`</section>`)
	return b.String()
}

func educationSection(doc resume.Document) string {
	entries := nonEmptyEducation(doc.Education)
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="education">`)
	b.WriteString(sectionTitle("Education", doc.ThemeColor))
	for _, e := range entries {
		b.WriteString(`<article class="entry">`)
		fmt.Fprintf(&b, `<h3 style="color:%s">%s</h3>`, esc(doc.ThemeColor), esc(e.UniversityName))
		degree := joinNonEmpty(" in ", e.Degree, e.Major)
		dates := joinNonEmpty(" - ", e.StartDate, e.EndDate)
		if degree != "" || dates != "" {
			fmt.Fprintf(&b, `<div class="meta"><span>%s</span><span class="dates">%s</span></div>`,
				esc(degree), esc(dates))
		}
		if e.Description != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(e.Description))
		}
		b.WriteString(`</article>`)
	}
	b.WriteString(`</section>`)
	return b.String()
}

func skillsSection(doc resume.Document) string {
	entries := nonEmptySkills(doc.Skills)
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="skills">`)
	b.WriteString(sectionTitle("Skills", doc.ThemeColor))
	b.WriteString(`<div class="chips">`)
	for _, s := range entries {
		fmt.Fprintf(&b, `<span class="chip" data-icon="%s" data-rating="%d" style="background-color:%s">%s</span>`,
			SkillIcon(s.Name), s.Rating, esc(doc.ThemeColor), esc(s.Name))
	}
	b.WriteString(`</div></section>`)
	return b.String()
}

func certificationsSection(doc resume.Document) string {
	entries := nonEmptyCertifications(doc.Certifications)
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="certifications">`)
	b.WriteString(sectionTitle("Certifications", doc.ThemeColor))
	for _, c := range entries {
		fmt.Fprintf(&b, `<article class="entry" style="border-left-color:%s">`, esc(doc.ThemeColor))
		fmt.Fprintf(&b, `<h3 style="color:%s">%s</h3>`, esc(doc.ThemeColor), esc(c.Title))
		meta := joinNonEmpty(" · ", c.Issuer, c.Year)
		if meta != "" {
			fmt.Fprintf(&b, `<div class="meta">%s</div>`, esc(meta))
		}
		b.WriteString(`</article>`)
	}
	b.WriteString(`</section>`)
	return b.String()
}

func interestsSection(doc resume.Document) string {
	entries := resume.NormalizeInterests(doc.Interests)
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="interests">`)
	b.WriteString(sectionTitle("Interests", doc.ThemeColor))
	b.WriteString(`<div class="chips">`)
	for _, interest := range entries {
		fmt.Fprintf(&b, `<span class="chip" style="background-color:%s">%s</span>`,
			esc(doc.ThemeColor), esc(interest))
	}
	b.WriteString(`</div></section>`)
	return b.String()
}

func sectionTitle(title, themeColor string) string {
	return fmt.Sprintf(`<h2 class="section-title" style="color:%s;border-color:%s">%s</h2>`,
		esc(themeColor), esc(themeColor), esc(title))
}

func esc(s string) string {
	return html.EscapeString(s)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func nonEmptyExperience(in []resume.Experience) []resume.Experience {
	out := in[:0:0]
	for _, e := range in {
		if !e.IsEmpty() {
			out = append(out, e)
		}
	}
	return out
}

func nonEmptyProjects(in []resume.Project) []resume.Project {
	out := in[:0:0]
	for _, p := range in {
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}

func nonEmptyEducation(in []resume.Education) []resume.Education {
	out := in[:0:0]
	for _, e := range in {
		if !e.IsEmpty() {
			out = append(out, e)
		}
	}
	return out
}

func nonEmptySkills(in []resume.Skill) []resume.Skill {
	out := in[:0:0]
	for _, s := range in {
		if !s.IsEmpty() {
			out = append(out, s)
		}
	}
	return out
}

func nonEmptyCertifications(in []resume.Certification) []resume.Certification {
	out := in[:0:0]
	for _, c := range in {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	return out
}
