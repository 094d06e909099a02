package render

import (
	"fmt"

	"resume-builder/internal/resume"
)

// Each template is a total function over the full document shape: all eight
// section renderers are composed every time, and empty sections contribute
// nothing. Templates differ only in layout and decoration.

// classicTemplate is a plain single column with a theme-colored top border.
func classicTemplate(doc resume.Document) string {
	return fmt.Sprintf(`<div class="resume classic" style="border-top:8px solid %s">%s</div>`,
		esc(doc.ThemeColor),
		joinFragments(
			personalSection(doc),
			summarySection(doc),
			experienceSection(doc),
			projectsSection(doc),
			educationSection(doc),
			skillsSection(doc),
			certificationsSection(doc),
			interestsSection(doc),
		))
}

// modernTemplate keeps the single column but puts each section on its own
// card, with certifications and interests paired side by side.
func modernTemplate(doc resume.Document) string {
	tail := joinFragments(
		wrap("card", "", certificationsSection(doc)),
		wrap("card", "", interestsSection(doc)),
	)
	return fmt.Sprintf(`<div class="resume modern" style="border-top:6px solid %s">%s%s</div>`,
		esc(doc.ThemeColor),
		joinFragments(
			wrap("card", fmt.Sprintf("border-left:4px solid %s", esc(doc.ThemeColor)), personalSection(doc)),
			wrap("card", "", summarySection(doc)),
			wrap("card", "", experienceSection(doc)),
			wrap("card", "", projectsSection(doc)),
			wrap("card", "", educationSection(doc)),
			wrap("card", "", skillsSection(doc)),
		),
		wrap("two-column", "", tail))
}

// creativeTemplate splits into a theme-tinted sidebar (skills,
// certifications, interests) and a main column for the narrative sections.
func creativeTemplate(doc resume.Document) string {
	sidebar := joinFragments(
		skillsSection(doc),
		certificationsSection(doc),
		interestsSection(doc),
	)
	main := joinFragments(
		summarySection(doc),
		experienceSection(doc),
		projectsSection(doc),
		educationSection(doc),
	)
	return fmt.Sprintf(`<div class="resume creative">%s<div class="sidebar-layout">%s%s</div></div>`,
		personalSection(doc),
		wrap("sidebar", fmt.Sprintf("background-color:%s14", esc(doc.ThemeColor)), sidebar),
		wrap("main", "", main))
}

// corporateTemplate leads with a full-width theme-colored header band and
// pairs education with skills in a two-column block.
func corporateTemplate(doc resume.Document) string {
	middle := joinFragments(
		wrap("col", "", educationSection(doc)),
		wrap("col", "", skillsSection(doc)),
	)
	return fmt.Sprintf(`<div class="resume corporate">%s%s</div>`,
		wrap("header-band", fmt.Sprintf("background-color:%s;color:#fff;padding:24px", esc(doc.ThemeColor)), personalSection(doc)),
		joinFragments(
			summarySection(doc),
			experienceSection(doc),
			projectsSection(doc),
			wrap("two-column", "", middle),
			certificationsSection(doc),
			interestsSection(doc),
		))
}

// executiveTemplate is a formal single column: serif type, a heavy rule
// under the header, experience first.
func executiveTemplate(doc resume.Document) string {
	return fmt.Sprintf(`<div class="resume executive" style="font-family:Georgia,serif">%s<hr style="border:2px solid %s">%s</div>`,
		personalSection(doc),
		esc(doc.ThemeColor),
		joinFragments(
			summarySection(doc),
			experienceSection(doc),
			educationSection(doc),
			projectsSection(doc),
			certificationsSection(doc),
			skillsSection(doc),
			interestsSection(doc),
		))
}

// professionalTemplate is a compact single column with thin rules between
// sections and the skills block promoted above experience.
func professionalTemplate(doc resume.Document) string {
	return fmt.Sprintf(`<div class="resume professional" style="border-top:4px double %s">%s</div>`,
		esc(doc.ThemeColor),
		joinFragments(
			personalSection(doc),
			summarySection(doc),
			skillsSection(doc),
			experienceSection(doc),
			projectsSection(doc),
			educationSection(doc),
			certificationsSection(doc),
			interestsSection(doc),
		))
}
