package export

import (
	"fmt"
	"html"
	"strings"

	"resume-builder/internal/resume"
)

// PlainText renders a document as plain text, one section per block. Used
// for the txt and docx downloads, where layout is carried by line breaks.
func PlainText(doc resume.Document) string {
	var b strings.Builder

	writeLine := func(parts ...string) {
		joined := joinNonEmptyParts(parts, " ")
		if joined != "" {
			b.WriteString(joined)
			b.WriteString("\n")
		}
	}

	writeLine(strings.TrimSpace(doc.FirstName + " " + doc.LastName))
	writeLine(doc.JobTitle)
	writeLine(joinNonEmptyParts([]string{doc.Address, doc.Phone, doc.Email}, " | "))
	writeLine(joinNonEmptyParts([]string{doc.GitHub, doc.LinkedIn}, " | "))

	if doc.Summary != "" {
		b.WriteString("\nSUMMARY\n" + doc.Summary + "\n")
	}

	var exp []string
	for _, e := range doc.Experience {
		if e.IsEmpty() {
			continue
		}
		head := joinNonEmptyParts([]string{e.Title, e.CompanyName, joinNonEmptyParts([]string{e.City, e.State}, ", ")}, " - ")
		if dates := joinNonEmptyParts([]string{e.StartDate, e.EndDate}, " to "); dates != "" {
			head = joinNonEmptyParts([]string{head, "(" + dates + ")"}, " ")
		}
		exp = append(exp, head+stripTags(e.WorkSummary))
	}
	writeBlock(&b, "EXPERIENCE", exp)

	var projects []string
	for _, p := range doc.Projects {
		if p.IsEmpty() {
			continue
		}
		head := joinNonEmptyParts([]string{p.Title, p.TechStack}, " - ")
		projects = append(projects, joinNonEmptyParts([]string{head, p.Description}, "\n"))
	}
	writeBlock(&b, "PROJECTS", projects)

	var edu []string
	for _, e := range doc.Education {
		if e.IsEmpty() {
			continue
		}
		head := joinNonEmptyParts([]string{e.UniversityName, joinNonEmptyParts([]string{e.Degree, e.Major}, " in ")}, " - ")
		dates := joinNonEmptyParts([]string{e.StartDate, e.EndDate}, " to ")
		edu = append(edu, joinNonEmptyParts([]string{head, dates, e.Description}, "\n"))
	}
	writeBlock(&b, "EDUCATION", edu)

	var skills []string
	for _, s := range doc.Skills {
		if !s.IsEmpty() {
			skills = append(skills, s.Name)
		}
	}
	if len(skills) > 0 {
		b.WriteString("\nSKILLS\n" + strings.Join(skills, ", ") + "\n")
	}

	var certs []string
	for _, c := range doc.Certifications {
		if c.IsEmpty() {
			continue
		}
		certs = append(certs, joinNonEmptyParts([]string{c.Title, c.Issuer, c.Year}, " - "))
	}
	writeBlock(&b, "CERTIFICATIONS", certs)

	interests := resume.NormalizeInterests(doc.Interests)
	if len(interests) > 0 {
		b.WriteString("\nINTERESTS\n" + strings.Join(interests, ", ") + "\n")
	}

	return strings.TrimSpace(b.String()) + "\n"
}

func writeBlock(b *strings.Builder, heading string, entries []string) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n" + heading + "\n")
	for _, entry := range entries {
		b.WriteString(entry + "\n")
	}
}

func joinNonEmptyParts(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// stripTags flattens a rich-text bullet fragment into newline-prefixed lines.
func stripTags(fragment string) string {
	if fragment == "" {
		return ""
	}
	s := fragment
	s = strings.ReplaceAll(s, "<li>", "\n  - ")
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(html.UnescapeString(b.String()), "\n ")
}

// TextPage wraps pre-formatted text in a printable HTML page for the PDF and
// JPG conversions of raw enhancer output.
func TextPage(text string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; margin: 48px; color: #1f2937; }
  pre { white-space: pre-wrap; font: 14px/1.6 Georgia, serif; }
</style>
</head>
<body><pre>%s</pre></body>
</html>`, html.EscapeString(text))
}
