// Package render projects a resume document through one of the six visual
// templates. Projection is pure: the same document always yields the same
// HTML, and nothing here mutates the document or performs I/O.
package render

import (
	"fmt"
	"strings"

	"resume-builder/internal/resume"
)

// Document projects doc through the template named on the document itself.
// Absent or unrecognized template values resolve to classic.
func Document(doc resume.Document) string {
	switch resume.ResolveTemplate(doc.Template) {
	case resume.TemplateModern:
		return modernTemplate(doc)
	case resume.TemplateCreative:
		return creativeTemplate(doc)
	case resume.TemplateCorporate:
		return corporateTemplate(doc)
	case resume.TemplateExecutive:
		return executiveTemplate(doc)
	case resume.TemplateProfessional:
		return professionalTemplate(doc)
	default:
		return classicTemplate(doc)
	}
}

// Page wraps a projected document in a printable standalone HTML page; the
// export service feeds this to the headless-browser renderer.
func Page(doc resume.Document) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { margin: 0; font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #1f2937; }
.resume { padding: 32px; min-height: 100vh; box-sizing: border-box; }
.section-title { font-size: 13px; border-bottom: 1px solid; padding-bottom: 2px; }
.chips { display: flex; flex-wrap: wrap; gap: 6px; }
.chip { color: #fff; border-radius: 9999px; padding: 3px 10px; font-size: 11px; }
.meta { display: flex; justify-content: space-between; font-size: 11px; color: #4b5563; }
.sidebar-layout { display: flex; gap: 24px; }
.sidebar-layout .sidebar { width: 32%%; }
.sidebar-layout .main { width: 68%%; }
.two-column { display: flex; gap: 24px; }
.two-column > div { width: 50%%; }
</style>
</head>
<body>%s</body>
</html>`, esc(doc.DisplayTitle()), Document(doc))
}

func joinFragments(fragments ...string) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f)
	}
	return b.String()
}

func wrap(class, borderStyle, inner string) string {
	if inner == "" {
		return ""
	}
	if borderStyle == "" {
		return fmt.Sprintf(`<div class="%s">%s</div>`, class, inner)
	}
	return fmt.Sprintf(`<div class="%s" style="%s">%s</div>`, class, borderStyle, inner)
}
