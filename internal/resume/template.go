package resume

// Template identifies one of the closed set of visual layouts. Storage
// preserves whatever raw value was set on a document; unknown values only
// collapse to the classic default when resolved for projection.
type Template string

const (
	TemplateClassic      Template = "classic"
	TemplateModern       Template = "modern"
	TemplateCreative     Template = "creative"
	TemplateCorporate    Template = "corporate"
	TemplateExecutive    Template = "executive"
	TemplateProfessional Template = "professional"
)

// Templates lists every known template in display order.
func Templates() []Template {
	return []Template{
		TemplateClassic,
		TemplateModern,
		TemplateCreative,
		TemplateCorporate,
		TemplateExecutive,
		TemplateProfessional,
	}
}

// ParseTemplate reports whether raw names a known template.
func ParseTemplate(raw string) (Template, bool) {
	switch Template(raw) {
	case TemplateClassic, TemplateModern, TemplateCreative,
		TemplateCorporate, TemplateExecutive, TemplateProfessional:
		return Template(raw), true
	}
	return "", false
}

// ResolveTemplate maps a stored template value to the template used for
// projection. Absent or unrecognized values fall back to classic.
func ResolveTemplate(raw string) Template {
	if t, ok := ParseTemplate(raw); ok {
		return t
	}
	return TemplateClassic
}
