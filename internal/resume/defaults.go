package resume

// DefaultTitle is used when a document has no display name.
const DefaultTitle = "Untitled Resume"

// DefaultThemeColor is the color token applied to new documents.
const DefaultThemeColor = "#2563eb"

// New creates an empty, not-yet-persisted document for the given owner.
// The content API assigns the ID on first create.
func New(ownerEmail, title string) Document {
	if title == "" {
		title = DefaultTitle
	}
	return Document{
		UserEmail:  ownerEmail,
		Title:      title,
		ThemeColor: DefaultThemeColor,
		Template:   string(TemplateClassic),
	}
}

// WithEditingDefaults returns a copy of the document where every list
// section holds at least one empty-shaped entry, so editors always have a
// row to display. Persisted documents never contain these placeholder
// entries; they exist only in editor state.
func WithEditingDefaults(d Document) Document {
	if len(d.Experience) == 0 {
		d.Experience = []Experience{{}}
	}
	if len(d.Projects) == 0 {
		d.Projects = []Project{{}}
	}
	if len(d.Education) == 0 {
		d.Education = []Education{{}}
	}
	if len(d.Skills) == 0 {
		d.Skills = []Skill{{}}
	}
	if len(d.Certifications) == 0 {
		d.Certifications = []Certification{{}}
	}
	if len(d.Interests) == 0 {
		d.Interests = []string{""}
	}
	return d
}
