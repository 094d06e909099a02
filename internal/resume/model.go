package resume

// Section keys as they appear on the wire and in stored documents.
const (
	SectionPersonal       = "personal"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionInterests      = "interests"
)

// Document is the canonical record describing one resume's content and
// presentation choice. It is exchanged wholesale with the content API as a
// flat attribute bag; nested entry IDs are transient and assigned by the
// backend.
type Document struct {
	ID         string `json:"id,omitempty"`
	UserEmail  string `json:"userEmail,omitempty"`
	Title      string `json:"title,omitempty"`
	ThemeColor string `json:"themeColor,omitempty"`
	Template   string `json:"template,omitempty"`

	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`

	Summary        string          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Interests      []string        `json:"interests,omitempty"`
}

// Experience is one work history entry. WorkSummary holds a rich-text HTML
// fragment produced by the experience editor.
type Experience struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	City        string `json:"city"`
	State       string `json:"state"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	WorkSummary string `json:"workSummary"`
}

// Project is one project entry.
type Project struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	TechStack   string `json:"techStack"`
	Description string `json:"description"`
	GitHubLink  string `json:"githubLink,omitempty"`
	LiveURL     string `json:"liveUrl,omitempty"`
}

// Education is one education entry.
type Education struct {
	ID             int    `json:"id,omitempty"`
	UniversityName string `json:"universityName"`
	Degree         string `json:"degree"`
	Major          string `json:"major"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Description    string `json:"description"`
}

// Skill is one skill with a 0-5 proficiency rating.
type Skill struct {
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// Certification is one certification entry.
type Certification struct {
	ID     int    `json:"id,omitempty"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// DisplayTitle returns the document title, falling back to the default for
// unnamed resumes.
func (d Document) DisplayTitle() string {
	if d.Title == "" {
		return DefaultTitle
	}
	return d.Title
}

// IsEmpty reports whether an experience entry carries no user content.
func (e Experience) IsEmpty() bool {
	return e.Title == "" && e.CompanyName == "" && e.City == "" && e.State == "" &&
		e.StartDate == "" && e.EndDate == "" && e.WorkSummary == ""
}

// IsEmpty reports whether a project entry carries no user content.
func (p Project) IsEmpty() bool {
	return p.Title == "" && p.TechStack == "" && p.Description == "" &&
		p.GitHubLink == "" && p.LiveURL == ""
}

// IsEmpty reports whether an education entry carries no user content.
func (e Education) IsEmpty() bool {
	return e.UniversityName == "" && e.Degree == "" && e.Major == "" &&
		e.StartDate == "" && e.EndDate == "" && e.Description == ""
}

// IsEmpty reports whether a skill entry carries no user content.
func (s Skill) IsEmpty() bool {
	return s.Name == "" && s.Rating == 0
}

// IsEmpty reports whether a certification entry carries no user content.
func (c Certification) IsEmpty() bool {
	return c.Title == "" && c.Issuer == "" && c.Year == ""
}
