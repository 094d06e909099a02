package main

// Render a sample resume through every template:
//   go run ./cmd/renderdemo -out ./out

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/export"
	"resume-builder/internal/render"
	"resume-builder/internal/resume"
)

func main() {
	outDir := flag.String("out", "./out", "output directory for rendered files")
	flag.Parse()

	doc := sampleDocument()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir failed: %v\n", err)
		os.Exit(1)
	}

	for _, tmpl := range resume.Templates() {
		doc.Template = string(tmpl)
		path := filepath.Join(*outDir, fmt.Sprintf("sample_%s.html", tmpl))
		if err := os.WriteFile(path, []byte(render.Page(doc)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s failed: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("OK: wrote %s\n", path)
	}

	docxBytes, err := export.WriteDOCX(export.PlainText(doc))
	if err != nil {
		fmt.Fprintf(os.Stderr, "docx render failed: %v\n", err)
		os.Exit(1)
	}
	docxPath := filepath.Join(*outDir, "sample_resume.docx")
	if err := os.WriteFile(docxPath, docxBytes, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s failed: %v\n", docxPath, err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s\n", docxPath)
}

func sampleDocument() resume.Document {
	return resume.Document{
		Title:      "Sample Resume",
		UserEmail:  "sample@example.com",
		FirstName:  "James",
		LastName:   "Carter",
		JobTitle:   "Full Stack Developer",
		Address:    "525 N Tryon Street, NC 28117",
		Phone:      "(123)-456-7890",
		Email:      "sample@example.com",
		ThemeColor: resume.DefaultThemeColor,
		Summary:    "Full stack developer with a focus on resilient backend services and clean web interfaces.",
		Experience: []resume.Experience{{
			Title:       "Full Stack Developer",
			CompanyName: "Amazon",
			City:        "New York",
			State:       "NY",
			StartDate:   "Jan 2021",
			EndDate:     "Present",
			WorkSummary: "<ul><li>Designed and developed REST services</li><li>Led a team of four engineers</li></ul>",
		}},
		Projects: []resume.Project{{
			Title:       "Inventory Tracker",
			TechStack:   "Go, Postgres, React",
			Description: "Warehouse inventory tracking with live updates.",
		}},
		Education: []resume.Education{{
			UniversityName: "Western Illinois University",
			Degree:         "Master",
			Major:          "Computer Science",
			StartDate:      "Aug 2018",
			EndDate:        "Dec 2019",
		}},
		Skills: []resume.Skill{
			{Name: "React", Rating: 5},
			{Name: "Go", Rating: 5},
			{Name: "PostgreSQL", Rating: 4},
		},
		Certifications: []resume.Certification{{
			Title:  "AWS Solutions Architect",
			Issuer: "Amazon Web Services",
			Year:   "2022",
		}},
		Interests: []string{"Open source", "Cycling"},
	}
}
