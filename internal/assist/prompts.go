package assist

import "strings"

// Prompt templates carried over from the product behavior: the summary
// prompt asks for leveled suggestions as a JSON array, the experience prompt
// asks for an HTML bullet list, and the project prompt asks for plain prose.

const summaryPromptTemplate = "Job Title: {jobTitle} , Depends on job title give me list of summery for 3 experience level, Mid Level and Fresher level in 3 -4 lines in array format, With summary and experience_level Field in JSON Array Format"

const experienceBulletsPromptTemplate = "Position title: {positionTitle}. Based on this title, write 5 resume bullet points as HTML only. Return a single <ul> with <li> items, no markdown, no JSON, no explanations."

const projectDescriptionPromptTemplate = `Generate a professional project description for a project titled "{title}" using the following tech stack: "{techStack}".

The description should be:
- 2-3 sentences long
- Professional and concise
- Highlight the key features and technologies used
- Focus on the impact and value of the project

Return only the description text, no additional formatting or explanations.`

const guidancePromptTemplate = `You are a career advisor and ATS evaluation expert. Analyze the resume below and return ONLY a JSON object with exactly these fields:
- "future_projects": suggested projects that would strengthen this profile
- "skill_upgrade": skills worth learning next and why
- "career_roadmap": a realistic progression for the next few years
- "strengths": the strongest aspects of this resume
- "weaknesses": the weakest aspects of this resume
- "resume_analysis": an overall assessment of the resume
- "skills": an array of the candidate's current skills as short strings
- "ats_score": an integer from 0 to 100 rating ATS compatibility
- "resume_score": an integer from 0 to 100 rating overall resume quality
- "ats_feedback": concrete advice to improve the ATS score
- "resume_feedback": concrete advice to improve the resume score

Return the JSON object only, with no markdown fences and no extra commentary.

Resume:
{resume}`

const enhancePromptTemplate = `You are an expert resume writer. Rewrite and enhance the resume below so it is tailored to the target job. Keep every claim truthful to the original content, strengthen weak phrasing, and use concise professional language. Return only the enhanced resume text.

Target job title: {jobTitle}

Job description:
{jobDescription}

Resume:
{resume}`

// SummaryPrompt builds the leveled-summary suggestion prompt.
func SummaryPrompt(jobTitle string) string {
	return strings.ReplaceAll(summaryPromptTemplate, "{jobTitle}", jobTitle)
}

// ExperienceBulletsPrompt builds the HTML bullet list prompt for a position.
func ExperienceBulletsPrompt(positionTitle string) string {
	return strings.ReplaceAll(experienceBulletsPromptTemplate, "{positionTitle}", positionTitle)
}

// ProjectDescriptionPrompt builds the project description prompt.
func ProjectDescriptionPrompt(title, techStack string) string {
	r := strings.NewReplacer("{title}", title, "{techStack}", techStack)
	return r.Replace(projectDescriptionPromptTemplate)
}

// GuidancePrompt builds the career-guidance analysis prompt.
func GuidancePrompt(resumeText string) string {
	return strings.ReplaceAll(guidancePromptTemplate, "{resume}", resumeText)
}

// EnhancePrompt builds the resume-enhancement prompt used by the export
// service's tool endpoint.
func EnhancePrompt(resumeText, jobDescription, jobTitle string) string {
	r := strings.NewReplacer(
		"{resume}", resumeText,
		"{jobDescription}", jobDescription,
		"{jobTitle}", jobTitle,
	)
	return r.Replace(enhancePromptTemplate)
}
