package resume

import "fmt"

const summaryPrompt = `You are an experienced technical recruiter who writes resumes.
Turn the professional summary below into a polished, ATS-friendly paragraph of two or three sentences.
Rules:
1. Be concise and confident.
2. Highlight years of experience, core technical skills and domain expertise.
3. Never use personal pronouns (I, my, me).
4. Reply with the paragraph only: no quotes, no preamble, no bullet points.

Summary:
"%s"`

const bulletPrompt = `You are an experienced technical recruiter who writes resumes.
Turn the %s below into polished, ATS-friendly bullet points.
Rules:
1. Open every bullet with a strong action verb (Developed, Architected, Led).
2. %s
3. Never use personal pronouns (I, my, me).
4. Reply with the bullet points only, one per line, each starting with "•". No conversational text.

Input:
"%s"`

var bulletFocus = map[Kind]string{
	KindExperience: "Include metrics, tech stack or outcomes wherever they can be inferred.",
	KindProject:    "Emphasize the technologies used and the technical problems solved.",
}

func buildPrompt(kind Kind, text string) string {
	if kind == KindSummary {
		return fmt.Sprintf(summaryPrompt, text)
	}
	label := "job experience"
	if kind == KindProject {
		label = "coding project description"
	}
	return fmt.Sprintf(bulletPrompt, label, bulletFocus[kind], text)
}
