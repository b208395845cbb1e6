package llm

import (
	"fmt"
	"strings"
)

// BuildSystemPrompt composes the system message with the transcript
// extraction rules and strict-but-practical formatting hygiene.
func BuildSystemPrompt(req ExtractRequest) string {
	parts := []string{
		"You are a university transcript parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract every course row: 'code' is the short course identifier (e.g. CSE101), 'name' the course title, 'grade' the grade exactly as printed, 'credit_hours' the numeric credit/unit value.",
		"Skip headers, page footers, term labels, cumulative totals and GPA summary lines; they are not courses.",
		"If a course code is unreadable, use an empty string for 'code'. If credit hours are not printed, use 0.",
		"Do not invent courses and do not merge rows.",
		"Never output null. Use empty strings and 0 instead.",
	}
	if lvl := strings.TrimSpace(req.Level); lvl != "" {
		parts = append(parts, "The transcript is for a "+lvl+" program.")
	}
	if inst := strings.TrimSpace(req.Institution); inst != "" {
		parts = append(parts, "Issuing institution: "+inst+".")
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages one text chunk with its position so the model has
// positional context across calls ("chunk i of n"). Unused for image input.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if req.ChunkCount > 1 {
		fmt.Fprintf(&b, "Transcript text (chunk %d of %d):\n", req.ChunkIndex, req.ChunkCount)
	} else {
		b.WriteString("Transcript text:\n")
	}
	b.WriteString(req.ChunkText)
	return b.String()
}
