package problem_service

import (
	"fmt"
	"strings"
)

const systemPromptHeader = `You are an expert coding interview problem generator.`

const systemPromptSchema = `Format the response as a valid JSON object with these exact keys:
{
  "title": "string",
  "description": "string",
  "examples": [{"input": "string", "output": "string", "explanation": "string"}],
  "constraints": ["string"],
  "starterCode": {
    "javascript": "string",
    "python": "string",
    "java": "string"
  },
  "hints": ["string"]
}`

// buildGenerationPrompt constructs the user and system instructions for
// one generation request. Pure and deterministic: identical inputs give
// identical strings. Callers validate topic and category before this
// point, nothing is escaped here.
func buildGenerationPrompt(difficulty, topic, category string) (userPrompt, systemPrompt string) {
	var subject strings.Builder
	fmt.Fprintf(&subject, "a %s level coding problem", difficulty)
	if topic != "" {
		fmt.Fprintf(&subject, " about %s", topic)
	}
	if category != "" {
		fmt.Fprintf(&subject, " in the %s category", category)
	}

	userPrompt = fmt.Sprintf(
		"Generate %s. The problem should be challenging but solvable within 30-45 minutes.",
		subject.String(),
	)

	var sys strings.Builder
	sys.WriteString(systemPromptHeader)
	sys.WriteString("\n")
	fmt.Fprintf(&sys, "Generate %s.\n", subject.String())
	sys.WriteString("The problem should be solvable in 30-45 minutes.\n")
	sys.WriteString(systemPromptSchema)
	systemPrompt = sys.String()

	return userPrompt, systemPrompt
}
