package explain

import (
	"strings"

	"testdesk-be/pkg/ask/retrieval"
)

// buildPrompt renders the generation prompt. The fact bundle is serialized
// through its fixed textual form, so identical inputs always produce an
// identical prompt regardless of which model consumes it.
func buildPrompt(question string, bundle *retrieval.Bundle) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You are the QA assistant of a test-management tool.\n")
	prompt.WriteString("Rules:\n")
	prompt.WriteString("- Explain ONLY using the provided data\n")
	prompt.WriteString("- Do NOT invent facts\n")
	prompt.WriteString("- Be concise and clear\n")
	prompt.WriteString("- No greetings or sign-offs\n")
	prompt.WriteString("- Use bullet points if listing multiple items\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<question>\n")
	prompt.WriteString(question)
	prompt.WriteString("\n</question>\n\n")

	prompt.WriteString("<intent>\n")
	prompt.WriteString(string(bundle.Kind))
	prompt.WriteString("\n</intent>\n\n")

	prompt.WriteString("<data>\n")
	prompt.WriteString(bundle.Serialize())
	prompt.WriteString("\n</data>\n\n")

	prompt.WriteString("Answer:")

	return prompt.String()
}
