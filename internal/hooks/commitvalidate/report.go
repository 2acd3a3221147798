package commitvalidate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/scality/githooks/internal/ui"
)

const findingIndent = "   "

// exampleMessages are canonical commit messages printed after a failing
// run to guide correction.
func exampleMessages(project string) []string {
	return []string{
		fmt.Sprintf("feat(%s-123): add custom S3 endpoint support", project),
		fmt.Sprintf("fix(%s-456): resolve authentication timeout issue", project),
		"docs: update installation guide",
		"chore(deps): bump mkdocs from 1.5.0 to 1.6.0",
		fmt.Sprintf("breaking(%s-789): remove deprecated API endpoints", project),
	}
}

// renderTextReport formats the human-readable verdict.
//
// Errors are printed under a failure banner, warnings under a warning
// banner regardless of validity, and the success banner only when valid
// (with distinct wording when warnings are present). The examples block
// is appended whenever the run is going to fail.
func renderTextReport(result Result, failing bool, project string) string {
	var sb strings.Builder

	if len(result.Errors) > 0 {
		sb.WriteString(ui.FailureStyle.Render("✗ Commit message validation failed:"))
		sb.WriteString("\n")

		for _, finding := range result.Errors {
			sb.WriteString(indentFinding(finding))
		}

		sb.WriteString("\n")
	}

	if len(result.Warnings) > 0 {
		sb.WriteString(ui.WarningStyle.Render("⚠ Commit message warnings:"))
		sb.WriteString("\n")

		for _, finding := range result.Warnings {
			sb.WriteString(indentFinding(finding))
		}

		sb.WriteString("\n")
	}

	if result.Valid {
		if len(result.Warnings) == 0 {
			sb.WriteString(ui.SuccessStyle.Render("✓ Commit message is valid!"))
		} else {
			sb.WriteString(ui.SuccessStyle.Render("✓ Commit message is valid (with warnings)"))
		}

		sb.WriteString("\n")
	}

	if failing {
		sb.WriteString("\n")
		sb.WriteString(ui.HeadingStyle.Render("Conventional commit examples:"))
		sb.WriteString("\n")

		for _, example := range exampleMessages(project) {
			sb.WriteString(findingIndent)
			sb.WriteString(example)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// indentFinding indents every line of a finding so multi-line errors stay
// visually grouped under their banner.
func indentFinding(finding string) string {
	var sb strings.Builder

	for _, line := range strings.Split(finding, "\n") {
		sb.WriteString(findingIndent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderJSONReport formats the result as an indented JSON document.
func renderJSONReport(result Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	return string(data), nil
}
