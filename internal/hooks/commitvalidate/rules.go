package commitvalidate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Result is the outcome of validating a single commit message.
// Valid is true iff Errors is empty; warnings never affect it.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// githubIssuePattern matches GitHub-style issue references like #123.
var githubIssuePattern = regexp.MustCompile(`#\d+`)

// pastTenseOpeners trigger the imperative mood warning when the
// description starts with one of them.
var pastTenseOpeners = []string{"added", "fixed", "updated", "changed"}

// Validate checks a raw commit message against the classification tables
// in config and returns the accumulated errors and warnings.
//
// The empty-message, format, and type checks short-circuit because the
// remaining checks have no reliable input without them. Once the basic
// shape is confirmed, all further checks are independent and accumulate,
// so a single run reports every applicable problem.
//
// Validate is a pure function of its input and the config tables; it
// holds no state across calls.
func Validate(config *Config, message string) Result {
	errs := []string{}
	warnings := []string{}

	lines := contentLines(message)
	if len(lines) == 0 {
		errs = append(errs, "commit message cannot be empty (ignoring template comments)")
		return Result{Valid: false, Errors: errs, Warnings: warnings}
	}

	subjectLine := lines[0]

	subject, ok := parseSubject(subjectLine)
	if !ok {
		errs = append(errs, formatError(config, subjectLine))
		return Result{Valid: false, Errors: errs, Warnings: warnings}
	}

	commitType := strings.ToLower(subject.Type)
	if !config.knownType(commitType) {
		errs = append(errs, fmt.Sprintf(
			"invalid commit type %q. Valid types: %s",
			commitType,
			strings.Join(config.validTypes(), ", "),
		))

		return Result{Valid: false, Errors: errs, Warnings: warnings}
	}

	descriptionLength := utf8.RuneCountInString(subject.Description)

	if descriptionLength < config.MinDescriptionLength {
		errs = append(errs, fmt.Sprintf(
			"description must be at least %d characters long",
			config.MinDescriptionLength,
		))
	}

	if descriptionLength > config.MaxDescriptionLength {
		warnings = append(warnings, fmt.Sprintf(
			"description should be %d characters or less for better readability",
			config.MaxDescriptionLength,
		))
	}

	issueErrs, issueWarnings := checkIssueID(config, commitType, subject.Scope, message)
	errs = append(errs, issueErrs...)
	warnings = append(warnings, issueWarnings...)

	warnings = append(warnings, descriptionStyleWarnings(subject.Description)...)

	return Result{Valid: len(errs) == 0, Errors: errs, Warnings: warnings}
}

// formatError builds the error for a subject line that does not match the
// conventional commit grammar, including canonical examples.
func formatError(config *Config, subjectLine string) string {
	return fmt.Sprintf(
		"invalid commit format. Expected: type(scope): description\n"+
			"Got: %s\n"+
			"Examples:\n"+
			"  feat(%s-123): add custom S3 endpoint support\n"+
			"  fix(%s-456): resolve authentication timeout issue\n"+
			"  docs: update installation guide",
		subjectLine,
		config.IssueProject,
		config.IssueProject,
	)
}

// checkIssueID enforces the issue reference requirement by type class.
//
// User-facing types must carry either a JIRA-style id in the scope or a
// GitHub-style reference anywhere in the full raw message (comments
// included; the scan is deliberately permissive). For development types
// the reference is optional, but an odd-looking scope draws a warning.
func checkIssueID(config *Config, commitType string, scope string, fullMessage string) (errs []string, warnings []string) {
	hasJiraID := scope != "" && config.jiraID.MatchString(scope)
	hasGithubIssue := githubIssuePattern.MatchString(fullMessage)

	if config.isUserFacing(commitType) {
		switch {
		case !hasJiraID && !hasGithubIssue:
			errs = append(errs, fmt.Sprintf(
				"user-facing commit type %q requires an issue ID.\n"+
					"Include the issue ID in the scope: %s(%s-123): description\n"+
					"Or reference a GitHub issue in the footer: Closes #123",
				commitType,
				commitType,
				config.IssueProject,
			))

		case hasJiraID && !config.jiraExact.MatchString(scope):
			errs = append(errs, fmt.Sprintf(
				"invalid JIRA issue format in scope. Expected: %s-123, got: %s",
				config.IssueProject,
				scope,
			))
		}

		return errs, nil
	}

	if scope != "" && !hasJiraID && !isComponentName(scope) {
		warnings = append(warnings, fmt.Sprintf(
			"scope %q doesn't look like an issue ID or component name",
			scope,
		))
	}

	return nil, warnings
}

// descriptionStyleWarnings checks the description against the style
// guidelines. Each check is independent and only ever produces a warning.
func descriptionStyleWarnings(description string) []string {
	var warnings []string

	first, _ := utf8.DecodeRuneInString(description)
	if unicode.IsUpper(first) {
		warnings = append(warnings,
			"description should start with a lowercase letter (imperative mood), e.g. 'add feature' not 'Add feature'")
	}

	if strings.HasSuffix(description, ".") {
		warnings = append(warnings, "description should not end with a period")
	}

	lower := strings.ToLower(description)
	for _, opener := range pastTenseOpeners {
		if strings.HasPrefix(lower, opener) {
			warnings = append(warnings, "use imperative mood: 'add' not 'added', 'fix' not 'fixed'")
			break
		}
	}

	return warnings
}

// isComponentName reports whether scope consists solely of alphanumeric
// characters after stripping '-' and '_'.
func isComponentName(scope string) bool {
	stripped := strings.NewReplacer("-", "", "_", "").Replace(scope)
	if stripped == "" {
		return false
	}

	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
