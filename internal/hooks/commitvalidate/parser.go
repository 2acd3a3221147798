package commitvalidate

import (
	"regexp"
	"strings"
)

// Subject represents the first content line of a commit message split
// according to the conventional commit grammar `type(scope): description`.
type Subject struct {
	Type        string
	Scope       string
	Description string
}

// subjectPattern is the conventional commit grammar: a type token of word
// characters, an optional parenthesized scope, a literal ": ", and the
// description as the rest of the line.
var subjectPattern = regexp.MustCompile(`^(?P<type>\w+)(?:\((?P<scope>[^)]+)\))?: (?P<description>.+)$`)

// contentLines returns the lines of a commit message that take part in
// validation.
//
// Filtering rules:
// - Line endings are normalized to \n
// - Lines that are blank after trimming are dropped
// - Lines whose trimmed form starts with '#' are dropped (git template comments).
func contentLines(message string) []string {
	message = strings.ReplaceAll(message, "\r\n", "\n")

	lines := strings.Split(strings.TrimSpace(message), "\n")

	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		kept = append(kept, line)
	}

	return kept
}

// parseSubject matches a subject line against the conventional commit
// grammar. The second return value is false if the line does not conform.
func parseSubject(line string) (Subject, bool) {
	match := subjectPattern.FindStringSubmatch(line)
	if match == nil {
		return Subject{}, false
	}

	return Subject{
		Type:        match[1],
		Scope:       match[2],
		Description: match[3],
	}, true
}
