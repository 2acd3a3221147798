package commitvalidate

import "io"

// Test helpers - exported for testing only

// ContentLinesForTesting exposes contentLines for testing.
func ContentLinesForTesting(message string) []string {
	return contentLines(message)
}

// ParseSubjectForTesting exposes parseSubject for testing.
func ParseSubjectForTesting(line string) (Subject, bool) {
	return parseSubject(line)
}

// RenderTextReportForTesting exposes renderTextReport for testing.
func RenderTextReportForTesting(result Result, failing bool, project string) string {
	return renderTextReport(result, failing, project)
}

// RenderJSONReportForTesting exposes renderJSONReport for testing.
func RenderJSONReportForTesting(result Result) (string, error) {
	return renderJSONReport(result)
}

// ReadMessageForTesting exposes readMessage for testing.
func ReadMessageForTesting(stdin io.Reader, message string, ref string, args []string) (string, error) {
	return readMessage(stdin, &options{message: message, ref: ref}, args)
}

// ReadCommitMessageForTesting exposes readCommitMessage for testing.
func ReadCommitMessageForTesting(path string, rev string) (string, error) {
	return readCommitMessage(path, rev)
}
