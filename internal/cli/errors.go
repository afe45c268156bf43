package cli

import "strings"

// PreflightError explains why a command cannot run and what to do instead.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\nhint: ")
		b.WriteString(e.Hint)
	}
	if e.NextStep != "" {
		b.WriteString("\nnext: ")
		b.WriteString(e.NextStep)
	}
	return b.String()
}
