package convert

import "fmt"

// Severity ranks an issue.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Issue is an advisory finding from the converter or the validator. Issues
// never block block production; callers decide whether to reject, truncate
// or run the formatter with limit enforcement.
type Issue struct {
	// Path locates the finding, e.g. "blocks[2].children[0]".
	Path string
	// Reason describes what was found.
	Reason string
	// Severity ranks it.
	Severity Severity
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Reason)
}
