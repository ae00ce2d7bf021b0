package gitinfo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGitNotFound reports that the git executable is not installed or not on
// the PATH. Callers treat this as non-fatal and leave the git fields absent.
var ErrGitNotFound = errors.New("git executable not found")

// ExtractionError reports a failed git invocation. Stderr carries the
// diagnostic output of the command for debug logging.
type ExtractionError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *ExtractionError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), msg)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
