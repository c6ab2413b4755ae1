package bootstrap

import (
	"errors"
	"fmt"

	"github.com/wlame/kickoff/internal/exec"
)

// StepError reports which step of the sequence failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *StepError) Unwrap() error {
	return e.Err
}

// FailedStep returns the name of the step that produced err, or "" if err
// did not come from a bootstrap run.
func FailedStep(err error) string {
	var se *StepError
	if errors.As(err, &se) {
		return se.Step
	}
	return ""
}

// ExitCode maps a bootstrap error to a process exit code.
// A failed external command propagates its own code; anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := exec.ExitCode(err); ok && code > 0 {
		return code
	}
	return 1
}
