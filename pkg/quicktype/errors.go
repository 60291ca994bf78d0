package quicktype

import (
	"fmt"
	"strings"
)

// ExecutableNotFoundError means neither quicktype nor its package-runner
// fallback could be started.
type ExecutableNotFoundError struct {
	Tried []string
	Err   error
}

func (e *ExecutableNotFoundError) Error() string {
	quoted := make([]string, len(e.Tried))
	for i, name := range e.Tried {
		quoted[i] = "`" + name + "`"
	}
	return fmt.Sprintf("neither %s are in $PATH", strings.Join(quoted, " nor "))
}

func (e *ExecutableNotFoundError) Unwrap() error {
	return e.Err
}

// GenerationFailedError carries quicktype's diagnostics verbatim. Any output
// on stderr is treated as failure, even with a zero exit status.
type GenerationFailedError struct {
	Language string
	Stderr   string
	Err      error
}

func (e *GenerationFailedError) Error() string {
	if e.Stderr != "" {
		return "quicktype " + e.Stderr
	}
	return fmt.Sprintf("quicktype failed for %s: %v", e.Language, e.Err)
}

func (e *GenerationFailedError) Unwrap() error {
	return e.Err
}

// OutputMissingError means quicktype exited without writing the output file.
type OutputMissingError struct {
	Language string
	Path     string
}

func (e *OutputMissingError) Error() string {
	return fmt.Sprintf("quicktype produced no %s output at %s", e.Language, e.Path)
}
