package energy

import "fmt"

// LoadError is returned when one of the input files cannot be read or parsed.
// Stage names the step that failed ("open", "header", "row", "geometry").
type LoadError struct {
	Stage string
	File  string
	Line  int
	Err   error
}

func (e *LoadError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("load error at %s stage (%s line %d): %v", e.Stage, e.File, e.Line, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("load error at %s stage (line %d): %v", e.Stage, e.Line, e.Err)
	case e.File != "":
		return fmt.Sprintf("load error at %s stage (%s): %v", e.Stage, e.File, e.Err)
	default:
		return fmt.Sprintf("load error at %s stage: %v", e.Stage, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(stage string, line int, err error) *LoadError {
	return &LoadError{Stage: stage, Line: line, Err: err}
}
