package prompt

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when a template name is not registered
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// MissingParamsError lists every required parameter absent from a Format call
type MissingParamsError struct {
	Template string
	Missing  []string
}

func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("template %q is missing required parameters: %s", e.Template, strings.Join(e.Missing, ", "))
}
