package runner

import "fmt"

// Result is the uniform outcome of every execution: either a successful
// response text or a failure message. Frontends never see raw errors.
type Result struct {
	OK      bool   `json:"ok"`
	Text    string `json:"text,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success wraps a provider response text.
func Success(text string) Result {
	return Result{OK: true, Text: text}
}

// Failuref builds a failed Result from a format string.
func Failuref(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}
