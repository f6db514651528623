package logger

import "fmt"

// Fixed-shape catalog events. Each call emits one self-contained JSON record
// with a timestamp, a level and the call-specific fields below.

// PageRendered records a successful page render.
func PageRendered(page string) {
	Info().
		Str("page", page).
		Msg(fmt.Sprintf("Page '%s' rendered successfully.", page))
}

// CourseAdded records a successful course addition.
func CourseAdded(name, code string) {
	Info().
		Str("status", "success").
		Str("course_code", code).
		Msg(fmt.Sprintf("Course '%s' added successfully.", name))
}

// MissingField records a course addition rejected for an empty required field.
func MissingField(field string) {
	Error().
		Str("status", "error").
		Msg(fmt.Sprintf("Course addition failed, missing field: %s.", field))
}

// ErrorMessage records a generic request-handling error.
func ErrorMessage(message string) {
	Error().
		Str("status", "error").
		Msg(message)
}
