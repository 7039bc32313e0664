package cssom

import (
	"log"

	"github.com/tdewolff/cssom/shorthand"
)

// ErrorKind is the category of a reported failure.
type ErrorKind = shorthand.ErrorKind

// ErrorKind values.
const (
	SyntaxError                = shorthand.SyntaxError
	ConflictError              = shorthand.ConflictError
	IncompleteError            = shorthand.IncompleteError
	UnresolvedReferenceWarning = shorthand.UnresolvedReferenceWarning
)

// ErrorHandler is the sink for failures of individual writes. A failed write never affects other properties.
type ErrorHandler interface {
	Report(kind ErrorKind, property, message string)
	ReportWarning(kind ErrorKind, property, message string)
	HasErrors() bool
	HasWarnings() bool
}

// ErrorList is an ErrorHandler that collects all reports.
type ErrorList struct {
	Errors   []*shorthand.Error
	Warnings []*shorthand.Error
}

// Report implements ErrorHandler.
func (l *ErrorList) Report(kind ErrorKind, property, message string) {
	l.Errors = append(l.Errors, &shorthand.Error{Kind: kind, Property: property, Message: message})
}

// ReportWarning implements ErrorHandler.
func (l *ErrorList) ReportWarning(kind ErrorKind, property, message string) {
	l.Warnings = append(l.Warnings, &shorthand.Error{Kind: kind, Property: property, Message: message})
}

// HasErrors implements ErrorHandler.
func (l *ErrorList) HasErrors() bool {
	return 0 < len(l.Errors)
}

// HasWarnings implements ErrorHandler.
func (l *ErrorList) HasWarnings() bool {
	return 0 < len(l.Warnings)
}

// Reset clears all reports.
func (l *ErrorList) Reset() {
	l.Errors = l.Errors[:0]
	l.Warnings = l.Warnings[:0]
}

// LogHandler is an ErrorHandler that writes reports to loggers. A nil logger discards its reports.
type LogHandler struct {
	Error   *log.Logger
	Warning *log.Logger

	// Prefix is prepended to every message, such as the filename
	Prefix string

	errors, warnings int
}

// Report implements ErrorHandler.
func (h *LogHandler) Report(kind ErrorKind, property, message string) {
	h.errors++
	if h.Error != nil {
		h.Error.Println(h.Prefix + (&shorthand.Error{Kind: kind, Property: property, Message: message}).Error())
	}
}

// ReportWarning implements ErrorHandler.
func (h *LogHandler) ReportWarning(kind ErrorKind, property, message string) {
	h.warnings++
	if h.Warning != nil {
		h.Warning.Println(h.Prefix + (&shorthand.Error{Kind: kind, Property: property, Message: message}).Error())
	}
}

// HasErrors implements ErrorHandler.
func (h *LogHandler) HasErrors() bool {
	return 0 < h.errors
}

// HasWarnings implements ErrorHandler.
func (h *LogHandler) HasWarnings() bool {
	return 0 < h.warnings
}
