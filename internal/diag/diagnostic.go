package diag

import "mirc/internal/source"

// Site is one (position, caption) pair in a multi-site diagnostic. The
// primary site has no caption of its own — it uses Diagnostic.Message.
type Site struct {
	Pos     source.Position
	Caption string
}

// Diagnostic is a single fatal compiler error. HasPos is false only for the
// handful of pre-file errors raised while parsing CLI flags.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	HasPos   bool
	Primary  source.Position
	Sites    []Site // additional sites for multi-site diagnostics, in report order
}

// Error satisfies the error interface so a Diagnostic can be returned and
// propagated like any other Go error up to the CLI entry point.
func (d Diagnostic) Error() string {
	return d.Code.String() + ": " + d.Message
}
