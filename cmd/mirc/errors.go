package main

import "errors"

// errExitWithDiagnostics is returned by a RunE once it has already printed
// its diagnostics to stderr; cobra's own error-printing is suppressed for
// it (see main's SilenceErrors-equivalent handling) and main exits 1.
var errExitWithDiagnostics = errors.New("")
