package diag

import (
	"fmt"

	"mirc/internal/source"
)

// Reporter is the minimal contract each phase uses to surface a diagnostic.
// Every user-facing error is fatal (see the error-handling design), so in
// practice a Reporter only ever needs to accept one Diagnostic before the
// caller aborts — but it is shaped as a sink rather than a single-shot
// function so tests can collect diagnostics without unwinding.
type Reporter interface {
	Report(d Diagnostic)
}

// Bag accumulates diagnostics in report order. Report order is
// semantics-visible (the CLI renders diagnostics in the order they were
// added), so Bag never reorders or deduplicates.
type Bag struct {
	items []Diagnostic
}

// NewBag constructs an empty Bag.
func NewBag() *Bag {
	return &Bag{}
}

// Report appends d to the bag.
func (b *Bag) Report(d Diagnostic) {
	b.items = append(b.items, d)
}

// Items returns the accumulated diagnostics in insertion order.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Empty reports whether no diagnostic has been added.
func (b *Bag) Empty() bool {
	return len(b.items) == 0
}

// First returns the first reported diagnostic, the one the compiler's
// all-errors-are-fatal design means the caller should act on.
func (b *Bag) First() (Diagnostic, bool) {
	if len(b.items) == 0 {
		return Diagnostic{}, false
	}
	return b.items[0], true
}

// Builder accumulates a single diagnostic's notes before emitting it once.
type Builder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewError starts a positioned error diagnostic.
func NewError(r Reporter, code Code, pos source.Position, format string, args ...any) *Builder {
	return &Builder{
		reporter: r,
		diag: Diagnostic{
			Code: code, Severity: SevError,
			Message: sprintfOrFormat(format, args...),
			HasPos:  true, Primary: pos,
		},
	}
}

// NewErrorNoPos starts an error diagnostic with no source position, used by
// the CLI for flag errors raised before any file has been loaded.
func NewErrorNoPos(r Reporter, code Code, format string, args ...any) *Builder {
	return &Builder{
		reporter: r,
		diag: Diagnostic{
			Code: code, Severity: SevError,
			Message: sprintfOrFormat(format, args...),
			HasPos:  false,
		},
	}
}

// WithSite appends a secondary site with its own caption.
func (b *Builder) WithSite(pos source.Position, caption string) *Builder {
	if b == nil {
		return nil
	}
	b.diag.Sites = append(b.diag.Sites, Site{Pos: pos, Caption: caption})
	return b
}

// Emit sends the accumulated diagnostic to the Reporter exactly once.
func (b *Builder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
	b.emitted = true
}

// Diagnostic returns the accumulated diagnostic without emitting it.
func (b *Builder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}

func sprintfOrFormat(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
