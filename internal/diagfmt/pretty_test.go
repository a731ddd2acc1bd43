package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"mirc/internal/diag"
	"mirc/internal/source"
)

func TestPrettyIncludesCodeMessageAndSite(t *testing.T) {
	file := source.NewFile("example.mir", "let x: i32 = 1i8\n")
	bag := diag.NewBag()
	diag.NewError(bag, diag.TypeMismatch, source.New(0, 13, 16), "mismatched types").
		WithSite(source.New(0, 0, 3), "declared here").
		Emit()

	var buf bytes.Buffer
	Pretty(&buf, bag, file, Options{Color: false})
	out := buf.String()

	for _, want := range []string{"E004", "mismatched types", "example.mir", "declared here", "let x: i32 = 1i8"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrettyRendersMultipleDiagnosticsInOrder(t *testing.T) {
	file := source.NewFile("example.mir", "a\nb\n")
	bag := diag.NewBag()
	diag.NewError(bag, diag.BindingNotFound, source.New(0, 0, 1), "first").Emit()
	diag.NewError(bag, diag.BindingNotFound, source.New(1, 0, 1), "second").Emit()

	var buf bytes.Buffer
	Pretty(&buf, bag, file, Options{Color: false})
	out := buf.String()

	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Error("expected diagnostics in report order")
	}
}
