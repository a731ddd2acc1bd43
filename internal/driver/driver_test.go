package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.mir")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestBuildAcceptsValidFunction(t *testing.T) {
	path := writeSource(t, "fn f(): i32 {\n\tlet x: i32 = 1\n\treturn x\n}\n")

	res, err := Build(context.Background(), path)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !res.OK {
		for _, r := range res.Results {
			for _, d := range r.Bag.Items() {
				t.Logf("%s: %s", r.Name, d.Message)
			}
		}
		t.Fatal("expected Build to succeed")
	}
	if len(res.Results) != 1 || res.Results[0].Name != "f" {
		t.Fatalf("unexpected results: %+v", res.Results)
	}
}

func TestBuildReportsMoveError(t *testing.T) {
	path := writeSource(t, "fn f(): i32 {\n\tlet x: i32 = 1\n\tlet r = &x\n\tlet y = r\n\tlet z = r\n\treturn x\n}\n")

	res, err := Build(context.Background(), path)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.OK {
		t.Fatal("expected re-using a moved reference binding to fail checking")
	}
}

func TestBuildStopsAtParseErrors(t *testing.T) {
	path := writeSource(t, "let x = 1\n")

	res, err := Build(context.Background(), path)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.OK {
		t.Fatal("expected Build to fail for a module-level statement that isn't a function")
	}
	if res.Bag.Empty() {
		t.Fatal("expected parse diagnostics to be reported")
	}
}

func TestTokenizeReadsFile(t *testing.T) {
	path := writeSource(t, "fn f() {\n}\n")

	res, err := Tokenize(path)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(res.Tokens) == 0 {
		t.Fatal("expected at least one token")
	}
}
