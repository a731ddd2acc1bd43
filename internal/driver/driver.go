// Package driver wires the lexer, parser, MIR builder, and checker into the
// pipeline cmd/mirc's subcommands each run a prefix of.
package driver

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"mirc/internal/ast"
	"mirc/internal/check"
	"mirc/internal/diag"
	"mirc/internal/lexer"
	"mirc/internal/mir"
	"mirc/internal/parser"
	"mirc/internal/source"
	"mirc/internal/token"
	"mirc/internal/types"
)

// TokenizeResult is the outcome of running the lexer alone.
type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
	Bag    *diag.Bag
}

// Tokenize reads path and scans it into tokens, stopping at the first
// invalid token (the lexer does not attempt recovery).
func Tokenize(path string) (*TokenizeResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file := source.NewFile(path, string(content))
	bag := diag.NewBag()
	toks, _ := lexer.New(string(content), bag).Tokenize()
	return &TokenizeResult{File: file, Tokens: toks, Bag: bag}, nil
}

// ParseResult is the outcome of running the lexer and parser.
type ParseResult struct {
	File *source.File
	Fns  []*ast.Node
	Bag  *diag.Bag
	Tok  *TokenizeResult
}

// Parse tokenizes and parses path into its top-level function definitions.
// A lex failure short-circuits before the parser ever runs.
func Parse(path string) (*ParseResult, error) {
	tok, err := Tokenize(path)
	if err != nil {
		return nil, err
	}
	result := &ParseResult{File: tok.File, Bag: tok.Bag, Tok: tok}
	if !tok.Bag.Empty() {
		return result, nil
	}

	bag := diag.NewBag()
	result.Bag = bag
	fns, ok := parser.New(tok.Tokens, bag).ParseFile()
	if !ok {
		return result, nil
	}
	result.Fns = fns
	return result, nil
}

// FuncResult is one function's built-and-checked MIR, or the diagnostics
// that stopped it from reaching that point.
type FuncResult struct {
	Name string
	Func *mir.Func
	Bag  *diag.Bag
	OK   bool
}

// BuildResult is the full pipeline's output: every top-level function's
// independent build+check result.
type BuildResult struct {
	File    *source.File
	Bag     *diag.Bag // lex/parse diagnostics; empty unless OK is false
	Results []FuncResult
	OK      bool
}

// Build runs the full pipeline: lex, parse, then build and check every
// function's MIR concurrently via errgroup, since distinct functions never
// alias each other's bindings or references.
func Build(ctx context.Context, path string) (*BuildResult, error) {
	parsed, err := Parse(path)
	if err != nil {
		return nil, err
	}
	if !parsed.Bag.Empty() || parsed.Fns == nil {
		return &BuildResult{File: parsed.File, Bag: parsed.Bag, OK: false}, nil
	}

	reg := types.NewRegistry()
	funcSigs := make(map[string]types.Type, len(parsed.Fns))
	for _, fn := range parsed.Fns {
		retType := reg.Builtin(types.Void)
		if fn.Fn.ReturnType != "" {
			if resolved, ok := reg.Resolve(fn.Fn.ReturnType); ok {
				retType = resolved
			}
		}
		funcSigs[fn.Fn.Name] = retType
	}

	results := make([]FuncResult, len(parsed.Fns))
	g, _ := errgroup.WithContext(ctx)
	for i, fn := range parsed.Fns {
		i, fn := i, fn
		g.Go(func() error {
			bag := diag.NewBag()
			mf, ok := mir.NewBuilder(reg, funcSigs, bag).Build(fn)
			if ok {
				ok = check.New(bag).Check(mf)
			}
			results[i] = FuncResult{Name: fn.Fn.Name, Func: mf, Bag: bag, OK: ok}
			return nil
		})
	}
	_ = g.Wait()

	allOK := true
	for _, r := range results {
		if !r.OK {
			allOK = false
			break
		}
	}
	return &BuildResult{File: parsed.File, Bag: diag.NewBag(), Results: results, OK: allOK}, nil
}
