// Package config loads a project's mirc.toml manifest: the default source
// file, default check flags, optimize setting, and MIR dump path. cmd/mirc
// build falls back to the source, flags and optimize values when the
// matching CLI input is absent; no command reads the MIR dump path.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Flag names recognized in [check].flags, mirrored from the CLI's --flags
// validation set.
const (
	FlagNoOUChecks = "no-ou-checks"
	FlagSanitize   = "sanitize"
)

var validFlags = map[string]bool{
	FlagNoOUChecks: true,
	FlagSanitize:   true,
}

// ErrPackageSectionMissing indicates a manifest has no [package] table.
var ErrPackageSectionMissing = errors.New("missing [package]")

// Manifest is the parsed contents of a mirc.toml project manifest.
type Manifest struct {
	Source   string
	Flags    []string
	Optimize bool
	MIRDump  string
}

type manifestFile struct {
	Package struct {
		Source string `toml:"source"`
	} `toml:"package"`
	Check struct {
		Flags    []string `toml:"flags"`
		Optimize bool     `toml:"optimize"`
		MIRDump  string   `toml:"mir_dump"`
	} `toml:"check"`
}

// Load parses the mirc.toml at path. Flag names are validated against the
// same set the CLI accepts, so a manifest rejects the same unknown and
// duplicate names a --flags value would; here the failure is a plain
// error rather than a diagnostic.
func Load(path string) (Manifest, error) {
	var raw manifestFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}

	seen := make(map[string]bool, len(raw.Check.Flags))
	for _, flag := range raw.Check.Flags {
		flag = strings.TrimSpace(flag)
		if !validFlags[flag] {
			return Manifest{}, fmt.Errorf("%s: invalid flag %q in [check].flags", path, flag)
		}
		if seen[flag] {
			return Manifest{}, fmt.Errorf("%s: duplicate flag %q in [check].flags", path, flag)
		}
		seen[flag] = true
	}

	return Manifest{
		Source:   strings.TrimSpace(raw.Package.Source),
		Flags:    raw.Check.Flags,
		Optimize: raw.Check.Optimize,
		MIRDump:  strings.TrimSpace(raw.Check.MIRDump),
	}, nil
}

// Find walks up from startDir looking for mirc.toml, the way a Go toolchain
// walks up looking for go.mod.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "mirc.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFromDir finds and loads the manifest nearest to startDir. ok is false
// (with a nil error) when no manifest exists; callers fall back to CLI flags
// and the positional file argument entirely.
func LoadFromDir(startDir string) (Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return Manifest{}, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return Manifest{}, true, err
	}
	return m, true, nil
}
