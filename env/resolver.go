package env

import (
	"fmt"
	"os"
	"strings"
)

// Source is one origin of variable values. Sources are combined by a
// [Resolver] in list order: later sources have strictly higher precedence.
//
// The set of implementations is closed: [Default], [File], [Process], and
// [Overrides].
type Source interface {
	fmt.Stringer

	// load returns the source's variables as a flat, unexpanded mapping.
	load() (*Vars, error)
}

// SourceError reports a failure to load variables from a source.
type SourceError struct {
	Err    error
	Source string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("error loading from source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// defaultSource supplies built-in default values (lowest typical priority).
type defaultSource struct {
	vars *Vars
}

// Default returns a source supplying the given built-in defaults.
func Default(vars *Vars) Source { return &defaultSource{vars: vars} }

func (s *defaultSource) String() string { return "defaults" }

func (s *defaultSource) load() (*Vars, error) {
	return s.vars.Clone(), nil
}

// fileSource supplies variables parsed from an env file. In-file expansion
// is disabled so cross-source references survive to the merge stage.
type fileSource struct {
	path string
}

// File returns a source reading the env file at path.
func File(path string) Source { return &fileSource{path: path} }

func (s *fileSource) String() string { return "file " + s.path }

func (s *fileSource) load() (*Vars, error) {
	return LoadFileWithOptions(s.path, ParseOptions{ExpandVariables: false})
}

// processSource snapshots the live process environment.
type processSource struct{}

// Process returns a source snapshotting the process environment.
func Process() Source { return processSource{} }

func (processSource) String() string { return "process environment" }

func (processSource) load() (*Vars, error) {
	vars := NewVars()

	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if ok {
			vars.Set(key, value)
		}
	}

	return vars, nil
}

// overrideSource supplies explicit overrides (highest typical priority).
type overrideSource struct {
	vars *Vars
}

// Overrides returns a source supplying explicit override values.
func Overrides(vars *Vars) Source { return &overrideSource{vars: vars} }

func (s *overrideSource) String() string { return "overrides" }

func (s *overrideSource) load() (*Vars, error) {
	return s.vars.Clone(), nil
}

// Resolver merges variable mappings from an ordered list of sources and
// expands every value of the merged result.
//
// A Resolver carries no state between calls to [Resolver.Resolve]: each call
// reloads every source and builds a fresh result.
type Resolver struct {
	sources []Source
}

// NewResolver returns a resolver over the given sources in precedence order
// (lowest first).
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Add appends a source with precedence above all sources added before it.
func (r *Resolver) Add(src Source) {
	r.sources = append(r.sources, src)
}

// Resolve merges and expands all sources using default options
// (undefined references become empty strings).
func (r *Resolver) Resolve() (*Vars, error) {
	return r.ResolveWithOptions(ResolutionOptions{})
}

// ResolveWithOptions merges all sources in list order (later sources
// overwrite earlier ones) and then expands every value of the merged
// mapping, each top-level key with its own fresh cycle-detection stack.
func (r *Resolver) ResolveWithOptions(
	opts ResolutionOptions,
) (*Vars, error) {
	merged := NewVars()

	for _, src := range r.sources {
		vars, err := src.load()
		if err != nil {
			return nil, &SourceError{Source: src.String(), Err: err}
		}

		merged.Merge(vars)
	}

	return expandAll(merged, opts)
}
