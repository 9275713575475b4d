//go:build !pprof

package profile

// Modes returns no modes when built without the pprof tag.
func Modes() []string { return nil }

// start is a no-op when built without the pprof tag.
func start(string, string, bool) interface{ Stop() } { return ignore{} }
