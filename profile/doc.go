// Package profile wraps [github.com/pkg/profile] behind the pprof build
// tag.
//
// Without the tag every operation is a no-op with zero overhead; with it,
// the stand binary grows --pprof-* flags selecting a profiling mode whose
// output lands in the user cache directory (or wherever --pprof-dir
// points). Profiles are analyzed with the usual go tool pprof workflow.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
