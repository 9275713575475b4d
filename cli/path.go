package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ardnew/stand/pkg"
)

// cacheDir returns the user cache directory for transient files such as
// profiler output, falling back to ~/.cache and finally the working
// directory.
var cacheDir = sync.OnceValue(
	func() string {
		if dir, err := os.UserCacheDir(); err == nil {
			return filepath.Join(dir, pkg.Prefix())
		}

		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".cache", pkg.Prefix())
		}

		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}

		return filepath.Join(dir, pkg.Prefix())
	},
)
