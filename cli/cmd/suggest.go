package cmd

import (
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/stand/config"
	"github.com/ardnew/stand/pkg"
)

// unknownEnvironment builds the error for a name that matches no declared
// environment, suggesting the closest declared name when one ranks.
func unknownEnvironment(cfg *config.Configuration, name string) error {
	err := pkg.ErrUnknownEnvironment.Wrapf("%q", name)

	matches := fuzzy.Find(name, cfg.Names)
	if len(matches) > 0 {
		return err.Wrapf("did you mean %q?", matches[0].Str)
	}

	return err
}
