// Package config loads, validates, and resolves the stand configuration
// document.
//
// A document declares a version, an optional shared [common] variable table,
// optional project settings, and named environments whose variable keys sit
// beside their metadata fields (description, extends, color,
// requires_confirmation). Loading runs three stages: structural validation,
// inheritance resolution along the extends graph (with the common table
// merged beneath every environment), and ${NAME} interpolation against the
// process environment. Any stage failing aborts the whole load.
//
// The extends relationship is stored as a name rather than a reference;
// resolution walks a name-indexed table carrying an explicit path for cycle
// detection.
package config
