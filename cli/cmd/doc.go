// Package cmd implements the stand subcommands.
//
// Each command is a struct whose fields declare its flags and arguments,
// with a Run method executed by kong after parsing. Commands locate their
// project by walking upward from the working directory, load the fully
// resolved configuration, and report failures as structured [Error] values
// that carry attributes for logging.
package cmd
