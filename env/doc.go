// Package env implements the variable resolution engine: an env-file parser,
// ${NAME} placeholder expansion, and a multi-source priority resolver.
//
// Variables are held in an insertion-ordered [Vars] mapping. A [Resolver]
// merges any number of [Source] values (built-in defaults, env files, the
// process environment, explicit overrides) by precedence and expands every
// value of the merged result, detecting reference cycles.
//
// Two expansion flavors share the ${NAME} syntax but are deliberately kept
// apart: the parser expands references against variables committed earlier in
// the same file (undefined names become empty), while the resolver expands
// against the complete merged mapping with configurable undefined-variable
// behavior and cycle detection.
package env
