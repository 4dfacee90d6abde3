// Package envgrade provides the command-line interface for the envgrade tool.
// It configures subcommands (scan, ci, redact, patterns), parses flags, and
// executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/envgrade/envgrade/cmd/envgrade"
//	func main() { envgrade.Execute() }
package envgrade
