package main

import (
	"shadcn-helper/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// shadcn-helper wraps the shadcn component generators (shadcn, shadcn-vue, shadcn-svelte):
//   - Records every added component in components/index.ini so a fresh clone can
//     regenerate them with "install" instead of committing generated code
//   - Stashes the existing components directory while the generator runs and merges it
//     back afterwards, so adding one component never clobbers the others
//   - Keeps generated components git-ignored and lets "edit" detach a component from
//     regeneration, un-ignore it, stage it and open it in an editor
//
// Errors abort the current command and are printed with details and a suggestion
// before the program exits with a non-zero status.
func main() {
	cmd.Execute()
}
