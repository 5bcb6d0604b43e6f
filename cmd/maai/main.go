// maai: Multi-Agent AI project generator
//
// A CLI that sequences calls to a text-generation service to turn a
// one-line project name into ideas, implementation plans, source code,
// reviews, tests, documentation and business analyses, all stored as
// plain files under a per-project directory.
//
// Usage:
//
//	maai idea "Task tracker"   # Develop an idea document
//	maai plan task-tracker     # Plan the implementation
//	maai code task-tracker     # Generate the source tree
//	maai serve                 # Expose the stores over MCP (stdio)
package main

import "github.com/maai-dev/maai/cmd/maai/commands"

func main() {
	commands.Execute()
}
