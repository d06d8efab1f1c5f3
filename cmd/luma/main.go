// Command luma runs the interpreter described by this repository: lex,
// parse, and execute a Lua-family source file.
package main

import (
	"os"

	"github.com/lumascript/luma/cmd/luma/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
