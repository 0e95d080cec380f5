// stackparse - Stack Trace Parsing Tool
//
// stackparse parses textual stack-trace dumps into structured frames and
// symbols, and extracts traces embedded in application logs.
package main

import (
	"os"

	"github.com/stackparse/stackparse/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
