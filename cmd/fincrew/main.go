// Command fincrew reads financial PDFs and analyses them with a crew of
// language-model agents.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/fincrew/internal/adapters/driving/cli"
)

// version is set by the linker: -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(build); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
