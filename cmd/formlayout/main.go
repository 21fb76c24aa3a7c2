// Command formlayout inspects and previews adaptive form layouts from
// declarative form documents or OpenAPI operations.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
