// Command webview-cache inspects and resets the InvoiceDesk startup cache
// guard. It is a support tool: the desktop app runs the guard on its own.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "webview-cache: %v\n", err)
		os.Exit(1)
	}
}
