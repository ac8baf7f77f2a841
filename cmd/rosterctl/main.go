// Command rosterctl runs roster maintenance tasks against the configured database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd(openApp).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
