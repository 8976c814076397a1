// Command knotcheck validates knot diagrams stored as YAML documents and
// resolves or moves the arc between their two separators.
//
// Usage:
//
//	knotcheck validate FILE
//	knotcheck resolve [--out FILE] FILE
//	knotcheck move [--out FILE] FILE
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
