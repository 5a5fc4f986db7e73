//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"musicctl is only supported on Linux.\n\nIt finds players by reading /proc, which other platforms do not provide.",
	)
	os.Exit(1)
}
