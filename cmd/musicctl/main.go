//go:build linux

package main

import (
	"os"

	"github.com/pranshuparmar/musicctl/internal/app"
)

func main() {
	os.Exit(app.Execute())
}
