// glidectl is a CLI tool for inspecting and editing Glide editor preferences
package main

import (
	"os"

	"github.com/glide-engine/glide/cmd/glidectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
