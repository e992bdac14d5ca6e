package main

import (
	"github.com/stowbar/stowbar/cmd"

	// Registers the darwin platform provider.
	_ "github.com/stowbar/stowbar/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
