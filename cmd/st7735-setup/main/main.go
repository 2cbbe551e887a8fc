package main

import (
	"os"

	st7735setup "github.com/arthur-debert/st7735-setup/cmd/st7735-setup"
	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/ui"
)

func main() {
	rootCmd := st7735setup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.RenderError(os.Stderr, st7735setup.ErrorFormat(rootCmd), err)
		os.Exit(errors.ExitCode(err))
	}
}
