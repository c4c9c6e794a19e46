// Command invaders loads a Space Invaders ROM image and drives it
// through the i8080 core, either in a windowed cabinet view or as a
// one-shot disassembly/debug dump.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "invaders",
		Short: "Space Invaders arcade emulator built on the i8080 core",
	}

	rootCmd.AddCommand(newRunCmd(), newDisasmCmd(), newDebugCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
