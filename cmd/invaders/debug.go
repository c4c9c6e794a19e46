package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"github.com/nvjome/invaders8080/i8080"
)

// newDebugCmd dumps a disassembly listing of a ROM to the system
// clipboard instead of stdout, the same clipboard.Init/clipboard.Write
// pairing IntuitionEngine's video backend uses to shuttle its own
// debug text out of the emulator process.
func newDebugCmd() *cobra.Command {
	var start, stop uint16

	cmd := &cobra.Command{
		Use:   "debug [rom]",
		Short: "Copy a disassembly listing of a ROM to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("invaders: reading ROM: %w", err)
			}

			cpu := i8080.New()
			if err := cpu.LoadROM(rom, 0x0000); err != nil {
				return fmt.Errorf("invaders: loading ROM: %w", err)
			}

			end := stop
			if end == 0 {
				end = uint16(len(rom) - 1)
			}

			lines := cpu.Disassemble(start, end)

			var sb strings.Builder
			for addr := start; ; addr++ {
				if line, ok := lines[addr]; ok {
					sb.WriteString(line)
					sb.WriteByte('\n')
				}
				if addr == end {
					break
				}
			}

			if err := clipboard.Init(); err != nil {
				return fmt.Errorf("invaders: clipboard unavailable: %w", err)
			}
			clipboard.Write(clipboard.FmtText, []byte(sb.String()))

			fmt.Printf("invaders: copied %d bytes of disassembly to the clipboard\n", sb.Len())
			return nil
		},
	}

	cmd.Flags().Uint16Var(&start, "start", 0x0000, "first address to disassemble")
	cmd.Flags().Uint16Var(&stop, "stop", 0, "last address to disassemble (defaults to end of ROM)")

	return cmd
}
