package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvjome/invaders8080/i8080"
)

func newDisasmCmd() *cobra.Command {
	var start, stop uint16

	cmd := &cobra.Command{
		Use:   "disasm [rom]",
		Short: "Disassemble a ROM image without running it",
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
			for addr := start; ; addr++ {
				if line, ok := lines[addr]; ok {
					fmt.Println(line)
				}
				if addr == end {
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().Uint16Var(&start, "start", 0x0000, "first address to disassemble")
	cmd.Flags().Uint16Var(&stop, "stop", 0, "last address to disassemble (defaults to end of ROM)")

	return cmd
}
