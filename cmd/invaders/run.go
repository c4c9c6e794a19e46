package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"

	"github.com/nvjome/invaders8080/i8080"
	"github.com/nvjome/invaders8080/internal/host"
)

func newRunCmd() *cobra.Command {
	var debug bool
	var headless bool
	var noAudio bool

	cmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Run a Space Invaders ROM image",
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

			if !noAudio {
				if beeper, err := host.NewBeeper(); err == nil {
					cpu.AudioHook = beeper.Trigger
				} else {
					fmt.Fprintf(os.Stderr, "invaders: audio disabled: %v\n", err)
				}
			}

			if headless {
				return runHeadless(cpu)
			}
			return runWindowed(cpu, debug)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "show a register/disassembly debug panel")
	cmd.Flags().BoolVar(&headless, "headless", false, "run without a window, reading cabinet buttons from stdin")
	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "disable sound effect output")

	return cmd
}

// runWindowed hands control to pixelgl.Run, which pins window/OpenGL
// calls to the main OS thread the way the teacher's main.go does via
// pixelgl.Run(nesEmulator.Run).
func runWindowed(cpu *i8080.CPU, debug bool) error {
	var runErr error
	pixelgl.Run(func() {
		display := host.NewDisplay(debug)
		win := &host.Window{
			CPU:        cpu,
			Display:    display,
			Controller: host.NewController(&cpu.Ports),
		}
		runErr = win.Run()
	})
	return runErr
}

func runHeadless(cpu *i8080.CPU) error {
	runner := &host.HeadlessRunner{CPU: cpu, Ports: &cpu.Ports}
	if err := runner.Start(); err != nil {
		return err
	}
	defer runner.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	stop := make(chan struct{})
	go func() {
		<-sig
		close(stop)
	}()

	return runner.Run(stop)
}
