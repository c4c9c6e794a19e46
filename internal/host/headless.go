//go:build !windows

package host

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/nvjome/invaders8080/i8080"
)

// HeadlessRunner drives the CPU at the same 60 Hz / mid-screen
// interrupt cadence as Window, but without a GUI window: stdin (in raw
// mode) supplies button presses and nothing is rasterised. Grounded on
// IntuitionEngine's TerminalHost raw-stdin reader, adapted from a
// line-oriented terminal device to a cabinet button mapping.
type HeadlessRunner struct {
	CPU   *i8080.CPU
	Ports *i8080.Ports

	cyclesThisFrame int

	fd           int
	oldTermState *term.State
	stopCh       chan struct{}
	stopped      sync.Once
}

var headlessKeyBindings = map[byte]i8080.Button{
	'c': i8080.ButtonCoin,
	'1': i8080.ButtonP1Start,
	'2': i8080.ButtonP2Start,
	' ': i8080.ButtonP1Fire,
	'j': i8080.ButtonP1Left,
	'l': i8080.ButtonP1Right,
}

// Start puts stdin in raw mode and begins routing keystrokes to button
// presses in the background. Every bound key is treated as a momentary
// press: HeadlessRunner releases it again about 80 ms later, since a
// raw terminal gives no key-up event.
func (h *HeadlessRunner) Start() error {
	h.fd = int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		return fmt.Errorf("host: failed to set raw terminal mode: %w", err)
	}
	h.oldTermState = oldState
	if err := syscall.SetNonblock(h.fd, true); err != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		return fmt.Errorf("host: failed to set nonblocking stdin: %w", err)
	}

	h.stopCh = make(chan struct{})
	go h.pollKeys()
	return nil
}

func (h *HeadlessRunner) pollKeys() {
	buf := make([]byte, 1)
	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := syscall.Read(h.fd, buf)
		if n > 0 {
			if btn, ok := headlessKeyBindings[buf[0]]; ok {
				h.Ports.PressButton(btn)
				go func() {
					time.Sleep(80 * time.Millisecond)
					h.Ports.ReleaseButton(btn)
				}()
			}
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
	}
}

// Stop restores the terminal to its original state.
func (h *HeadlessRunner) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
		if h.oldTermState != nil {
			_ = term.Restore(h.fd, h.oldTermState)
		}
	})
}

// RunFrame advances one frame's worth of cycles with the same
// interrupt cadence as Window.RunFrame, without drawing anything.
func (h *HeadlessRunner) RunFrame() error {
	for h.cyclesThisFrame < midFrameCycles {
		cycles, err := h.CPU.Tick()
		if err != nil {
			return err
		}
		h.cyclesThisFrame += int(cycles)
	}
	h.CPU.Interrupt(midscanVector)

	for h.cyclesThisFrame < cyclesPerFrame {
		cycles, err := h.CPU.Tick()
		if err != nil {
			return err
		}
		h.cyclesThisFrame += int(cycles)
	}
	h.CPU.Interrupt(vblankVector)
	h.cyclesThisFrame -= cyclesPerFrame
	return nil
}

// Run loops RunFrame at roughly 60 Hz until the stop channel fires or
// the CPU faults.
func (h *HeadlessRunner) Run(stop <-chan struct{}) error {
	interval := time.Second / time.Duration(fps)
	for {
		select {
		case <-stop:
			return nil
		default:
		}
		start := time.Now()
		if err := h.RunFrame(); err != nil {
			return err
		}
		if elapsed := time.Since(start); elapsed < interval {
			time.Sleep(interval - elapsed)
		}
	}
}
