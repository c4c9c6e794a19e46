// Package host wires an i8080.CPU to a window, keyboard, and speaker —
// everything spec.md calls out as an "external collaborator" rather
// than core-package responsibility: binary loading, video rasterisation,
// audio, and the 60 Hz / mid-screen interrupt scheduler.
package host

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/nvjome/invaders8080/i8080"
)

const (
	vramBase   = 0x2400
	vramEnd    = 0x3FFF
	screenW    = 256
	screenH    = 224
	scale      = 3
	windowW    = screenH * scale // rotated: the cabinet's tall screen renders sideways
	windowH    = screenW * scale

	debugPanelW = 360

	cpuHz          = 2_000_000
	fps            = 60
	cyclesPerFrame = cpuHz / fps
	midFrameCycles = cyclesPerFrame / 2

	vblankVector   = 2
	midscanVector  = 1
)

// Display owns the window and the rotated 1-bit-per-pixel framebuffer
// read out of the CPU's video RAM every frame, in the same
// image.RGBA + faiface/pixel shape as the teacher's nes.Display.
type Display struct {
	screenRgba *image.RGBA
	debugRgba  *image.RGBA

	window      *pixelgl.Window
	screenMat   pixel.Matrix
	debugMat    pixel.Matrix

	debugAtlas   *text.Atlas
	debugRegText *text.Text

	isDebug bool
}

// NewDisplay creates the window. isDebug adds a side panel with a live
// register/flag dump, mirroring the teacher's debug panel.
func NewDisplay(isDebug bool) *Display {
	screenRgba := image.NewRGBA(image.Rect(0, 0, windowW, windowH))

	totalW := float64(windowW)
	if isDebug {
		totalW += debugPanelW
	}

	cfg := pixelgl.WindowConfig{
		Title:  "Space Invaders",
		Bounds: pixel.R(0, 0, totalW, windowH),
		VSync:  true,
	}
	window, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.Fatal("host: unable to create window: ", err)
	}

	pic := pixel.PictureDataFromImage(screenRgba)
	screenMat := pixel.IM.Moved(pic.Bounds().Center())

	var debugRgba *image.RGBA
	var debugMat pixel.Matrix
	var debugAtlas *text.Atlas
	var debugRegText *text.Text
	if isDebug {
		debugRgba = image.NewRGBA(image.Rect(0, 0, int(debugPanelW), windowH))
		debugPic := pixel.PictureDataFromImage(debugRgba)
		debugMat = pixel.IM.Moved(debugPic.Bounds().Center().Add(pixel.V(float64(windowW), 0)))
		debugAtlas = text.NewAtlas(basicfont.Face7x13, text.ASCII)
		debugRegText = text.New(pixel.V(float64(windowW)+8, windowH-40), debugAtlas)
	}

	return &Display{
		screenRgba:   screenRgba,
		debugRgba:    debugRgba,
		window:       window,
		screenMat:    screenMat,
		debugMat:     debugMat,
		debugAtlas:   debugAtlas,
		debugRegText: debugRegText,
		isDebug:      isDebug,
	}
}

// Closed reports whether the user closed the window.
func (d *Display) Closed() bool {
	return d.window.Closed()
}

// DrawFrame rasterises the CPU's video RAM and presents it, plus the
// debug panel if enabled.
func (d *Display) DrawFrame(c *i8080.CPU) {
	d.window.Clear(colornames.Black)
	d.rasterize(c)

	sprite := pixel.NewSprite(pixel.PictureDataFromImage(d.screenRgba), pixel.R(0, 0, windowW, windowH))
	sprite.Draw(d.window, d.screenMat)

	if d.isDebug {
		d.writeDebugText(c)
		d.debugRegText.Draw(d.window, pixel.IM)
	}

	d.window.Update()
}

// rasterize converts the 1bpp rotated framebuffer at 0x2400-0x3FFF
// (224 lines of 32 bytes, 256 bits each) into on-screen pixels. Space
// Invaders' monitor is mounted 90 degrees from the video memory's
// native orientation: byte (vramBase + x*32 + y/8) bit (y%8) lights
// pixel (x, screenW-1-y).
func (d *Display) rasterize(c *i8080.CPU) {
	for x := 0; x < screenH; x++ {
		for byteRow := 0; byteRow < screenW/8; byteRow++ {
			addr := uint16(vramBase + x*(screenW/8) + byteRow)
			b := c.Ram[addr]
			for bit := 0; bit < 8; bit++ {
				y := byteRow*8 + bit
				lit := b&(1<<uint(bit)) != 0

				px := x
				py := screenW - 1 - y

				var col color.RGBA
				if lit {
					col = color.RGBA{R: 255, G: 255, B: 255, A: 255}
				} else {
					col = color.RGBA{A: 255}
				}
				for sx := 0; sx < scale; sx++ {
					for sy := 0; sy < scale; sy++ {
						d.screenRgba.SetRGBA(px*scale+sx, py*scale+sy, col)
					}
				}
			}
		}
	}
}

func (d *Display) writeDebugText(c *i8080.CPU) {
	d.debugRegText.Clear()
	fmt.Fprintf(d.debugRegText, "A:  %#02X\n", c.A)
	fmt.Fprintf(d.debugRegText, "BC: %#04X\n", c.BC.Pair())
	fmt.Fprintf(d.debugRegText, "DE: %#04X\n", c.DE.Pair())
	fmt.Fprintf(d.debugRegText, "HL: %#04X\n", c.HL.Pair())
	fmt.Fprintf(d.debugRegText, "PC: %#04X\n", c.Memory.Pc)
	fmt.Fprintf(d.debugRegText, "SP: %#04X\n", c.Memory.Sp)
	fmt.Fprintf(d.debugRegText, "Flags Z:%v S:%v P:%v C:%v\n", c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.C)
	fmt.Fprintf(d.debugRegText, "State: %v\n", c.State())
}

// Window runs the fetch/execute/interrupt loop with the cabinet's two
// interrupts per frame (spec.md §4.4, §6): a mid-screen RST 1 at
// cyclesPerFrame/2 and an end-of-frame RST 2 (vblank) at
// cyclesPerFrame, both driven off the cycle counts Tick returns.
type Window struct {
	CPU        *i8080.CPU
	Display    *Display
	Controller *Controller

	cyclesThisFrame int
}

// RunFrame executes roughly one 60 Hz frame worth of CPU cycles,
// injecting the mid-screen and vblank interrupts at the right cycle
// counts, then redraws. It returns the error from the first failing
// Tick, if any — the caller is expected to stop the emulation per
// spec.md §7's "corrupt program" failure semantics.
func (w *Window) RunFrame() error {
	for w.cyclesThisFrame < midFrameCycles {
		cycles, err := w.CPU.Tick()
		if err != nil {
			return err
		}
		w.cyclesThisFrame += int(cycles)
	}
	w.CPU.Interrupt(midscanVector)

	for w.cyclesThisFrame < cyclesPerFrame {
		cycles, err := w.CPU.Tick()
		if err != nil {
			return err
		}
		w.cyclesThisFrame += int(cycles)
	}
	w.CPU.Interrupt(vblankVector)
	w.cyclesThisFrame -= cyclesPerFrame

	w.Controller.Update(w.Display.window)
	w.Display.DrawFrame(w.CPU)
	return nil
}

// Run drives frames at 60 Hz until the window is closed or the CPU
// faults, mirroring the teacher's Bus.Run timer loop.
func (w *Window) Run() error {
	interval := time.Second / time.Duration(fps)
	for !w.Display.Closed() {
		start := time.Now()
		if err := w.RunFrame(); err != nil {
			return err
		}
		if elapsed := time.Since(start); elapsed < interval {
			time.Sleep(interval - elapsed)
		}
	}
	return nil
}
