package host

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/nvjome/invaders8080/i8080"
)

// Controller polls the window's keyboard state and mirrors it onto the
// CPU's input ports, the same JustPressed/JustReleased polling style
// as the teacher's nes.Controller.
type Controller struct {
	Ports *i8080.Ports
}

// NewController binds to the port state a running CPU exposes.
func NewController(ports *i8080.Ports) *Controller {
	return &Controller{Ports: ports}
}

var keyBindings = map[pixelgl.Button]i8080.Button{
	pixelgl.KeyC:          i8080.ButtonCoin,
	pixelgl.Key1:          i8080.ButtonP1Start,
	pixelgl.Key2:          i8080.ButtonP2Start,
	pixelgl.KeySpace:      i8080.ButtonP1Fire,
	pixelgl.KeyLeft:       i8080.ButtonP1Left,
	pixelgl.KeyRight:      i8080.ButtonP1Right,
	pixelgl.KeyLeftControl: i8080.ButtonP2Fire,
	pixelgl.KeyA:          i8080.ButtonP2Left,
	pixelgl.KeyD:          i8080.ButtonP2Right,
}

// Update presses and releases buttons in response to key transitions
// since the last call.
func (ctl *Controller) Update(win *pixelgl.Window) {
	for key, btn := range keyBindings {
		if win.JustPressed(key) {
			ctl.Ports.PressButton(btn)
		}
		if win.JustReleased(key) {
			ctl.Ports.ReleaseButton(btn)
		}
	}
}
