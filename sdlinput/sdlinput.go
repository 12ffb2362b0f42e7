// This file is part of Tickinput.
//
// Tickinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tickinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tickinput.  If not, see <https://www.gnu.org/licenses/>.

package sdlinput

import (
	"fmt"
	"time"

	"github.com/tickinput/tickinput/assert"
	"github.com/tickinput/tickinput/control/gamepad"
	"github.com/tickinput/tickinput/logger"
	"github.com/tickinput/tickinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Backend implements the userinput.Backend interface using SDL.
type Backend struct {
	window *sdl.Window

	// the goroutine that created the backend
	owner assert.Owner

	// game controllers indexed by slot. a nil entry is an empty slot
	pads []*sdl.GameController
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend(title string, width, height int) (*Backend, error) {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	b := &Backend{
		owner: assert.NewOwner(),
	}

	b.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// open controllers already connected. controllers connected later are
	// opened when the CONTROLLERDEVICEADDED event is received
	for i := 0; i < sdl.NumJoysticks(); i++ {
		b.open(i)
	}
	if len(b.pads) == 0 {
		logger.Log(logger.Allow, "sdl", "no gamepads found")
	}

	return b, nil
}

// Close implements the userinput.Backend interface.
func (b *Backend) Close() error {
	for i, pad := range b.pads {
		if pad != nil {
			pad.Close()
			b.pads[i] = nil
		}
	}

	var err error
	if b.window != nil {
		err = b.window.Destroy()
		b.window = nil
	}
	sdl.Quit()

	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// Size returns the size of the window in pixels.
func (b *Backend) Size() (int, int) {
	w, h := b.window.GetSize()
	return int(w), int(h)
}

// open the game controller at the device index and place it in the first
// free slot. returns the slot index or -1 if the device is not a game
// controller
func (b *Backend) open(device int) int {
	if !sdl.IsGameController(device) {
		return -1
	}

	pad := sdl.GameControllerOpen(device)
	if pad == nil || !pad.Attached() {
		return -1
	}
	logger.Logf(logger.Allow, "sdl", "gamepad: %s", pad.Name())

	for i := range b.pads {
		if b.pads[i] == nil {
			b.pads[i] = pad
			return i
		}
	}
	b.pads = append(b.pads, pad)
	return len(b.pads) - 1
}

// close the game controller with the joystick instance ID. returns the slot
// index or -1 if there is no such controller
func (b *Backend) close(instance sdl.JoystickID) int {
	for i, pad := range b.pads {
		if pad != nil && pad.Joystick().InstanceID() == instance {
			pad.Close()
			b.pads[i] = nil
			return i
		}
	}
	return -1
}

func keyMod(mod uint16) userinput.KeyMod {
	var m userinput.KeyMod
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		m |= userinput.KeyModShift
	}
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		m |= userinput.KeyModCtrl
	}
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		m |= userinput.KeyModAlt
	}
	return m
}

// PollEvents implements the userinput.Backend interface.
func (b *Backend) PollEvents() ([]userinput.Event, error) {
	if !b.owner.IsOwner() {
		return nil, fmt.Errorf("sdl: events polled from the wrong goroutine")
	}

	var evs []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			evs = append(evs, userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			evs = append(evs, userinput.EventKeyboard{
				Key:    sdl.GetScancodeName(ev.Keysym.Scancode),
				Mod:    keyMod(ev.Keysym.Mod),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			})

		case *sdl.TouchFingerEvent:
			// finger positions are normalised to the window size
			w, h := b.Size()
			tev := userinput.EventTouch{
				ID: int64(ev.FingerID),
				X:  float64(ev.X) * float64(w),
				Y:  float64(ev.Y) * float64(h),
			}
			switch ev.Type {
			case sdl.FINGERDOWN:
				tev.Phase = userinput.TouchStart
			case sdl.FINGERMOTION:
				tev.Phase = userinput.TouchMove
			case sdl.FINGERUP:
				tev.Phase = userinput.TouchEnd
			}
			evs = append(evs, tev)

		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// the Which field is the device index for added controllers
				if slot := b.open(int(ev.Which)); slot >= 0 {
					evs = append(evs, userinput.EventGamepadDevice{
						Index:     slot,
						ID:        b.pads[slot].Name(),
						Connected: true,
					})
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				if slot := b.close(ev.Which); slot >= 0 {
					evs = append(evs, userinput.EventGamepadDevice{
						Index: slot,
					})
				}
			}

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				evs = append(evs, userinput.EventResize{
					Width:  int(ev.Data1),
					Height: int(ev.Data2),
				})
			}
		}
	}

	return evs, nil
}

// axis values from SDL are in the range -32768 to 32767
func axisValue(v int16) float64 {
	f := float64(v) / 32767.0
	if f < -1 {
		return -1
	}
	return f
}

// ListDevices implements the gamepad.Devices interface.
func (b *Backend) ListDevices() []gamepad.State {
	var list []gamepad.State
	for i, pad := range b.pads {
		if pad == nil {
			continue
		}

		st := gamepad.State{
			ID:        pad.Name(),
			Index:     i,
			Connected: pad.Attached(),
			Buttons:   make([]gamepad.Button, sdl.CONTROLLER_BUTTON_MAX),
			Axes:      make([]float64, sdl.CONTROLLER_AXIS_MAX),
		}

		for btn := range st.Buttons {
			if pad.Button(sdl.GameControllerButton(btn)) != 0 {
				st.Buttons[btn] = gamepad.Button{Pressed: true, Value: 1.0}
			}
		}

		for ax := range st.Axes {
			st.Axes[ax] = axisValue(pad.Axis(sdl.GameControllerAxis(ax)))
		}

		list = append(list, st)
	}
	return list
}

// Rumble implements the gamepad.Rumbler interface.
func (b *Backend) Rumble(index int, strength float64, duration time.Duration) error {
	if index < 0 || index >= len(b.pads) || b.pads[index] == nil {
		return fmt.Errorf("sdl: no gamepad at index %d", index)
	}

	strength = max(0, min(1, strength))
	v := uint16(strength * 0xffff)
	if err := b.pads[index].Rumble(v, v, uint32(duration.Milliseconds())); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}
