// Package input handles SDL2 input events and per-frame key state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
}

// Input polls SDL events once per frame and tracks which keys are held
// down across frames. Continuous controls (camera movement, parameter
// ramps) read held state, one-shot controls (toggles) read hit state.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
	hit    map[sdl.Scancode]bool

	mouseDX int
	mouseDY int
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
		hit:    make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and refreshes key/mouse state for this frame.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	for k := range i.hit {
		delete(i.hit, k)
	}
	i.mouseDX = 0
	i.mouseDY = 0

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if e.Repeat == 0 {
					i.hit[e.Keysym.Scancode] = true
				}
				i.held[e.Keysym.Scancode] = true
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				delete(i.held, e.Keysym.Scancode)
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += int(e.XRel)
			i.mouseDY += int(e.YRel)
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// KeyHeld reports whether the key is currently held down.
func (i *Input) KeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// KeyHit reports whether the key went down this frame, ignoring repeats.
func (i *Input) KeyHit(scancode sdl.Scancode) bool {
	return i.hit[scancode]
}

// MouseDelta returns the accumulated relative mouse motion this frame.
func (i *Input) MouseDelta() (dx, dy int) {
	return i.mouseDX, i.mouseDY
}
