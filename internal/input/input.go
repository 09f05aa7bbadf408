// Package input provides an action-based input abstraction layer over
// ebiten's keyboard state, and translates it into the sanitized
// systems.Input value the player controller consumes each tick (spec §4.4
// "Inputs are sanitized (opposing directions cancel)").
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/shadowledge/ledgerun/internal/systems"
)

// Action represents a game action that can be triggered by user input.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionFire
	ActionInteract
	ActionQuit
	ActionDebugToggle
	ActionManualScrollUp
	ActionManualScrollDown
)

// Input manages keyboard input with action mappings.
type Input struct {
	keyMap      map[Action][]ebiten.Key
	prevPressed map[ebiten.Key]bool
}

// NewInput creates a new Input manager with default key mappings.
func NewInput() *Input {
	i := &Input{
		keyMap:      make(map[Action][]ebiten.Key),
		prevPressed: make(map[ebiten.Key]bool),
	}

	// Default key mappings
	// Movement: Arrow keys and WASD
	i.keyMap[ActionMoveLeft] = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	i.keyMap[ActionMoveRight] = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	i.keyMap[ActionMoveUp] = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	i.keyMap[ActionMoveDown] = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	i.keyMap[ActionJump] = []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}
	i.keyMap[ActionFire] = []ebiten.Key{ebiten.KeyX, ebiten.KeyControl}
	i.keyMap[ActionInteract] = []ebiten.Key{ebiten.KeyE}
	i.keyMap[ActionQuit] = []ebiten.Key{ebiten.KeyEscape}
	i.keyMap[ActionDebugToggle] = []ebiten.Key{ebiten.KeyF1}
	i.keyMap[ActionManualScrollUp] = []ebiten.Key{ebiten.KeyPageUp}
	i.keyMap[ActionManualScrollDown] = []ebiten.Key{ebiten.KeyPageDown}

	return i
}

// Pressed returns true if any key mapped to the action is currently pressed.
func (i *Input) Pressed(action Action) bool {
	for _, key := range i.keyMap[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed returns true if any key mapped to the action was just pressed this frame.
func (i *Input) JustPressed(action Action) bool {
	for _, key := range i.keyMap[action] {
		if ebiten.IsKeyPressed(key) && !i.prevPressed[key] {
			return true
		}
	}
	return false
}

// Update updates the previous frame's key states.
// This should be called once per frame, after every Pressed/JustPressed
// query for that frame has been made.
func (i *Input) Update() {
	// Clear previous pressed state and update with current state
	for _, keys := range i.keyMap {
		for _, key := range keys {
			i.prevPressed[key] = ebiten.IsKeyPressed(key)
		}
	}
}

// Snapshot sanitizes the current key state into a systems.Input: opposing
// directions cancel here rather than in the controller itself (spec §4.4
// "Inputs are sanitized (opposing directions cancel)").
func (i *Input) Snapshot() systems.Input {
	left, right := i.Pressed(ActionMoveLeft), i.Pressed(ActionMoveRight)
	if left && right {
		left, right = false, false
	}
	up, down := i.Pressed(ActionMoveUp), i.Pressed(ActionMoveDown)
	if up && down {
		up, down = false, false
	}
	return systems.Input{
		Left:            left,
		Right:           right,
		Up:              up,
		Down:            down,
		JumpPressed:     i.JustPressed(ActionJump),
		JumpHeld:        i.Pressed(ActionJump),
		FirePressed:     i.JustPressed(ActionFire),
		FireHeld:        i.Pressed(ActionFire),
		InteractPressed: i.JustPressed(ActionInteract),
	}
}

// ManualScroll reports the held vertical look-ahead override spec §4.7
// describes for the camera's manual scroll bias.
func (i *Input) ManualScroll() (up, down bool) {
	return i.Pressed(ActionManualScrollUp), i.Pressed(ActionManualScrollDown)
}
