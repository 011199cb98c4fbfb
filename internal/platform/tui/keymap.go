package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"left":   core.ActionLeft,
		"a":      core.ActionLeft,
		"right":  core.ActionRight,
		"d":      core.ActionRight,
		"down":   core.ActionDown,
		"s":      core.ActionDown,
		"up":     core.ActionRotate,
		"w":      core.ActionRotate,
		"z":      core.ActionRotate,
		" ":      core.ActionConfirm,
		"enter":  core.ActionConfirm,
		"p":      core.ActionPause,
		"esc":    core.ActionPause,
		"r":      core.ActionRestart,
		"m":      core.ActionMute,
		"q":      core.ActionQuit,
		"ctrl+c": core.ActionQuit,
	}}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
