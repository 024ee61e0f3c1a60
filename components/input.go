package components

import (
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions plus the analog move axis.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Axis     float64
}

func (i *InputData) Pressed(action cfg.ActionID) bool {
	return i.Current[action]
}

func (i *InputData) JustPressed(action cfg.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
