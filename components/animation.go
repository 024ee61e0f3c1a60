package components

import (
	"github.com/automoto/skyhop/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentKey       string
	Animations       map[string]*animations.Animation
}

// SetAnimation switches clips, restarting the new one. Unknown keys clear
// the current clip.
func (a *AnimationData) SetAnimation(key string) {
	if a.CurrentKey == key && (a.CurrentAnimation != nil || a.Animations[key] == nil) {
		return
	}

	a.CurrentKey = key
	anim, ok := a.Animations[key]
	if !ok {
		a.CurrentAnimation = nil
		return
	}
	if a.CurrentAnimation != anim {
		a.CurrentAnimation = anim
		a.CurrentAnimation.Restart()
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
