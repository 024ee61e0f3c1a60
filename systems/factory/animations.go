package factory

import (
	"fmt"

	"github.com/automoto/skyhop/assets/animations"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
)

// GenerateAnimations creates an AnimationData component based on the
// character key (e.g., "player") which maps to a set of clip definitions in
// config.
func GenerateAnimations(key string) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations: make(map[string]*animations.Animation, len(defs)),
	}
	for name, def := range defs {
		animData.Animations[name] = animations.NewAnimation(def.First, def.Last, def.Step, def.FrameMs, def.Hold)
	}
	return animData
}
