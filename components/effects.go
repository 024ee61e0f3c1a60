package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks an active screen shake on the camera.
type ScreenShakeData struct {
	Intensity  float64 // max offset in pixels
	DurationMs float64
	ElapsedMs  float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// SquashStretchData tracks sprite scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY float64 // current scale
	LerpSpeed      float64 // how fast to return to normal
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
