// Package gamemath holds the small velocity helpers the physics step uses.
package gamemath

// ApplyFriction reduces speed toward zero by friction amount without
// crossing it.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RelativeVelocity splits a velocity measured in world space into the part
// owned by the body when it stands on something moving at base.
func RelativeVelocity(vel, base float64) float64 {
	return vel - base
}
