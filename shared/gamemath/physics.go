package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
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
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// InReach reports whether a target at (tx, ty) is in front of an attacker at
// (ax, ay) facing dir (-1 or 1), within reach horizontally and height
// vertically.
func InReach(ax, ay float64, dir int, tx, ty, reach, height float64) bool {
	dx := (tx - ax) * float64(dir)
	if dx < 0 || dx > reach {
		return false
	}
	return math.Abs(ty-ay) <= height
}
