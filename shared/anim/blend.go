package anim

import "github.com/tanema/gween/ease"

// Blend linearly interpolates every field of a transform. t is expected to
// be clamped by the caller.
func Blend(from, to Transform, t float64) Transform {
	return Transform{
		X:        from.X + (to.X-from.X)*t,
		Y:        from.Y + (to.Y-from.Y)*t,
		Rotation: from.Rotation + (to.Rotation-from.Rotation)*t,
	}
}

// ProgressBetween maps value onto the [from, to] keyframe interval, capped at
// 1. A degenerate interval yields 0.
func ProgressBetween(from, to int, value float64) float64 {
	if to == from {
		return 0
	}
	t := (value - float64(from)) / float64(to-from)
	if t > 1 {
		return 1
	}
	return t
}

var easings = map[string]ease.TweenFunc{
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBack":    ease.OutBack,
	"outBounce":  ease.OutBounce,
}

// KnownEase reports whether name is a supported easing curve.
func KnownEase(name string) bool {
	if name == "" || name == "linear" {
		return true
	}
	_, ok := easings[name]
	return ok
}

// Ease reshapes a blend factor with the named curve. Linear (or unknown)
// curves return t untouched; curve endpoints are always exact.
func Ease(name string, t float64) float64 {
	fn, ok := easings[name]
	if !ok {
		return t
	}
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return float64(fn(float32(t), 0, 1, 1))
}
