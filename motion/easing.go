package motion

import "math"

// Easing functions map linear progress in [0,1] to shaped progress
// All are exact at the endpoints so final frames land on target values

// Linear applies no shaping
func Linear(t float64) float64 {
	return t
}

// QuartOut starts fast and brakes hard, used by the stat counters
func QuartOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u
}

// CubicOut decelerates into place, used by reveals and fades
func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// CubicInOut accelerates then brakes, used by smooth scrolling
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// pulseWave rises to 1 at the midpoint and returns exactly to 0
func pulseWave(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	return math.Sin(math.Pi * t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
