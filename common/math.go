package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Approach moves cur toward target by at most step.
func Approach(cur, target, step float64) float64 {
	if step <= 0 {
		return cur
	}
	if cur < target {
		return min(cur+step, target)
	}
	return max(cur-step, target)
}

// SmoothStep eases t in [0,1] with zero slope at both ends.
func SmoothStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}
