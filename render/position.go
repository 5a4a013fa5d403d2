package render

import (
	"strconv"
	"strings"
)

// Anchor is a crop anchor as fractions of the free space on each axis:
// 0 aligns the image's left/top edge, 1 its right/bottom edge.
type Anchor struct {
	X, Y float64
}

var CenterAnchor = Anchor{X: 0.5, Y: 0.5}

// ParsePosition reads a background-position style token such as
// "center center", "50% 35%", "left top" or "30%". A single value applies to
// the horizontal axis unless it is top or bottom. Unknown tokens yield the
// center anchor and ok=false.
func ParsePosition(token string) (a Anchor, ok bool) {
	fields := strings.Fields(strings.ToLower(token))
	switch len(fields) {
	case 0:
		return CenterAnchor, true
	case 1:
		v, axis, ok := parseComponent(fields[0])
		if !ok {
			return CenterAnchor, false
		}
		a = CenterAnchor
		if axis == axisY {
			a.Y = v
		} else {
			a.X = v
		}
		return a, true
	case 2:
		v1, ax1, ok1 := parseComponent(fields[0])
		v2, ax2, ok2 := parseComponent(fields[1])
		if !ok1 || !ok2 {
			return CenterAnchor, false
		}
		// "top left" is written vertical-first.
		if ax1 == axisY || ax2 == axisX {
			v1, v2 = v2, v1
			ax1, ax2 = ax2, ax1
		}
		if ax1 == axisY || ax2 == axisX {
			return CenterAnchor, false
		}
		return Anchor{X: v1, Y: v2}, true
	default:
		return CenterAnchor, false
	}
}

type axis int

const (
	axisAny axis = iota
	axisX
	axisY
)

func parseComponent(s string) (float64, axis, bool) {
	switch s {
	case "left":
		return 0, axisX, true
	case "right":
		return 1, axisX, true
	case "top":
		return 0, axisY, true
	case "bottom":
		return 1, axisY, true
	case "center":
		return 0.5, axisAny, true
	}
	if pct, found := strings.CutSuffix(s, "%"); found {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, axisAny, false
		}
		return v / 100, axisAny, true
	}
	return 0, axisAny, false
}
