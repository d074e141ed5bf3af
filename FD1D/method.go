package FD1D

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMethod = errors.New("FD1D: unknown stencil method")

type Method uint8

const (
	Centered Method = iota
	Forward
	Backward
)

func (m Method) String() string {
	switch m {
	case Centered:
		return "centered"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

func ParseMethod(name string) (m Method, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "centered", "central", "center", "cen":
		m = Centered
	case "forward", "for":
		m = Forward
	case "backward", "bac", "back":
		m = Backward
	default:
		err = fmt.Errorf("%w: %q, use forward, backward or centered", ErrUnknownMethod, name)
	}
	return
}

/*
Points returns the candidate stencil offsets for the given (inflated) accuracy.
Centered alternates around zero: 0, 1, -1, 2, -2, ... up to accuracy-1.
Forward runs 0, 1, ..., 2*accuracy-1 and Backward its mirror image.
Only the leading accuracy+1 entries ever carry weights.
*/
func (m Method) Points(accuracy int) (points []int) {
	points = []int{0}
	switch m {
	case Centered:
		for p := 1; p < accuracy || len(points) < accuracy+1; p++ {
			points = append(points, p, -p)
		}
	case Forward:
		for p := 1; p < 2*accuracy; p++ {
			points = append(points, p)
		}
	case Backward:
		for p := 1; p < 2*accuracy; p++ {
			points = append(points, -p)
		}
	}
	return
}
