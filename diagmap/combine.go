package diagmap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownScheme  = errors.New("diagmap: unknown discretization scheme")
	ErrSteadyResidual = errors.New("diagmap: time stencil has no unknown level")
)

type Scheme uint8

const (
	Implicit Scheme = iota
	Explicit
)

func (s Scheme) String() string {
	switch s {
	case Implicit:
		return "implicit"
	case Explicit:
		return "explicit"
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

func ParseScheme(name string) (s Scheme, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "implicit", "imp":
		s = Implicit
	case "explicit", "exp":
		s = Explicit
	default:
		err = fmt.Errorf("%w: %q, use implicit or explicit", ErrUnknownScheme, name)
	}
	return
}

/*
Combination is the split of a space stencil and a time stencil once every
unknown is moved to the time side:

	Interior * U(new) = RHST applied to the known levels + RHSX applied to the
	                    previous level (explicit only) + boundary contributions

Interior and Boundary are keyed by grid offset, RHST by time level.
*/
type Combination struct {
	Interior DiagonalMap
	RHSX     *DiagonalMap // nil for the implicit scheme
	RHST     DiagonalMap
	Boundary DiagonalMap
	NewLevel int // time key of the unknown level
}

func Combine(space, time DiagonalMap, scheme Scheme) (c Combination, err error) {
	var (
		kmax, _ = time.MaxKey()
	)
	if time.Len() < 2 {
		err = fmt.Errorf("%w: time stencil %s", ErrSteadyResidual, time)
		return
	}
	newLevel := time.entries[kmax]
	c.NewLevel = kmax
	c.RHST = time.Without(kmax).Scale(-1)
	c.Boundary = space.Without(0).Clean()
	switch scheme {
	case Implicit:
		c.Interior = New(nil)
		c.Interior.entries[0] = newLevel
		c.Interior = c.Interior.Sub(space).Clean()
	case Explicit:
		c.Interior = New(nil)
		c.Interior.entries[0] = newLevel
		rhsX := New(space.entries)
		c.RHSX = &rhsX
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}
	return
}
