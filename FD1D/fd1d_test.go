package FD1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofd/diagmap"
)

func TestPoints(t *testing.T) {
	assert.Equal(t, []int{0, 1, -1, 2, -2}, Centered.Points(3))
	assert.Equal(t, []int{0, 1, 2, 3}, Forward.Points(2))
	assert.Equal(t, []int{0, -1, -2, -3}, Backward.Points(2))
	// Enough points for a single step stencil
	assert.Equal(t, []int{0, 1, -1}, Centered.Points(1))
	for name, want := range map[string]Method{"cen": Centered, "forward": Forward, "bac": Backward, "Backward": Backward} {
		m, err := ParseMethod(name)
		require.NoError(t, err)
		assert.Equal(t, want, m)
	}
	_, err := ParseMethod("sideways")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestGenerateWeights(t *testing.T) {
	// Centered points {0, 1, -1}
	C := GenerateWeights(2, 2, []int{0, 1, -1})
	assert.InDeltaSlice(t, []float64{0, 0.5, -0.5}, []float64{C[2][0][1], C[2][1][1], C[2][2][1]}, 1.e-14)
	assert.InDeltaSlice(t, []float64{-2, 1, 1}, []float64{C[2][0][2], C[2][1][2], C[2][2][2]}, 1.e-14)
	// Interpolation weights of the one point stencil
	assert.Equal(t, 1., C[0][0][0])
	assert.Panics(t, func() { GenerateWeights(1, 3, []int{0, 1}) })
}

func TestSelectWeights(t *testing.T) {
	{
		w, p, err := SelectWeights([]float64{0, 0, 1}, Backward, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{0, -1, -2}, p)
		assert.InDeltaSlice(t, []float64{1, -1, 0}, w[1], 1.e-14)
		assert.InDeltaSlice(t, []float64{0, 0, 0}, w[0], 1.e-14)
	}
	{
		w, p, err := SelectWeights([]float64{0, 0, 0, 1}, Forward, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, p)
		assert.InDeltaSlice(t, []float64{35. / 12, -26. / 3, 19. / 2, -14. / 3, 11. / 12, 0}, w[2], 1.e-12)
	}
	{
		_, _, err := SelectWeights([]float64{0, 0, 1}, Centered, 0)
		assert.ErrorIs(t, err, ErrAccuracy)
		_, _, err = SelectWeights([]float64{1}, Centered, 1)
		assert.ErrorIs(t, err, ErrDegenerateEquation)
	}
}

func TestBuildStencil(t *testing.T) {
	var (
		h = 0.1
	)
	// First derivative, centered, accuracy 2: {1: 1/(2h), -1: -1/(2h)}
	{
		w, p, err := SelectWeights([]float64{0, 0, 1}, Centered, 2)
		require.NoError(t, err)
		s, err := BuildStencil(w, p, "h", h, SpaceLabel(0))
		require.NoError(t, err)
		want := diagmap.FromFloats(map[int]float64{1: 1 / (2 * h), -1: -1 / (2 * h)})
		assert.True(t, s.Map.EqualWithin(want, 1.e-12), s.Map.String())
		assert.Equal(t, 1, s.MaxKey)
		assert.Equal(t, "(0.5*U(i+1,j)-0.5*U(i-1,j))/h^1", s.Expression.String())
		assert.False(t, s.Symbolic.IsNumeric())
	}
	// Second derivative, centered, accuracy 2: {0: -2/h^2, 1: 1/h^2, -1: 1/h^2}
	{
		w, p, err := SelectWeights([]float64{0, 0, 0, 1}, Centered, 2)
		require.NoError(t, err)
		s, err := BuildStencil(w, p, "h", h, SpaceLabel(1))
		require.NoError(t, err)
		want := diagmap.FromFloats(map[int]float64{0: -2 / (h * h), 1: 1 / (h * h), -1: 1 / (h * h)})
		assert.True(t, s.Map.EqualWithin(want, 1.e-12), s.Map.String())
		assert.Equal(t, "(-2*U(i,j+1)+U(i+1,j+1)+U(i-1,j+1))/h^2", s.Expression.String())
	}
	// Mixed orders: 2*U + Ux + 3*Uxx
	{
		w, p, err := SelectWeights([]float64{0, 2, 1, 3}, Centered, 2)
		require.NoError(t, err)
		s, err := BuildStencil(w, p, "dx", h, SpaceLabel(0))
		require.NoError(t, err)
		want := diagmap.FromFloats(map[int]float64{0: -598, 1: 305, -1: 295})
		assert.True(t, s.Map.Round(0).Equal(want), s.Map.String())
	}
	{
		w, p, err := SelectWeights([]float64{0, 0, 0, 0, 0, 1}, Centered, 4)
		require.NoError(t, err)
		s, err := BuildStencil(w, p, "dx", h, SpaceLabel(0))
		require.NoError(t, err)
		want := diagmap.FromFloats(map[int]float64{0: 93333, 1: -65000, -1: -65000,
			2: 20000, -2: 20000, 3: -1667, -3: -1667})
		assert.True(t, s.Map.Round(0).Equal(want), s.Map.String())
	}
	{
		w, p, err := SelectWeights([]float64{0, 0, 0, 1}, Forward, 3)
		require.NoError(t, err)
		s, err := BuildStencil(w, p, "dx", h, SpaceLabel(0))
		require.NoError(t, err)
		want := diagmap.FromFloats(map[int]float64{0: 292, 1: -867, 2: 950, 3: -467, 4: 92})
		assert.True(t, s.Map.Round(0).Equal(want), s.Map.String())
	}
}

func TestEquation(t *testing.T) {
	cases := []struct {
		eq  Equation
		str string
	}{
		{Equation{[]float64{1, -1, 0, 4, 5, 0, 10}, []float64{2, 0, -1}}, "Equation: +10Uxxxxx +5Uxxx +4Uxx -1U -1 = -1Ut"},
		{Equation{[]float64{2, 3, 10}, []float64{2, 3, 1}}, "Equation: +10Ux = +1Ut"},
		{Equation{[]float64{5, 0, 0, 0, 0, 1}, []float64{2, 3}}, "Equation: +1Uxxxx -3U +3 = 0"},
		{Equation{[]float64{0, 0, 0.5}, []float64{0, 0, 1}}, "Equation: +0.5Ux = +1Ut"},
	}
	for _, c := range cases {
		assert.Equal(t, c.str, c.eq.String())
	}
	{
		_, err := NewEquation([]float64{0, 0, 1}, []float64{0, 1, 0})
		assert.ErrorIs(t, err, ErrDegenerateEquation)
		_, err = NewEquation([]float64{0, 0, 0}, []float64{0, 0, 1})
		assert.ErrorIs(t, err, ErrDegenerateEquation)
		_, err = NewEquation([]float64{0}, []float64{0, 0, 1})
		assert.ErrorIs(t, err, ErrDegenerateEquation)
		eq, err := NewEquation([]float64{3, 0, 1}, []float64{1, 0, 1})
		require.NoError(t, err)
		assert.Equal(t, 2., eq.Source())
		assert.Equal(t, 1, eq.SpaceOrder())
		assert.Equal(t, 1, eq.TimeOrder())
	}
}

func TestDiscretize(t *testing.T) {
	// Ux = Ut, centered in space, forward in time
	{
		d, err := Discretize(Equation{[]float64{0, 0, 1}, []float64{0, 0, 1}}, Options{
			MethodX: Centered, MethodT: Forward,
			AccuracyX: 2, AccuracyT: 1,
			Dx: 0.1, Dt: 0.1,
			Scheme: diagmap.Implicit,
		})
		require.NoError(t, err)
		assert.True(t, d.Space.Map.EqualWithin(diagmap.FromFloats(map[int]float64{1: 5, -1: -5}), 1.e-12))
		assert.True(t, d.Time.Map.EqualWithin(diagmap.FromFloats(map[int]float64{0: -10, 1: 10}), 1.e-12))
	}
	// -Ux = Ut, backward in space, forward in time
	{
		d, err := Discretize(Equation{[]float64{0, 0, -1}, []float64{0, 0, 1}}, Options{
			MethodX: Backward, MethodT: Forward,
			AccuracyX: 1, AccuracyT: 1,
			Dx: 0.2, Dt: 0.2,
			Scheme: diagmap.Implicit,
		})
		require.NoError(t, err)
		assert.True(t, d.Space.Map.EqualWithin(diagmap.FromFloats(map[int]float64{0: -5, -1: 5}), 1.e-12))
		assert.True(t, d.Time.Map.EqualWithin(diagmap.FromFloats(map[int]float64{0: -5, 1: 5}), 1.e-12))
		assert.True(t, d.Interior.EqualWithin(diagmap.FromFloats(map[int]float64{0: 10, -1: -5}), 1.e-12))
		assert.True(t, d.RHST.EqualWithin(diagmap.FromFloats(map[int]float64{0: 5}), 1.e-12))
		assert.True(t, d.Boundary.EqualWithin(diagmap.FromFloats(map[int]float64{-1: 5}), 1.e-12))
		assert.Equal(t, 1, d.NewLevel)
		assert.Equal(t, "(-1*U(i,j+1)+U(i-1,j+1))/dx^1", d.Space.Expression.String())
		assert.Equal(t, "(-1*U(i,j)+U(i,j+1))/dt^1", d.Time.Expression.String())
		assert.Contains(t, d.Approximation(), "Left hand side: (-1*U(i,j+1)+U(i-1,j+1))/dx^1")
		assert.Contains(t, d.Approximation(), "Step sizes: dx = 0.2, dt = 0.2\n")
	}
	// Explicit space labels stay on the current level
	{
		d, err := Discretize(Equation{[]float64{0, 0, -1}, []float64{0, 0, 1}}, Options{
			MethodX: Backward, MethodT: Forward,
			AccuracyX: 1, AccuracyT: 1,
			Dx: 0.2, Dt: 0.2,
			Scheme: diagmap.Explicit,
		})
		require.NoError(t, err)
		assert.Equal(t, "(-1*U(i,j)+U(i-1,j))/dx^1", d.Space.Expression.String())
		require.NotNil(t, d.RHSX)
		assert.True(t, d.Interior.EqualWithin(diagmap.FromFloats(map[int]float64{0: 5}), 1.e-12))
	}
	{
		_, err := Discretize(Equation{[]float64{0, 0, 1}, []float64{0, 1}}, Options{
			AccuracyX: 1, AccuracyT: 1, Dx: 0.1, Dt: 0.1,
		})
		assert.ErrorIs(t, err, diagmap.ErrSteadyResidual)
	}
}
