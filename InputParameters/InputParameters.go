package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gofd/FD1D"
	"github.com/notargets/gofd/model_problems/FDProblem1D"
)

type BoundaryParameters struct {
	Constant float64   `json:"Constant"`
	Coeffs   []float64 `json:"Coeffs,omitempty"` // interior points counted from the nearest edge
}

// InitialParameters sets one time level: Values for a full array, Weights for
// an affine combination of the other levels, Value alone for a constant
type InitialParameters struct {
	Value   float64         `json:"Value"`
	Values  []float64       `json:"Values,omitempty"`
	Weights map[int]float64 `json:"Weights,omitempty"`
}

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title        string               `json:"Title"`
	Domain       [2]float64           `json:"Domain"`
	Interval     [2]float64           `json:"Interval"`
	Dx           float64              `json:"Dx"`
	Dt           float64              `json:"Dt"`
	Space        []float64            `json:"Space"` // constant, U, Ux, Uxx, ...
	Time         []float64            `json:"Time"`  // constant, U, Ut, Utt, ...
	Scheme       string               `json:"Scheme"`
	MethodX      string               `json:"MethodX"`
	MethodT      string               `json:"MethodT"`
	AccuracyX    int                  `json:"AccuracyX"`
	AccuracyT    int                  `json:"AccuracyT"`
	Boundary     []BoundaryParameters `json:"Boundary"`
	BoundaryMap  []int                `json:"BoundaryMap,omitempty"`
	Initial      []InitialParameters  `json:"Initial"`
	LogFrequency int                  `json:"LogFrequency"`
	Verbose      bool                 `json:"Verbose"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%g, %g]\t\t= Domain\n", ip.Domain[0], ip.Domain[1])
	fmt.Printf("[%g, %g]\t\t= Interval\n", ip.Interval[0], ip.Interval[1])
	fmt.Printf("%8.5f\t\t= Dx\n", ip.Dx)
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("%v\t\t= Space Coefficients\n", ip.Space)
	fmt.Printf("%v\t\t= Time Coefficients\n", ip.Time)
	fmt.Printf("[%s]\t\t= Scheme\n", ip.Scheme)
	fmt.Printf("[%s, %d]\t\t= Space Method, Accuracy\n", ip.MethodX, ip.AccuracyX)
	fmt.Printf("[%s, %d]\t\t= Time Method, Accuracy\n", ip.MethodT, ip.AccuracyT)
	for i, bc := range ip.Boundary {
		fmt.Printf("BCs[%d] = %g %v\n", i, bc.Constant, bc.Coeffs)
	}
	if len(ip.BoundaryMap) != 0 {
		fmt.Printf("%v\t\t= Boundary Map\n", ip.BoundaryMap)
	}
	for i, ic := range ip.Initial {
		keys := make([]int, 0, len(ic.Weights))
		for k := range ic.Weights {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		fmt.Printf("ICs[%d] = %g values[%d] weights%v\n", i, ic.Value, len(ic.Values), keys)
	}
}

func (ip *InputParameters1D) Config() (cfg FDProblem1D.Config) {
	cfg = FDProblem1D.Config{
		Domain:       ip.Domain,
		Interval:     ip.Interval,
		Dx:           ip.Dx,
		Dt:           ip.Dt,
		Equation:     FD1D.Equation{Space: ip.Space, Time: ip.Time},
		Scheme:       ip.Scheme,
		MethodX:      ip.MethodX,
		MethodT:      ip.MethodT,
		AccuracyX:    ip.AccuracyX,
		AccuracyT:    ip.AccuracyT,
		BoundaryMap:  ip.BoundaryMap,
		LogFrequency: ip.LogFrequency,
		Verbose:      ip.Verbose,
	}
	for _, bc := range ip.Boundary {
		cfg.Boundary = append(cfg.Boundary, FDProblem1D.BoundaryCondition{Constant: bc.Constant, Coeffs: bc.Coeffs})
	}
	for _, ic := range ip.Initial {
		switch {
		case len(ic.Values) != 0:
			cfg.Initial = append(cfg.Initial, FDProblem1D.InitialArray(ic.Values))
		case len(ic.Weights) != 0:
			cfg.Initial = append(cfg.Initial, FDProblem1D.InitialAffine(ic.Value, ic.Weights))
		default:
			cfg.Initial = append(cfg.Initial, FDProblem1D.InitialConstant(ic.Value))
		}
	}
	return
}

func (ip *InputParameters1D) NewProblem() (*FDProblem1D.FDProblem, error) {
	return FDProblem1D.NewFDProblem(ip.Config())
}
