/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofd/InputParameters"
	"github.com/notargets/gofd/model_problems/FDProblem1D"
	"github.com/notargets/gofd/post_processing"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional finite difference solution of a linear PDE",
	Long: `
Reads a problem description, discretizes the equation and marches it in time,

gofd 1D -I problem.yaml [--graph] [--delay ms] [--png solution.png]`,
	Run: func(cmd *cobra.Command, args []string) {
		m1d := &Model1D{}
		m1d.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dr) * time.Millisecond
		m1d.PNGFile, _ = cmd.Flags().GetString("png")
		if err := Run1D(m1d); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the equation, mesh, boundary and initial conditions")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph of the solution history")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().String("png", "", "write the first and last levels to a PNG file")
}

type Model1D struct {
	ICFile  string
	PNGFile string
	Graph   bool
	Delay   time.Duration
}

const exampleFile = `
########################################
Title: "Advection"
Domain: [0, 1]
Interval: [0, 0.2]
Dx: 0.2
Dt: 0.2
Space: [0, 0, -1]   # constant, U, Ux, Uxx, ...
Time: [0, 0, 1]     # constant, U, Ut, Utt, ...
Scheme: implicit    # or explicit
MethodX: backward   # forward, backward or centered
MethodT: forward
AccuracyX: 1
AccuracyT: 1
Boundary:
  - Constant: 0
  - Constant: 0
    Coeffs: [1]     # U(edge) = Constant + Coeffs[0]*U(nearest interior) + ...
Initial:
  - Value: 1        # or Values: [...] or Value + Weights: {level: weight}
########################################
`

var errNoInput = errors.New("must supply an input parameters file (-I, --inputConditionsFile)")

// readProblem builds the problem from the input file, filling unset values
// from the global configuration
func readProblem(icFile string) (p *FDProblem1D.FDProblem, err error) {
	var (
		data []byte
		ip   = &InputParameters.InputParameters1D{}
	)
	if len(icFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleFile)
		return nil, errNoInput
	}
	if data, err = os.ReadFile(icFile); err != nil {
		return
	}
	if err = ip.Parse(data); err != nil {
		return
	}
	if ip.AccuracyX == 0 {
		ip.AccuracyX = viper.GetInt("accuracyX")
	}
	if ip.AccuracyT == 0 {
		ip.AccuracyT = viper.GetInt("accuracyT")
	}
	if ip.LogFrequency == 0 {
		ip.LogFrequency = viper.GetInt("logFrequency")
	}
	ip.Verbose = ip.Verbose || viper.GetBool("verbose")
	if ip.Verbose {
		ip.Print()
	}
	return ip.NewProblem()
}

func Run1D(m1d *Model1D) (err error) {
	var (
		p *FDProblem1D.FDProblem
	)
	if p, err = readProblem(m1d.ICFile); err != nil {
		return
	}
	if _, err = p.ForwardInTime(); err != nil {
		fmt.Print(p.Info())
		return
	}
	full, err := p.FullDomain(p.Solution[len(p.Solution)-1])
	if err != nil {
		return
	}
	fmt.Printf("Final time = %8.4f\n", p.Interval[1])
	for i, x := range p.Grid() {
		fmt.Printf("%8.4f %12.6f\n", x, full[i])
	}
	if m1d.PNGFile != "" {
		if err = post_processing.SavePNG(p, m1d.PNGFile, post_processing.PlotOptions{Title: p.String()}); err != nil {
			return
		}
	}
	if m1d.Graph {
		err = post_processing.LiveChart(p, nil, m1d.Delay)
	}
	return
}
