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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/gofd/InputParameters"
	"github.com/notargets/gofd/post_processing"
)

// convergeCmd represents the converge command
var convergeCmd = &cobra.Command{
	Use:   "converge",
	Short: "Mesh refinement study of a problem",
	Long: `
Runs the problem at dx, dx/2, ... and reports the difference between successive
meshes along with the observed order of accuracy,

gofd converge -I problem.yaml --levels 4 [--csv study.csv]`,
	Run: func(cmd *cobra.Command, args []string) {
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		levels, _ := cmd.Flags().GetInt("levels")
		csvFile, _ := cmd.Flags().GetString("csv")
		if err := RunConvergence(icFile, levels, csvFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convergeCmd)
	convergeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the equation, mesh, boundary and initial conditions")
	convergeCmd.Flags().IntP("levels", "l", 3, "number of meshes, each halving dx")
	convergeCmd.Flags().String("csv", "", "write the study to a CSV file")
}

func RunConvergence(icFile string, levels int, csvFile string) (err error) {
	var (
		data []byte
		ip   = &InputParameters.InputParameters1D{}
		cs   *post_processing.ConvergenceStudy
	)
	if len(icFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleFile)
		return errNoInput
	}
	if data, err = os.ReadFile(icFile); err != nil {
		return
	}
	if err = ip.Parse(data); err != nil {
		return
	}
	for _, ic := range ip.Initial {
		if len(ic.Values) != 0 {
			return fmt.Errorf("initial arrays are tied to one mesh, use constant or affine levels")
		}
	}
	build := func(dx float64) (post_processing.Marched, error) {
		refined := *ip
		refined.Dx = dx
		p, err := refined.NewProblem()
		if err != nil {
			return nil, err
		}
		_, err = p.ForwardInTime()
		return p, err
	}
	if cs, err = post_processing.Refine(ip.Title, build, ip.Dx, levels); err != nil {
		return
	}
	fmt.Print(cs)
	if csvFile == "" {
		return
	}
	f, err := os.Create(csvFile)
	if err != nil {
		return
	}
	defer f.Close()
	return cs.WriteCSV(f)
}
