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
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/gosimp/topopt/InputParameters"
	"github.com/gosimp/topopt/fea"
	"github.com/gosimp/topopt/simp"
	"github.com/gosimp/topopt/solver"
)

// optimizeCmd represents the optimize command
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run the SIMP optimization loop for a problem described in a YAML file",
	Long: `
Runs the full optimization: equilibrium solve, sensitivity analysis,
density filtering and optimality-criteria updates until the design
change drops below the tolerance.

topopt optimize -I problem.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("optimize called")
		paramFile, err := cmd.Flags().GetString("inputParametersFile")
		if err != nil {
			panic(err)
		}
		prof, _ := cmd.Flags().GetBool("profile")
		if prof {
			defer profile.Start().Stop()
		}
		ip := processInput(paramFile)
		runOptimization(ip)
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file with the problem parameters")
	optimizeCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func processInput(paramFile string) (ip *InputParameters.InputParametersTopOpt) {
	if len(paramFile) == 0 {
		fmt.Printf("error: must supply an input parameters file (-I, --inputParametersFile)\n")
		exampleFile := `
########################################
Title: "Cantilever"
NumElementsX: 60
NumElementsY: 20
VolumeFraction: 0.5
Penalization: 3.0
FilterRadius: 1.5
MoveLimit: 0.2
MaxIterations: 200
Tolerance: 0.01
Solver: cholesky
########################################
`
		fmt.Printf("example parameters file:%s", exampleFile)
		os.Exit(1)
	}
	data, err := ioutil.ReadFile(paramFile)
	if err != nil {
		fmt.Printf("error reading input parameters file: %s\n", err)
		os.Exit(1)
	}
	ip = &InputParameters.InputParametersTopOpt{}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error parsing input parameters file: %s\n", err)
		os.Exit(1)
	}
	if err = ip.Validate(); err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	ip.Print()
	return
}

func newOptimizer(ip *InputParameters.InputParametersTopOpt) (o *simp.Optimizer, err error) {
	problem, err := fea.NewProblem(ip.NumElementsX, ip.NumElementsY)
	if err != nil {
		return
	}
	var s solver.Solver
	switch ip.Solver {
	case "cg":
		s = solver.NewCG()
	default:
		s = solver.NewCholesky()
	}
	o, err = simp.New(problem, s, ip.VolumeFraction, ip.Penalization, ip.FilterRadius, ip.MoveLimit)
	if err != nil {
		return
	}
	if len(ip.DensityFile) != 0 {
		o.LoadDensities(ip.DensityFile)
	}
	return
}

func runOptimization(ip *InputParameters.InputParametersTopOpt) {
	o, err := newOptimizer(ip)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	maxIter := ip.MaxIterations
	if maxIter <= 0 {
		maxIter = 200
	}
	tol := ip.Tolerance
	if tol <= 0 {
		tol = 0.01
	}
	res, err := o.Run(maxIter, tol)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("final compliance = %10.4f, volume = %6.4f\n", res.Compliance, res.Volume)
}
