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
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/gosimp/topopt/utils"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run a single equilibrium solve and report the peak deflection",
	Long: `
Solves the equilibrium system once with the current (uniform or loaded)
density field and prints the maximum displacement magnitude - useful to
sanity-check a mesh before optimizing.

topopt solve -I problem.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("solve called")
		paramFile, err := cmd.Flags().GetString("inputParametersFile")
		if err != nil {
			panic(err)
		}
		ip := processInput(paramFile)
		o, err := newOptimizer(ip)
		if err != nil {
			fmt.Printf("error: %s\n", err)
			os.Exit(1)
		}
		if err = o.SolveEquilibrium(); err != nil {
			fmt.Printf("equilibrium solve failed: %s\n", err)
			os.Exit(1)
		}
		u := utils.NewVector(o.Problem.NumDofs, o.Displacements).Copy()
		peak := u.Apply(math.Abs).Max()
		fmt.Printf("num_dofs = %d, peak deflection = %12.6e\n", o.Problem.NumDofs, peak)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file with the problem parameters")
}
