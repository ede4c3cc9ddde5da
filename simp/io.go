package simp

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadDensities replaces the raw design field with a flat list of
// floating-point values read from path, sized exactly to the mesh.
// Any read or size failure is non-fatal: it is logged and the current
// field is left untouched. Returns whether the field was replaced.
func (o *Optimizer) LoadDensities(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("unable to read density file %s: %s\n", path, err)
		return false
	}
	fields := strings.Fields(string(data))
	if len(fields) != o.Problem.NumElements {
		fmt.Printf("density file %s has %d values, mesh has %d elements - ignoring\n",
			path, len(fields), o.Problem.NumElements)
		return false
	}
	parsed := make([]float64, len(fields))
	for i, field := range fields {
		val, perr := strconv.ParseFloat(field, 64)
		if perr != nil {
			fmt.Printf("density file %s has a bad value at position %d: %s\n", path, i, perr)
			return false
		}
		parsed[i] = val
	}
	copy(o.DesignVars, parsed)
	o.pin(o.DesignVars)
	return true
}
