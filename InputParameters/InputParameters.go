package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParametersTopOpt struct {
	Title          string  `yaml:"Title"`
	NumElementsX   int     `yaml:"NumElementsX"`
	NumElementsY   int     `yaml:"NumElementsY"`
	VolumeFraction float64 `yaml:"VolumeFraction"`
	Penalization   float64 `yaml:"Penalization"`
	FilterRadius   float64 `yaml:"FilterRadius"`
	MoveLimit      float64 `yaml:"MoveLimit"`
	MaxIterations  int     `yaml:"MaxIterations"`
	Tolerance      float64 `yaml:"Tolerance"`
	Solver         string  `yaml:"Solver"`      // "cholesky" or "cg"
	DensityFile    string  `yaml:"DensityFile"` // optional initial raw densities
}

func (ip *InputParametersTopOpt) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersTopOpt) Validate() error {
	if ip.NumElementsX < 1 || ip.NumElementsY < 1 {
		return fmt.Errorf("mesh dimensions must be positive, have %dx%d",
			ip.NumElementsX, ip.NumElementsY)
	}
	if ip.VolumeFraction <= 0 || ip.VolumeFraction > 1 {
		return fmt.Errorf("VolumeFraction must be in (0,1], have %v", ip.VolumeFraction)
	}
	if ip.Penalization <= 1 {
		return fmt.Errorf("Penalization must be > 1, have %v", ip.Penalization)
	}
	if ip.FilterRadius < 1 {
		return fmt.Errorf("FilterRadius must be >= 1, have %v", ip.FilterRadius)
	}
	if ip.MoveLimit <= 0 {
		return fmt.Errorf("MoveLimit must be > 0, have %v", ip.MoveLimit)
	}
	switch ip.Solver {
	case "", "cholesky", "cg":
	default:
		return fmt.Errorf("unknown solver %q, want cholesky or cg", ip.Solver)
	}
	return nil
}

func (ip *InputParametersTopOpt) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d]\t\t= Elements\n", ip.NumElementsX, ip.NumElementsY)
	fmt.Printf("%8.5f\t\t= VolumeFraction\n", ip.VolumeFraction)
	fmt.Printf("%8.5f\t\t= Penalization\n", ip.Penalization)
	fmt.Printf("%8.5f\t\t= FilterRadius\n", ip.FilterRadius)
	fmt.Printf("%8.5f\t\t= MoveLimit\n", ip.MoveLimit)
	fmt.Printf("[%d]\t\t\t= MaxIterations\n", ip.MaxIterations)
	fmt.Printf("%8.6f\t\t= Tolerance\n", ip.Tolerance)
	fmt.Printf("[%s]\t\t\t= Solver\n", ip.Solver)
	if len(ip.DensityFile) != 0 {
		fmt.Printf("[%s]\t\t= DensityFile\n", ip.DensityFile)
	}
}
