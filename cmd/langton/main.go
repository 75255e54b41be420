// Command langton runs Langton's Ant on a fixed grid and prints the final
// frame, or checks the scenarios of an HCL scenario file.
package main

import (
	"flag"
	"os"

	"langton/internal/ant"
	"langton/internal/ui/cli"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	defaults = ant.DefaultConfig()

	_ = flag.Int("rows", defaults.Rows, "number of grid rows")
	_ = flag.Int("cols", defaults.Cols, "number of grid columns")
	_ = flag.Int("row", defaults.Row, "initial ant row (zero-indexed)")
	_ = flag.Int("col", defaults.Col, "initial ant column (zero-indexed)")
	_ = flag.String("dir", string(defaults.Facing), "initial ant direction, one of ^ > v <")
	_ = flag.Int("steps", defaults.Steps, "number of steps the ant takes")

	flagScenario = flag.String("scenario", "", "HCL scenario file; when set the grid flags are ignored")
	flagColor    = flag.Bool("color", true, "color the output when writing to a terminal")
)

// antFlags are the flags forwarded to ant.FromMap.
var antFlags = map[string]bool{"rows": true, "cols": true, "row": true, "col": true, "dir": true, "steps": true}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	printer := cli.New(os.Stdout, *flagColor && cli.IsTerminal(os.Stdout))
	if *flagScenario != "" {
		if failed := runScenarios(printer, *flagScenario); failed > 0 {
			klog.Flush()
			os.Exit(1)
		}
		return
	}

	values := map[string]string{}
	flag.Visit(func(f *flag.Flag) {
		if antFlags[f.Name] {
			values[f.Name] = f.Value.String()
		}
	})
	if dir, ok := values["dir"]; ok && len(dir) != 1 {
		klog.Exitf("Invalid --dir=%q: must be one of ^ > v <", dir)
	}
	cfg := ant.FromMap(values)

	frame, err := ant.ComputeFinalGrid(cfg.Rows, cfg.Cols, cfg.Row, cfg.Col, cfg.Facing, cfg.Steps)
	if err != nil {
		if ant.IsInputError(err) {
			klog.Exitf("Invalid input: %v", err)
		}
		klog.Exitf("Simulation failed: %+v", err)
	}
	klog.V(1).Infof("Ran %d steps on a %dx%d grid", cfg.Steps, cfg.Rows, cfg.Cols)
	must.M(printer.PrintFrame(frame))
}

// runScenarios checks every scenario in path and returns how many failed.
func runScenarios(printer *cli.Printer, path string) (failed int) {
	scenarios := must.M1(ant.LoadScenarios(path))
	klog.Infof("Loaded %d scenarios from %q", len(scenarios), path)
	for _, sc := range scenarios {
		must.M(printer.PrintTitle(sc.Name))
		frame, err := sc.Check()
		if frame != nil {
			must.M(printer.PrintFrame(frame))
		}
		if err != nil {
			klog.Errorf("Scenario %q failed: %v", sc.Name, err)
			failed++
		}
	}
	return failed
}
