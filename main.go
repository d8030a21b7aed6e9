package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/go-cdcl/solver/parsers"
	"github.com/go-cdcl/solver/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagProof = flag.String(
	"proof",
	"",
	"record the resolution-chain proof and dump it to this file on UNSAT",
)

var flagModels = flag.String(
	"models",
	"",
	"cross-check the solved instance's model against a .cnf.models fixture",
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"treat the instance file as gzip-compressed",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		proofFile:    *flagProof,
		modelsFile:   *flagModels,
		gzipped:      *flagGzip,
	}, nil
}

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	proofFile    string
	modelsFile   string
	gzipped      bool
}

func run(cfg *config) error {
	opts := sat.DefaultOptions
	opts.EnableProof = cfg.proofFile != ""

	s := sat.NewSolver(opts)
	if err := parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped, s); err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumConstraints())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.TotalConflicts, float64(s.TotalConflicts)/elapsed.Seconds())
	fmt.Printf("c restarts:   %d (mean LBD %.2f)\n", s.TotalRestarts, s.MeanLBD())
	fmt.Printf("c status:     %s\n", status.String())

	if cfg.proofFile != "" && status == sat.StatusUnsat {
		if err := dumpProof(cfg.proofFile, s); err != nil {
			return fmt.Errorf("could not write proof: %s", err)
		}
	}

	if cfg.modelsFile != "" && status == sat.StatusSat {
		if err := checkModels(cfg.modelsFile, s); err != nil {
			return fmt.Errorf("model check failed: %s", err)
		}
		fmt.Println("c models:     match")
	}

	return nil
}

// dumpProof verifies the recorded resolution chain and writes every
// derived clause to path, one DIMACS-style line per step.
func dumpProof(path string, s *sat.Solver) error {
	if err := s.VerifyProof(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, derived := range s.ProofSteps() {
		for _, l := range derived {
			if l.IsPositive() {
				fmt.Fprintf(f, "%d ", l.Var())
			} else {
				fmt.Fprintf(f, "-%d ", l.Var())
			}
		}
		fmt.Fprintln(f, "0")
	}
	return nil
}

// checkModels cross-checks the solver's current trail against every model
// listed in the fixture at path, succeeding if at least one of them is
// satisfied by the trail.
func checkModels(path string, s *sat.Solver) error {
	models, err := parsers.ReadModels(path)
	if err != nil {
		return err
	}

	for _, model := range models {
		if modelMatchesTrail(model, s) {
			return nil
		}
	}
	return fmt.Errorf("none of the %d recorded models match the found assignment", len(models))
}

func modelMatchesTrail(model []bool, s *sat.Solver) bool {
	for i, want := range model {
		v := sat.Variable(i + 1)
		got := s.VarValue(v)
		if want && got != sat.True {
			return false
		}
		if !want && got != sat.False {
			return false
		}
	}
	return true
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
