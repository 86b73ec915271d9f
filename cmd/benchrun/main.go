package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// run executes a go subcommand, echoing its combined output.
func run(args ...string) error {
	cmd := exec.Command("go", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err != nil {
		return fmt.Errorf("go %s: %w", args[0], err)
	}
	return nil
}

func exitCode(err error) int {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return 1
}

type perftRun struct {
	label string
	fen   string
	depth string
}

var perftRuns = []perftRun{
	{"Initial", "", "3"},
	{"Initial", "", "4"},
	{"Initial", "", "5"},
	{"Position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", "4"},
	{"Promotions", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", "3"},
}

func main() {
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	if err := run("test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, p := range perftRuns {
		args := []string{"run", "./cmd/perft", "-depth", p.depth, "-label", p.label}
		if p.fen != "" {
			args = append(args, "-fen", p.fen)
		}
		if err := run(args...); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	fmt.Println("\nSearch Performance:")
	if err := run("run", "./cmd/searchbench", "-depth", "4"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
