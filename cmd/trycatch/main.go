// --- trycatch/cmd/trycatch/main.go ---

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/v4rm4n/trycatch/internal/demo"
	"github.com/v4rm4n/trycatch/internal/fault"
	"github.com/v4rm4n/trycatch/internal/scenario"
)

func main() {
	if len(os.Args) > 2 {
		log.Fatal("Usage: trycatch [scenario.yml]")
	}

	// 1. Pick the scenario: built-in script unless a file is given
	s := scenario.Default()
	if len(os.Args) == 2 {
		var err error
		s, err = scenario.Load(os.Args[1])
		if err != nil {
			log.Fatalf("Could not load scenario: %v", err)
		}
	}

	// 2. Run; an uncaught fault ends the process like an uncaught exception
	os.Exit(run(s, os.Stdout, os.Stderr))
}

func run(s *scenario.Scenario, stdout, stderr io.Writer) int {
	if err := demo.Run(stdout, s); err != nil {
		fmt.Fprintln(stderr, fault.Traceback(err))
		return 1
	}
	return 0
}
