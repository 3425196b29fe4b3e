// --- trycatch/internal/demo/demo.go ---

package demo

import (
	"fmt"
	"io"

	"github.com/v4rm4n/trycatch/internal/fault"
	"github.com/v4rm4n/trycatch/internal/guard"
	"github.com/v4rm4n/trycatch/internal/numeric"
	"github.com/v4rm4n/trycatch/internal/scenario"
	"github.com/v4rm4n/trycatch/internal/scope"
)

const (
	NameErrorMessage   = "Got a NameError!"
	FinallyMessage     = "In finally statement."
	DivideErrorMessage = "Caught divide-by-zero error!"
)

// Builtins sit beneath the globals, so reading e.g. True succeeds.
var Builtins = map[string]scope.Value{
	"True":  "True",
	"False": "False",
	"None":  "None",
}

// DivideFinally binds a and b in a fresh frame scope of r and returns a/b,
// printing FinallyMessage once on the way out whether or not the division
// succeeded.
func DivideFinally(w io.Writer, r *scope.Resolver, a, b numeric.Number) (numeric.Number, error) {
	r.EnterScope()
	defer r.ExitScope()
	r.Define("a", a)
	r.Define("b", b)

	var q numeric.Number
	err := guard.Finally(func() error {
		x, err := resolveNumber(r, "a")
		if err != nil {
			return err
		}
		y, err := resolveNumber(r, "b")
		if err != nil {
			return err
		}
		q, err = numeric.Divide(x, y)
		return err
	}, func() {
		fmt.Fprintln(w, FinallyMessage)
	})
	if err != nil {
		return numeric.Number{}, fault.WithFrame(err, "divideFinally")
	}
	return q, nil
}

func resolveNumber(r *scope.Resolver, name string) (numeric.Number, error) {
	v, err := r.Resolve(name)
	if err != nil {
		return numeric.Number{}, err
	}
	n, ok := v.(numeric.Number)
	if !ok {
		return numeric.Number{}, fault.Newf(fault.StandardError, "%s is not a number", name)
	}
	return n, nil
}

// Run executes s against w. Faults the script has no handler for are
// returned with a "<module>" frame.
func Run(w io.Writer, s *scenario.Scenario) error {
	r := scope.NewResolver(Builtins)

	// 1. Names, each read from inside a nested block scope
	for _, name := range s.Names {
		r.EnterScope()
		err := guard.Try(func() error {
			v, err := r.Resolve(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, v)
			return nil
		}).Except(s.Handlers.Names.Or(fault.NameError), func(*fault.Error) error {
			fmt.Fprintln(w, NameErrorMessage)
			return nil
		}).Run()
		r.ExitScope()
		if err != nil {
			return fault.WithFrame(err, "<module>")
		}
	}

	// 2. Divisions share one region; the first failure skips the rest
	err := guard.Try(func() error {
		for _, d := range s.Divisions {
			q, err := DivideFinally(w, r, d.Dividend.Number, d.Divisor.Number)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, q)
		}
		return nil
	}).Except(s.Handlers.Divisions.Or(fault.ArithmeticError), func(*fault.Error) error {
		fmt.Fprintln(w, DivideErrorMessage)
		return nil
	}).Run()
	if err != nil {
		return fault.WithFrame(err, "<module>")
	}
	return nil
}
