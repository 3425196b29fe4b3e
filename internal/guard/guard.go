// --- trycatch/internal/guard/guard.go ---

// Package guard runs a body under an ordered chain of fault handlers and an
// optional cleanup action.
//
//	err := guard.Try(body).
//		Except(fault.NameError, onNameError).
//		Finally(cleanup).
//		Run()
//
// The first handler whose kind matches the raised fault (or one of its
// ancestors) wins. Faults no handler matches, and errors that are not faults
// at all, leave Run unchanged. Cleanup runs exactly once on every exit path,
// after any handler, including when the body panics.
package guard

import (
	"github.com/v4rm4n/trycatch/internal/fault"
)

// ── States ───────────────────────────────────────────────────────────────────

type State int

const (
	Entered State = iota
	Computing
	Cleanup
	Returned
	Propagating
	Handled
	Unhandled
)

var stateNames = [...]string{
	Entered:     "ENTERED",
	Computing:   "COMPUTING",
	Cleanup:     "CLEANUP",
	Returned:    "RETURNED",
	Propagating: "PROPAGATING",
	Handled:     "HANDLED",
	Unhandled:   "UNHANDLED",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// Observer is told about each transition of a region, in order:
//
//	success:    ENTERED COMPUTING [CLEANUP] RETURNED
//	caught:     ENTERED COMPUTING HANDLED [CLEANUP] RETURNED
//	uncaught:   ENTERED COMPUTING [CLEANUP] PROPAGATING UNHANDLED
//
// A handler that returns an error ends in PROPAGATING instead of RETURNED.
type Observer func(State)

// Handler receives the matched fault. Returning nil swallows it; returning
// an error replaces it.
type Handler func(*fault.Error) error

// ── Region ───────────────────────────────────────────────────────────────────

type except struct {
	kind    *fault.Kind
	handler Handler
}

type Region struct {
	body     func() error
	handlers []except
	cleanup  func()
	observe  Observer
}

func Try(body func() error) *Region {
	return &Region{body: body}
}

func (r *Region) Except(kind *fault.Kind, h Handler) *Region {
	r.handlers = append(r.handlers, except{kind: kind, handler: h})
	return r
}

func (r *Region) Finally(cleanup func()) *Region {
	r.cleanup = cleanup
	return r
}

func (r *Region) Observe(o Observer) *Region {
	r.observe = o
	return r
}

func (r *Region) notify(s State) {
	if r.observe != nil {
		r.observe(s)
	}
}

// Run executes the region and returns whatever error survives the handlers.
func (r *Region) Run() (err error) {
	r.notify(Entered)

	// finished stays false while a panic unwinds; only cleanup runs then.
	finished, handled := false, false
	defer func() {
		if r.cleanup != nil {
			r.notify(Cleanup)
			r.cleanup()
		}
		if !finished {
			return
		}
		if err == nil {
			r.notify(Returned)
			return
		}
		r.notify(Propagating)
		if !handled {
			r.notify(Unhandled)
		}
	}()

	r.notify(Computing)
	err = r.body()
	if err != nil {
		handled, err = r.dispatch(err)
	}
	finished = true
	return err
}

func (r *Region) dispatch(err error) (bool, error) {
	for _, ex := range r.handlers {
		if fe, ok := fault.Match(err, ex.kind); ok {
			r.notify(Handled)
			return true, ex.handler(fe)
		}
	}
	return false, err
}

// Finally runs body and then cleanup, whatever body does.
func Finally(body func() error, cleanup func()) error {
	return Try(body).Finally(cleanup).Run()
}
