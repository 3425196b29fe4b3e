// --- trycatch/internal/fault/fault.go ---

package fault

import (
	"errors"
	"fmt"
	"strings"
)

// ── Kinds ────────────────────────────────────────────────────────────────────
//
// A Kind names a class of failure. Kinds form a single-inheritance tree so a
// handler registered for ArithmeticError also catches ZeroDivisionError.

type Kind struct {
	Name   string
	Parent *Kind
}

func newKind(name string, parent *Kind) *Kind {
	return &Kind{Name: name, Parent: parent}
}

var (
	BaseException     = newKind("BaseException", nil)
	Exception         = newKind("Exception", BaseException)
	StandardError     = newKind("StandardError", Exception)
	ArithmeticError   = newKind("ArithmeticError", StandardError)
	ZeroDivisionError = newKind("ZeroDivisionError", ArithmeticError)
	OverflowError     = newKind("OverflowError", ArithmeticError)
	NameError         = newKind("NameError", StandardError)
)

var kindsByName = map[string]*Kind{}

func init() {
	for _, k := range []*Kind{
		BaseException, Exception, StandardError,
		ArithmeticError, ZeroDivisionError, OverflowError,
		NameError,
	} {
		kindsByName[k.Name] = k
	}
}

// KindByName finds a predefined kind, e.g. for a handler named in a
// scenario file.
func KindByName(name string) (*Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// IsA reports whether k is other or descends from it.
func (k *Kind) IsA(other *Kind) bool {
	for curr := k; curr != nil; curr = curr.Parent {
		if curr == other {
			return true
		}
	}
	return false
}

func (k *Kind) String() string {
	return k.Name
}

// ── Error ────────────────────────────────────────────────────────────────────

// Error is a raised fault. Frames lists the call frames it unwound through,
// outermost first.
type Error struct {
	Kind   *Kind
	Msg    string
	Frames []string
}

func New(kind *Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind *Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.Name + ": (no message)"
	}
	return e.Kind.Name + ": " + e.Msg
}

// Is lets errors.Is match on kind ancestry when the target is a bare fault,
// e.g. errors.Is(err, fault.New(fault.ArithmeticError, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Msg != "" {
		return false
	}
	return e.Kind.IsA(t.Kind)
}

// Match finds the first *Error in err's chain and reports whether its kind
// is kind or a descendant of it.
func Match(err error, kind *Kind) (*Error, bool) {
	var fe *Error
	if !errors.As(err, &fe) {
		return nil, false
	}
	return fe, fe.Kind.IsA(kind)
}

// WithFrame records that err unwound through the named frame. Errors that
// are not faults are returned unchanged.
func WithFrame(err error, name string) error {
	var fe *Error
	if !errors.As(err, &fe) {
		return err
	}
	fe.Frames = append([]string{name}, fe.Frames...)
	return err
}

// Traceback renders err the way an uncaught fault is reported on stderr.
func Traceback(err error) string {
	var fe *Error
	if !errors.As(err, &fe) {
		return err.Error()
	}
	var sb strings.Builder
	sb.WriteString("Traceback (most recent call last)")
	for _, frame := range fe.Frames {
		sb.WriteString("\n    ")
		sb.WriteString(frame)
	}
	sb.WriteString("\n\n")
	sb.WriteString(fe.Error())
	return sb.String()
}
