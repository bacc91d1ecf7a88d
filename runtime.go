package hostnum

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrContract is raised when an operand violates an operation's
	// precondition, such as a narrow scalar outside [0, MaxSafe].
	ErrContract = errors.New("hostnum: contract violation")

	// ErrNotImplemented is raised for operand combinations the runtime does
	// not support, such as a shift distance in wide form.
	ErrNotImplemented = errors.New("hostnum: not implemented")

	// ErrFailed is raised by an explicit call to the 'fail' builtin.
	ErrFailed = errors.New("hostnum: failed")
)

// Config holds the hooks a host installs before running generated code. The
// zero Config is valid and selects the default handlers.
type Config struct {
	// OnAssert, if set, receives the outcome of every precondition check and
	// alone decides whether it is a failure. It replaces the runtime's own
	// check entirely; to fail, it should call Runtime.Fail or panic.
	OnAssert func(condition bool)

	// OnFail, if set, is called once for every failure before the Runtime
	// panics with the same error. A failure never returns a usable value.
	OnFail func(err error)

	// Unchecked skips precondition checks. Operands that violate a
	// precondition produce unspecified results instead of a failure.
	// Unimplemented operations still fail.
	Unchecked bool

	// Logger receives failures. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// Runtime carries the host hooks for the operations that can fail. It holds
// no other state and is safe for concurrent use if the hooks are.
type Runtime struct {
	onAssert func(condition bool)
	onFail   func(err error)
	checked  bool
	log      *zap.Logger
}

func New(config Config) *Runtime {
	rt := &Runtime{
		onAssert: config.OnAssert,
		onFail:   config.OnFail,
		checked:  !config.Unchecked,
		log:      config.Logger,
	}
	if rt.log == nil {
		rt.log = zap.NewNop()
	}
	return rt
}

// Checked reports whether precondition checks are enabled.
func (rt *Runtime) Checked() bool { return rt.checked }

// Fail reports an unconditional failure. It calls the OnFail hook, if one is
// installed, then panics with err; it never returns normally. A nil err is
// reported as ErrFailed.
func (rt *Runtime) Fail(err error) {
	if err == nil {
		err = ErrFailed
	}
	rt.log.Error("hostnum: runtime failure", zap.Error(err))
	if rt.onFail != nil {
		rt.onFail(err)
	}
	panic(err)
}

// Assert checks a condition raised by generated code. If an OnAssert hook is
// installed it decides the outcome; otherwise a false condition fails with
// ErrContract. Assert runs in both build profiles.
func (rt *Runtime) Assert(condition bool) {
	rt.assert("assert", condition)
}

func (rt *Runtime) assert(op string, condition bool) {
	if rt.onAssert != nil {
		rt.onAssert(condition)
		return
	}
	if !condition {
		rt.Fail(opError(op, ErrContract))
	}
}

// require is a precondition check, skipped by the unchecked profile.
func (rt *Runtime) require(op string, condition bool) {
	if rt.checked {
		rt.assert(op, condition)
	}
}

func (rt *Runtime) notImplemented(op string) {
	rt.Fail(opError(op, ErrNotImplemented))
}

// scalar returns the host scalar of a narrow-only operand.
func (rt *Runtime) scalar(op string, x Int) int64 {
	rt.require(op, x.form == FormNarrow && x.valid())
	return x.Scalar()
}

func opError(op string, err error) error {
	return fmt.Errorf("%w in %s", err, op)
}
