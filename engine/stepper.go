package engine

import (
	"context"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/trace"
)

// Stepper yields a run's events one per Next call, so the driver decides
// when the search advances. It advances the underlying search only when
// its buffer of already emitted events is empty.
//
// The grid lease is taken by NewStepper and released when Next reports
// exhaustion or Close is called. A Stepper is not safe for concurrent use.
type Stepper struct {
	sess *session
	buf  []trace.Event
	head int

	out  Outcome
	done bool
	err  error
}

// NewStepper prepares strategy s from start to end on g. Invalid
// coordinates produce an already exhausted Stepper whose Outcome is
// InvalidInput. Errors are those of RunSearch raised before the first step.
func NewStepper(ctx context.Context, s Strategy, g *grid.Grid, start, end grid.Coord, opts ...Option) (*Stepper, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	st := &Stepper{}
	sess, out, err := open(ctx, s, g, start, end, trace.Func(st.record), o)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		st.out, st.done = out, true
		return st, nil
	}
	st.sess = sess

	return st, nil
}

// Next returns the next event. ok is false once the run has terminated and
// every event was delivered; err then carries any fault.
func (st *Stepper) Next() (ev trace.Event, ok bool, err error) {
	for st.head == len(st.buf) {
		if st.done {
			return trace.Event{}, false, st.err
		}
		st.buf, st.head = st.buf[:0], 0
		done, err := st.sess.machine.Step()
		if err != nil || done {
			st.out = st.sess.finish(err)
			st.done, st.err = true, err
		}
	}
	ev = st.buf[st.head]
	st.head++

	return ev, true, nil
}

// Outcome returns the run outcome; it is final once Next has returned
// ok == false.
func (st *Stepper) Outcome() Outcome {
	if !st.done && st.sess != nil {
		return st.sess.outcome()
	}

	return st.out
}

// Close abandons the run and releases the grid lease. It is safe to call
// more than once and after exhaustion.
func (st *Stepper) Close() {
	if st.sess != nil && !st.done {
		st.sess.release()
		st.out = st.sess.outcome()
		st.done = true
	}
}

func (st *Stepper) record(row, col int, status trace.Status) {
	st.buf = append(st.buf, trace.Event{Row: row, Col: col, Status: status})
}
