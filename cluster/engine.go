package cluster

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/nearpair/pairs"
	"github.com/katalvlaran/nearpair/partition"
	"github.com/katalvlaran/nearpair/point"
)

// Engine drives nearest-pair clustering for a fixed step budget.
type Engine struct {
	src     PairSource
	budget  int
	steps   int
	state   State
	tracker *partition.Tracker
	opts    Options
	log     *slog.Logger
}

// New prepares an Engine that will consume budget pairs from src.
// Budget 0 yields an engine already in StateDone with zero groups.
func New(src PairSource, budget int, opts ...Option) (*Engine, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		src:     src,
		budget:  budget,
		state:   StateReady,
		tracker: partition.New(),
		opts:    o,
		log:     o.Logger,
	}
	if budget == 0 {
		e.state = StateDone
	}

	return e, nil
}

// Step consumes one pair and applies the merge policy.
//
// Steps:
//  1. Refuse if the engine is Done or Failed (ErrDone).
//  2. Pop the next pair; an empty source fails the run (ErrInsufficientPairs).
//  3. Look up both points and dispatch on (grouped?, grouped?, same group?).
//  4. Run the OnStep hook; move to Done when the budget is exhausted.
func (e *Engine) Step() (Outcome, error) {
	// 1. Terminal states accept no more steps.
	if e.state == StateDone || e.state == StateFailed {
		return Outcome{}, fmt.Errorf("%w: state %s", ErrDone, e.state)
	}
	e.state = StateRunning

	// 2. Next candidate.
	p, ok := e.src.Next()
	if !ok {
		return Outcome{}, e.fail(fmt.Errorf("%w: source exhausted after %d of %d steps",
			ErrInsufficientPairs, e.steps, e.budget))
	}

	// 3. Dispatch.
	out, err := e.apply(p)
	if err != nil {
		return Outcome{}, e.fail(fmt.Errorf("%w: step %d pair (%d, %d): %w",
			ErrInvariant, e.steps+1, p.I, p.J, err))
	}
	e.steps++
	out.Step = e.steps
	e.log.Debug("cluster step",
		"step", out.Step, "i", p.I, "j", p.J, "dist", p.Dist,
		"case", out.Case.String(), "group", int(out.Group))

	// 4. Hook and termination.
	if err := e.opts.OnStep(out); err != nil {
		return out, e.fail(fmt.Errorf("cluster: OnStep error at step %d: %w", out.Step, err))
	}
	if e.steps == e.budget {
		e.state = StateDone
	}

	return out, nil
}

// apply runs the four-case merge policy for p.
func (e *Engine) apply(p pairs.Pair) (Outcome, error) {
	out := Outcome{Pair: p}
	gi, okI := e.tracker.Lookup(p.I)
	gj, okJ := e.tracker.Lookup(p.J)

	var err error
	switch {
	case !okI && !okJ:
		out.Case = CaseCreate
		out.Group, err = e.tracker.CreateGroup(p.I, p.J)
	case okI && !okJ:
		out.Case, out.Group = CaseExtend, gi
		err = e.tracker.AddToGroup(gi, p.J)
	case !okI && okJ:
		out.Case, out.Group = CaseExtend, gj
		err = e.tracker.AddToGroup(gj, p.I)
	case gi == gj:
		out.Case, out.Group = CaseSameGroup, gi
	default:
		out.Case = CaseMerge
		out.Group, err = e.tracker.MergeGroups(gi, gj)
	}

	return out, err
}

// fail moves the engine to StateFailed and returns err.
func (e *Engine) fail(err error) error {
	e.state = StateFailed
	e.log.Debug("cluster run failed", "steps", e.steps, "budget", e.budget, "error", err)

	return err
}

// Run steps until the budget is exhausted. Calling Run on a Done engine is
// a no-op; calling it on a Failed engine returns ErrDone.
func (e *Engine) Run() error {
	if e.state == StateFailed {
		return fmt.Errorf("%w: state %s", ErrDone, e.state)
	}
	for e.state != StateDone {
		if _, err := e.Step(); err != nil {
			return err
		}
	}

	return nil
}

// GroupSizes returns the sizes of all non-empty groups in creation order.
// Ungrouped points are absent. It returns nil after a failed run.
func (e *Engine) GroupSizes() []int {
	if e.state == StateFailed {
		return nil
	}

	return e.tracker.GroupSizes()
}

// Groups returns the members of every non-empty group.
// It returns nil after a failed run.
func (e *Engine) Groups() map[partition.GroupID][]int {
	if e.state == StateFailed {
		return nil
	}

	return e.tracker.Groups()
}

// Lookup reports the group of point p.
func (e *Engine) Lookup(p int) (partition.GroupID, bool) { return e.tracker.Lookup(p) }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Steps returns how many pairs have been processed.
func (e *Engine) Steps() int { return e.steps }

// Budget returns the configured step budget.
func (e *Engine) Budget() int { return e.budget }

// Validate checks the underlying partition invariants.
func (e *Engine) Validate() error { return e.tracker.Validate() }

// Cluster ranks pts, runs an Engine for budget steps and returns the group
// sizes. Ranking options (method, point limit) are passed through.
func Cluster(pts []point.Point, budget int, opts ...pairs.Option) ([]int, error) {
	r, err := pairs.NewRanker(pts, opts...)
	if err != nil {
		return nil, err
	}
	e, err := New(r, budget)
	if err != nil {
		return nil, err
	}
	if err := e.Run(); err != nil {
		return nil, err
	}

	return e.GroupSizes(), nil
}
