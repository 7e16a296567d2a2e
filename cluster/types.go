package cluster

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/nearpair/pairs"
	"github.com/katalvlaran/nearpair/partition"
)

// Sentinel errors for engine execution.
var (
	// ErrInsufficientPairs indicates the source ran out of pairs before the
	// step budget was reached.
	ErrInsufficientPairs = errors.New("cluster: insufficient pairs for step budget")

	// ErrNegativeBudget indicates a step budget below zero.
	ErrNegativeBudget = errors.New("cluster: step budget cannot be negative")

	// ErrNilSource indicates a nil PairSource.
	ErrNilSource = errors.New("cluster: pair source is nil")

	// ErrDone indicates Step was called after the engine finished or failed.
	ErrDone = errors.New("cluster: engine is no longer running")

	// ErrInvariant wraps a partition contract violation; it signals a bug in
	// the dispatch, never bad input.
	ErrInvariant = errors.New("cluster: internal invariant violated")
)

// PairSource yields candidate pairs nearest-first. *pairs.Ranker implements it.
type PairSource interface {
	Next() (pairs.Pair, bool)
}

// State is the engine lifecycle position.
type State int

const (
	// StateReady: no pair consumed yet.
	StateReady State = iota
	// StateRunning: at least one pair consumed, budget not exhausted.
	StateRunning
	// StateDone: budget exhausted; no further mutation.
	StateDone
	// StateFailed: the run aborted; no result is reported.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Case names the merge-policy branch a step took.
type Case int

const (
	// CaseCreate: neither point was grouped; a new group was created.
	CaseCreate Case = iota
	// CaseExtend: one point was grouped; the other joined it.
	CaseExtend
	// CaseSameGroup: both points already shared a group.
	CaseSameGroup
	// CaseMerge: the points were in different groups, now unified.
	CaseMerge
)

func (c Case) String() string {
	switch c {
	case CaseCreate:
		return "create"
	case CaseExtend:
		return "extend"
	case CaseSameGroup:
		return "same-group"
	case CaseMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// Outcome describes one processed step.
type Outcome struct {
	// Step is the 1-based step number.
	Step int

	// Pair is the candidate pair consumed.
	Pair pairs.Pair

	// Case is the branch taken.
	Case Case

	// Group is the group holding both points after the step.
	Group partition.GroupID
}

// Options configures an Engine.
type Options struct {
	// OnStep is called after every step. If it returns an error the run
	// aborts and the engine moves to StateFailed.
	OnStep func(Outcome) error

	// Logger receives per-step debug records.
	Logger *slog.Logger
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns a no-op OnStep hook and a discarding logger.
func DefaultOptions() Options {
	return Options{
		OnStep: func(Outcome) error { return nil },
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOnStep registers a per-step hook.
func WithOnStep(fn func(Outcome) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithLogger sets the logger used for step tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
