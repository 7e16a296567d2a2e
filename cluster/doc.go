// Package cluster runs incremental nearest-pair agglomerative clustering.
//
// The Engine pulls candidate pairs nearest-first from a PairSource and applies
// a four-case merge policy to a partition.Tracker, for a fixed step budget:
//
//	both points ungrouped         → CaseCreate    (new group of two)
//	exactly one point grouped     → CaseExtend    (the other joins its group)
//	both in the same group        → CaseSameGroup (step consumed, nothing changes)
//	both grouped, different groups→ CaseMerge     (lower group id survives)
//
// The budget is how many nearest pairs to examine. The engine does not try to
// reach full connectivity; it stops after exactly budget steps. Picking the
// budget is the caller's policy.
//
// Lifecycle:
//
//	StateReady → StateRunning → StateDone
//	                 ↘ StateFailed
//
// Budget 0 starts in StateDone with zero groups. If the source runs dry before
// the budget is reached the engine fails with ErrInsufficientPairs and reports
// no group sizes at all. Tracker errors mean the dispatch itself is broken and
// are surfaced wrapped in ErrInvariant.
//
// The engine is single-threaded and owns its Tracker exclusively.
package cluster
