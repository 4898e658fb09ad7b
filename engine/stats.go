package engine

import (
	"fmt"
	"time"
)

// Stats collects the counters of one top-level search. They are reset
// whenever Search starts.
type Stats struct {
	Nodes           uint64
	QuiescenceNodes uint64
	CacheHits       uint64
	Cutoffs         uint64
	StandPatCutoffs uint64

	// Depth is the deepest iteration that completed.
	Depth int
	// QuiescencePly is the deepest quiescence ply reached beyond the horizon.
	QuiescencePly int

	Elapsed  time.Duration
	NPS      uint64
	TimedOut bool
}

func (s *Stats) finish(elapsed time.Duration) {
	s.Elapsed = elapsed
	if secs := elapsed.Seconds(); secs > 0 {
		s.NPS = uint64(float64(s.Nodes) / secs)
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("depth %d nodes %d qnodes %d cachehits %d cutoffs %d standpat %d qply %d time %v nps %d timedout %v",
		s.Depth, s.Nodes, s.QuiescenceNodes, s.CacheHits, s.Cutoffs, s.StandPatCutoffs,
		s.QuiescencePly, s.Elapsed.Round(time.Millisecond), s.NPS, s.TimedOut)
}
