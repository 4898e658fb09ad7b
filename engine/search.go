package engine

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"minimax-chess/board"
)

const (
	// Infinity bounds every reachable score, mates included.
	Infinity int32 = 1 << 30
	// MateThreshold separates forced mates from ordinary scores.
	MateThreshold int32 = 90000

	// Unlimited is a time budget that never expires.
	Unlimited = time.Duration(math.MaxInt64)

	maxSearchDepth     = 64
	maxQuiescenceDepth = 32
)

// Config holds the tunable limits of a Session.
type Config struct {
	MaxDepth        int
	TimeBudget      time.Duration
	QuiescenceDepth int
	CacheSizeMB     int
}

// DefaultConfig returns the limits used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxDepth:        4,
		TimeBudget:      10 * time.Second,
		QuiescenceDepth: 6,
		CacheSizeMB:     16,
	}
}

// Budget returns the time budget, treating zero as no limit.
func (c Config) Budget() time.Duration {
	if c.TimeBudget == 0 {
		return Unlimited
	}
	return c.TimeBudget
}

// Result is the outcome of a top-level search.
type Result struct {
	Move    board.Move
	HasMove bool
	Score   int32
	Depth   int
	PV      []board.Move
	Stats   Stats
}

// Session owns a transposition table and the statistics of the searches
// run through it. The table survives between searches until ClearCache.
// A Session must not be used from several goroutines at once.
type Session struct {
	id  uuid.UUID
	cfg Config
	tt  *TransTable
	log *zap.SugaredLogger

	pos     *board.Position
	stats   Stats
	start   time.Time
	budget  time.Duration
	aborted bool
}

// NewSession creates a search session. A nil logger disables logging.
func NewSession(cfg Config, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	cfg.MaxDepth = Clamp(cfg.MaxDepth, 1, maxSearchDepth)
	cfg.QuiescenceDepth = Clamp(cfg.QuiescenceDepth, 0, maxQuiescenceDepth)
	if cfg.TimeBudget < 0 {
		cfg.TimeBudget = 0
	}

	id := uuid.New()
	s := &Session{
		id:  id,
		cfg: cfg,
		tt:  NewTransTable(cfg.CacheSizeMB),
		log: log.With("session", id.String()),
	}
	s.log.Debugw("session created",
		"max_depth", cfg.MaxDepth,
		"time_budget", cfg.TimeBudget,
		"quiescence_depth", cfg.QuiescenceDepth,
		"cache_mb", cfg.CacheSizeMB,
	)
	return s
}

// ID identifies the session in log output.
func (s *Session) ID() uuid.UUID { return s.id }

// Config returns the session's limits after clamping.
func (s *Session) Config() Config { return s.cfg }

// Stats returns the counters of the last search.
func (s *Session) Stats() Stats { return s.stats }

// CacheLen returns the number of cached positions.
func (s *Session) CacheLen() int { return s.tt.Len() }

// ClearCache forgets every cached position, e.g. when a new game starts.
func (s *Session) ClearCache() {
	s.tt.Clear()
	s.log.Debugw("cache cleared")
}

// Close releases the transposition table. The session must not be used
// afterwards.
func (s *Session) Close() {
	s.tt.release()
}

// Search runs iterative deepening from depth 1 to maxDepth within the time
// budget and returns the result of the deepest completed iteration. The
// position is left exactly as it was given.
func (s *Session) Search(pos *board.Position, maxDepth int, budget time.Duration) Result {
	s.pos = pos
	defer func() { s.pos = nil }()
	s.stats = Stats{}
	s.start = time.Now()
	s.budget = budget
	s.aborted = false
	maxDepth = Clamp(maxDepth, 1, maxSearchDepth)

	res := Result{Score: evaluate(pos)}
	maximizing := pos.SideToMove() == board.White

	for depth := 1; depth <= maxDepth; depth++ {
		score, move := s.alphaBeta(depth, -Infinity, Infinity, maximizing)
		if s.aborted {
			break
		}
		res.Score = score
		res.Depth = depth
		if move != 0 {
			res.Move, res.HasMove = move, true
		}
		s.stats.Depth = depth

		snapshot := s.stats
		snapshot.finish(time.Since(s.start))
		s.log.Infow("depth completed",
			"depth", depth,
			"score", ScoreString(score),
			"nodes", snapshot.Nodes,
			"nps", snapshot.NPS,
			"cache_hits", snapshot.CacheHits,
			"elapsed", snapshot.Elapsed,
			"move", moveString(move),
		)

		if abs(score) > MateThreshold {
			break
		}
	}

	if !res.HasMove {
		s.fallback(&res)
	}
	if res.HasMove {
		res.PV = s.principalVariation(pos, res.Move, res.Depth)
	}

	s.stats.TimedOut = s.aborted
	s.stats.finish(time.Since(s.start))
	res.Stats = s.stats
	return res
}

// fallback picks the best ordered move when no iteration completed in time.
func (s *Session) fallback(res *Result) {
	legal := s.pos.LegalMoves()
	if len(legal) == 0 {
		return
	}
	var hint board.Move
	if e, ok := s.tt.Get(s.pos.Key()); ok {
		hint = e.Move
	}
	res.Move = OrderMoves(s.pos, legal, hint)[0]
	res.HasMove = true
	s.log.Warnw("no iteration completed, using ordered move", "move", moveString(res.Move))
}

func (s *Session) timeUp() bool {
	return time.Since(s.start) >= s.budget
}

// mateScore scores the side to move being checkmated with depth plies of
// search left; mates found closer to the root score higher.
func (s *Session) mateScore(depth int) int32 {
	score := MateScore + int32(depth)
	if s.pos.SideToMove() == board.White {
		return -score
	}
	return score
}

func (s *Session) alphaBeta(depth int, alpha, beta int32, maximizing bool) (int32, board.Move) {
	s.stats.Nodes++
	if s.timeUp() {
		s.aborted = true
		return evaluate(s.pos), 0
	}

	key := s.pos.Key()
	var hint board.Move
	if entry, ok := s.tt.Get(key); ok {
		hint = entry.Move
		if int(entry.Depth) >= depth {
			if score, usable := entry.usable(alpha, beta); usable {
				s.stats.CacheHits++
				return score, entry.Move
			}
		}
	}

	switch outcome := s.pos.Outcome(); {
	case outcome == board.Checkmate:
		return s.mateScore(depth), 0
	case outcome.IsDraw():
		return 0, 0
	}

	if depth <= 0 {
		return s.quiescence(alpha, beta, 0), 0
	}

	moves := OrderMoves(s.pos, s.pos.LegalMoves(), hint)
	if len(moves) == 0 {
		return evaluate(s.pos), 0
	}

	alphaOrig, betaOrig := alpha, beta
	bestMove := moves[0]
	var best int32
	if maximizing {
		best = -Infinity
		for _, m := range moves {
			score := s.searchChild(m, depth-1, alpha, beta, false)
			if s.aborted {
				return best, bestMove
			}
			if score > best {
				best, bestMove = score, m
			}
			alpha = max(alpha, score)
			if beta <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
	} else {
		best = Infinity
		for _, m := range moves {
			score := s.searchChild(m, depth-1, alpha, beta, true)
			if s.aborted {
				return best, bestMove
			}
			if score < best {
				best, bestMove = score, m
			}
			beta = min(beta, score)
			if beta <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
	}

	s.tt.Put(key, Entry{
		Score: best,
		Depth: int16(depth),
		Move:  bestMove,
		Bound: boundOf(best, alphaOrig, betaOrig),
	})
	return best, bestMove
}

// searchChild plays m, searches the resulting node and takes m back on
// every way out.
func (s *Session) searchChild(m board.Move, depth int, alpha, beta int32, maximizing bool) int32 {
	defer s.pos.Push(m)()
	score, _ := s.alphaBeta(depth, alpha, beta, maximizing)
	return score
}

func boundOf(score, alpha, beta int32) Bound {
	switch {
	case score <= alpha:
		return Upper
	case score >= beta:
		return Lower
	}
	return Exact
}

// quiescence extends the search past the horizon with tactical moves only,
// letting the side to move stand pat on the static evaluation. qply counts
// the extra plies; no move is searched once it reaches QuiescenceDepth.
func (s *Session) quiescence(alpha, beta int32, qply int) int32 {
	s.stats.Nodes++
	s.stats.QuiescenceNodes++
	s.stats.QuiescencePly = max(s.stats.QuiescencePly, qply)
	if s.timeUp() {
		s.aborted = true
		return evaluate(s.pos)
	}

	standPat := evaluate(s.pos)
	if s.pos.SideToMove() == board.White {
		if standPat >= beta {
			s.stats.StandPatCutoffs++
			return beta
		}
		alpha = max(alpha, standPat)
		if qply >= s.cfg.QuiescenceDepth {
			return standPat
		}
		for _, m := range TacticalMoves(s.pos) {
			score := s.quiescenceChild(m, alpha, beta, qply+1)
			if s.aborted {
				return alpha
			}
			if score >= beta {
				s.stats.Cutoffs++
				return beta
			}
			alpha = max(alpha, score)
		}
		return alpha
	}

	if standPat <= alpha {
		s.stats.StandPatCutoffs++
		return alpha
	}
	beta = min(beta, standPat)
	if qply >= s.cfg.QuiescenceDepth {
		return standPat
	}
	for _, m := range TacticalMoves(s.pos) {
		score := s.quiescenceChild(m, alpha, beta, qply+1)
		if s.aborted {
			return beta
		}
		if score <= alpha {
			s.stats.Cutoffs++
			return alpha
		}
		beta = min(beta, score)
	}
	return beta
}

func (s *Session) quiescenceChild(m board.Move, alpha, beta int32, qply int) int32 {
	defer s.pos.Push(m)()
	return s.quiescence(alpha, beta, qply)
}

// principalVariation follows cached best moves from the root, stopping at
// maxLen moves or when a position repeats.
func (s *Session) principalVariation(pos *board.Position, first board.Move, maxLen int) []board.Move {
	pv := []board.Move{first}
	seen := map[uint64]bool{pos.Key(): true}
	pos.Push(first)
	pushed := 1
	defer func() {
		for ; pushed > 0; pushed-- {
			pos.Pop()
		}
	}()

	for len(pv) < maxLen && !seen[pos.Key()] {
		seen[pos.Key()] = true
		e, ok := s.tt.Get(pos.Key())
		if !ok || e.Move == 0 || !isLegal(pos, e.Move) {
			break
		}
		pv = append(pv, e.Move)
		pos.Push(e.Move)
		pushed++
	}
	return pv
}

func isLegal(pos *board.Position, m board.Move) bool {
	for _, legal := range pos.LegalMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

// ScoreString renders a score for humans, showing forced mates as "mate".
func ScoreString(score int32) string {
	switch {
	case score > MateThreshold:
		return "mate (white)"
	case score < -MateThreshold:
		return "mate (black)"
	}
	return formatCentipawns(score)
}

func moveString(m board.Move) string {
	if m == 0 {
		return "(none)"
	}
	return m.String()
}

// PVString joins moves in UCI notation.
func PVString(moves []board.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
