package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	mg "shrine-engine/shrinemg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MateScore is the base magnitude of a checkmate. The remaining depth at the
	// mated node is added so that shallower mates score further from zero.
	MateScore = 10000
	DrawScore = 0
)

var (
	ErrInvalidDepth  = errors.New("search depth must be at least 1")
	ErrNoLegalMoves  = errors.New("no legal moves")
	ErrSearchAborted = errors.New("search aborted")
)

// pollInterval is how many nodes pass between context checks; a power of two.
const pollInterval = 1024

// Result is the outcome of a root search.
type Result struct {
	Move    mg.Move
	Score   int // White-positive
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
}

// Searcher runs fixed-depth minimax searches. A Searcher is not safe for
// concurrent use; it keeps the statistics of its last search.
type Searcher struct {
	log   zerolog.Logger
	ctx   context.Context
	stats Stats
}

// NewSearcher returns a Searcher that reports through logger.
func NewSearcher(logger zerolog.Logger) *Searcher {
	return &Searcher{log: logger, ctx: context.Background()}
}

// Search explores every legal line from b to the given depth and returns the
// best move for side. White maximizes, Black minimizes; on equal scores the
// move generated first wins.
//
// When side has no legal move the returned Result carries NoMove and the
// terminal score, together with ErrNoLegalMoves. A cancelled ctx aborts the
// search with an error wrapping both ErrSearchAborted and ctx.Err().
func (s *Searcher) Search(ctx context.Context, b mg.Board, side mg.Side, depth int) (Result, error) {
	if depth < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	start := time.Now()
	s.ctx = ctx
	s.resetStats()
	s.stats.Nodes++

	res := Result{Move: mg.NoMove, Depth: depth}
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		res.Score = s.terminal(&b, side, depth)
		res.Nodes = s.stats.Nodes
		res.Elapsed = time.Since(start)
		return res, ErrNoLegalMoves
	}

	best := worstFor(side)
	for _, m := range moves {
		child := b
		if err := child.Apply(m); err != nil {
			continue
		}
		score, err := s.minimax(child, side.Other(), depth-1)
		if err != nil {
			return Result{}, err
		}
		if improves(side, score, best) {
			best, res.Move = score, m
		}
	}

	res.Score = best
	res.Nodes = s.stats.Nodes
	res.Elapsed = time.Since(start)
	s.log.Debug().
		Str("side", side.String()).
		Int("depth", depth).
		Str("move", res.Move.String()).
		Int("score", res.Score).
		Uint64("nodes", res.Nodes).
		Dur("elapsed", res.Elapsed).
		Msg("search complete")
	return res, nil
}

func (s *Searcher) minimax(b mg.Board, side mg.Side, depth int) (int, error) {
	s.stats.Nodes++
	if s.stats.Nodes&(pollInterval-1) == 0 {
		if err := s.ctx.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrSearchAborted, err)
		}
	}
	if depth <= 0 {
		s.stats.Leaves++
		return Evaluate(&b), nil
	}

	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return s.terminal(&b, side, depth), nil
	}

	best := worstFor(side)
	for _, m := range moves {
		child := b
		if err := child.Apply(m); err != nil {
			continue
		}
		score, err := s.minimax(child, side.Other(), depth-1)
		if err != nil {
			return 0, err
		}
		if improves(side, score, best) {
			best = score
		}
	}
	return best, nil
}

// terminal scores a position in which side has no legal move.
func (s *Searcher) terminal(b *mg.Board, side mg.Side, depth int) int {
	if !b.InCheck(side) {
		s.stats.Stalemates++
		return DrawScore
	}
	s.stats.Mates++
	if side == mg.White {
		return -(MateScore + depth)
	}
	return MateScore + depth
}

func worstFor(side mg.Side) int {
	if side == mg.White {
		return math.MinInt
	}
	return math.MaxInt
}

func improves(side mg.Side, score, best int) bool {
	if side == mg.White {
		return score > best
	}
	return score < best
}

// Minimax returns the backed-up score of b with side to move, searched to depth
// plies. Depth 0 is the static evaluation.
func Minimax(b mg.Board, side mg.Side, depth int) int {
	s := NewSearcher(zerolog.Nop())
	score, _ := s.minimax(b, side, depth)
	return score
}

// IsMateScore reports whether score encodes a forced checkmate.
func IsMateScore(score int) bool {
	return score >= MateScore || score <= -MateScore
}
