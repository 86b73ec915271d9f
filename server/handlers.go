package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shrine-engine/engine"
	mg "shrine-engine/shrinemg"
)

// PositionRequest describes a position as an optional FEN (the initial
// position when empty) followed by moves in coordinate notation.
type PositionRequest struct {
	FEN   string   `json:"fen"`
	Moves []string `json:"moves"`
	Depth int      `json:"depth"`
}

type BestMoveResponse struct {
	Move  string `json:"move"` // empty when the side to move has no legal move
	Score int    `json:"score"`
	Nodes uint64 `json:"nodes"`
	Depth int    `json:"depth"`
	FEN   string `json:"fen"`
}

type LegalMovesResponse struct {
	Moves []string `json:"moves"`
	Check bool     `json:"check"`
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (req PositionRequest) position() (mg.Position, error) {
	p := mg.NewPosition()
	if req.FEN != "" {
		var err error
		if p, err = mg.ParseFEN(req.FEN); err != nil {
			return p, err
		}
	}
	if err := p.PlayUCI(req.Moves...); err != nil {
		return p, err
	}
	return p, nil
}

// bindPosition decodes the request body and builds its position, answering
// 400 itself on failure.
func bindPosition(c *gin.Context) (PositionRequest, mg.Position, bool) {
	var req PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return req, mg.Position{}, false
	}
	p, err := req.position()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, mg.Position{}, false
	}
	return req, p, true
}

func (s *Server) BestMove(c *gin.Context) {
	req, p, ok := bindPosition(c)
	if !ok {
		return
	}
	depth := req.Depth
	if depth <= 0 {
		depth = s.cfg.Engine.Depth
	}
	if depth > s.cfg.Server.MaxDepth {
		depth = s.cfg.Server.MaxDepth
	}

	searcher := engine.NewSearcher(s.log)
	res, err := searcher.Search(c.Request.Context(), p.Board, p.Side, depth)
	resp := BestMoveResponse{Score: res.Score, Nodes: res.Nodes, Depth: depth, FEN: p.FEN()}
	switch {
	case errors.Is(err, engine.ErrNoLegalMoves):
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	case errors.Is(err, engine.ErrSearchAborted):
		s.log.Warn().Err(err).Str("fen", resp.FEN).Msg("search abandoned by client")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	case err != nil:
		s.log.Error().Err(err).Str("fen", resp.FEN).Msg("search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp.Move = res.Move.String()
	c.JSON(http.StatusOK, resp)
}

func (s *Server) LegalMoves(c *gin.Context) {
	_, p, ok := bindPosition(c)
	if !ok {
		return
	}
	moves := make([]string, 0, 64)
	for _, m := range p.LegalMoves() {
		moves = append(moves, m.String())
	}
	c.JSON(http.StatusOK, LegalMovesResponse{Moves: moves, Check: p.Board.InCheck(p.Side)})
}

func (s *Server) Evaluate(c *gin.Context) {
	_, p, ok := bindPosition(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": engine.Evaluate(&p.Board)})
}
