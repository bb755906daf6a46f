package handlers

import (
	"net/http"

	"github.com/aria-lang/dynaalign-go/internal/alignment"
	"github.com/aria-lang/dynaalign-go/internal/substitution"
)

// ScoreRequest represents a linear-gap score request. Match, mismatch and
// gap default to 1, -1 and -2.
type ScoreRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
	Match     *int   `json:"match,omitempty"`
	Mismatch  *int   `json:"mismatch,omitempty"`
	Gap       *int   `json:"gap,omitempty"`
}

// ScoreResponse represents the response for a linear-gap score.
type ScoreResponse struct {
	Score float64 `json:"score"`
}

// ScoreHandler handles Needleman-Wunsch score requests.
func (h *Handler) ScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !h.decode(w, r, &req) {
		return
	}

	scoring := &alignment.LinearScoring{
		Match:    intOr(req.Match, 1),
		Mismatch: intOr(req.Mismatch, -1),
		Gap:      intOr(req.Gap, -2),
	}

	var score int
	err := h.observe("score", 0, func() error {
		var err error
		score, err = alignment.NeedlemanWunschScore(req.Sequence1, req.Sequence2, scoring)
		return err
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ScoreResponse{Score: float64(score)})
}

// AlignRequest represents a pairwise Gotoh alignment request.
type AlignRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
	Matrix    string `json:"matrix,omitempty"`
	GapOpen   *int   `json:"gap_open,omitempty"`
	GapExtend *int   `json:"gap_extend,omitempty"`
}

// AlignResponse represents the response for a pairwise alignment.
type AlignResponse struct {
	Score      int     `json:"score"`
	Matches    int     `json:"matches"`
	Length     int     `json:"length"`
	Similarity float64 `json:"similarity"`
	Matrix     string  `json:"matrix"`
}

// AlignHandler handles affine-gap alignment requests.
func (h *Handler) AlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if !h.decode(w, r, &req) {
		return
	}

	m, err := substitution.Lookup(stringOr(req.Matrix, h.cfg.Matrix))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var res *alignment.Result
	err = h.observe("align", 0, func() error {
		var err error
		res, err = alignment.Gotoh(req.Sequence1, req.Sequence2, m,
			intOr(req.GapOpen, h.cfg.GapOpen), intOr(req.GapExtend, h.cfg.GapExtend))
		return err
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, AlignResponse{
		Score:      res.Score,
		Matches:    res.Matches,
		Length:     res.Length,
		Similarity: res.Similarity,
		Matrix:     m.Name,
	})
}

// MatricesResponse lists the accepted substitution matrices.
type MatricesResponse struct {
	Matrices []string `json:"matrices"`
	Default  string   `json:"default"`
}

// MatricesHandler lists the substitution matrix names.
func (h *Handler) MatricesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MatricesResponse{
		Matrices: substitution.Names(),
		Default:  h.cfg.Matrix,
	})
}
