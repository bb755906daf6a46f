package handlers

import (
	"errors"
	"net/http"

	"github.com/aria-lang/dynaalign-go/internal/sequence"
	"github.com/aria-lang/dynaalign-go/internal/similarity"
	"github.com/aria-lang/dynaalign-go/internal/stats"
)

// SequenceRequest represents a request with a single sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
}

// ValidateResponse represents validation result. Position is set only for
// an invalid sequence.
type ValidateResponse struct {
	Valid    bool   `json:"valid"`
	Message  string `json:"message,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// ValidateHandler checks a sequence against the residue alphabet. Residues
// are matched as given, so lower-case input is reported invalid.
func (h *Handler) ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp := ValidateResponse{Valid: true}
	if err := sequence.Validate(req.Sequence); err != nil {
		resp.Valid = false
		resp.Message = err.Error()
		var ise *sequence.InvalidSymbolError
		if errors.As(err, &ise) {
			resp.Position = &ise.Position
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// SequenceSetRequest represents a request with multiple sequences.
type SequenceSetRequest struct {
	Sequences []string `json:"sequences"`
}

// SequenceSetStatsHandler handles sequence set statistics requests.
func (h *Handler) SequenceSetStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceSetRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := similarity.ValidateAll(req.Sequences); err != nil {
		h.writeError(w, r, err)
		return
	}

	s, err := stats.FromResidues(req.Sequences)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
