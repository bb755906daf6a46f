package handlers

import (
	"net/http"

	"github.com/aria-lang/dynaalign-go/internal/kmer"
	"github.com/aria-lang/dynaalign-go/internal/sequence"
)

// ShinglesRequest represents a k-mer shingling request. K defaults to the
// configured k.
type ShinglesRequest struct {
	Sequence string `json:"sequence"`
	K        *int   `json:"k,omitempty"`
}

// ShinglesResponse lists the distinct k-mers of a sequence in sorted order.
type ShinglesResponse struct {
	K        int      `json:"k"`
	Count    int      `json:"count"`
	Shingles []string `json:"shingles"`
}

// ShinglesHandler returns the distinct k-mer set of one sequence.
func (h *Handler) ShinglesHandler(w http.ResponseWriter, r *http.Request) {
	var req ShinglesRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := sequence.Validate(req.Sequence); err != nil {
		h.writeError(w, r, err)
		return
	}

	k := intOr(req.K, h.cfg.K)
	set, err := kmer.Shingles(req.Sequence, k)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ShinglesResponse{
		K:        k,
		Count:    set.Len(),
		Shingles: set.Sorted(),
	})
}

// SharedRequest represents a request comparing the k-mer sets of two
// sequences.
type SharedRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
	K         *int   `json:"k,omitempty"`
}

// SharedResponse represents the k-mers common to both sequences and their
// Jaccard similarity.
type SharedResponse struct {
	K       int      `json:"k"`
	Jaccard float64  `json:"jaccard"`
	Count   int      `json:"count"`
	Shared  []string `json:"shared"`
}

// SharedShinglesHandler compares the k-mer sets of two sequences.
func (h *Handler) SharedShinglesHandler(w http.ResponseWriter, r *http.Request) {
	var req SharedRequest
	if !h.decode(w, r, &req) {
		return
	}

	for i, s := range []string{req.Sequence1, req.Sequence2} {
		if err := sequence.ValidateOperand(s, i+1); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	k := intOr(req.K, h.cfg.K)
	a, err := kmer.Shingles(req.Sequence1, k)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := kmer.Shingles(req.Sequence2, k)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	shared := kmer.Shared(a, b)
	writeJSON(w, http.StatusOK, SharedResponse{
		K:       k,
		Jaccard: kmer.Jaccard(a, b),
		Count:   len(shared),
		Shared:  shared,
	})
}
