package handlers

import (
	"errors"
	"net/http"

	"github.com/aria-lang/dynaalign-go/internal/cache"
	"github.com/aria-lang/dynaalign-go/internal/minhash"
	"github.com/aria-lang/dynaalign-go/internal/similarity"
	"github.com/aria-lang/dynaalign-go/internal/stats"
)

// MatrixRequest represents an all-pairs similarity request. Fields that do
// not apply to the chosen method are ignored.
type MatrixRequest struct {
	Sequences []string `json:"sequences"`
	Labels    []string `json:"labels,omitempty"`
	Matrix    string   `json:"matrix,omitempty"`
	GapOpen   *int     `json:"gap_open,omitempty"`
	GapExtend *int     `json:"gap_extend,omitempty"`
	K         *int     `json:"k,omitempty"`
	NumHash   *int     `json:"num_hash,omitempty"`
	Seed      *uint64  `json:"seed,omitempty"`
}

// MatrixResponse carries the similarity matrix and, for two or more
// sequences, its off-diagonal summary.
type MatrixResponse struct {
	Matrix  *similarity.Matrix `json:"matrix"`
	Summary *stats.MatrixStats `json:"summary,omitempty"`
}

// ExactMatrixHandler builds the Gotoh similarity matrix.
func (h *Handler) ExactMatrixHandler(w http.ResponseWriter, r *http.Request) {
	var req MatrixRequest
	if !h.decode(w, r, &req) {
		return
	}

	matrixName := stringOr(req.Matrix, h.cfg.Matrix)
	gapOpen := intOr(req.GapOpen, h.cfg.GapOpen)
	gapExtend := intOr(req.GapExtend, h.cfg.GapExtend)

	key := cache.NewKey("exact").
		String(matrixName).
		Int(int64(gapOpen)).
		Int(int64(gapExtend)).
		Strings(req.Sequences).
		Strings(req.Labels).
		Sum()

	h.serveMatrix(w, r, key, &req, "exact", func() (*similarity.Matrix, error) {
		b, err := similarity.NewBuilder(
			similarity.WithMatrix(matrixName),
			similarity.WithGapOpen(gapOpen),
			similarity.WithGapExtend(gapExtend),
			similarity.WithWorkers(h.cfg.Workers),
			similarity.WithLogger(h.logger),
		)
		if err != nil {
			return nil, err
		}
		return b.Build(req.Sequences)
	})
}

// MinHashMatrixHandler builds the MinHash estimate of the k-mer Jaccard
// matrix.
func (h *Handler) MinHashMatrixHandler(w http.ResponseWriter, r *http.Request) {
	var req MatrixRequest
	if !h.decode(w, r, &req) {
		return
	}

	k := intOr(req.K, h.cfg.K)
	numHash := intOr(req.NumHash, h.cfg.NumHash)
	seed := h.cfg.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}

	key := cache.NewKey("minhash").
		Int(int64(k)).
		Int(int64(numHash)).
		Uint(seed).
		Strings(req.Sequences).
		Strings(req.Labels).
		Sum()

	h.serveMatrix(w, r, key, &req, "minhash", func() (*similarity.Matrix, error) {
		e, err := minhash.NewEstimator(
			minhash.WithK(k),
			minhash.WithNumHash(numHash),
			minhash.WithSeed(seed),
			minhash.WithWorkers(h.cfg.Workers),
			minhash.WithLogger(h.logger),
		)
		if err != nil {
			return nil, err
		}
		return e.Build(req.Sequences)
	})
}

// JaccardMatrixHandler builds the exact k-mer Jaccard matrix.
func (h *Handler) JaccardMatrixHandler(w http.ResponseWriter, r *http.Request) {
	var req MatrixRequest
	if !h.decode(w, r, &req) {
		return
	}

	k := intOr(req.K, h.cfg.K)
	key := cache.NewKey("jaccard").
		Int(int64(k)).
		Strings(req.Sequences).
		Strings(req.Labels).
		Sum()

	h.serveMatrix(w, r, key, &req, "jaccard", func() (*similarity.Matrix, error) {
		return minhash.JaccardMatrix(req.Sequences, k)
	})
}

func (h *Handler) serveMatrix(w http.ResponseWriter, r *http.Request, key uint64,
	req *MatrixRequest, kind string, build func() (*similarity.Matrix, error)) {
	body, err := h.cached(key, func() (any, error) {
		release, err := h.acquire(r.Context())
		if err != nil {
			return nil, err
		}
		defer release()

		var m *similarity.Matrix
		err = h.observe(kind, len(req.Sequences), func() error {
			var err error
			m, err = build()
			return err
		})
		if err != nil {
			return nil, err
		}
		return matrixResponse(m, req.Labels)
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeRaw(w, body)
}

func matrixResponse(m *similarity.Matrix, labels []string) (*MatrixResponse, error) {
	if labels != nil {
		if err := m.Relabel(labels); err != nil {
			return nil, err
		}
	}

	resp := &MatrixResponse{Matrix: m}
	summary, err := stats.FromMatrix(m)
	switch {
	case err == nil:
		resp.Summary = summary
	case !errors.Is(err, stats.ErrNoPairs):
		return nil, err
	}
	return resp, nil
}
