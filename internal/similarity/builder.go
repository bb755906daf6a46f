package similarity

import (
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aria-lang/dynaalign-go/internal/alignment"
	"github.com/aria-lang/dynaalign-go/internal/logging"
	"github.com/aria-lang/dynaalign-go/internal/sequence"
	"github.com/aria-lang/dynaalign-go/internal/substitution"
)

type options struct {
	matrixName string
	gapOpen    int
	gapExtend  int
	workers    int
	logger     *slog.Logger
}

// Option configures a Builder.
type Option func(*options)

// WithMatrix selects the substitution matrix by name, for example "BLOSUM80".
func WithMatrix(name string) Option {
	return func(o *options) {
		o.matrixName = name
	}
}

// WithGapOpen sets the gap opening cost.
func WithGapOpen(cost int) Option {
	return func(o *options) {
		o.gapOpen = cost
	}
}

// WithGapExtend sets the per-position gap extension cost.
func WithGapExtend(cost int) Option {
	return func(o *options) {
		o.gapExtend = cost
	}
}

// WithWorkers bounds the number of rows aligned in parallel. Values below 1
// mean runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger used for batch debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Builder computes exact similarity matrices. A Builder is immutable once
// constructed and can be reused across batches and goroutines.
type Builder struct {
	aligner *alignment.Aligner
	workers int
	logger  *slog.Logger
}

// NewBuilder resolves the substitution matrix and validates gap costs.
// Defaults are BLOSUM62, gap open 10 and gap extend 4.
func NewBuilder(opts ...Option) (*Builder, error) {
	o := options{
		matrixName: substitution.DefaultMatrix,
		gapOpen:    alignment.DefaultGapOpen,
		gapExtend:  alignment.DefaultGapExtend,
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	matrix, err := substitution.Lookup(o.matrixName)
	if err != nil {
		return nil, err
	}
	aligner, err := alignment.NewAligner(matrix, o.gapOpen, o.gapExtend)
	if err != nil {
		return nil, err
	}

	workers := o.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Builder{aligner: aligner, workers: workers, logger: o.logger}, nil
}

// Matrix returns the substitution matrix the builder aligns with.
func (b *Builder) Matrix() *substitution.Matrix {
	return b.aligner.Matrix()
}

// Build aligns every unordered pair (i ≤ j) of seqs once and mirrors the
// result. Every sequence is validated before any alignment starts, so an
// invalid residue fails the batch with a *SequenceError and no matrix.
func (b *Builder) Build(seqs []string) (*Matrix, error) {
	start := time.Now()

	encoded, err := EncodeAll(seqs)
	if err != nil {
		return nil, err
	}

	n := len(seqs)
	m := NewMatrix(n)

	var g errgroup.Group
	g.SetLimit(b.workers)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			for j := i; j < n; j++ {
				r := b.aligner.AlignEncoded(encoded[i], encoded[j])
				m.Set(i, j, r.Similarity)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.logger.Debug("similarity matrix built",
		"matrix", b.aligner.Matrix().Name,
		"sequences", n,
		"pairs", n*(n+1)/2,
		"workers", b.workers,
		"elapsed", time.Since(start),
	)

	return m, nil
}

// EncodeAll validates and encodes every sequence. The first invalid residue
// is reported as a *SequenceError wrapping a *sequence.InvalidSymbolError
// whose Sequence field is the one-based batch position.
func EncodeAll(seqs []string) ([][]uint8, error) {
	encoded := make([][]uint8, len(seqs))
	for i, s := range seqs {
		enc, err := sequence.Encode(s)
		if err != nil {
			if ise, ok := err.(*sequence.InvalidSymbolError); ok {
				ise.Sequence = i + 1
			}
			return nil, &SequenceError{Index: i, Err: err}
		}
		encoded[i] = enc
	}
	return encoded, nil
}

// ValidateAll checks every sequence against the residue alphabet with the
// same error shape as EncodeAll.
func ValidateAll(seqs []string) error {
	for i, s := range seqs {
		if err := sequence.ValidateOperand(s, i+1); err != nil {
			return &SequenceError{Index: i, Err: err}
		}
	}
	return nil
}
