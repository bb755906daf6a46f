package minhash

import (
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aria-lang/dynaalign-go/internal/kmer"
	"github.com/aria-lang/dynaalign-go/internal/logging"
	"github.com/aria-lang/dynaalign-go/internal/similarity"
)

// Defaults for an Estimator built without options.
const (
	DefaultK       = 3
	DefaultNumHash = 128
	DefaultSeed    = 42
)

type options struct {
	k       int
	numHash int
	seed    uint64
	workers int
	logger  *slog.Logger
}

// Option configures an Estimator.
type Option func(*options)

// WithK sets the shingle length.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithNumHash sets the signature length.
func WithNumHash(n int) Option {
	return func(o *options) {
		o.numHash = n
	}
}

// WithSeed sets the seed the hash family is derived from.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithWorkers bounds sketching and comparison parallelism. Values below 1
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

// Estimator builds approximate similarity matrices from MinHash signatures.
type Estimator struct {
	k       int
	numHash int
	seed    uint64
	workers int
	logger  *slog.Logger
}

// NewEstimator validates k and the signature length.
func NewEstimator(opts ...Option) (*Estimator, error) {
	o := options{
		k:       DefaultK,
		numHash: DefaultNumHash,
		seed:    DefaultSeed,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.k < 1 {
		return nil, &kmer.InvalidKError{K: o.k}
	}
	if _, err := NewFamily(o.numHash, o.seed); err != nil {
		return nil, err
	}

	workers := o.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Estimator{
		k:       o.k,
		numHash: o.numHash,
		seed:    o.seed,
		workers: workers,
		logger:  o.logger,
	}, nil
}

// K returns the shingle length.
func (e *Estimator) K() int { return e.k }

// NumHash returns the signature length.
func (e *Estimator) NumHash() int { return e.numHash }

// Signatures validates seqs and sketches each one under a single family.
func (e *Estimator) Signatures(seqs []string) ([]Signature, error) {
	if err := similarity.ValidateAll(seqs); err != nil {
		return nil, err
	}

	family, err := NewFamily(e.numHash, e.seed)
	if err != nil {
		return nil, err
	}

	sigs := make([]Signature, len(seqs))

	var g errgroup.Group
	g.SetLimit(e.workers)

	for i, s := range seqs {
		g.Go(func() error {
			set, err := kmer.Shingles(s, e.k)
			if err != nil {
				return err
			}
			sigs[i] = family.Sketch(set)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sigs, nil
}

// Build sketches every sequence and fills the matrix with the fraction of
// agreeing signature slots per pair. The diagonal is 1.0.
func (e *Estimator) Build(seqs []string) (*similarity.Matrix, error) {
	start := time.Now()

	sigs, err := e.Signatures(seqs)
	if err != nil {
		return nil, err
	}

	n := len(seqs)
	m := similarity.NewMatrix(n)

	var g errgroup.Group
	g.SetLimit(e.workers)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			m.Set(i, i, 1.0)
			for j := i + 1; j < n; j++ {
				v, err := sigs[i].Similarity(sigs[j])
				if err != nil {
					return err
				}
				m.Set(i, j, v)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Debug("minhash matrix built",
		"sequences", n,
		"k", e.k,
		"num_hash", e.numHash,
		"seed", e.seed,
		"elapsed", time.Since(start),
	)

	return m, nil
}

// JaccardMatrix computes the exact Jaccard similarity of the shingle sets
// of every pair in seqs, the quantity Build estimates.
func JaccardMatrix(seqs []string, k int) (*similarity.Matrix, error) {
	if k < 1 {
		return nil, &kmer.InvalidKError{K: k}
	}
	if err := similarity.ValidateAll(seqs); err != nil {
		return nil, err
	}

	sets := make([]kmer.Set, len(seqs))
	for i, s := range seqs {
		set, err := kmer.Shingles(s, k)
		if err != nil {
			return nil, err
		}
		sets[i] = set
	}

	m := similarity.NewMatrix(len(seqs))
	for i := range sets {
		m.Set(i, i, 1.0)
		for j := i + 1; j < len(sets); j++ {
			m.Set(i, j, kmer.Jaccard(sets[i], sets[j]))
		}
	}
	return m, nil
}
