// Command dynaalign provides a CLI for pairwise protein similarity.
//
// Usage:
//
//	dynaalign [command] [options]
//
// Commands:
//
//	score       Linear-gap Needleman-Wunsch score of two sequences
//	align       Affine-gap global alignment of two sequences
//	matrix      All-pairs alignment similarity matrix
//	minhash     All-pairs MinHash similarity estimate
//	jaccard     All-pairs exact k-mer Jaccard similarity
//	matrices    List substitution matrices
//	stats       Calculate sequence statistics
//	version     Show version information
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aria-lang/dynaalign-go/internal/logging"
	"github.com/aria-lang/dynaalign-go/internal/minhash"
	"github.com/aria-lang/dynaalign-go/internal/sequence"
	"github.com/aria-lang/dynaalign-go/internal/similarity"
	"github.com/aria-lang/dynaalign-go/internal/stats"
	"github.com/aria-lang/dynaalign-go/pkg/dynaalign"
)

// errUsage signals that usage has already been printed.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return errUsage
	}

	command, rest := args[0], args[1:]
	switch command {
	case "score":
		return scoreCmd(rest, stdout, stderr)
	case "align":
		return alignCmd(rest, stdout, stderr)
	case "matrix":
		return matrixCmd(rest, stdout, stderr)
	case "minhash":
		return minhashCmd(rest, stdout, stderr)
	case "jaccard":
		return jaccardCmd(rest, stdout, stderr)
	case "matrices":
		for _, name := range dynaalign.Matrices() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	case "stats":
		return statsCmd(rest, stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, dynaalign.Info())
		return nil
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `DynaAlign - Protein Similarity Tool

Usage:
  dynaalign <command> [options]

Commands:
  score     Linear-gap Needleman-Wunsch score of two sequences
  align     Affine-gap global alignment of two sequences
  matrix    All-pairs alignment similarity matrix
  minhash   All-pairs MinHash similarity estimate
  jaccard   All-pairs exact k-mer Jaccard similarity
  matrices  List substitution matrices
  stats     Calculate sequence statistics
  version   Show version information
  help      Show this help message

Use "dynaalign <command> -h" for more information about a command.`)
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func scoreCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("score", stderr)
	seq1 := fs.String("seq1", "", "First sequence")
	seq2 := fs.String("seq2", "", "Second sequence")
	match := fs.Int("match", 1, "Score added for identical residues")
	mismatch := fs.Int("mismatch", -1, "Score added for differing residues")
	gap := fs.Int("gap", -2, "Score added per gap position")
	if err := fs.Parse(args); err != nil {
		return err
	}

	score, err := dynaalign.NeedlemanWunschScore(*seq1, *seq2, *match, *mismatch, *gap)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Score: %g\n", score)
	return nil
}

func alignCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("align", stderr)
	seq1 := fs.String("seq1", "", "First sequence")
	seq2 := fs.String("seq2", "", "Second sequence")
	matrix := fs.String("matrix", dynaalign.DefaultMatrix, "Substitution matrix")
	gapOpen := fs.Int("gap-open", dynaalign.DefaultGapOpen, "Gap open cost")
	gapExtend := fs.Int("gap-extend", dynaalign.DefaultGapExtend, "Gap extend cost")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := dynaalign.Align(*seq1, *seq2, *matrix, *gapOpen, *gapExtend)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Matrix: %s (gap open %d, gap extend %d)\n", *matrix, *gapOpen, *gapExtend)
	fmt.Fprintf(stdout, "Score: %d\n", res.Score)
	fmt.Fprintf(stdout, "Matches: %d / %d\n", res.Matches, res.Length)
	fmt.Fprintf(stdout, "Similarity: %.4f\n", res.Similarity)
	return nil
}

// batchFlags are shared by the matrix-producing commands.
type batchFlags struct {
	file      *string
	seqs      *string
	format    *string
	summary   *bool
	bins      *int
	workers   *int
	logLevel  *string
	logFormat *string
}

func registerBatchFlags(fs *flag.FlagSet) *batchFlags {
	return &batchFlags{
		file:      fs.String("file", "", "FASTA file of sequences"),
		seqs:      fs.String("seqs", "", "Comma-separated sequences"),
		format:    fs.String("format", "tsv", "Output format (tsv, json)"),
		summary:   fs.Bool("summary", false, "Print off-diagonal statistics and a histogram instead of the matrix"),
		bins:      fs.Int("bins", 10, "Histogram bins for -summary"),
		workers:   fs.Int("workers", 0, "Worker goroutines (0 = GOMAXPROCS)"),
		logLevel:  fs.String("log-level", "warn", "Log level (debug, info, warn, error)"),
		logFormat: fs.String("log-format", "text", "Log format (text, json)"),
	}
}

func (b *batchFlags) logger(stderr io.Writer) (*slog.Logger, error) {
	return logging.New(*b.logLevel, *b.logFormat, stderr)
}

// load returns the labels and residues of the input batch. FASTA records
// are labelled by identifier, -seqs entries by position.
func (b *batchFlags) load() ([]string, []string, error) {
	switch {
	case *b.file != "" && *b.seqs != "":
		return nil, nil, errors.New("use only one of -file and -seqs")
	case *b.file != "":
		records, err := dynaalign.ReadFASTA(*b.file)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", *b.file, err)
		}
		return dynaalign.IDs(records), dynaalign.Residues(records), nil
	case *b.seqs != "":
		parts := strings.Split(*b.seqs, ",")
		residues := make([]string, len(parts))
		labels := make([]string, len(parts))
		for i, p := range parts {
			s, err := sequence.New(strings.TrimSpace(p))
			if err != nil {
				return nil, nil, fmt.Errorf("sequence %d: %w", i+1, err)
			}
			residues[i] = s.Residues
			labels[i] = fmt.Sprint(i + 1)
		}
		return labels, residues, nil
	default:
		return nil, nil, errors.New("either -file or -seqs is required")
	}
}

func (b *batchFlags) write(w io.Writer, m *dynaalign.Matrix, labels []string) error {
	if err := m.Relabel(labels); err != nil {
		return err
	}

	if *b.summary {
		return writeSummary(w, m, *b.bins)
	}

	switch *b.format {
	case "tsv":
		return m.WriteTSV(w)
	case "json":
		data, err := m.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	default:
		return fmt.Errorf("unknown format %q", *b.format)
	}
}

func writeSummary(w io.Writer, m *dynaalign.Matrix, bins int) error {
	s, err := dynaalign.Summarize(m)
	if err != nil {
		return err
	}
	h, err := stats.NewHistogram(m, bins)
	if err != nil {
		return err
	}
	lo, hi := h.ModeBin()

	fmt.Fprintln(w, s)
	fmt.Fprintf(w, "Mode bin: %.2f-%.2f\n", lo, hi)
	fmt.Fprintln(w, h)
	return nil
}

func matrixCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("matrix", stderr)
	bf := registerBatchFlags(fs)
	matrix := fs.String("matrix", dynaalign.DefaultMatrix, "Substitution matrix")
	gapOpen := fs.Int("gap-open", dynaalign.DefaultGapOpen, "Gap open cost")
	gapExtend := fs.Int("gap-extend", dynaalign.DefaultGapExtend, "Gap extend cost")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := bf.logger(stderr)
	if err != nil {
		return err
	}
	labels, residues, err := bf.load()
	if err != nil {
		return err
	}

	m, err := dynaalign.SimilarityMatrix(residues,
		similarity.WithMatrix(*matrix),
		similarity.WithGapOpen(*gapOpen),
		similarity.WithGapExtend(*gapExtend),
		similarity.WithWorkers(*bf.workers),
		similarity.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	return bf.write(stdout, m, labels)
}

func minhashCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("minhash", stderr)
	bf := registerBatchFlags(fs)
	k := fs.Int("k", dynaalign.DefaultK, "Shingle length")
	numHash := fs.Int("num-hash", dynaalign.DefaultNumHash, "Signature length")
	seed := fs.Uint64("seed", minhash.DefaultSeed, "Hash family seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := bf.logger(stderr)
	if err != nil {
		return err
	}
	labels, residues, err := bf.load()
	if err != nil {
		return err
	}

	m, err := dynaalign.MinHashSimilarityMatrix(residues, *k, *numHash,
		minhash.WithSeed(*seed),
		minhash.WithWorkers(*bf.workers),
		minhash.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	return bf.write(stdout, m, labels)
}

func jaccardCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("jaccard", stderr)
	bf := registerBatchFlags(fs)
	k := fs.Int("k", dynaalign.DefaultK, "Shingle length")
	if err := fs.Parse(args); err != nil {
		return err
	}

	labels, residues, err := bf.load()
	if err != nil {
		return err
	}

	m, err := dynaalign.JaccardSimilarityMatrix(residues, *k)
	if err != nil {
		return err
	}
	return bf.write(stdout, m, labels)
}

func statsCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("stats", stderr)
	bf := registerBatchFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, residues, err := bf.load()
	if err != nil {
		return err
	}

	s, err := stats.FromResidues(residues)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, s)
	return nil
}
