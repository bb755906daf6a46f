package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/dynaalign-go/internal/similarity"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"score", []string{"score", "-seq1", "ACD", "-seq2", "ACD"}, []string{"Score: 3"}},
		{"align", []string{"align", "-seq1", "MKTAYIAKQR", "-seq2", "MKTAFIAKQR"},
			[]string{"Score: 45", "Matches: 9 / 10", "Similarity: 0.9000"}},
		{"matrix tsv", []string{"matrix", "-seqs", "acd,ACE"},
			[]string{"\t1\t2\n", "1\t1.000000\t0.666667\n"}},
		{"jaccard", []string{"jaccard", "-seqs", "ACDEF,CDEFG"}, []string{"0.500000"}},
		{"summary", []string{"jaccard", "-seqs", "ACDEF,CDEFG,ACDEF", "-summary", "-bins", "4"},
			[]string{"pairs: 3", "Mode bin: 0.50-0.75"}},
		{"matrices", []string{"matrices"}, []string{"BLOSUM45\n", "BLOSUM100\n"}},
		{"stats", []string{"stats", "-seqs", "ACD,ACDEF"}, []string{"count: 2", "total residues: 8"}},
		{"version", []string{"version"}, []string{"DynaAlign v1.0.0"}},
		{"help", []string{"help"}, []string{"Commands:"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", nil, ""},
		{"unknown command", []string{"frobnicate"}, "frobnicate"},
		{"no input", []string{"matrix"}, "-file or -seqs"},
		{"both inputs", []string{"matrix", "-seqs", "A", "-file", "x.fa"}, "only one"},
		{"bad residue", []string{"minhash", "-seqs", "ACD,AC1"}, "sequence 2"},
		{"bad matrix", []string{"matrix", "-seqs", "ACD", "-matrix", "PAM250"}, "PAM250"},
		{"bad k", []string{"jaccard", "-seqs", "ACD", "-k", "0"}, "k-mer length 0"},
		{"bad format", []string{"jaccard", "-seqs", "ACD", "-format", "xml"}, "xml"},
		{"bad log level", []string{"matrix", "-seqs", "ACD", "-log-level", "loud"}, "loud"},
		{"bad flag", []string{"score", "-nope"}, "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMatrixFromFASTA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.fa")
	fasta := ">alpha first\nMKTAYIAKQR\n>beta\nMKTAFI\nAKQR\n"
	require.NoError(t, os.WriteFile(path, []byte(fasta), 0o644))

	out, stderr, err := runCLI(t, "matrix", "-file", path, "-format", "json", "-log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "similarity matrix built")

	var m similarity.Matrix
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &m))
	assert.Equal(t, []string{"alpha", "beta"}, m.Labels())
	assert.InDelta(t, 0.9, m.At(0, 1), 1e-9)

	_, _, err = runCLI(t, "matrix", "-file", filepath.Join(t.TempDir(), "missing.fa"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.fa")
}
