// Package similarity builds N×N similarity matrices over protein sequences
// by exact affine-gap global alignment.
package similarity

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/aria-lang/dynaalign-go/internal/substitution"
)

// Matrix is a square, symmetric matrix of similarities in [0,1] with one
// label per row and column.
type Matrix struct {
	labels []string
	n      int
	data   []float64
}

// NewMatrix returns a zeroed n×n matrix labelled "1".."n".
func NewMatrix(n int) *Matrix {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return &Matrix{labels: labels, n: n, data: make([]float64, n*n)}
}

// Size returns N.
func (m *Matrix) Size() int {
	return m.n
}

// Labels returns a copy of the row/column labels.
func (m *Matrix) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Relabel replaces the labels, for example with FASTA identifiers.
func (m *Matrix) Relabel(labels []string) error {
	if len(labels) != m.n {
		return substitution.NewConfigurationError("labels", len(labels),
			fmt.Errorf("want %d labels", m.n))
	}
	m.labels = append([]string(nil), labels...)
	return nil
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Set writes v at (i, j) and (j, i).
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	return append([]float64(nil), m.data[i*m.n:(i+1)*m.n]...)
}

// Rows returns the matrix as a slice of row copies.
func (m *Matrix) Rows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := range rows {
		rows[i] = m.Row(i)
	}
	return rows
}

// IsSymmetric reports whether every (i, j) equals (j, i).
func (m *Matrix) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.At(i, j) != m.At(j, i) {
				return false
			}
		}
	}
	return true
}

// OffDiagonal returns the upper-triangle values (i < j) in row-major order.
func (m *Matrix) OffDiagonal() []float64 {
	out := make([]float64, 0, m.n*(m.n-1)/2)
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

// WriteTSV writes a header row of labels followed by one labelled row per
// sequence, values formatted with six decimals.
func (m *Matrix) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, label := range m.labels {
		bw.WriteByte('\t')
		bw.WriteString(label)
	}
	bw.WriteByte('\n')

	for i := 0; i < m.n; i++ {
		bw.WriteString(m.labels[i])
		for j := 0; j < m.n; j++ {
			bw.WriteByte('\t')
			bw.WriteString(strconv.FormatFloat(m.At(i, j), 'f', 6, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

type matrixJSON struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
}

// MarshalJSON encodes the matrix as {"labels": [...], "values": [[...]]}.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixJSON{Labels: m.labels, Values: m.Rows()})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var raw matrixJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n := len(raw.Labels)
	if len(raw.Values) != n {
		return fmt.Errorf("matrix has %d labels but %d rows", n, len(raw.Values))
	}

	out := &Matrix{labels: raw.Labels, n: n, data: make([]float64, n*n)}
	for i, row := range raw.Values {
		if len(row) != n {
			return fmt.Errorf("row %d has %d values, want %d", i, len(row), n)
		}
		copy(out.data[i*n:], row)
	}

	*m = *out
	return nil
}
