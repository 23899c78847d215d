// Package similarity ranks fitted document vectors against a query vector.
package similarity

import (
	"math"
	"sort"
)

// Cosine returns the cosine similarity of a and b, or 0 when either is a zero vector.
// Vectors of different length are compared over their common prefix.
func Cosine(a, b []float64) float64 {
	n := min(len(a), len(b))
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Scores computes the cosine similarity of query against every row of matrix.
func Scores(query []float64, matrix [][]float64) []float64 {
	scores := make([]float64, len(matrix))
	for i, row := range matrix {
		scores[i] = Cosine(query, row)
	}
	return scores
}

// Rank returns row indexes of matrix ordered by descending similarity to query.
// Equal scores keep ascending index order, so repeated calls agree.
func Rank(query []float64, matrix [][]float64) []int {
	return argsortDesc(Scores(query, matrix))
}

func argsortDesc(vals []float64) []int {
	idxs := make([]int, len(vals))
	for i := range vals {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(i, j int) bool { return vals[idxs[i]] > vals[idxs[j]] })
	return idxs
}
