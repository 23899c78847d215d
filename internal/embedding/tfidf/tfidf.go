// Package tfidf fits a term-frequency / inverse-document-frequency space over a
// fixed corpus. Weighting follows scikit-learn's TfidfVectorizer with
// smooth_idf=true and norm="l2", except that tf is the term's share of the
// document's kept tokens rather than the raw count.
package tfidf

import (
	"math"
	"regexp"
	"slices"
	"strings"
)

// wordPattern matches runs of letters, keeping inner apostrophes (e.g. "o'clock").
var wordPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Model is a fitted TF-IDF vector space. It is never modified after Fit returns;
// a new corpus needs a new Model.
type Model struct {
	index  map[string]int
	terms  []string
	idf    []float64
	matrix [][]float64
}

// Fit builds the vocabulary and IDF values from the corpus and vectorizes every
// document in it. An empty corpus yields an empty model.
func Fit(corpus []string) *Model {
	docs := make([][]string, len(corpus))
	for i, text := range corpus {
		docs[i] = tokens(text)
	}
	df := documentFrequency(docs)

	m := &Model{terms: make([]string, 0, len(df))}
	for term := range df {
		m.terms = append(m.terms, term)
	}
	slices.Sort(m.terms)

	m.index = make(map[string]int, len(m.terms))
	m.idf = make([]float64, len(m.terms))
	for i, term := range m.terms {
		m.index[term] = i
		m.idf[i] = smoothIDF(len(docs), df[term])
	}

	m.matrix = make([][]float64, len(docs))
	for i, doc := range docs {
		m.matrix[i] = m.weigh(doc)
	}
	return m
}

// Dimension returns the vocabulary size.
func (m *Model) Dimension() int { return len(m.terms) }

// Terms returns a copy of the sorted vocabulary.
func (m *Model) Terms() []string { return slices.Clone(m.terms) }

// Matrix returns the fitted document vectors, aligned with the corpus.
// Callers must not modify the returned rows.
func (m *Model) Matrix() [][]float64 { return m.matrix }

// Transform maps text into the fitted space. Terms outside the vocabulary are ignored.
func (m *Model) Transform(text string) []float64 {
	return m.weigh(tokens(text))
}

// smoothIDF is ln((1+n)/(1+df)) + 1, as if one extra document held every term.
func smoothIDF(n, df int) float64 {
	return math.Log(float64(1+n)/float64(1+df)) + 1
}

func documentFrequency(docs [][]string) map[string]int {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}
	return df
}

// weigh returns the unit-length tf-idf vector of a tokenized document. A
// document with no known terms maps to the zero vector.
func (m *Model) weigh(doc []string) []float64 {
	vec := make([]float64, len(m.terms))
	known := 0
	for _, term := range doc {
		if i, ok := m.index[term]; ok {
			vec[i]++
			known++
		}
	}
	if known == 0 {
		return vec
	}
	for i, count := range vec {
		if count > 0 {
			vec[i] = count / float64(known) * m.idf[i]
		}
	}
	normalize(vec)
	return vec
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// tokens lower-cases text, splits it into words and drops stop words.
func tokens(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	return slices.DeleteFunc(words, func(w string) bool { return stopwords[w] })
}

var stopwords = func() map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(`
		a an the and or but if then else for to of in on at by with as
		is are was were be been being it this that these those from
		up down over under again further than so such into about between
		through during before after above below out off own same too very
		can will just don should now`) {
		set[w] = true
	}
	return set
}()
