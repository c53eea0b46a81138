// Copyright 2026 troika Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cf implements the item-item collaborative filtering model: the
// catalog dictionary, the co-occurrence matrix and the derived similarity
// matrix, plus the aggregate scoring queries built on them.
package cf

import (
	"sort"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/troika-io/troika/base/log"
	"github.com/troika-io/troika/common/floats"
	"github.com/troika-io/troika/common/heap"
	"github.com/troika-io/troika/dataset"
)

// Score is one scored catalog item.
type Score struct {
	Name  string
	Score float64
}

// Model is a trained item-item collaborative filtering model. All fields are
// immutable after Build or Load; rebuilds go through a Snapshot swap instead
// of mutating a model readers may hold.
type Model struct {
	dict         *dataset.Dict
	coOccurrence [][]float32
	similarity   [][]float32
	n            int
}

// Build trains a model from a corpus of groups. The catalog is the sorted set
// of distinct names; cell (i, j) of the co-occurrence matrix counts how often
// items i and j appear in the same group, so a group of size M contributes
// M*(M-1) increments. Rows are L1-normalized before cosine similarity, and
// the diagonal of the similarity matrix is forced to zero. Deterministic: the
// same corpus always yields the same model.
func Build(groups []dataset.Group) (*Model, error) {
	if len(groups) == 0 {
		return nil, errors.NotValidf("empty corpus")
	}
	dict := dataset.NewDict()
	for _, name := range dataset.Distinct(groups) {
		dict.Put(name)
	}
	n := dict.Count()

	coOccurrence := newMatrix(n)
	for _, group := range groups {
		indices := make([]int32, 0, len(group))
		for _, name := range group {
			indices = append(indices, dict.Add(name))
		}
		for _, i := range indices {
			for _, j := range indices {
				if i != j {
					coOccurrence[i][j]++
				}
			}
		}
	}

	// Row sums turn counts into conditional probabilities. Zero-sum rows
	// stay zero vectors.
	normalized := newMatrix(n)
	for i := range coOccurrence {
		if sum := floats.Sum(coOccurrence[i]); sum > 0 {
			floats.MulConstTo(coOccurrence[i], 1/sum, normalized[i])
		}
	}

	// Only the upper triangle is computed, which keeps the matrix exactly
	// symmetric under float rounding. The diagonal stays zero so that no
	// item recommends itself.
	similarity := newMatrix(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := min(floats.Cosine(normalized[i], normalized[j]), 1)
			similarity[i][j], similarity[j][i] = s, s
		}
	}

	log.Logger().Info("built collaborative filtering model",
		zap.Int("n_items", n), zap.Int("n_groups", len(groups)))
	return &Model{
		dict:         dict,
		coOccurrence: coOccurrence,
		similarity:   similarity,
		n:            n,
	}, nil
}

// Count returns the catalog size.
func (m *Model) Count() int {
	return m.n
}

// Catalog returns all trained item names in index order.
func (m *Model) Catalog() []string {
	return m.dict.Names()
}

// resolve maps names to catalog indices. Unknown names are logged and
// reported, never fatal.
func (m *Model) resolve(names []string) Resolution {
	var r Resolution
	for _, name := range names {
		if id, ok := m.dict.Id(name); ok {
			r.Indices = append(r.Indices, id)
		} else {
			log.Logger().Warn("item not found in training data", zap.String("name", name))
			r.Unknown = append(r.Unknown, name)
		}
	}
	return r
}

// AggregateScores scores every catalog item by its mean similarity to the
// resolved inputs and returns the top n, excluding inputs and the extra
// exclude list. Ties are broken by ascending catalog index. If no input
// resolves the result is empty.
func (m *Model) AggregateScores(inputs, exclude []string, n int) ([]Score, Resolution) {
	resolution := m.resolve(inputs)
	if len(resolution.Indices) == 0 {
		return nil, resolution
	}

	aggregate := make([]float32, m.n)
	for _, id := range resolution.Indices {
		floats.Add(aggregate, m.similarity[id])
	}
	floats.MulConst(aggregate, 1/float32(len(resolution.Indices)))

	excluded := make(map[string]struct{}, len(inputs)+len(exclude))
	for _, name := range inputs {
		excluded[name] = struct{}{}
	}
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}
	scores := make([]Score, 0, m.n)
	for i, v := range aggregate {
		name, _ := m.dict.String(int32(i))
		if _, skip := excluded[name]; skip {
			continue
		}
		scores = append(scores, Score{Name: name, Score: float64(v)})
	}
	// Stable sort over index order keeps equal scores in ascending catalog
	// index, so results are deterministic.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if n >= 0 && len(scores) > n {
		scores = scores[:n]
	}
	return scores, resolution
}

// GroupCohesion returns the mean pairwise similarity across the resolved
// members of a group. Fewer than 2 resolved members score 0.
func (m *Model) GroupCohesion(group []string) (float64, Resolution) {
	resolution := m.resolve(group)
	indices := resolution.Indices
	if len(indices) < 2 {
		return 0, resolution
	}
	var sum float64
	var count int
	for i := 0; i < len(indices); i++ {
		for j := i + 1; j < len(indices); j++ {
			sum += float64(m.similarity[indices[i]][indices[j]])
			count++
		}
	}
	return sum / float64(count), resolution
}

// Similarity returns the similarity between two items, or 0 if either name is
// unknown.
func (m *Model) Similarity(a, b string) float64 {
	i, okA := m.dict.Id(a)
	j, okB := m.dict.Id(b)
	if !okA || !okB {
		return 0
	}
	return float64(m.similarity[i][j])
}

// CoOccurrence returns how often two items appeared in the same training
// group, or 0 if either name is unknown.
func (m *Model) CoOccurrence(a, b string) float64 {
	i, okA := m.dict.Id(a)
	j, okB := m.dict.Id(b)
	if !okA || !okB {
		return 0
	}
	return float64(m.coOccurrence[i][j])
}

// Popular returns the n most frequent items in the training corpus.
func (m *Model) Popular(n int) []Score {
	filter := heap.NewTopKFilter[string, int](n)
	for i := 0; i < m.n; i++ {
		name, _ := m.dict.String(int32(i))
		filter.Push(name, m.dict.Freq(int32(i)))
	}
	names, counts := filter.PopAll()
	scores := make([]Score, 0, len(names))
	for i, name := range names {
		scores = append(scores, Score{Name: name, Score: float64(counts[i])})
	}
	return scores
}

// SimilarItems returns the n items most similar to the given item, or an
// empty list if the name is unknown.
func (m *Model) SimilarItems(name string, n int) []Score {
	id, ok := m.dict.Id(name)
	if !ok {
		log.Logger().Warn("item not found in training data", zap.String("name", name))
		return nil
	}
	filter := heap.NewTopKFilter[string, float32](n)
	for j, v := range m.similarity[id] {
		if int32(j) == id {
			continue
		}
		other, _ := m.dict.String(int32(j))
		filter.Push(other, v)
	}
	names, values := filter.PopAll()
	scores := make([]Score, 0, len(names))
	for i, other := range names {
		scores = append(scores, Score{Name: other, Score: float64(values[i])})
	}
	return scores
}

func newMatrix(n int) [][]float32 {
	m := make([][]float32, n)
	for i := range m {
		m[i] = make([]float32, n)
	}
	return m
}
