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

// Package logics implements the trio-completion search on top of the
// collaborative filtering model.
package logics

import (
	"sort"

	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/troika-io/troika/cf"
	"github.com/troika-io/troika/config"
)

// TeamSize is the number of items the caller selects and the number the
// recommender completes with, so a scored full group has 2*TeamSize members.
const TeamSize = 3

// Recommendation is one candidate completion trio. CompositeScore is a pure
// function of the other two scores, fixed at creation.
type Recommendation struct {
	Trio           []string
	CFScore        float64
	TeamCohesion   float64
	CompositeScore float64
}

// TrioRecommender recommends completion trios for a partially chosen team.
type TrioRecommender struct {
	snapshot *cf.Snapshot
	cfg      config.RecommendConfig
}

func NewTrioRecommender(snapshot *cf.Snapshot, cfg config.RecommendConfig) *TrioRecommender {
	return &TrioRecommender{snapshot: snapshot, cfg: cfg}
}

// Recommend returns the topK best completion trios for a team of exactly
// TeamSize items. Candidates come from the poolSize items with the highest
// aggregate similarity to the team, and every unordered 3-combination of the
// pool is evaluated: the best individually-similar items are not necessarily
// the best group together. A pool that resolves to fewer than 3 candidates
// yields an empty list, not an error.
func (r *TrioRecommender) Recommend(team []string, topK, poolSize int) ([]Recommendation, error) {
	if len(team) != TeamSize {
		return nil, errors.NotValidf("input team with %d members instead of %d", len(team), TeamSize)
	}
	if topK < 0 {
		return nil, errors.NotValidf("top k %d", topK)
	}
	// C(poolSize, 3) trios are evaluated below. The cap keeps a single call
	// from running unboundedly long.
	if poolSize < 0 || poolSize > r.cfg.MaxPoolSize {
		return nil, errors.NotValidf("pool size %d outside [0, %d]", poolSize, r.cfg.MaxPoolSize)
	}
	model := r.snapshot.Load()
	if model == nil {
		return nil, errors.NotFoundf("trained model")
	}

	pool, _ := model.AggregateScores(team, team, poolSize)
	candidates := lo.Map(pool, func(score cf.Score, _ int) string {
		return score.Name
	})

	recommendations := make([]Recommendation, 0)
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			for k := j + 1; k < len(candidates); k++ {
				trio := []string{candidates[i], candidates[j], candidates[k]}
				recommendations = append(recommendations, r.evaluate(model, team, trio))
			}
		}
	}
	// Stable sort keeps tied trios in enumeration order of the candidate
	// pool.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].CompositeScore > recommendations[j].CompositeScore
	})
	if len(recommendations) > topK {
		recommendations = recommendations[:topK]
	}
	return recommendations, nil
}

// evaluate scores one candidate trio against the team.
func (r *TrioRecommender) evaluate(model *cf.Model, team, trio []string) Recommendation {
	var cfScore float64
	for _, candidate := range trio {
		var affinity float64
		for _, member := range team {
			affinity += model.Similarity(candidate, member)
		}
		cfScore += affinity / float64(len(team))
	}
	cfScore /= float64(len(trio))

	group := make([]string, 0, len(team)+len(trio))
	group = append(group, team...)
	group = append(group, trio...)
	cohesion, _ := model.GroupCohesion(group)

	return Recommendation{
		Trio:           trio,
		CFScore:        cfScore,
		TeamCohesion:   cohesion,
		CompositeScore: r.cfg.CFWeight*cfScore + r.cfg.CohesionWeight*cohesion,
	}
}
