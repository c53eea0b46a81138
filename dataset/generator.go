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

package dataset

import (
	"math/rand"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goccy/go-json"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// Archetype is a hand-authored group template: a core of members that define
// the archetype and a flex list of common companions. Weight controls how
// often the archetype is sampled relative to its siblings; all-zero weights
// mean uniform sampling.
type Archetype struct {
	Name   string   `json:"name"`
	Core   []string `json:"core"`
	Flex   []string `json:"flex"`
	Weight float64  `json:"weight"`
}

// LoadArchetypes reads an archetype document: a JSON array of archetypes.
func LoadArchetypes(path string) ([]Archetype, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	var archetypes []Archetype
	if err = json.NewDecoder(file).Decode(&archetypes); err != nil {
		return nil, errors.Trace(err)
	}
	return archetypes, nil
}

// Generator produces synthetic training groups from archetype templates.
// It is a data provider only: the similarity model never depends on it.
type Generator struct {
	catalog    []string
	archetypes []Archetype
	rng        *rand.Rand
}

// NewGenerator creates a generator over a catalog of names. The same seed
// always produces the same corpus.
func NewGenerator(catalog []string, archetypes []Archetype, seed int64) (*Generator, error) {
	if len(catalog) == 0 {
		return nil, errors.NotValidf("empty catalog")
	}
	if len(archetypes) == 0 {
		return nil, errors.NotValidf("empty archetype list")
	}
	for _, archetype := range archetypes {
		if len(archetype.Core) < 2 {
			return nil, errors.NotValidf("archetype %q needs at least 2 core members", archetype.Name)
		}
	}
	return &Generator{
		catalog:    catalog,
		archetypes: archetypes,
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

// Group generates one group of the given size from a weight-sampled archetype.
func (g *Generator) Group(size int) Group {
	return g.GroupFrom(g.pick(), size)
}

// GroupFrom generates one group of the given size from a specific archetype:
// 2-3 core members first, then flex companions (80% of the time), then random
// catalog members for any slots still open.
func (g *Generator) GroupFrom(archetype Archetype, size int) Group {
	numCore := 2 + g.rng.Intn(min(3, len(archetype.Core))-1)
	group := Group(g.sample(archetype.Core, min(numCore, size)))
	members := mapset.NewSet[string](group...)

	remaining := size - len(group)
	flex := lo.Filter(archetype.Flex, func(name string, _ int) bool {
		return !members.Contains(name)
	})
	if g.rng.Float64() < 0.8 && len(flex) >= remaining {
		group = append(group, g.sample(flex, remaining)...)
		return group
	}
	picked := g.sample(flex, min(remaining, len(flex)))
	group = append(group, picked...)
	members.Append(picked...)
	if still := size - len(group); still > 0 {
		available := lo.Filter(g.catalog, func(name string, _ int) bool {
			return !members.Contains(name)
		})
		group = append(group, g.sample(available, min(still, len(available)))...)
	}
	return group
}

// Dataset generates n groups of the given size.
func (g *Generator) Dataset(n, size int) []Group {
	groups := make([]Group, 0, n)
	for i := 0; i < n; i++ {
		groups = append(groups, g.Group(size))
	}
	return groups
}

// sample picks n distinct elements from the pool.
func (g *Generator) sample(pool []string, n int) []string {
	picked := make([]string, 0, n)
	for _, i := range g.rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[i])
	}
	return picked
}

// pick samples an archetype proportionally to its weight.
func (g *Generator) pick() Archetype {
	var total float64
	for _, archetype := range g.archetypes {
		total += archetype.Weight
	}
	if total == 0 {
		return g.archetypes[g.rng.Intn(len(g.archetypes))]
	}
	r := g.rng.Float64() * total
	for _, archetype := range g.archetypes {
		r -= archetype.Weight
		if r < 0 {
			return archetype
		}
	}
	return g.archetypes[len(g.archetypes)-1]
}
