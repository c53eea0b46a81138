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
	"fmt"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, seed int64) *Generator {
	catalog := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		catalog = append(catalog, fmt.Sprintf("item%02d", i))
	}
	archetypes := []Archetype{
		{Name: "balance", Core: []string{"item00", "item01", "item02"}, Flex: []string{"item03", "item04", "item05", "item06"}, Weight: 0.6},
		{Name: "offense", Core: []string{"item07", "item08"}, Flex: []string{"item09", "item10", "item11"}, Weight: 0.4},
	}
	generator, err := NewGenerator(catalog, archetypes, seed)
	require.NoError(t, err)
	return generator
}

func TestGeneratorGroupSize(t *testing.T) {
	generator := newTestGenerator(t, 42)
	for i := 0; i < 100; i++ {
		group := generator.Group(6)
		assert.Len(t, group, 6)
		// members are distinct
		assert.Equal(t, 6, mapset.NewSet[string](group...).Cardinality())
	}
}

func TestGeneratorCoreMembers(t *testing.T) {
	generator := newTestGenerator(t, 42)
	core := mapset.NewSet[string]("item00", "item01", "item02")
	for i := 0; i < 100; i++ {
		group := generator.GroupFrom(generator.archetypes[0], 6)
		fromCore := 0
		for _, name := range group {
			if core.Contains(name) {
				fromCore++
			}
		}
		assert.GreaterOrEqual(t, fromCore, 2)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	a := newTestGenerator(t, 7).Dataset(50, 6)
	b := newTestGenerator(t, 7).Dataset(50, 6)
	assert.Equal(t, a, b)
	c := newTestGenerator(t, 8).Dataset(50, 6)
	assert.NotEqual(t, a, c)
}

func TestGeneratorValidation(t *testing.T) {
	_, err := NewGenerator(nil, []Archetype{{Core: []string{"a", "b"}}}, 0)
	assert.Error(t, err)
	_, err = NewGenerator([]string{"a"}, nil, 0)
	assert.Error(t, err)
	_, err = NewGenerator([]string{"a"}, []Archetype{{Name: "thin", Core: []string{"a"}}}, 0)
	assert.Error(t, err)
}

func TestLoadArchetypes(t *testing.T) {
	_, err := LoadArchetypes("missing.json")
	assert.Error(t, err)
}
