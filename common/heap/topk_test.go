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

package heap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopKFilter(t *testing.T) {
	filter := NewTopKFilter[string, int](5)
	for i := 0; i < 100; i++ {
		filter.Push(strconv.Itoa(i), i)
	}
	items, weights := filter.PopAll()
	assert.Equal(t, []string{"99", "98", "97", "96", "95"}, items)
	assert.Equal(t, []int{99, 98, 97, 96, 95}, weights)
}

func TestTopKFilterUnderfill(t *testing.T) {
	filter := NewTopKFilter[string, float32](10)
	filter.Push("a", 0.5)
	filter.Push("b", 1.5)
	items, weights := filter.PopAll()
	assert.Equal(t, []string{"b", "a"}, items)
	assert.Equal(t, []float32{1.5, 0.5}, weights)
}

func TestTopKFilterEmpty(t *testing.T) {
	filter := NewTopKFilter[string, int](0)
	filter.Push("a", 1)
	items, weights := filter.PopAll()
	assert.Empty(t, items)
	assert.Empty(t, weights)
}
