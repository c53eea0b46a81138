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

package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	a := []float32{1, 2, 3}
	Zero(a)
	assert.Equal(t, []float32{0, 0, 0}, a)
}

func TestSum(t *testing.T) {
	assert.Equal(t, float32(6), Sum([]float32{1, 2, 3}))
	assert.Equal(t, float32(0), Sum(nil))
}

func TestAdd(t *testing.T) {
	a := []float32{1, 2, 3}
	Add(a, []float32{10, 20, 30})
	assert.Equal(t, []float32{11, 22, 33}, a)
	assert.Panics(t, func() { Add(a, []float32{1}) })
}

func TestMulConst(t *testing.T) {
	a := []float32{1, 2, 3}
	MulConst(a, 2)
	assert.Equal(t, []float32{2, 4, 6}, a)
}

func TestMulConstTo(t *testing.T) {
	a := []float32{1, 2, 3}
	dst := make([]float32, 3)
	MulConstTo(a, 0.5, dst)
	assert.Equal(t, []float32{0.5, 1, 1.5}, dst)
	assert.Equal(t, []float32{1, 2, 3}, a)
	assert.Panics(t, func() { MulConstTo(a, 1, nil) })
}

func TestDot(t *testing.T) {
	assert.Equal(t, float32(32), Dot([]float32{1, 2, 3}, []float32{4, 5, 6}))
	assert.Panics(t, func() { Dot([]float32{1}, []float32{1, 2}) })
}

func TestNorm(t *testing.T) {
	assert.Equal(t, float32(5), Norm([]float32{3, 4}))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1, Cosine([]float32{1, 2}, []float32{2, 4}), 1e-6)
	assert.InDelta(t, 0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-6)
	// zero vectors are similar to nothing
	assert.Equal(t, float32(0), Cosine([]float32{0, 0}, []float32{1, 2}))
	assert.Equal(t, float32(0), Cosine([]float32{0, 0}, []float32{0, 0}))
}
