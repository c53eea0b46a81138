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

package cf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/troika-io/troika/dataset"
)

func TestSnapshotSwap(t *testing.T) {
	snapshot := NewSnapshot(nil)
	assert.Nil(t, snapshot.Load())

	first := buildTestModel(t)
	snapshot.Store(first)
	assert.Same(t, first, snapshot.Load())

	// a reader holding the old model is unaffected by a rebuild
	reader := snapshot.Load()
	second, err := Build([]dataset.Group{{"X", "Y", "Z"}})
	require.NoError(t, err)
	snapshot.Store(second)
	assert.Same(t, first, reader)
	assert.Same(t, second, snapshot.Load())
}
