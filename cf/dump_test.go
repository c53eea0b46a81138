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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRoundTrip(t *testing.T) {
	model := buildTestModel(t)
	path := filepath.Join(t.TempDir(), "models", "cf_model.json")
	require.NoError(t, model.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, model.Count(), loaded.Count())
	assert.Equal(t, model.Catalog(), loaded.Catalog())
	for _, a := range model.Catalog() {
		for _, b := range model.Catalog() {
			assert.InDelta(t, model.Similarity(a, b), loaded.Similarity(a, b), 1e-6)
			assert.InDelta(t, model.CoOccurrence(a, b), loaded.CoOccurrence(a, b), 1e-6)
		}
	}
	// frequency counts survive, so popularity works on a loaded model
	assert.Equal(t, model.Popular(4), loaded.Popular(4))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cf_model.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInconsistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cf_model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"n_items":2,"name_to_index":{"a":0},"index_to_name":{"0":"a"},"co_occurrence_matrix":[[0]],"similarity_matrix":[[0]]}`), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}
