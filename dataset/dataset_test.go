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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsRoundTrip(t *testing.T) {
	groups := []Group{
		{"a", "b", "c"},
		{"a", "b", "d"},
	}
	path := filepath.Join(t.TempDir(), "sub", "corpus.json")
	require.NoError(t, SaveGroups(path, groups))
	loaded, err := LoadGroups(path)
	require.NoError(t, err)
	assert.Equal(t, groups, loaded)
}

func TestLoadGroupsMissing(t *testing.T) {
	_, err := LoadGroups(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadGroupsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := LoadGroups(path)
	assert.Error(t, err)
}

func TestLoadNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`["a","b","c"]`), 0644))
	names, err := LoadNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestDistinct(t *testing.T) {
	groups := []Group{
		{"d", "b", "c"},
		{"a", "b", "d"},
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, Distinct(groups))
	assert.Empty(t, Distinct(nil))
}
