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

// Package dataset owns the training-corpus side of the engine: the catalog
// dictionary, the corpus document format and the synthetic group generator.
package dataset

import (
	"os"
	"path/filepath"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goccy/go-json"
	"github.com/juju/errors"
)

// Group is one training group of item names. The model accepts any size; the
// trio recommender works with groups of 3 (query) and 6 (cohesion).
type Group []string

// LoadGroups reads a corpus document: a JSON array of arrays of item names.
func LoadGroups(path string) ([]Group, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	var groups []Group
	if err = json.NewDecoder(file).Decode(&groups); err != nil {
		return nil, errors.Trace(err)
	}
	return groups, nil
}

// SaveGroups writes a corpus document, creating parent directories if needed.
func SaveGroups(path string, groups []Group) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return errors.Trace(err)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer file.Close()
	return errors.Trace(json.NewEncoder(file).Encode(groups))
}

// LoadNames reads a catalog document: a JSON array of item names.
func LoadNames(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	var names []string
	if err = json.NewDecoder(file).Decode(&names); err != nil {
		return nil, errors.Trace(err)
	}
	return names, nil
}

// Distinct returns the sorted set of distinct names across all groups.
func Distinct(groups []Group) []string {
	names := mapset.NewSet[string]()
	for _, group := range groups {
		for _, name := range group {
			names.Add(name)
		}
	}
	sorted := names.ToSlice()
	sort.Strings(sorted)
	return sorted
}
