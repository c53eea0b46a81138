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

	"github.com/goccy/go-json"
	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/troika-io/troika/base/log"
	"github.com/troika-io/troika/dataset"
)

// modelDump is the persisted model document. The reverse map is keyed by
// index; JSON forces the keys through strings, and decoding coerces them back
// to integers.
type modelDump struct {
	NameToIndex  map[string]int32 `json:"name_to_index"`
	IndexToName  map[int32]string `json:"index_to_name"`
	CoOccurrence [][]float32      `json:"co_occurrence_matrix"`
	Similarity   [][]float32      `json:"similarity_matrix"`
	Frequencies  []int            `json:"frequencies"`
	Count        int              `json:"n_items"`
}

// Save writes the model to a single JSON document, creating parent
// directories if needed.
func (m *Model) Save(path string) error {
	nameToIndex := make(map[string]int32, m.n)
	indexToName := make(map[int32]string, m.n)
	frequencies := make([]int, m.n)
	for i := int32(0); int(i) < m.n; i++ {
		name, _ := m.dict.String(i)
		nameToIndex[name] = i
		indexToName[i] = name
		frequencies[i] = m.dict.Freq(i)
	}
	dump := modelDump{
		NameToIndex:  nameToIndex,
		IndexToName:  indexToName,
		CoOccurrence: m.coOccurrence,
		Similarity:   m.similarity,
		Frequencies:  frequencies,
		Count:        m.n,
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return errors.Trace(err)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer file.Close()
	if err = json.NewEncoder(file).Encode(dump); err != nil {
		return errors.Trace(err)
	}
	log.Logger().Info("model saved", zap.String("path", path), zap.Int("n_items", m.n))
	return nil
}

// Load reads a model from a JSON document written by Save. Index maps
// round-trip exactly; matrix values round-trip within float tolerance.
func Load(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	var dump modelDump
	if err = json.NewDecoder(file).Decode(&dump); err != nil {
		return nil, errors.Trace(err)
	}
	if len(dump.IndexToName) != dump.Count || len(dump.NameToIndex) != dump.Count {
		return nil, errors.NotValidf("model dump with %d names for %d items",
			len(dump.IndexToName), dump.Count)
	}
	if len(dump.CoOccurrence) != dump.Count || len(dump.Similarity) != dump.Count {
		return nil, errors.NotValidf("model dump with truncated matrices")
	}
	names := make([]string, dump.Count)
	for id, name := range dump.IndexToName {
		if id < 0 || int(id) >= dump.Count {
			return nil, errors.NotValidf("index %d out of range [0, %d)", id, dump.Count)
		}
		names[id] = name
	}
	model := &Model{
		dict:         dataset.DictFrom(names, dump.Frequencies),
		coOccurrence: dump.CoOccurrence,
		similarity:   dump.Similarity,
		n:            dump.Count,
	}
	log.Logger().Info("model loaded", zap.String("path", path), zap.Int("n_items", model.n))
	return model, nil
}
