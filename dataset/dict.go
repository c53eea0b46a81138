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

// Dict is a bijection between item names and dense indices in [0, Count).
// It also tracks how often each item has been counted, which backs the
// popularity query of the model.
type Dict struct {
	si  map[string]int32
	is  []string
	cnt []int
}

func NewDict() *Dict {
	return &Dict{si: map[string]int32{}}
}

// DictFrom rebuilds a dictionary from an ordered name slice and optional
// frequency counts. Used when a model dump is loaded from disk.
func DictFrom(names []string, counts []int) *Dict {
	d := NewDict()
	for _, name := range names {
		d.Put(name)
	}
	if len(counts) == len(names) {
		copy(d.cnt, counts)
	}
	return d
}

func (d *Dict) Count() int {
	return len(d.is)
}

// Put assigns an index to a name without counting an occurrence.
func (d *Dict) Put(s string) int32 {
	if y, ok := d.si[s]; ok {
		return y
	}
	y := int32(len(d.is))
	d.si[s] = y
	d.is = append(d.is, s)
	d.cnt = append(d.cnt, 0)
	return y
}

// Add assigns an index to a name and counts one occurrence.
func (d *Dict) Add(s string) int32 {
	if y, ok := d.si[s]; ok {
		d.cnt[y]++
		return y
	}
	y := d.Put(s)
	d.cnt[y] = 1
	return y
}

// Id returns the index of a name. The second return value reports whether the
// name is present.
func (d *Dict) Id(s string) (int32, bool) {
	y, ok := d.si[s]
	return y, ok
}

func (d *Dict) String(id int32) (string, bool) {
	if id < 0 || int(id) >= len(d.is) {
		return "", false
	}
	return d.is[id], true
}

func (d *Dict) Freq(id int32) int {
	if id < 0 || int(id) >= len(d.cnt) {
		return 0
	}
	return d.cnt[id]
}

// Names returns all names in index order.
func (d *Dict) Names() []string {
	names := make([]string, len(d.is))
	copy(names, d.is)
	return names
}
