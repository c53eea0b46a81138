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

// ResolutionState reports how much of a name list resolved against the
// trained catalog.
type ResolutionState int

const (
	// ResolutionNone means no name resolved.
	ResolutionNone ResolutionState = iota
	// ResolutionPartial means some, but not all, names resolved.
	ResolutionPartial
	// ResolutionFull means every name resolved.
	ResolutionFull
)

func (s ResolutionState) String() string {
	switch s {
	case ResolutionNone:
		return "none"
	case ResolutionPartial:
		return "partial"
	case ResolutionFull:
		return "full"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving item names to catalog indices.
// Unknown names never abort a computation; they are reported here so callers
// can decide whether partial results are acceptable.
type Resolution struct {
	Indices []int32
	Unknown []string
}

func (r Resolution) State() ResolutionState {
	switch {
	case len(r.Indices) == 0:
		return ResolutionNone
	case len(r.Unknown) > 0:
		return ResolutionPartial
	default:
		return ResolutionFull
	}
}
