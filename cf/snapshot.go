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
	"go.uber.org/atomic"
)

// Snapshot holds the currently active model. A rebuild constructs a complete
// new model and publishes it here; readers that loaded the previous model
// finish against that snapshot. The matrices themselves are never mutated in
// place.
type Snapshot struct {
	model atomic.Pointer[Model]
}

// NewSnapshot creates a holder. The initial model may be nil (unbuilt state).
func NewSnapshot(model *Model) *Snapshot {
	s := &Snapshot{}
	s.model.Store(model)
	return s
}

// Store atomically publishes a new model.
func (s *Snapshot) Store(model *Model) {
	s.model.Store(model)
}

// Load returns the active model, or nil if none has been published.
func (s *Snapshot) Load() *Model {
	return s.model.Load()
}
