// Copyright (c) 2025, Facturanet.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validator

import (
	"time"

	"github.com/facturanet/teif/pkg/header"
)

// ValidationStatus represents the overall validation outcome.
type ValidationStatus string

const (
	// ValidationStatusPass indicates the document satisfied every rule.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates one or more rules were violated.
	ValidationStatusFail ValidationStatus = "fail"
)

// Report represents the complete outcome of one validation pass. A Report
// is immutable once returned: the engine never retains a reference to it.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// DocumentSource is the path/URI the document was loaded from, when
	// the caller supplied one.
	DocumentSource string `json:"documentSource,omitempty" yaml:"documentSource,omitempty"`

	// Valid is true if and only if Violations is empty.
	Valid bool `json:"valid" yaml:"valid"`

	// Summary contains aggregate validation statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Violations lists every rule violation in rule-group-then-traversal
	// order. Empty for a conformant document.
	Violations []string `json:"violations" yaml:"violations"`
}

// Summary contains aggregate statistics about one validation pass.
type Summary struct {
	// Violations is the number of rule violations found.
	Violations int `json:"violations" yaml:"violations"`

	// Status is the overall validation status.
	Status ValidationStatus `json:"status" yaml:"status"`

	// Duration is how long the validation pass took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewReport creates a new Report with initialized slices.
func NewReport() *Report {
	return &Report{
		Violations: make([]string, 0),
	}
}
