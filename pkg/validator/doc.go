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

// Package validator checks a TEIF invoice document tree against the
// structural and semantic rules of the interchange subset this module
// supports, and reports every violation found.
//
// # Rule groups
//
// Validation runs six independent rule groups in a fixed order: envelope,
// message header, document identification and dates, trading partners,
// line items, and totals and tax. Every group runs on every pass; a
// failure in one group never suppresses findings from another. Violations
// are plain, human-readable strings collected in document order, so two
// passes over the same document always produce the same report.
//
// Violations are data, not errors: a document that breaks every rule still
// validates without a Go error. The only error Validate returns is for a
// nil document, which is a caller bug rather than a document defect.
//
// # Usage
//
//	v := validator.New(validator.WithVersion(buildVersion))
//	report, err := v.Validate(ctx, inv)
//	if err != nil {
//	    return err
//	}
//	if !report.Valid {
//	    for _, violation := range report.Violations {
//	        fmt.Println(violation)
//	    }
//	}
//
// The rule groups are also independently invokable against a shared
// Recorder, which is how the engine itself runs them:
//
//	rec := validator.NewRecorder()
//	validator.CheckPartners(inv, rec)
//	fmt.Println(rec.Violations())
package validator
