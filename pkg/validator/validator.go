/*
Copyright © 2025 Facturanet
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"log/slog"
	"time"

	"github.com/facturanet/teif/pkg/errors"
	"github.com/facturanet/teif/pkg/header"
	"github.com/facturanet/teif/pkg/invoice"
)

const (
	// APIVersion is the API version for validation reports.
	APIVersion = "teif.facturanet.io/v1alpha1"
)

// ruleGroup is one independently runnable region check. Groups only
// communicate through the shared Recorder within a single pass.
type ruleGroup struct {
	name  string
	check func(*invoice.Invoice, *Recorder)
}

// ruleGroups lists every rule group in its fixed execution order. The
// order is part of the report contract: it determines violation ordering.
var ruleGroups = []ruleGroup{
	{name: "envelope", check: CheckEnvelope},
	{name: "header", check: CheckHeader},
	{name: "identification", check: CheckIdentification},
	{name: "partners", check: CheckPartners},
	{name: "lines", check: CheckLines},
	{name: "totals-tax", check: CheckTotalsAndTax},
}

// Validator evaluates TEIF documents against the interchange rules. It is
// stateless across calls: every Validate invocation uses a fresh Recorder,
// so a single Validator may be shared by concurrent passes over
// independent documents.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every rule group against the document and returns the
// complete report. The document is never mutated and a malformed or
// partial tree never causes an error: structural absence is reported as a
// violation. The only error case is a nil document, which is a caller
// bug. Context is accepted for interface symmetry; a pass is bounded and
// performs no I/O, so it is never interrupted mid-run.
func (v *Validator) Validate(ctx context.Context, doc *invoice.Invoice) (*Report, error) {
	start := time.Now()

	if doc == nil {
		validationTotal.WithLabelValues("error").Inc()
		return nil, errors.New(errors.ErrCodeInvalidRequest, "document cannot be nil")
	}

	rec := NewRecorder()
	for _, group := range ruleGroups {
		before := rec.Count()
		group.check(doc, rec)
		if found := rec.Count() - before; found > 0 {
			slog.Debug("rule group found violations",
				"group", group.name,
				"violations", found)
		}
	}

	report := NewReport()
	report.Init(header.KindValidationReport, APIVersion, v.Version)
	report.Violations = rec.Violations()
	report.Valid = len(report.Violations) == 0

	report.Summary.Violations = len(report.Violations)
	report.Summary.Duration = time.Since(start)
	if report.Valid {
		report.Summary.Status = ValidationStatusPass
	} else {
		report.Summary.Status = ValidationStatusFail
	}

	validationDuration.Observe(report.Summary.Duration.Seconds())
	validationTotal.WithLabelValues(string(report.Summary.Status)).Inc()
	violationCount.Set(float64(report.Summary.Violations))

	slog.Debug("validation completed",
		"status", report.Summary.Status,
		"violations", report.Summary.Violations,
		"duration", report.Summary.Duration)

	return report, nil
}
