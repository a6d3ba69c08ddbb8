/*
Copyright © 2025 Facturanet
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/facturanet/teif/pkg/invoice"
	"github.com/facturanet/teif/pkg/serializer"
	"github.com/facturanet/teif/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate TEIF invoice documents",
		Description: `Validate one or more TEIF invoice documents against the interchange rules.

Each document is checked by six independent rule groups: the interchange
envelope, the message header identifiers, document identification and
dates, the trading partners, the line items, and the totals and tax
summary. All findings are collected; one broken section never hides
problems in another.

A document with findings produces a failed report, not a command error.
The command itself fails only when a document cannot be read at all, or
when --fail-on-error is set and any report failed.

# Examples

Validate a single document:
  teifctl validate -f invoice.json

Validate several documents at once, writing YAML reports to a file:
  teifctl validate -f a.json -f b.yaml --format yaml -o reports.yaml

Fail the command on any finding (useful for CI/CD):
  teifctl validate -f invoice.json --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage: `Path/URI of a TEIF invoice document to validate. Repeatable.
	Supports: file paths and HTTP/HTTPS URLs, in JSON or YAML.`,
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any document fails validation",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			paths := cmd.StringSlice("file")
			failOnError := cmd.Bool("fail-on-error")

			v := validator.New(
				validator.WithVersion(version),
			)

			// Validate documents concurrently; reports keep input order.
			reports := make([]*validator.Report, len(paths))
			g, gctx := errgroup.WithContext(ctx)
			for i, path := range paths {
				g.Go(func() error {
					slog.Info("loading document", "uri", path)

					doc, err := serializer.FromFile[invoice.Invoice](path)
					if err != nil {
						return fmt.Errorf("failed to load document from %q: %w", path, err)
					}

					report, err := v.Validate(gctx, doc)
					if err != nil {
						return fmt.Errorf("failed to validate %q: %w", path, err)
					}
					report.DocumentSource = path
					reports[i] = report
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			output := cmd.String("output")
			ser := serializer.NewFileWriterOrStdout(outFormat, output)
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			failed := 0
			for _, report := range reports {
				if err := ser.Serialize(ctx, report); err != nil {
					return fmt.Errorf("failed to serialize validation report: %w", err)
				}

				slog.Info("validation completed",
					"document", report.DocumentSource,
					"status", report.Summary.Status,
					"violations", report.Summary.Violations,
					"duration", report.Summary.Duration)

				if report.Summary.Status == validator.ValidationStatusFail {
					failed++
				}
			}

			if failOnError && failed > 0 {
				return fmt.Errorf("validation failed: %d of %d document(s) did not pass", failed, len(reports))
			}

			return nil
		},
	}
}
