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

	"github.com/facturanet/teif/pkg/invoice"
	"github.com/facturanet/teif/pkg/serializer"
)

func sampleCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sample",
		EnableShellCompletion: true,
		Usage:                 "Emit a reference TEIF invoice document",
		Description: `Emit a complete, conformant TEIF invoice document.

The emitted document passes all validation rule groups as-is; edit it to
exercise specific rules, or use it as a starting point for integration
tests.

# Examples

Write the reference document to a file:
  teifctl sample -o invoice.json

Emit it as YAML:
  teifctl sample --format yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			output := cmd.String("output")
			ser := serializer.NewFileWriterOrStdout(outFormat, output)
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, invoice.Sample()); err != nil {
				return fmt.Errorf("failed to serialize sample document: %w", err)
			}
			return nil
		},
	}
}
