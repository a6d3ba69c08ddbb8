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

	"github.com/facturanet/teif/pkg/codes"
	"github.com/facturanet/teif/pkg/serializer"
)

func codesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "codes",
		EnableShellCompletion: true,
		Usage:                 "List the controlled code vocabularies",
		Description: `List the controlled code vocabularies the validator understands.

Without a category, all vocabularies are listed. With one, only that
category's permitted codes.

# Examples

List everything:
  teifctl codes

List the permitted amount type codes:
  teifctl codes --category amountType`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "Limit output to one vocabulary category",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			selected := codes.Categories()
			if c := cmd.String("category"); c != "" {
				category := codes.Category(c)
				if !category.IsValid() {
					return fmt.Errorf("unknown category: %q", c)
				}
				selected = []codes.Category{category}
			}

			vocabularies := make(map[string][]string, len(selected))
			for _, category := range selected {
				vocabularies[category.String()] = codes.Allowed(category)
			}

			output := cmd.String("output")
			ser := serializer.NewFileWriterOrStdout(outFormat, output)
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, vocabularies)
		},
	}
}
