/*
Copyright © 2025 Facturanet
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestCodesCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "codes.json")

	cmd := codesCmd()
	if err := cmd.Run(context.Background(), []string{"codes", "-o", outPath}); err != nil {
		t.Fatalf("codes failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var vocabularies map[string][]string
	if err := json.Unmarshal(data, &vocabularies); err != nil {
		t.Fatal(err)
	}
	if len(vocabularies) != 5 {
		t.Errorf("got %d vocabularies, want 5", len(vocabularies))
	}
	if len(vocabularies["partnerFunction"]) == 0 {
		t.Error("expected partner function codes")
	}
}

func TestCodesCommandSingleCategory(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "codes.json")

	cmd := codesCmd()
	if err := cmd.Run(context.Background(), []string{"codes", "-c", "taxType", "-o", outPath}); err != nil {
		t.Fatalf("codes failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var vocabularies map[string][]string
	if err := json.Unmarshal(data, &vocabularies); err != nil {
		t.Fatal(err)
	}
	if len(vocabularies) != 1 {
		t.Errorf("got %d vocabularies, want 1", len(vocabularies))
	}
}

func TestCodesCommandUnknownCategory(t *testing.T) {
	cmd := codesCmd()
	if err := cmd.Run(context.Background(), []string{"codes", "-c", "bogus"}); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
