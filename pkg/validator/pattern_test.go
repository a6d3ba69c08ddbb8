/*
Copyright © 2025 Facturanet
SPDX-License-Identifier: Apache-2.0
*/

package validator

import "testing"

func TestIsValidTaxID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"canonical", "1234567A/B/M/000", true},
		{"other letters", "7654321P/B/N/000", true},
		{"empty", "", false},
		{"too few digits", "123456A/B/M/000", false},
		{"too many digits", "12345678A/B/M/000", false},
		{"lowercase letter", "1234567a/B/M/000", false},
		{"missing slashes", "1234567ABM000", false},
		{"short suffix", "1234567A/B/M/00", false},
		{"trailing garbage", "1234567A/B/M/000X", false},
		{"leading garbage", "X1234567A/B/M/000", false},
		{"letter in suffix", "1234567A/B/M/0A0", false},
		{"digit as letter", "1234567A/1/M/000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTaxID(tt.id); got != tt.want {
				t.Errorf("IsValidTaxID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
