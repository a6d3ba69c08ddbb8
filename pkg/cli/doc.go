/*
Copyright © 2025 Facturanet
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the teifctl command line interface: validating
// TEIF invoice documents, emitting a reference document, and listing the
// controlled code vocabularies.
package cli
