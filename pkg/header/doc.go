/*
Copyright © 2025 Facturanet
SPDX-License-Identifier: Apache-2.0
*/

// Package header provides the common resource envelope for artifacts this
// module emits (sample invoices, validation reports).
//
// The Header type carries Kind, APIVersion, and a small metadata map
// (timestamp, tool version, artifact id) so that emitted files are
// self-describing and can be told apart after the fact:
//
//	{
//	  "kind": "ValidationReport",
//	  "apiVersion": "teif.facturanet.io/v1alpha1",
//	  "metadata": {
//	    "id": "7d444840-9dc0-11d1-b245-5ffdce74fad2",
//	    "timestamp": "2025-08-19T10:30:00Z",
//	    "version": "v0.3.0"
//	  }
//	}
package header
