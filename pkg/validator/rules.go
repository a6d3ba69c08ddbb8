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
	"github.com/facturanet/teif/pkg/codes"
	"github.com/facturanet/teif/pkg/invoice"
)

// CheckEnvelope verifies the interchange envelope: the TEIF version and
// the controlling agency must equal their fixed values.
func CheckEnvelope(doc *invoice.Invoice, rec *Recorder) {
	if doc.Version != codes.Version {
		rec.Recordf("envelope: version must be %q, got %q", codes.Version, doc.Version)
	}
	if doc.ControllingAgency != codes.ControllingAgency {
		rec.Recordf("envelope: controlling agency must be %q, got %q", codes.ControllingAgency, doc.ControllingAgency)
	}
}

// CheckHeader verifies the message header: sender and receiver identifiers
// must be present and match the tax identifier format. An entirely absent
// header yields a single violation and ends this group; the two
// identifiers are otherwise checked independently of each other.
func CheckHeader(doc *invoice.Invoice, rec *Recorder) {
	if doc.Header == nil {
		rec.Record("header: invoice header is missing")
		return
	}

	checkPartyID(rec, "sender", doc.SenderValue())
	checkPartyID(rec, "receiver", doc.ReceiverValue())
}

func checkPartyID(rec *Recorder, role, value string) {
	if value == "" {
		rec.Recordf("header: %s identifier is required", role)
		return
	}
	if !IsValidTaxID(value) {
		rec.Recordf("header: %s identifier %q does not match tax identifier format %s", role, value, TaxIDFormat)
	}
}

// CheckIdentification verifies document identification and dates: the Bgm
// document identifier, the invoice document type code, and the presence of
// an issue date entry. The three checks are independent; a missing Bgm
// block fails both of its checks rather than aborting the group.
func CheckIdentification(doc *invoice.Invoice, rec *Recorder) {
	var documentID, typeCode string
	if doc.Bgm != nil {
		documentID = doc.Bgm.DocumentID
		if doc.Bgm.DocumentType != nil {
			typeCode = doc.Bgm.DocumentType.Code
		}
	}

	if documentID == "" {
		rec.Record("bgm: document identifier is required")
	}
	if typeCode != codes.DocumentTypeInvoice {
		rec.Recordf("bgm: document type code must be %q (invoice), got %q", codes.DocumentTypeInvoice, typeCode)
	}

	// An absent Dtm list and a list without an issue date are equivalent.
	if !doc.HasDate(codes.DateIssue) {
		rec.Recordf("dtm: issue date entry with function code %q is required", codes.DateIssue)
	}
}

// CheckPartners verifies the trading partner section: at least two partner
// records, with the supplier and buyer roles both present and fully
// identified. When the section holds fewer than two records there is
// nothing further to meaningfully validate and the group ends after a
// single violation. Duplicate roles are tolerated: only the first record
// with a given function code is inspected.
func CheckPartners(doc *invoice.Invoice, rec *Recorder) {
	if len(doc.Partners()) < 2 {
		rec.Record("partners: at least 2 partner records are required")
		return
	}

	checkPartnerRole(doc, rec, "supplier", codes.PartnerSupplier)
	checkPartnerRole(doc, rec, "buyer", codes.PartnerBuyer)
}

func checkPartnerRole(doc *invoice.Invoice, rec *Recorder, role, functionCode string) {
	partner := doc.FindPartner(functionCode)
	if partner == nil {
		rec.Recordf("partners: %s with function code %q is required", role, functionCode)
		return
	}
	if partner.Nad.IDValue() == "" || partner.Nad.NameValue() == "" {
		rec.Recordf("partners: %s identification requires both partner identifier and name", role)
	}
}

// CheckLines verifies the line items nested in the first line section:
// the collection must be non-empty, and every line must carry an item
// identifier and description, a positive quantity, and a non-negative
// unit price. Lines are reported by 1-based position; every line is
// checked regardless of earlier findings, and one line can contribute up
// to three violations.
func CheckLines(doc *invoice.Invoice, rec *Recorder) {
	lines := doc.Lines()
	if len(lines) == 0 {
		rec.Record("lin: at least one line item is required")
		return
	}

	for i, line := range lines {
		pos := i + 1
		if line.ItemID == "" || line.Description == "" {
			rec.Recordf("lin: line %d: item identifier and description are required", pos)
		}
		if line.Quantity == nil || *line.Quantity <= 0 {
			rec.Recordf("lin: line %d: quantity must be a positive number", pos)
		}
		if line.UnitPrice == nil || *line.UnitPrice < 0 {
			rec.Recordf("lin: line %d: unit price must not be negative", pos)
		}
	}
}

// CheckTotalsAndTax verifies the monetary amounts and the tax summary.
// The two required totals are searched independently, both searches run
// even when one fails, and the tax checks run regardless of the state of
// the amount details.
func CheckTotalsAndTax(doc *invoice.Invoice, rec *Recorder) {
	if doc.Moa == nil || doc.Moa.AmountDetails == nil {
		rec.Record("moa: amount details are required")
	} else {
		if doc.FindAmount(codes.AmountTotalWithoutTax) == nil {
			rec.Recordf("moa: total excluding tax (amount type %q) is required", codes.AmountTotalWithoutTax)
		}
		if doc.FindAmount(codes.AmountTotalWithTax) == nil {
			rec.Recordf("moa: total including tax (amount type %q) is required", codes.AmountTotalWithTax)
		}
	}

	if doc.Tax == nil {
		rec.Record("tax: tax section is missing")
	} else if doc.Tax.TaxTypeCode != codes.TaxTypeVAT {
		rec.Recordf("tax: tax type code must be %q (VAT), got %q", codes.TaxTypeVAT, doc.Tax.TaxTypeCode)
	}
}
