/*
Copyright © 2025 Facturanet
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturanet/teif/pkg/invoice"
)

func runGroup(group func(*invoice.Invoice, *Recorder), doc *invoice.Invoice) []string {
	rec := NewRecorder()
	group(doc, rec)
	return rec.Violations()
}

func TestCheckEnvelope(t *testing.T) {
	assert.Empty(t, runGroup(CheckEnvelope, invoice.Sample()))

	got := runGroup(CheckEnvelope, &invoice.Invoice{Version: "1.0", ControllingAgency: "XXX"})
	require.Len(t, got, 2)
	assert.Equal(t, `envelope: version must be "2.0", got "1.0"`, got[0])
	assert.Equal(t, `envelope: controlling agency must be "TTN", got "XXX"`, got[1])
}

func TestCheckHeaderShortCircuit(t *testing.T) {
	// A missing header yields one violation, not one per party.
	got := runGroup(CheckHeader, &invoice.Invoice{})
	require.Len(t, got, 1)
	assert.Equal(t, "header: invoice header is missing", got[0])
}

func TestCheckHeaderPartyIdentifiers(t *testing.T) {
	doc := invoice.Sample()
	doc.Header.Sender = nil
	doc.Header.Receiver.Value = "7654321PBN000"

	got := runGroup(CheckHeader, doc)
	require.Len(t, got, 2)
	assert.Equal(t, "header: sender identifier is required", got[0])
	assert.Equal(t, `header: receiver identifier "7654321PBN000" does not match tax identifier format 9999999L/L/L/999`, got[1])
}

func TestCheckIdentification(t *testing.T) {
	// A missing Bgm fires both the identifier and type code checks; they
	// are independent.
	got := runGroup(CheckIdentification, &invoice.Invoice{})
	require.Len(t, got, 3)
	assert.Equal(t, "bgm: document identifier is required", got[0])
	assert.Equal(t, `bgm: document type code must be "380" (invoice), got ""`, got[1])
	assert.Equal(t, `dtm: issue date entry with function code "137" is required`, got[2])

	doc := invoice.Sample()
	doc.Bgm.DocumentType.Code = "381"
	got = runGroup(CheckIdentification, doc)
	require.Len(t, got, 1)
	assert.Equal(t, `bgm: document type code must be "380" (invoice), got "381"`, got[0])
}

func TestCheckIdentificationDateFunctionCode(t *testing.T) {
	// A Dtm list with entries but no issue date entry behaves like an
	// absent list.
	doc := invoice.Sample()
	doc.Dtm = []invoice.Dtm{{FunctionCode: "35", Format: "DDMMYY", DateText: "200825"}}

	got := runGroup(CheckIdentification, doc)
	require.Len(t, got, 1)
	assert.Equal(t, `dtm: issue date entry with function code "137" is required`, got[0])
}

func TestCheckPartners(t *testing.T) {
	t.Run("too few records ends the group", func(t *testing.T) {
		doc := invoice.Sample()
		doc.PartnerSection.Partners = doc.PartnerSection.Partners[:1]

		got := runGroup(CheckPartners, doc)
		require.Len(t, got, 1)
		assert.Equal(t, "partners: at least 2 partner records are required", got[0])
	})

	t.Run("missing identification on a role", func(t *testing.T) {
		doc := invoice.Sample()
		doc.PartnerSection.Partners[1].Nad.Name = nil

		got := runGroup(CheckPartners, doc)
		require.Len(t, got, 1)
		assert.Equal(t, "partners: buyer identification requires both partner identifier and name", got[0])
	})

	t.Run("duplicate role uses first match", func(t *testing.T) {
		doc := invoice.Sample()
		broken := doc.PartnerSection.Partners[0]
		broken.Nad = nil
		// Append a second, broken supplier: the first intact one wins.
		doc.PartnerSection.Partners = append(doc.PartnerSection.Partners, broken)

		assert.Empty(t, runGroup(CheckPartners, doc))
	})
}

func TestCheckLines(t *testing.T) {
	t.Run("no lines ends the group", func(t *testing.T) {
		got := runGroup(CheckLines, &invoice.Invoice{})
		require.Len(t, got, 1)
		assert.Equal(t, "lin: at least one line item is required", got[0])
	})

	t.Run("per line findings name the position", func(t *testing.T) {
		zero := 0.0
		doc := &invoice.Invoice{
			LinSections: []invoice.LinSection{{Lin: []invoice.LineItem{
				{ItemID: "A", Description: "ok"},
				{Description: "no id", Quantity: &zero},
			}}},
		}

		got := runGroup(CheckLines, doc)
		require.Len(t, got, 5)
		assert.Equal(t, "lin: line 1: quantity must be a positive number", got[0])
		assert.Equal(t, "lin: line 1: unit price must not be negative", got[1])
		assert.Equal(t, "lin: line 2: item identifier and description are required", got[2])
		assert.Equal(t, "lin: line 2: quantity must be a positive number", got[3])
		assert.Equal(t, "lin: line 2: unit price must not be negative", got[4])
	})

	t.Run("zero unit price is allowed", func(t *testing.T) {
		doc := invoice.Sample()
		zero := 0.0
		doc.LinSections[0].Lin[0].UnitPrice = &zero

		assert.Empty(t, runGroup(CheckLines, doc))
	})
}

func TestCheckTotalsAndTax(t *testing.T) {
	t.Run("missing amounts yields one violation", func(t *testing.T) {
		doc := invoice.Sample()
		doc.Moa = nil

		got := runGroup(CheckTotalsAndTax, doc)
		require.Len(t, got, 1)
		assert.Equal(t, "moa: amount details are required", got[0])
	})

	t.Run("empty amount list fires both totals", func(t *testing.T) {
		doc := invoice.Sample()
		doc.Moa.AmountDetails = []invoice.Amount{}

		got := runGroup(CheckTotalsAndTax, doc)
		require.Len(t, got, 2)
		assert.Equal(t, `moa: total excluding tax (amount type "I-176") is required`, got[0])
		assert.Equal(t, `moa: total including tax (amount type "I-180") is required`, got[1])
	})

	t.Run("tax check is independent of amounts", func(t *testing.T) {
		doc := invoice.Sample()
		doc.Moa = nil
		doc.Tax = nil

		got := runGroup(CheckTotalsAndTax, doc)
		require.Len(t, got, 2)
		assert.Equal(t, "moa: amount details are required", got[0])
		assert.Equal(t, "tax: tax section is missing", got[1])
	})
}
