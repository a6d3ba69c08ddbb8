package invoice

import "testing"

func TestNilSafeAccessors(t *testing.T) {
	var doc *Invoice
	if doc.SenderValue() != "" || doc.ReceiverValue() != "" {
		t.Error("nil invoice should yield empty identifiers")
	}
	if doc.Partners() != nil {
		t.Error("nil invoice should yield nil partners")
	}
	if doc.Lines() != nil {
		t.Error("nil invoice should yield nil lines")
	}
	if doc.FindPartner("SU") != nil {
		t.Error("nil invoice should have no partners")
	}
	if doc.FindAmount("I-176") != nil {
		t.Error("nil invoice should have no amounts")
	}
	if doc.HasDate("137") {
		t.Error("nil invoice should have no dates")
	}

	empty := &Invoice{}
	if empty.SenderValue() != "" {
		t.Error("empty invoice should yield empty sender")
	}
	if (*PartyID)(nil).Val() != "" {
		t.Error("nil party id should yield empty value")
	}
	if (*Nad)(nil).IDValue() != "" || (*Nad)(nil).NameValue() != "" {
		t.Error("nil nad should yield empty identification")
	}
}

func TestFindPartnerFirstMatch(t *testing.T) {
	doc := &Invoice{
		PartnerSection: &PartnerSection{
			Partners: []Partner{
				{FunctionCode: "SU", Nad: &Nad{Name: &Name{Value: "first"}}},
				{FunctionCode: "SU", Nad: &Nad{Name: &Name{Value: "second"}}},
			},
		},
	}

	got := doc.FindPartner("SU")
	if got == nil {
		t.Fatal("expected a partner")
	}
	if got.Nad.NameValue() != "first" {
		t.Errorf("FindPartner returned %q, want first match", got.Nad.NameValue())
	}
	if doc.FindPartner("BY") != nil {
		t.Error("expected no match for absent role")
	}
}

func TestLinesFirstSection(t *testing.T) {
	doc := &Invoice{
		LinSections: []LinSection{
			{Lin: []LineItem{{ItemID: "A"}, {ItemID: "B"}}},
			{Lin: []LineItem{{ItemID: "C"}}},
		},
	}

	lines := doc.Lines()
	if len(lines) != 2 || lines[0].ItemID != "A" {
		t.Errorf("Lines() = %v, want first section's lines", lines)
	}
}

func TestSampleShape(t *testing.T) {
	doc := Sample()

	if doc.Version != "2.0" || doc.ControllingAgency != "TTN" {
		t.Errorf("unexpected envelope: %q %q", doc.Version, doc.ControllingAgency)
	}
	if doc.SenderValue() == "" || doc.ReceiverValue() == "" {
		t.Error("sample must carry both party identifiers")
	}
	if len(doc.Partners()) != 2 {
		t.Errorf("sample has %d partners, want 2", len(doc.Partners()))
	}
	if len(doc.Lines()) != 2 {
		t.Errorf("sample has %d lines, want 2", len(doc.Lines()))
	}
	if doc.FindAmount("I-176") == nil || doc.FindAmount("I-180") == nil {
		t.Error("sample must carry both totals")
	}
	if !doc.HasDate("137") {
		t.Error("sample must carry an issue date")
	}
	if doc.Tax == nil || doc.Tax.TaxTypeCode != "I-1601" {
		t.Error("sample must carry a VAT tax summary")
	}
}
