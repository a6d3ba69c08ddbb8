package invoice

func f64(v float64) *float64 { return &v }

// Sample returns the reference TEIF invoice used by the demo command and
// the test suite: a fully conformant document with two line items, both
// required totals, and a VAT tax block.
func Sample() *Invoice {
	return &Invoice{
		Version:           "2.0",
		ControllingAgency: "TTN",
		Header: &Header{
			Sender:   &PartyID{Type: "I-01", Value: "1234567A/B/M/000"},
			Receiver: &PartyID{Type: "I-01", Value: "7654321P/B/N/000"},
		},
		Bgm: &Bgm{
			DocumentID:   "INV-2025-001",
			DocumentType: &DocumentType{Code: "380", Name: "Facture"},
		},
		Dtm: []Dtm{
			{FunctionCode: "137", Format: "DDMMYY", DateText: "190825"},
		},
		PartnerSection: &PartnerSection{
			Partners: []Partner{
				{
					FunctionCode: "SU",
					Nad: &Nad{
						PartnerID: &PartyID{Type: "I-01", Value: "1234567A/B/M/000"},
						Name:      &Name{Value: "Tech Solutions SARL"},
						Addresses: []Address{
							{Street: "Av. Habib Bourguiba", City: "Tunis", PostalCode: "1000", Country: "TN"},
						},
					},
				},
				{
					FunctionCode: "BY",
					Nad: &Nad{
						PartnerID: &PartyID{Type: "I-01", Value: "7654321P/B/N/000"},
						Name:      &Name{Value: "Alpha Distribution SA"},
						Addresses: []Address{
							{Street: "Rue de Marseille", City: "Sfax", PostalCode: "3000", Country: "TN"},
						},
					},
				},
			},
		},
		LinSections: []LinSection{
			{
				Lin: []LineItem{
					{ItemID: "PRD-001", Description: "Laptop", Quantity: f64(2), UnitPrice: f64(1200), LineTotal: f64(2400)},
					{ItemID: "PRD-002", Description: "Printer", Quantity: f64(1), UnitPrice: f64(600), LineTotal: f64(600)},
				},
			},
		},
		Moa: &Moa{
			AmountDetails: []Amount{
				{CurrencyCodeList: "TND", AmountTypeCode: "I-176", Amount: 3000},
				{CurrencyCodeList: "TND", AmountTypeCode: "I-180", Amount: 3570},
			},
		},
		Tax: &Tax{TaxTypeCode: "I-1601", TaxRate: 19, TaxAmount: 570},
	}
}
