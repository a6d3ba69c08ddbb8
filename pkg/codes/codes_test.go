package codes

import "testing"

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		code     string
		want     bool
	}{
		{"invoice document type", CategoryDocumentType, DocumentTypeInvoice, true},
		{"credit note document type", CategoryDocumentType, "381", true},
		{"unknown document type", CategoryDocumentType, "999", false},
		{"issue date function", CategoryDateFunction, DateIssue, true},
		{"supplier function", CategoryPartnerFunction, PartnerSupplier, true},
		{"buyer function", CategoryPartnerFunction, PartnerBuyer, true},
		{"total without tax", CategoryAmountType, AmountTotalWithoutTax, true},
		{"total with tax", CategoryAmountType, AmountTotalWithTax, true},
		{"vat tax type", CategoryTaxType, TaxTypeVAT, true},
		{"unknown category", Category("bogus"), "380", false},
		{"empty code", CategoryTaxType, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAllowed(tt.category, tt.code); got != tt.want {
				t.Errorf("IsAllowed(%q, %q) = %v, want %v", tt.category, tt.code, got, tt.want)
			}
		})
	}
}

func TestAllowedSorted(t *testing.T) {
	got := Allowed(CategoryAmountType)
	if len(got) == 0 {
		t.Fatal("expected codes for amount type category")
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Errorf("Allowed() not sorted: %v", got)
		}
	}

	if Allowed(Category("bogus")) != nil {
		t.Error("unknown category should yield nil")
	}
}

func TestCategories(t *testing.T) {
	got := Categories()
	if len(got) != 5 {
		t.Fatalf("Categories() returned %d entries, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Errorf("Categories() not sorted: %v", got)
		}
	}
	for _, c := range got {
		if !c.IsValid() {
			t.Errorf("category %q should be valid", c)
		}
	}
}
