package codes

import "sort"

// Fixed envelope constants every conformant interchange must carry.
const (
	// Version is the supported TEIF interchange version.
	Version = "2.0"

	// ControllingAgency is the network operator governing the interchange.
	ControllingAgency = "TTN"
)

// Codes the validation rules pin to specific semantics.
const (
	// DocumentTypeInvoice is the Bgm document type code for a commercial invoice.
	DocumentTypeInvoice = "380"

	// DateIssue is the Dtm function code marking the invoice issue date.
	DateIssue = "137"

	// PartnerSupplier is the partner function code for the supplier role.
	PartnerSupplier = "SU"

	// PartnerBuyer is the partner function code for the buyer role.
	PartnerBuyer = "BY"

	// AmountTotalWithoutTax is the Moa amount type code for the invoice
	// total excluding tax.
	AmountTotalWithoutTax = "I-176"

	// AmountTotalWithTax is the Moa amount type code for the invoice total
	// including tax.
	AmountTotalWithTax = "I-180"

	// TaxTypeVAT is the tax type code for value added tax.
	TaxTypeVAT = "I-1601"
)

// Category identifies one controlled vocabulary.
type Category string

const (
	CategoryDocumentType    Category = "documentType"
	CategoryDateFunction    Category = "dateFunction"
	CategoryPartnerFunction Category = "partnerFunction"
	CategoryAmountType      Category = "amountType"
	CategoryTaxType         Category = "taxType"
)

// vocabularies maps each category to its permitted codes. The sets cover
// the interchange subset this module understands; codes outside a set are
// not necessarily invalid TEIF, just outside the validated subset.
var vocabularies = map[Category]map[string]struct{}{
	CategoryDocumentType:    set("325", DocumentTypeInvoice, "381"),
	CategoryDateFunction:    set(DateIssue, "35", "171"),
	CategoryPartnerFunction: set(PartnerSupplier, PartnerBuyer, "CA"),
	CategoryAmountType:      set(AmountTotalWithoutTax, AmountTotalWithTax, "I-189"),
	CategoryTaxType:         set(TaxTypeVAT, "I-1602"),
}

func set(codes ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// IsValid reports whether the category names a known vocabulary.
func (c Category) IsValid() bool {
	_, ok := vocabularies[c]
	return ok
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsAllowed reports whether code belongs to the category's vocabulary.
// Unknown categories allow nothing.
func IsAllowed(c Category, code string) bool {
	set, ok := vocabularies[c]
	if !ok {
		return false
	}
	_, ok = set[code]
	return ok
}

// Allowed returns the sorted permitted codes for the category.
func Allowed(c Category) []string {
	set, ok := vocabularies[c]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for code := range set {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Categories returns the sorted known categories.
func Categories() []Category {
	out := make([]Category, 0, len(vocabularies))
	for c := range vocabularies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
