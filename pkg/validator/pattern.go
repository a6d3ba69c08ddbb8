package validator

import "regexp"

// taxIDPattern matches the Tunisian matricule fiscal as exchanged in TEIF
// party identifiers: 7 digits, an uppercase key letter, then three
// slash-separated segments (VAT code letter, category letter, 3-digit
// secondary establishment number), e.g. "1234567A/B/M/000".
var taxIDPattern = regexp.MustCompile(`^\d{7}[A-Z]/[A-Z]/[A-Z]/\d{3}$`)

// TaxIDFormat is the human-readable description of the expected tax
// identifier shape, used in violation messages.
const TaxIDFormat = "9999999L/L/L/999"

// IsValidTaxID reports whether value matches the tax identifier format.
func IsValidTaxID(value string) bool {
	return taxIDPattern.MatchString(value)
}
