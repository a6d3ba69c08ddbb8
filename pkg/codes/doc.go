// Package codes holds the controlled code vocabularies of the TEIF
// interchange subset this module validates: document types, date and
// partner function codes, amount type codes, and tax type codes, together
// with the fixed envelope constants.
//
// The vocabularies are immutable reference data. Rule logic looks codes up
// here rather than comparing against scattered literals, so extending a
// vocabulary never touches the validator.
package codes
