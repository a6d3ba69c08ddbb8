package invoice

// Invoice is the root of a TEIF document tree. All nested records are
// optional: a partially extracted or malformed document is still a valid
// value of this type and can be handed to the validator as-is.
type Invoice struct {
	// Version is the TEIF interchange version attribute (e.g., "2.0").
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// ControllingAgency identifies the network operator governing the
	// interchange (e.g., "TTN").
	ControllingAgency string `json:"controllingAgency,omitempty" yaml:"controllingAgency,omitempty"`

	// Header carries the message sender and receiver identification.
	Header *Header `json:"header,omitempty" yaml:"header,omitempty"`

	// Bgm is the document identification segment.
	Bgm *Bgm `json:"bgm,omitempty" yaml:"bgm,omitempty"`

	// Dtm is the ordered list of date segments.
	Dtm []Dtm `json:"dtm,omitempty" yaml:"dtm,omitempty"`

	// PartnerSection holds the trading partner records.
	PartnerSection *PartnerSection `json:"partnerSection,omitempty" yaml:"partnerSection,omitempty"`

	// LinSections holds the line item sections. TEIF nests the sold items
	// one level down: the lines of interest are in the first section.
	LinSections []LinSection `json:"linSections,omitempty" yaml:"linSections,omitempty"`

	// Moa is the monetary amounts segment.
	Moa *Moa `json:"moa,omitempty" yaml:"moa,omitempty"`

	// Tax is the tax summary segment.
	Tax *Tax `json:"tax,omitempty" yaml:"tax,omitempty"`
}

// Header carries the message-level sender and receiver identifiers.
type Header struct {
	Sender   *PartyID `json:"sender,omitempty" yaml:"sender,omitempty"`
	Receiver *PartyID `json:"receiver,omitempty" yaml:"receiver,omitempty"`
}

// PartyID identifies a party by a typed identifier value. For Tunisian
// parties the value is the matricule fiscal (e.g., "1234567A/B/M/000").
type PartyID struct {
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Bgm is the beginning-of-message segment: document id and type.
type Bgm struct {
	DocumentID   string        `json:"documentId,omitempty" yaml:"documentId,omitempty"`
	DocumentType *DocumentType `json:"documentType,omitempty" yaml:"documentType,omitempty"`
}

// DocumentType pairs a controlled document type code with its display name.
type DocumentType struct {
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Dtm is a date segment tagged with a function code that states what the
// date means (issue date, delivery date, ...).
type Dtm struct {
	FunctionCode string `json:"functionCode,omitempty" yaml:"functionCode,omitempty"`
	Format       string `json:"format,omitempty" yaml:"format,omitempty"`
	DateText     string `json:"dateText,omitempty" yaml:"dateText,omitempty"`
}

// PartnerSection holds the ordered trading partner records.
type PartnerSection struct {
	Partners []Partner `json:"partners,omitempty" yaml:"partners,omitempty"`
}

// Partner is one trading partner, tagged with a function code that states
// its role (supplier, buyer).
type Partner struct {
	FunctionCode string `json:"functionCode,omitempty" yaml:"functionCode,omitempty"`
	Nad          *Nad   `json:"nad,omitempty" yaml:"nad,omitempty"`
}

// Nad is the name-and-address identification block of a partner.
type Nad struct {
	PartnerID *PartyID  `json:"partnerId,omitempty" yaml:"partnerId,omitempty"`
	Name      *Name     `json:"name,omitempty" yaml:"name,omitempty"`
	Addresses []Address `json:"addresses,omitempty" yaml:"addresses,omitempty"`
}

// Name wraps a partner display name.
type Name struct {
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Address is a partner postal address.
type Address struct {
	Street     string `json:"street,omitempty" yaml:"street,omitempty"`
	City       string `json:"city,omitempty" yaml:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
	Country    string `json:"country,omitempty" yaml:"country,omitempty"`
}

// LinSection wraps an ordered sequence of line items.
type LinSection struct {
	Lin []LineItem `json:"lin,omitempty" yaml:"lin,omitempty"`
}

// LineItem is one sold item. Quantity and UnitPrice are pointers so that a
// document missing them is distinguishable from a zero value.
type LineItem struct {
	ItemID      string   `json:"itemId,omitempty" yaml:"itemId,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty" yaml:"unitPrice,omitempty"`
	LineTotal   *float64 `json:"lineTotal,omitempty" yaml:"lineTotal,omitempty"`
}

// Moa holds the monetary amount details.
type Moa struct {
	AmountDetails []Amount `json:"amountDetails,omitempty" yaml:"amountDetails,omitempty"`
}

// Amount is one monetary amount tagged with an amount type code.
type Amount struct {
	CurrencyCodeList string  `json:"currencyCodeList,omitempty" yaml:"currencyCodeList,omitempty"`
	AmountTypeCode   string  `json:"amountTypeCode,omitempty" yaml:"amountTypeCode,omitempty"`
	Amount           float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// Tax is the invoice tax summary.
type Tax struct {
	TaxTypeCode string  `json:"taxTypeCode,omitempty" yaml:"taxTypeCode,omitempty"`
	TaxRate     float64 `json:"taxRate,omitempty" yaml:"taxRate,omitempty"`
	TaxAmount   float64 `json:"taxAmount,omitempty" yaml:"taxAmount,omitempty"`
}

// SenderValue returns the sender identifier value, or "" when any link in
// the path is absent.
func (i *Invoice) SenderValue() string {
	if i == nil || i.Header == nil {
		return ""
	}
	return i.Header.Sender.Val()
}

// ReceiverValue returns the receiver identifier value, or "" when any link
// in the path is absent.
func (i *Invoice) ReceiverValue() string {
	if i == nil || i.Header == nil {
		return ""
	}
	return i.Header.Receiver.Val()
}

// Val returns the identifier value, tolerating a nil receiver.
func (p *PartyID) Val() string {
	if p == nil {
		return ""
	}
	return p.Value
}

// IDValue returns the partner identifier value, tolerating absent links.
func (n *Nad) IDValue() string {
	if n == nil {
		return ""
	}
	return n.PartnerID.Val()
}

// NameValue returns the partner name, tolerating absent links.
func (n *Nad) NameValue() string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.Value
}

// Partners returns the partner records, or nil when the section is absent.
func (i *Invoice) Partners() []Partner {
	if i == nil || i.PartnerSection == nil {
		return nil
	}
	return i.PartnerSection.Partners
}

// FindPartner returns the first partner whose function code matches, or nil
// when none does. Duplicate roles are not distinguished: the first match
// wins, per the interchange rules this engine implements.
func (i *Invoice) FindPartner(functionCode string) *Partner {
	partners := i.Partners()
	for idx := range partners {
		if partners[idx].FunctionCode == functionCode {
			return &partners[idx]
		}
	}
	return nil
}

// Lines returns the line items of the first line section, or nil when the
// sections or their lines are absent.
func (i *Invoice) Lines() []LineItem {
	if i == nil || len(i.LinSections) == 0 {
		return nil
	}
	return i.LinSections[0].Lin
}

// FindAmount returns the first amount entry whose type code matches, or nil
// when the amounts are absent or no entry matches.
func (i *Invoice) FindAmount(amountTypeCode string) *Amount {
	if i == nil || i.Moa == nil {
		return nil
	}
	for idx := range i.Moa.AmountDetails {
		if i.Moa.AmountDetails[idx].AmountTypeCode == amountTypeCode {
			return &i.Moa.AmountDetails[idx]
		}
	}
	return nil
}

// HasDate reports whether any date segment carries the given function code.
// An absent Dtm list and a list with no matching entry are equivalent.
func (i *Invoice) HasDate(functionCode string) bool {
	if i == nil {
		return false
	}
	for _, d := range i.Dtm {
		if d.FunctionCode == functionCode {
			return true
		}
	}
	return false
}
