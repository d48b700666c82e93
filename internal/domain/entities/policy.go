package entities

import (
	"strings"
	"time"
)

// PolicyStatus represents the lifecycle of a policy (apólice).
//
//   - em_criacao: draft, editable by the owner
//   - em_validacao: submitted by the owner, under review
//   - em_vigor: active; an administrator may still revert it to em_criacao
type PolicyStatus string

const (
	PolicyStatusEmCriacao   PolicyStatus = "em_criacao"
	PolicyStatusEmValidacao PolicyStatus = "em_validacao"
	PolicyStatusEmVigor     PolicyStatus = "em_vigor"
)

func (s PolicyStatus) IsValid() bool {
	switch s {
	case PolicyStatusEmCriacao, PolicyStatusEmValidacao, PolicyStatusEmVigor:
		return true
	}
	return false
}

type PaymentFrequency string

const (
	PaymentFrequencyAnual      PaymentFrequency = "anual"
	PaymentFrequencySemestral  PaymentFrequency = "semestral"
	PaymentFrequencyTrimestral PaymentFrequency = "trimestral"
	PaymentFrequencyMensal     PaymentFrequency = "mensal"
)

func (f PaymentFrequency) IsValid() bool {
	switch f {
	case PaymentFrequencyAnual, PaymentFrequencySemestral, PaymentFrequencyTrimestral, PaymentFrequencyMensal:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodMultibanco   PaymentMethod = "multibanco"
	PaymentMethodDebitoDireto PaymentMethod = "debito_direto"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodMultibanco || m == PaymentMethodDebitoDireto
}

// PolicyFields are the holder and payment fields editable on a policy.
type PolicyFields struct {
	HolderName        string           `json:"holder_name"`
	NIF               string           `json:"nif"`
	CitizenCardNumber string           `json:"citizen_card_number"`
	AddressStreet     string           `json:"address_street"`
	AddressPostalCode string           `json:"address_postal_code"`
	AddressLocality   string           `json:"address_locality"`
	Phone             string           `json:"phone"`
	Email             string           `json:"email"`
	PaymentFrequency  PaymentFrequency `json:"payment_frequency"`
	PaymentMethod     PaymentMethod    `json:"payment_method"`
	NIB               string           `json:"nib,omitempty"`
}

// Normalized trims the fields, upper-cases the citizen card and IBAN and
// clears the NIB when the payment method is not direct debit.
func (f PolicyFields) Normalized() PolicyFields {
	out := PolicyFields{
		HolderName:        strings.TrimSpace(f.HolderName),
		NIF:               strings.TrimSpace(f.NIF),
		CitizenCardNumber: strings.ToUpper(strings.TrimSpace(f.CitizenCardNumber)),
		AddressStreet:     strings.TrimSpace(f.AddressStreet),
		AddressPostalCode: strings.TrimSpace(f.AddressPostalCode),
		AddressLocality:   strings.TrimSpace(f.AddressLocality),
		Phone:             strings.TrimSpace(f.Phone),
		Email:             strings.ToLower(strings.TrimSpace(f.Email)),
		PaymentFrequency:  f.PaymentFrequency,
		PaymentMethod:     f.PaymentMethod,
	}
	if f.PaymentMethod == PaymentMethodDebitoDireto {
		out.NIB = strings.ToUpper(strings.Join(strings.Fields(f.NIB), ""))
	}
	return out
}

// Policy is the contract derived from an attached simulation.
//
// Storage model (DynamoDB):
//   - PK: id (stable key of owner + simulation)
//   - GSI1 (owner_uid-index): owner_uid
//   - GSI2 (simulation_id-index): simulation_id
//
// SimulationID, OwnerUID and Type are written once at creation and never
// appear in an update expression.
type Policy struct {
	ID           string         `json:"id"`
	OwnerUID     string         `json:"owner_uid"`
	SimulationID string         `json:"simulation_id"`
	Type         SimulationType `json:"type"`
	PolicyFields
	Status           PolicyStatus `json:"status"`
	PolicyPDFURL     string       `json:"policy_pdf_url,omitempty"`
	ReceiptPDFURL    string       `json:"receipt_pdf_url,omitempty"`
	ConditionsPDFURL string       `json:"conditions_pdf_url,omitempty"`
	GreenCardPDFURL  string       `json:"green_card_pdf_url,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

func (p Policy) GetOwnerID() string { return p.OwnerUID }

// DocumentLocator returns the stored locator for a policy slot.
func (p Policy) DocumentLocator(slot DocumentSlot) string {
	switch slot {
	case SlotPolicy:
		return p.PolicyPDFURL
	case SlotReceipt:
		return p.ReceiptPDFURL
	case SlotConditions:
		return p.ConditionsPDFURL
	case SlotGreenCard:
		return p.GreenCardPDFURL
	}
	return ""
}
