package request

import "seguros_xpto/internal/domain/entities"

// PolicyFieldsRequest is the body of PATCH /policies/{id} and
// POST /policies/{id}/submit. Format tags reject malformed values early; the
// completeness gate runs in the usecase.
type PolicyFieldsRequest struct {
	HolderName        string `json:"holder_name" binding:"max=200"`
	NIF               string `json:"nif" binding:"omitempty,nif"`
	CitizenCardNumber string `json:"citizen_card_number" binding:"omitempty,cc_pt"`
	AddressStreet     string `json:"address_street" binding:"max=300"`
	AddressPostalCode string `json:"address_postal_code" binding:"omitempty,postal_code_pt"`
	AddressLocality   string `json:"address_locality" binding:"max=120"`
	Phone             string `json:"phone" binding:"omitempty,phone_pt"`
	Email             string `json:"email" binding:"omitempty,email"`
	PaymentFrequency  string `json:"payment_frequency" binding:"omitempty,oneof=anual semestral trimestral mensal"`
	PaymentMethod     string `json:"payment_method" binding:"omitempty,oneof=multibanco debito_direto"`
	NIB               string `json:"nib" binding:"omitempty,iban_pt"`
}

func (r PolicyFieldsRequest) ToFields() entities.PolicyFields {
	return entities.PolicyFields{
		HolderName:        r.HolderName,
		NIF:               r.NIF,
		CitizenCardNumber: r.CitizenCardNumber,
		AddressStreet:     r.AddressStreet,
		AddressPostalCode: r.AddressPostalCode,
		AddressLocality:   r.AddressLocality,
		Phone:             r.Phone,
		Email:             r.Email,
		PaymentFrequency:  entities.PaymentFrequency(r.PaymentFrequency),
		PaymentMethod:     entities.PaymentMethod(r.PaymentMethod),
		NIB:               r.NIB,
	}
}

// PolicyStatusRequest is the body of PATCH /policies/{id}/status.
type PolicyStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=em_criacao em_validacao em_vigor"`
}
