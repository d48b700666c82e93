package usecase

import (
	"errors"
	"fmt"
	"seguros_xpto/internal/domain/entities"
)

var ErrInvalidTransition = errors.New("invalid policy status transition")

type policyTrigger string

const (
	triggerOwnerSubmit  policyTrigger = "owner_submit"
	triggerAdminUpload  policyTrigger = "admin_policy_upload"
	triggerAdminRevert  policyTrigger = "admin_revert"
	triggerAdminAdvance policyTrigger = "admin_advance"
)

// policyTransitions maps trigger -> from -> to. Policy creation (none ->
// em_criacao) happens in StartFromSimulation and is not a transition here.
var policyTransitions = map[policyTrigger]map[entities.PolicyStatus]entities.PolicyStatus{
	triggerOwnerSubmit: {
		entities.PolicyStatusEmCriacao:   entities.PolicyStatusEmValidacao,
		entities.PolicyStatusEmValidacao: entities.PolicyStatusEmValidacao,
	},
	triggerAdminUpload: {
		entities.PolicyStatusEmCriacao:   entities.PolicyStatusEmVigor,
		entities.PolicyStatusEmValidacao: entities.PolicyStatusEmVigor,
		entities.PolicyStatusEmVigor:     entities.PolicyStatusEmVigor,
	},
	triggerAdminRevert: {
		entities.PolicyStatusEmVigor:     entities.PolicyStatusEmCriacao,
		entities.PolicyStatusEmValidacao: entities.PolicyStatusEmCriacao,
	},
	triggerAdminAdvance: {
		entities.PolicyStatusEmCriacao: entities.PolicyStatusEmValidacao,
	},
}

func nextPolicyStatus(trigger policyTrigger, from entities.PolicyStatus) (entities.PolicyStatus, error) {
	to, ok := policyTransitions[trigger][from]
	if !ok {
		return "", fmt.Errorf("%w: %s from %s", ErrInvalidTransition, trigger, from)
	}
	return to, nil
}

// adminTriggerFor resolves the explicit administrator action that reaches target.
func adminTriggerFor(target entities.PolicyStatus) (policyTrigger, error) {
	switch target {
	case entities.PolicyStatusEmCriacao:
		return triggerAdminRevert, nil
	case entities.PolicyStatusEmValidacao:
		return triggerAdminAdvance, nil
	}
	return "", fmt.Errorf("%w: %s can only be reached by uploading the signed policy", ErrInvalidTransition, target)
}
