package usecase

import (
	"fmt"
	"seguros_xpto/internal/domain/entities"
)

type resource string

const (
	resourceSimulation resource = "simulation"
	resourcePolicy     resource = "policy"
	resourceDocument   resource = "document"
)

type action string

const (
	actionCreate    action = "create"
	actionRead      action = "read"
	actionList      action = "list"
	actionListAll   action = "list_all"
	actionEdit      action = "edit"
	actionSubmit    action = "submit"
	actionSetStatus action = "set_status"
	actionAttach    action = "attach"
	actionDetach    action = "detach"
	actionDownload  action = "download"
	actionExport    action = "export"
)

type requirement int

const (
	requireAnyone requirement = iota
	requireAuthenticated
	requireOwner
	requireOwnerOrAdmin
	requireAdmin
)

type permission struct {
	resource resource
	action   action
}

// authorizationTable is the only place roles are mapped to operations.
// Every usecase entry point checks it once before touching state.
var authorizationTable = map[permission]requirement{
	{resourceSimulation, actionCreate}:  requireAnyone,
	{resourceSimulation, actionRead}:    requireOwnerOrAdmin,
	{resourceSimulation, actionList}:    requireAuthenticated,
	{resourceSimulation, actionListAll}: requireAdmin,
	{resourceSimulation, actionAttach}:  requireAdmin,
	{resourceSimulation, actionDetach}:  requireAdmin,

	{resourcePolicy, actionCreate}:    requireOwner,
	{resourcePolicy, actionRead}:      requireOwnerOrAdmin,
	{resourcePolicy, actionList}:      requireAuthenticated,
	{resourcePolicy, actionListAll}:   requireAdmin,
	{resourcePolicy, actionEdit}:      requireOwnerOrAdmin,
	{resourcePolicy, actionSubmit}:    requireOwner,
	{resourcePolicy, actionSetStatus}: requireAdmin,
	{resourcePolicy, actionAttach}:    requireAdmin,
	{resourcePolicy, actionDetach}:    requireAdmin,
	{resourcePolicy, actionExport}:    requireAdmin,

	{resourceDocument, actionDownload}: requireOwnerOrAdmin,
}

// authorize checks p against the table. ownerID is the owner of the target
// record, empty for collection-level actions.
func authorize(p entities.Principal, res resource, act action, ownerID string) error {
	req, ok := authorizationTable[permission{res, act}]
	if !ok {
		return fmt.Errorf("%w: no rule for %s:%s", ErrForbidden, res, act)
	}

	if req == requireAnyone {
		return nil
	}
	if !p.IsAuthenticated() {
		return ErrUnauthenticated
	}

	allowed := false
	switch req {
	case requireAuthenticated:
		allowed = true
	case requireOwner:
		allowed = p.Owns(ownerID)
	case requireOwnerOrAdmin:
		allowed = p.IsAdmin() || p.Owns(ownerID)
	case requireAdmin:
		allowed = p.IsAdmin()
	}
	if !allowed {
		return fmt.Errorf("%w: %s may not %s %s", ErrForbidden, p.Role, act, res)
	}
	return nil
}

func resourceFor(kind entities.EntityKind) resource {
	if kind == entities.EntityKindPolicy {
		return resourcePolicy
	}
	return resourceSimulation
}
