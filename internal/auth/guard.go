package auth

import (
	"github.com/mrhaji1999/vandapay-sub001/internal/errors"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

var (
	ErrLoginRequired = errors.Unauthorized(
		errors.Id("login_required"),
		errors.Message("wallet: authentication required ; run `vandapay login`"),
	)

	ErrAccessDenied = errors.Forbidden(
		errors.Id("access_denied"),
		errors.Message("wallet: access denied ; insufficient role"),
	)
)

// ResolveRoles returns the effective role set of [session]:
// the union of the profile's primary role and role list ; else
// a role decoded from the token's embedded claims ; else the
// lowest-privilege default role.
func ResolveRoles(session *model.Session) []model.Role {
	if !session.Authenticated() {
		return nil
	}
	if roles := session.User.RoleUnion(); len(roles) > 0 {
		return roles
	}
	if role, ok := DecodeRole(session.Token); ok {
		return []model.Role{role}
	}
	return []model.Role{model.RoleDefault}
}

// Authorize gates an operation behind a required role set.
//
// Unauthenticated ⇒ ErrLoginRequired.
// Required set non-empty and disjoint from the session's
// effective roles ⇒ ErrAccessDenied.
// Empty required set ⇒ any authenticated session passes.
func Authorize(session *model.Session, required ...model.Role) error {
	if !session.Authenticated() {
		return ErrLoginRequired
	}
	if len(required) == 0 {
		return nil
	}
	granted := ResolveRoles(session)
	for _, role := range required {
		if model.ContainsRole(granted, role) {
			return nil
		}
	}
	return ErrAccessDenied
}
