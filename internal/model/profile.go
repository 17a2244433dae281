package model

import (
	"encoding/json"
	"sort"
)

// UserProfile represents the authenticated wallet principal.
type UserProfile struct {
	// WordPress user ID ; REQUIRED
	Id int64 `json:"id"`
	// Preferred username (login)
	Username string `json:"username,omitempty"`
	// Preferred e-mail address
	Email string `json:"email,omitempty"`
	// Display name ; first non-empty of:
	// name, display_name, username, email
	Name string `json:"name,omitempty"`
	// Primary role ; equals Roles[0] when both present
	Role Role `json:"role,omitempty"`
	// Full role set, order preserved, unknown values dropped
	Roles []Role `json:"roles,omitempty"`
	// Fine-grained permission flags, independent of role
	Capabilities []string `json:"capabilities,omitempty"`
}

// RoleUnion returns the union of the primary [Role] and the [Roles] set.
func (u *UserProfile) RoleUnion() (roles []Role) {
	if u == nil {
		return // nil
	}
	if u.Role != "" {
		roles = append(roles, u.Role)
	}
	for _, role := range u.Roles {
		if !ContainsRole(roles, role) {
			roles = append(roles, role)
		}
	}
	return // roles?
}

// HasCapability reports whether the profile carries the named permission flag.
func (u *UserProfile) HasCapability(capability string) bool {
	if u == nil {
		return false
	}
	for _, grant := range u.Capabilities {
		if grant == capability {
			return true
		}
	}
	return false
}

// rawProfile is the loose over-the-wire profile shape.
// Divergent API builds send different subsets of these fields.
type rawProfile struct {
	Id           json.Number     `json:"id"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	DisplayName  string          `json:"display_name"`
	Role         string          `json:"role"`
	Roles        []string        `json:"roles"`
	Capabilities json.RawMessage `json:"capabilities"`
}

// NormalizeProfile shapes a raw profile payload into a *UserProfile.
//
//  1. no numeric identifier ⇒ nil
//  2. roles filtered to known values, order preserved
//  3. role: explicit if known, else roles[0]
//  4. roles backfilled from role when empty
//  5. capabilities: flags-map keeps truthy keys only ; sequence kept as-is
//  6. name falls back through: name, display_name, username, email
func NormalizeProfile(payload []byte) *UserProfile {

	var src rawProfile
	if err := json.Unmarshal(payload, &src); err != nil {
		return nil
	}

	id, err := src.Id.Int64()
	if err != nil || id == 0 {
		// no usable principal identifier
		return nil
	}

	roles := FilterRoles(src.Roles)

	role, known := ParseRole(src.Role)
	if !known && len(roles) > 0 {
		role = roles[0]
	}
	if len(roles) == 0 && role != "" {
		roles = []Role{role}
	}

	return &UserProfile{
		Id:           id,
		Username:     src.Username,
		Email:        src.Email,
		Name:         Coalesce(src.Name, src.DisplayName, src.Username, src.Email),
		Role:         role,
		Roles:        roles,
		Capabilities: normalizeCapabilities(src.Capabilities),
	}
}

// normalizeCapabilities accepts either a plain sequence
//
//	["manage_wallets","view_reports"]
//
// or a WordPress flags-map
//
//	{"manage_wallets":true,"view_reports":false}
//
// keeping map keys iff their value is truthy.
func normalizeCapabilities(raw json.RawMessage) (caps []string) {
	if len(raw) == 0 {
		return // nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var flags map[string]any
	if err := json.Unmarshal(raw, &flags); err != nil {
		// neither shape ; discard
		return // nil
	}
	for key, value := range flags {
		if truthy(value) {
			caps = append(caps, key)
		}
	}
	// map iteration order is random
	sort.Strings(caps)
	return // caps?
}

func truthy(value any) bool {
	switch value := value.(type) {
	case bool:
		return value
	case string:
		return value != "" && value != "0" && value != "false"
	case float64:
		return value != 0
	case json.Number:
		return value.String() != "0"
	case nil:
		return false
	}
	return true
}
