package vandapay

import (
	"context"
	"encoding/json"

	"github.com/mrhaji1999/vandapay-sub001/internal/errors"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
	"github.com/mrhaji1999/vandapay-sub001/internal/session"
)

// Grant is the POST /token response.
// The extension fields are emitted by some API builds only.
type Grant struct {
	// [access_token] string ; REQUIRED
	Token string `json:"token"`
	// Extension: authenticated principal hints
	UserId          json.Number `json:"user_id,omitempty"`
	UserDisplayName string      `json:"user_display_name,omitempty"`
	UserEmail       string      `json:"user_email,omitempty"`
	UserRole        string      `json:"user_role,omitempty"`
	Role            string      `json:"role,omitempty"`
	Roles           []string    `json:"roles,omitempty"`
}

var ErrNoTokenGranted = errors.Unauthorized(
	errors.Id("token_missing"),
	errors.Message("wallet: token response carried no token"),
)

// Seed shapes the grant's extension fields into a provisional
// profile: id + display name + role, resolved in precedence
// user_role ; role ; roles[0]. Nil when the grant carries no
// usable principal id ; the profile fetch supersedes it anyway.
func (g *Grant) Seed() *model.UserProfile {
	if g == nil {
		return nil
	}
	id, err := g.UserId.Int64()
	if err != nil || id == 0 {
		return nil
	}
	roles := model.FilterRoles(g.Roles)
	role, ok := model.ParseRole(g.UserRole)
	if !ok {
		role, ok = model.ParseRole(g.Role)
	}
	if !ok && len(roles) > 0 {
		role = roles[0]
	}
	if len(roles) == 0 && role != "" {
		roles = []model.Role{role}
	}
	return &model.UserProfile{
		Id:    id,
		Email: g.UserEmail,
		Name:  model.Coalesce(g.UserDisplayName, g.UserEmail),
		Role:  role,
		Roles: roles,
	}
}

// Token exchanges credentials for a bearer token.
func (c *Client) Token(ctx context.Context, username, password string) (*Grant, error) {

	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{
		Username: username,
		Password: password,
	}

	grant := new(Grant)
	err := c.rest.Post(ctx, "/token", &body, grant)

	if err != nil {
		return nil, err
	}
	if grant.Token == "" {
		return nil, ErrNoTokenGranted
	}

	return grant, nil
}

var _ session.ProfileFetcher = (*Client)(nil)

// FetchProfile resolves the authenticated principal's profile.
// [token] keys the short-TTL cache ; the request itself is
// authorized with the current session credential. Falls back
// from /profile to /me for older API builds.
func (c *Client) FetchProfile(ctx context.Context, token string) (*model.UserProfile, error) {

	// from cache ..
	if user, found := c.cache.Get(token); found {
		return user, nil
	}

	var payload json.RawMessage
	err := c.rest.Get(ctx, "/profile", nil, &payload)
	if err != nil && errors.IsNotFound(err) {
		// older builds expose the profile at /me
		err = c.rest.Get(ctx, "/me", nil, &payload)
	}
	if err != nil {
		return nil, err
	}

	user := model.NormalizeProfile(model.UnwrapData(payload))
	if user == nil {
		return nil, errors.New(
			errors.Status("BAD_RESPONSE"),
			errors.Message("wallet: profile payload malformed"),
		)
	}

	_ = c.cache.Add(token, user)

	return user, nil
}
