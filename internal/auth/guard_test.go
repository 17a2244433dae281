package auth

import (
	"reflect"
	"testing"

	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

func TestResolveRoles(test *testing.T) {
	tests := []struct {
		name    string
		session *model.Session
		want    []model.Role
	}{
		{
			name:    "unauthenticated",
			session: &model.Session{},
			want:    nil,
		},
		{
			name: "profile roles win",
			session: &model.Session{
				Token: compactToken(`{"role":"employee"}`),
				User: &model.UserProfile{
					Id: 1, Role: model.RoleCompany,
				},
			},
			want: []model.Role{model.RoleCompany},
		},
		{
			name: "token claims fallback",
			session: &model.Session{
				Token: compactToken(`{"role":"merchant"}`),
			},
			want: []model.Role{model.RoleMerchant},
		},
		{
			name: "default role last resort",
			session: &model.Session{
				Token: "opaque-token",
			},
			want: []model.Role{model.RoleDefault},
		},
	}
	for _, tt := range tests {
		test.Run(tt.name, func(test *testing.T) {
			got := ResolveRoles(tt.session)
			if !reflect.DeepEqual(got, tt.want) {
				test.Errorf("ResolveRoles() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthorize(test *testing.T) {

	employee := &model.Session{
		Token: "opaque-token",
		User: &model.UserProfile{
			Id: 1, Role: model.RoleEmployee, Roles: []model.Role{model.RoleEmployee},
		},
	}

	tests := []struct {
		name     string
		session  *model.Session
		required []model.Role
		want     error
	}{
		{
			name:    "unauthenticated",
			session: &model.Session{},
			want:    ErrLoginRequired,
		},
		{
			name:     "unauthenticated outranks role mismatch",
			session:  &model.Session{},
			required: []model.Role{model.RoleAdministrator},
			want:     ErrLoginRequired,
		},
		{
			name:    "empty required set passes any session",
			session: employee,
			want:    nil,
		},
		{
			name:     "role granted",
			session:  employee,
			required: []model.Role{model.RoleEmployee},
			want:     nil,
		},
		{
			name:     "any-of semantics",
			session:  employee,
			required: []model.Role{model.RoleAdministrator, model.RoleEmployee},
			want:     nil,
		},
		{
			name:     "role mismatch denied, session intact",
			session:  employee,
			required: []model.Role{model.RoleAdministrator},
			want:     ErrAccessDenied,
		},
	}
	for _, tt := range tests {
		test.Run(tt.name, func(test *testing.T) {
			err := Authorize(tt.session, tt.required...)
			if err != tt.want {
				test.Errorf("Authorize() = %v, want %v", err, tt.want)
			}
			// the guard never mutates the session
			if tt.session == employee && !tt.session.Authenticated() {
				test.Error("Authorize() destroyed the session")
			}
		})
	}
}
