package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeProfile(test *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *UserProfile
	}{
		{
			name:    "no identifier",
			payload: `{"username":"ghost","role":"employee"}`,
			want:    nil,
		},
		{
			name:    "string identifier",
			payload: `{"id":"42","username":"j.doe","role":"merchant"}`,
			want: &UserProfile{
				Id: 42, Username: "j.doe", Name: "j.doe",
				Role: RoleMerchant, Roles: []Role{RoleMerchant},
			},
		},
		{
			name:    "unknown roles dropped",
			payload: `{"id":7,"roles":["merchant","bogus","editor"]}`,
			want: &UserProfile{
				Id:   7,
				Role: RoleMerchant, Roles: []Role{RoleMerchant},
			},
		},
		{
			name:    "role backfilled from roles head",
			payload: `{"id":7,"role":"subscriber","roles":["company","employee"]}`,
			want: &UserProfile{
				Id:   7,
				Role: RoleCompany, Roles: []Role{RoleCompany, RoleEmployee},
			},
		},
		{
			name:    "roles backfilled from role",
			payload: `{"id":7,"role":"administrator"}`,
			want: &UserProfile{
				Id:   7,
				Role: RoleAdministrator, Roles: []Role{RoleAdministrator},
			},
		},
		{
			name:    "capabilities flags map keeps truthy keys",
			payload: `{"id":3,"capabilities":{"manage_wallets":true,"view_reports":false,"charge":"1"}}`,
			want: &UserProfile{
				Id:           3,
				Capabilities: []string{"charge", "manage_wallets"},
			},
		},
		{
			name:    "capabilities sequence kept as-is",
			payload: `{"id":3,"capabilities":["view_reports","manage_wallets"]}`,
			want: &UserProfile{
				Id:           3,
				Capabilities: []string{"view_reports", "manage_wallets"},
			},
		},
		{
			name:    "display name fallback chain",
			payload: `{"id":5,"display_name":"John Doe","username":"j.doe","email":"j@doe.io"}`,
			want: &UserProfile{
				Id: 5, Username: "j.doe", Email: "j@doe.io", Name: "John Doe",
			},
		},
		{
			name:    "email is the last name resort",
			payload: `{"id":5,"email":"j@doe.io"}`,
			want: &UserProfile{
				Id: 5, Email: "j@doe.io", Name: "j@doe.io",
			},
		},
		{
			name:    "malformed payload",
			payload: `"oops"`,
			want:    nil,
		},
	}
	for _, tt := range tests {
		test.Run(tt.name, func(test *testing.T) {
			got := NormalizeProfile([]byte(tt.payload))
			if !reflect.DeepEqual(got, tt.want) {
				test.Errorf("NormalizeProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserProfileRoleUnion(test *testing.T) {
	tests := []struct {
		name string
		user *UserProfile
		want []Role
	}{
		{
			name: "nil profile",
			user: nil,
			want: nil,
		},
		{
			name: "primary only",
			user: &UserProfile{Role: RoleCompany},
			want: []Role{RoleCompany},
		},
		{
			name: "deduplicates primary",
			user: &UserProfile{Role: RoleMerchant, Roles: []Role{RoleMerchant, RoleEmployee}},
			want: []Role{RoleMerchant, RoleEmployee},
		},
		{
			name: "roles only",
			user: &UserProfile{Roles: []Role{RoleEmployee}},
			want: []Role{RoleEmployee},
		},
	}
	for _, tt := range tests {
		test.Run(tt.name, func(test *testing.T) {
			if got := tt.user.RoleUnion(); !reflect.DeepEqual(got, tt.want) {
				test.Errorf("RoleUnion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserProfileRoundTrip(test *testing.T) {

	user := &UserProfile{
		Id: 42, Username: "j.doe", Email: "j@doe.io", Name: "John Doe",
		Role: RoleCompany, Roles: []Role{RoleCompany},
		Capabilities: []string{"manage_wallets"},
	}

	data, err := json.Marshal(user)
	if err != nil {
		test.Fatalf("Marshal() error = %v", err)
	}

	// persisted profile must normalize back to itself
	got := NormalizeProfile(data)
	if !reflect.DeepEqual(got, user) {
		test.Errorf("NormalizeProfile(Marshal()) = %+v, want %+v", got, user)
	}
}
