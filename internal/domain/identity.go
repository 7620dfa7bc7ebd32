package domain

import "time"

// Demo role constants. The login flow fabricates an identity from one of
// these archetypes instead of verifying real credentials.
const (
	RoleConstructionFirm = "construction-firm"
	RoleVendor           = "vendor"
	RoleClient           = "client"
)

// Identity is the single authenticated session record. At most one exists
// at a time; it is persisted to the session slot and rehydrated at startup.
type Identity struct {
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	DisplayName  string    `json:"display_name"`
	Organization string    `json:"organization"`
	LoggedInAt   time.Time `json:"logged_in_at"`
}

// RoleProfile holds the display fields derived from a demo role.
type RoleProfile struct {
	DisplayName  string
	Organization string
}

// RoleProfiles is the canonical role -> profile mapping. Both login
// derivation and profile display consult this table; there is no second copy.
var RoleProfiles = map[string]RoleProfile{
	RoleConstructionFirm: {DisplayName: "John Smith", Organization: "ABC Construction Ltd."},
	RoleVendor:           {DisplayName: "Sarah Johnson", Organization: "Premium Supplies Co."},
	RoleClient:           {DisplayName: "Mike Wilson", Organization: "Wilson Properties"},
}

// DefaultProfile is used when a login role is outside the demo set.
var DefaultProfile = RoleProfile{DisplayName: "Demo User", Organization: "Demo Company"}

// ProfileForRole returns the profile for a role, falling back to the
// default pair for unknown roles rather than failing.
func ProfileForRole(role string) RoleProfile {
	if p, ok := RoleProfiles[role]; ok {
		return p
	}
	return DefaultProfile
}

// LoginInput represents a demo login request.
type LoginInput struct {
	Role  string `json:"role" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// TokenPair represents the JWT token pair issued on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
