// Package guard decides whether a user may open a dashboard page and where
// to send them when they may not.
package guard

import "github.com/ncc-uat/ncc-admin-services/models"

const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
	HomePath         = "/"
)

// Requirement is the predicate a protected page declares.
type Requirement struct {
	AdminOnly    bool   `json:"adminOnly,omitempty"`
	BusinessOnly bool   `json:"businessOnly,omitempty"`
	Role         string `json:"role,omitempty"`
}

// State is carried along a redirect to the login page so the user can be
// returned to where they were going.
type State struct {
	From string `json:"from"`
}

type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
	State    *State `json:"state,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Decide applies req to user. A nil user is unauthenticated.
func Decide(user *models.User, req Requirement, from string) Decision {
	if user == nil {
		return Decision{
			Redirect: LoginPath,
			State:    &State{From: from},
			Reason:   "unauthenticated",
		}
	}

	if req.AdminOnly && !user.IsAdmin {
		return unauthorized("administrator use only")
	}

	if req.BusinessOnly && !user.IsBusiness {
		return unauthorized("business use only")
	}

	if req.Role != "" && !user.HasGroup(req.Role) {
		return unauthorized("missing role " + req.Role)
	}

	return Decision{Allowed: true}
}

func unauthorized(reason string) Decision {
	return Decision{Redirect: UnauthorizedPath, Reason: reason}
}

// LoginRedirect is where a freshly signed-in user lands.
func LoginRedirect(state *State) string {
	if state == nil || state.From == "" {
		return HomePath
	}
	return state.From
}
