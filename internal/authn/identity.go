package authn

import (
	"strings"

	"github.com/ncc-uat/ncc-admin-services/models"
)

// MockIdentity derives a user from the sign-in email. There is no directory
// behind the back office; the email alone selects the persona.
func MockIdentity(email string) models.User {
	switch {
	case strings.Contains(email, "admin"):
		return models.User{
			ID:         "1",
			Name:       "System Administrator",
			Email:      email,
			Groups:     []string{"admin", "business"},
			IsAdmin:    true,
			IsBusiness: true,
		}
	case strings.Contains(email, "business"):
		return models.User{
			ID:         "2",
			Name:       "Business User",
			Email:      email,
			Groups:     []string{"business"},
			IsBusiness: true,
		}
	default:
		return models.User{
			ID:     "3",
			Name:   "Regular User",
			Email:  email,
			Groups: []string{"user"},
		}
	}
}
