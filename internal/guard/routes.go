package guard

import (
	"strings"

	"github.com/ncc-uat/ncc-admin-services/models"
)

// Route is one dashboard page and the access it requires.
type Route struct {
	Path        string      `json:"path"`
	Public      bool        `json:"public,omitempty"`
	Requirement Requirement `json:"requirement"`
}

var (
	authenticated = Requirement{}
	businessOnly  = Requirement{BusinessOnly: true}
	adminOnly     = Requirement{AdminOnly: true}
)

// Routes is the page table of the dashboard.
var Routes = []Route{
	{Path: LoginPath, Public: true},
	{Path: UnauthorizedPath, Public: true},

	{Path: "/", Requirement: authenticated},
	{Path: "/bundle_page/:category", Requirement: authenticated},
	{Path: "/balance", Requirement: authenticated},
	{Path: "/bundles", Requirement: authenticated},

	{Path: "/notifications", Requirement: businessOnly},
	{Path: "/master_notification_list", Requirement: businessOnly},
	{Path: "/master_notification_add", Requirement: businessOnly},
	{Path: "/master_notification/:id", Requirement: businessOnly},
	{Path: "/notification_list", Requirement: businessOnly},
	{Path: "/notification/:id", Requirement: businessOnly},

	{Path: "/adjust_balance", Requirement: businessOnly},
	{Path: "/recharge_pin", Requirement: authenticated},
	{Path: "/voucher_recharge", Requirement: authenticated},
	{Path: "/recharge_pinless", Requirement: authenticated},
	{Path: "/update_and_balance_info", Requirement: authenticated},

	{Path: "/bundle_info", Requirement: authenticated},
	{Path: "/subscribe_bundle", Requirement: authenticated},
	{Path: "/remove_bundle", Requirement: authenticated},
	{Path: "/update_bundle", Requirement: authenticated},
	{Path: "/gift_bundle", Requirement: authenticated},
	{Path: "/loan_bundle", Requirement: authenticated},
	{Path: "/subscribed_bundles", Requirement: authenticated},
	{Path: "/cvm_bundle", Requirement: authenticated},
	{Path: "/messages-template", Requirement: authenticated},

	{Path: "/unit_convertion", Requirement: adminOnly},
	{Path: "/tax_cal", Requirement: adminOnly},
	{Path: "/bundle_list_new", Requirement: adminOnly},
	{Path: "/roaming_rate_upload", Requirement: adminOnly},
	{Path: "/roaming_rates", Requirement: adminOnly},
	{Path: "/international_rates", Requirement: adminOnly},
	{Path: "/international_rate_upload", Requirement: adminOnly},
	{Path: "/rate_mapping_table", Requirement: adminOnly},
	{Path: "/rate_mapping_compare", Requirement: adminOnly},

	{Path: "/profile", Requirement: authenticated},
	{Path: "/settings", Requirement: authenticated},
	{Path: "/user_management", Requirement: adminOnly},
	{Path: "/registration", Requirement: adminOnly},
	{Path: "/edit_user/:id", Requirement: adminOnly},
}

// Match finds the route whose pattern matches path. Segments starting with
// ':' match any single non-empty segment.
func Match(path string) (Route, bool) {
	for _, r := range Routes {
		if matchPattern(r.Path, path) {
			return r, true
		}
	}
	return Route{}, false
}

func matchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}
	ps := splitPath(pattern)
	xs := splitPath(path)
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Result is a guard decision for a concrete path.
type Result struct {
	Path  string `json:"path"`
	Known bool   `json:"known"`
	Decision
}

// Check resolves path against the route table and decides for user.
// Unknown paths render the not-found page, which is unguarded.
func Check(user *models.User, path string) Result {
	route, ok := Match(path)
	if !ok {
		return Result{Path: path, Decision: Decision{Allowed: true, Reason: "not found"}}
	}

	if route.Public {
		// A signed-in user visiting the login page is sent home.
		if route.Path == LoginPath && user != nil {
			return Result{Path: path, Known: true, Decision: Decision{Redirect: HomePath, Reason: "already authenticated"}}
		}
		return Result{Path: path, Known: true, Decision: Decision{Allowed: true}}
	}

	return Result{Path: path, Known: true, Decision: Decide(user, route.Requirement, path)}
}
