package guard

import "github.com/ncc-uat/ncc-admin-services/models"

// NavItem is one sidebar entry: either a link or a section of links.
type NavItem struct {
	Title string    `json:"title"`
	Href  string    `json:"href,omitempty"`
	Roles []string  `json:"roles,omitempty"`
	Items []NavItem `json:"items,omitempty"`
}

var (
	businessRoles = []string{"business", "admin"}
	adminRoles    = []string{"admin"}
)

// Sidebar is the full, unfiltered navigation tree.
var Sidebar = []NavItem{
	{Title: "Dashboard", Href: "/"},
	{
		Title: "Balance Management",
		Items: []NavItem{
			{Title: "Adjust Balance", Href: "/adjust_balance", Roles: businessRoles},
			{Title: "PIN Recharge", Href: "/recharge_pin"},
			{Title: "PIN-less Recharge", Href: "/recharge_pinless"},
			{Title: "Check Balance", Href: "/update_and_balance_info"},
		},
	},
	{
		Title: "Bundle Management",
		Items: []NavItem{
			{Title: "Bundle Details", Href: "/bundle_info"},
			{Title: "Subscribe Bundle (Self)", Href: "/subscribe_bundle"},
			{Title: "Gift Bundle", Href: "/gift_bundle"},
			{Title: "Take Loan", Href: "/loan_bundle"},
			{Title: "List Subscribed", Href: "/subscribed_bundles"},
			{Title: "CVM Bundle", Href: "/cvm_bundle"},
			{Title: "Remove Bundle", Href: "/remove_bundle"},
			{Title: "Update Resources", Href: "/update_bundle"},
		},
	},
	{
		Title: "Notification Management",
		Roles: businessRoles,
		Items: []NavItem{
			{Title: "Templates", Href: "/master_notification_list"},
			{Title: "All Notifications", Href: "/notification_list"},
		},
	},
	{
		Title: "Rate Management",
		Roles: adminRoles,
		Items: []NavItem{
			{Title: "Roaming Rate Upload", Href: "/roaming_rate_upload"},
			{Title: "Roaming Rates", Href: "/roaming_rates"},
			{Title: "Rate Mapping Table", Href: "/rate_mapping_table"},
			{Title: "Compare Tariff", Href: "/rate_mapping_compare"},
		},
	},
	{
		Title: "Utilities",
		Roles: adminRoles,
		Items: []NavItem{
			{Title: "Unit Conversion", Href: "/unit_convertion"},
			{Title: "Tax Calculator", Href: "/tax_cal"},
			{Title: "Bundle Config", Href: "/bundle_list_new"},
		},
	},
	{
		Title: "User Management",
		Roles: adminRoles,
		Items: []NavItem{
			{Title: "All Users", Href: "/user_management"},
			{Title: "Add User", Href: "/registration"},
		},
	},
}

// HasAccess reports whether user may see an entry gated by roles.
func HasAccess(user *models.User, roles []string) bool {
	if len(roles) == 0 {
		return true
	}
	if user == nil {
		return false
	}
	for _, role := range roles {
		if user.HasGroup(role) {
			return true
		}
	}
	return false
}

// Navigation returns the sidebar as user should see it.
func Navigation(user *models.User) []NavItem {
	return filter(user, Sidebar)
}

func filter(user *models.User, items []NavItem) []NavItem {
	out := make([]NavItem, 0, len(items))
	for _, item := range items {
		if !HasAccess(user, item.Roles) {
			continue
		}
		if len(item.Items) > 0 {
			children := filter(user, item.Items)
			if len(children) == 0 {
				continue
			}
			item.Items = children
		}
		out = append(out, item)
	}
	return out
}
