// Package catalog lists the navigable destinations of the portal that the
// command palette can jump to.
package catalog

import (
	"strings"
)

// Category groups search targets in the palette.
type Category string

const (
	CategoryPage    Category = "page"
	CategoryContact Category = "contact"
	CategoryGroup   Category = "group"
	CategoryMessage Category = "message"
	CategoryClient  Category = "client"
	CategoryUser    Category = "user"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPage,
	CategoryContact,
	CategoryGroup,
	CategoryMessage,
	CategoryClient,
	CategoryUser,
}

// IsValid checks if the category is known.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// Label returns the plural heading used when grouping results.
func (c Category) Label() string {
	switch c {
	case CategoryPage:
		return "Pages"
	case CategoryContact:
		return "Contacts"
	case CategoryGroup:
		return "Groups"
	case CategoryMessage:
		return "Messages"
	case CategoryClient:
		return "Clients"
	case CategoryUser:
		return "Users"
	case "":
		return ""
	default:
		return strings.ToUpper(string(c[:1])) + string(c[1:])
	}
}

// Entry is one navigable destination.
type Entry struct {
	ID          string
	Title       string
	Description string
	Path        string
	Category    Category
	// Icon is an opaque hint for renderers.
	Icon string
}

// PageID derives the stable id of a page from its path.
func PageID(path string) string {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return "page-root"
	}
	return "page-" + strings.Join(segments, "-")
}

func page(title, description, path, icon string) Entry {
	return Entry{
		ID:          PageID(path),
		Title:       title,
		Description: description,
		Path:        path,
		Category:    CategoryPage,
		Icon:        icon,
	}
}

// clientPages are reachable by every signed-in caller. Token management
// lives under /admin/tokens for historical reasons and stays visible to
// clients.
var clientPages = []Entry{
	page("Dashboard", "Overview of your messaging activity and balance", "/dashboard", "home"),
	page("Send Message", "Compose and send a single or bulk SMS", "/messaging/send", "send"),
	page("Message History", "Sent messages and delivery reports", "/messaging/history", "history"),
	page("Message Templates", "Reusable message bodies", "/messaging/templates", "template"),
	page("Sender IDs", "Request and manage sender IDs", "/messaging/sender-ids", "badge"),
	page("Contacts", "Manage your contact list", "/contacts", "contacts"),
	page("Contact Groups", "Organise contacts into groups", "/contacts/groups", "group"),
	page("Documents", "Upload and review business documents", "/documents", "file"),
	page("Reports", "Usage and spending reports", "/reports", "chart"),
	page("Top Up", "Buy SMS credit", "/topup", "wallet"),
	page("API Tokens", "Create and revoke API tokens", "/admin/tokens", "key"),
}

var additionalClientPages = []Entry{
	page("Profile", "Your account details", "/profile", "user"),
	page("Settings", "Notification and security preferences", "/settings", "settings"),
	page("Business Verification", "Submit KYB information", "/kyb", "shield"),
	page("Top Up History", "Previous manual top-up requests", "/topup/history", "receipt"),
	page("Verify Phone", "Confirm a phone number with a one-time code", "/verify", "lock"),
}

var adminPages = []Entry{
	page("Admin Dashboard", "Platform-wide activity and revenue", "/admin/dashboard", "home"),
	page("Client Management", "Browse and edit client accounts", "/admin/clients", "building"),
	page("User Management", "Portal users and their roles", "/admin/users", "users"),
	page("Document Review", "Approve uploaded client documents", "/admin/documents", "file-check"),
	page("KYB Review", "Review business verification submissions", "/admin/kyb", "shield-check"),
	page("Roles & Permissions", "Define access roles", "/admin/roles", "lock"),
	page("Top Up Requests", "Approve manual top-up requests", "/admin/topups", "wallet"),
	page("Token Management", "All API tokens across clients", "/admin/tokens/all", "key"),
}

var additionalAdminPages = []Entry{
	page("Sender ID Requests", "Approve or reject sender ID requests", "/admin/sender-ids", "badge-check"),
	page("Admin Reports", "Platform usage and billing reports", "/admin/reports", "chart"),
	page("System Settings", "Gateways, pricing and platform configuration", "/admin/settings", "settings"),
}

// Build returns the page catalog for a caller. Client pages come first;
// admin pages are appended only for super admins. The result is a fresh
// slice the caller may keep.
func Build(isSuperAdmin bool) []Entry {
	n := len(clientPages) + len(additionalClientPages)
	if isSuperAdmin {
		n += len(adminPages) + len(additionalAdminPages)
	}
	out := make([]Entry, 0, n)
	out = append(out, clientPages...)
	out = append(out, additionalClientPages...)
	if isSuperAdmin {
		out = append(out, adminPages...)
		out = append(out, additionalAdminPages...)
	}
	return out
}
