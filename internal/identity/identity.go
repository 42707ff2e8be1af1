// Package identity turns the backend's loosely typed user payload into a
// typed caller identity with a single privilege check.
package identity

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// AccountTypeRoot is the account type granted super admin rights.
const AccountTypeRoot = "root"

// superAdminID is the bootstrap account that is always a super admin.
const superAdminID = 1

// ErrInvalidPayload is returned when a payload is not valid JSON.
var ErrInvalidPayload = errors.New("invalid identity payload")

// Identity is the caller as seen by the console.
type Identity struct {
	ID          int
	AccountType string
	Name        string
	Email       string
	present     bool
}

// Anonymous returns the identity used when no user is known. It has no
// privileges.
func Anonymous() Identity {
	return Identity{}
}

// New returns a present identity with the given id and account type.
func New(id int, accountType string) Identity {
	return Identity{ID: id, AccountType: accountType, present: true}
}

// IsAnonymous reports whether no user payload backed this identity.
func (i Identity) IsAnonymous() bool {
	return !i.present
}

// IsSuperAdmin reports whether the caller may see admin destinations.
func (i Identity) IsSuperAdmin() bool {
	if i.IsAnonymous() {
		return false
	}
	return i.AccountType == AccountTypeRoot || i.ID == superAdminID
}

// String returns a short description for logs and status lines.
func (i Identity) String() string {
	if i.IsAnonymous() {
		return "anonymous"
	}
	role := "client"
	if i.IsSuperAdmin() {
		role = "super-admin"
	}
	if i.Name != "" {
		return fmt.Sprintf("%s (#%d, %s)", i.Name, i.ID, role)
	}
	return fmt.Sprintf("#%d (%s)", i.ID, role)
}

// payloadRoots lists where the user object may sit, most specific first.
var payloadRoots = []string{"message.client", "client", "user", ""}

// FromPayload parses a user payload. The client record is looked up under
// message.client first, then client, user and the top level. An empty or
// null payload yields Anonymous.
func FromPayload(data []byte) (Identity, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return Anonymous(), nil
	}
	if !gjson.Valid(trimmed) {
		return Identity{}, ErrInvalidPayload
	}
	doc := gjson.Parse(trimmed)
	if !doc.IsObject() {
		return Identity{}, fmt.Errorf("%w: expected an object", ErrInvalidPayload)
	}

	for _, root := range payloadRoots {
		node := doc
		if root != "" {
			node = doc.Get(root)
		}
		if !node.IsObject() {
			continue
		}
		id := node.Get("id")
		accountType := node.Get("account_type")
		if !id.Exists() && !accountType.Exists() {
			continue
		}
		return Identity{
			ID:          wholeID(id),
			AccountType: accountType.String(),
			Name:        node.Get("name").String(),
			Email:       node.Get("email").String(),
			present:     true,
		}, nil
	}
	return Anonymous(), nil
}

// wholeID returns the id only when it is a JSON integer. Strings, fractions
// and other types yield zero so they never match the bootstrap account.
func wholeID(id gjson.Result) int {
	if id.Type != gjson.Number {
		return 0
	}
	n := id.Int()
	if float64(n) != id.Num {
		return 0
	}
	return int(n)
}

// FromFile reads and parses a payload file.
func FromFile(path string) (Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Identity{}, fmt.Errorf("read identity %s: %w", path, err)
	}
	id, err := FromPayload(data)
	if err != nil {
		return Identity{}, fmt.Errorf("parse identity %s: %w", path, err)
	}
	return id, nil
}
