// Package directory provides a SQLite-backed source of contacts and contact
// groups for the search engine.
package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/smsportal/portal-console/internal/catalog"
	"github.com/smsportal/portal-console/internal/config"
	"github.com/smsportal/portal-console/internal/logging"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound indicates that a directory record cannot be found.
	ErrNotFound = errors.New("directory record not found")
	// ErrInvalidRecord indicates a contact or group that cannot be stored.
	ErrInvalidRecord = errors.New("invalid directory record")
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS contacts (
	id         INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	phone      TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS contact_groups (
	id           INTEGER PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	member_count INTEGER NOT NULL DEFAULT 0,
	updated_at   TEXT NOT NULL
);
`

// Contact is one entry of the caller's address book. Phone is stored in
// E.164 form.
type Contact struct {
	ID    int64  `validate:"gt=0"`
	Name  string `validate:"required,max=120"`
	Phone string `validate:"omitempty,e164"`
	Email string `validate:"omitempty,email"`
}

// Group is a named set of contacts.
type Group struct {
	ID          int64  `validate:"gt=0"`
	Name        string `validate:"required,max=120"`
	Description string `validate:"max=500"`
	MemberCount int    `validate:"gte=0"`
}

// Store reads contacts and groups from a SQLite database.
type Store struct {
	db          *sql.DB
	path        string
	phoneRegion string
	logger      logging.Logger
}

// Open opens the directory database at path, creating the file and its
// tables if they do not exist yet.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("directory: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("directory: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("directory: open db: %w", err)
	}

	s := &Store{
		db:          db,
		path:        path,
		phoneRegion: strings.ToUpper(config.Get("directory_phone_region", DefaultPhoneRegion)),
		logger:      logging.With("component", "directory"),
	}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("directory: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("directory: create schema: %w", err)
	}
	return nil
}

// Name identifies the store as a search source.
func (s *Store) Name() string {
	return "directory"
}

// Path returns the database file the store was opened from.
func (s *Store) Path() string {
	return s.path
}

// Seed upserts contacts and groups in a single transaction. Records are
// keyed by ID, so seeding twice is idempotent. Every record is normalized
// and validated before anything is written.
func (s *Store) Seed(ctx context.Context, contacts []Contact, groups []Group) error {
	contacts = append([]Contact(nil), contacts...)
	for i, c := range contacts {
		normalized, err := normalizeContact(c, s.phoneRegion)
		if err != nil {
			return fmt.Errorf("directory: seed: %w", err)
		}
		contacts[i] = normalized
	}
	groups = append([]Group(nil), groups...)
	for i, g := range groups {
		normalized, err := normalizeGroup(g)
		if err != nil {
			return fmt.Errorf("directory: seed: %w", err)
		}
		groups[i] = normalized
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("directory: begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := utcNow()
	for _, c := range contacts {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO contacts (id, name, phone, email, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	phone = excluded.phone,
	email = excluded.email,
	updated_at = excluded.updated_at`,
			c.ID, c.Name, c.Phone, c.Email, now); err != nil {
			return fmt.Errorf("directory: seed contact %d: %w", c.ID, err)
		}
	}
	for _, g := range groups {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO contact_groups (id, name, description, member_count, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	description = excluded.description,
	member_count = excluded.member_count,
	updated_at = excluded.updated_at`,
			g.ID, g.Name, g.Description, g.MemberCount, now); err != nil {
			return fmt.Errorf("directory: seed group %d: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("directory: commit seed: %w", err)
	}
	s.logger.Info("directory seeded", "contacts", len(contacts), "groups", len(groups))
	return nil
}

// Contacts returns every contact ordered by name.
func (s *Store) Contacts(ctx context.Context) ([]Contact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, phone, email FROM contacts ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("directory: list contacts: %w", err)
	}
	defer rows.Close()

	var out []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("directory: scan contact: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("directory: list contacts: %w", err)
	}
	return out, nil
}

// Groups returns every group ordered by name.
func (s *Store) Groups(ctx context.Context) ([]Group, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description, member_count FROM contact_groups ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("directory: list groups: %w", err)
	}
	defer rows.Close()

	var out []Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.MemberCount); err != nil {
			return nil, fmt.Errorf("directory: scan group: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("directory: list groups: %w", err)
	}
	return out, nil
}

// Contact returns the contact with id.
func (s *Store) Contact(ctx context.Context, id int64) (Contact, error) {
	var c Contact
	err := s.db.QueryRowContext(ctx, `SELECT id, name, phone, email FROM contacts WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return Contact{}, fmt.Errorf("directory: contact %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Contact{}, fmt.Errorf("directory: get contact %d: %w", id, err)
	}
	return c, nil
}

// Entries returns contacts then groups as search entries.
func (s *Store) Entries(ctx context.Context) ([]catalog.Entry, error) {
	contacts, err := s.Contacts(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.Groups(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]catalog.Entry, 0, len(contacts)+len(groups))
	for _, c := range contacts {
		entries = append(entries, c.Entry())
	}
	for _, g := range groups {
		entries = append(entries, g.Entry())
	}
	return entries, nil
}

// Entry converts the contact into a search entry.
func (c Contact) Entry() catalog.Entry {
	id := strconv.FormatInt(c.ID, 10)
	return catalog.Entry{
		ID:          "contact-" + id,
		Title:       c.Name,
		Description: joinNonEmpty(", ", c.Phone, c.Email),
		Path:        "/contacts/" + id,
		Category:    catalog.CategoryContact,
		Icon:        "user",
	}
}

// Entry converts the group into a search entry.
func (g Group) Entry() catalog.Entry {
	id := strconv.FormatInt(g.ID, 10)
	desc := fmt.Sprintf("%d members", g.MemberCount)
	if g.MemberCount == 1 {
		desc = "1 member"
	}
	return catalog.Entry{
		ID:          "group-" + id,
		Title:       g.Name,
		Description: joinNonEmpty(", ", g.Description, desc),
		Path:        "/contacts/groups/" + id,
		Category:    catalog.CategoryGroup,
		Icon:        "group",
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func utcNow() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}
