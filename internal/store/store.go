// Package store is the sqlite-backed item source behind the demo's picker
// sheet.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT ''
);
`

// Item is one selectable row in the picker sheet.
type Item struct {
	ID     int
	Title  string
	Detail string
}

// Store wraps the demo database.
type Store struct {
	db *sql.DB
}

// Open opens the database at path (":memory:" for a throwaway store),
// applies the schema and seeds demo rows when empty.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	s := &Store{db: db}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns every item ordered by id.
func (s *Store) List() ([]Item, error) {
	rows, err := s.db.Query(`SELECT id, title, detail FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Detail); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Get returns one item by id.
func (s *Store) Get(id int) (Item, error) {
	var it Item
	err := s.db.QueryRow(`SELECT id, title, detail FROM items WHERE id = ?`, id).
		Scan(&it.ID, &it.Title, &it.Detail)
	if err != nil {
		return Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return it, nil
}

func (s *Store) seed() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if count > 0 {
		return nil
	}
	seeds := []Item{
		{Title: "Inbox", Detail: "Unsorted captures waiting for a home."},
		{Title: "Today", Detail: "Everything scheduled for the current day."},
		{Title: "Upcoming", Detail: "The next seven days at a glance."},
		{Title: "Someday", Detail: "Ideas parked without a date."},
		{Title: "Archive", Detail: "Completed and dismissed entries."},
		{Title: "Trash", Detail: "Deleted entries kept for thirty days."},
	}
	for _, it := range seeds {
		if _, err := s.db.Exec(`INSERT INTO items (title, detail) VALUES (?, ?)`, it.Title, it.Detail); err != nil {
			return fmt.Errorf("seed item: %w", err)
		}
	}
	return nil
}
