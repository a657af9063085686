package repos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// SlotRepo is a small key/value store: each slot holds one serialized document
// that is always replaced whole.
type SlotRepo struct{ db *sqlx.DB }

func NewSlotRepo(db *sqlx.DB) *SlotRepo { return &SlotRepo{db: db} }

// Load returns the slot contents; ok is false when the slot was never written.
func (r *SlotRepo) Load(key string) ([]byte, bool, error) {
	var v string
	err := r.db.Get(&v, `SELECT value FROM storage_slots WHERE slot_key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

// Save replaces the slot in a single statement, so readers see either the old
// document or the new one.
func (r *SlotRepo) Save(key string, value []byte) error {
	_, err := r.db.Exec(`
		INSERT INTO storage_slots(slot_key, value, updated_at)
		VALUES(?, ?, ?)
		ON CONFLICT(slot_key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC().Format(time.RFC3339))
	return err
}
