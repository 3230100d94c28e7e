package store

import (
	"database/sql"
	"errors"
	"time"
)

// Setting keys.
const (
	keyLastPort    = "last_port"
	keyFingerA     = "finger_a"
	keyFingerB     = "finger_b"
	keyLastSession = "last_session"
	keyLastRunAt   = "last_run_at"
)

// SettingsRepository provides access to operator settings.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Get retrieves a setting value by key. Returns ErrNotFound when the key has
// never been written.
func (r *SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set writes a setting value, replacing any previous value for the key.
func (r *SettingsRepository) Set(key, value string) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now(),
	)
	return err
}

// LastPort returns the port name used by the previous run.
func (r *SettingsRepository) LastPort() (string, error) {
	return r.Get(keyLastPort)
}

// SetLastPort records the port name selected for this run.
func (r *SettingsRepository) SetLastPort(name string) error {
	return r.Set(keyLastPort, name)
}

// FingerPair returns the tracked finger pair from the previous run.
func (r *SettingsRepository) FingerPair() (a, b string, err error) {
	if a, err = r.Get(keyFingerA); err != nil {
		return "", "", err
	}
	if b, err = r.Get(keyFingerB); err != nil {
		return "", "", err
	}
	return a, b, nil
}

// SetFingerPair records the tracked finger pair.
func (r *SettingsRepository) SetFingerPair(a, b string) error {
	if err := r.Set(keyFingerA, a); err != nil {
		return err
	}
	return r.Set(keyFingerB, b)
}

// RecordRun stores the session identifier and timestamp of the current run.
func (r *SettingsRepository) RecordRun(sessionID string) error {
	if err := r.Set(keyLastSession, sessionID); err != nil {
		return err
	}
	return r.Set(keyLastRunAt, time.Now().Format(time.RFC3339))
}

// LastSession returns the session identifier of the previous run.
func (r *SettingsRepository) LastSession() (string, error) {
	return r.Get(keyLastSession)
}
