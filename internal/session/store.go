package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists sessions to a local SQLite file so logins survive
// portal restarts.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the session database at dbPath and
// applies schema migrations.
func OpenStore(dbPath string) (*Store, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create session db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const schemaVersion = 1

func applyMigrations(db *sql.DB) error {
	// WAL improves write concurrency.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	err := db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}

	if current < 1 {
		if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
			id          TEXT PRIMARY KEY,
			user_id     INTEGER NOT NULL,
			email       TEXT NOT NULL,
			name        TEXT NOT NULL DEFAULT '',
			role        TEXT NOT NULL DEFAULT '',
			bearer      TEXT NOT NULL DEFAULT '',
			basic_user  TEXT NOT NULL DEFAULT '',
			basic_pass  TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMP NOT NULL,
			expires_at  TIMESTAMP NOT NULL
		);`); err != nil {
			return fmt.Errorf("create sessions table: %w", err)
		}
	}

	if current != schemaVersion {
		if _, err := db.Exec(`INSERT INTO meta (key, value) VALUES ('schema_version', ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
	}
	return nil
}

func (s *Store) Save(ctx context.Context, sess *Session) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO sessions
		(id, user_id, email, name, role, bearer, basic_user, basic_pass, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id, email = excluded.email, name = excluded.name,
			role = excluded.role, bearer = excluded.bearer,
			basic_user = excluded.basic_user, basic_pass = excluded.basic_pass,
			expires_at = excluded.expires_at`,
		sess.ID, sess.UserID, sess.Email, sess.Name, sess.Role,
		sess.Credential.Bearer, sess.Credential.BasicUser, sess.Credential.BasicPass,
		sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get loads a session by id. A missing, malformed, or expired row is
// reported as (nil, nil): stored state never forces an error, only a
// re-login.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, user_id, email, name, role,
		bearer, basic_user, basic_pass, created_at, expires_at
		FROM sessions WHERE id = ?`, id)

	var sess Session
	err := row.Scan(&sess.ID, &sess.UserID, &sess.Email, &sess.Name, &sess.Role,
		&sess.Credential.Bearer, &sess.Credential.BasicUser, &sess.Credential.BasicPass,
		&sess.CreatedAt, &sess.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		// Treat unreadable rows as absent rather than failing the request.
		return nil, nil
	}
	if sess.Expired(time.Now()) {
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

// PurgeExpired removes sessions past their expiry. Called at startup.
func (s *Store) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
