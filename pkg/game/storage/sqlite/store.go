// Package sqlite persists generated mazes in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"labyrinth/pkg/engine/storage/sqlitemigrate"
	"labyrinth/pkg/game/export"
	"labyrinth/pkg/game/storage/sqlite/migrations"
)

var (
	// ErrNotFound is returned for an unknown maze id
	ErrNotFound = errors.New("maze not found")
	// ErrConflict is returned when a snapshot breaks a uniqueness rule,
	// such as two rooms on one position
	ErrConflict = errors.New("maze conflicts with stored data")
)

// MazeSummary is one row of ListMazes
type MazeSummary struct {
	ID        string
	Seed      int64
	RoomLimit int
	RoomCount int
	Status    string
	CreatedAt time.Time
}

// Store persists maze snapshots in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite maze store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// SaveMaze stores snap under a new id and returns the id.
func (s *Store) SaveMaze(ctx context.Context, snap export.Snapshot) (string, error) {
	if err := s.ready(ctx); err != nil {
		return "", err
	}
	if _, ok := snap.Rooms[snap.SpawnRoom]; !ok {
		return "", fmt.Errorf("spawn room %q is not in the snapshot", snap.SpawnRoom)
	}

	mazeID := uuid.NewString()
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin save maze: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO mazes (id, seed, room_limit, room_count, status, spawn_room_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		mazeID,
		snap.Seed,
		snap.RoomLimit,
		len(snap.Rooms),
		snap.Status,
		snap.SpawnRoom,
		toMillis(s.now()),
	); err != nil {
		return "", fmt.Errorf("insert maze: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO maze_rooms (maze_id, room_id, name, x, y, north_id, south_id, east_id, west_id, players, item_reward)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare insert room: %w", err)
	}
	defer stmt.Close()

	for id, rec := range snap.Rooms {
		players, err := json.Marshal(nonNil(rec.Players))
		if err != nil {
			return "", fmt.Errorf("encode players of room %s: %w", id, err)
		}
		var reward sql.NullString
		if rec.ItemReward != nil {
			reward = sql.NullString{String: *rec.ItemReward, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			mazeID, id, rec.Name, rec.Position[0], rec.Position[1],
			rec.North, rec.South, rec.East, rec.West,
			string(players), reward,
		); err != nil {
			if isUniqueViolation(err) {
				return "", fmt.Errorf("insert room %s: %w", id, ErrConflict)
			}
			return "", fmt.Errorf("insert room %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit save maze: %w", err)
	}
	return mazeID, nil
}

// LoadMaze returns the snapshot stored under mazeID.
func (s *Store) LoadMaze(ctx context.Context, mazeID string) (export.Snapshot, error) {
	if err := s.ready(ctx); err != nil {
		return export.Snapshot{}, err
	}

	var snap export.Snapshot
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT seed, room_limit, room_count, status, spawn_room_id FROM mazes WHERE id = ?`, mazeID)
	if err := row.Scan(&snap.Seed, &snap.RoomLimit, &snap.RoomCount, &snap.Status, &snap.SpawnRoom); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return export.Snapshot{}, ErrNotFound
		}
		return export.Snapshot{}, fmt.Errorf("get maze: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT room_id, name, x, y, north_id, south_id, east_id, west_id, players, item_reward
		 FROM maze_rooms WHERE maze_id = ? ORDER BY x, y`, mazeID)
	if err != nil {
		return export.Snapshot{}, fmt.Errorf("list maze rooms: %w", err)
	}
	defer rows.Close()

	snap.Rooms = make(map[string]export.RoomRecord, snap.RoomCount)
	snap.RoomCoordinates = make([][2]int, 0, snap.RoomCount)
	for rows.Next() {
		var (
			rec     export.RoomRecord
			players string
			reward  sql.NullString
		)
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Position[0], &rec.Position[1],
			&rec.North, &rec.South, &rec.East, &rec.West,
			&players, &reward,
		); err != nil {
			return export.Snapshot{}, fmt.Errorf("scan maze room: %w", err)
		}
		if err := json.Unmarshal([]byte(players), &rec.Players); err != nil {
			return export.Snapshot{}, fmt.Errorf("decode players of room %s: %w", rec.ID, err)
		}
		rec.Players = nonNil(rec.Players)
		if reward.Valid {
			name := reward.String
			rec.ItemReward = &name
		}
		snap.Rooms[rec.ID] = rec
		snap.RoomCoordinates = append(snap.RoomCoordinates, rec.Position)
	}
	if err := rows.Err(); err != nil {
		return export.Snapshot{}, fmt.Errorf("iterate maze rooms: %w", err)
	}
	return snap, nil
}

// ListMazes returns every stored maze, newest first.
func (s *Store) ListMazes(ctx context.Context) ([]MazeSummary, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, seed, room_limit, room_count, status, created_at
		 FROM mazes ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list mazes: %w", err)
	}
	defer rows.Close()

	var mazes []MazeSummary
	for rows.Next() {
		var (
			m         MazeSummary
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &m.Seed, &m.RoomLimit, &m.RoomCount, &m.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scan maze: %w", err)
		}
		m.CreatedAt = fromMillis(createdAt)
		mazes = append(mazes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mazes: %w", err)
	}
	return mazes, nil
}

// DeleteMaze removes a stored maze and its rooms.
func (s *Store) DeleteMaze(ctx context.Context, mazeID string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete maze: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM maze_rooms WHERE maze_id = ?`, mazeID); err != nil {
		return fmt.Errorf("delete maze rooms: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM mazes WHERE id = ?`, mazeID)
	if err != nil {
		return fmt.Errorf("delete maze: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete maze: %w", err)
	} else if n == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete maze: %w", err)
	}
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
