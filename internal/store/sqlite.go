package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/easeit/internal/model"
)

// ErrNotFound is returned when no live revision matches.
var ErrNotFound = errors.New("not found")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS curves (
		id          TEXT PRIMARY KEY,
		doc         TEXT NOT NULL,
		path        TEXT NOT NULL,
		version     INTEGER NOT NULL DEFAULT 1,
		supersedes  TEXT,
		action_id   TEXT NOT NULL,
		action      TEXT NOT NULL DEFAULT 'put',
		created_at  TEXT NOT NULL,
		deleted_at  TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_curves_doc_path ON curves(doc, path);
	CREATE INDEX IF NOT EXISTS idx_curves_action ON curves(action_id);
	CREATE INDEX IF NOT EXISTS idx_curves_deleted ON curves(deleted_at);

	CREATE TABLE IF NOT EXISTS keyframes (
		curve_id      TEXT NOT NULL REFERENCES curves(id),
		seq           INTEGER NOT NULL,
		point_id      TEXT NOT NULL,
		co_x          REAL NOT NULL,
		co_y          REAL NOT NULL,
		left_x        REAL NOT NULL,
		left_y        REAL NOT NULL,
		right_x       REAL NOT NULL,
		right_y       REAL NOT NULL,
		left_type     TEXT NOT NULL,
		right_type    TEXT NOT NULL,
		interpolation TEXT NOT NULL,
		selected      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (curve_id, seq)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Put stores a new revision of one curve as its own action.
func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.CurveRecord, error) {
	recs, err := s.Commit(ctx, CommitParams{
		Doc:       p.Doc,
		Action:    p.Action,
		Revisions: []Revision{{Path: p.Path, Keyframes: p.Keyframes}},
	})
	if err != nil {
		return nil, err
	}
	return &recs[0], nil
}

// Commit writes every revision in one transaction under a fresh action id.
// Points without an id, or repeating one, are given new ids.
func (s *SQLiteStore) Commit(ctx context.Context, p CommitParams) ([]model.CurveRecord, error) {
	if p.Doc == "" {
		return nil, fmt.Errorf("doc is required")
	}
	if len(p.Revisions) == 0 {
		return nil, fmt.Errorf("nothing to commit")
	}
	action := p.Action
	if action == "" {
		action = "put"
	}

	now := time.Now().UTC()
	actionID := s.newID()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	recs := make([]model.CurveRecord, 0, len(p.Revisions))
	for _, r := range p.Revisions {
		rec, err := s.insertRevision(ctx, tx, p.Doc, r, actionID, action, now)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *SQLiteStore) insertRevision(ctx context.Context, tx *sql.Tx, doc string, r Revision, actionID, action string, now time.Time) (model.CurveRecord, error) {
	if r.Path == "" {
		return model.CurveRecord{}, fmt.Errorf("curve path is required")
	}

	// Versions keep counting past undone revisions.
	var maxVersion int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM curves WHERE doc = ? AND path = ?`,
		doc, r.Path).Scan(&maxVersion); err != nil {
		return model.CurveRecord{}, err
	}

	var supersedes *string
	var prevID string
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM curves
		 WHERE doc = ? AND path = ? AND deleted_at IS NULL
		 ORDER BY version DESC LIMIT 1`, doc, r.Path).Scan(&prevID)
	if err == nil {
		supersedes = &prevID
	}

	rec := model.CurveRecord{
		ID:        s.newID(),
		Doc:       doc,
		Path:      r.Path,
		Version:   maxVersion + 1,
		ActionID:  actionID,
		Action:    action,
		CreatedAt: now,
		Keyframes: make([]model.KeyframePoint, 0, len(r.Keyframes)),
	}
	if supersedes != nil {
		rec.Supersedes = *supersedes
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO curves (id, doc, path, version, supersedes, action_id, action, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, doc, r.Path, rec.Version, supersedes, actionID, action, now.Format(time.RFC3339Nano))
	if err != nil {
		return rec, fmt.Errorf("insert curve: %w", err)
	}

	seen := make(map[model.PointID]bool, len(r.Keyframes))
	for i, k := range r.Keyframes {
		if err := k.Validate(); err != nil {
			return rec, fmt.Errorf("curve %q: %w", r.Path, err)
		}
		if k.ID == "" || seen[k.ID] {
			k.ID = model.PointID(s.newID())
		}
		seen[k.ID] = true

		_, err = tx.ExecContext(ctx,
			`INSERT INTO keyframes (curve_id, seq, point_id, co_x, co_y, left_x, left_y, right_x, right_y,
			                        left_type, right_type, interpolation, selected)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, i, string(k.ID), k.Co.X, k.Co.Y, k.HandleLeft.X, k.HandleLeft.Y, k.HandleRight.X, k.HandleRight.Y,
			string(k.HandleLeftType), string(k.HandleRightType), string(k.Interpolation), k.Selected)
		if err != nil {
			return rec, fmt.Errorf("insert keyframe: %w", err)
		}
		rec.Keyframes = append(rec.Keyframes, k)
	}
	return rec, nil
}

const curveColumns = `c.id, c.doc, c.path, c.version, c.supersedes, c.action_id, c.action, c.created_at, c.deleted_at`

// latestJoin restricts c to the newest live revision of each doc+path.
const latestJoin = `
		INNER JOIN (
			SELECT doc, path, MAX(version) AS max_ver
			FROM curves WHERE deleted_at IS NULL
			GROUP BY doc, path
		) latest ON c.doc = latest.doc AND c.path = latest.path AND c.version = latest.max_ver`

func (s *SQLiteStore) Get(ctx context.Context, p GetParams) ([]model.CurveRecord, error) {
	var query string
	var args []interface{}

	if p.History {
		query = `SELECT ` + curveColumns + ` FROM curves c
				 WHERE c.doc = ? AND c.path = ? AND c.deleted_at IS NULL
				 ORDER BY c.version DESC`
		args = []interface{}{p.Doc, p.Path}
	} else if p.Version > 0 {
		query = `SELECT ` + curveColumns + ` FROM curves c
				 WHERE c.doc = ? AND c.path = ? AND c.version = ? AND c.deleted_at IS NULL
				 LIMIT 1`
		args = []interface{}{p.Doc, p.Path, p.Version}
	} else {
		query = `SELECT ` + curveColumns + ` FROM curves c
				 WHERE c.doc = ? AND c.path = ? AND c.deleted_at IS NULL
				 ORDER BY c.version DESC LIMIT 1`
		args = []interface{}{p.Doc, p.Path}
	}

	recs, err := s.queryCurves(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("curve %s/%s: %w", p.Doc, p.Path, ErrNotFound)
	}
	return recs, nil
}

// List returns the latest revision of each curve ordered by document and
// path. A zero limit returns everything.
func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.CurveRecord, error) {
	where := []string{"c.deleted_at IS NULL"}
	var args []interface{}

	if p.Doc != "" {
		where = append(where, "c.doc = ?")
		args = append(args, p.Doc)
	}

	query := `SELECT ` + curveColumns + ` FROM curves c` + latestJoin + `
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY c.doc, c.path`
	if p.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, p.Limit)
	}

	return s.queryCurves(ctx, query, args...)
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	if p.Hard {
		if p.AllVersions {
			_, err := s.db.ExecContext(ctx,
				`DELETE FROM keyframes WHERE curve_id IN (SELECT id FROM curves WHERE doc = ? AND path = ?)`,
				p.Doc, p.Path)
			if err != nil {
				return err
			}
			res, err := s.db.ExecContext(ctx, `DELETE FROM curves WHERE doc = ? AND path = ?`, p.Doc, p.Path)
			if err != nil {
				return err
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return fmt.Errorf("curve %s/%s: %w", p.Doc, p.Path, ErrNotFound)
			}
			return nil
		}
		id, err := s.latestID(ctx, p.Doc, p.Path)
		if err != nil {
			return err
		}
		if _, err := s.db.ExecContext(ctx, `DELETE FROM keyframes WHERE curve_id = ?`, id); err != nil {
			return err
		}
		_, err = s.db.ExecContext(ctx, `DELETE FROM curves WHERE id = ?`, id)
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if p.AllVersions {
		res, err := s.db.ExecContext(ctx,
			`UPDATE curves SET deleted_at = ? WHERE doc = ? AND path = ? AND deleted_at IS NULL`,
			now, p.Doc, p.Path)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("curve %s/%s: %w", p.Doc, p.Path, ErrNotFound)
		}
		return nil
	}

	id, err := s.latestID(ctx, p.Doc, p.Path)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `UPDATE curves SET deleted_at = ? WHERE id = ?`, now, id)
	return err
}

func (s *SQLiteStore) latestID(ctx context.Context, doc, path string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM curves WHERE doc = ? AND path = ? AND deleted_at IS NULL ORDER BY version DESC LIMIT 1`,
		doc, path).Scan(&id)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("curve %s/%s: %w", doc, path, ErrNotFound)
	}
	return id, err
}

// Undo soft-deletes every live revision written by the newest action of doc,
// making the revisions they superseded current again.
func (s *SQLiteStore) Undo(ctx context.Context, doc string) (*UndoResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res := &UndoResult{Doc: doc}
	err = tx.QueryRowContext(ctx,
		`SELECT action_id, action FROM curves
		 WHERE doc = ? AND deleted_at IS NULL
		 ORDER BY rowid DESC LIMIT 1`, doc).Scan(&res.ActionID, &res.Action)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("nothing to undo in %s: %w", doc, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT path FROM curves WHERE action_id = ? AND deleted_at IS NULL ORDER BY path`, res.ActionID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			rows.Close()
			return nil, err
		}
		res.Paths = append(res.Paths, path)
	}
	rows.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`UPDATE curves SET deleted_at = ? WHERE action_id = ? AND deleted_at IS NULL`,
		now, res.ActionID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// queryCurves runs a curve query and attaches each record's keyframes.
func (s *SQLiteStore) queryCurves(ctx context.Context, query string, args ...interface{}) ([]model.CurveRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	var recs []model.CurveRecord
	for rows.Next() {
		rec, err := scanCurve(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range recs {
		kfs, err := s.keyframes(ctx, recs[i].ID)
		if err != nil {
			return nil, fmt.Errorf("load keyframes: %w", err)
		}
		recs[i].Keyframes = kfs
	}
	return recs, nil
}

func (s *SQLiteStore) keyframes(ctx context.Context, curveID string) ([]model.KeyframePoint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT point_id, co_x, co_y, left_x, left_y, right_x, right_y, left_type, right_type, interpolation, selected
		 FROM keyframes WHERE curve_id = ? ORDER BY seq`, curveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	kfs := []model.KeyframePoint{}
	for rows.Next() {
		k, err := scanKeyframe(rows)
		if err != nil {
			return nil, err
		}
		kfs = append(kfs, k)
	}
	return kfs, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCurve(row scanner) (model.CurveRecord, error) {
	var c model.CurveRecord
	var supersedes, deletedAt sql.NullString
	var createdAt string

	err := row.Scan(
		&c.ID, &c.Doc, &c.Path, &c.Version, &supersedes,
		&c.ActionID, &c.Action, &createdAt, &deletedAt,
	)
	if err != nil {
		return c, err
	}

	c.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if supersedes.Valid {
		c.Supersedes = supersedes.String
	}
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339Nano, deletedAt.String)
		c.DeletedAt = &t
	}
	return c, nil
}

func scanKeyframe(row scanner) (model.KeyframePoint, error) {
	var k model.KeyframePoint
	var id, left, right, interp string

	err := row.Scan(
		&id, &k.Co.X, &k.Co.Y, &k.HandleLeft.X, &k.HandleLeft.Y, &k.HandleRight.X, &k.HandleRight.Y,
		&left, &right, &interp, &k.Selected,
	)
	if err != nil {
		return k, err
	}
	k.ID = model.PointID(id)
	k.HandleLeftType = model.HandleType(left)
	k.HandleRightType = model.HandleType(right)
	k.Interpolation = model.Interpolation(interp)
	return k, nil
}
