// Package store provides the animation document storage interface and SQLite
// implementation. Every change to a curve is kept as a new revision, and the
// revisions written by one user action share an action id so they can be
// undone together.
package store

import (
	"context"

	"github.com/rcliao/easeit/internal/model"
)

// Revision is the new state of one curve.
type Revision struct {
	Path      string
	Keyframes []model.KeyframePoint
}

// PutParams holds parameters for storing a single curve revision.
type PutParams struct {
	Doc       string
	Path      string
	Keyframes []model.KeyframePoint
	Action    string
}

// CommitParams holds every curve revision produced by one user action.
type CommitParams struct {
	Doc       string
	Action    string
	Revisions []Revision
}

// GetParams holds parameters for retrieving a curve.
type GetParams struct {
	Doc     string
	Path    string
	History bool
	Version int // 0 means latest
}

// ListParams holds parameters for listing curves.
type ListParams struct {
	Doc   string
	Limit int
}

// RmParams holds parameters for deleting a curve.
type RmParams struct {
	Doc         string
	Path        string
	AllVersions bool
	Hard        bool
}

// Store defines the curve storage interface.
type Store interface {
	// Put stores a new revision of one curve.
	Put(ctx context.Context, p PutParams) (*model.CurveRecord, error)

	// Commit stores all revisions of one action in a single transaction.
	Commit(ctx context.Context, p CommitParams) ([]model.CurveRecord, error)

	// Get retrieves a curve by document and path.
	// Returns a slice (single element normally, multiple with History=true).
	Get(ctx context.Context, p GetParams) ([]model.CurveRecord, error)

	// List returns the latest revision of each curve.
	List(ctx context.Context, p ListParams) ([]model.CurveRecord, error)

	// Rm soft-deletes (or hard-deletes) a curve.
	Rm(ctx context.Context, p RmParams) error

	// Undo reverts the newest action of a document.
	Undo(ctx context.Context, doc string) (*UndoResult, error)

	// Close closes the store.
	Close() error
}

// UndoResult describes a reverted action.
type UndoResult struct {
	Doc      string   `json:"doc"`
	ActionID string   `json:"action_id"`
	Action   string   `json:"action"`
	Paths    []string `json:"paths"`
}
