package store

import (
	"context"
	"strings"

	"github.com/rcliao/easeit/internal/model"
)

// SearchParams holds parameters for searching curves.
type SearchParams struct {
	Doc   string
	Query string
	Limit int
}

// Search finds the latest revision of curves whose data path contains the
// query substring, case-insensitively.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.CurveRecord, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 50
	}

	where := []string{"c.deleted_at IS NULL", "LOWER(c.path) LIKE ? ESCAPE '\\'"}
	args := []interface{}{"%" + escapeLike(strings.ToLower(p.Query)) + "%"}

	if p.Doc != "" {
		where = append(where, "c.doc = ?")
		args = append(args, p.Doc)
	}

	query := `SELECT ` + curveColumns + ` FROM curves c` + latestJoin + `
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY c.doc, c.path
		LIMIT ?`
	args = append(args, limit)

	return s.queryCurves(ctx, query, args...)
}

// escapeLike makes LIKE wildcards in a data path literal. Paths such as
// "pose.bones[\"arm_L\"].location" routinely contain underscores.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
