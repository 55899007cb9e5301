// Package curve implements an in-memory animation curve whose keyframe
// points are addressed by stable identity.
package curve

import (
	"math/rand"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/easeit/internal/model"
)

// Curve is an ordered collection of keyframe points. Points are owned by the
// curve and handed out as pointers; callers mutate them in place.
//
// Removing a point never invalidates the identity of any other point.
type Curve struct {
	Path string

	points  map[model.PointID]*model.KeyframePoint
	order   []model.PointID
	entropy *ulid.MonotonicEntropy
}

// New returns an empty curve for the given data path.
func New(path string) *Curve {
	return &Curve{
		Path:    path,
		points:  make(map[model.PointID]*model.KeyframePoint),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// FromPoints builds a curve from existing points, keeping their ids. Points
// without an id are assigned one. The input order is preserved.
func FromPoints(path string, pts []model.KeyframePoint) *Curve {
	c := New(path)
	for _, p := range pts {
		kp := p
		if kp.ID == "" || c.points[kp.ID] != nil {
			kp.ID = c.newID()
		}
		c.points[kp.ID] = &kp
		c.order = append(c.order, kp.ID)
	}
	return c
}

func (c *Curve) newID() model.PointID {
	return model.PointID(ulid.MustNew(ulid.Timestamp(time.Now()), c.entropy).String())
}

// Len returns the number of points.
func (c *Curve) Len() int {
	return len(c.order)
}

// Points returns the points in their current order. The order is frame
// ascending after Update, insertion order otherwise.
func (c *Curve) Points() []*model.KeyframePoint {
	out := make([]*model.KeyframePoint, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.points[id])
	}
	return out
}

// Point looks up a point by id.
func (c *Curve) Point(id model.PointID) (*model.KeyframePoint, bool) {
	p, ok := c.points[id]
	return p, ok
}

// Insert adds a point at (frame, value) with AUTO_CLAMPED handles sitting on
// the point and BEZIER interpolation.
func (c *Curve) Insert(frame, value float64) *model.KeyframePoint {
	co := model.V(frame, value)
	p := &model.KeyframePoint{
		ID:              c.newID(),
		Co:              co,
		HandleLeft:      co,
		HandleRight:     co,
		HandleLeftType:  model.HandleAutoClamped,
		HandleRightType: model.HandleAutoClamped,
		Interpolation:   model.InterpBezier,
	}
	c.points[p.ID] = p
	c.order = append(c.order, p.ID)
	return p
}

// Remove deletes a point by id. It reports whether the point existed.
func (c *Curve) Remove(id model.PointID) bool {
	if _, ok := c.points[id]; !ok {
		return false
	}
	delete(c.points, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Selected returns the ids of selected points in current order.
func (c *Curve) Selected() []model.PointID {
	var ids []model.PointID
	for _, id := range c.order {
		if c.points[id].Selected {
			ids = append(ids, id)
		}
	}
	return ids
}

// Keyframes returns a copy of the points in current order.
func (c *Curve) Keyframes() []model.KeyframePoint {
	out := make([]model.KeyframePoint, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.points[id])
	}
	return out
}

// Clone returns a deep copy sharing no points with c.
func (c *Curve) Clone() *Curve {
	return FromPoints(c.Path, c.Keyframes())
}

// Update sorts the points by frame and recomputes every VECTOR, AUTO and
// AUTO_CLAMPED handle from its neighbours. FREE and ALIGNED handles are left
// as they are.
func (c *Curve) Update() {
	sort.SliceStable(c.order, func(i, j int) bool {
		return c.points[c.order[i]].Co.X < c.points[c.order[j]].Co.X
	})

	pts := c.Points()
	for i, p := range pts {
		var prev, next *model.KeyframePoint
		if i > 0 {
			prev = pts[i-1]
		}
		if i < len(pts)-1 {
			next = pts[i+1]
		}
		recalcHandles(p, prev, next)
	}
}
