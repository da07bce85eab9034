package game

import "math"

// RectF is an axis-aligned rectangle in world XY space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) Contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

type quadItem struct {
	idx    int // index into the animal slice
	bounds RectF
}

// QuadNode is a simple quadtree used as the collision broad phase over
// animal bounding rects.
type QuadNode struct {
	bounds RectF
	depth  int
	items  []quadItem
	child  [4]*QuadNode
}

func NewQuadNode(bounds RectF, depth int) *QuadNode {
	return &QuadNode{
		bounds: bounds,
		depth:  depth,
		items:  make([]quadItem, 0, QuadCapacity),
	}
}

func (n *QuadNode) Insert(idx int, bounds RectF) {
	if n.child[0] != nil {
		if c := n.childThatContains(bounds); c != nil {
			c.Insert(idx, bounds)
			return
		}
	}

	n.items = append(n.items, quadItem{idx: idx, bounds: bounds})

	if len(n.items) > QuadCapacity && n.depth < QuadMaxDepth {
		n.subdivide()
		kept := n.items[:0]
		for _, it := range n.items {
			if c := n.childThatContains(it.bounds); c != nil {
				c.Insert(it.idx, it.bounds)
			} else {
				kept = append(kept, it)
			}
		}
		n.items = kept
	}
}

func (n *QuadNode) Query(r RectF, out *[]int) {
	if !n.bounds.Intersects(r) {
		return
	}
	for _, it := range n.items {
		if it.bounds.Intersects(r) {
			*out = append(*out, it.idx)
		}
	}
	if n.child[0] == nil {
		return
	}
	for i := 0; i < 4; i++ {
		n.child[i].Query(r, out)
	}
}

func (n *QuadNode) subdivide() {
	if n.child[0] != nil {
		return
	}
	mx := (n.bounds.X0 + n.bounds.X1) * 0.5
	my := (n.bounds.Y0 + n.bounds.Y1) * 0.5
	n.child[0] = NewQuadNode(RectF{X0: n.bounds.X0, Y0: n.bounds.Y0, X1: mx, Y1: my}, n.depth+1)
	n.child[1] = NewQuadNode(RectF{X0: mx, Y0: n.bounds.Y0, X1: n.bounds.X1, Y1: my}, n.depth+1)
	n.child[2] = NewQuadNode(RectF{X0: n.bounds.X0, Y0: my, X1: mx, Y1: n.bounds.Y1}, n.depth+1)
	n.child[3] = NewQuadNode(RectF{X0: mx, Y0: my, X1: n.bounds.X1, Y1: n.bounds.Y1}, n.depth+1)
}

func (n *QuadNode) childThatContains(b RectF) *QuadNode {
	for i := 0; i < 4; i++ {
		c := n.child[i]
		if c != nil && c.bounds.Contains(b) {
			return c
		}
	}
	return nil
}

// HitCallback is invoked once per projectile-animal hit.
type HitCallback func(p *Projectile, a *Animal)

// CollisionManager resolves projectile-vs-animal hits: quadtree broad phase
// over animal spheres, then a swept segment/sphere narrow test covering the
// projectile's movement this frame.
type CollisionManager struct {
	callbacks []HitCallback
	scratch   []int
}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

func (cm *CollisionManager) AddHitCallback(cb HitCallback) {
	cm.callbacks = append(cm.callbacks, cb)
}

// Resolve tests every active projectile's frame segment against live animal
// spheres. A hit applies damage once, deactivates the projectile, and fires
// the callbacks.
func (cm *CollisionManager) Resolve(projectiles []Projectile, animals []Animal, worldBounds RectF, dt float64) {
	if len(projectiles) == 0 || len(animals) == 0 {
		return
	}

	tree := NewQuadNode(worldBounds, 0)
	for i := range animals {
		a := &animals[i]
		if a.IsDead() {
			continue
		}
		r := a.HitRadius
		tree.Insert(i, RectF{
			X0: a.Pos.X - r, Y0: a.Pos.Y - r,
			X1: a.Pos.X + r, Y1: a.Pos.Y + r,
		})
	}

	for pi := range projectiles {
		p := &projectiles[pi]
		if !p.Active {
			continue
		}

		// Segment from where the projectile was at the start of the frame.
		step := p.Speed * dt
		from := p.Pos.Sub(p.Dir.Scale(step))
		to := p.Pos

		query := RectF{
			X0: minF(from.X, to.X), Y0: minF(from.Y, to.Y),
			X1: maxF(from.X, to.X), Y1: maxF(from.Y, to.Y),
		}
		// Inflate by the largest hit radius so edge overlaps still match.
		query.X0 -= AnimalHitRadius * 2
		query.Y0 -= AnimalHitRadius * 2
		query.X1 += AnimalHitRadius * 2
		query.Y1 += AnimalHitRadius * 2

		cm.scratch = cm.scratch[:0]
		tree.Query(query, &cm.scratch)

		bestT := -1.0
		bestIdx := -1
		for _, ai := range cm.scratch {
			a := &animals[ai]
			if a.IsDead() {
				continue
			}
			center := a.Pos
			center.Z += a.HitRadius // sphere sits on the body, not the feet
			if t, hit := segmentSphere(from, to, center, a.HitRadius); hit {
				if bestIdx < 0 || t < bestT {
					bestT = t
					bestIdx = ai
				}
			}
		}

		if bestIdx >= 0 {
			a := &animals[bestIdx]
			a.TakeDamage(p.Damage)
			p.Active = false
			for _, cb := range cm.callbacks {
				cb(p, a)
			}
		}
	}
}

// segmentSphere returns the parametric hit point in [0,1] of segment
// from->to against a sphere, if any.
func segmentSphere(from, to, center Vec3, radius float64) (float64, bool) {
	d := to.Sub(from)
	f := from.Sub(center)

	aa := d.Dot(d)
	if aa < 1e-12 {
		// Degenerate segment: point-in-sphere test.
		if f.LenSq() <= radius*radius {
			return 0, true
		}
		return 0, false
	}
	b := 2 * f.Dot(d)
	c := f.Dot(f) - radius*radius

	disc := b*b - 4*aa*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * aa)
	t2 := (-b + sq) / (2 * aa)
	if t1 >= 0 && t1 <= 1 {
		return t1, true
	}
	if t2 >= 0 && t2 <= 1 {
		return t2, true
	}
	// Segment fully inside the sphere.
	if t1 < 0 && t2 > 1 {
		return 0, true
	}
	return 0, false
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
