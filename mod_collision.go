package kinetic

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/kinetic/motion"
)

// ColliderComponent is a static box obstacle that probes can hit.
type ColliderComponent struct {
	ID          uuid.UUID
	HalfExtents mgl32.Vec3
	Category    motion.Category
}

func NewBoxCollider(halfExtents mgl32.Vec3, category motion.Category) ColliderComponent {
	return ColliderComponent{
		ID:          uuid.New(),
		HalfExtents: halfExtents,
		Category:    category,
	}
}

type AABBComponent struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

type colliderEntry struct {
	id       uuid.UUID
	category motion.Category
	aabb     AABBComponent
}

// CollisionWorld answers probe queries against every collider, using a
// spatial hash grid as the broadphase. The grid is rebuilt only when
// colliders change.
type CollisionWorld struct {
	grid    *SpatialHashGrid
	entries map[EntityId]colliderEntry
}

func NewCollisionWorld(cellSize float32) *CollisionWorld {
	return &CollisionWorld{
		grid:    NewSpatialHashGrid(cellSize),
		entries: make(map[EntityId]colliderEntry),
	}
}

func (w *CollisionWorld) Clear() {
	w.grid.Clear()
	clear(w.entries)
}

func (w *CollisionWorld) Insert(eid EntityId, col ColliderComponent, aabb AABBComponent) {
	w.entries[eid] = colliderEntry{id: col.ID, category: col.Category, aabb: aabb}
	w.grid.Insert(eid, aabb)
}

// Sync rebuilds the world from the collider entities when any of them was
// added, removed or moved since the last rebuild, and reports whether it did.
// Checking costs one pass over the colliders; a rebuild also touches every
// grid cell each collider overlaps.
func (w *CollisionWorld) Sync(cmd *Commands) bool {
	if !w.stale(cmd) {
		return false
	}
	w.Clear()
	MakeQuery2[ColliderComponent, AABBComponent](cmd).Map(func(id EntityId, col *ColliderComponent, aabb *AABBComponent) bool {
		w.Insert(id, *col, *aabb)
		return true
	})
	return true
}

func (w *CollisionWorld) stale(cmd *Commands) bool {
	seen := 0
	stale := false
	MakeQuery2[ColliderComponent, AABBComponent](cmd).Map(func(id EntityId, col *ColliderComponent, aabb *AABBComponent) bool {
		seen++
		entry, ok := w.entries[id]
		if !ok || entry != (colliderEntry{id: col.ID, category: col.Category, aabb: *aabb}) {
			stale = true
			return false
		}
		return true
	})
	return stale || seen != len(w.entries)
}

func (w *CollisionWorld) Len() int {
	return len(w.entries)
}

// Cast returns the nearest collider along the ray within maxDistance. A ray
// that starts inside a box hits it at distance zero.
func (w *CollisionWorld) Cast(origin, direction mgl32.Vec3, maxDistance float32) (motion.Hit, bool) {
	if maxDistance <= 0 || direction.Len() == 0 {
		return motion.Hit{}, false
	}
	dir := direction.Normalize()
	end := origin.Add(dir.Mul(maxDistance))

	bounds := AABBComponent{
		Min: mgl32.Vec3{min(origin[0], end[0]), min(origin[1], end[1]), min(origin[2], end[2])},
		Max: mgl32.Vec3{max(origin[0], end[0]), max(origin[1], end[1]), max(origin[2], end[2])},
	}

	var best motion.Hit
	found := false
	for _, eid := range w.grid.QueryAABB(bounds) {
		entry := w.entries[eid]
		t, normal, ok := rayAABB(origin, dir, entry.aabb)
		if !ok || t > maxDistance {
			continue
		}
		if found && t >= best.Distance {
			continue
		}
		found = true
		best = motion.Hit{
			Collider: entry.id,
			Category: entry.category,
			Distance: t,
			Point:    origin.Add(dir.Mul(t)),
			Normal:   normal,
		}
	}
	return best, found
}

// rayAABB is the slab test. dir must be normalized.
func rayAABB(origin, dir mgl32.Vec3, box AABBComponent) (float32, mgl32.Vec3, bool) {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))
	axis := -1

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < box.Min[i] || origin[i] > box.Max[i] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}
		t1 := (box.Min[i] - origin[i]) / dir[i]
		t2 := (box.Max[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
			axis = i
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl32.Vec3{}, false
		}
	}

	if tmax < 0 {
		return 0, mgl32.Vec3{}, false
	}
	if tmin < 0 || axis < 0 {
		return 0, dir.Mul(-1), true
	}

	var normal mgl32.Vec3
	if dir[axis] > 0 {
		normal[axis] = -1
	} else {
		normal[axis] = 1
	}
	return tmin, normal, true
}

// CollisionModule installs the category registry and the collision world.
type CollisionModule struct {
	// CellSize is the broadphase cell edge, 2 when unset. A collider is
	// stored in every cell it overlaps, so very large boxes over small cells
	// make rebuilds and memory grow with their area.
	CellSize   float32
	Categories []string
}

func (m CollisionModule) Install(app *App, cmd *Commands) {
	cellSize := m.CellSize
	if cellSize <= 0 {
		cellSize = 2.0
	}
	cmd.AddResources(NewCategories(m.Categories...), NewCollisionWorld(cellSize))

	app.UseSystem(
		System(UpdateAABBsSystem).InStage(Prelude),
	).UseSystem(
		System(UpdateCollisionWorldSystem).InStage(PreUpdate),
	)
}

// UpdateAABBsSystem recomputes world AABBs of colliders from their
// transforms, including rotation and scale. Colliders spawned without an
// AABBComponent get one attached, which takes effect at the stage flush.
func UpdateAABBsSystem(cmd *Commands) {
	MakeQuery3[TransformComponent, ColliderComponent, AABBComponent](cmd).Map(func(id EntityId, tr *TransformComponent, col *ColliderComponent, aabb *AABBComponent) bool {
		box := colliderAABB(tr, col)
		if aabb == nil {
			cmd.AddComponents(id, &box)
			return true
		}
		*aabb = box
		return true
	}, AABBComponent{})
}

func colliderAABB(tr *TransformComponent, col *ColliderComponent) AABBComponent {
	scale := tr.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	half := mgl32.Vec3{
		col.HalfExtents.X() * abs32(scale.X()),
		col.HalfExtents.Y() * abs32(scale.Y()),
		col.HalfExtents.Z() * abs32(scale.Z()),
	}

	rot := tr.Quat().Mat4().Mat3()
	var extents mgl32.Vec3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			extents[i] += abs32(rot.At(i, j)) * half[j]
		}
	}

	return AABBComponent{
		Min: tr.Position.Sub(extents),
		Max: tr.Position.Add(extents),
	}
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func UpdateCollisionWorldSystem(cmd *Commands, world *CollisionWorld) {
	world.Sync(cmd)
}
