package kinetic

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// LevelDef defines the static geometry of a level and where the character
// starts.
type LevelDef struct {
	Colliders []ColliderDef `yaml:"colliders"`
	Spawn     SpawnDef      `yaml:"spawn"`
}

// ColliderDef defines a box obstacle. Category defaults to "Default".
type ColliderDef struct {
	Name        string     `yaml:"name"`
	Position    [3]float32 `yaml:"position"`
	HalfExtents [3]float32 `yaml:"half_extents"`
	Yaw         float32    `yaml:"yaw"`
	Category    string     `yaml:"category"`
}

type SpawnDef struct {
	Position [3]float32 `yaml:"position"`
	Yaw      float32    `yaml:"yaw"`
}

func LoadLevelDef(filename string) (*LevelDef, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", filename, err)
	}
	var def LevelDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("level: unmarshal %s: %w", filename, err)
	}
	return &def, nil
}

// SpawnTransform is the character's starting transform.
func (def *LevelDef) SpawnTransform() TransformComponent {
	return NewTransform(mgl32.Vec3(def.Spawn.Position), def.Spawn.Yaw)
}

// LoadLevel spawns one collider entity per definition. Category names must
// already be registered.
func LoadLevel(cmd *Commands, cats *Categories, def *LevelDef) ([]EntityId, error) {
	ids := make([]EntityId, 0, len(def.Colliders))
	for i, col := range def.Colliders {
		eid, err := spawnCollider(cmd, cats, col)
		if err != nil {
			return ids, fmt.Errorf("level: collider %d %q: %w", i, col.Name, err)
		}
		ids = append(ids, eid)
	}
	return ids, nil
}

func spawnCollider(cmd *Commands, cats *Categories, def ColliderDef) (EntityId, error) {
	name := def.Category
	if name == "" {
		name = CategoryDefault
	}
	category, ok := cats.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("unknown category %q", name)
	}

	half := mgl32.Vec3(def.HalfExtents)
	if half.X() <= 0 || half.Y() <= 0 || half.Z() <= 0 {
		return 0, fmt.Errorf("half extents %v must be positive", half)
	}

	tr := NewTransform(mgl32.Vec3(def.Position), def.Yaw)
	col := NewBoxCollider(half, category)
	return cmd.AddEntity(&tr, &col), nil
}

// LevelModule spawns a level's colliders. Install after CollisionModule.
type LevelModule struct {
	Def *LevelDef
}

func (m LevelModule) Install(app *App, cmd *Commands) {
	if m.Def == nil {
		return
	}
	cats, ok := Resource[Categories](app)
	if !ok {
		cats = NewCategories()
		cmd.AddResources(cats)
	}
	ids, err := LoadLevel(cmd, cats, m.Def)
	if err != nil {
		app.Logger().Errorf("%v", err)
		panic(err)
	}
	app.Logger().Infof("level: spawned %d colliders", len(ids))
}
