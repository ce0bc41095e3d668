package kinetic

import (
	"sort"

	"github.com/gekko3d/kinetic/motion"
)

const (
	CategoryDefault = "Default"
	CategoryGround  = "Ground"
)

// Categories maps collision-category names to ids. Names are resolved once
// when colliders and controller configs are built; probes only compare ids.
type Categories struct {
	byName map[string]motion.Category
	names  map[motion.Category]string
}

// NewCategories registers Default and Ground followed by any extra names.
func NewCategories(extra ...string) *Categories {
	c := &Categories{
		byName: make(map[string]motion.Category),
		names:  make(map[motion.Category]string),
	}
	c.Register(CategoryDefault)
	c.Register(CategoryGround)
	for _, name := range extra {
		c.Register(name)
	}
	return c
}

// Register returns the id for name, allocating one if needed.
func (c *Categories) Register(name string) motion.Category {
	if id, ok := c.byName[name]; ok {
		return id
	}
	id := motion.Category(len(c.byName) + 1)
	c.byName[name] = id
	c.names[id] = name
	return id
}

func (c *Categories) Lookup(name string) (motion.Category, bool) {
	id, ok := c.byName[name]
	return id, ok
}

func (c *Categories) Name(id motion.Category) string {
	return c.names[id]
}

func (c *Categories) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
