package kinetic

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/kinetic/motion"
)

// TransformComponent is the world pose of an entity. Rotation is kept as
// Euler angles so yaw can be changed without disturbing pitch and roll.
type TransformComponent struct {
	Position mgl32.Vec3
	Rotation motion.Euler
	Scale    mgl32.Vec3
}

func NewTransform(position mgl32.Vec3, yaw float32) TransformComponent {
	return TransformComponent{
		Position: position,
		Rotation: motion.Euler{Yaw: yaw},
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (tr *TransformComponent) Quat() mgl32.Quat {
	return tr.Rotation.Quat()
}
