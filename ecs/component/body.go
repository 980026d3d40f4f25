package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/duskwatch/common"
)

// Body is the world-space bounds of an entity plus its motion state. For
// enemies Rect is the narrowed hitbox, not the sprite bounds.
type Body struct {
	Rect        common.Rect
	Vel         cp.Vector
	Gravity     float64
	OnGround    bool
	FacingRight bool
}

// Dir returns +1 when facing right and -1 otherwise.
func (b *Body) Dir() float64 {
	if b.FacingRight {
		return 1
	}
	return -1
}

var BodyComponent = NewComponent[Body]()
