package component

// Sprite describes how an entity is drawn: Key names the art, W and H are
// the visual bounds anchored at the body's mid-bottom.
type Sprite struct {
	Key   string
	W     float64
	H     float64
	Alpha uint8
}

var SpriteComponent = NewComponent[Sprite]()
