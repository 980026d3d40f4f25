package component

const (
	LayerTiles  = 0
	LayerActors = 1
	LayerFront  = 2
)

// RenderLayer orders drawing: tiles, then enemies and towers, then the
// player and bullets. Ties keep creation order.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
