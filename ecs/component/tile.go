package component

// Tile is one placed cell of level geometry. Solid tiles block movement;
// buyable tiles are destroyed towers that can be repaired into TowerCode.
type Tile struct {
	Code        string
	Solid       bool
	Buyable     bool
	Price       int
	TowerCode   string
	FacingRight bool
	Placeholder bool
}

var TileComponent = NewComponent[Tile]()
