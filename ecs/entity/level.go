package entity

import (
	"fmt"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/levels"
	"github.com/milk9111/duskwatch/physics"
	"github.com/milk9111/duskwatch/prefabs"
)

const placeholderAlpha = 100

// BuildLevel instantiates every cell of the layout and returns the solid
// tile index. Destroyed towers face away from the map centre.
func BuildLevel(w *ecs.World, tn *prefabs.Tuning, layout *levels.Layout) (*physics.TileIndex, error) {
	ix := physics.NewTileIndex(layout.TileSize())
	ts := layout.TileSize()
	center := layout.Width() / 2

	for _, cell := range layout.Cells() {
		cellRect := common.Rect{X: cell.X, Y: cell.Y, W: ts, H: ts}
		midX, bottom := cellRect.MidBottom()

		switch cell.Def.Kind {
		case levels.KindEnemySpawn:
			if _, err := NewEnemy(w, tn, EnemyParams{
				Variant:     cell.Def.Variant,
				X:           midX,
				Bottom:      bottom,
				FacingRight: midX < center,
			}); err != nil {
				return nil, fmt.Errorf("level: cell %d,%d: %w", cell.Row, cell.Col, err)
			}
			continue
		case levels.KindDestroyedTower:
			spec, ok := tn.Tower(cell.Def.TowerCode)
			if !ok {
				return nil, fmt.Errorf("level: cell %d,%d: unknown tower %q", cell.Row, cell.Col, cell.Def.TowerCode)
			}
			if _, err := newTile(w, cell.Def, towerRect(tn, spec, midX, bottom), &component.Tile{
				Code:        cell.Def.Code,
				Buyable:     true,
				Price:       spec.Price,
				TowerCode:   spec.Code,
				FacingRight: midX >= center,
			}, "ruin_"+spec.Name, 255); err != nil {
				return nil, err
			}
			continue
		}

		alpha := uint8(255)
		if cell.Def.Kind == levels.KindUnknown {
			alpha = placeholderAlpha
		}
		tile := &component.Tile{
			Code:        cell.Def.Code,
			Solid:       cell.Def.Solid,
			Placeholder: cell.Def.Kind == levels.KindUnknown,
		}
		if _, err := newTile(w, cell.Def, cellRect, tile, "tile_"+cell.Def.Code, alpha); err != nil {
			return nil, err
		}
		if cell.Def.Solid {
			ix.Insert(cellRect)
		}
	}
	return ix, nil
}

func newTile(w *ecs.World, def levels.TileDef, r common.Rect, tile *component.Tile, key string, alpha uint8) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{Rect: r, FacingRight: tile.FacingRight}); err != nil {
		return 0, fmt.Errorf("tile: add body: %w", err)
	}
	if err := ecs.Add(w, entity, component.TileComponent.Kind(), tile); err != nil {
		return 0, fmt.Errorf("tile: add tile: %w", err)
	}
	if !def.Visible {
		return entity, nil
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{Key: key, W: r.W, H: r.H, Alpha: alpha}); err != nil {
		return 0, fmt.Errorf("tile: add sprite: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerTiles}); err != nil {
		return 0, fmt.Errorf("tile: add render layer: %w", err)
	}
	return entity, nil
}
