package levels

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		size float64
		want error
	}{
		{"ok", []string{"0,1", "1,1"}, 128, nil},
		{"blank_lines_skipped", []string{"", "0,1", "  ", "1,1"}, 128, nil},
		{"empty", nil, 128, ErrEmptyLayout},
		{"ragged", []string{"0,1,2", "1,1"}, 128, ErrRowWidth},
		{"bad_size", []string{"0"}, 0, ErrTileSize},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.rows, c.size)
			if c.want == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}
}

func TestCellsPlaceCodesOnGrid(t *testing.T) {
	l, err := Parse([]string{"0,99,0", "101,200,e03", "1,2,zz"}, 128)
	require.NoError(t, err)

	cells := l.Cells()
	require.Len(t, cells, 7)

	byPos := map[[2]int]Cell{}
	for _, c := range cells {
		byPos[[2]int{c.Row, c.Col}] = c
	}

	border := byPos[[2]int{0, 1}]
	assert.Equal(t, KindBorder, border.Def.Kind)
	assert.True(t, border.Def.Solid)
	assert.False(t, border.Def.Visible)
	assert.Equal(t, 128.0, border.X)
	assert.Equal(t, 0.0, border.Y)

	decor := byPos[[2]int{1, 0}]
	assert.Equal(t, KindDecor, decor.Def.Kind)
	assert.False(t, decor.Def.Solid)

	tower := byPos[[2]int{1, 1}]
	assert.Equal(t, KindDestroyedTower, tower.Def.Kind)
	assert.Equal(t, TowerCannon, tower.Def.TowerCode)
	assert.False(t, tower.Def.Solid)

	spawn := byPos[[2]int{1, 2}]
	assert.Equal(t, KindEnemySpawn, spawn.Def.Kind)
	assert.Equal(t, component.Enemy03, spawn.Def.Variant)

	ground := byPos[[2]int{2, 1}]
	assert.True(t, ground.Def.Solid)
	assert.Equal(t, 256.0, ground.Y)

	unknown := byPos[[2]int{2, 2}]
	assert.Equal(t, KindUnknown, unknown.Def.Kind)
	assert.True(t, unknown.Def.Visible)
	assert.False(t, unknown.Def.Solid)
}

func TestDefaultLayout(t *testing.T) {
	l, err := Default(128)
	require.NoError(t, err)
	assert.Equal(t, 150, l.Cols())
	assert.Equal(t, 11, l.Rows())
	assert.Equal(t, "99", l.Code(0, 10))
	assert.Equal(t, "99", l.Code(0, 140))

	towers := 0
	for _, c := range l.Cells() {
		if c.Def.Kind == KindDestroyedTower {
			towers++
		}
	}
	assert.Equal(t, 6, towers)
}

func TestGenerateIsSeededAndRectangular(t *testing.T) {
	opts := GenOptions{Width: 150, BorderLeft: 10, BorderRight: 140, DecorChance: 0.2, Towers: DefaultTowerColumns(10, 140)}
	a := Generate(common.NewRNG(3), opts)
	b := Generate(common.NewRNG(3), opts)
	assert.Equal(t, a, b)

	l, err := Parse(a, 128)
	require.NoError(t, err)
	assert.Equal(t, 11, l.Rows())
	for r := 0; r < 8; r++ {
		assert.Equal(t, "99", l.Code(r, 10))
		assert.Equal(t, "99", l.Code(r, 140))
	}
	for c := 0; c < l.Cols(); c++ {
		assert.True(t, Lookup(l.Code(8, c)).Solid, "ground row must be solid at %d", c)
	}
	for col, code := range opts.Towers {
		assert.Equal(t, code, l.Code(7, col))
	}
}

func TestReadRoundTrip(t *testing.T) {
	l, err := Read(strings.NewReader("0,1\n1,1\n"), 64)
	require.NoError(t, err)
	assert.Equal(t, []string{"0,1", "1,1"}, l.Lines())
	assert.Equal(t, 128.0, l.Width())
}
