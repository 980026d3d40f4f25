package levels

import (
	"strings"

	"github.com/milk9111/duskwatch/common"
)

// GenOptions shapes a generated map.
type GenOptions struct {
	Width       int
	BorderLeft  int
	BorderRight int
	SkyRows     int
	DecorChance float64
	// Towers places destroyed towers on the decor row by column.
	Towers map[int]string
}

var (
	decorCodes       = []string{"101", "102", "103", "104", "105", "106", "107"}
	groundCodes      = []string{"1", "2", "3"}
	undergroundCodes = []string{"6", "7", "5"}
)

// Generate builds a random map: sky rows, one decor row, one ground row and
// two underground rows. Border columns get invisible walls above ground.
func Generate(rng *common.RNG, opts GenOptions) []string {
	if opts.Width <= 0 {
		opts.Width = 150
	}
	if opts.SkyRows <= 0 {
		opts.SkyRows = 7
	}
	rows := make([]string, 0, opts.SkyRows+4)
	sky := genRow(opts, func(i int) string { return "0" })
	for i := 0; i < opts.SkyRows; i++ {
		rows = append(rows, sky)
	}
	rows = append(rows, genRow(opts, func(i int) string {
		if code, ok := opts.Towers[i]; ok {
			return code
		}
		if i > opts.BorderLeft && i < opts.BorderRight && rng.Intn(1000) < int(opts.DecorChance*1000) {
			return decorCodes[rng.Intn(len(decorCodes))]
		}
		return "0"
	}))
	pick := func(set []string) string { return set[rng.Intn(len(set))] }
	rows = append(rows,
		joinRow(opts.Width, func(int) string { return pick(groundCodes) }),
		joinRow(opts.Width, func(int) string { return pick(undergroundCodes) }),
		joinRow(opts.Width, func(int) string { return pick(undergroundCodes) }),
	)
	return rows
}

func genRow(opts GenOptions, fill func(i int) string) string {
	return joinRow(opts.Width, func(i int) string {
		if i == opts.BorderLeft || i == opts.BorderRight {
			return "99"
		}
		return fill(i)
	})
}

func joinRow(width int, fill func(i int) string) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(fill(i))
	}
	return b.String()
}

// DefaultTowerColumns spreads one of each destroyed tower across the
// playable area.
func DefaultTowerColumns(borderLeft, borderRight int) map[int]string {
	span := borderRight - borderLeft
	codes := []string{TowerCannon, TowerArcher, TowerHeavyArcher, TowerArcher, TowerCannon, TowerHeavyArcher}
	out := make(map[int]string, len(codes))
	for i, code := range codes {
		out[borderLeft+span*(i+1)/(len(codes)+1)] = code
	}
	return out
}
