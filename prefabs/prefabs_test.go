package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	SetDir(dir)
	t.Cleanup(func() { SetDir("") })
	return dir
}

func TestLoadTuningDefaults(t *testing.T) {
	tn, err := LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 128.0, tn.World.TileSize)
	assert.Equal(t, 6.0, tn.Player.WalkSpeed)
	assert.Equal(t, 1000, tn.Player.InvincibilityMS)
	assert.Equal(t, 70, tn.Player.Economy.QuickHealCost)
	assert.Equal(t, 4000, tn.Director.Cycle.Length)

	for _, v := range component.EnemyVariants {
		_, ok := tn.Enemy(v)
		assert.True(t, ok, "variant %s missing", v)
	}
	e5, _ := tn.Enemy(component.Enemy05)
	assert.True(t, e5.Jumper)
	e6, _ := tn.Enemy(component.Enemy06)
	assert.Equal(t, 400, e6.MaxHealth)

	cannon, ok := tn.Tower("200")
	require.True(t, ok)
	assert.Equal(t, 800, cannon.CooldownMS)
	assert.Equal(t, 50, cannon.Price)

	_, isFormula := tn.Planner().(wave.Formula)
	assert.True(t, isFormula)
	assert.Len(t, tn.Pool(), 6)
}

func TestDiskOverride(t *testing.T) {
	base, err := Load("player.yaml")
	require.NoError(t, err)
	edited := strings.Replace(string(base), "walk_speed: 6", "walk_speed: 9", 1)
	withDir(t, map[string]string{"player.yaml": edited})

	tn, err := LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, 9.0, tn.Player.WalkSpeed)
	assert.Equal(t, 300.0, tn.Player.MaxStamina, "other files still come from the embedded copy")
}

func TestMissingVariantRejected(t *testing.T) {
	withDir(t, map[string]string{"enemies.yaml": `
gravity: 0.8
variants:
  - variant: enemy01
    max_health: 30
    width: 64
    height: 64
`})
	_, err := LoadTuning()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingVariant), "got %v", err)
}

func TestValidateCollectsErrors(t *testing.T) {
	tn, err := LoadTuning()
	require.NoError(t, err)
	tn.World.TileSize = 0
	tn.Player.MaxHealth = 0
	err = tn.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSpec))
	assert.Contains(t, err.Error(), "tile_size")
	assert.Contains(t, err.Error(), "max_health")
}

func TestValidateTowerFactors(t *testing.T) {
	cases := []struct {
		name string
		edit func(*TowersSpec)
		want string
	}{
		{"damage_flat", func(s *TowersSpec) { s.DamageFactor = 1 }, "damage_factor"},
		{"cooldown_grows", func(s *TowersSpec) { s.CooldownFactor = 1.1 }, "cooldown_factor"},
		{"cooldown_zero", func(s *TowersSpec) { s.CooldownFactor = 0 }, "cooldown_factor"},
		{"cost_shrinks", func(s *TowersSpec) { s.CostFactor = 0.5 }, "cost_factor"},
		{"no_floor", func(s *TowersSpec) { s.CooldownFloorMS = 0 }, "cooldown_floor_ms"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tn, err := LoadTuning()
			require.NoError(t, err)
			c.edit(&tn.Towers)
			err = tn.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSpec))
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestWaveScriptSelected(t *testing.T) {
	base, err := Load("director.yaml")
	require.NoError(t, err)
	edited := strings.Replace(string(base), `wave_script: ""`, `wave_script: waves.tengo`, 1)
	withDir(t, map[string]string{"director.yaml": edited})

	tn, err := LoadTuning()
	require.NoError(t, err)
	_, isScript := tn.Planner().(*wave.ScriptPlanner)
	require.True(t, isScript)

	plan, err := tn.Planner().Plan(2)
	require.NoError(t, err)
	assert.Equal(t, 9, plan.Count)
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "player.yaml")
	require.NoError(t, os.WriteFile(target, []byte("walk_speed: 7\n"), 0o644))

	select {
	case change := <-w.Events:
		assert.Equal(t, Change{Path: target, Kind: ChangeTuning}, change)
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event for yaml edit")
	}
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "Close is idempotent")
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		ev   fsnotify.Event
		want Change
		ok   bool
	}{
		{"yaml_write", fsnotify.Event{Name: "d/towers.yaml", Op: fsnotify.Write}, Change{Path: "d/towers.yaml", Kind: ChangeTuning}, true},
		{"yml_create", fsnotify.Event{Name: "d/x.YML", Op: fsnotify.Create}, Change{Path: "d/x.YML", Kind: ChangeTuning}, true},
		{"script_rename", fsnotify.Event{Name: "d/scripts/waves.tengo", Op: fsnotify.Rename}, Change{Path: "d/scripts/waves.tengo", Kind: ChangeScript}, true},
		{"chmod_ignored", fsnotify.Event{Name: "d/towers.yaml", Op: fsnotify.Chmod}, Change{}, false},
		{"other_ext", fsnotify.Event{Name: "d/notes.txt", Op: fsnotify.Write}, Change{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := classify(c.ev)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
	assert.Equal(t, "script", ChangeScript.String())
}

func TestCleanPaths(t *testing.T) {
	assert.Equal(t, "player.yaml", cleanPrefabPath("prefabs/player.yaml"))
	assert.Equal(t, "scripts/waves.tengo", cleanScriptPath("prefabs/scripts/waves.tengo"))
	assert.Equal(t, "scripts/waves.tengo", cleanScriptPath("waves.tengo"))
}
