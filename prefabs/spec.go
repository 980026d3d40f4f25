package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/duskwatch/economy"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/wave"
)

var (
	ErrMissingVariant = errors.New("prefabs: enemy variant missing from table")
	ErrInvalidSpec    = errors.New("prefabs: invalid spec")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type WorldSpec struct {
	TileSize    float64 `yaml:"tile_size"`
	MapWidth    int     `yaml:"map_width"`
	BorderLeft  int     `yaml:"border_left"`
	BorderRight int     `yaml:"border_right"`
	DecorChance float64 `yaml:"decor_chance"`
}

type PlayerSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`

	WalkSpeed   float64 `yaml:"walk_speed"`
	SprintSpeed float64 `yaml:"sprint_speed"`
	Gravity     float64 `yaml:"gravity"`
	JumpSpeed   float64 `yaml:"jump_speed"`

	MaxStamina   float64 `yaml:"max_stamina"`
	StaminaDrain float64 `yaml:"stamina_drain"`
	StaminaRegen float64 `yaml:"stamina_regen"`

	MaxHealth       int     `yaml:"max_health"`
	InvincibilityMS int     `yaml:"invincibility_ms"`
	Knockback       float64 `yaml:"knockback"`
	RegenIntervalMS int     `yaml:"regen_interval_ms"`
	ShootCooldownMS int     `yaml:"shoot_cooldown_ms"`
	BulletOffsetY   float64 `yaml:"bullet_offset_y"`

	Economy economy.Curve `yaml:"economy"`
}

type ProjectileSpec struct {
	Speed       float64 `yaml:"speed"`
	LifetimeMS  int     `yaml:"lifetime_ms"`
	ArcVelocity float64 `yaml:"arc_velocity"`
	MaxY        float64 `yaml:"max_y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

type EnemySpec struct {
	Variant    string  `yaml:"variant"`
	WalkSpeed  float64 `yaml:"walk_speed"`
	ChaseSpeed float64 `yaml:"chase_speed"`
	MaxHealth  int     `yaml:"max_health"`
	Damage     int     `yaml:"damage"`
	Jumper     bool    `yaml:"jumper"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

type EnemiesSpec struct {
	Gravity        float64     `yaml:"gravity"`
	JumpSpeed      float64     `yaml:"jump_speed"`
	SightRange     float64     `yaml:"sight_range"`
	ClimbThreshold float64     `yaml:"climb_threshold"`
	LedgeLookAhead float64     `yaml:"ledge_look_ahead"`
	HitboxShrink   float64     `yaml:"hitbox_shrink"`
	Variants       []EnemySpec `yaml:"variants"`
}

type TowerSpec struct {
	Code          string  `yaml:"code"`
	Name          string  `yaml:"name"`
	Damage        int     `yaml:"damage"`
	CooldownMS    int     `yaml:"cooldown_ms"`
	Range         float64 `yaml:"range"`
	BulletSpeed   float64 `yaml:"bullet_speed"`
	BulletGravity float64 `yaml:"bullet_gravity"`
	MuzzleX       float64 `yaml:"muzzle_x"`
	MuzzleY       float64 `yaml:"muzzle_y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Price         int     `yaml:"price"`
}

type TowersSpec struct {
	Scale           float64     `yaml:"scale"`
	MaxLevel        int         `yaml:"max_level"`
	UpgradeCost     int         `yaml:"upgrade_cost"`
	DamageFactor    float64     `yaml:"damage_factor"`
	CooldownFactor  float64     `yaml:"cooldown_factor"`
	CooldownFloorMS int         `yaml:"cooldown_floor_ms"`
	CostFactor      float64     `yaml:"cost_factor"`
	Towers          []TowerSpec `yaml:"towers"`
}

type DirectorSpec struct {
	Cycle            wave.CycleSpec `yaml:"cycle"`
	Formula          wave.Formula   `yaml:"formula"`
	SpawnWindow      float64        `yaml:"spawn_window"`
	MinSpawnCooldown int            `yaml:"min_spawn_cooldown"`
	SpawnY           float64        `yaml:"spawn_y"`
	Pool             []string       `yaml:"pool"`
	WaveScript       string         `yaml:"wave_script"`
}

// Tuning is every gameplay constant, decoded and cross-checked.
type Tuning struct {
	World      WorldSpec
	Player     PlayerSpec
	Projectile ProjectileSpec
	Enemies    EnemiesSpec
	Towers     TowersSpec
	Director   DirectorSpec

	enemyTable map[component.EnemyVariant]EnemySpec
	towerTable map[string]TowerSpec
	pool       []component.EnemyVariant
	planner    wave.Planner
}

// LoadTuning reads and validates all tuning files.
func LoadTuning() (*Tuning, error) {
	var t Tuning
	var err error
	if t.World, err = LoadSpec[WorldSpec]("world.yaml"); err != nil {
		return nil, err
	}
	if t.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if t.Projectile, err = LoadSpec[ProjectileSpec]("projectile.yaml"); err != nil {
		return nil, err
	}
	if t.Enemies, err = LoadSpec[EnemiesSpec]("enemies.yaml"); err != nil {
		return nil, err
	}
	if t.Towers, err = LoadSpec[TowersSpec]("towers.yaml"); err != nil {
		return nil, err
	}
	if t.Director, err = LoadSpec[DirectorSpec]("director.yaml"); err != nil {
		return nil, err
	}
	if err := t.build(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) build() error {
	t.enemyTable = make(map[component.EnemyVariant]EnemySpec, len(t.Enemies.Variants))
	for _, e := range t.Enemies.Variants {
		v, err := component.ParseEnemyVariant(e.Variant)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
		}
		t.enemyTable[v] = e
	}
	for _, v := range component.EnemyVariants {
		if _, ok := t.enemyTable[v]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingVariant, v)
		}
	}

	t.towerTable = make(map[string]TowerSpec, len(t.Towers.Towers))
	for _, tw := range t.Towers.Towers {
		t.towerTable[tw.Code] = tw
	}

	t.pool = t.pool[:0]
	for _, name := range t.Director.Pool {
		v, err := component.ParseEnemyVariant(name)
		if err != nil {
			return fmt.Errorf("%w: pool: %v", ErrInvalidSpec, err)
		}
		t.pool = append(t.pool, v)
	}
	if len(t.pool) == 0 {
		t.pool = append(t.pool, component.EnemyVariants...)
	}

	t.planner = t.Director.Formula
	if t.Director.WaveScript != "" {
		src, err := LoadScript(t.Director.WaveScript)
		if err != nil {
			return fmt.Errorf("prefabs: load wave script: %w", err)
		}
		sp, err := wave.NewScriptPlanner(src)
		if err != nil {
			return err
		}
		t.planner = sp
	}
	return t.Validate()
}

// Validate reports every out-of-range value at once.
func (t *Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSpec}, args...)...))
		}
	}
	check(t.World.TileSize > 0, "world.tile_size must be positive")
	check(t.World.BorderLeft >= 0 && t.World.BorderLeft < t.World.BorderRight, "world borders must be ordered")
	check(t.Player.Width > 0 && t.Player.Height > 0, "player size must be positive")
	check(t.Player.MaxHealth > 0, "player.max_health must be positive")
	check(t.Player.MaxStamina > 0, "player.max_stamina must be positive")
	check(t.Projectile.LifetimeMS > 0, "projectile.lifetime_ms must be positive")
	check(t.Enemies.HitboxShrink >= 0, "enemies.hitbox_shrink must not be negative")
	for _, e := range t.Enemies.Variants {
		check(e.MaxHealth > 0, "%s max_health must be positive", e.Variant)
		check(e.Width > t.Enemies.HitboxShrink && e.Height > 0, "%s size too small", e.Variant)
	}
	check(t.Towers.MaxLevel >= 1, "towers.max_level must be at least 1")
	check(t.Towers.Scale > 0, "towers.scale must be positive")
	check(t.Towers.DamageFactor > 1, "towers.damage_factor must be above 1")
	check(t.Towers.CooldownFactor > 0 && t.Towers.CooldownFactor < 1, "towers.cooldown_factor must be in (0,1)")
	check(t.Towers.CostFactor > 1, "towers.cost_factor must be above 1")
	check(t.Towers.CooldownFloorMS > 0, "towers.cooldown_floor_ms must be positive")
	for _, tw := range t.Towers.Towers {
		check(tw.CooldownMS > 0, "tower %s cooldown must be positive", tw.Code)
		check(tw.Price >= 0, "tower %s price must not be negative", tw.Code)
	}
	check(t.Director.Cycle.Length > 0, "director.cycle.cycle_length must be positive")
	c := t.Director.Cycle
	check(c.NightStart >= 0 && c.NightStart+c.Transition <= c.NightEnd && c.NightEnd+c.Transition <= 1.0+1e-9,
		"director.cycle thresholds must be ordered within [0,1]")
	check(c.Transition > 0, "director.cycle.transition must be positive")
	check(t.Director.SpawnWindow > 0 && t.Director.SpawnWindow <= 1, "director.spawn_window must be in (0,1]")
	return errors.Join(errs...)
}

// Enemy returns the stat row for a variant.
func (t *Tuning) Enemy(v component.EnemyVariant) (EnemySpec, bool) {
	e, ok := t.enemyTable[v]
	return e, ok
}

// Tower returns the stats for a tower code.
func (t *Tuning) Tower(code string) (TowerSpec, bool) {
	tw, ok := t.towerTable[code]
	return tw, ok
}

// Pool lists the variants waves draw from.
func (t *Tuning) Pool() []component.EnemyVariant {
	return append([]component.EnemyVariant(nil), t.pool...)
}

// Planner returns the wave planner selected by director.yaml.
func (t *Tuning) Planner() wave.Planner {
	return t.planner
}
