package dino

import (
	"math/rand"

	"github.com/vovakirdan/dino-gate/internal/config"
	"github.com/vovakirdan/dino-gate/internal/core"
)

// Obstacle is a ground obstacle the player must jump over.
// Only X changes after creation.
type Obstacle struct {
	Kind   string
	Sprite core.Sprite
	X, Y   float64
	Width  float64
	Height float64
}

// Box returns the obstacle's bounds.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Collides tests the player box against an obstacle box with both shrunk by
// the shrink divisor. The last clause adds the player's unshrunk height to its
// shrunk y, so the hitbox is asymmetric; keep it until the intended shape is
// confirmed.
func Collides(obstacle, player core.Box, shrink float64) bool {
	return player.X < obstacle.X+obstacle.W/shrink &&
		player.X+player.W/shrink > obstacle.X &&
		player.Y < obstacle.Y+obstacle.H/shrink &&
		player.H+player.Y/shrink > obstacle.Y
}

// Spawner owns the spawn countdown and the live obstacle set.
type Spawner struct {
	obstacles []Obstacle
	rng       *rand.Rand
	remaining float64 // Countdown to the next spawn, ms

	catalog     []config.ObstacleKind // Scaled sizes
	minInterval float64
	maxInterval float64
	speed       float64 // Scaled base speed
	spawnX      float64
	floorY      float64
	shrink      float64
	spawned     int
}

// NewSpawner creates a spawner with an empty obstacle set and a freshly
// drawn countdown.
func NewSpawner(cfg config.DinoConfig, scale ScaleContext, rng *rand.Rand) *Spawner {
	s := &Spawner{
		obstacles:   make([]Obstacle, 0, 8),
		rng:         rng,
		catalog:     make([]config.ObstacleKind, len(cfg.Obstacles.Kinds)),
		minInterval: cfg.Obstacles.MinIntervalMs,
		maxInterval: cfg.Obstacles.MaxIntervalMs,
		speed:       cfg.Physics.BaseSpeed * scale.Ratio,
		spawnX:      scale.Width * cfg.Obstacles.SpawnOffset,
		floorY:      scale.Height,
		shrink:      cfg.Obstacles.Shrink,
	}
	for i, k := range cfg.Obstacles.Kinds {
		k.Width *= scale.Ratio
		k.Height *= scale.Ratio
		s.catalog[i] = k
	}
	s.remaining = s.nextInterval()
	return s
}

// nextInterval draws a countdown uniformly from [minInterval, maxInterval].
func (s *Spawner) nextInterval() float64 {
	return s.minInterval + s.rng.Float64()*(s.maxInterval-s.minInterval)
}

// Update runs the countdown on wall-clock time, spawns at most one obstacle,
// moves every obstacle left at the difficulty-scaled speed and drops the ones
// that scrolled fully off-screen.
func (s *Spawner) Update(speed, elapsed float64) {
	if elapsed <= 0 {
		return
	}

	s.remaining -= elapsed
	if s.remaining <= 0 {
		s.spawn()
		s.remaining = s.nextInterval()
	}

	dx := s.speed * speed * elapsed
	for i := range s.obstacles {
		s.obstacles[i].X -= dx
	}

	// Filter in place; order is kept so iteration never skips an element
	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X > -o.Width {
			live = append(live, o)
		}
	}
	s.obstacles = live
}

// spawn places one obstacle of a random kind beyond the right edge, resting
// on the floor line.
func (s *Spawner) spawn() {
	kind := s.catalog[s.rng.Intn(len(s.catalog))]
	s.obstacles = append(s.obstacles, Obstacle{
		Kind:   kind.Name,
		Sprite: core.Sprite(kind.Sprite),
		X:      s.spawnX,
		Y:      s.floorY - kind.Height,
		Width:  kind.Width,
		Height: kind.Height,
	})
	s.spawned++
}

// Obstacles returns the live obstacle set in spawn order.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// Spawned returns how many obstacles this spawner has created.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// CheckCollision reports whether the player box hits any live obstacle.
// The scan stops at the first hit.
func (s *Spawner) CheckCollision(player core.Box) bool {
	for _, o := range s.obstacles {
		if Collides(o.Box(), player, s.shrink) {
			return true
		}
	}
	return false
}

// Rescale applies a scale ratio change to live obstacles and future spawns.
func (s *Spawner) Rescale(factor float64) {
	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.X *= factor
		o.Y *= factor
		o.Width *= factor
		o.Height *= factor
	}
	for i := range s.catalog {
		s.catalog[i].Width *= factor
		s.catalog[i].Height *= factor
	}
	s.speed *= factor
	s.spawnX *= factor
	s.floorY *= factor
}
