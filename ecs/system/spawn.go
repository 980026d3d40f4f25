package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/ecs/entity"
	"github.com/milk9111/duskwatch/prefabs"
)

// BulletSpawnSystem drains bullet spawn requests into live bullets.
type BulletSpawnSystem struct {
	tuning *prefabs.Tuning
	log    *zap.Logger
}

func NewBulletSpawnSystem(tn *prefabs.Tuning, log *zap.Logger) *BulletSpawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &BulletSpawnSystem{tuning: tn, log: log}
}

func (s *BulletSpawnSystem) SetTuning(tn *prefabs.Tuning) {
	s.tuning = tn
}

func (s *BulletSpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.BulletSpawnRequestComponent.Kind(), func(e ecs.Entity, req *component.BulletSpawnRequest) {
		if _, err := entity.NewBullet(w, s.tuning, *req); err != nil {
			s.log.Error("spawn bullet", zap.Error(err))
		}
		ecs.DestroyEntity(w, e)
	})
}
