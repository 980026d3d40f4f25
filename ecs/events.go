package ecs

// Event is a notification raised during a tick for outer layers (audio,
// HUD, logging). Type is one of the Event* constants.
type Event struct {
	Type string
	Data any
}

const (
	EventShotFired     = "shot_fired"
	EventPlayerHit     = "player_hit"
	EventPlayerDied    = "player_died"
	EventEnemyKilled   = "enemy_killed"
	EventWaveStarted   = "wave_started"
	EventDayStarted    = "day_started"
	EventTowerBought   = "tower_bought"
	EventTowerUpgraded = "tower_upgraded"
	EventUpgradeBought = "upgrade_bought"
	EventHighScore     = "high_score"
)

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
