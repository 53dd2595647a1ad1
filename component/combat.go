package component

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventAttack            CombatEventType = "attack"
	EventHit               CombatEventType = "hit"
	EventBlocked           CombatEventType = "blocked"
	EventBlockBreak        CombatEventType = "block_break"
	EventSkill             CombatEventType = "skill"
	EventProjectileSpawn   CombatEventType = "projectile_spawn"
	EventProjectileExpired CombatEventType = "projectile_expired"
	EventKO                CombatEventType = "ko"
)

// CombatEvent is emitted during a tick for renderers, audio and logs.
// AttackerID and TargetID are fighter slots; -1 when not applicable.
type CombatEvent struct {
	Type       CombatEventType
	AttackerID int
	TargetID   int
	Damage     float64
	Skill      SkillEffect
	Tick       int
	PosX       float64
	PosY       float64
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans events out to subscribers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
