package arena

// System advances one step of a tick.
type System interface {
	Update(m *Match)
}

// Scheduler runs systems in a fixed order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Update(m *Match) {
	for _, system := range s.systems {
		system.Update(m)
	}
}
