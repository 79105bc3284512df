package state

import "sync"

// Playback is the stage a playback session is in.
type Playback int

const (
	Paused Playback = iota
	Playing
	Finished
)

func (p Playback) String() string {
	switch p {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "finished"
	}
}

// Manager tracks the session state machine. Finished is terminal:
// once reached, Play and Pause are ignored.
type Manager struct {
	mu      sync.RWMutex
	current Playback
}

// NewManager creates a session in the Paused state, matching the
// player, which is constructed paused.
func NewManager() *Manager {
	return &Manager{current: Paused}
}

func (m *Manager) Play() {
	m.transition(Playing)
}

func (m *Manager) Pause() {
	m.transition(Paused)
}

func (m *Manager) Finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = Finished
}

func (m *Manager) transition(to Playback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == Finished {
		return
	}
	m.current = to
}

func (m *Manager) Current() Playback {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) IsPlaying() bool {
	return m.Current() == Playing
}

func (m *Manager) IsFinished() bool {
	return m.Current() == Finished
}
