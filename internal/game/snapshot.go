package game

// State is the session's lifecycle stage.
type State int

const (
	StateRunning  State = iota
	StateGameOver       // terminal
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Snapshot is a value copy of the session after a tick. Renderers and HUDs
// read it; nothing they do to it reaches the session.
type Snapshot struct {
	Tick     int     // running ticks completed
	Elapsed  float64 // simulated seconds while running
	State    State
	GameOver bool

	Player    Player
	Enemies   []Enemy
	Bullets   []Bullet
	Pickups   []Pickup
	Obstacles []Obstacle

	Stats Stats
	// Events produced by the most recent running tick. A frozen session
	// keeps returning the events of its final tick.
	Events []Event
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Elapsed:   s.elapsed,
		State:     s.state,
		GameOver:  s.state == StateGameOver,
		Player:    s.player,
		Enemies:   append([]Enemy(nil), s.enemies...),
		Bullets:   append([]Bullet(nil), s.bullets...),
		Pickups:   append([]Pickup(nil), s.pickups...),
		Obstacles: append([]Obstacle(nil), s.obstacles...),
		Stats:     s.stats,
		Events:    append([]Event(nil), s.events...),
	}
}
