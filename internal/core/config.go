package core

// RuntimeConfig contains host-level settings passed to a game session.
// Hosts use it to size their output and to seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Host output width (terminal columns or window pixels)
	ScreenH  int   // Host output height (terminal rows or window pixels)
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}
