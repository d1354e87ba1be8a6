package animation

import "time"

// DefaultConfig returns a short, noticeable flash.
func DefaultConfig() Config {
	return Config{
		Flashes: 6,
		OnDuration: Range{
			Min: 250 * time.Millisecond,
			Max: 350 * time.Millisecond,
		},
		OffDuration: Range{
			Min: 150 * time.Millisecond,
			Max: 250 * time.Millisecond,
		},
	}
}
