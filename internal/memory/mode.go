package memory

import "brawl-memory/internal/core"

// Name identifies the mode.
func (s *Session) Name() string { return "memory" }

// Reset restarts the session; it satisfies core.Mode.
func (s *Session) Reset(seed int64) { s.Restart(seed) }

// Click flips the card at index; it satisfies core.Mode.
func (s *Session) Click(index int) { s.Flip(index) }

// Cards returns a render snapshot of the board.
func (s *Session) Cards() []core.CardView {
	waiting := s.flipBack.Armed()
	views := make([]core.CardView, len(s.cards))
	for i, c := range s.cards {
		views[i] = core.CardView{
			Identity:  c.Identity,
			FaceUp:    c.FaceUp || c.Matched,
			Matched:   c.Matched,
			Highlight: waiting && c.FaceUp && !c.Matched,
		}
	}
	return views
}

// Stats returns the HUD snapshot.
func (s *Session) Stats() core.Stats {
	status := core.StatusIdle
	if s.flipBack.Armed() {
		status = core.StatusMismatch
	}
	return core.Stats{
		Score:     s.matches,
		Total:     s.Pairs(),
		Attempts:  s.attempts,
		Elapsed:   s.Elapsed(),
		Countdown: s.flipBack.Remaining(),
		Status:    status,
		Over:      s.Won(),
	}
}

func init() {
	core.Register("memory", func(cfg core.ModeConfig) core.Mode {
		c := DefaultConfig()
		if cfg.Pairs > 0 {
			c.Pairs = cfg.Pairs
		}
		if cfg.FlipDelay > 0 {
			c.FlipDelay = cfg.FlipDelay
		}
		if len(cfg.Palette) > 0 {
			c.Palette = cfg.Palette
		}
		c.Columns = cfg.Columns
		return New(c, cfg.Clock, core.ResolveSeed(cfg.Seed))
	})
}
