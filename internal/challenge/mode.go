package challenge

import "brawl-memory/internal/core"

// Name identifies the mode.
func (g *Game) Name() string { return "challenge" }

// Reset restarts the challenge; it satisfies core.Mode.
func (g *Game) Reset(seed int64) { g.Restart(seed) }

// Click picks the card at index; it satisfies core.Mode.
func (g *Game) Click(index int) { g.Pick(index) }

// Cards returns a render snapshot of the board.
func (g *Game) Cards() []core.CardView {
	views := make([]core.CardView, len(g.cards))
	for i, c := range g.cards {
		views[i] = core.CardView{
			Identity:  c.Identity,
			FaceUp:    c.FaceUp,
			Highlight: g.phase == PhaseResult && i == g.picked && !g.correct,
		}
	}
	return views
}

// Stats returns the HUD snapshot.
func (g *Game) Stats() core.Stats {
	countdown := 0.0
	status := core.StatusIdle
	switch g.phase {
	case PhasePreview:
		countdown = g.preview.Remaining()
		status = core.StatusPreview
	case PhaseResult:
		countdown = g.result.Remaining()
		status = core.StatusWrong
		if g.correct {
			status = core.StatusCorrect
		}
	}
	return core.Stats{
		Score:     g.score,
		Total:     g.cfg.Rounds,
		Attempts:  g.rounds,
		Elapsed:   g.watch.Elapsed(),
		Countdown: countdown,
		Target:    g.target,
		Status:    status,
		Over:      g.phase == PhaseOver,
	}
}

func init() {
	core.Register("challenge", func(cfg core.ModeConfig) core.Mode {
		c := DefaultConfig()
		if cfg.Pairs > 0 {
			c.Cards = cfg.Pairs
		}
		if len(cfg.Palette) > 0 {
			c.Palette = cfg.Palette
		}
		return New(c, cfg.Clock, core.ResolveSeed(cfg.Seed))
	})
}
