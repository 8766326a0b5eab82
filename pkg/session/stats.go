package session

import (
	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/gonewx/fourwalls/pkg/systems"
)

// statsTracker 记录本局各方位的统计
type statsTracker struct {
	sides    [components.SideCount]game.SideStats
	duration float64
}

func (st *statsTracker) recordCredits(credits []systems.ExpCredit) {
	for _, c := range credits {
		if !c.Side.Valid() {
			continue
		}
		st.sides[c.Side].Killed++
		st.sides[c.Side].ExpEarned += uint64(c.Exp)
	}
}

func (st *statsTracker) report(level uint32) game.SessionReport {
	return game.SessionReport{
		Level:    level,
		Duration: st.duration,
		Sides:    st.sides,
	}
}
