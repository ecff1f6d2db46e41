package rush

// advanceObstacles moves every obstacle by dist and drops those past limit.
// The slice is filtered in place; insertion order is preserved.
func advanceObstacles(obs []Obstacle, dist, limit float64) []Obstacle {
	kept := obs[:0]
	for _, o := range obs {
		o.Pos += dist
		if o.Pos < limit {
			kept = append(kept, o)
		}
	}
	clear(obs[len(kept):])
	return kept
}

// advancePowerUps moves every power-up by dist and drops those past limit.
func advancePowerUps(pus []PowerUp, dist, limit float64) []PowerUp {
	kept := pus[:0]
	for _, p := range pus {
		p.Pos += dist
		if p.Pos < limit {
			kept = append(kept, p)
		}
	}
	clear(pus[len(kept):])
	return kept
}
