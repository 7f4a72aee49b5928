package app

import "time"

// Stats accumulates telemetry for the running game.
type Stats struct {
	start       time.Time
	generations int
	population  int
}

// NewStats returns stats measuring from now.
func NewStats() *Stats {
	return &Stats{start: time.Now()}
}

// Reset starts a fresh measurement window.
func (s *Stats) Reset() {
	s.start = time.Now()
	s.generations = 0
	s.population = 0
}

// Record notes one advanced generation and its resulting population.
func (s *Stats) Record(population int) {
	s.generations++
	s.population = population
}

// Generations returns how many generations have been recorded.
func (s *Stats) Generations() int { return s.generations }

// Population returns the population of the last recorded generation.
func (s *Stats) Population() int { return s.population }

// PerSecond returns the average generations per second since the last reset.
func (s *Stats) PerSecond() float64 {
	elapsed := time.Since(s.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.generations) / elapsed
}
