package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	lastUpdate           time.Time
}

func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, lastUpdate: now}
}

// Update records a drawn generation and the living population it showed
func (s *Stats) Update(generation int, population int) {
	now := time.Now()
	s.TotalGenerations = generation
	if d := now.Sub(s.lastUpdate); d > 0 {
		s.GenerationsPerSecond = 1.0 / d.Seconds()
	}
	s.lastUpdate = now

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary is a one-line report of the run so far
func (s *Stats) Summary() string {
	return fmt.Sprintf("Generations: %d | Avg population: %.1f | Runtime: %.1fs",
		s.TotalGenerations, s.AveragePopulation, time.Since(s.StartTime).Seconds())
}
