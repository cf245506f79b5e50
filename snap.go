package main

import "math"

func snap(value, gridSize float64) float64 {
	if gridSize <= 0 {
		return value
	}
	return math.Round(value/gridSize) * gridSize
}

// snapWithin snaps value to the grid without leaving [0, upper]. When
// rounding overshoots the upper bound the next lower grid line is used.
func snapWithin(value, upper, gridSize float64) float64 {
	if gridSize <= 0 {
		return clamp(value, 0, upper)
	}
	s := snap(value, gridSize)
	if s > upper {
		s = math.Floor(upper/gridSize) * gridSize
	}
	if s < 0 {
		s = 0
	}
	return s
}
