// Package demo holds the small standalone exercises that sit next to the
// form rounds: a temperature converter and a stopwatch.
package demo

import "math"

const startFahrenheit = 32

// Temperature is a Fahrenheit counter with a derived Celsius reading.
type Temperature struct {
	f int
}

func NewTemperature() *Temperature { return &Temperature{f: startFahrenheit} }

func (t *Temperature) Inc() { t.f++ }
func (t *Temperature) Dec() { t.f-- }

func (t *Temperature) Fahrenheit() int { return t.f }

// Celsius is recomputed on every call and rounded to the nearest degree.
func (t *Temperature) Celsius() int { return ToCelsius(t.f) }

func ToCelsius(f int) int {
	return int(math.Round(float64(f-32) * 5 / 9))
}
