package demo

import "testing"

func TestToCelsius(t *testing.T) {
	cases := map[int]int{32: 0, 212: 100, -40: -40, 33: 1, 34: 1, 0: -18, 98: 37, 50: 10, 77: 25}
	for f, want := range cases {
		if got := ToCelsius(f); got != want {
			t.Errorf("ToCelsius(%d) = %d, want %d", f, got, want)
		}
	}
}

func TestTemperature(t *testing.T) {
	tmp := NewTemperature()
	if tmp.Fahrenheit() != 32 || tmp.Celsius() != 0 {
		t.Fatalf("start %d°F %d°C", tmp.Fahrenheit(), tmp.Celsius())
	}
	for i := 0; i < 18; i++ {
		tmp.Inc()
	}
	if tmp.Fahrenheit() != 50 || tmp.Celsius() != 10 {
		t.Errorf("got %d°F %d°C", tmp.Fahrenheit(), tmp.Celsius())
	}
	tmp.Dec()
	if tmp.Fahrenheit() != 49 || tmp.Celsius() != 9 {
		t.Errorf("got %d°F %d°C", tmp.Fahrenheit(), tmp.Celsius())
	}
}

func TestStopwatch(t *testing.T) {
	s := NewStopwatch()
	if !s.Running() || s.Button() != "Pause" {
		t.Fatal("stopwatch should start running")
	}
	s.Tick()
	s.Tick()
	s.Toggle()
	s.Tick()
	if s.Seconds() != 2 || s.Button() != "Resume" {
		t.Fatalf("seconds %d button %s", s.Seconds(), s.Button())
	}
	s.Toggle()
	s.Tick()
	if s.Seconds() != 3 {
		t.Fatalf("seconds %d", s.Seconds())
	}
}
