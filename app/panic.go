package app

import "fmt"

// StepGuarded runs one tick and converts a panic into an error, after
// logging it and freezing a fault message on the panel. Entrypoints use
// this so a firmware bug leaves something readable on the display
// instead of a dead screen.
func (s *System) StepGuarded() (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.h.Logger().WriteLineString(fmt.Sprintf("panic: %v", r))
			s.lcd.Print(0, "FAULT           ")
			s.lcd.Print(1, fmt.Sprintf("%-16.16s", fmt.Sprint(r)))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Step()
}
