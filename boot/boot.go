package boot

import (
	"fmt"
	"log/slog"
)

// Step is one stage of the startup sequence.
type Step struct {
	Name string
	Run  func() error
}

// Run executes steps strictly in order, single-threaded, and stops at the
// first failure. A failed step's error propagates with the step name
// attached; later steps never run. This replaces shell `&&` chaining with
// an explicit, testable gate.
func Run(steps []Step) error {
	for _, step := range steps {
		slog.Info("Running bootstrap step: " + step.Name)
		if err := step.Run(); err != nil {
			return fmt.Errorf("bootstrap step %s failed: %w", step.Name, err)
		}
		slog.Debug("Bootstrap step " + step.Name + " complete")
	}
	return nil
}
