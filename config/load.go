package config

import (
	"fmt"
	"os"
)

// DefaultTuningFile is picked up from the working directory when no -config
// flag is given.
const DefaultTuningFile = "skyhop.yaml"

// Load applies the layers in order: defaults < tuning file < flags. Flags
// are read first only to learn the tuning path.
func Load() error {
	applyFlags(C)
	if C.TuningPath == "" {
		if _, err := os.Stat(DefaultTuningFile); err == nil {
			C.TuningPath = DefaultTuningFile
		}
	}
	if C.TuningPath == "" {
		return nil
	}

	t, err := LoadTuning(C.TuningPath)
	if err != nil {
		return fmt.Errorf("loading config from %s: %w", C.TuningPath, err)
	}
	ApplyTuning(t)
	return nil
}
