package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to a YAML tuning file")
	flagLevel    = flag.String("level", "", "Level to load (TMX file name without extension)")
	flagLogLevel = flag.String("log-level", "", "Log level: debug, info, warn, error")
	flagLogFile  = flag.String("log-file", "", "Also write logs to this rotating file")
	flagDebug    = flag.Bool("debug", false, "Show the debug overlay and log at debug level")
	flagWatch    = flag.Bool("watch", false, "Reload the tuning file when it changes on disk")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagConfig != "" {
		cfg.TuningPath = *flagConfig
	}
	if *flagLevel != "" {
		cfg.Level = *flagLevel
	}
	if *flagDebug {
		cfg.LogLevel = "debug"
		Debug.Overlay = true
	}
	if *flagLogLevel != "" {
		cfg.LogLevel = *flagLogLevel
	}
	if *flagLogFile != "" {
		cfg.LogFile = *flagLogFile
	}
	if *flagWatch {
		cfg.Watch = true
	}
}
