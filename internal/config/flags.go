package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile       = flag.String("log-file", "", "Write logs to this file")
	flagIndexFormat   = flag.String("index-format", "", "Index buffer format: uint16 or uint32")
	flagNoMatrixIndex = flag.Bool("no-matrix-index", false, "Do not store the position matrix index in Position.W")
	flagNoValidate    = flag.Bool("no-validate", false, "Skip output validation")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagIndexFormat != "" {
		cfg.Build.IndexFormat = *flagIndexFormat
	}
	if *flagNoMatrixIndex {
		cfg.Build.EncodeMatrixIndex = false
	}
	if *flagNoValidate {
		cfg.Build.Validate = false
	}
}
