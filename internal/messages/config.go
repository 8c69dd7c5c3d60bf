package messages

// Config messages for loading and validating the harness configuration.
const (
	ConfigMissingFileFmt    = "read config %s: %w"
	ConfigInvalidConfigFmt  = "parse config %s: %w"
	ConfigMissingEnvFileFmt = "read env file %s: %w"
	ConfigInvalidEnvFileFmt = "invalid env file %s: %w"
	ConfigInvalidFieldFmt   = "config field %s: %s"
	ConfigInvalidPortFmt    = "config field machine.port: %d is not a valid port"
	ConfigInvalidTimeout    = "config field timeouts.wait_seconds: must be positive"
	ConfigOverrideFmt       = "apply override %s: %w"

	// EnvfileLineErrorFmt reports a parse failure with its line number.
	EnvfileLineErrorFmt    = "line %d: %w"
	EnvfileReadFailedFmt   = "read env content: %w"
	EnvfileMissingKey      = "missing key before '='"
	EnvfileMissingEquals   = "missing '=' separator"
	EnvfileUnbalancedQuote = "unbalanced quote in value"
)
