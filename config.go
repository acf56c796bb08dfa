package site

import "github.com/goliatone/go-site/internal/runtimeconfig"

var (
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrContentExtensionInvalid = runtimeconfig.ErrContentExtensionInvalid
	ErrMalformedPolicyInvalid  = runtimeconfig.ErrMalformedPolicyInvalid
	ErrMarkdownEngineInvalid   = runtimeconfig.ErrMarkdownEngineInvalid
	ErrWordsPerMinuteInvalid   = runtimeconfig.ErrWordsPerMinuteInvalid
	ErrHTTPModeInvalid         = runtimeconfig.ErrHTTPModeInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrConfigFormatUnsupported = runtimeconfig.ErrConfigFormatUnsupported
)

const (
	MalformedPolicySkip  = runtimeconfig.MalformedPolicySkip
	MalformedPolicyAbort = runtimeconfig.MalformedPolicyAbort
)

type (
	Config         = runtimeconfig.Config
	ContentConfig  = runtimeconfig.ContentConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	GoldmarkConfig = runtimeconfig.GoldmarkConfig
	HTTPConfig     = runtimeconfig.HTTPConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	LoadOptions    = runtimeconfig.LoadOptions
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig layers a config file, dotenv files and SITE_ environment
// variables over DefaultConfig.
func LoadConfig(opts LoadOptions) (Config, error) {
	return runtimeconfig.Load(opts)
}
