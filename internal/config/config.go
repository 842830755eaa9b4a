package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	envPrefix      = "TRX"
	DefaultEnvFile = ".env"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Args represents the reporter's configurable arguments.
type Args struct {
	OutputFile        string   `envconfig:"OUTPUT_FILE" default:"test-results.trx"`
	DefaultUserName   string   `envconfig:"DEFAULT_USER_NAME" default:"anonymous"`
	Input             []string `envconfig:"INPUT"`
	SummaryFile       string   `envconfig:"SUMMARY_FILE"`
	AttachModuleFiles bool     `envconfig:"ATTACH_MODULE_FILES"`
	HookCmd           string   `envconfig:"HOOK_CMD"`
	HookArgs          []string `envconfig:"HOOK_ARGS"`
	HookEnvFiles      []string `envconfig:"HOOK_ENV_FILES"`
	HookTimeoutMs     int      `envconfig:"HOOK_TIMEOUT_MS" default:"10000"`
	FailOnFailure     bool     `envconfig:"FAIL_ON_FAILURE"`
	Level             string   `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional dotenv file (TRX_ENV_FILE or .env) and then the TRX_* environment.
func Load() (Args, error) {
	envFile := os.Getenv(envPrefix + "_ENV_FILE")
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Args{}, fmt.Errorf("load %s: %w", envFile, err)
		}
		logrus.WithField("File", envFile).Debug("No env file, using process environment")
	}

	var args Args
	if err := envconfig.Process(envPrefix, &args); err != nil {
		return Args{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return args, nil
}

// ValidateInputs ensures the arguments are usable.
func ValidateInputs(args Args) error {
	if strings.TrimSpace(args.OutputFile) == "" {
		return fmt.Errorf("%w: missing required parameter OutputFile", ErrInvalidConfig)
	}
	if len(args.Input) == 0 {
		return fmt.Errorf("%w: missing required parameter Input. Specify at least one result dump", ErrInvalidConfig)
	}
	if args.HookTimeoutMs < 0 {
		return fmt.Errorf("%w: HookTimeoutMs must be non-negative", ErrInvalidConfig)
	}
	if (len(args.HookArgs) > 0 || len(args.HookEnvFiles) > 0) && args.HookCmd == "" {
		return fmt.Errorf("%w: hook arguments given without HookCmd", ErrInvalidConfig)
	}
	return nil
}

// ConfigureLogging applies the configured level to the standard logger.
func ConfigureLogging(args Args) error {
	level, err := logrus.ParseLevel(args.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	logrus.SetLevel(level)
	return nil
}
