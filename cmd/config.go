package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"skeletor.dev/pkg/skeletor/internal/adapter"
	"skeletor.dev/pkg/skeletor/internal/domain"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "skeletor"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	sourceFlagName            = "source"
	templateDirFlagName       = "template-dir"
	revisionFlagName          = "revision"
	excludeFlagName           = "exclude"
	verboseFlagName           = "verbose"
	answersFlagName           = "answers"
	saveAnswersFlagName       = "save-answers"
	noInteractionFlagName     = "no-interaction"
	runParallelFlagName       = "parallel"
	skipInstallFlagName       = "skip-install"
	gitFlagName               = "git"
	skeletonNamespaceFlagName = "skeleton-namespace"
	diffFlagName              = "diff"

	sourceStrategyKey     = "source.strategy"
	sourceDirKey          = "source.dir"
	sourceKeepStagingKey  = "source.keep_staging"
	remoteAPIKey          = "source.remote.api"
	remoteOrganizationKey = "source.remote.organization"
	remoteRepositoryKey   = "source.remote.repository"
	remoteRevisionKey     = "source.remote.revision"
	remoteRetriesKey      = "source.remote.retries"
	remoteTimeoutKey      = "source.remote.timeout"

	templateHostKey                 = "template.host"
	templateSkeletonNamespaceKey    = "template.skeleton_namespace"
	templateInstantiationExampleKey = "template.instantiation_example"
	excludeConfigKey                = "template.exclude"

	runParallelConfigKey = "run.parallel"

	bootstrapInstallKey        = "bootstrap.install"
	bootstrapInstallCommandKey = "bootstrap.install_command"
	bootstrapGitKey            = "bootstrap.git"

	promptWebsiteRequiredKey = "prompt.website_required"

	defaultSourceStrategy = string(m.SourceLocal)
	defaultRunParallel    = 4

	envPrefix = "SKELETOR"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".skeletor.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Missing or unreadable config falls back to defaults and env.
			slog.Debug("config file not loaded", "error", err)
		}
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(sourceStrategyKey, defaultSourceStrategy)
	viper.SetDefault(sourceDirKey, "")
	viper.SetDefault(sourceKeepStagingKey, false)
	viper.SetDefault(remoteAPIKey, adapter.DefaultAPIBaseURL)
	viper.SetDefault(remoteOrganizationKey, adapter.DefaultOrganization)
	viper.SetDefault(remoteRepositoryKey, adapter.DefaultRepository)
	viper.SetDefault(remoteRevisionKey, "")
	viper.SetDefault(remoteRetriesKey, adapter.DefaultRetries)
	viper.SetDefault(remoteTimeoutKey, int64(adapter.DefaultFetchTimeout.Seconds()))

	viper.SetDefault(templateHostKey, domain.DefaultRepositoryHost)
	viper.SetDefault(templateSkeletonNamespaceKey, false)
	viper.SetDefault(templateInstantiationExampleKey, true)
	viper.SetDefault(excludeConfigKey, []string{})

	viper.SetDefault(runParallelConfigKey, defaultRunParallel)

	viper.SetDefault(bootstrapInstallKey, true)
	viper.SetDefault(bootstrapInstallCommandKey, domain.DefaultInstallCommand)
	viper.SetDefault(bootstrapGitKey, string(domain.GitIfMissing))

	viper.SetDefault(promptWebsiteRequiredKey, false)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: verbose,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
