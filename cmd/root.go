// Package cmd provides the root command and CLI setup for skeletor.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"skeletor.dev/pkg/skeletor/internal/adapter"
	"skeletor.dev/pkg/skeletor/internal/controller"
	"skeletor.dev/pkg/skeletor/internal/domain"
	serrors "skeletor.dev/pkg/skeletor/internal/errors"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var answersStore adapter.AnswersStore
var envAdapter adapter.EnvironmentAdapter
var commandRunner adapter.CommandRunner
var bootstrapper *domain.Bootstrapper
var workflow domain.Workflow
var ui controller.UI
var prompter controller.Prompter

// Root-level flags shared by new and list.
var (
	sourceFlag      string
	templateDirFlag string
	revisionFlag    string
	excludePatterns []string
	verboseFlag     bool
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	prompter = controller.NewPrompter(rootCmd, controller.IsTTY(os.Stdin) && controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	answersStore = adapter.NewYAMLAnswersStore(fsAdapter)
	commandRunner = adapter.NewLocalCommandRunner()
	envAdapter = adapter.NewLocalEnvironmentAdapter(commandRunner)
	bootstrapper = domain.NewBootstrapper(commandRunner, fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		answersStore,
		envAdapter,
		ui,
		prompter,
		bootstrapper,
	)
}

const rootLongDescription = `Skeletor creates a new PHP package from the League skeleton.

It asks for the package name, namespace and author details, copies the
template into the target directory and replaces every placeholder with your
answers. The template is either bundled with the tool, read from a local
directory, or downloaded from a pinned GitHub revision.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "skeletor",
		Short:         "Scaffold a PHP package from a template",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&sourceFlag, sourceFlagName, defaultSourceStrategy, "template source strategy: local or remote")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sourceFlagName), sourceStrategyKey)

	cmd.PersistentFlags().StringVar(&templateDirFlag, templateDirFlagName, "", "local template directory (default: bundled skeleton)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(templateDirFlagName), sourceDirKey)

	cmd.PersistentFlags().StringVar(&revisionFlag, revisionFlagName, "", "commit id of the remote template (7 to 40 hex characters)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(revisionFlagName), remoteRevisionKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "skip template paths containing this segment (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "show every written file and log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
	}

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newSourceAcquirer builds the acquirer selected by source.strategy.
func newSourceAcquirer() (adapter.SourceAcquirer, error) {
	strategy := m.SourceStrategy(strings.ToLower(strings.TrimSpace(viper.GetString(sourceStrategyKey))))

	switch strategy {
	case m.SourceLocal:
		if dir := viper.GetString(sourceDirKey); dir != "" {
			return adapter.NewDirSourceAcquirer(fsAdapter, m.Path(dir)), nil
		}

		return adapter.NewBundledSourceAcquirer(), nil
	case m.SourceRemote:
		return adapter.NewRemoteSourceAcquirer(fsAdapter, adapter.RemoteConfig{
			APIBaseURL: viper.GetString(remoteAPIKey),
			Address: m.ArchiveAddress{
				Organization: viper.GetString(remoteOrganizationKey),
				Repository:   viper.GetString(remoteRepositoryKey),
				Revision:     viper.GetString(remoteRevisionKey),
			},
			Retries:     viper.GetInt(remoteRetriesKey),
			Timeout:     time.Duration(viper.GetInt64(remoteTimeoutKey)) * time.Second,
			KeepStaging: viper.GetBool(sourceKeepStagingKey),
		}), nil
	default:
		return nil, serrors.NewValidationError(sourceStrategyKey,
			fmt.Sprintf("unknown strategy %q (want %s or %s)", strategy, m.SourceLocal, m.SourceRemote))
	}
}

func ruleOptions() domain.RuleOptions {
	return domain.RuleOptions{
		Host:                 viper.GetString(templateHostKey),
		SkeletonSubNamespace: viper.GetBool(templateSkeletonNamespaceKey),
		InstantiationExample: viper.GetBool(templateInstantiationExampleKey),
	}
}
