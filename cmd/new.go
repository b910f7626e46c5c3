package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"skeletor.dev/pkg/skeletor/internal/domain"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

const newLongDescription = `Create a new PHP package in the given directory (default: current directory).

Answers come from --answers (a YAML file keyed by package_name,
package_description, namespace, author_name, author_email, author_username
and author_website) and from interactive prompts for anything missing.
After the files are written, dependencies are installed and a git
repository is initialized unless disabled.`

var (
	answersFlag           string
	saveAnswersFlag       string
	noInteractionFlag     bool
	newParallelFlag       int
	skipInstallFlag       bool
	gitPolicyFlag         string
	skeletonNamespaceFlag bool
)

// newCmd represents the new command.
var newCmd = newNewCmd()

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [directory]",
		Short: "Create a new package from the template",
		Long:  newLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination := m.Path(".")
			if len(args) == 1 {
				destination = m.Path(args[0])
			}

			source, err := newSourceAcquirer()
			if err != nil {
				return err
			}

			gitPolicy, err := domain.ParseGitPolicy(viper.GetString(bootstrapGitKey))
			if err != nil {
				return err
			}

			install := viper.GetBool(bootstrapInstallKey)
			if skipInstallFlag {
				install = false
			}

			_, err = workflow.New(cmd.Context(), domain.NewArgs{
				Destination:   destination,
				Source:        source,
				AnswersFile:   m.Path(answersFlag),
				SaveAnswers:   m.Path(saveAnswersFlag),
				NoInteraction: noInteractionFlag,
				Threads:       viper.GetInt(runParallelConfigKey),
				Denylist:      viper.GetStringSlice(excludeConfigKey),
				Verbose:       viper.GetBool(logVerboseKey),
				Rules:         ruleOptions(),
				Validation: domain.ValidationPolicy{
					WebsiteRequired: viper.GetBool(promptWebsiteRequiredKey),
				},
				Bootstrap: domain.BootstrapOptions{
					Install:        install,
					InstallCommand: viper.GetString(bootstrapInstallCommandKey),
					Git:            gitPolicy,
				},
			})

			return err
		},
	}

	configureNewFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func configureNewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&answersFlag, answersFlagName, "a", "", "YAML file with answers to the questions")
	cmd.Flags().StringVar(&saveAnswersFlag, saveAnswersFlagName, "", "write the final answers to this YAML file")
	cmd.Flags().BoolVarP(&noInteractionFlag, noInteractionFlagName, "n", false, "never prompt; fail if an answer is missing or invalid")

	cmd.Flags().IntVarP(&newParallelFlag, runParallelFlagName, "p", defaultRunParallel, "number of files written in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().BoolVar(&skipInstallFlag, skipInstallFlagName, false, "do not run the install command")

	cmd.Flags().StringVar(&gitPolicyFlag, gitFlagName, string(domain.GitIfMissing), "git init policy: if-missing, always or never")
	bindFlagToConfig(cmd.Flags().Lookup(gitFlagName), bootstrapGitKey)

	cmd.Flags().BoolVar(&skeletonNamespaceFlag, skeletonNamespaceFlagName, false, `declare classes in the <Namespace>\<Package>\Skeleton namespace`)
	bindFlagToConfig(cmd.Flags().Lookup(skeletonNamespaceFlagName), templateSkeletonNamespaceKey)
}
