package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"skeletor.dev/pkg/skeletor/internal/domain"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

const listLongDescription = `List the files the configured template would produce.

With --diff, every text file is rewritten in memory using the answers file
(if any) and environment defaults, and the change is shown as a unified diff.
Nothing is written to disk.`

var (
	listDiffFlag    bool
	listAnswersFlag string
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [directory]",
		Short: "List template files",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := newSourceAcquirer()
			if err != nil {
				return err
			}

			var destination m.Path
			if len(args) == 1 {
				destination = m.Path(args[0])
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Source:      source,
				Destination: destination,
				AnswersFile: m.Path(listAnswersFlag),
				Denylist:    viper.GetStringSlice(excludeConfigKey),
				Diff:        listDiffFlag,
				Rules:       ruleOptions(),
			})
		},
	}

	cmd.Flags().BoolVar(&listDiffFlag, diffFlagName, false, "show the rewrite of every text file as a unified diff")
	cmd.Flags().StringVarP(&listAnswersFlag, answersFlagName, "a", "", "YAML file with answers used by --diff")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
