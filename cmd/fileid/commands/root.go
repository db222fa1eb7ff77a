package commands

import (
	"log/slog"
	"os"

	"fileid-inspector/internal/inspect"

	"github.com/spf13/cobra"
)

type options struct {
	output  string
	verbose bool
}

// NewRootCmd builds the fileid command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "fileid",
		Short:        "Inspect Telegram Bot API file identifiers",
		Long:         `Decode, verify and build Telegram Bot API file_id and file_unique_id strings offline.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", string(inspect.FormatYAML), "output format: yaml or json")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newDecodeCmd(opts),
		newUniqueCmd(opts),
		newVerifyCmd(),
		newEncodeUniqueCmd(),
	)
	return root
}

func Execute() error {
	root := NewRootCmd()
	root.SetOut(os.Stdout)
	return root.Execute()
}

func (o *options) format() inspect.Format {
	return inspect.Format(o.output)
}
