package commands

import (
	"fileid-inspector/internal/inspect"
	"fileid-inspector/pkg/fileid"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

func newUniqueCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "unique <file_unique_id>",
		Short: "Decode a file_unique_id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := fileid.DecodeUniqueID(args[0])
			if err != nil {
				return errors.Wrap(err, "decode file_unique_id")
			}
			out, err := inspect.Render(inspect.NewUniqueReport(info), opts.format())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
