package commands

import (
	"log/slog"

	"fileid-inspector/internal/inspect"
	"fileid-inspector/pkg/fileid"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

type pairReport struct {
	FileID       inspect.FileReport   `yaml:"file_id" json:"file_id"`
	FileUniqueID inspect.UniqueReport `yaml:"file_unique_id" json:"file_unique_id"`
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file_id> [file_unique_id]",
		Short: "Decode a file_id, optionally together with its file_unique_id",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var report any
			if len(args) == 2 {
				info, unique, err := fileid.Decode(args[0], args[1])
				if err != nil {
					return errors.Wrap(err, "decode")
				}
				report = pairReport{
					FileID:       inspect.NewFileReport(info),
					FileUniqueID: inspect.NewUniqueReport(unique),
				}
			} else {
				info, err := fileid.DecodeFileID(args[0])
				if err != nil {
					return errors.Wrap(err, "decode file_id")
				}
				report = inspect.NewFileReport(info)
			}
			slog.Debug("Decoded file_id", "fileID", args[0])

			out, err := inspect.Render(report, opts.format())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
