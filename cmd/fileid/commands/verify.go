package commands

import (
	"fmt"

	"fileid-inspector/pkg/fileid"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

var errMismatch = errors.New("re-encoded file_id differs from input")

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file_id>",
		Short: "Check that a file_id decodes and re-encodes to the same string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := reencode(args[0])
			if err != nil {
				return err
			}
			if encoded != args[0] {
				fmt.Fprintf(cmd.OutOrStdout(), "input:      %s\nre-encoded: %s\n", args[0], encoded)
				return errMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func reencode(fileID string) (string, error) {
	info, err := fileid.DecodeFileID(fileID)
	if err != nil {
		return "", errors.Wrap(err, "decode file_id")
	}
	encoded, err := fileid.EncodeFileID(info)
	if err != nil {
		return "", errors.Wrap(err, "encode file_id")
	}
	return encoded, nil
}
