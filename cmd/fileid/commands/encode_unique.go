package commands

import (
	"fmt"

	"fileid-inspector/pkg/fileid"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

type encodeUniqueOptions struct {
	kind     string
	url      string
	volumeID int64
	localID  int32
	id       int64
}

func newEncodeUniqueCmd() *cobra.Command {
	opts := &encodeUniqueOptions{}

	cmd := &cobra.Command{
		Use:   "encode-unique",
		Short: "Build a file_unique_id from its parts",
		Example: `  fileid encode-unique --type web --url https://example.com/a.png
  fileid encode-unique --type photo --volume-id 123456789 --local-id 42
  fileid encode-unique --type document --id 6176735104241501156`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := opts.uniqueFileID()
			if err != nil {
				return err
			}
			encoded, err := fileid.EncodeUniqueID(u)
			if err != nil {
				return errors.Wrap(err, "encode file_unique_id")
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.kind, "type", "", "identifier kind: web, photo or document")
	cmd.Flags().StringVar(&opts.url, "url", "", "file URL (web)")
	cmd.Flags().Int64Var(&opts.volumeID, "volume-id", 0, "volume id (photo)")
	cmd.Flags().Int32Var(&opts.localID, "local-id", 0, "local id (photo)")
	cmd.Flags().Int64Var(&opts.id, "id", 0, "file id (document)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (o *encodeUniqueOptions) uniqueFileID() (fileid.UniqueFileID, error) {
	switch o.kind {
	case "web":
		return fileid.UniqueFileID{Type: fileid.UniqueWeb, URL: o.url}, nil
	case "photo":
		return fileid.UniqueFileID{Type: fileid.UniquePhoto, VolumeID: o.volumeID, LocalID: o.localID}, nil
	case "document":
		return fileid.UniqueFileID{Type: fileid.UniqueDocument, ID: o.id}, nil
	default:
		return fileid.UniqueFileID{}, errors.Errorf("unknown type %q", o.kind)
	}
}
