package cli

import (
	"time"

	"github.com/spf13/cobra"

	"textractkit/internal/staging"
	"textractkit/pkg/textract"
)

// stageOutput is printed by the stage command.
type stageOutput struct {
	Object           staging.Info               `json:"object"`
	DocumentLocation *textract.DocumentLocation `json:"document_location"`
	PresignedURL     string                     `json:"presigned_url,omitempty"`
}

func (a *app) stageCommand() *cobra.Command {
	var presign time.Duration
	cmd := &cobra.Command{
		Use:   "stage <file>",
		Short: "Upload a local document to the staging bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			info, err := a.stageFile(ctx, args[0])
			if err != nil {
				return err
			}
			out := stageOutput{Object: info, DocumentLocation: info.DocumentLocation()}
			if presign > 0 {
				st, err := a.documentStager(ctx)
				if err != nil {
					return err
				}
				if out.PresignedURL, err = st.PresignURL(ctx, info.Key, presign); err != nil {
					return err
				}
			}
			return writeJSON(cmd, out)
		},
	}
	cmd.Flags().DurationVar(&presign, "presign", 0, "also print a presigned GET URL valid for this long")
	return cmd
}
