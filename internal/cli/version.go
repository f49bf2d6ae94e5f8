package cli

import (
	"github.com/spf13/cobra"

	"textractkit/docs/schema"
	"textractkit/pkg/textract"
)

type versionOutput struct {
	Version      string `json:"version"`
	ModelVersion string `json:"model_version"`
	Source       string `json:"model_source"`
	Status       string `json:"model_status"`
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool and model versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			meta, err := schema.ModelMetadata()
			if err != nil {
				return err
			}
			return writeJSON(cmd, versionOutput{
				Version:      version,
				ModelVersion: textract.ModelVersion,
				Source:       meta.Source,
				Status:       meta.Status,
			})
		},
	}
}
