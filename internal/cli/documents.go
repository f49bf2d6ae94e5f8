package cli

import (
	"slices"

	"github.com/spf13/cobra"

	"textractkit/pkg/textract"
)

func (a *app) detectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file|s3://bucket/key>",
		Short: "Detect lines and words in a single-page document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := documentArg(args[0])
			if err != nil {
				return err
			}
			api, err := a.textract(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			res, err := api.DetectDocumentText(cmd.Context(), new(textract.DetectDocumentTextRequest).SetDocument(doc))
			if err != nil {
				return err
			}
			return writeJSON(cmd, res)
		},
	}
}

func (a *app) analyzeCommand() *cobra.Command {
	var (
		features []string
		queries  []string
	)
	cmd := &cobra.Command{
		Use:   "analyze <file|s3://bucket/key>",
		Short: "Analyze forms, tables, queries, signatures or layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := analyzeRequest(features, queries)
			if err != nil {
				return err
			}
			doc, err := documentArg(args[0])
			if err != nil {
				return err
			}
			api, err := a.textract(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			res, err := api.AnalyzeDocument(cmd.Context(), req.SetDocument(doc))
			if err != nil {
				return err
			}
			return writeJSON(cmd, res)
		},
	}
	cmd.Flags().StringSliceVarP(&features, "features", "f", []string{"TABLES", "FORMS"}, "feature types to request")
	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, `query text, optionally "text|ALIAS" (implies QUERIES)`)
	return cmd
}

// analyzeRequest builds the feature list and query config. Queries add the
// QUERIES feature when it was not requested.
func analyzeRequest(featureFlags, queryFlags []string) (*textract.AnalyzeDocumentRequest, error) {
	features, err := parseFeatures(featureFlags)
	if err != nil {
		return nil, err
	}
	req := new(textract.AnalyzeDocumentRequest)
	if len(queryFlags) > 0 {
		if !slices.Contains(features, textract.FeatureTypeQueries) {
			features = append(features, textract.FeatureTypeQueries)
		}
		req.SetQueriesConfig(new(textract.QueriesConfig).SetQueries(parseQueries(queryFlags)))
	}
	return req.SetFeatureTypes(features), nil
}

func (a *app) expenseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expense <file|s3://bucket/key>",
		Short: "Extract invoice and receipt fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := documentArg(args[0])
			if err != nil {
				return err
			}
			api, err := a.textract(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			res, err := api.AnalyzeExpense(cmd.Context(), new(textract.AnalyzeExpenseRequest).SetDocument(doc))
			if err != nil {
				return err
			}
			return writeJSON(cmd, res)
		},
	}
}

func (a *app) identityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "id <front> [back]",
		Short: "Extract fields from an identity document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pages := make([]textract.Document, 0, len(args))
			for _, arg := range args {
				doc, err := documentArg(arg)
				if err != nil {
					return err
				}
				pages = append(pages, *doc)
			}
			api, err := a.textract(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			res, err := api.AnalyzeID(cmd.Context(), new(textract.AnalyzeIDRequest).SetDocumentPages(pages))
			if err != nil {
				return err
			}
			return writeJSON(cmd, res)
		},
	}
}
