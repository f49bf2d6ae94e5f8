package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"textractkit/internal/jobs"
	"textractkit/pkg/client"
	"textractkit/pkg/textract"
)

var kindAliases = map[string]jobs.Kind{
	"analysis": jobs.KindDocumentAnalysis,
	"text":     jobs.KindTextDetection,
	"expense":  jobs.KindExpenseAnalysis,
}

func parseKind(s string) (jobs.Kind, error) {
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	for _, k := range jobs.Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown job kind %q (want analysis, text, or expense)", s)
}

func (a *app) startCommand() *cobra.Command {
	var (
		features []string
		tag      string
		token    string
	)
	cmd := &cobra.Command{
		Use:   "start <analysis|text|expense> <file|s3://bucket/key>",
		Short: "Start an asynchronous job and record it in the ledger",
		Long:  `Local files are staged to S3 first. The job id, status and request token are stored in the job ledger.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			var ft []textract.FeatureType
			if kind == jobs.KindDocumentAnalysis {
				if ft, err = parseFeatures(features); err != nil {
					return err
				}
			}
			ctx := cmd.Context()
			tracker, err := a.tracker(ctx, cmd)
			if err != nil {
				return err
			}
			loc, err := a.locationArg(ctx, args[1])
			if err != nil {
				return err
			}
			rec, err := tracker.Start(ctx, jobs.StartInput{
				Kind:               kind,
				Location:           loc,
				Features:           ft,
				JobTag:             tag,
				ClientRequestToken: token,
			})
			if err != nil {
				return err
			}
			a.logger.Info("job started", "job_id", rec.JobID, "kind", rec.Kind)
			return writeJSON(cmd, rec)
		},
	}
	cmd.Flags().StringSliceVarP(&features, "features", "f", []string{"TABLES", "FORMS"}, "feature types for analysis jobs")
	cmd.Flags().StringVar(&tag, "tag", "", "job tag echoed in completion notifications")
	cmd.Flags().StringVar(&token, "token", "", "idempotency token (generated when empty)")
	return cmd
}

func (a *app) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <job-id>",
		Short: "Refresh a recorded job's status from Textract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := a.tracker(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			rec, err := tracker.Refresh(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, rec)
		},
	}
}

func (a *app) waitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wait <job-id>",
		Short: "Wait for a recorded job to finish and print its merged result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.jobStore(ctx)
			if err != nil {
				return err
			}
			rec, err := store.Get(ctx, args[0])
			if err != nil {
				return err
			}
			api, err := a.textract(ctx, cmd)
			if err != nil {
				return err
			}
			res, status, err := waitFor(ctx, api, rec)
			var failed *client.JobFailedError
			switch {
			case errors.As(err, &failed):
				rec.Status = textract.JobStatusFailed
				rec.StatusMessage = failed.Message
			case err != nil:
				return err
			default:
				rec.Status = status.GetJobStatus()
				rec.StatusMessage = status.GetStatusMessage()
				if pages := status.GetDocumentMetadata().GetPages(); pages > 0 {
					rec.Pages = pages
				}
			}
			rec.UpdatedAt = a.now().UTC()
			if serr := store.Save(ctx, rec); serr != nil {
				return serr
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd, res)
		},
	}
}

type jobResult interface {
	GetJobStatus() textract.JobStatus
	GetStatusMessage() string
	GetDocumentMetadata() *textract.DocumentMetadata
}

func waitFor(ctx context.Context, api Textract, rec jobs.Record) (any, jobResult, error) {
	switch rec.Kind {
	case jobs.KindDocumentAnalysis:
		res, err := api.WaitForDocumentAnalysis(ctx, rec.JobID)
		return res, res, err
	case jobs.KindTextDetection:
		res, err := api.WaitForDocumentTextDetection(ctx, rec.JobID)
		return res, res, err
	case jobs.KindExpenseAnalysis:
		res, err := api.WaitForExpenseAnalysis(ctx, rec.JobID)
		return res, res, err
	}
	return nil, nil, fmt.Errorf("job %s has unknown kind %q", rec.JobID, rec.Kind)
}

func (a *app) jobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect the job ledger",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded jobs, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.jobStore(cmd.Context())
			if err != nil {
				return err
			}
			records, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if records == nil {
				records = []jobs.Record{}
			}
			return writeJSON(cmd, records)
		},
	})
	return cmd
}
