package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/leads-cli/internal/model"
	"github.com/sells-group/leads-cli/internal/pipeline"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Extract leads and print the result envelope as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		// Storage failures are reported inside the envelope; the process
		// still exits zero with valid JSON on stdout.
		st, err := initStore(ctx)
		if err != nil {
			return emitJSON(os.Stdout, model.NewErrorEnvelope(err))
		}
		defer st.Close() //nolint:errcheck

		p := pipeline.New(st, cfg.Workflow.ID, cfg.Workflow.ScanLimit)
		env, err := p.GetLeads(ctx, limit, offset)
		if err != nil {
			return emitJSON(os.Stdout, model.NewErrorEnvelope(err))
		}

		return emitJSON(os.Stdout, env)
	},
}

func init() {
	getCmd.Flags().Int("limit", 50, "max number of leads to return")
	getCmd.Flags().Int("offset", 0, "number of leads to skip")
	rootCmd.AddCommand(getCmd)
}

// emitJSON writes v as indented JSON, the only output on stdout.
func emitJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
