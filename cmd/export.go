package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/leads-cli/internal/model"
	"github.com/sells-group/leads-cli/internal/pipeline"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export leads to a spreadsheet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		out, _ := cmd.Flags().GetString("out")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		p := pipeline.New(st, cfg.Workflow.ID, cfg.Workflow.ScanLimit)
		env, err := p.GetLeads(ctx, limit, offset)
		if err != nil {
			return eris.Wrap(err, "export")
		}

		if err := writeLeadsXLSX(out, env.Leads); err != nil {
			return err
		}

		zap.L().Info("exported leads",
			zap.String("file", out),
			zap.Int("count", len(env.Leads)),
			zap.Int("total", env.Total),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "leads.xlsx", "output spreadsheet path")
	exportCmd.Flags().Int("limit", 50, "max number of leads to export")
	exportCmd.Flags().Int("offset", 0, "number of leads to skip")
	rootCmd.AddCommand(exportCmd)
}

var exportHeader = []string{
	"ID", "Title", "Subreddit", "Author", "Link", "Content",
	"Priority", "Score", "Keywords", "Location", "Found At", "Published",
}

// writeLeadsXLSX writes one sheet with a header row and one row per lead.
func writeLeadsXLSX(path string, leads []model.NormalizedLead) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range exportHeader {
		header.AddCell().SetString(h)
	}

	for _, l := range leads {
		row := sheet.AddRow()
		row.AddCell().SetString(l.ID)
		row.AddCell().SetString(l.Title)
		row.AddCell().SetString(l.Subreddit)
		row.AddCell().SetString(l.Author)
		row.AddCell().SetString(l.Link)
		row.AddCell().SetString(l.Content)
		row.AddCell().SetString(l.Priority)
		row.AddCell().SetFloat(l.Score)
		row.AddCell().SetString(l.Keywords)
		row.AddCell().SetString(l.Location)
		row.AddCell().SetString(l.FoundAt)
		row.AddCell().SetString(l.PubDate)
	}

	return eris.Wrapf(f.Save(path), "export: save %s", path)
}
