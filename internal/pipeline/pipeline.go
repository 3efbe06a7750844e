// Package pipeline turns stored workflow executions into a paginated,
// deduplicated set of normalized lead records.
package pipeline

import (
	"context"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leads-cli/internal/model"
	"github.com/sells-group/leads-cli/internal/store"
)

// DefaultScanLimit caps how many recent executions are scanned. Leads from
// older executions are never considered, even when unique.
const DefaultScanLimit = 200

// Pipeline extracts leads from one workflow's execution history.
type Pipeline struct {
	store      store.Store
	workflowID string
	scanLimit  int
}

// New builds a Pipeline over st for the given workflow.
func New(st store.Store, workflowID string, scanLimit int) *Pipeline {
	if scanLimit <= 0 {
		scanLimit = DefaultScanLimit
	}
	return &Pipeline{store: st, workflowID: workflowID, scanLimit: scanLimit}
}

// GetLeads runs the full extraction: scan recent successful executions,
// decode and locate leads in each, dedupe by link, sort newest first,
// paginate, and normalize. A failed store query is the only error; a row
// that cannot be decoded simply contributes nothing.
func (p *Pipeline) GetLeads(ctx context.Context, limit, offset int) (model.Envelope, error) {
	execs, err := p.store.ListExecutions(ctx, p.workflowID, p.scanLimit)
	if err != nil {
		return model.Envelope{}, eris.Wrap(err, "pipeline: list executions")
	}

	var all []model.Lead
	for _, exec := range execs {
		payload, err := DecodePayload(exec.Data)
		if err != nil {
			zap.L().Debug("skipping undecodable execution",
				zap.String("execution", exec.ID),
				zap.Error(err),
			)
			continue
		}
		all = append(all, Locate(payload, exec.ID, exec.StartedAt)...)
	}

	// Dedupe before sorting: first-seen is scan order (newest execution
	// first), which decides which duplicate survives on timestamp ties.
	// Leads without a link never reach the output.
	seen := make(map[string]struct{}, len(all))
	unique := make([]model.Lead, 0, len(all))
	for _, l := range all {
		link := l.Str("link")
		if link == "" {
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		unique = append(unique, l)
	}

	// Newest first. Timestamps are ISO-8601 text, so string comparison is
	// time order; a missing foundAt compares as "" and lands last.
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Str("foundAt") > unique[j].Str("foundAt")
	})

	total := len(unique)
	page := paginate(unique, limit, offset)

	leads := make([]model.NormalizedLead, 0, len(page))
	for _, l := range page {
		leads = append(leads, Normalize(l))
	}

	return model.Envelope{Leads: leads, Total: total, Limit: limit, Offset: offset}, nil
}

// paginate slices [offset, offset+limit) with out-of-range offsets yielding
// an empty page rather than an error.
func paginate(leads []model.Lead, limit, offset int) []model.Lead {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(leads) {
		return nil
	}
	end := offset + limit
	if end > len(leads) {
		end = len(leads)
	}
	return leads[offset:end]
}
