package pipeline

import (
	"sort"

	"github.com/sells-group/leads-cli/internal/model"
)

// shapeMatchers are the known execution payload layouts, tried in order.
// Every matcher runs against every payload and their candidates concatenate,
// since a payload can satisfy more than one shape.
var shapeMatchers = []func(any) []model.Lead{
	matchIndexedArray,
	matchRunData,
}

// Locate extracts lead candidates from a parsed execution payload and stamps
// each with its provenance, overwriting any same-named origin fields.
func Locate(payload any, executionID, startedAt string) []model.Lead {
	var leads []model.Lead
	for _, match := range shapeMatchers {
		leads = append(leads, match(payload)...)
	}
	for _, l := range leads {
		l["foundAt"] = startedAt
		l["executionId"] = executionID
	}
	return leads
}

// matchIndexedArray handles the engine's indexed array format: a top-level
// array, or an object whose data field is one. The array doubles as the
// deindexing table. An element that carries title, subreddit, and link is a
// lead; it is resolved against the full table before being kept.
func matchIndexedArray(payload any) []model.Lead {
	table, ok := payload.([]any)
	if !ok {
		obj, isObj := payload.(map[string]any)
		if !isObj {
			return nil
		}
		if table, ok = obj["data"].([]any); !ok {
			return nil
		}
	}

	var leads []model.Lead
	for _, elem := range table {
		m, isMap := elem.(map[string]any)
		if !isMap || !hasKeys(m, "title", "subreddit", "link") {
			continue
		}
		if resolved, isMap := Deref(m, table).(map[string]any); isMap {
			leads = append(leads, model.Lead(resolved))
		}
	}
	return leads
}

// matchRunData handles the run-data format: resultData.runData maps node
// names to run sequences whose data.main holds nested item lists. Items here
// are already materialized, so no deindexing applies. Node names are walked
// in sorted order to keep extraction deterministic.
func matchRunData(payload any) []model.Lead {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	result, ok := obj["resultData"].(map[string]any)
	if !ok {
		return nil
	}
	runData, ok := result["runData"].(map[string]any)
	if !ok {
		return nil
	}

	nodes := make([]string, 0, len(runData))
	for name := range runData {
		nodes = append(nodes, name)
	}
	sort.Strings(nodes)

	var leads []model.Lead
	for _, name := range nodes {
		runs, ok := runData[name].([]any)
		if !ok {
			continue
		}
		for _, run := range runs {
			runObj, ok := run.(map[string]any)
			if !ok {
				continue
			}
			data, ok := runObj["data"].(map[string]any)
			if !ok {
				continue
			}
			main, ok := data["main"].([]any)
			if !ok {
				continue
			}
			for _, itemList := range main {
				items, ok := itemList.([]any)
				if !ok {
					continue
				}
				for _, item := range items {
					itemObj, ok := item.(map[string]any)
					if !ok {
						continue
					}
					j, ok := itemObj["json"].(map[string]any)
					if !ok {
						continue
					}
					if hasKeys(j, "title", "link") {
						leads = append(leads, model.Lead(j))
					}
				}
			}
		}
	}
	return leads
}

func hasKeys(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}
