package checks

import (
	"context"
	"encoding/json"
	"fmt"

	"altered-knowledge/core/reconcile"
	"altered-knowledge/core/storage"
)

// Allowed range for a collection row's count.
const (
	CountMin = 0
	CountMax = 99
)

// Severity grades a collection file problem.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// FileProblem is one finding in a collection file. Row is -1 when the whole
// file is affected.
type FileProblem struct {
	Key      string   `json:"key"`
	Row      int      `json:"row"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// CollectionReport summarizes the collection file check.
type CollectionReport struct {
	Prefix   string        `json:"prefix"`
	Files    int           `json:"files"`
	Rows     int           `json:"rows"`
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Problems []FileProblem `json:"problems"`
}

func (r *CollectionReport) add(p FileProblem) {
	if p.Severity == SeverityError {
		r.Errors++
	} else {
		r.Warnings++
	}
	r.Problems = append(r.Problems, p)
}

// CheckCollection reads every collection file under prefix and checks each row
// for the canonical card_id and count fields.
func CheckCollection(ctx context.Context, client storage.Client, bucket, prefix string, concurrency int) (*CollectionReport, error) {
	keys, err := storage.ListKeys(ctx, client, bucket, prefix, ".json")
	if err != nil {
		return nil, err
	}

	fetched, err := storage.FetchAll(ctx, client, bucket, keys, concurrency)
	if err != nil {
		return nil, err
	}

	report := &CollectionReport{Prefix: prefix, Files: len(keys), Problems: []FileProblem{}}
	for _, key := range keys {
		if ferr, ok := fetched.Failed[key]; ok {
			report.add(FileProblem{Key: key, Row: -1, Severity: SeverityError, Message: ferr.Error()})
		}
	}

	for _, obj := range fetched.Objects {
		shard, err := reconcile.ParseShard(obj.Key, obj.Data)
		if err != nil {
			report.add(FileProblem{Key: obj.Key, Row: -1, Severity: SeverityError, Message: err.Error()})
			continue
		}
		for row, rec := range shard.Records {
			report.Rows++
			for _, p := range checkRow(rec) {
				p.Key = obj.Key
				p.Row = row
				report.add(p)
			}
		}
	}
	return report, nil
}

func checkRow(rec map[string]any) []FileProblem {
	var problems []FileProblem

	if id, ok := rec["card_id"].(string); !ok || id == "" {
		problems = append(problems, FileProblem{Severity: SeverityError, Message: "missing card_id"})
	}

	raw, ok := rec["count"]
	if !ok {
		return append(problems, FileProblem{Severity: SeverityError, Message: "missing count"})
	}
	num, ok := raw.(json.Number)
	if !ok {
		return append(problems, FileProblem{Severity: SeverityError, Message: fmt.Sprintf("count is not an integer: %v", raw)})
	}
	count, err := num.Int64()
	if err != nil {
		return append(problems, FileProblem{Severity: SeverityError, Message: fmt.Sprintf("count is not an integer: %s", num)})
	}
	if count < CountMin || count > CountMax {
		problems = append(problems, FileProblem{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("count %d outside [%d, %d]", count, CountMin, CountMax),
		})
	}
	return problems
}
