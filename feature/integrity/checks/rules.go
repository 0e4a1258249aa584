package checks

import (
	"context"
	"errors"

	"altered-knowledge/core/rules"
	"altered-knowledge/core/storage"
)

// RulesReport is the outcome of loading the rule configuration.
type RulesReport struct {
	Object string `json:"object"`
	Status string `json:"status"` // "ok", "missing", "invalid"
	Format string `json:"format,omitempty"`
	Error  string `json:"error,omitempty"`
}

// CheckRules loads and validates the rule configuration object.
func CheckRules(ctx context.Context, client storage.Client, bucket, key string) (*RulesReport, error) {
	report := &RulesReport{Object: key}

	r, err := rules.Load(ctx, client, bucket, key)
	switch {
	case err == nil:
		report.Status = "ok"
		report.Format = r.Format
	case errors.Is(err, rules.ErrRuleConfigMissing):
		report.Status = "missing"
		report.Error = err.Error()
	case errors.Is(err, rules.ErrInvalidRules):
		report.Status = "invalid"
		report.Error = err.Error()
	default:
		return nil, err
	}
	return report, nil
}
