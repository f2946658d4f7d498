package policy

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/open-policy-agent/opa/rego"

	"github.com/xiaot623/chatshare/internal/domain"
)

// Engine is the OPA policy engine for chat settings.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
// The policy must define the partial set data.settings_policy.deny.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.settings_policy.deny"),
		rego.Module("settings_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate runs the policy against input and returns the deny reasons, sorted.
// An empty result means the input is allowed.
func (e *Engine) Evaluate(ctx context.Context, input interface{}) ([]string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return nil, nil
	}

	values, ok := results[0].Expressions[0].Value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected policy result type %T", results[0].Expressions[0].Value)
	}

	reasons := make([]string, 0, len(values))
	for _, v := range values {
		reasons = append(reasons, fmt.Sprint(v))
	}
	sort.Strings(reasons)
	return reasons, nil
}

// EvaluateSettings checks chat settings. A denial is returned as
// *domain.SettingsRejectedError.
func (e *Engine) EvaluateSettings(ctx context.Context, settings domain.Settings) error {
	reasons, err := e.Evaluate(ctx, map[string]interface{}{
		"title":         settings.Title,
		"system_prompt": settings.SystemPrompt,
		"model":         settings.Model,
		// json.Number keeps the decimal exact inside rego.
		"temperature": json.Number(settings.Temperature.String()),
	})
	if err != nil {
		return err
	}
	if len(reasons) > 0 {
		return &domain.SettingsRejectedError{Reason: strings.Join(reasons, "; ")}
	}
	return nil
}

// DefaultPolicy is the default policy content. It defines no deny rules, so
// every setting is allowed until an operator supplies a policy file.
const DefaultPolicy = `
package settings_policy
`
