package helpers

import (
	"context"
	"testing"

	"github.com/xiaot623/chatshare/policy"
)

// TemperatureRangePolicy denies temperatures outside [0, 2].
const TemperatureRangePolicy = `
package settings_policy

deny[msg] {
	input.temperature < 0
	msg := "temperature must be between 0 and 2"
}

deny[msg] {
	input.temperature > 2
	msg := "temperature must be between 0 and 2"
}
`

// NewTestPolicyEngine compiles content or fails the test.
func NewTestPolicyEngine(t *testing.T, content string) *policy.Engine {
	t.Helper()

	engine, err := policy.NewEngine(context.Background(), content)
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}

	return engine
}
