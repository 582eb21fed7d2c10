package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paiv/icfpc2012/internal/planner"
)

func TestDefaultHasPositiveCaps(t *testing.T) {
	d := Default()
	assert.Positive(t, d.PoolCap)
	assert.Positive(t, d.MemoCap)
	assert.Positive(t, d.Retries)
}

func TestHeuristicDefaultsWhenUnset(t *testing.T) {
	c := PlannerConfig{}
	assert.Equal(t, planner.HeuristicDefault, c.Heuristic())
}

func TestHeuristicRecognizesVariance(t *testing.T) {
	c := PlannerConfig{HeuristicName: "variance"}
	assert.Equal(t, planner.HeuristicVariance, c.Heuristic())
}

func TestBudgetFallsBackToDefault(t *testing.T) {
	os.Unsetenv(timeoutEnvVar)
	assert.Equal(t, defaultTimeout-timeoutSafety, Budget())
}

func TestBudgetHonorsEnvVar(t *testing.T) {
	os.Setenv(timeoutEnvVar, "10")
	defer os.Unsetenv(timeoutEnvVar)
	assert.Equal(t, 10*time.Second-timeoutSafety, Budget())
}

func TestBudgetIgnoresMalformedEnvVar(t *testing.T) {
	os.Setenv(timeoutEnvVar, "not-a-number")
	defer os.Unsetenv(timeoutEnvVar)
	assert.Equal(t, defaultTimeout-timeoutSafety, Budget())
}
