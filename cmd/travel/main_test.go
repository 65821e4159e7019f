package main

import (
	"testing"
	"time"
	"travel/cfg"
	"travel/pkg/logger"
	"travel/pkg/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOracle_RemoteTimeoutCoversRetries(t *testing.T) {
	config := &cfg.Config{
		PricingConfig: cfg.PricingConfig{
			BaseURL:    "http://pricing.local",
			Timeout:    200 * time.Millisecond,
			MaxRetries: 2,
		},
	}

	oracle, timeout, err := buildOracle(config, logger.NewNop())
	require.NoError(t, err)

	assert.IsType(t, &pricing.HTTPOracle{}, oracle)
	assert.Equal(t, pricing.CallBudget(200*time.Millisecond, 2), timeout)
	assert.Greater(t, timeout, 3*200*time.Millisecond)
}

func TestBuildOracle_HeuristicKeepsTimeout(t *testing.T) {
	config := &cfg.Config{
		PricingConfig: cfg.PricingConfig{
			Timeout:    200 * time.Millisecond,
			MaxRetries: 2,
		},
	}

	oracle, timeout, err := buildOracle(config, logger.NewNop())
	require.NoError(t, err)

	assert.IsType(t, &pricing.HeuristicOracle{}, oracle)
	assert.Equal(t, 200*time.Millisecond, timeout)
}
