package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xDegenDeveloper/ui-clone/services"
	"github.com/0xDegenDeveloper/ui-clone/types"
	"github.com/0xDegenDeveloper/ui-clone/utils"
)

func TestStartServicesBeforeServing(t *testing.T) {
	t.Cleanup(func() {
		services.GlobalVaultService.Close()
		services.GlobalVaultService = nil
		services.GlobalCallRateLimiter = nil
		utils.Config = nil
	})

	cfg := &types.Config{}
	cfg.ExecutionApi.Connection = utils.ConnectionRpc
	cfg.ExecutionApi.Endpoints = []types.EndpointConfig{{Name: "local", Url: "http://127.0.0.1:1"}}
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.Rate = 1
	cfg.RateLimit.Burst = 1
	utils.Config = cfg

	logger, _ := logtest.NewNullLogger()
	require.NoError(t, startServices(context.Background(), cfg, logger))
	require.NotNil(t, services.GlobalVaultService)
	require.NotNil(t, services.GlobalCallRateLimiter)

	// the limiter is in place for the very first request
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	require.NoError(t, services.GlobalCallRateLimiter.CheckCallLimit(req, 1))
	assert.ErrorIs(t, services.GlobalCallRateLimiter.CheckCallLimit(req, 1), services.ErrCallLimitExceeded)
}
