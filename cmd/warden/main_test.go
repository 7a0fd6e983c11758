package main

import (
	"testing"

	"warden/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestInjectRepo(t *testing.T) {
	tests := []struct {
		name    string
		store   *config.StoreConfig
		wantErr bool
	}{
		{name: "default postgres"},
		{name: "explicit postgres", store: &config.StoreConfig{Driver: "Postgres"}},
		{name: "memory", store: &config.StoreConfig{Driver: "memory"}},
		{name: "unknown", store: &config.StoreConfig{Driver: "redis"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := injectRepo(&config.Config{Store: tt.store})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "redis")

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, opt)
		})
	}
}

func TestDependencyGraph_MemoryStore(t *testing.T) {
	cfg := &config.Config{Store: &config.StoreConfig{Driver: config.StoreDriverMemory}}
	cfg.SecretKey.Access = "graph-test-secret"
	cfg.HTTP.Port = 0

	repo, err := injectRepo(cfg)
	require.NoError(t, err)

	err = fx.ValidateApp(
		fx.Supply(cfg),
		injectInfra(),
		repo,
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(startServer),
	)

	require.NoError(t, err)
}
