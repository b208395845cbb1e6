package common_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Salam-35/PhdTrack-sub000/internal/common"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := common.LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, 12000, cfg.Extract.ChunkBudget)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GRPC_ADDR", ":9999")
	t.Setenv("EXTRACT_CHUNK_BUDGET", "4000")
	t.Setenv("OPENAI_TIMEOUT", "10s")

	cfg := common.LoadConfig()

	assert.Equal(t, ":9999", cfg.Server.GRPCAddr)
	assert.Equal(t, 4000, cfg.Extract.ChunkBudget)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
}

func TestValidateRequiresDBAndKey(t *testing.T) {
	cfg := common.LoadConfig()
	cfg.Database.DSN = ""
	cfg.LLM.APIKey = "sk-test"
	assert.Error(t, cfg.Validate())

	cfg.Database.DSN = "postgres://localhost/phdtrack"
	cfg.LLM.APIKey = ""
	assert.Error(t, cfg.Validate())

	cfg.LLM.APIKey = "sk-test"
	require.NoError(t, cfg.Validate())
}
