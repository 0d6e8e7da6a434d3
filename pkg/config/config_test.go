package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, StorageBolt, cfg.Storage.Driver)
	assert.Equal(t, "data/cartera.db", cfg.Storage.BoltPath)
	assert.Equal(t, AIProviderGemini, cfg.AI.Provider)
	assert.Equal(t, "USD", cfg.Ledger.Currency)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.AI.Enabled(), "sin API key no se llama al servicio externo")
	require.NoError(t, cfg.Validate())
}

func TestFromViper_LeeOverrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "Memory")
	v.Set("AI_PROVIDER", "anthropic")
	v.Set("ANTHROPIC_API_KEY", "sk-test")
	v.Set("HTTP_PORT", "9090")
	v.Set("LEDGER_CURRENCY", "cop")

	cfg := fromViper(v)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "COP", cfg.Ledger.Currency)
	assert.True(t, cfg.AI.Enabled())
	assert.Equal(t, "sk-test", cfg.AI.APIKey())
}

func TestValidate_RechazaDriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "localstorage")
	assert.Error(t, fromViper(v).Validate())
}

func TestValidate_RedisSinURL(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "redis")
	assert.Error(t, fromViper(v).Validate())
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss:word", DBName: "cartera", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aword@db:5432/cartera?sslmode=disable", c.DSN())
	c.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", c.ConnectionString())
}
