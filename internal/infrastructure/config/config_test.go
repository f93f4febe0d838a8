package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "summitmind-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, int64(64<<10), cfg.HTTP.WebhookBodySize)
	assert.Equal(t, 10*time.Second, cfg.Stripe.APITimeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ContentTTL)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
}

func TestValidate_PoolSettings(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Database.MaxIdleConns = cfg.Database.MaxOpenConns + 1

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_idle_conns")
}

func TestValidate_Production(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.App.Env = "production"
		cfg.JWT.Secret = strings.Repeat("s", 32)
		cfg.Database.Password = "secret"
		cfg.Database.SSLMode = "require"
		cfg.Stripe.SecretKey = "sk_live_123"
		cfg.Stripe.WebhookSecret = "whsec_123"
		return cfg
	}

	t.Run("valid production config", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("short jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Secret = "short"
		assert.Error(t, cfg.validate())
	})

	t.Run("missing webhook secret", func(t *testing.T) {
		cfg := base()
		cfg.Stripe.WebhookSecret = ""
		assert.Error(t, cfg.validate())
	})

	t.Run("test mode", func(t *testing.T) {
		cfg := base()
		cfg.Stripe.IsTestMode = true
		assert.Error(t, cfg.validate())
	})

	t.Run("wildcard cors", func(t *testing.T) {
		cfg := base()
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		assert.Error(t, cfg.validate())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "summit",
		Password: "p@ss/word",
		DBName:   "summitmind",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// special characters in the password are escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
