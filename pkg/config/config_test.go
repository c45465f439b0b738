package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newTestViper(values map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestDefaults(t *testing.T) {
	cfg := fromViper(newTestViper(nil))

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "data.db", cfg.Database.Path)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 8*time.Hour, cfg.JWT.Expiration)
	assert.True(t, cfg.JWT.UsesFallbackSecret())
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestOverrides(t *testing.T) {
	cfg := fromViper(newTestViper(map[string]interface{}{
		"DB_DRIVER":       "POSTGRES",
		"JWT_SECRET":      "s3cret",
		"JWT_EXPIRATION":  "30m",
		"ALLOWED_ORIGINS": "http://a.test, ,http://b.test",
		"CACHE_TTL":       "not-a-duration",
	}))

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.False(t, cfg.JWT.UsesFallbackSecret())
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestBlankSecretFallsBack(t *testing.T) {
	cfg := fromViper(newTestViper(map[string]interface{}{"JWT_SECRET": "   "}))
	assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
}
