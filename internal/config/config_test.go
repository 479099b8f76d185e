package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "5010", cfg.Server.Port)
	require.Equal(t, BackendMemory, cfg.Store.Backend)
	require.Equal(t, "documents", cfg.MongoDB.Collection)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.Equal(t, "document:", cfg.Redis.Prefix)
	require.False(t, cfg.RateLimit.Enabled)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, BackendRedis, cfg.Store.Backend)
	require.Equal(t, "cache:6380", cfg.Redis.Addr())
	require.Equal(t, 2, cfg.Redis.DB)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 2.5, cfg.RateLimit.RPS)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_BACKEND=mongo\nMONGODB_URI=mongodb://localhost:27017\nMONGODB_DATABASE=docstore_test\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("STORE_BACKEND")
		os.Unsetenv("MONGODB_URI")
		os.Unsetenv("MONGODB_DATABASE")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, BackendMongo, cfg.Store.Backend)
	require.Equal(t, "docstore_test", cfg.MongoDB.Database)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "5010"},
			Store:  StoreConfig{Backend: BackendMemory},
		}
	}
	require.NoError(t, valid().Validate())

	c := valid()
	c.Store.Backend = "sqlite"
	require.Error(t, c.Validate())

	c = valid()
	c.Server.Port = "not-a-port"
	require.Error(t, c.Validate())

	c = valid()
	c.Store.Backend = BackendMongo
	require.Error(t, c.Validate(), "mongo backend needs a URI")
	c.MongoDB = MongoDBConfig{URI: "mongodb://db", Database: "d", Collection: "c"}
	require.NoError(t, c.Validate())

	c = valid()
	c.Store.Backend = BackendRedis
	require.Error(t, c.Validate(), "redis backend needs a host")
	c.Redis = RedisConfig{Host: "cache", Port: "6379"}
	require.NoError(t, c.Validate())

	c = valid()
	c.RateLimit = RateLimitConfig{Enabled: true}
	require.Error(t, c.Validate())
}
