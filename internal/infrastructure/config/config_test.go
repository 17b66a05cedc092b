package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := Load()
		require.NoError(t, err)
		assert.Equal(t, StorageDynamoDB, c.StorageDriver)
		assert.Equal(t, LockerMemory, c.LockDriver)
		assert.Equal(t, 7*24*time.Hour, c.QuoteValidity())
		assert.Equal(t, "quotes", c.AWS.QuotesTable)
		assert.Equal(t, "America/New_York", c.Location().String())
		assert.False(t, c.IsProduction())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "MEMORY")
		t.Setenv("QUOTE_VALIDITY_DAYS", "3")
		t.Setenv("BUSINESS_TIME_ZONE", "UTC")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("APP_ENV", "production")

		c, err := Load()
		require.NoError(t, err)
		assert.Equal(t, StorageMemory, c.StorageDriver)
		assert.Equal(t, 3*24*time.Hour, c.QuoteValidity())
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.HTTP.AllowedOrigins)
		assert.True(t, c.IsProduction())
		assert.Equal(t, time.UTC, c.Clock()().Location())
	})

	t.Run("rejects unknown storage driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects bad time zone", func(t *testing.T) {
		t.Setenv("BUSINESS_TIME_ZONE", "Mars/Olympus")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects non-positive validity", func(t *testing.T) {
		t.Setenv("QUOTE_VALIDITY_DAYS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
