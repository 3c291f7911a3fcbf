package app

import (
	"testing"

	"speed-hrm/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestCORSConfig(t *testing.T) {
	t.Run("explicit origins", func(t *testing.T) {
		c := corsConfig(config.Config{CORSOrigins: []string{"https://hr.example.com"}})

		assert.Equal(t, []string{"https://hr.example.com"}, c.AllowOrigins)
		assert.True(t, c.AllowCredentials)
		assert.Contains(t, c.AllowHeaders, "Authorization")
		assert.Contains(t, c.ExposeHeaders, "X-Request-ID")
	})

	t.Run("development allows any origin", func(t *testing.T) {
		c := corsConfig(config.Config{AppEnv: "development"})

		assert.True(t, c.AllowOriginFunc("http://localhost:5173"))
	})

	t.Run("production without origins rejects", func(t *testing.T) {
		c := corsConfig(config.Config{AppEnv: "production"})

		assert.False(t, c.AllowOriginFunc("https://evil.example.com"))
	})
}
