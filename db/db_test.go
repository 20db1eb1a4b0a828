package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSNFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "")
	assert.Empty(t, DSNFromEnv())

	t.Setenv("DB_HOST", "pg.local")
	t.Setenv("DB_USER", "laf")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "tracker")
	t.Setenv("DB_PORT", "")
	assert.Equal(t,
		"host=pg.local user=laf password=secret dbname=tracker port=5432 sslmode=disable",
		DSNFromEnv())
}
