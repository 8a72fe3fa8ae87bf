package cache

import (
	"context"
	"testing"
	"time"

	"tablemate-backend/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpersConClientNil(t *testing.T) {
	client = nil

	ctx := context.Background()

	var dest map[string]any
	found, err := GetJSON(ctx, "alguna:key", &dest)
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "alguna:key", map[string]int{"a": 1}, 30))
	assert.NoError(t, DelPrefix(ctx, "alguna:"))
}

func TestTryInitRedisSinServidorDejaCacheDeshabilitado(t *testing.T) {
	client = nil

	// no hay redis escuchando: TryInitRedis no aborta, solo deja client nil
	TryInitRedis(&config.Config{RedisAddr: "127.0.0.1:1"})
	assert.Nil(t, client)
}

func TestSetJSONIgnoraTTLNoPositivo(t *testing.T) {
	// address inalcanzable: si SetJSON tocara redis fallaría la conexión,
	// por eso el nil prueba que con TTL <= 0 no se guarda nada
	client = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer func() { client = nil }()

	ctx := context.Background()

	assert.NoError(t, SetJSON(ctx, "nearby:0.0000:0.0000:3.0", []string{"r1"}, 0))
	assert.NoError(t, SetJSON(ctx, "nearby:0.0000:0.0000:3.0", []string{"r1"}, -5))

	// con TTL positivo sí intenta escribir y la conexión falla
	require.Error(t, SetJSON(ctx, "nearby:0.0000:0.0000:3.0", []string{"r1"}, 30))
}
