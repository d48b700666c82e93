package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRedisClient_Disabled(t *testing.T) {
	client, err := NewRedisClient("", zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	client, err := NewRedisClient("http://not-redis", zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, client)
}
