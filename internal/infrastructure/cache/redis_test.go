package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisFromURL(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	rdb, err := NewRedisFromURL(context.Background(), "redis://"+s.Addr()+"/0")
	require.NoError(t, err)
	defer Close(rdb)
	assert.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())
	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedisFromURL_Errors(t *testing.T) {
	_, err := NewRedisFromURL(context.Background(), "http://not-redis")
	assert.Error(t, err)

	s, err := miniredis.Run()
	require.NoError(t, err)
	addr := s.Addr()
	s.Close()
	_, err = NewRedisFromURL(context.Background(), "redis://"+addr)
	assert.Error(t, err)
}
