package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisManager_Create(t *testing.T) {
	client, m := redismock.NewClientMock()
	m.Regexp().ExpectSet(`session:.+`, int64(7), time.Hour).SetVal("OK")

	mgr := NewRedisManager(client, time.Hour)

	token, err := mgr.Create(context.Background(), 7)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestRedisManager_Resolve(t *testing.T) {
	client, m := redismock.NewClientMock()
	m.ExpectGet("session:tok-1").SetVal("7")
	m.ExpectExpire("session:tok-1", time.Hour).SetVal(true)

	mgr := NewRedisManager(client, time.Hour)

	userID, err := mgr.Resolve(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestRedisManager_Resolve_Missing(t *testing.T) {
	client, m := redismock.NewClientMock()
	m.ExpectGet("session:ghost").RedisNil()

	mgr := NewRedisManager(client, time.Hour)

	_, err := mgr.Resolve(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisManager_Resolve_BackendError(t *testing.T) {
	client, m := redismock.NewClientMock()
	m.ExpectGet("session:tok-1").SetErr(errors.New("connection refused"))

	mgr := NewRedisManager(client, time.Hour)

	_, err := mgr.Resolve(context.Background(), "tok-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRedisManager_Destroy(t *testing.T) {
	client, m := redismock.NewClientMock()
	m.ExpectDel("session:tok-1").SetVal(1)

	mgr := NewRedisManager(client, time.Hour)

	err := mgr.Destroy(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.NoError(t, m.ExpectationsWereMet())
}
