package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/infrastructure/memory"
	"github.com/jhoicas/Despensa-api/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	store, closeFn, err := Open(context.Background(), config.DBConfig{Driver: "memory"})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &memory.Store{}, store)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, _, err := Open(context.Background(), config.DBConfig{Driver: "sqlite"})
	assert.Error(t, err)
}
