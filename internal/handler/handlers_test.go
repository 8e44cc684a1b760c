package handler

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-rest-demo/internal/config"
	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/internal/service"
	"github.com/MKhiriev/go-rest-demo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_WithHTTPAddress(t *testing.T) {
	log := logger.Nop()

	handlers, err := NewHandlers(&service.Services{}, store.NewStorages(log), config.Server{HTTPAddress: "127.0.0.1:3000"}, log)

	require.NoError(t, err)
	require.NotNil(t, handlers)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	log := logger.Nop()

	handlers, err := NewHandlers(&service.Services{}, store.NewStorages(log), config.Server{}, log)

	assert.Nil(t, handlers)
	assert.True(t, errors.Is(err, errNoHandlersAreCreated))
}
