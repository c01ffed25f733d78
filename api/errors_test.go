package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/chrom13/schoolmanager-web/api"
)

func TestErrorClassification(t *testing.T) {
	t.Run("survives wrapping", func(t *testing.T) {
		base := &api.Error{Status: 404, Message: "Nivel no encontrado"}
		wrapped := errors.Wrap(base, "[Get] fetching niveles 9")

		apiErr, ok := api.AsError(wrapped)
		require.True(t, ok)
		require.Equal(t, 404, apiErr.Status)
		require.True(t, api.IsNotFound(wrapped))
		require.False(t, api.IsAuthFailure(wrapped))
		require.False(t, api.IsNetwork(wrapped))
	})

	t.Run("plain errors are not api errors", func(t *testing.T) {
		err := errors.New("something else")
		_, ok := api.AsError(err)
		require.False(t, ok)
		require.False(t, api.IsNotFound(err))
		require.False(t, api.IsValidation(err))
	})
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Alumno no encontrado"}`))
	}))
	defer server.Close()

	client := newClient(t, server)
	err := client.Get(context.Background(), "/alumnos/99", nil, nil)
	require.True(t, api.IsNotFound(err))

	apiErr, _ := api.AsError(err)
	require.Equal(t, "Alumno no encontrado", apiErr.Message)
}
