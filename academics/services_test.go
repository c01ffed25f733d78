package academics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/chrom13/schoolmanager-web/academics"
	"github.com/chrom13/schoolmanager-web/api"
	"github.com/chrom13/schoolmanager-web/internal/cache"
	"github.com/chrom13/schoolmanager-web/internal/resource"
	"github.com/chrom13/schoolmanager-web/notify"
)

type apiConfig struct{ url string }

func (c apiConfig) GetBaseURL() string               { return c.url }
func (c apiConfig) GetRequestTimeout() time.Duration { return 5 * time.Second }

func newDeps(t *testing.T, handler http.Handler) (resource.Deps, *notify.Recorder) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	recorder := &notify.Recorder{}
	return resource.Deps{
		Client:   api.NewClient(apiConfig{url: server.URL}, zerolog.Nop()),
		Cache:    cache.New(),
		Notifier: recorder,
	}, recorder
}

func TestLevels_ListServesCachedCopy(t *testing.T) {
	var hits int
	deps, _ := newDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"data":[{"id":1,"nombre":"primaria","activo":true}]}`))
	}))
	levels := academics.NewLevels(deps)

	first, err := levels.List(context.Background())
	require.NoError(t, err)
	second, err := levels.List(context.Background())
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, hits, "second read is served from the cache")
}

func TestLevels_CreateInvalidatesList(t *testing.T) {
	var listCalls int
	deps, recorder := newDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			listCalls++
			w.Write([]byte(`{"data":[{"id":1,"nombre":"primaria","activo":true}]}`))
		case r.Method == http.MethodPost:
			w.Write([]byte(`{"message":"ok","data":{"id":2,"nombre":"secundaria","activo":true}}`))
		}
	}))
	levels := academics.NewLevels(deps)

	_, err := levels.List(context.Background())
	require.NoError(t, err)

	created, err := levels.Create(context.Background(), academics.CreateLevel{Name: academics.Secundaria})
	require.NoError(t, err)
	require.Equal(t, academics.Secundaria, created.Name)
	require.Equal(t, []string{"Nivel creado exitosamente"}, recorder.Successes)

	_, err = levels.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, listCalls, "mutation drops the cached list")
}

func TestLevels_FailedCreateLeavesCacheAlone(t *testing.T) {
	var listCalls int
	deps, recorder := newDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			listCalls++
			w.Write([]byte(`{"data":[{"id":1,"nombre":"primaria","activo":true}]}`))
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"validation failed","errors":{"nombre":["required"]}}`))
		}
	}))
	levels := academics.NewLevels(deps)

	_, err := levels.List(context.Background())
	require.NoError(t, err)

	_, err = levels.Create(context.Background(), academics.CreateLevel{})
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	require.Equal(t, []string{"required"}, apiErr.Fields["nombre"])
	require.Equal(t, []string{"validation failed"}, recorder.Errors, "server message wins over the fallback")

	_, err = levels.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, listCalls, "failed mutation keeps the cached list")
}

func TestLevels_FailedDeleteUsesFallbackOnNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from now on

	recorder := &notify.Recorder{}
	levels := academics.NewLevels(resource.Deps{
		Client:   api.NewClient(apiConfig{url: server.URL}, zerolog.Nop()),
		Cache:    cache.New(),
		Notifier: recorder,
	})

	err := levels.Delete(context.Background(), 1)
	require.Error(t, err)
	require.True(t, api.IsNetwork(err))
	require.Equal(t, []string{"Error al eliminar nivel"}, recorder.Errors)
}

func TestGrades_ListByLevelCachesPerLevel(t *testing.T) {
	var queries []string
	deps, _ := newDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("nivel_id"))
		w.Write([]byte(`{"data":[{"id":10,"nivel_id":1,"nombre":"1ro","orden":1,"activo":true}]}`))
	}))
	grades := academics.NewGrades(deps)

	_, err := grades.ListByLevel(context.Background(), 1)
	require.NoError(t, err)
	_, err = grades.ListByLevel(context.Background(), 2)
	require.NoError(t, err)
	_, err = grades.ListByLevel(context.Background(), 1)
	require.NoError(t, err)

	require.Equal(t, []string{"1", "2"}, queries, "each level is fetched once, then cached")
}

func TestGroups_UpdateInvalidatesEveryVariant(t *testing.T) {
	var gets int
	deps, _ := newDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			gets++
			w.Write([]byte(`{"data":[{"id":5,"grado_id":2,"nombre":"A","capacidad_maxima":30,"activo":true}]}`))
		case http.MethodPut:
			w.Write([]byte(`{"message":"ok","data":{"id":5,"grado_id":2,"nombre":"B","capacidad_maxima":30,"activo":true}}`))
		}
	}))
	groups := academics.NewGroups(deps)

	_, err := groups.List(context.Background())
	require.NoError(t, err)
	_, err = groups.ListByGrade(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 2, gets)

	name := "B"
	_, err = groups.Update(context.Background(), 5, academics.UpdateGroup{Name: &name})
	require.NoError(t, err)

	_, err = groups.List(context.Background())
	require.NoError(t, err)
	_, err = groups.ListByGrade(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 4, gets, "both the plain list and the per-grade variant were dropped")
}
