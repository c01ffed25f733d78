package students_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/chrom13/schoolmanager-web/api"
	"github.com/chrom13/schoolmanager-web/internal/cache"
	"github.com/chrom13/schoolmanager-web/internal/resource"
	"github.com/chrom13/schoolmanager-web/notify"
	"github.com/chrom13/schoolmanager-web/students"
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

func TestStudents_SearchCachesPerQuery(t *testing.T) {
	var calls []string
	deps, _ := newDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/alumnos/search", r.URL.Path)
		calls = append(calls, r.URL.Query().Get("q"))
		w.Write([]byte(`{"data":[{"id":1,"nombre":"Luis","apellido_paterno":"Reyes","activo":true}]}`))
	}))
	svc := students.NewStudents(deps)

	_, err := svc.Search(context.Background(), "rey")
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), "rey")
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), "lu")
	require.NoError(t, err)

	require.Equal(t, []string{"rey", "lu"}, calls)
}

func TestGuardians_LinkInvalidatesBothSides(t *testing.T) {
	var studentLists, guardianLists int
	deps, recorder := newDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/alumnos":
			studentLists++
			w.Write([]byte(`{"data":[]}`))
		case r.Method == http.MethodGet && r.URL.Path == "/padres":
			guardianLists++
			w.Write([]byte(`{"data":[]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/padres/3/alumnos/9":
			var pivot students.LinkData
			require.NoError(t, json.NewDecoder(r.Body).Decode(&pivot))
			require.Equal(t, students.RelMadre, pivot.Relationship)
			require.True(t, pivot.ResponsablePagos)
			w.Write([]byte(`{"message":"ok"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	guardians := students.NewGuardians(deps)
	studentSvc := students.NewStudents(deps)

	_, err := studentSvc.List(context.Background())
	require.NoError(t, err)
	_, err = guardians.List(context.Background())
	require.NoError(t, err)

	err = guardians.Link(context.Background(), 3, 9, students.LinkData{
		Relationship:     students.RelMadre,
		ResponsablePagos: true,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Padre vinculado exitosamente"}, recorder.Successes)

	_, err = studentSvc.List(context.Background())
	require.NoError(t, err)
	_, err = guardians.List(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, studentLists, "linking drops the student cache too")
	require.Equal(t, 2, guardianLists)
}

func TestGuardians_LinkValidatesPivotLocally(t *testing.T) {
	deps, recorder := newDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("an invalid pivot must not reach the server")
	}))
	guardians := students.NewGuardians(deps)

	err := guardians.Link(context.Background(), 3, 9, students.LinkData{Relationship: "vecino"})
	require.Error(t, err)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	require.Contains(t, apiErr.Fields, "parentesco")
	require.Empty(t, recorder.Successes)
}

func TestGuardians_Unlink(t *testing.T) {
	var unlinked bool
	deps, recorder := newDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/padres/3/alumnos/9", r.URL.Path)
		unlinked = true
		w.WriteHeader(http.StatusNoContent)
	}))
	guardians := students.NewGuardians(deps)

	require.NoError(t, guardians.Unlink(context.Background(), 3, 9))
	require.True(t, unlinked)
	require.Equal(t, []string{"Padre desvinculado exitosamente"}, recorder.Successes)
}

func TestGuardians_StudentsOfIsUncached(t *testing.T) {
	var calls int
	deps, _ := newDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/padres/3/alumnos", r.URL.Path)
		calls++
		w.Write([]byte(`{"data":[{"id":9,"nombre":"Luis","apellido_paterno":"Reyes","activo":true}]}`))
	}))
	guardians := students.NewGuardians(deps)

	for i := 0; i < 2; i++ {
		got, err := guardians.StudentsOf(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, got, 1)
	}
	require.Equal(t, 2, calls)
}
