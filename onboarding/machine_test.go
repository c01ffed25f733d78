package onboarding_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/chrom13/schoolmanager-web/api"
	"github.com/chrom13/schoolmanager-web/notify"
	"github.com/chrom13/schoolmanager-web/onboarding"
)

type machineConfig struct{ url string }

func (c machineConfig) GetBaseURL() string               { return c.url }
func (c machineConfig) GetRequestTimeout() time.Duration { return 5 * time.Second }

func newMachine(t *testing.T, handler http.Handler) (*onboarding.Machine, *notify.Recorder) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.NewClient(machineConfig{url: server.URL}, zerolog.Nop())
	recorder := &notify.Recorder{}
	machine, err := onboarding.NewMachine(client, recorder, zerolog.Nop())
	require.NoError(t, err)
	return machine, recorder
}

func TestMachine_Status(t *testing.T) {
	machine, _ := newMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/onboarding/status", r.URL.Path)
		w.Write([]byte(`{"data":{"completado":false,"paso_actual":"estructura","es_registro_express":true}}`))
	}))

	status, err := machine.Status(context.Background())
	require.NoError(t, err)
	require.False(t, status.Completed)
	require.Equal(t, onboarding.StepStructure, status.CurrentStep)
	require.True(t, status.ExpressSignup)
	require.False(t, status.Finished())
}

func TestMachine_StartIsLocal(t *testing.T) {
	machine, _ := newMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("welcome transition must not hit the server")
	}))

	require.Equal(t, "/onboarding/paso-1", machine.Start())
}

func TestMachine_CompleteSchoolData(t *testing.T) {
	valid := onboarding.SchoolData{
		CCT:          "09DPR1234X",
		EmailEscuela: "contacto@escuela.mx",
	}

	t.Run("advances on success", func(t *testing.T) {
		machine, recorder := newMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/onboarding/complete-school-data", r.URL.Path)
			w.Write([]byte(`{"data":{"completado":false,"paso_actual":"estructura"}}`))
		}))

		next, err := machine.CompleteSchoolData(context.Background(), valid)
		require.NoError(t, err)
		require.Equal(t, "/onboarding/paso-2", next)
		require.Len(t, recorder.Successes, 1)
	})

	t.Run("local validation keeps the step", func(t *testing.T) {
		machine, _ := newMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("invalid input must not reach the server")
		}))

		next, err := machine.CompleteSchoolData(context.Background(), onboarding.SchoolData{EmailEscuela: "not-an-email"})
		require.Equal(t, "/onboarding/paso-1", next)

		apiErr, ok := api.AsError(err)
		require.True(t, ok)
		require.Contains(t, apiErr.Fields, "cct")
		require.Contains(t, apiErr.Fields, "email_escuela")
	})

	t.Run("server rejection keeps the step", func(t *testing.T) {
		machine, recorder := newMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"validation failed","errors":{"cct":["already registered"]}}`))
		}))

		next, err := machine.CompleteSchoolData(context.Background(), valid)
		require.Error(t, err)
		require.Equal(t, "/onboarding/paso-1", next)
		require.Empty(t, recorder.Successes)
	})
}

func TestMachine_CompleteStructure(t *testing.T) {
	t.Run("advances to the completed screen", func(t *testing.T) {
		machine, _ := newMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/onboarding/complete-structure", r.URL.Path)
			w.Write([]byte(`{"message":"ok"}`))
		}))

		next, err := machine.CompleteStructure(context.Background())
		require.NoError(t, err)
		require.Equal(t, "/onboarding/completado", next)
	})

	t.Run("failure keeps the step", func(t *testing.T) {
		machine, _ := newMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		next, err := machine.CompleteStructure(context.Background())
		require.Error(t, err)
		require.Equal(t, "/onboarding/paso-2", next)
	})
}

func TestMachine_FinishIsBestEffort(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		machine, recorder := newMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/onboarding/complete", r.URL.Path)
			w.Write([]byte(`{"message":"ok"}`))
		}))

		require.Equal(t, "/", machine.Finish(context.Background()))
		require.Len(t, recorder.Successes, 1)
	})

	t.Run("server failure still reaches the dashboard", func(t *testing.T) {
		machine, recorder := newMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		require.Equal(t, "/", machine.Finish(context.Background()))
		require.Len(t, recorder.Errors, 1)
	})
}

func TestMachine_Skip(t *testing.T) {
	var calls int
	machine, recorder := newMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/onboarding/skip", r.URL.Path)
		calls++
		w.Write([]byte(`{"message":"ok"}`))
	}))

	// Skipping twice is absorbing: same outcome, no client-side error.
	for i := 0; i < 2; i++ {
		next, err := machine.Skip(context.Background())
		require.NoError(t, err)
		require.Equal(t, "/", next)
	}
	require.Equal(t, 2, calls)
	require.Len(t, recorder.Successes, 2)
}
