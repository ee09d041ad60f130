package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMissingKey(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("OPENWEATHER_API_KEY", "")

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Missing environment variable: OPENWEATHER_API_KEY\n", stderr.String())
}

func TestRunPrintsKeyFields(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("OPENWEATHER_API_KEY", "fake-key")

	var gotQ string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		_, _ = io.WriteString(w, `{"name":"Paris","weather":[{"description":"clear sky"}],
			"main":{"temp":21.5,"feels_like":20,"humidity":40,"pressure":1015},
			"wind":{"speed":3.1}}`)
	}))
	defer ts.Close()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-city", "Paris", "-region", "", "-country", "FR", "-url", ts.URL}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Equal(t, "Paris,FR", gotQ)
	out := stdout.String()
	assert.Contains(t, out, "Request location: Paris,FR")
	assert.Contains(t, out, "name: Paris")
	assert.Contains(t, out, "weather: clear sky")
	assert.Contains(t, out, "temp (C): 21.5")
	assert.Contains(t, out, "wind speed (m/s): 3.1")
	assert.Contains(t, out, "visibility (m): None")
}

func TestRunUpstreamError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("OPENWEATHER_API_KEY", "fake-key")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-url", ts.URL}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "status 401")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
