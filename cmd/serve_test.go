package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leads-cli/internal/model"
)

// fakeSource records the pagination it was asked for and returns a canned
// envelope or error.
type fakeSource struct {
	env model.Envelope
	err error

	gotLimit  int
	gotOffset int
}

func (f *fakeSource) GetLeads(_ context.Context, limit, offset int) (model.Envelope, error) {
	f.gotLimit = limit
	f.gotOffset = offset
	if f.err != nil {
		return model.Envelope{}, f.err
	}
	env := f.env
	env.Limit = limit
	env.Offset = offset
	return env, nil
}

func TestServe_Health(t *testing.T) {
	srv := httptest.NewServer(newRouter(&fakeSource{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestServe_Leads_Defaults(t *testing.T) {
	src := &fakeSource{env: model.Envelope{
		Leads: []model.NormalizedLead{{Title: "t", Link: "https://x"}},
		Total: 1,
	}}
	srv := httptest.NewServer(newRouter(src))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/leads")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 50, src.gotLimit)
	assert.Equal(t, 0, src.gotOffset)

	var env model.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Len(t, env.Leads, 1)
	assert.Equal(t, "t", env.Leads[0].Title)
	assert.Equal(t, 1, env.Total)
}

func TestServe_Leads_QueryParams(t *testing.T) {
	src := &fakeSource{}
	srv := httptest.NewServer(newRouter(src))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/leads?limit=5&offset=10")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 5, src.gotLimit)
	assert.Equal(t, 10, src.gotOffset)
}

func TestServe_Leads_MalformedParamsFallBack(t *testing.T) {
	src := &fakeSource{}
	srv := httptest.NewServer(newRouter(src))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/leads?limit=abc&offset=")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 50, src.gotLimit)
	assert.Equal(t, 0, src.gotOffset)
}

func TestServe_Leads_StoreFailure(t *testing.T) {
	src := &fakeSource{err: eris.New("unable to open database file")}
	srv := httptest.NewServer(newRouter(src))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/leads")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var env model.ErrorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Contains(t, env.Error, "unable to open database file")
	assert.Empty(t, env.Leads)
	assert.Equal(t, 0, env.Total)
}
