package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeokit/aeograph/internal/config"
	"github.com/aeokit/aeograph/internal/schema/source"
)

func renderRequest(t *testing.T, srv *Server, state *source.PageState) RenderResponse {
	t.Helper()

	body, err := json.Marshal(state)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	srv.SetupRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp RenderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRender_ValidGraphIsEmitted(t *testing.T) {
	srv := NewServerWithOptions(&config.Options{
		SiteURL:     "https://acme.test/",
		CompanyName: "Acme",
		EntityType:  "Organization",
		LogoURL:     "https://acme.test/logo.png",
		Languages:   []string{"ja"},
	})

	resp := renderRequest(t, srv, &source.PageState{
		FrontPage: true,
		Site:      "Acme",
		Home:      "https://acme.test/",
		URL:       "https://acme.test/",
	})

	assert.True(t, resp.Validation.IsValid)
	assert.Contains(t, resp.JSONLD, `"@context":"https://schema.org"`)
	assert.Contains(t, resp.JSONLD, "https://acme.test/#org")
}

func TestRender_ValidationFailureSuppressesOutput(t *testing.T) {
	srv := NewServerWithOptions(&config.Options{
		SiteURL:     "https://acme.test/",
		CompanyName: "Acme Store",
		EntityType:  "LocalBusiness",
		// No telephone and no address: the local business node is emitted
		// (the skip flag is off) and must fail validation.
	})

	resp := renderRequest(t, srv, &source.PageState{
		FrontPage: true,
		Site:      "Acme Store",
		Home:      "https://acme.test/",
		URL:       "https://acme.test/",
	})

	assert.False(t, resp.Validation.IsValid)
	assert.Empty(t, resp.JSONLD, "a non-compliant graph must not be emitted")
	assert.NotEmpty(t, resp.Validation.Errors)
}

func TestRender_SuppressionReportedToCaller(t *testing.T) {
	srv := NewServerWithOptions(&config.Options{
		SiteURL:                       "https://acme.test/",
		CompanyName:                   "Acme Store",
		EntityType:                    "LocalBusiness",
		SkipLocalBusinessIfIncomplete: true,
	})

	resp := renderRequest(t, srv, &source.PageState{
		FrontPage: true,
		Site:      "Acme Store",
		Home:      "https://acme.test/",
		URL:       "https://acme.test/",
	})

	assert.True(t, resp.LocalBusinessSuppressed)
	assert.Contains(t, resp.LocalBusinessMissing, "telephone")
	assert.Contains(t, resp.LocalBusinessMissing, "streetAddress")
}

func TestRender_BadPayload(t *testing.T) {
	srv := NewServerWithOptions(&config.Options{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	srv.SetupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplaceOptionsSwapsAtomically(t *testing.T) {
	srv := NewServerWithOptions(&config.Options{CompanyName: "Old"})
	srv.ReplaceOptions(&config.Options{CompanyName: "New"})
	assert.Equal(t, "New", srv.options().CompanyName)
}
