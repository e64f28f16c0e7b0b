package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookkeeper/internal/config"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/matcher/gateway"
	"bookkeeper/internal/port"
)

func TestClient_Reconcile(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": {"autoMatched": 4, "needsReview": 2}}`))
	}))
	defer srv.Close()

	client := gateway.NewClientWithBaseURL(&config.MatcherConfig{APIKey: "secret-key"}, srv.URL)

	results, err := client.Reconcile(context.Background(), &port.ReconcileRequest{
		Type:                 domain.ReconcileScopeAll,
		AutoApproveThreshold: 0.95,
	})

	require.NoError(t, err)
	assert.Equal(t, "/bookkeeper-ai-reconcile", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "all", gotBody["type"])
	assert.Equal(t, 0.95, gotBody["autoApproveThreshold"])
	assert.Equal(t, 4, results.AutoMatched)
	assert.Equal(t, 2, results.NeedsReview)
}

func TestClient_DetectGaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookkeeper-detect-gaps", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2026-01-01", body["startDate"])
		assert.Equal(t, "2026-03-31", body["endDate"])
		w.Write([]byte(`{"results": {"riskScore": 35.5, "missingBills": [{"period": "2026-02"}], "missingInvoices": []}}`))
	}))
	defer srv.Close()

	client := gateway.NewClientWithBaseURL(&config.MatcherConfig{}, srv.URL)

	results, err := client.DetectGaps(context.Background(), &port.GapRequest{
		StartDate: "2026-01-01",
		EndDate:   "2026-03-31",
	})

	require.NoError(t, err)
	assert.Equal(t, 35.5, results.RiskScore)
	assert.Len(t, results.MissingBills, 1)
	assert.Empty(t, results.MissingInvoices)
}

func TestClient_SmartMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookkeeper-ai-smart-match", r.URL.Path)
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// The ledger state fields ride under camelCase keys.
		assert.Contains(t, body, "unmatchedBills")
		assert.Contains(t, body, "unmatchedInvoices")
		assert.Contains(t, body, "payments")
		assert.Contains(t, body, "userFeedback")
		w.Write([]byte(`{"results": {"autoMatched": 1, "needsReview": 0, "warnings": ["sparse history"]}}`))
	}))
	defer srv.Close()

	client := gateway.NewClientWithBaseURL(&config.MatcherConfig{}, srv.URL)

	results, err := client.SmartMatch(context.Background(), &port.SmartMatchRequest{})

	require.NoError(t, err)
	assert.Equal(t, 1, results.AutoMatched)
	assert.Equal(t, []string{"sparse history"}, results.Warnings)
}

func TestClient_NoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"results": {}}`))
	}))
	defer srv.Close()

	client := gateway.NewClientWithBaseURL(&config.MatcherConfig{}, srv.URL)
	_, err := client.Reconcile(context.Background(), &port.ReconcileRequest{Type: domain.ReconcileScopeAll})
	assert.NoError(t, err)
}

func TestClient_Non2xxResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "model overloaded"}`))
	}))
	defer srv.Close()

	client := gateway.NewClientWithBaseURL(&config.MatcherConfig{}, srv.URL)
	_, err := client.Reconcile(context.Background(), &port.ReconcileRequest{Type: domain.ReconcileScopeAll})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMatcherUnavailable)

	var statusErr *gateway.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "model overloaded")
}

func TestClient_MissingResultsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {}}`))
	}))
	defer srv.Close()

	client := gateway.NewClientWithBaseURL(&config.MatcherConfig{}, srv.URL)
	_, err := client.Reconcile(context.Background(), &port.ReconcileRequest{Type: domain.ReconcileScopeAll})

	assert.Error(t, err)
}

func TestClient_UnreachableGateway(t *testing.T) {
	client := gateway.NewClientWithBaseURL(&config.MatcherConfig{}, "http://127.0.0.1:1")
	_, err := client.Reconcile(context.Background(), &port.ReconcileRequest{Type: domain.ReconcileScopeAll})

	assert.ErrorIs(t, err, domain.ErrMatcherUnavailable)
}
