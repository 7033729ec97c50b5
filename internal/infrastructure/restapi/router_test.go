package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evm_chains/internal/domain/entity"
	"evm_chains/internal/infrastructure/configloader"
	networkdefinition "evm_chains/internal/infrastructure/network/definition"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *configloader.Config {
	return &configloader.Config{
		API: configloader.APIConfig{
			DefaultPageSize:           2,
			MaxPageSize:               3,
			SearchCacheTTLMinutes:     1,
			SearchCacheCleanupMinutes: 1,
			RateLimitPerSecond:        1000,
			RateLimitBurst:            1000,
			AllowedOrigins:            []string{"*"},
		},
		Metrics: configloader.MetricsConfig{Path: "/metrics"},
	}
}

func newTestRouter(t *testing.T, cfg *configloader.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry, err := networkdefinition.New([]entity.Chain{
		{ChainID: 1, Name: "Ethereum Mainnet", Chain: "ETH", ShortName: "eth"},
		{ChainID: 10, Name: "OP Mainnet", Chain: "ETH", ShortName: "oeth"},
		{ChainID: 137, Name: "Polygon Mainnet", Chain: "Polygon", ShortName: "matic"},
		{ChainID: 80001, Name: "polygon mainnet", Chain: "Polygon", ShortName: "maticmum"},
	})
	require.NoError(t, err)

	metrics := NewMetrics()
	metrics.SetChainsLoaded(registry.Len())
	h := NewChainHandler(registry, cfg, metrics, nil)
	return SetupRouter(h, cfg, metrics, nil)
}

func doGet(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestGetChainHandler(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doGet(router, "/api/v1/chains/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ethereum Mainnet", decode[APIChainResponse](t, w).Data.Name)

	w = doGet(router, "/api/v1/chains/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode[APIErrorResponse](t, w).Error, "999")

	w = doGet(router, "/api/v1/chains/eth")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListChainsHandler_Paginates(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doGet(router, "/api/v1/chains")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[APIChainsResponse](t, w)
	assert.Equal(t, 4, page.Total)
	require.Len(t, page.Data, 2)
	assert.Equal(t, uint64(1), page.Data[0].ChainID)

	w = doGet(router, "/api/v1/chains?offset=2&limit=50")
	page = decode[APIChainsResponse](t, w)
	assert.Equal(t, 3, page.Limit, "limit is capped at maxPageSize")
	require.Len(t, page.Data, 2)
	assert.Equal(t, uint64(137), page.Data[0].ChainID)

	assert.Equal(t, http.StatusBadRequest, doGet(router, "/api/v1/chains?limit=0").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(router, "/api/v1/chains?offset=-1").Code)
}

func TestFindByNameHandler(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doGet(router, "/api/v1/names/POLYGON%20MAINNET")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[APIChainsResponse](t, w)
	assert.Equal(t, 2, res.Total)

	w = doGet(router, "/api/v1/names/Polygon")
	assert.Equal(t, 0, decode[APIChainsResponse](t, w).Total)
}

func TestSearchHandler_CachesResults(t *testing.T) {
	router := newTestRouter(t, testConfig())

	for range 2 {
		w := doGet(router, "/api/v1/search?q=Matic")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, decode[APIChainsResponse](t, w).Total)
	}

	assert.Equal(t, http.StatusBadRequest, doGet(router, "/api/v1/search").Code)

	metrics := doGet(router, "/metrics").Body.String()
	assert.Contains(t, metrics, `evm_chains_search_cache_total{result="hit"} 1`)
	assert.Contains(t, metrics, `evm_chains_search_cache_total{result="miss"} 1`)
	assert.Contains(t, metrics, `evm_chains_lookups_total{kind="search",result="hit"} 2`)
	assert.Contains(t, metrics, "evm_chains_chains_loaded 4")
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter(t, testConfig())
	w := doGet(router, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","chains":4}`, w.Body.String())
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.API.RateLimitPerSecond = 0.001
	cfg.API.RateLimitBurst = 1
	router := newTestRouter(t, cfg)

	assert.Equal(t, http.StatusOK, doGet(router, "/api/v1/chains/1").Code)
	w := doGet(router, "/api/v1/chains/1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "rate limit"))

	assert.Equal(t, http.StatusOK, doGet(router, "/healthz").Code, "health is not rate limited")
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	disabled := false
	cfg.Metrics.Enabled = &disabled
	router := newTestRouter(t, cfg)
	assert.Equal(t, http.StatusNotFound, doGet(router, "/metrics").Code)
}
