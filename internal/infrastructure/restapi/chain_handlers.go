package restapi

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"evm_chains/internal/app/port"
	"evm_chains/internal/domain/entity"
	"evm_chains/internal/infrastructure/configloader"
	"evm_chains/internal/pkg/logger"
	"evm_chains/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// APIChainsResponse is the envelope for endpoints returning several chains.
type APIChainsResponse struct {
	Data   []entity.Chain `json:"data"`
	Total  int            `json:"total"`
	Offset int            `json:"offset,omitempty"`
	Limit  int            `json:"limit,omitempty"`
}

// APIChainResponse is the envelope for a single chain.
type APIChainResponse struct {
	Data entity.Chain `json:"data"`
}

// APIErrorResponse is returned with every non-2xx status.
type APIErrorResponse struct {
	Error string `json:"error"`
}

// ChainHandler serves lookups against a chain registry.
type ChainHandler struct {
	registry    port.ChainRegistry
	cfg         *configloader.Config
	logger      port.Logger
	metrics     *Metrics
	searchCache *cache.Cache
}

// NewChainHandler creates a new ChainHandler. metrics and log may be nil.
func NewChainHandler(registry port.ChainRegistry, cfg *configloader.Config, metrics *Metrics, log port.Logger) *ChainHandler {
	ttl := time.Duration(cfg.API.SearchCacheTTLMinutes) * time.Minute
	cleanup := time.Duration(cfg.API.SearchCacheCleanupMinutes) * time.Minute
	return &ChainHandler{
		registry:    registry,
		cfg:         cfg,
		logger:      logger.OrNop(log),
		metrics:     metrics,
		searchCache: cache.New(ttl, cleanup),
	}
}

// ListChainsHandler returns a page of all chains in dataset order.
// Query params: ?offset=N&limit=M
func (h *ChainHandler) ListChainsHandler(c *gin.Context) {
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "offset must be a non-negative integer"})
		return
	}
	limit, err := queryInt(c, "limit", h.cfg.API.DefaultPageSize)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "limit must be a positive integer"})
		return
	}
	limit = min(limit, h.cfg.API.MaxPageSize)

	all := slices.Collect(h.registry.All())
	c.JSON(http.StatusOK, APIChainsResponse{
		Data:   utils.Paginate(all, offset, limit),
		Total:  len(all),
		Offset: offset,
		Limit:  limit,
	})
}

// GetChainHandler returns the chain identified by the :chainId path parameter.
func (h *ChainHandler) GetChainHandler(c *gin.Context) {
	raw := c.Param("chainId")
	chainID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "chainId must be an unsigned integer"})
		return
	}

	chain, err := h.registry.Get(chainID)
	if errors.Is(err, entity.ErrNotFound) {
		h.metrics.observeLookup("by_id", false)
		h.logger.Debug("Chain lookup miss", "chain_id", chainID)
		c.JSON(http.StatusNotFound, APIErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("Chain lookup failed", "chain_id", chainID, "error", err)
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Error: "internal error"})
		return
	}

	h.metrics.observeLookup("by_id", true)
	c.JSON(http.StatusOK, APIChainResponse{Data: chain})
}

// FindByNameHandler returns chains whose name equals :name, ignoring case.
func (h *ChainHandler) FindByNameHandler(c *gin.Context) {
	name := c.Param("name")
	chains := h.registry.FindByName(name)
	h.metrics.observeLookup("by_name", len(chains) > 0)
	c.JSON(http.StatusOK, APIChainsResponse{Data: chains, Total: len(chains)})
}

// SearchHandler returns chains matching ?q= by substring. Results are cached per normalized query.
func (h *ChainHandler) SearchHandler(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q == "" {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "query parameter q is required"})
		return
	}

	if cached, ok := h.searchCache.Get(q); ok {
		chains := cached.([]entity.Chain)
		h.metrics.observeSearchCache(true)
		h.metrics.observeLookup("search", len(chains) > 0)
		c.JSON(http.StatusOK, APIChainsResponse{Data: chains, Total: len(chains)})
		return
	}

	chains := h.registry.Search(q)
	h.searchCache.SetDefault(q, chains)
	h.metrics.observeSearchCache(false)
	h.metrics.observeLookup("search", len(chains) > 0)
	c.JSON(http.StatusOK, APIChainsResponse{Data: chains, Total: len(chains)})
}

// HealthHandler reports liveness together with the number of loaded chains.
func (h *ChainHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "chains": h.registry.Len()})
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
