// Package server implements the BFF HTTP server fronting the calculation
// engine: it validates and normalizes form submissions, forwards them, and
// enriches the engine's replies with display-ready derived views.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mbaillet/immosim/internal/cache"
	"github.com/mbaillet/immosim/internal/engine"
	"github.com/mbaillet/immosim/internal/params"
	"github.com/mbaillet/immosim/internal/sensitivity"
	"github.com/mbaillet/immosim/internal/view"
	"github.com/mbaillet/immosim/pkg/format"
	"go.uber.org/zap"
)

const cumulativeTolerance = 1.0

type handler struct {
	logger     *zap.Logger
	client     *engine.Client
	cache      cache.Cache
	runner     *sensitivity.Runner
	locale     format.Locale
	thresholds view.Thresholds
	cacheTTL   time.Duration
	version    string
}

// Options configures the handler.
type Options struct {
	Logger     *zap.Logger
	Client     *engine.Client
	Cache      cache.Cache
	Locale     format.Locale
	Thresholds view.Thresholds
	CacheTTL   time.Duration
	Version    string
}

// NewHandler constructs the HTTP handler serving the BFF API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := opts.Cache
	if store == nil {
		store = cache.NewMemoryCache()
	}
	thresholds := opts.Thresholds
	if thresholds == (view.Thresholds{}) {
		thresholds = view.DefaultThresholds()
	}
	locale := opts.Locale
	if locale == "" {
		locale = format.LocaleFR
	}
	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:     logger,
		client:     opts.Client,
		cache:      store,
		runner:     sensitivity.NewRunner(opts.Client, logger),
		locale:     locale,
		thresholds: thresholds,
		cacheTTL:   opts.CacheTTL,
		version:    version,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/simulate/simple", h.handleSimulateSimple)
	mux.HandleFunc("/api/simulate/expert", h.handleSimulateExpert)
	mux.HandleFunc("/api/fiscal/compare", h.handleFiscalCompare)
	mux.HandleFunc("/api/fiscal/lmp-check", h.handleLMPCheck)
	mux.HandleFunc("/api/sensitivity", h.handleSensitivity)
	mux.HandleFunc("/api/locations", h.handleLocations)
	mux.HandleFunc("/api/locations/", h.handleLocationDefaults)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/api/health", h.handleHealth)

	return mux
}

// simulationView is an engine reply enriched with derived display values.
type simulationView struct {
	Success         bool                    `json:"success"`
	Metrics         *engine.Metrics         `json:"metrics,omitempty"`
	Cards           []view.MetricCard       `json:"cards,omitempty"`
	Quality         view.Quality            `json:"quality,omitempty"`
	Fiscal          *fiscalView             `json:"fiscal,omitempty"`
	YearlyCashflows []engine.YearlyCashFlow `json:"yearly_cashflows,omitempty"`
	Breakeven       *breakevenView          `json:"breakeven,omitempty"`
	Alerts          []view.AlertView        `json:"alerts,omitempty"`
	LMPStatus       *engine.LMPStatus       `json:"lmp_status,omitempty"`
	Warnings        []string                `json:"warnings,omitempty"`
	Error           string                  `json:"error,omitempty"`
}

type fiscalView struct {
	engine.FiscalComparison
	Tier      view.RegimeTier `json:"tier"`
	Highlight bool            `json:"highlight_savings"`
}

type breakevenView struct {
	Year      int  `json:"year"`
	Immediate bool `json:"immediate"`
}

func (h *handler) handleSimulateSimple(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSimulateSimple"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var p params.SimpleParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), op)
		return
	}

	warnings, err := p.Validate()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	resp, err := h.client.SimulateSimple(r.Context(), p.Request())
	if err != nil {
		h.respondEngineFailure(w, r, op, err)
		return
	}

	result := h.buildView(r, resp, nil)
	result.Warnings = warnings
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleSimulateExpert(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSimulateExpert"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var form params.ExpertForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), op)
		return
	}

	p, err := form.BuildParams()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	warnings, err := p.Validate()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	resp, err := h.client.SimulateExpert(r.Context(), p.Request())
	if err != nil {
		h.respondEngineFailure(w, r, op, err)
		return
	}

	result := h.buildView(r, &resp.SimulationResponse, resp.LMPStatus)
	result.Warnings = warnings
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) buildView(r *http.Request, resp *engine.SimulationResponse, lmp *engine.LMPStatus) simulationView {
	locale := h.requestLocale(r)

	result := simulationView{
		Success:         true,
		Metrics:         resp.Metrics,
		YearlyCashflows: resp.YearlyCashflows,
		Alerts:          view.LocalizeAlerts(resp.Alerts, locale),
		LMPStatus:       lmp,
	}

	if resp.Metrics != nil {
		result.Cards = view.MetricCards(*resp.Metrics, h.thresholds, locale)
		result.Quality = view.Classify(resp.Metrics.IRR, h.thresholds)
	}
	if resp.Fiscal != nil {
		result.Fiscal = &fiscalView{
			FiscalComparison: *resp.Fiscal,
			Tier:             view.RecommendedTier(*resp.Fiscal),
			Highlight:        view.HighlightSavings(*resp.Fiscal),
		}
	}
	if len(resp.YearlyCashflows) > 0 {
		if err := view.CheckCumulative(resp.YearlyCashflows, cumulativeTolerance); err != nil {
			h.logger.Warn("engine returned inconsistent cumulative cash flows",
				zap.String("op", "server.buildView"),
				zap.Error(err),
			)
		}
		if be := view.DetectBreakeven(resp.YearlyCashflows); be.Kind != view.BreakevenNone {
			result.Breakeven = &breakevenView{
				Year:      be.Year,
				Immediate: be.Kind == view.BreakevenImmediate,
			}
		}
	}
	return result
}

func (h *handler) handleFiscalCompare(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleFiscalCompare"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req engine.FiscalComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), op)
		return
	}

	resp, err := h.client.CompareFiscalRegimes(r.Context(), req)
	if err != nil {
		h.respondEngineFailure(w, r, op, err)
		return
	}

	comparison := engine.FiscalComparison{
		Recommended:   resp.Recommended,
		AnnualSavings: resp.AnnualSavings,
	}
	h.writeJSON(w, http.StatusOK, struct {
		*engine.FiscalComparisonResponse
		Tier      view.RegimeTier `json:"tier"`
		Highlight bool            `json:"highlight_savings"`
	}{
		FiscalComparisonResponse: resp,
		Tier:                     view.RecommendedTier(comparison),
		Highlight:                view.HighlightSavings(comparison),
	})
}

func (h *handler) handleLMPCheck(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleLMPCheck"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req engine.LMPCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), op)
		return
	}

	status, err := h.client.CheckLMPStatus(r.Context(), req)
	if err != nil {
		h.respondEngineFailure(w, r, op, err)
		return
	}
	h.writeJSON(w, http.StatusOK, status)
}

// handleSensitivity sweeps around the expert parameters carried in the
// request body. The base always comes from the caller, never from server
// state, so one client's submission can never seed another client's sweep.
// An empty body means no expert parameters exist yet; the sweeps are then
// disabled rather than an error.
func (h *handler) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSensitivity"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var form params.ExpertForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		if errors.Is(err, io.EOF) {
			h.writeJSON(w, http.StatusOK, sensitivity.Outcome{Disabled: true})
			return
		}
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), op)
		return
	}

	p, err := form.BuildParams()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	if _, err := p.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	req := p.Request()
	outcome := h.runner.Run(r.Context(), &req)
	h.writeJSON(w, http.StatusOK, outcome)
}

func (h *handler) handleLocations(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleLocations"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if cached, ok := h.cache.Get(r.Context(), "locations"); ok {
		h.writeRawJSON(w, http.StatusOK, []byte(cached))
		return
	}

	locations, err := h.client.ListLocations(r.Context())
	if err != nil {
		h.respondEngineFailure(w, r, op, err)
		return
	}

	payload, err := json.Marshal(map[string][]string{"locations": locations})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to encode locations", op)
		return
	}
	if err := h.cache.Set(r.Context(), "locations", string(payload), h.cacheTTL); err != nil {
		h.logger.Warn("failed to cache locations",
			zap.String("op", op),
			zap.Error(err),
		)
	}
	h.writeRawJSON(w, http.StatusOK, payload)
}

// defaultsView wraps location defaults so a failed fetch degrades to
// "not available" instead of an error: pre-fill is convenience, never
// correctness.
type defaultsView struct {
	Available bool                     `json:"available"`
	Defaults  *engine.LocationDefaults `json:"defaults,omitempty"`
}

func (h *handler) handleLocationDefaults(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleLocationDefaults"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/locations/")
	location, suffix, found := strings.Cut(rest, "/")
	if !found || suffix != "defaults" || location == "" {
		http.NotFound(w, r)
		return
	}

	cacheKey := "defaults:" + location
	if cached, ok := h.cache.Get(r.Context(), cacheKey); ok {
		h.writeRawJSON(w, http.StatusOK, []byte(cached))
		return
	}

	defaults, err := h.client.LocationDefaults(r.Context(), location)
	if err != nil {
		// Swallowed: defaults only pre-fill the form.
		h.logger.Warn("location defaults fetch failed",
			zap.String("op", op),
			zap.String("location", location),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusOK, defaultsView{Available: false})
		return
	}

	payload, err := json.Marshal(defaultsView{Available: true, Defaults: defaults})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to encode defaults", op)
		return
	}
	if err := h.cache.Set(r.Context(), cacheKey, string(payload), h.cacheTTL); err != nil {
		h.logger.Warn("failed to cache location defaults",
			zap.String("op", op),
			zap.Error(err),
		)
	}
	h.writeRawJSON(w, http.StatusOK, payload)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if err := h.client.Health(r.Context()); err != nil {
		h.logger.Warn("engine health check failed",
			zap.String("op", "server.handleHealth"),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) requestLocale(r *http.Request) format.Locale {
	if raw := r.URL.Query().Get("locale"); raw != "" {
		return format.ParseLocale(raw)
	}
	return h.locale
}

var connectionMessages = map[format.Locale]string{
	format.LocaleFR: "Erreur de connexion au service de calcul",
	format.LocaleEN: "Could not reach the calculation service",
}

var failureMessages = map[format.Locale]string{
	format.LocaleFR: "La simulation a échoué",
	format.LocaleEN: "The simulation failed",
}

func localized(messages map[format.Locale]string, locale format.Locale) string {
	if message, ok := messages[locale]; ok {
		return message
	}
	return messages[format.LocaleFR]
}

// respondEngineFailure maps the two engine error channels: application
// failures pass the engine's message through verbatim with success=false;
// transport failures become a 502 with a generic localized message, never
// the raw error.
func (h *handler) respondEngineFailure(w http.ResponseWriter, r *http.Request, op string, err error) {
	var engineErr *engine.EngineError
	if errors.As(err, &engineErr) {
		h.logger.Info("engine rejected the request",
			zap.String("op", op),
			zap.String("error", engineErr.Message),
		)
		message := engineErr.Message
		if message == "" {
			message = localized(failureMessages, h.requestLocale(r))
		}
		h.writeJSON(w, http.StatusOK, simulationView{Success: false, Error: message})
		return
	}

	h.logger.Error("engine request failed",
		zap.String("op", op),
		zap.Error(err),
	)
	h.writeJSON(w, http.StatusBadGateway, map[string]string{
		"error": localized(connectionMessages, h.requestLocale(r)),
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) writeRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
