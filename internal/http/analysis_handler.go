package http

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/sucessoempreendedor011-lang/empreendedor/internal/funnel"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/identity"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/session"
)

// lookupFunc matches identity.LookupClient.Lookup.
type lookupFunc func(ctx context.Context, cpf string) (map[string]any, error)

// AnalysisHandler runs the credit "analysis" step: a minimum-duration wait
// wrapping the one real network call of the screen. The approval shown
// afterwards is unconditional copy; there is no decision logic here.
type AnalysisHandler struct {
	store  session.Store
	lookup lookupFunc
	waits  WaitDurations
	logger *zap.Logger
}

func NewAnalysisHandler(store session.Store, lookup lookupFunc, waits WaitDurations, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		store:  store,
		lookup: lookup,
		waits:  waits,
		logger: logger,
	}
}

type analysisResponse struct {
	Name string `json:"name"`
}

func (h *AnalysisHandler) Run(w http.ResponseWriter, r *http.Request) {
	state, sessionID, err := loadState(r, h.store)
	if err != nil {
		h.logger.Error("failed to load session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	if ok, redirect := funnel.Guard(funnel.StepAnalysis, state); !ok {
		respondJSON(w, http.StatusConflict, guardResponse{Allowed: false, Redirect: string(redirect)})
		return
	}

	var data map[string]any
	err = funnel.RunWithMinimumWait(r.Context(), h.waits.AnalysisMin, func(ctx context.Context) error {
		var lookupErr error
		data, lookupErr = h.lookup(ctx, identity.CleanCPF(state.CPF))
		return lookupErr
	})
	if err != nil {
		h.logger.Warn("identity lookup failed",
			zap.String("session_id", sessionID), zap.Error(err))
		respondError(w, http.StatusBadGateway, "lookup_failed",
			"Não foi possível consultar seus dados. Tente novamente.")
		return
	}

	state.Identity = data
	if err := h.store.Put(r.Context(), sessionID, state); err != nil {
		h.logger.Error("failed to save session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, analysisResponse{Name: state.IdentityName()})
}
