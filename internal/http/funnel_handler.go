package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sucessoempreendedor011-lang/empreendedor/internal/catalog"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/funnel"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/identity"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/session"
)

// WaitDurations are the fixed delays of the timed funnel screens, served
// to clients so the choreography lives in one place.
type WaitDurations struct {
	AnalysisMin time.Duration
	AgentSearch time.Duration
	AgentFound  time.Duration
}

type FunnelHandler struct {
	store   session.Store
	catalog catalog.Repository
	waits   WaitDurations
	logger  *zap.Logger
}

func NewFunnelHandler(store session.Store, repo catalog.Repository, waits WaitDurations, logger *zap.Logger) *FunnelHandler {
	return &FunnelHandler{
		store:   store,
		catalog: repo,
		waits:   waits,
		logger:  logger,
	}
}

// loadState fetches the session state, mapping "never seen" to nil.
func loadState(r *http.Request, store session.Store) (*session.State, string, error) {
	sessionID := sessionIDFromContext(r.Context())
	state, err := store.Get(r.Context(), sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, sessionID, nil
	}
	if err != nil {
		return nil, sessionID, err
	}
	return state, sessionID, nil
}

type guardResponse struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

// GuardStep tells the client whether the session may enter a screen, and
// where to bounce it otherwise.
func (h *FunnelHandler) GuardStep(w http.ResponseWriter, r *http.Request) {
	step, err := funnel.ParseStep("/" + chi.URLParam(r, "step"))
	if err != nil {
		respondError(w, http.StatusNotFound, "unknown_step", "unknown funnel step")
		return
	}

	state, _, err := loadState(r, h.store)
	if err != nil {
		h.logger.Error("failed to load session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	allowed, redirect := funnel.Guard(step, state)
	respondJSON(w, http.StatusOK, guardResponse{Allowed: allowed, Redirect: string(redirect)})
}

type waitsResponse struct {
	AnalysisMinMs int64 `json:"analysisMinMs"`
	AgentSearchMs int64 `json:"agentSearchMs"`
	AgentFoundMs  int64 `json:"agentFoundMs"`
}

func (h *FunnelHandler) Waits(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, waitsResponse{
		AnalysisMinMs: h.waits.AnalysisMin.Milliseconds(),
		AgentSearchMs: h.waits.AgentSearch.Milliseconds(),
		AgentFoundMs:  h.waits.AgentFound.Milliseconds(),
	})
}

type selectionRequestDTO struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Storage   string `json:"storage"`
	Quantity  int    `json:"quantity"`
}

// PutSelection records the confirmed product detail screen. It overwrites
// any earlier selection; the funnel holds exactly one.
func (h *FunnelHandler) PutSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}
	if !catalog.ValidStorage(req.Storage) {
		respondError(w, http.StatusBadRequest, "invalid_storage", "storage must be one of 128GB, 256GB, 512GB")
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	color, ok := product.Color(req.Color)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_color", "color not offered for this product")
		return
	}
	if !color.InStock {
		respondError(w, http.StatusConflict, "out_of_stock", "selected color is out of stock")
		return
	}

	state, sessionID, err := loadState(r, h.store)
	if err != nil {
		h.logger.Error("failed to load session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	if state == nil {
		state = &session.State{}
	}

	state.Selection = &session.CartSelection{
		ProductID:   product.ID,
		ProductName: product.DisplayName,
		Color:       color.Name,
		Storage:     req.Storage,
		Quantity:    req.Quantity,
		Price:       catalog.PriceForStorage(product.BasePrice, req.Storage),
		Image:       color.Image,
	}

	if err := h.store.Put(r.Context(), sessionID, state); err != nil {
		h.logger.Error("failed to save session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, state.Selection)
}

type addressRequestDTO struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

func (h *FunnelHandler) PutAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// complement is the only optional field on the form
	if req.CEP == "" || req.Street == "" || req.Number == "" ||
		req.Neighborhood == "" || req.City == "" || req.State == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "all address fields except complement are required")
		return
	}

	h.updateState(w, r, func(state *session.State) {
		state.Address = &session.Address{
			CEP:          req.CEP,
			Street:       req.Street,
			Number:       req.Number,
			Complement:   req.Complement,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			State:        req.State,
		}
	})
}

type cpfRequestDTO struct {
	CPF string `json:"cpf"`
}

func (h *FunnelHandler) PutCPF(w http.ResponseWriter, r *http.Request) {
	var req cpfRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !identity.ValidCPF(req.CPF) {
		respondError(w, http.StatusBadRequest, "invalid_cpf", "cpf must have 11 digits")
		return
	}

	h.updateState(w, r, func(state *session.State) {
		state.CPF = identity.FormatCPF(req.CPF)
	})
}

type paymentMethodRequestDTO struct {
	Method       string `json:"method"`
	Installments int    `json:"installments"`
}

func (h *FunnelHandler) PutPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req paymentMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	switch req.Method {
	case "pix":
		req.Installments = 0
	case "store":
		if req.Installments == 0 {
			req.Installments = catalog.DefaultInstallments
		}
		if !catalog.ValidInstallments(req.Installments) {
			respondError(w, http.StatusBadRequest, "invalid_installments", "installments must be one of 8, 12, 24, 32, 40")
			return
		}
	default:
		respondError(w, http.StatusBadRequest, "invalid_method", "method must be pix or store")
		return
	}

	h.updateState(w, r, func(state *session.State) {
		state.PaymentMethod = req.Method
		state.Installments = req.Installments
	})
}

type phoneRequestDTO struct {
	Phone string `json:"phone"`
}

func (h *FunnelHandler) PutPhone(w http.ResponseWriter, r *http.Request) {
	var req phoneRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	digits := identity.Digits(req.Phone)
	if len(digits) < 10 || len(digits) > 13 {
		respondError(w, http.StatusBadRequest, "invalid_phone", "phone must have 10 to 13 digits")
		return
	}

	h.updateState(w, r, func(state *session.State) {
		state.Phone = digits
	})
}

// GetState exposes the whole session for screens that render from it.
func (h *FunnelHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, _, err := loadState(r, h.store)
	if err != nil {
		h.logger.Error("failed to load session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	if state == nil {
		state = &session.State{}
	}
	respondJSON(w, http.StatusOK, state)
}

// updateState applies a mutation to the session under the usual
// load-modify-save sequence.
func (h *FunnelHandler) updateState(w http.ResponseWriter, r *http.Request, mutate func(*session.State)) {
	state, sessionID, err := loadState(r, h.store)
	if err != nil {
		h.logger.Error("failed to load session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	if state == nil {
		state = &session.State{}
	}

	mutate(state)

	if err := h.store.Put(r.Context(), sessionID, state); err != nil {
		h.logger.Error("failed to save session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, state)
}
