package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sucessoempreendedor011-lang/empreendedor/internal/catalog"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/funnel"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/identity"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/payment"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/session"
)

type PaymentHandler struct {
	store            session.Store
	gateway          payment.Gateway
	attribution      *payment.AttributionClient
	entryAmountCents int64
	logger           *zap.Logger
}

func NewPaymentHandler(store session.Store, gateway payment.Gateway, attribution *payment.AttributionClient, entryAmountCents int64, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		store:            store,
		gateway:          gateway,
		attribution:      attribution,
		entryAmountCents: entryAmountCents,
		logger:           logger,
	}
}

type chargeRequestDTO struct {
	UTMs map[string]string `json:"utms"`
}

type chargeResponseDTO struct {
	PixCode       string `json:"pixCode"`
	TransactionID string `json:"transactionId"`
	QRCodeURL     string `json:"qrCodeUrl"`
	AmountCents   int64  `json:"amountCents"`
}

// CreateCharge turns the session's selection into a payable PIX charge for
// the fixed entry amount. The session keeps at most one active charge;
// repeated calls return it instead of charging again.
func (h *PaymentHandler) CreateCharge(w http.ResponseWriter, r *http.Request) {
	var req chargeRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
			return
		}
	}

	state, sessionID, err := loadState(r, h.store)
	if err != nil {
		h.logger.Error("failed to load session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	if ok, redirect := funnel.Guard(funnel.StepPayment, state); !ok {
		respondJSON(w, http.StatusConflict, guardResponse{Allowed: false, Redirect: string(redirect)})
		return
	}

	if state.Charge != nil {
		respondJSON(w, http.StatusOK, chargeResponseDTO{
			PixCode:       state.Charge.PixCode,
			TransactionID: state.Charge.TransactionID,
			QRCodeURL:     state.Charge.QRCodeURL,
			AmountCents:   state.Charge.AmountCents,
		})
		return
	}

	installments := state.Installments
	if installments == 0 {
		installments = catalog.DefaultInstallments
	}
	description := fmt.Sprintf("Entrada %s - Parcelamento %dx", state.Selection.ProductName, installments)
	document := identity.CleanCPF(state.CPF)

	charge, err := h.gateway.CreateCharge(r.Context(), payment.ChargeRequest{
		AmountCents:    h.entryAmountCents,
		Document:       document,
		Name:           customerName(state),
		Email:          payment.CustomerEmail(state.CPF),
		Phone:          customerPhone(state),
		ProductName:    description,
		IdempotencyKey: chargeIdempotencyKey(sessionID),
	})
	if err != nil {
		h.logger.Error("gateway charge failed",
			zap.String("session_id", sessionID), zap.Error(err))
		respondError(w, http.StatusBadGateway, "charge_failed",
			"Erro ao gerar PIX. Tente novamente.")
		return
	}

	state.Charge = &session.ChargeRef{
		TransactionID: charge.TransactionID,
		PixCode:       charge.PixCode,
		QRCodeURL:     charge.QRCodeURL,
		AmountCents:   h.entryAmountCents,
		UTMs:          req.UTMs,
		CreatedAt:     time.Now(),
	}
	if err := h.store.Put(r.Context(), sessionID, state); err != nil {
		h.logger.Error("failed to save session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	if err := h.store.AddPendingCharge(r.Context(), sessionID, charge.TransactionID); err != nil {
		// the poller will simply never see it; manual status checks still work
		h.logger.Error("failed to register pending charge",
			zap.String("transaction_id", charge.TransactionID), zap.Error(err))
	}

	// best-effort attribution report, swallowed on failure
	event := payment.NewOrderEvent(charge.TransactionID, payment.AttributionStatusWaiting, payment.OrderCustomer{
		Name:     customerName(state),
		Email:    payment.CustomerEmail(state.CPF),
		Phone:    customerPhone(state),
		Document: document,
		Country:  "BR",
	}, payment.AttributionProductID, state.Selection.ProductName, h.entryAmountCents, req.UTMs)
	if err := h.attribution.Report(r.Context(), event); err != nil {
		h.logger.Warn("attribution report failed",
			zap.String("transaction_id", charge.TransactionID), zap.Error(err))
	}

	h.logger.Info("pix charge created",
		zap.String("session_id", sessionID),
		zap.String("transaction_id", charge.TransactionID),
		zap.Int64("amount_cents", h.entryAmountCents))

	respondJSON(w, http.StatusCreated, chargeResponseDTO{
		PixCode:       charge.PixCode,
		TransactionID: charge.TransactionID,
		QRCodeURL:     charge.QRCodeURL,
		AmountCents:   h.entryAmountCents,
	})
}

type statusResponseDTO struct {
	IsPaid bool   `json:"isPaid"`
	Status string `json:"status"`
}

// Status reports the session's charge state. A confirmation already
// applied by the consumer short-circuits the gateway round trip.
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	state, _, err := loadState(r, h.store)
	if err != nil {
		h.logger.Error("failed to load session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	if state == nil || state.Charge == nil {
		respondError(w, http.StatusNotFound, "no_charge", "no active charge for this session")
		return
	}

	if state.Charge.Paid {
		respondJSON(w, http.StatusOK, statusResponseDTO{IsPaid: true, Status: "PAID"})
		return
	}

	st := h.gateway.CheckStatus(r.Context(), state.Charge.TransactionID)
	respondJSON(w, http.StatusOK, statusResponseDTO{IsPaid: st.IsPaid, Status: st.Status})
}

// chargeIdempotencyKey derives a stable key from the session so a retried
// create request maps to the same upstream charge.
func chargeIdempotencyKey(sessionID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("charge:"+sessionID)).String()
}

func customerName(state *session.State) string {
	if name := state.IdentityName(); name != "" {
		return name
	}
	return "Cliente"
}

func customerPhone(state *session.State) string {
	if state.Phone != "" {
		return state.Phone
	}
	return "11999999999"
}
