package http

import (
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/sucessoempreendedor011-lang/empreendedor/internal/catalog"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/funnel"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/identity"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/session"
)

// ChatWidget identifies the embedded third-party chat the agent-wait step
// hands off to.
type ChatWidget struct {
	WidgetID string `json:"widgetId"`
	APIHost  string `json:"apiHost"`
}

type ChatHandler struct {
	store  session.Store
	widget ChatWidget
	logger *zap.Logger
}

func NewChatHandler(store session.Store, widget ChatWidget, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		store:  store,
		widget: widget,
		logger: logger,
	}
}

type handoffResponse struct {
	Query  string     `json:"query"`
	Widget ChatWidget `json:"widget"`
}

// Handoff builds the query string the chat screen forwards into the
// embedded widget: cleaned tax id, product name, chosen installment count.
func (h *ChatHandler) Handoff(w http.ResponseWriter, r *http.Request) {
	state, _, err := loadState(r, h.store)
	if err != nil {
		h.logger.Error("failed to load session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	if ok, redirect := funnel.Guard(funnel.StepChat, state); !ok {
		respondJSON(w, http.StatusConflict, guardResponse{Allowed: false, Redirect: string(redirect)})
		return
	}

	installments := state.Installments
	if installments == 0 {
		installments = catalog.DefaultInstallments
	}
	productName := ""
	if state.Selection != nil {
		productName = state.Selection.ProductName
	}

	params := url.Values{}
	params.Set("cpf", identity.CleanCPF(state.CPF))
	params.Set("iphone", productName)
	params.Set("parcela", strconv.Itoa(installments))

	respondJSON(w, http.StatusOK, handoffResponse{
		Query:  params.Encode(),
		Widget: h.widget,
	})
}
