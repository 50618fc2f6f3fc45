package session

import "time"

// CartSelection is the single active product selection. It is overwritten
// whenever the user confirms a product detail screen.
type CartSelection struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Color       string `json:"color"`
	Storage     string `json:"storage"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
}

// Address is the delivery address captured before the CPF step.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// ChargeRef tracks the single active PIX charge of a session. UTMs are the
// campaign parameters captured when the charge was created, kept so the
// paid-confirmation report carries the same attribution.
type ChargeRef struct {
	TransactionID string            `json:"transactionId"`
	PixCode       string            `json:"pixCode"`
	QRCodeURL     string            `json:"qrCodeUrl"`
	AmountCents   int64             `json:"amountCents"`
	Paid          bool              `json:"paid"`
	UTMs          map[string]string `json:"utms,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// State is the typed funnel session, one per visitor. Field names mirror
// the storage keys the funnel screens historically used.
type State struct {
	Selection     *CartSelection `json:"cartItem,omitempty"`
	Address       *Address       `json:"address,omitempty"`
	CPF           string         `json:"userCPF,omitempty"`
	Identity      map[string]any `json:"cpfData,omitempty"`
	PaymentMethod string         `json:"paymentMethod,omitempty"`
	Installments  int            `json:"selectedInstallment,omitempty"`
	Phone         string         `json:"userPhone,omitempty"`
	Charge        *ChargeRef     `json:"charge,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// IdentityName returns the display name from the identity lookup result.
func (s *State) IdentityName() string {
	if s.Identity == nil {
		return ""
	}
	if name, ok := s.Identity["nome"].(string); ok {
		return name
	}
	return ""
}
