package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sucessoempreendedor011-lang/empreendedor/internal/identity"
	"github.com/sucessoempreendedor011-lang/empreendedor/internal/session"
)

type confirmationReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// NewConfirmationReader builds the kafka reader the consumer drains.
func NewConfirmationReader(topic, groupID string, brokers ...string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MaxBytes: 10e6, // 10MB
	})
}

// ConfirmConsumer applies confirmations: it marks the session's charge as
// paid and fires the paid attribution report the charge-creation path only
// promised.
type ConfirmConsumer struct {
	reader      confirmationReader
	store       session.Store
	attribution *AttributionClient
	logger      *zap.Logger
}

func NewConfirmConsumer(reader confirmationReader, store session.Store, attribution *AttributionClient, logger *zap.Logger) *ConfirmConsumer {
	return &ConfirmConsumer{
		reader:      reader,
		store:       store,
		attribution: attribution,
		logger:      logger,
	}
}

func (c *ConfirmConsumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		c.processNext(ctx)
	}
}

func (c *ConfirmConsumer) processNext(ctx context.Context) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Error("failed to read confirmation", zap.Error(err))
		}
		return
	}

	var conf Confirmation
	if err := json.Unmarshal(m.Value, &conf); err != nil {
		c.logger.Error("failed to parse confirmation", zap.Error(err))
		return
	}

	state, err := c.store.Get(ctx, conf.SessionID)
	if err != nil {
		c.logger.Warn("session gone for confirmation",
			zap.String("session_id", conf.SessionID), zap.Error(err))
		return
	}
	if state.Charge == nil || state.Charge.TransactionID != conf.TransactionID {
		c.logger.Warn("confirmation does not match active charge",
			zap.String("session_id", conf.SessionID),
			zap.String("transaction_id", conf.TransactionID))
		return
	}
	if state.Charge.Paid {
		return // already applied
	}

	state.Charge.Paid = true
	if err := c.store.Put(ctx, conf.SessionID, state); err != nil {
		c.logger.Error("failed to mark session paid",
			zap.String("session_id", conf.SessionID), zap.Error(err))
		return
	}

	event := NewOrderEvent(conf.TransactionID, AttributionStatusPaid, OrderCustomer{
		Name:     state.IdentityName(),
		Email:    CustomerEmail(state.CPF),
		Phone:    attributionPhone(state),
		Document: identity.CleanCPF(state.CPF),
		Country:  "BR",
	}, AttributionProductID, productNameFromState(state), state.Charge.AmountCents, state.Charge.UTMs)

	if err := c.attribution.Report(ctx, event); err != nil {
		// best-effort, never retried
		c.logger.Warn("paid attribution report failed", zap.Error(err))
	}

	c.logger.Info("session marked paid",
		zap.String("session_id", conf.SessionID),
		zap.String("transaction_id", conf.TransactionID))
}

// AttributionProductID is the fixed product id the collector tracks the
// entry charge under.
const AttributionProductID = "iphone_entrada"

// CustomerEmail synthesizes the payer email from the tax id; the funnel
// never captures a real one but the gateway and collector require it.
func CustomerEmail(cpf string) string {
	return fmt.Sprintf("%s@cliente.com.br", identity.CleanCPF(cpf))
}

func productNameFromState(state *session.State) string {
	if state.Selection != nil {
		return state.Selection.ProductName
	}
	return ""
}

func attributionPhone(state *session.State) string {
	if state.Phone != "" {
		return state.Phone
	}
	return "11999999999"
}
