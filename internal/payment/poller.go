package payment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sucessoempreendedor011-lang/empreendedor/internal/session"
)

// Confirmation is published once per charge the gateway reports as paid.
type Confirmation struct {
	SessionID     string    `json:"session_id"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}

type confirmationWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewConfirmationWriter builds the kafka writer the poller publishes to.
func NewConfirmationWriter(topic string, brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// StatusPoller sweeps the pending-charge set on a fixed interval, asks the
// gateway for each transaction's status and publishes confirmations for the
// ones that settled.
type StatusPoller struct {
	store    session.Store
	gateway  Gateway
	writer   confirmationWriter
	interval time.Duration
	logger   *zap.Logger
}

func NewStatusPoller(store session.Store, gateway Gateway, writer confirmationWriter, interval time.Duration, logger *zap.Logger) *StatusPoller {
	return &StatusPoller{
		store:    store,
		gateway:  gateway,
		writer:   writer,
		interval: interval,
		logger:   logger,
	}
}

func (p *StatusPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.checkPending(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *StatusPoller) checkPending(ctx context.Context) {
	transactionIDs, err := p.store.PendingCharges(ctx)
	if err != nil {
		p.logger.Error("failed to list pending charges", zap.Error(err))
		return
	}

	for _, transactionID := range transactionIDs {
		status := p.gateway.CheckStatus(ctx, transactionID)
		if !status.IsPaid {
			continue
		}

		sessionID, err := p.store.SessionForCharge(ctx, transactionID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				// session aged out while the charge was pending; nothing to confirm
				p.logger.Warn("no session for paid charge", zap.String("transaction_id", transactionID))
				if errRemove := p.store.RemovePendingCharge(ctx, transactionID); errRemove != nil {
					p.logger.Error("failed to drop orphan charge", zap.Error(errRemove))
				}
				continue
			}
			p.logger.Error("failed to resolve session for charge", zap.String("transaction_id", transactionID), zap.Error(err))
			continue
		}

		if errPublish := p.publish(ctx, sessionID, transactionID, status.Status); errPublish != nil {
			p.logger.Error("failed to publish confirmation",
				zap.String("transaction_id", transactionID), zap.Error(errPublish))
			continue // leave it pending, next tick retries
		}

		if errRemove := p.store.RemovePendingCharge(ctx, transactionID); errRemove != nil {
			p.logger.Error("failed to remove pending charge",
				zap.String("transaction_id", transactionID), zap.Error(errRemove))
		}

		p.logger.Info("payment confirmed",
			zap.String("session_id", sessionID),
			zap.String("transaction_id", transactionID),
			zap.String("status", status.Status))
	}
}

func (p *StatusPoller) publish(ctx context.Context, sessionID, transactionID, status string) error {
	payload, err := json.Marshal(Confirmation{
		SessionID:     sessionID,
		TransactionID: transactionID,
		Status:        status,
		ConfirmedAt:   time.Now(),
	})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(sessionID), // per-session ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("payment.confirmed")},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}
