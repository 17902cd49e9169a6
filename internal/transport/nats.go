package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/nens2012/life-aid-nexus/internal/config"
	"github.com/nens2012/life-aid-nexus/internal/handlers"
	"github.com/nens2012/life-aid-nexus/internal/models"
)

// QueueGroup spreads requests across service replicas.
const QueueGroup = "wellness-assess"

type NATSTransport struct {
	conn    *nats.Conn
	sub     *nats.Subscription
	config  *config.Config
	handler *handlers.IntentHandler
	logger  *zap.Logger
}

// NewNATSTransport connects to NATS; Start begins serving requests.
func NewNATSTransport(cfg *config.Config, logger *zap.Logger) (*NATSTransport, error) {
	// Connect to NATS
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name(cfg.ServiceName),
		nats.Timeout(cfg.NatsTimeout),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1), // Infinite reconnects
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("connected to NATS", zap.String("url", cfg.NatsURL))

	return &NATSTransport{
		conn:   conn,
		config: cfg,
		logger: logger,
	}, nil
}

// Conn exposes the connection so other components can publish on it.
func (nt *NATSTransport) Conn() *nats.Conn { return nt.conn }

func (nt *NATSTransport) Start(handler *handlers.IntentHandler) error {
	nt.handler = handler
	sub, err := nt.conn.QueueSubscribe(nt.config.NatsRequestSubject, QueueGroup, nt.handleIntentRequest)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", nt.config.NatsRequestSubject, err)
	}
	nt.sub = sub

	nt.logger.Info("subscribed",
		zap.String("subject", nt.config.NatsRequestSubject),
		zap.String("queue", QueueGroup))
	return nil
}

func (nt *NATSTransport) handleIntentRequest(msg *nats.Msg) {
	request, err := decodeRequest(msg.Data)
	if err != nil {
		nt.logger.Warn("error parsing request", zap.Error(err))
		nt.sendResponse(msg, nt.handler.CreateErrorResponse(request.SessionID, request.Language,
			models.ErrorParseError, "Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), nt.config.RequestTimeout)
	defer cancel()

	response, err := nt.handler.ProcessIntent(ctx, request)
	if err != nil {
		nt.logger.Warn("error processing intent", zap.String("session_id", request.SessionID), zap.Error(err))
	}
	nt.sendResponse(msg, response)
}

// decodeRequest parses a request payload. On failure the returned request
// still carries whatever session id and language could be read.
func decodeRequest(data []byte) (*models.IntentRequest, error) {
	var request models.IntentRequest
	if err := json.Unmarshal(data, &request); err != nil {
		var partial struct {
			SessionID string `json:"session_id"`
			Language  string `json:"language"`
		}
		_ = json.Unmarshal(data, &partial)
		return &models.IntentRequest{SessionID: partial.SessionID, Language: partial.Language},
			fmt.Errorf("decode request: %w", err)
	}
	return &request, nil
}

func (nt *NATSTransport) sendResponse(msg *nats.Msg, response *models.IntentResponse) {
	responseData, err := json.Marshal(response)
	if err != nil {
		nt.logger.Error("failed to marshal response", zap.Error(err))
		return
	}

	if err := msg.Respond(responseData); err != nil {
		nt.logger.Error("failed to send response", zap.Error(err))
		return
	}

	nt.logger.Debug("response sent",
		zap.String("session_id", response.SessionID),
		zap.String("status", response.Status))
}

func (nt *NATSTransport) Close() error {
	if nt.conn == nil {
		return nil
	}
	// Drain flushes in-flight requests on the subscription, then closes the connection.
	if err := nt.conn.Drain(); err != nil {
		nt.logger.Warn("failed to drain NATS connection, closing", zap.Error(err))
		nt.conn.Close()
		return err
	}
	nt.logger.Info("NATS connection draining")
	return nil
}
