package alert

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATSPublisher publishes events on a subject of an existing connection.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
	owned   bool
}

// NewNATSPublisher reuses conn; Close leaves it open.
func NewNATSPublisher(conn *nats.Conn, subject string) *NATSPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSPublisher{conn: conn, subject: subject}
}

// DialNATSPublisher opens a dedicated connection that Close releases.
func DialNATSPublisher(url, subject string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("wellness-alerts"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	p := NewNATSPublisher(conn, subject)
	p.owned = true
	return p, nil
}

func (p *NATSPublisher) PublishUrgent(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	if err := p.conn.Publish(p.subject, body); err != nil {
		return fmt.Errorf("failed to publish alert: %w", err)
	}
	return nil
}

func (p *NATSPublisher) Close() error {
	if p.owned && p.conn != nil {
		p.conn.Close()
	}
	return nil
}
