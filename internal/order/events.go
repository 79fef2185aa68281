package order

import (
	"context"
	"time"
)

const (
	EventOrderSaved   = "OrderSaved"
	EventOrderDeleted = "OrderDeleted"
)

// EventPublisher delivers order events keyed by order id.
type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type OrderEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID        int64  `json:"id"`
	NoPI      string `json:"no_pi,omitempty"`
	BuyerID   *int64 `json:"buyer_id,omitempty"`
	BuyerName string `json:"buyer_name,omitempty"`
	Currency  string `json:"currency,omitempty"`
	ItemCount int    `json:"item_count"`
	TotalCBM  string `json:"total_cbm,omitempty"`
	TotalUSD  string `json:"total_usd,omitempty"`
}
