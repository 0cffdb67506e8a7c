package ingestion

import (
	"MarginEngine/internal/observability"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
)

// OutboundPublisher publishes committed account updates to NATS for
// downstream consumers (alerting, dashboards). Updates are published
// after the engine commits them; a dropped publish is non-fatal since
// consumers can query the latest state directly.
// Subjects follow the pattern: margin.engine.updates.{account_id}
type OutboundPublisher struct {
	js        jetstream.JetStream
	inputChan <-chan PublishableUpdate
	logger    zerolog.Logger
}

// SentinelFloat is a float64 that survives JSON encoding when it carries
// an IEEE infinity: encoding/json rejects Inf, so infinities render as the
// string "Infinity"/"-Infinity", matching protobuf's JSON mapping.
type SentinelFloat float64

func (f SentinelFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	default:
		return json.Marshal(v)
	}
}

func (f *SentinelFloat) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"Infinity"`:
		*f = SentinelFloat(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*f = SentinelFloat(math.Inf(-1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = SentinelFloat(v)
	return nil
}

// PublishableUpdate is a committed snapshot ready for outbound publishing.
// Deposits and borrows are UI-unit balances indexed by token index, for
// balance displays downstream. CollateralRatio and Leverage may carry the
// infinity sentinel (zero-liability accounts).
type PublishableUpdate struct {
	AccountID       string        `json:"account_id"`
	Version         uint64        `json:"version"`
	AssetsValue     float64       `json:"assets_value"`
	LiabsValue      float64       `json:"liabs_value"`
	Equity          float64       `json:"equity"`
	CollateralRatio SentinelFloat `json:"collateral_ratio"`
	Leverage        SentinelFloat `json:"leverage"`
	RiskStatus      string        `json:"risk_status"`
	PNL             float64       `json:"pnl"`
	Deposits        []float64     `json:"deposits"`
	Borrows         []float64     `json:"borrows"`
	ComputedAt      time.Time     `json:"computed_at"`
}

func NewOutboundPublisher(js jetstream.JetStream, inputChan <-chan PublishableUpdate) *OutboundPublisher {
	return &OutboundPublisher{
		js:        js,
		inputChan: inputChan,
		logger:    observability.NewLogger("publisher"),
	}
}

// Run starts the outbound publisher loop.
func (op *OutboundPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case u, ok := <-op.inputChan:
			if !ok {
				return nil
			}

			if err := op.publish(ctx, u); err != nil {
				op.logger.Warn().
					Str("account_id", u.AccountID).
					Uint64("version", u.Version).
					Err(err).
					Msg("outbound publish failed")
			}
		}
	}
}

func (op *OutboundPublisher) publish(ctx context.Context, u PublishableUpdate) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal update: %w", err)
	}

	subject := fmt.Sprintf("margin.engine.updates.%s", u.AccountID)
	_, err = op.js.Publish(ctx, subject, data)
	return err
}

// EnsureOutboundStream creates the outbound updates stream.
func EnsureOutboundStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      "MARGIN_ENGINE_UPDATES",
		Subjects:  []string{"margin.engine.updates.>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    72 * time.Hour,
		Replicas:  1,
	})
	if err != nil {
		return fmt.Errorf("create outbound stream: %w", err)
	}
	log.Println("INFO: ensured outbound stream MARGIN_ENGINE_UPDATES")
	return nil
}
