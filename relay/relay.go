// Package relay is a local utility that receives Paystack webhook
// callbacks on one endpoint and re-broadcasts them to registered local
// listeners, logging the delivery outcome per listener.
package relay

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/anyulbade/paystack-go/webhook"
)

// maxConcurrentDeliveries caps outbound fan-out regardless of how many
// listeners are configured.
const maxConcurrentDeliveries = 50

const deliveryTimeout = 15 * time.Second

// Outcome records one attempted delivery to one listener.
type Outcome struct {
	Listener   string
	StatusCode int
	Err        error
	Duration   time.Duration
}

// Delivered reports whether the listener acknowledged the payload.
func (o Outcome) Delivered() bool {
	return o.Err == nil && o.StatusCode >= 200 && o.StatusCode < 300
}

// Relay receives webhooks and fans them out. All fields are set at
// construction and only read afterwards.
type Relay struct {
	cfg    Config
	http   *http.Client
	sem    *semaphore.Weighted
	logger zerolog.Logger
	wg     sync.WaitGroup
}

// New validates cfg and builds a Relay.
func New(cfg Config, logger zerolog.Logger) (*Relay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Relay{
		cfg:    cfg,
		http:   &http.Client{Timeout: deliveryTimeout},
		sem:    semaphore.NewWeighted(maxConcurrentDeliveries),
		logger: logger,
	}, nil
}

// Router builds the relay's HTTP surface.
func (r *Relay) Router() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(r.logger))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.POST("/webhook", r.handleWebhook)

	return router
}

// Wait blocks until every in-flight broadcast has finished. Used on
// shutdown and in tests.
func (r *Relay) Wait() {
	r.wg.Wait()
}

// handleWebhook verifies the payload signature when a secret is configured,
// acknowledges immediately, and broadcasts in the background.
func (r *Relay) handleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if r.cfg.SecretKey != "" {
		signature := c.GetHeader(webhook.SignatureHeader)
		if !webhook.ValidateSignature(payload, signature, r.cfg.SecretKey) {
			r.logger.Warn().Str("ip", c.ClientIP()).Msg("rejected webhook with bad signature")
			c.Status(http.StatusUnauthorized)
			return
		}
	}

	deliveryID := uuid.NewString()
	if r.cfg.LogPayloads {
		r.logger.Info().
			Str("delivery_id", deliveryID).
			RawJSON("payload", payload).
			Msg("received webhook")
	}

	c.Status(http.StatusOK)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.Broadcast(context.Background(), deliveryID, payload)
	}()
}

// Broadcast delivers payload to every configured listener, at most
// maxConcurrentDeliveries at a time, and returns one outcome per listener
// in listener order after all deliveries finish.
func (r *Relay) Broadcast(ctx context.Context, deliveryID string, payload []byte) []Outcome {
	listeners := r.cfg.Listeners()
	outcomes := make([]Outcome, len(listeners))

	var wg sync.WaitGroup
	for i, listener := range listeners {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			outcomes[i] = Outcome{Listener: listener, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, listener string) {
			defer wg.Done()
			defer r.sem.Release(1)
			outcomes[i] = r.deliver(ctx, listener, payload)
		}(i, listener)
	}
	wg.Wait()

	delivered := 0
	for _, o := range outcomes {
		delivered += boolToInt(o.Delivered())
		r.logOutcome(deliveryID, o)
	}
	r.logger.Info().
		Str("delivery_id", deliveryID).
		Int("listeners", len(listeners)).
		Int("delivered", delivered).
		Msg("broadcast complete")

	return outcomes
}

func (r *Relay) deliver(ctx context.Context, listener string, payload []byte) Outcome {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, listener, bytes.NewReader(payload))
	if err != nil {
		return Outcome{Listener: listener, Err: err, Duration: time.Since(start)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return Outcome{Listener: listener, Err: err, Duration: time.Since(start)}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return Outcome{Listener: listener, StatusCode: resp.StatusCode, Duration: time.Since(start)}
}

func (r *Relay) logOutcome(deliveryID string, o Outcome) {
	event := r.logger.Info()
	switch {
	case o.Err != nil:
		event = r.logger.Error().Err(o.Err)
	case !o.Delivered():
		event = r.logger.Warn()
	}
	event.
		Str("delivery_id", deliveryID).
		Str("listener", o.Listener).
		Int("status", o.StatusCode).
		Dur("latency", o.Duration).
		Msg("delivery")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
