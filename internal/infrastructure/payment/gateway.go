package payment

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techzone/backend/internal/domain/order"
	"github.com/techzone/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SimulatedGateway approves charges at a configured rate after a
// configured processing delay. It stands in for a real processor in
// every environment.
type SimulatedGateway struct {
	delay       time.Duration
	successRate float64
	log         *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedGateway creates a gateway from payment configuration
func NewSimulatedGateway(cfg config.PaymentConfig, log *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		delay:       cfg.ProcessingDelay,
		successRate: cfg.SuccessRate,
		log:         log,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSimulatedGatewayWithSource creates a gateway with a fixed random
// source so tests get deterministic outcomes.
func NewSimulatedGatewayWithSource(cfg config.PaymentConfig, log *zap.Logger, src rand.Source) *SimulatedGateway {
	g := NewSimulatedGateway(cfg, log)
	g.rng = rand.New(src)
	return g
}

var _ order.PaymentGateway = (*SimulatedGateway)(nil)

// Charge simulates capturing the amount. The outcome is drawn from the
// configured success rate; a declined charge is not an error.
func (g *SimulatedGateway) Charge(ctx context.Context, amount decimal.Decimal, method order.PaymentMethod) (order.ChargeResult, error) {
	if err := g.wait(ctx); err != nil {
		return order.ChargeResult{}, err
	}

	// Cash on delivery is settled offline, never declined here.
	approved := method == order.PaymentMethodCashOnDelivery || g.roll() < g.successRate

	result := order.ChargeResult{Approved: approved}
	if approved {
		result.TransactionID = newTransactionID()
	}

	g.log.Info("charge processed",
		zap.String("method", string(method)),
		zap.String("amount", amount.String()),
		zap.Bool("approved", approved),
		zap.String("transaction_id", result.TransactionID),
	)
	return result, nil
}

// Refund simulates returning a captured amount. Refunds always succeed.
func (g *SimulatedGateway) Refund(ctx context.Context, transactionID string, amount decimal.Decimal) error {
	if err := g.wait(ctx); err != nil {
		return err
	}
	g.log.Info("refund processed",
		zap.String("transaction_id", transactionID),
		zap.String("amount", amount.String()),
	)
	return nil
}

func (g *SimulatedGateway) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *SimulatedGateway) roll() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func newTransactionID() string {
	return fmt.Sprintf("TXN-%s", uuid.New().String())
}
