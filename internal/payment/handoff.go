// Package payment drives the provider hand-off after an order is
// placed: open a payment session, point the customer at the provider's
// hosted page and wait for the payment to settle.
package payment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/store"
)

// ErrTimeout reports that the payment never reached a terminal status
// within the polling window.
var ErrTimeout = errors.New("payment status polling timed out")

// Keys the provider uses for its hosted checkout URL, in preference
// order.
var checkoutURLKeys = []string{
	"desktop_web_checkout_url",
	"mobile_web_checkout_url",
	"checkout_url",
	"qr_string",
}

// Handoff owns the checkout-to-provider flow.
type Handoff struct {
	payments *store.PaymentStore
	cfg      *config.PaymentConfig
	out      io.Writer
	logger   *slog.Logger
}

func NewHandoff(payments *store.PaymentStore, cfg *config.PaymentConfig, out io.Writer, logger *slog.Logger) *Handoff {
	return &Handoff{payments: payments, cfg: cfg, out: out, logger: logger}
}

// Start opens a provider session for the amount and shows the customer
// where to pay. The hosted checkout URL is printed and rendered as a
// scannable QR code.
func (h *Handoff) Start(ctx context.Context, input repository.PaymentRequestInput) (*entity.Payment, error) {
	if input.Currency == "" {
		input.Currency = h.cfg.Currency
	}

	request, err := h.payments.CreatePaymentRequest(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "create payment request")
	}

	h.logger.Info("payment session opened",
		slog.Int("payment_id", request.Payment.ID),
		slog.String("provider_status", request.XenditStatus),
	)

	if url := checkoutURL(request.Actions); url != "" {
		fmt.Fprintf(h.out, "Complete your payment at:\n  %s\n\n", url)
		if err := h.renderQR(url); err != nil {
			// The URL alone is enough to proceed.
			h.logger.Warn("render checkout QR", slog.Any("error", err))
		}
	}

	return &request.Payment, nil
}

// Await polls the provider status until the payment settles one way or
// the other, or the polling window closes.
func (h *Handoff) Await(ctx context.Context, paymentID int) (*entity.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, h.cfg.PollTimeout)
	defer cancel()

	ticker := time.NewTicker(h.cfg.PollInterval)
	defer ticker.Stop()

	for {
		status, err := h.payments.CheckPaymentStatus(ctx, paymentID)
		if err != nil {
			return nil, errors.Wrap(err, "check payment status")
		}
		if status.Payment.Terminal() {
			h.logger.Info("payment settled",
				slog.Int("payment_id", status.Payment.ID),
				slog.String("status", status.Payment.Status),
			)
			return &status.Payment, nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, ErrTimeout
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (h *Handoff) renderQR(url string) error {
	code, err := qrcode.New(url, qrcode.Low)
	if err != nil {
		return errors.Wrap(err, "encode checkout URL")
	}
	_, err = io.WriteString(h.out, code.ToSmallString(false))

	return err
}

func checkoutURL(actions map[string]any) string {
	for _, key := range checkoutURLKeys {
		if value, ok := actions[key].(string); ok && value != "" {
			return value
		}
	}

	return ""
}
