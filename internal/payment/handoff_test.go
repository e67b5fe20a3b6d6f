package payment

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentRepo struct {
	repository.PaymentRepository

	request repository.PaymentRequest
	checks  atomic.Int32
	settle  int32 // number of pending polls before the payment reads paid
}

func (f *fakePaymentRepo) CreateRequest(ctx context.Context, _ repository.PaymentRequestInput) (repository.PaymentRequest, error) {
	return f.request, nil
}

func (f *fakePaymentRepo) CheckStatus(ctx context.Context, id int) (repository.PaymentStatus, error) {
	status := entity.PaymentStatusPending
	if f.checks.Add(1) > f.settle {
		status = entity.PaymentStatusPaid
	}

	return repository.PaymentStatus{
		Payment: entity.Payment{ID: id, Status: status},
	}, nil
}

func testHandoff(repo repository.PaymentRepository, out io.Writer, cfg *config.PaymentConfig) *Handoff {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	payments := store.NewPaymentStore(repo, store.NewDispatcher())

	return NewHandoff(payments, cfg, out, logger)
}

func TestHandoff_StartRendersCheckoutURL(t *testing.T) {
	repo := &fakePaymentRepo{
		request: repository.PaymentRequest{
			Payment: entity.Payment{ID: 12, Status: entity.PaymentStatusPending},
			Actions: map[string]any{
				"desktop_web_checkout_url": "https://pay.example/session/abc",
			},
			XenditStatus: "PENDING",
		},
	}
	var out bytes.Buffer
	handoff := testHandoff(repo, &out, &config.PaymentConfig{Currency: "PHP"})

	opened, err := handoff.Start(context.Background(), repository.PaymentRequestInput{Amount: 1120})
	require.NoError(t, err)

	assert.Equal(t, 12, opened.ID)
	assert.Contains(t, out.String(), "https://pay.example/session/abc")
	// The QR render is tall; anything beyond the URL line is the code.
	assert.Greater(t, len(out.String()), 200)
}

func TestHandoff_StartWithoutActionsStaysQuiet(t *testing.T) {
	repo := &fakePaymentRepo{
		request: repository.PaymentRequest{
			Payment: entity.Payment{ID: 9, Status: entity.PaymentStatusPending},
		},
	}
	var out bytes.Buffer
	handoff := testHandoff(repo, &out, &config.PaymentConfig{})

	_, err := handoff.Start(context.Background(), repository.PaymentRequestInput{Amount: 50})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestHandoff_AwaitPollsUntilSettled(t *testing.T) {
	repo := &fakePaymentRepo{settle: 2}
	handoff := testHandoff(repo, io.Discard, &config.PaymentConfig{
		PollInterval: time.Millisecond,
		PollTimeout:  time.Second,
	})

	settled, err := handoff.Await(context.Background(), 12)
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusPaid, settled.Status)
	assert.GreaterOrEqual(t, repo.checks.Load(), int32(3))
}

func TestHandoff_AwaitTimesOut(t *testing.T) {
	repo := &fakePaymentRepo{settle: 1 << 30} // never settles
	handoff := testHandoff(repo, io.Discard, &config.PaymentConfig{
		PollInterval: time.Millisecond,
		PollTimeout:  20 * time.Millisecond,
	})

	_, err := handoff.Await(context.Background(), 12)
	assert.ErrorIs(t, err, ErrTimeout)
}
