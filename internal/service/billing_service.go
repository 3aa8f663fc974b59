package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/societyops/maintenance-engine/internal/config"
	"github.com/societyops/maintenance-engine/internal/domain"
	"github.com/societyops/maintenance-engine/internal/gateway"
	"github.com/societyops/maintenance-engine/internal/repository"
	customError "github.com/societyops/maintenance-engine/pkg/errors"
	"github.com/societyops/maintenance-engine/pkg/utils"
)

type BillingService struct {
	residentRepo repository.ResidentRepository
	societyRepo  repository.SocietyRepository
	gateway      gateway.Client
	redis        *redis.Client
	config       *config.Config
	logger       zerolog.Logger

	// injectable clock for tests
	now func() time.Time
}

func NewBillingService(
	residentRepo repository.ResidentRepository,
	societyRepo repository.SocietyRepository,
	gatewayClient gateway.Client,
	redisClient *redis.Client,
	cfg *config.Config,
	logger zerolog.Logger,
) *BillingService {
	return &BillingService{
		residentRepo: residentRepo,
		societyRepo:  societyRepo,
		gateway:      gatewayClient,
		redis:        redisClient,
		config:       cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// CalculateBill computes the maintenance bill for a resident against a
// society's charge schedule. Pure over its inputs plus the supplied clock.
//
// Months owed are counted from the last payment date, or from account
// creation when no payment exists yet; a first bill always includes the
// joining month. Zero elapsed months means the resident has prepaid, so the
// monthly total is returned as credit instead of being charged again.
func CalculateBill(resident *domain.Resident, schedule domain.ChargeSchedule, now time.Time) domain.BillCalculation {
	baseline := resident.CreatedAt
	totalMonths := 0

	if lp := resident.LastPayment(); lp != nil {
		baseline = lp.Date
		totalMonths = utils.MonthDiff(baseline, now)
	} else {
		totalMonths = utils.MonthDiff(baseline, now) + 1
	}

	monthlyTotal := schedule.MonthlyTotal()

	credit := decimal.Zero
	due := decimal.Zero

	switch {
	case totalMonths == 0:
		credit = monthlyTotal
	case totalMonths > 1:
		due = decimal.NewFromInt(int64(totalMonths - 1)).Mul(monthlyTotal)
	}

	return domain.BillCalculation{
		TotalMonths:  totalMonths,
		MonthlyTotal: monthlyTotal,
		Credit:       credit,
		Due:          due,
		TotalAmount:  monthlyTotal.Add(due).Sub(credit),
	}
}

// ComputeSignature derives the expected callback signature:
// hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
func ComputeSignature(secret, gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// GetBill returns the bill view for a resident
func (s *BillingService) GetBill(ctx context.Context, residentID uuid.UUID) (*domain.BillResponse, error) {
	resident, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapResidentNotFound(residentID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	if !resident.IsApproved() {
		return nil, customError.WrapResidentNotApproved(residentID.String())
	}

	society, err := s.societyRepo.GetByName(ctx, resident.SocietyName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapSocietyNotFound(resident.SocietyName)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	bill := CalculateBill(resident, society.MaintenanceBill, s.now())

	return &domain.BillResponse{
		Resident:     resident,
		Society:      society,
		Bill:         bill,
		LineItems:    society.MaintenanceBill,
		Receipt:      resident.LastPayment(),
		GatewayKeyID: s.config.Gateway.KeyID,
	}, nil
}

// CreateOrder creates a payment-gateway order and records the pending-payment
// marker on the resident. The marker is written only after the gateway call
// succeeds, via a conditional update keyed on the previously observed invoice.
func (s *BillingService) CreateOrder(ctx context.Context, residentID uuid.UUID, request *domain.CreateOrderRequest) (*domain.CreateOrderResponse, error) {
	if !request.Amount.IsPositive() {
		return nil, customError.WrapInvalidAmount(request.Amount.String())
	}

	resident, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapResidentNotFound(residentID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	society, err := s.societyRepo.GetByName(ctx, request.SocietyName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapSocietyNotFound(request.SocietyName)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	if !resident.IsApproved() {
		return nil, customError.WrapResidentNotApproved(residentID.String())
	}

	now := s.now()
	receipt := utils.GenerateReceiptNumber(resident.ID.String(), now)

	// Gateway amounts are in the smallest currency unit
	subunits := request.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	order, err := s.gateway.CreateOrder(ctx, gateway.OrderRequest{
		Amount:   subunits,
		Currency: s.config.Billing.Currency,
		Receipt:  receipt,
		Notes: map[string]string{
			"societyName": society.SocietyName,
			"userEmail":   resident.Username,
		},
	})
	if err != nil {
		// No marker written; the resident record stays untouched
		return nil, customError.WrapGatewayError(err)
	}

	prevInvoice := ""
	if resident.LastPaymentInvoice.Valid {
		prevInvoice = resident.LastPaymentInvoice.String
	}

	marker := &domain.LastPayment{
		Date:    now,
		Amount:  request.Amount,
		Invoice: order.ID,
	}

	updated, err := s.residentRepo.SetPendingPayment(ctx, resident.ID, prevInvoice, marker)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if !updated {
		return nil, customError.WrapOrderConflict(resident.ID.String())
	}

	s.logger.Info().
		Str("resident_id", resident.ID.String()).
		Str("order_id", order.ID).
		Int64("amount", order.Amount).
		Msg("payment order created")

	return &domain.CreateOrderResponse{
		ID:           order.ID,
		Amount:       order.Amount,
		Currency:     order.Currency,
		GatewayKeyID: s.config.Gateway.KeyID,
	}, nil
}

// VerifyPayment validates a gateway callback and settles the pending payment.
// Settlement happens exactly once per order id: the conditional update refuses
// a second valid callback, and the Redis guard rejects a replayed payment id.
func (s *BillingService) VerifyPayment(ctx context.Context, request *domain.VerifyPaymentRequest) (*domain.VerifyPaymentResponse, error) {
	resident, err := s.residentRepo.GetByPendingInvoice(ctx, request.GatewayOrderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.NewBusinessError(
				customError.ErrCodeResidentNotFound,
				fmt.Sprintf("No resident found for order %s", request.GatewayOrderID),
				customError.ErrResidentNotFound,
			)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	expected := ComputeSignature(s.config.Gateway.KeySecret, request.GatewayOrderID, request.GatewayPaymentID)

	if !hmac.Equal([]byte(expected), []byte(request.Signature)) {
		s.logger.Warn().
			Str("order_id", request.GatewayOrderID).
			Str("resident_id", resident.ID.String()).
			Msg("payment signature mismatch")
		return nil, customError.WrapInvalidSignature(request.GatewayOrderID)
	}

	guardKey := "payment:settled:" + request.GatewayPaymentID
	guardClaimed := false
	if s.redis != nil {
		ok, err := s.redis.SetNX(ctx, guardKey, request.GatewayOrderID, s.config.GetReplayGuardTTL()).Result()
		if err != nil {
			// The conditional update below is the authoritative guard;
			// losing the cache only loses the cross-order replay check
			s.logger.Warn().Err(err).Msg("replay guard unavailable")
		} else if !ok {
			return nil, customError.WrapPaymentAlreadySettled(request.GatewayOrderID)
		} else {
			guardClaimed = true
		}
	}

	settled, err := s.residentRepo.SettlePayment(ctx, request.GatewayOrderID)
	if err != nil {
		if guardClaimed {
			// Release the guard so the gateway's retry of this callback
			// can still settle the payment
			if delErr := s.redis.Del(ctx, guardKey).Err(); delErr != nil {
				s.logger.Warn().Err(delErr).Msg("replay guard release failed")
			}
		}
		return nil, customError.WrapDatabaseError(err)
	}
	if !settled {
		return nil, customError.WrapPaymentAlreadySettled(request.GatewayOrderID)
	}

	receipt := utils.GenerateReceiptNumber(resident.ID.String(), s.now())

	s.logger.Info().
		Str("resident_id", resident.ID.String()).
		Str("order_id", request.GatewayOrderID).
		Str("receipt", receipt).
		Msg("payment verified")

	return &domain.VerifyPaymentResponse{
		Success:       true,
		Message:       "Payment verified and processed successfully",
		ReceiptNumber: receipt,
	}, nil
}

// SweepArrears walks all approved residents and logs a reminder for everyone
// with an outstanding due. Returns the number of reminders issued.
func (s *BillingService) SweepArrears(ctx context.Context) (int, error) {
	residents, err := s.residentRepo.ListApproved(ctx)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	schedules := make(map[string]domain.ChargeSchedule)
	reminded := 0

	for _, resident := range residents {
		schedule, ok := schedules[resident.SocietyName]
		if !ok {
			society, err := s.societyRepo.GetByName(ctx, resident.SocietyName)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					// Orphaned resident; skip the society rather than
					// abort the sweep
					schedules[resident.SocietyName] = nil
					continue
				}
				return reminded, customError.WrapDatabaseError(err)
			}
			schedule = society.MaintenanceBill
			schedules[resident.SocietyName] = schedule
		}
		if schedule == nil {
			continue
		}

		bill := CalculateBill(resident, schedule, s.now())
		if bill.Due.IsPositive() {
			s.logger.Info().
				Str("resident_id", resident.ID.String()).
				Str("society", resident.SocietyName).
				Str("due", bill.Due.String()).
				Int("total_months", bill.TotalMonths).
				Msg("maintenance arrears reminder")
			reminded++
		}
	}

	return reminded, nil
}
