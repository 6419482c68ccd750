package services

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	applog "modacart/internal/log"
	"modacart/internal/repos"
)

type OrderStatus int

const (
	// OrderPlaced carries a non-empty confirmation.
	OrderPlaced OrderStatus = iota
	// MissingAddress and MissingPaymentMethod are normal decision branches
	// that send the user to the matching entry flow.
	MissingAddress
	MissingPaymentMethod
)

type OrderResult struct {
	Status       OrderStatus
	OrderID      string
	Confirmation string // 6-digit display code shown to the user
}

type CheckoutService struct {
	Carts   *repos.CartRepo
	Profile *ProfileService
}

func NewCheckoutService(carts *repos.CartRepo, profile *ProfileService) *CheckoutService {
	return &CheckoutService{Carts: carts, Profile: profile}
}

// PlaceOrder checks the stored profile, issues a confirmation and clears the
// cart. No payment gateway is involved, so once both records are present the
// order cannot fail for payment reasons.
func (s *CheckoutService) PlaceOrder() (OrderResult, error) {
	addr, err := s.Profile.ShippingAddress()
	if err != nil {
		return OrderResult{}, err
	}
	if addr == nil {
		return OrderResult{Status: MissingAddress}, nil
	}

	pay, err := s.Profile.PaymentMethod()
	if err != nil {
		return OrderResult{}, err
	}
	if pay == nil {
		return OrderResult{Status: MissingPaymentMethod}, nil
	}

	res := OrderResult{
		Status:       OrderPlaced,
		OrderID:      uuid.NewString(),
		Confirmation: fmt.Sprintf("%06d", rand.IntN(1000000)),
	}
	// The clear is the only durable side effect after success is decided.
	// A failure here must not take back the confirmation already owed to
	// the user; Clear re-runs safely on the next launch.
	if err := s.Carts.Clear(); err != nil {
		applog.Error("checkout.clear", err, map[string]any{"order_id": res.OrderID})
	} else {
		applog.Info("checkout.place", map[string]any{"order_id": res.OrderID})
	}
	return res, nil
}
