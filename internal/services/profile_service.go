package services

import (
	"encoding/json"

	"github.com/go-faster/errors"

	"modacart/internal/domain"
	"modacart/internal/validate"
)

const (
	keyShippingAddress = "shipping_address"
	keyPaymentMethod   = "payment_method"
)

// ProfileVault is the opaque secure key-value capability the profile flows
// write through. repos.ProfileRepo is the sealed sqlite implementation.
type ProfileVault interface {
	Put(key string, blob []byte) error
	Get(key string) ([]byte, bool, error)
	Delete(key string) error
}

var ErrInvalidProfile = errors.New("profile: invalid field")

type ProfileService struct{ Vault ProfileVault }

func NewProfileService(v ProfileVault) *ProfileService { return &ProfileService{Vault: v} }

func (s *ProfileService) SaveShippingAddress(a domain.ShippingAddress) error {
	if _, ok := validate.Name(a.Name); !ok {
		return errors.Wrap(ErrInvalidProfile, "name")
	}
	if a.Street == "" || a.City == "" {
		return errors.Wrap(ErrInvalidProfile, "address")
	}
	if _, ok := validate.Zip(a.Zip); !ok {
		return errors.Wrap(ErrInvalidProfile, "zip")
	}
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return s.Vault.Put(keyShippingAddress, b)
}

// ShippingAddress returns the stored address, or nil when none was ever
// saved.
func (s *ProfileService) ShippingAddress() (*domain.ShippingAddress, error) {
	blob, ok, err := s.Vault.Get(keyShippingAddress)
	if err != nil || !ok {
		return nil, err
	}
	var a domain.ShippingAddress
	if err := json.Unmarshal(blob, &a); err != nil {
		return nil, errors.Wrap(err, "decode shipping address")
	}
	return &a, nil
}

func (s *ProfileService) SavePaymentMethod(p domain.PaymentMethod) error {
	if _, ok := validate.Name(p.Cardholder); !ok {
		return errors.Wrap(ErrInvalidProfile, "cardholder")
	}
	number, ok := validate.CardNumber(p.Number)
	if !ok {
		return errors.Wrap(ErrInvalidProfile, "card number")
	}
	p.Number = number
	if _, ok := validate.Expiry(p.Expiry); !ok {
		return errors.Wrap(ErrInvalidProfile, "expiry")
	}
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.Vault.Put(keyPaymentMethod, b)
}

// PaymentMethod returns the stored card record, or nil when none was ever
// saved.
func (s *ProfileService) PaymentMethod() (*domain.PaymentMethod, error) {
	blob, ok, err := s.Vault.Get(keyPaymentMethod)
	if err != nil || !ok {
		return nil, err
	}
	var p domain.PaymentMethod
	if err := json.Unmarshal(blob, &p); err != nil {
		return nil, errors.Wrap(err, "decode payment method")
	}
	return &p, nil
}

func (s *ProfileService) DeleteShippingAddress() error { return s.Vault.Delete(keyShippingAddress) }
func (s *ProfileService) DeletePaymentMethod() error   { return s.Vault.Delete(keyPaymentMethod) }
