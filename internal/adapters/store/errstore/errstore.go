package errstore

import "errors"

var (
	ErrNotFoundData    = errors.New("data not found")
	ErrEmailNotUnique  = errors.New("email already registered")
	ErrPromoCodeUsed   = errors.New("promo code already used")
	ErrOrderIDNotFresh = errors.New("order id already exists")
)
