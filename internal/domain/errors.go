package domain

import "errors"

// Error taxonomy surfaced by the auction core. All of these are terminal from
// the caller's perspective except ErrAuctionNotFinished, which is a "try
// later" condition. Losing a concurrent close race is not an error at all.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrAuctionClosed       = errors.New("auction is closed")
	ErrIneligibleEquipment = errors.New("equipment is not eligible")
	ErrNotAuthorized       = errors.New("not authorized to bid")
	ErrDuplicateBid        = errors.New("bid already exists for this equipment")
	ErrAuctionNotFinished  = errors.New("auction is not finished")
)
