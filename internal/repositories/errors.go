package repositories

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrJobNotFound          = errors.New("job not found")
	ErrRatingNotFound       = errors.New("rating not found")
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")
	ErrDuplicateRating      = errors.New("active rating already exists for this transaction")
)
