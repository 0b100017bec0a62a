package syncing

import (
	"errors"
)

var (
	ErrInvalidDate            = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidHistoricalRange = errors.New("start date must be before or equal to end date")
	ErrInvalidBatchHours      = errors.New("batch hours must be between 1 and 168")
	ErrInvalidBatchLimit      = errors.New("batch limit must not be negative")
	ErrNoCampaigns            = errors.New("no campaigns found, run a full sync first")
	ErrNoBatchCompleted       = errors.New("no historical batch completed")
)
