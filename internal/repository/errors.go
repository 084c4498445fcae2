package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("duplicate record")
	ErrTourUnavailable    = errors.New("tour unavailable")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrDriverConflict     = errors.New("driver has an overlapping booking")
	ErrPaymentExists      = errors.New("payment already exists for booking")
	ErrRefundConflict     = errors.New("payment not eligible for refund")
	ErrAlreadyProcessed   = errors.New("request already processed")
)

// isDuplicateErr recognizes unique-constraint violations from both backends:
// pgconn error code 23505 on postgres and the sqlite message in tests.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
