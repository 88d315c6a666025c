package availability

import "errors"

var (
	ErrUndefinedStatus = errors.New("status does not affect driver availability")
	ErrMissingDelivery = errors.New("delivery id and status are required")
)
