package delivery

import "errors"

// ErrDelivery marks any failure of a delivery channel operation, provider
// call included.
var ErrDelivery = errors.New("delivery failed")
