package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrInvalidShipmentStatus
	ErrInsufficientStock
	ErrClaimAlreadyRedeemed
	ErrInvalidQuantity
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrInvalidShipmentStatus: "invalid shipment status",
	ErrInsufficientStock:     "insufficient stock",
	ErrClaimAlreadyRedeemed:  "claim already redeemed",
	ErrInvalidQuantity:       "quantity must be greater than zero",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrInvalidShipmentStatus: http.StatusBadRequest,
	ErrInsufficientStock:     http.StatusBadRequest,
	ErrClaimAlreadyRedeemed:  http.StatusConflict,
	ErrInvalidQuantity:       http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrInvalidShipmentStatus: "0004",
	ErrInsufficientStock:     "0005",
	ErrClaimAlreadyRedeemed:  "0006",
	ErrInvalidQuantity:       "0007",
}
