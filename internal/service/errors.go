package service

import "errors"

// ErrInvalidInput indicates a malformed amount or currency code.
var ErrInvalidInput = errors.New("invalid input")

// ErrConversionFailed indicates no rate could be obtained for the requested pair.
var ErrConversionFailed = errors.New("conversion failed")

// ErrRatesUnavailable indicates the provider's rate table could not be fetched.
var ErrRatesUnavailable = errors.New("rates unavailable")
