package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"converterservice/internal/service"
)

// ConvertRequest represents the request body for a conversion
type ConvertRequest struct {
	Amount       *Amount `json:"amount" swaggertype:"number" example:"100"`
	FromCurrency string  `json:"from_currency" example:"USD"`
	ToCurrency   string  `json:"to_currency" example:"EUR"`
}

// ConvertResponse represents a successful conversion
type ConvertResponse struct {
	Result       float64 `json:"result" example:"85.6"`
	FromCurrency string  `json:"from_currency" example:"USD"`
	ToCurrency   string  `json:"to_currency" example:"EUR"`
	Amount       float64 `json:"amount" example:"100"`
}

// CurrenciesResponse lists the supported currency codes
type CurrenciesResponse struct {
	Currencies []string `json:"currencies" example:"EUR,GBP,USD"`
	Fallback   bool     `json:"fallback" example:"false"`
}

var errAmountType = errors.New("amount must be a number or numeric string")

// Amount accepts either a JSON number or a string holding one.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		*a = Amount(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return errAmountType
		}
		*a = Amount(f)
	default:
		return errAmountType
	}
	return nil
}

// HandleConvert godoc
// @Summary Convert an amount between two currencies
// @Description Converts amount from from_currency to to_currency using a rate cached for up to one hour. The result is rounded to two decimals.
// @Tags convert
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Amount and currency codes"
// @Success 200 {object} ConvertResponse "Converted amount"
// @Failure 400 {object} ErrorResponse "Invalid input or conversion failed"
// @Router /api/convert [post]
func HandleConvert(svc service.ConverterInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		var req ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount == nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidInput})
			return
		}

		res, err := svc.Convert(r.Context(), float64(*req.Amount), req.FromCurrency, req.ToCurrency)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidInput})
			default:
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgConversionFailed})
			}
			return
		}

		writeJSON(w, http.StatusOK, ConvertResponse{
			Result:       res.Result,
			FromCurrency: res.From,
			ToCurrency:   res.To,
			Amount:       res.Amount,
		})
	}
}

// HandleRates godoc
// @Summary Get the provider's rate table for a base currency
// @Description Proxies the upstream provider response unchanged.
// @Tags rates
// @Produce json
// @Param currency path string true "Base currency code (3 letters)" minlength(3) maxlength(3)
// @Success 200 {object} object "Raw provider response"
// @Failure 400 {object} ErrorResponse "Failed to fetch rates"
// @Router /api/rates/{currency} [get]
func HandleRates(svc service.ConverterInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := svc.Rates(r.Context(), chi.URLParam(r, "currency"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgRatesFailed})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

// HandleCurrencies godoc
// @Summary List supported currencies
// @Description Returns the sorted currency codes quoted by the provider. When the provider is unreachable a built-in list is returned and fallback is true.
// @Tags rates
// @Produce json
// @Success 200 {object} CurrenciesResponse "Supported currencies"
// @Router /api/currencies [get]
func HandleCurrencies(svc service.ConverterInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := svc.SupportedCurrencies(r.Context())
		writeJSON(w, http.StatusOK, CurrenciesResponse{
			Currencies: list.Codes,
			Fallback:   list.Fallback,
		})
	}
}
