// Package handler maps the Trip Ledger services onto an HTTP API.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tripledger/internal/auth"
	"tripledger/internal/calculator"
	"tripledger/internal/service"
	"tripledger/internal/storage"
)

// money serializes a monetary value as a JSON number with 2 fractional
// digits.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

// percent serializes a percentage with 1 fractional digit for display. The
// rounding happens only here, at the serialization boundary.
func percent(d decimal.Decimal) json.Number {
	return json.Number(d.Round(1).String())
}

// writeError translates service and calculator errors into HTTP responses.
// A sum mismatch is a 422 the client may acknowledge and resubmit with the
// ignore flag; a missing-member reference is a data-consistency bug and
// surfaces as a 500.
func writeError(c *gin.Context, err error) {
	var validationErr *calculator.ValidationError
	var mismatchErr *calculator.SumMismatchError
	var missingErr *calculator.MissingMemberError

	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNotGroupMember):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMemberNotInGroup), errors.Is(err, service.ErrUnknownUser):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
	case errors.As(err, &mismatchErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": mismatchErr.Error(), "sumMismatch": true})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &missingErr):
		slog.Error("inconsistent expense data", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "inconsistent group data"})
	default:
		slog.Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}
