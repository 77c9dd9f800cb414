package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripledger/internal/middleware"
	"tripledger/internal/service"
)

// SummaryHandler serves the computed group summary.
type SummaryHandler struct {
	svc *service.SummaryService
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(svc *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

type memberRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type settlementResponse struct {
	From   memberRef   `json:"from"`
	To     memberRef   `json:"to"`
	Amount json.Number `json:"amount"`
}

type categoryResponse struct {
	Category   string      `json:"category"`
	Amount     json.Number `json:"amount"`
	Percentage json.Number `json:"percentage"`
}

type summaryResponse struct {
	TotalExpenses       json.Number          `json:"totalExpenses"`
	CurrentUserExpenses json.Number          `json:"currentUserExpenses"`
	Settlements         []settlementResponse `json:"settlements"`
	CategoryBreakdown   []categoryResponse   `json:"categoryBreakdown"`
}

// Get computes and returns the summary for one group.
func (h *SummaryHandler) Get(c *gin.Context) {
	summary, err := h.svc.Summarize(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := summaryResponse{
		TotalExpenses:       money(summary.TotalExpenses),
		CurrentUserExpenses: money(summary.CurrentUserExpenses),
		Settlements:         make([]settlementResponse, len(summary.Settlements)),
		CategoryBreakdown:   make([]categoryResponse, len(summary.CategoryBreakdown)),
	}
	for i, tr := range summary.Settlements {
		out.Settlements[i] = settlementResponse{
			From:   memberRef{ID: tr.FromID, Name: tr.FromName},
			To:     memberRef{ID: tr.ToID, Name: tr.ToName},
			Amount: money(tr.Amount),
		}
	}
	for i, ct := range summary.CategoryBreakdown {
		out.CategoryBreakdown[i] = categoryResponse{
			Category:   ct.Category,
			Amount:     money(ct.Amount),
			Percentage: percent(ct.Percentage),
		}
	}

	c.JSON(http.StatusOK, out)
}
