package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tripledger/internal/middleware"
	"tripledger/internal/models"
	"tripledger/internal/service"
)

// ExpenseHandler serves expense recording, listing, and share validation.
type ExpenseHandler struct {
	svc *service.ExpenseService
}

// NewExpenseHandler creates an ExpenseHandler.
func NewExpenseHandler(svc *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

type shareRequest struct {
	UserID string          `json:"userId" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

type createExpenseRequest struct {
	GroupID        string          `json:"groupId" binding:"required"`
	Title          string          `json:"title" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Category       string          `json:"category"`
	Date           string          `json:"date" binding:"omitempty,tripdate"`
	PaidByID       string          `json:"paidById" binding:"required"`
	SelfPaid       bool            `json:"selfPaid"`
	Shares         []shareRequest  `json:"shares" binding:"required,min=1,dive"`
	IgnoreMismatch bool            `json:"ignoreMismatch"`
}

type validateSharesRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Shares         []shareRequest  `json:"shares" binding:"required,min=1,dive"`
	IgnoreMismatch bool            `json:"ignoreMismatch"`
}

type shareResponse struct {
	UserID string      `json:"userId"`
	Amount json.Number `json:"amount"`
}

type expenseResponse struct {
	ID       string          `json:"id"`
	GroupID  string          `json:"groupId"`
	Title    string          `json:"title"`
	Amount   json.Number     `json:"totalAmount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	PaidByID string          `json:"paidById"`
	SelfPaid bool            `json:"selfPaid"`
	Shares   []shareResponse `json:"shares"`
}

func toShares(reqs []shareRequest) []models.Share {
	shares := make([]models.Share, len(reqs))
	for i, r := range reqs {
		shares[i] = models.Share{UserID: r.UserID, Amount: r.Amount}
	}
	return shares
}

func toExpenseResponse(expense *models.Expense) expenseResponse {
	shares := make([]shareResponse, len(expense.Shares))
	for i, share := range expense.Shares {
		shares[i] = shareResponse{UserID: share.UserID, Amount: money(share.Amount)}
	}
	return expenseResponse{
		ID:       expense.ID,
		GroupID:  expense.GroupID,
		Title:    expense.Title,
		Amount:   money(expense.Amount),
		Category: expense.Category,
		Date:     expense.Date,
		PaidByID: expense.PayerID,
		SelfPaid: expense.SelfPaid,
		Shares:   shares,
	}
}

// Create validates and records an expense.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.svc.Create(c.Request.Context(), middleware.GetUserID(c), service.CreateExpenseInput{
		GroupID:        req.GroupID,
		Title:          req.Title,
		Amount:         req.Amount,
		Category:       req.Category,
		Date:           req.Date,
		PayerID:        req.PaidByID,
		SelfPaid:       req.SelfPaid,
		Shares:         toShares(req.Shares),
		IgnoreMismatch: req.IgnoreMismatch,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": toExpenseResponse(expense)})
}

// List returns a group's expenses, newest first.
func (h *ExpenseHandler) List(c *gin.Context) {
	groupID := c.Query("groupId")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupId query parameter is required"})
		return
	}

	expenses, err := h.svc.List(c.Request.Context(), middleware.GetUserID(c), groupID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i, expense := range expenses {
		out[i] = toExpenseResponse(expense)
	}
	c.JSON(http.StatusOK, gin.H{"expenses": out})
}

// ValidateShares checks a proposed allocation without persisting anything.
// A sum mismatch is reported as 422 unless the request acknowledges it.
func (h *ExpenseHandler) ValidateShares(c *gin.Context) {
	var req validateSharesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := service.ValidateShares(req.Amount, toShares(req.Shares), req.IgnoreMismatch); err != nil {
		writeError(c, err)
		return
	}

	shares := make([]shareResponse, len(req.Shares))
	for i, share := range req.Shares {
		shares[i] = shareResponse{UserID: share.UserID, Amount: money(share.Amount)}
	}
	c.JSON(http.StatusOK, gin.H{"shares": shares})
}
