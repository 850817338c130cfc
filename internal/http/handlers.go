package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tranzakt/internal/amqp"
	"tranzakt/internal/core"
	"tranzakt/internal/storage"
)

const (
	msgAllFieldsRequired = "All fields are required"
	msgInvalidID         = "Invalid Transaction ID"
	msgNotFound          = "Transaction not found"
	msgCreationFailed    = "Transaction creation failed"
	msgDeleted           = "Transaction deleted successfully"
	msgInternalError     = "Internal server error"
)

// createRequest uses pointers so an absent amount is distinguishable
// from a zero one: zero is a valid amount, absence is not.
type createRequest struct {
	UserID   *string     `json:"user_id"`
	Title    *string     `json:"title"`
	Amount   *core.Money `json:"amount"`
	Category *string     `json:"category"`
}

// analyticsResponse is the chart-ready payload for a filtered set of
// transactions.
type analyticsResponse struct {
	Summary    core.Summary         `json:"summary"`
	Trend      []core.TrendBucket   `json:"trend"`
	Categories []core.CategoryTotal `json:"categories"`
}

func internalError(c *gin.Context, err error, msg string) {
	slog.ErrorContext(c.Request.Context(), msg, "error", err, "url", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}

func (s *Server) handleListTransactions(c *gin.Context) {
	userID := c.Param("userid")

	transactions, err := s.store.ListByUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err, "Error fetching transactions")
		return
	}
	if transactions == nil {
		transactions = []core.Transaction{}
	}
	c.JSON(http.StatusOK, transactions)
}

func (s *Server) handleCreateTransaction(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgAllFieldsRequired})
		return
	}
	if req.UserID == nil || req.Title == nil || req.Amount == nil || req.Category == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgAllFieldsRequired})
		return
	}

	tx := core.Transaction{
		UserID:   *req.UserID,
		Title:    *req.Title,
		Amount:   *req.Amount,
		Category: *req.Category,
	}
	if err := tx.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgAllFieldsRequired})
		return
	}

	created, err := s.store.Create(c.Request.Context(), tx)
	if err != nil {
		if errors.Is(err, storage.ErrNothingCreated) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgCreationFailed})
			return
		}
		internalError(c, err, "Error creating transaction")
		return
	}

	s.publishEvent(c, amqp.NewCreatedEvent(created))
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleDeleteTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidID})
		return
	}

	// Fetch before deleting so the event carries the full record and
	// consumers never have to call back into the store.
	tx, err := s.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
			return
		}
		internalError(c, err, "Error deleting transaction")
		return
	}

	if err := s.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
			return
		}
		internalError(c, err, "Error deleting transaction")
		return
	}

	s.publishEvent(c, amqp.NewDeletedEvent(tx))
	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}

// handleSummary derives the balance figures from a single list query
// through the aggregation engine, so API and client summaries follow
// the same rules.
func (s *Server) handleSummary(c *gin.Context) {
	userID := c.Param("userid")

	transactions, err := s.store.ListByUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err, "Error fetching the summary")
		return
	}
	c.JSON(http.StatusOK, core.ComputeSummary(transactions))
}

func (s *Server) handleAnalytics(c *gin.Context) {
	period, err := core.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid period filter"})
		return
	}
	typ, err := core.ParseTypeFilter(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid type filter"})
		return
	}

	transactions, err := s.store.ListByUser(c.Request.Context(), c.Param("userid"))
	if err != nil {
		internalError(c, err, "Error fetching analytics")
		return
	}

	filtered := core.FilterByType(core.FilterByPeriod(transactions, period, s.now()), typ)
	filtered = core.SortByMostRecent(filtered)

	resp := analyticsResponse{
		Summary:    core.ComputeSummary(filtered),
		Trend:      core.BucketForTrend(filtered, period),
		Categories: core.CategoryBreakdown(filtered),
	}
	if resp.Trend == nil {
		resp.Trend = []core.TrendBucket{}
	}
	if resp.Categories == nil {
		resp.Categories = []core.CategoryTotal{}
	}
	c.JSON(http.StatusOK, resp)
}

// publishEvent sends a transaction event if a publisher is configured.
// Failures are logged and never surface to the client.
func (s *Server) publishEvent(c *gin.Context, event *amqp.TransactionEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(c.Request.Context(), event); err != nil {
		slog.ErrorContext(c.Request.Context(), "Failed to publish transaction event",
			"error", err, "kind", event.Kind, "id", event.ID)
	}
}
