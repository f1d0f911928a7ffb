package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"billfold/internal/core"
	"billfold/internal/store"
	"billfold/internal/voice"
)

// handleTransactions dispatches /api/transactions by method.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleListTransactions returns the transactions in the requested time
// frame, newest first. A missing timeFrame defaults to monthly; an
// unrecognized one returns the full history.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	frame := core.Monthly
	if v := strings.TrimSpace(r.URL.Query().Get("timeFrame")); v != "" {
		frame = core.TimeFrame(v)
	}

	txs, err := s.lister.List(r.Context(), frame)
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction list error", "error", err, "time_frame", frame)
		writeError(w, http.StatusInternalServerError, "Failed to load transactions")
		return
	}
	if txs == nil {
		txs = []core.Transaction{}
	}

	writeJSON(w, http.StatusOK, txs)
}

type createTransactionRequest struct {
	Category string      `json:"category"`
	Amount   *core.Money `json:"amount"`
	Date     string      `json:"date"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(r.Context(), "Transaction decode error", "error", err)
		writeValidationError(w, []fieldError{{Field: "body", Message: "request body must be valid JSON"}})
		return
	}

	var errs []fieldError

	category := sanitizeInput(req.Category)
	if category == "" {
		errs = append(errs, fieldError{Field: "category", Message: "category is required"})
	} else if len(category) > maxCategoryLength {
		errs = append(errs, fieldError{Field: "category", Message: "category is too long"})
	}

	if req.Amount == nil {
		errs = append(errs, fieldError{Field: "amount", Message: "amount is required"})
	}

	// An absent date means "now"; a present but unparseable one is rejected.
	date, err := parseDate(req.Date)
	if err != nil {
		errs = append(errs, fieldError{Field: "date", Message: "date must be YYYY-MM-DD or RFC 3339"})
	}

	if len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	created, err := s.creator.Create(r.Context(), store.NewTransaction{
		Category: category,
		Amount:   *req.Amount,
		Date:     date,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Transaction create error", "error", err, "category", category)
		writeError(w, http.StatusInternalServerError, "Failed to save transaction")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// handleBudget summarizes the current month: income, expenses, remaining, and
// the bond payment when the bondPayment flag is set.
func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// The flag is the exact string "true"; anything else leaves it off.
	bondPayment := strings.TrimSpace(r.URL.Query().Get("bondPayment")) == "true"

	txs, err := s.lister.List(r.Context(), core.Monthly)
	if err != nil {
		slog.ErrorContext(r.Context(), "Budget list error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	writeJSON(w, http.StatusOK, core.ComputeBudget(txs, bondPayment))
}

type voiceParseRequest struct {
	Command string `json:"command"`
}

// handleVoiceParse extracts category, amount, and date from a natural
// language command. The parser only refuses blank input.
func (s *Server) handleVoiceParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req voiceParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(r.Context(), "Voice command decode error", "error", err)
		writeValidationError(w, []fieldError{{Field: "body", Message: "request body must be valid JSON"}})
		return
	}

	result, ok := voice.Parse(req.Command, s.now())
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "No command provided")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
