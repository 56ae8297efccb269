package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/moverank/leadgen/internal/entity"
	"github.com/moverank/leadgen/internal/infra/http/middleware"
	"github.com/moverank/leadgen/internal/usecase"
)

type AdminHandler struct {
	LeadRepo     usecase.LeadRepositoryInterface
	CustomerRepo usecase.CustomerRepositoryInterface
	AssignUC     *usecase.AssignLeadUseCase
	AnalyticsUC  *usecase.AnalyticsUseCase
	logger       zerolog.Logger
}

func NewAdminHandler(
	leadRepo usecase.LeadRepositoryInterface,
	customerRepo usecase.CustomerRepositoryInterface,
	assignUC *usecase.AssignLeadUseCase,
	analyticsUC *usecase.AnalyticsUseCase,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		LeadRepo:     leadRepo,
		CustomerRepo: customerRepo,
		AssignUC:     assignUC,
		AnalyticsUC:  analyticsUC,
		logger:       logger,
	}
}

func (h *AdminHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	minScore := 0
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "min_score must be an integer")
			return
		}
		minScore = n
	}

	leads, err := h.LeadRepo.List(r.Context(), status, minScore)
	if err != nil {
		h.logger.Error().Err(err).Msg("lead listing failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"leads": leads,
		"count": len(leads),
	})
}

func (h *AdminHandler) HandleAssignLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadID")
	customerID := r.URL.Query().Get("customer_id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "customer_id is required")
		return
	}

	output, err := h.AssignUC.Execute(r.Context(), leadID, customerID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNoActiveSubscription):
			writeError(w, http.StatusNotFound, "No active subscription found")
		case errors.Is(err, entity.ErrLeadNotFound):
			writeError(w, http.StatusNotFound, "Lead not found")
		default:
			h.logger.Error().Err(err).Str("lead_id", leadID).Str("customer_id", customerID).Msg("lead assignment failed")
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	middleware.RecordAssignment(output.PurchaseType)
	writeJSON(w, http.StatusOK, output)
}

func (h *AdminHandler) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.CustomerRepo.FindAllWithSubscriptions(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("customer listing failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if customers == nil {
		customers = []*entity.CustomerWithSubscriptions{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"customers": customers,
		"count":     len(customers),
	})
}

func (h *AdminHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.AnalyticsUC.Execute(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("analytics aggregation failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}
