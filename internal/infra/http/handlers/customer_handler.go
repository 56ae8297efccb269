package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/moverank/leadgen/internal/entity"
	"github.com/moverank/leadgen/internal/infra/http/middleware"
	"github.com/moverank/leadgen/internal/usecase"
)

type CustomerHandler struct {
	RegisterUC   *usecase.RegisterCustomerUseCase
	CustomerRepo usecase.CustomerRepositoryInterface
	SubRepo      entity.SubscriptionRepository
	PurchaseRepo usecase.PurchaseRepositoryInterface
	logger       zerolog.Logger
}

func NewCustomerHandler(
	registerUC *usecase.RegisterCustomerUseCase,
	customerRepo usecase.CustomerRepositoryInterface,
	subRepo entity.SubscriptionRepository,
	purchaseRepo usecase.PurchaseRepositoryInterface,
	logger zerolog.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		RegisterUC:   registerUC,
		CustomerRepo: customerRepo,
		SubRepo:      subRepo,
		PurchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

func (h *CustomerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusBadRequest
			if domainErr.Code == "VALIDATION_ERROR" {
				status = http.StatusUnprocessableEntity
			}
			writeError(w, status, domainErr.Message)
			return
		}
		h.logger.Error().Err(err).Str("email", input.Email).Msg("customer registration failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RecordRegistration()
	writeJSON(w, http.StatusOK, output)
}

func (h *CustomerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	customer, err := h.CustomerRepo.FindByID(r.Context(), customerID)
	if errors.Is(err, entity.ErrCustomerNotFound) {
		writeError(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("customer_id", customerID).Msg("customer lookup failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

type UsageResponse struct {
	Tier           string `json:"tier"`
	LeadsIncluded  int    `json:"leads_included"`
	LeadsUsed      int    `json:"leads_used"`
	LeadsRemaining int    `json:"leads_remaining"`
	OveragePrice   int64  `json:"overage_price"`
}

// HandleUsage reports remaining quota from the active subscription. The
// overage price is read live from the pricing table, the quota from the
// snapshot taken at registration.
func (h *CustomerHandler) HandleUsage(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	sub, err := h.SubRepo.FindActiveByCustomerID(r.Context(), customerID)
	if errors.Is(err, entity.ErrNoActiveSubscription) {
		writeError(w, http.StatusNotFound, "No active subscription found")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("customer_id", customerID).Msg("usage lookup failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var overagePrice int64
	if tier, ok := entity.TierByName(sub.Tier); ok {
		overagePrice = tier.OveragePrice
	}

	writeJSON(w, http.StatusOK, UsageResponse{
		Tier:           sub.Tier,
		LeadsIncluded:  sub.LeadsIncluded,
		LeadsUsed:      sub.LeadsUsed,
		LeadsRemaining: sub.LeadsIncluded - sub.LeadsUsed,
		OveragePrice:   overagePrice,
	})
}

// HandlePurchases lists the leads a customer has been assigned, newest first.
func (h *CustomerHandler) HandlePurchases(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	if _, err := h.CustomerRepo.FindByID(r.Context(), customerID); err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			writeError(w, http.StatusNotFound, "Customer not found")
			return
		}
		h.logger.Error().Err(err).Str("customer_id", customerID).Msg("customer lookup failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	purchases, err := h.PurchaseRepo.ListByCustomerID(r.Context(), customerID)
	if err != nil {
		h.logger.Error().Err(err).Str("customer_id", customerID).Msg("purchase listing failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if purchases == nil {
		purchases = []*entity.LeadPurchase{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"purchases": purchases,
		"count":     len(purchases),
	})
}
