package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/loot"
	"github.com/osse101/EmberForge_Go/internal/profile"
)

// ProfileHandler serves the profile routes
type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type CreateProfileRequest struct {
	OpeningBalance int `json:"opening_balance" validate:"gte=0"`
}

type ClaimRewardsRequest struct {
	Policy        loot.RewardPolicy `json:"policy"`
	BonusCurrency int               `json:"bonus_currency" validate:"gte=0"`
}

type SpendEnergyRequest struct {
	Amount int `json:"amount" validate:"gte=0"`
}

type TickEnergyRequest struct {
	Elapsed string `json:"elapsed" validate:"required,duration"`
}

// HandleCreate creates a profile
// @Summary Create profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body CreateProfileRequest true "Opening balance"
// @Success 201 {object} profile.View
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/profiles [post]
func (h *ProfileHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create profile"); err != nil {
		return
	}

	view, err := h.service.Create(r.Context(), req.OpeningBalance)
	if err != nil {
		respondServiceError(w, r, "Create profile", err)
		return
	}

	logger.FromContext(r.Context()).Info("Profile created", "profile_id", view.ID)
	respondJSON(w, http.StatusCreated, view)
}

// HandleGet returns a profile
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} profile.View
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{id} [get]
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleClaimRewards generates loot and stores it in the profile
// @Summary Claim rewards
// @Description Generates rewards for the policy and stores them in free slots. Rewards that do not fit are reported as overflow.
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body ClaimRewardsRequest true "Policy and bonus currency"
// @Success 200 {object} profile.ClaimResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{id}/rewards [post]
func (h *ProfileHandler) HandleClaimRewards(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	var req ClaimRewardsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim rewards"); err != nil {
		return
	}

	result, err := h.service.ClaimRewards(r.Context(), id, req.Policy, req.BonusCurrency)
	if err != nil {
		respondServiceError(w, r, "Claim rewards", err)
		return
	}

	logger.FromContext(r.Context()).Info("Rewards claimed",
		"profile_id", id,
		"stored", len(result.Stored),
		"overflow", len(result.Overflow))
	respondJSON(w, http.StatusOK, result)
}

// HandlePreviewImprove quotes the next forge step for a slot
// @Summary Preview improvement
// @Tags forge
// @Produce json
// @Param id path string true "Profile ID"
// @Param slot path int true "Slot index"
// @Success 200 {object} profile.ImprovePreview
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{id}/slots/{slot}/preview [get]
func (h *ProfileHandler) HandlePreviewImprove(w http.ResponseWriter, r *http.Request) {
	id, slot, ok := profileSlotParams(w, r)
	if !ok {
		return
	}

	preview, err := h.service.PreviewImprove(r.Context(), id, slot)
	if err != nil {
		respondServiceError(w, r, "Preview improve", err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

// HandleImprove buys one level for the item in a slot
// @Summary Improve item
// @Tags forge
// @Produce json
// @Param id path string true "Profile ID"
// @Param slot path int true "Slot index"
// @Success 200 {object} profile.ImproveOutcome
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{id}/slots/{slot}/improve [post]
func (h *ProfileHandler) HandleImprove(w http.ResponseWriter, r *http.Request) {
	id, slot, ok := profileSlotParams(w, r)
	if !ok {
		return
	}

	outcome, err := h.service.Improve(r.Context(), id, slot)
	if err != nil {
		respondServiceError(w, r, "Improve item", err)
		return
	}

	logger.FromContext(r.Context()).Info("Item improved",
		"profile_id", id,
		"slot", slot,
		"level", outcome.NewLevel,
		"cost", outcome.Cost)
	respondJSON(w, http.StatusOK, outcome)
}

// HandleSell sells the item in a slot
// @Summary Sell item
// @Tags forge
// @Produce json
// @Param id path string true "Profile ID"
// @Param slot path int true "Slot index"
// @Success 200 {object} profile.SaleResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{id}/slots/{slot}/sell [post]
func (h *ProfileHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	id, slot, ok := profileSlotParams(w, r)
	if !ok {
		return
	}

	sale, err := h.service.Sell(r.Context(), id, slot)
	if err != nil {
		respondServiceError(w, r, "Sell item", err)
		return
	}

	logger.FromContext(r.Context()).Info("Item sold", "profile_id", id, "slot", slot, "price", sale.Price)
	respondJSON(w, http.StatusOK, sale)
}

// HandleSleep puts the profile to sleep
// @Summary Start sleeping
// @Tags energy
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} profile.View
// @Router /api/v1/profiles/{id}/energy/sleep [post]
func (h *ProfileHandler) HandleSleep(w http.ResponseWriter, r *http.Request) {
	h.energyAction(w, r, "Start sleep", h.service.StartSleep)
}

// HandleWake wakes the profile
// @Summary Wake up
// @Tags energy
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} profile.View
// @Router /api/v1/profiles/{id}/energy/wake [post]
func (h *ProfileHandler) HandleWake(w http.ResponseWriter, r *http.Request) {
	h.energyAction(w, r, "Wake up", h.service.WakeUp)
}

// HandleSpend spends energy. Spending while asleep wakes the profile first.
// @Summary Spend energy
// @Tags energy
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body SpendEnergyRequest true "Amount"
// @Success 200 {object} profile.View
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{id}/energy/spend [post]
func (h *ProfileHandler) HandleSpend(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	var req SpendEnergyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spend energy"); err != nil {
		return
	}

	view, err := h.service.Spend(r.Context(), id, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Spend energy", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleTick credits a sleeping profile for an elapsed duration
// @Summary Tick energy
// @Tags energy
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body TickEnergyRequest true "Elapsed time, e.g. 10s"
// @Success 200 {object} profile.TickOutcome
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/profiles/{id}/energy/tick [post]
func (h *ProfileHandler) HandleTick(w http.ResponseWriter, r *http.Request) {
	id, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	var req TickEnergyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Tick energy"); err != nil {
		return
	}
	// validated by the duration tag
	elapsed, _ := time.ParseDuration(req.Elapsed)

	outcome, err := h.service.TickEnergy(r.Context(), id, elapsed)
	if err != nil {
		respondServiceError(w, r, "Tick energy", err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

func (h *ProfileHandler) energyAction(w http.ResponseWriter, r *http.Request, action string,
	fn func(ctx context.Context, profileID string) (*profile.View, error)) {
	id, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	view, err := fn(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, action, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func profileSlotParams(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	id, ok := profileIDParam(w, r)
	if !ok {
		return "", 0, false
	}
	slot, ok := slotParam(w, r)
	if !ok {
		return "", 0, false
	}
	return id, slot, true
}
