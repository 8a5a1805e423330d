package handler

import (
	"net/http"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/logger"
	"github.com/osse101/EmberForge_Go/internal/loot"
	"github.com/osse101/EmberForge_Go/internal/profile"
)

// GenerateLootResponse lists the archetypes a policy produced
type GenerateLootResponse struct {
	Count   int                    `json:"count"`
	Rewards []domain.ItemArchetype `json:"rewards"`
}

// HandleGenerateLoot rolls a reward policy without storing anything
// @Summary Generate rewards
// @Description Samples archetypes for a reward policy. Nothing is stored.
// @Tags loot
// @Accept json
// @Produce json
// @Param request body loot.RewardPolicy true "Reward policy"
// @Success 200 {object} GenerateLootResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/loot/generate [post]
func HandleGenerateLoot(generator profile.RewardGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loot.RewardPolicy
		if err := DecodeAndValidateRequest(r, w, &req, "Generate loot"); err != nil {
			return
		}

		rewards, err := generator.GenerateRewards(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "Generate loot", err)
			return
		}

		logger.FromContext(r.Context()).Info("Loot generated", "requested", req.Count, "generated", len(rewards))
		if rewards == nil {
			rewards = []domain.ItemArchetype{}
		}
		respondJSON(w, http.StatusOK, GenerateLootResponse{Count: len(rewards), Rewards: rewards})
	}
}
