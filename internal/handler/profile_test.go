package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/economy"
	"github.com/osse101/EmberForge_Go/internal/energy"
	"github.com/osse101/EmberForge_Go/internal/loot"
	"github.com/osse101/EmberForge_Go/internal/profile"
)

func TestHandleCreate(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*MockProfileService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: CreateProfileRequest{OpeningBalance: 250},
			mockSetup: func(m *MockProfileService) {
				m.On("Create", mock.Anything, 250).Return(sampleView(), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"balance":250`,
		},
		{
			name:           "Negative balance",
			body:           CreateProfileRequest{OpeningBalance: -1},
			mockSetup:      func(*MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"opening_balance":"Must be at least 0"`,
		},
		{
			name:           "Malformed body",
			body:           `{"opening_balance":`,
			mockSetup:      func(*MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Service error",
			body: CreateProfileRequest{},
			mockSetup: func(m *MockProfileService) {
				m.On("Create", mock.Anything, 0).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockProfileService{}
			tt.mockSetup(svc)

			w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGet(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Get", mock.Anything, testProfileID).Return(sampleView(), nil)

		w := doRequest(t, newProfileRouter(svc), http.MethodGet, "/profiles/"+testProfileID+"/", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[profile.View](t, w)
		assert.Equal(t, testProfileID, got.ID)
		assert.Equal(t, 1, got.FreeSlots)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Get", mock.Anything, "missing").Return(nil, domain.ErrProfileNotFound)

		w := doRequest(t, newProfileRouter(svc), http.MethodGet, "/profiles/missing/", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"`+ErrMsgProfileNotFoundError+`"}`, w.Body.String())
	})
}

func TestHandleClaimRewards(t *testing.T) {
	policy := loot.RewardPolicy{Count: 2, Tiers: []int{1, 2}, Mode: loot.DistributionEven}

	t.Run("Success with overflow", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("ClaimRewards", mock.Anything, testProfileID, policy, 40).Return(&profile.ClaimResult{
			Stored:   []profile.SlotView{{Index: 0}},
			Overflow: []string{"sword_iron"},
			Balance:  290,
		}, nil)

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/"+testProfileID+"/rewards",
			ClaimRewardsRequest{Policy: policy, BonusCurrency: 40})

		assert.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[profile.ClaimResult](t, w)
		assert.Equal(t, []string{"sword_iron"}, got.Overflow)
		assert.Equal(t, 290, got.Balance)
		svc.AssertExpectations(t)
	})

	t.Run("Nested policy validation", func(t *testing.T) {
		svc := &MockProfileService{}
		bad := loot.RewardPolicy{Count: -1, Mode: "sideways"}

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/"+testProfileID+"/rewards",
			ClaimRewardsRequest{Policy: bad})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		got := decodeBody[ValidationErrorResponse](t, w)
		assert.Contains(t, got.Fields, "policy.count")
		assert.Contains(t, got.Fields, "policy.mode")
		svc.AssertNotCalled(t, "ClaimRewards", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid policy for catalog", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("ClaimRewards", mock.Anything, testProfileID, mock.Anything, 0).Return(nil, domain.ErrInvalidPolicy)

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/"+testProfileID+"/rewards",
			ClaimRewardsRequest{Policy: loot.RewardPolicy{Count: 1, Tiers: []int{9}}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidPolicyError)
	})
}

func TestHandleForgeRoutes(t *testing.T) {
	item := profile.ItemView{Archetype: "sword_iron", Level: 2, Stats: domain.Stats{Attack: 12}}

	tests := []struct {
		name           string
		method         string
		path           string
		mockSetup      func(*MockProfileService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Preview",
			method: http.MethodGet,
			path:   "/profiles/" + testProfileID + "/slots/3/preview",
			mockSetup: func(m *MockProfileService) {
				m.On("PreviewImprove", mock.Anything, testProfileID, 3).Return(&profile.ImprovePreview{
					Item: item, Cost: 120, CanAfford: true, Balance: 250,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"cost":120`,
		},
		{
			name:   "Improve",
			method: http.MethodPost,
			path:   "/profiles/" + testProfileID + "/slots/3/improve",
			mockSetup: func(m *MockProfileService) {
				m.On("Improve", mock.Anything, testProfileID, 3).Return(&profile.ImproveOutcome{
					ImproveResult: economy.ImproveResult{Cost: 120, OldLevel: 2, NewLevel: 3, NewBalance: 130},
					Item:          item,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"new_level":3`,
		},
		{
			name:   "Improve without funds",
			method: http.MethodPost,
			path:   "/profiles/" + testProfileID + "/slots/3/improve",
			mockSetup: func(m *MockProfileService) {
				m.On("Improve", mock.Anything, testProfileID, 3).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughMoneyError,
		},
		{
			name:   "Improve at max level",
			method: http.MethodPost,
			path:   "/profiles/" + testProfileID + "/slots/3/improve",
			mockSetup: func(m *MockProfileService) {
				m.On("Improve", mock.Anything, testProfileID, 3).Return(nil, domain.ErrAlreadyMaxLevel)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgAlreadyMaxLevelError,
		},
		{
			name:   "Sell",
			method: http.MethodPost,
			path:   "/profiles/" + testProfileID + "/slots/0/sell",
			mockSetup: func(m *MockProfileService) {
				m.On("Sell", mock.Anything, testProfileID, 0).Return(&profile.SaleResult{
					Item: item, Price: 65, NewBalance: 315,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"price":65`,
		},
		{
			name:   "Sell empty slot",
			method: http.MethodPost,
			path:   "/profiles/" + testProfileID + "/slots/1/sell",
			mockSetup: func(m *MockProfileService) {
				m.On("Sell", mock.Anything, testProfileID, 1).Return(nil, domain.ErrSlotEmpty)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgSlotEmptyError,
		},
		{
			name:   "Corrupt slot",
			method: http.MethodGet,
			path:   "/profiles/" + testProfileID + "/slots/2/preview",
			mockSetup: func(m *MockProfileService) {
				m.On("PreviewImprove", mock.Anything, testProfileID, 2).Return(nil, domain.ErrInvalidEncoding)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   ErrMsgCorruptSlotError,
		},
		{
			name:           "Slot not a number",
			method:         http.MethodPost,
			path:           "/profiles/" + testProfileID + "/slots/abc/improve",
			mockSetup:      func(*MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidSlot,
		},
		{
			name:           "Negative slot",
			method:         http.MethodPost,
			path:           "/profiles/" + testProfileID + "/slots/-1/sell",
			mockSetup:      func(*MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockProfileService{}
			tt.mockSetup(svc)

			w := doRequest(t, newProfileRouter(svc), tt.method, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleEnergyRoutes(t *testing.T) {
	sleeping := sampleView()
	sleeping.Energy.Mode = energy.ModeSleeping

	t.Run("Sleep", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("StartSleep", mock.Anything, testProfileID).Return(sleeping, nil)

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/"+testProfileID+"/energy/sleep", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mode":"sleeping"`)
	})

	t.Run("Wake", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("WakeUp", mock.Anything, testProfileID).Return(sampleView(), nil)

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/"+testProfileID+"/energy/wake", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Spend", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Spend", mock.Anything, testProfileID, 30).Return(sampleView(), nil)

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/"+testProfileID+"/energy/spend",
			SpendEnergyRequest{Amount: 30})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Spend too much", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Spend", mock.Anything, testProfileID, 500).Return(nil, domain.ErrInsufficientEnergy)

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/"+testProfileID+"/energy/spend",
			SpendEnergyRequest{Amount: 500})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotEnoughEnergyError)
	})

	t.Run("Tick", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("TickEnergy", mock.Anything, testProfileID, 90*time.Second).Return(&profile.TickOutcome{
			Gained: 1, Profile: sleeping,
		}, nil)

		w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/"+testProfileID+"/energy/tick",
			TickEnergyRequest{Elapsed: "1m30s"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"gained":1`)
		svc.AssertExpectations(t)
	})

	t.Run("Tick rejects bad durations", func(t *testing.T) {
		for _, elapsed := range []string{"", "soon", "-5s"} {
			svc := &MockProfileService{}
			w := doRequest(t, newProfileRouter(svc), http.MethodPost, "/profiles/"+testProfileID+"/energy/tick",
				TickEnergyRequest{Elapsed: elapsed})

			assert.Equal(t, http.StatusBadRequest, w.Code, "elapsed=%q", elapsed)
			assert.Contains(t, w.Body.String(), `"elapsed"`)
			svc.AssertNotCalled(t, "TickEnergy", mock.Anything, mock.Anything, mock.Anything)
		}
	})
}
