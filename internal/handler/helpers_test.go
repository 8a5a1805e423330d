package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/loot"
	"github.com/osse101/EmberForge_Go/internal/profile"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Create(ctx context.Context, openingBalance int) (*profile.View, error) {
	args := m.Called(ctx, openingBalance)
	v, _ := args.Get(0).(*profile.View)
	return v, args.Error(1)
}

func (m *MockProfileService) Get(ctx context.Context, profileID string) (*profile.View, error) {
	args := m.Called(ctx, profileID)
	v, _ := args.Get(0).(*profile.View)
	return v, args.Error(1)
}

func (m *MockProfileService) ClaimRewards(ctx context.Context, profileID string, policy loot.RewardPolicy, bonusCurrency int) (*profile.ClaimResult, error) {
	args := m.Called(ctx, profileID, policy, bonusCurrency)
	v, _ := args.Get(0).(*profile.ClaimResult)
	return v, args.Error(1)
}

func (m *MockProfileService) PreviewImprove(ctx context.Context, profileID string, slot int) (*profile.ImprovePreview, error) {
	args := m.Called(ctx, profileID, slot)
	v, _ := args.Get(0).(*profile.ImprovePreview)
	return v, args.Error(1)
}

func (m *MockProfileService) Improve(ctx context.Context, profileID string, slot int) (*profile.ImproveOutcome, error) {
	args := m.Called(ctx, profileID, slot)
	v, _ := args.Get(0).(*profile.ImproveOutcome)
	return v, args.Error(1)
}

func (m *MockProfileService) Sell(ctx context.Context, profileID string, slot int) (*profile.SaleResult, error) {
	args := m.Called(ctx, profileID, slot)
	v, _ := args.Get(0).(*profile.SaleResult)
	return v, args.Error(1)
}

func (m *MockProfileService) StartSleep(ctx context.Context, profileID string) (*profile.View, error) {
	args := m.Called(ctx, profileID)
	v, _ := args.Get(0).(*profile.View)
	return v, args.Error(1)
}

func (m *MockProfileService) WakeUp(ctx context.Context, profileID string) (*profile.View, error) {
	args := m.Called(ctx, profileID)
	v, _ := args.Get(0).(*profile.View)
	return v, args.Error(1)
}

func (m *MockProfileService) Spend(ctx context.Context, profileID string, amount int) (*profile.View, error) {
	args := m.Called(ctx, profileID, amount)
	v, _ := args.Get(0).(*profile.View)
	return v, args.Error(1)
}

func (m *MockProfileService) TickEnergy(ctx context.Context, profileID string, elapsed time.Duration) (*profile.TickOutcome, error) {
	args := m.Called(ctx, profileID, elapsed)
	v, _ := args.Get(0).(*profile.TickOutcome)
	return v, args.Error(1)
}

func (m *MockProfileService) TickSleeping(ctx context.Context, since, now time.Time) (int, error) {
	args := m.Called(ctx, since, now)
	return args.Int(0), args.Error(1)
}

type MockRewardGenerator struct {
	mock.Mock
}

func (m *MockRewardGenerator) GenerateRewards(ctx context.Context, policy loot.RewardPolicy) ([]domain.ItemArchetype, error) {
	args := m.Called(ctx, policy)
	v, _ := args.Get(0).([]domain.ItemArchetype)
	return v, args.Error(1)
}

// newProfileRouter mounts the profile routes the same way the server does,
// so chi URL params resolve in tests
func newProfileRouter(svc profile.Service) http.Handler {
	h := NewProfileHandler(svc)
	r := chi.NewRouter()
	r.Post("/profiles", h.HandleCreate)
	r.Route("/profiles/{id}", func(r chi.Router) {
		r.Get("/", h.HandleGet)
		r.Post("/rewards", h.HandleClaimRewards)
		r.Get("/slots/{slot}/preview", h.HandlePreviewImprove)
		r.Post("/slots/{slot}/improve", h.HandleImprove)
		r.Post("/slots/{slot}/sell", h.HandleSell)
		r.Post("/energy/sleep", h.HandleSleep)
		r.Post("/energy/wake", h.HandleWake)
		r.Post("/energy/spend", h.HandleSpend)
		r.Post("/energy/tick", h.HandleTick)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const testProfileID = "3f1c2d4e-5a6b-4c7d-8e9f-0a1b2c3d4e5f"

func sampleView() *profile.View {
	return &profile.View{
		ID:        testProfileID,
		Balance:   250,
		Energy:    profile.EnergyView{Current: 80},
		Slots:     []profile.SlotView{{Index: 0, Empty: true}},
		FreeSlots: 1,
	}
}
