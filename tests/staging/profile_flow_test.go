//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stagingProfile struct {
	ID      string `json:"id"`
	Balance int    `json:"balance"`
	Energy  struct {
		Current int    `json:"current"`
		Mode    string `json:"mode"`
	} `json:"energy"`
	FreeSlots int `json:"free_slots"`
}

type stagingClaim struct {
	Stored []struct {
		Index int `json:"index"`
	} `json:"stored"`
	Overflow []string `json:"overflow"`
	Balance  int      `json:"balance"`
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

// TestProfileLifecycle walks one profile through claim, forge, sale and energy
func TestProfileLifecycle(t *testing.T) {
	resp, body := makeRequest(t, http.MethodPost, "/api/v1/profiles", map[string]int{"opening_balance": 1000})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	p := decode[stagingProfile](t, body)
	require.NotEmpty(t, p.ID)
	base := "/api/v1/profiles/" + p.ID

	resp, body = makeRequest(t, http.MethodPost, base+"/rewards", map[string]interface{}{
		"policy":         map[string]int{"count": 2},
		"bonus_currency": 25,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	claim := decode[stagingClaim](t, body)
	require.NotEmpty(t, claim.Stored)
	assert.Equal(t, 1025, claim.Balance)

	slot := claim.Stored[0].Index
	resp, body = makeRequest(t, http.MethodGet, fmt.Sprintf("%s/slots/%d/preview", base, slot), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = makeRequest(t, http.MethodPost, fmt.Sprintf("%s/slots/%d/improve", base, slot), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = makeRequest(t, http.MethodPost, fmt.Sprintf("%s/slots/%d/sell", base, slot), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = makeRequest(t, http.MethodPost, base+"/energy/spend", map[string]int{"amount": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = makeRequest(t, http.MethodPost, base+"/energy/sleep", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "sleeping", decode[stagingProfile](t, body).Energy.Mode)

	resp, body = makeRequest(t, http.MethodPost, base+"/energy/wake", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "awake", decode[stagingProfile](t, body).Energy.Mode)
}

func TestUnknownProfile(t *testing.T) {
	resp, _ := makeRequest(t, http.MethodGet, "/api/v1/profiles/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGenerateLoot(t *testing.T) {
	resp, body := makeRequest(t, http.MethodPost, "/api/v1/loot/generate", map[string]interface{}{
		"count": 5, "tiers": []int{1, 2}, "mode": "even",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"count":5`)
}
