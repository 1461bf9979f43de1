package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbeariajosimar/booking-api/internal/config"
	"github.com/barbeariajosimar/booking-api/internal/routes"
	"github.com/barbeariajosimar/booking-api/internal/store"
)

func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		OwnerPassword: "admin123",
	}

	r := gin.New()
	routes.RegisterRoutes(r, store.New(store.NewMemoryKV()), cfg)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Uma data futura em dia útil, para passar nas regras de slot.
func futureBookableDate() string {
	d := time.Now().AddDate(0, 0, 14)
	if d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Cliente Teste",
		"email":    email,
		"password": "pass1",
		"phone":    "11999990000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func ownerLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/auth/owner", "", gin.H{"password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTestAPI(t)
	registerAndLogin(t, r, "a@x.com")

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Outro",
		"email":    "a@x.com",
		"password": "pass2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupTestAPI(t)
	registerAndLogin(t, r, "a@x.com")

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "a@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingFlow(t *testing.T) {
	r := setupTestAPI(t)
	token := registerAndLogin(t, r, "a@x.com")
	date := futureBookableDate()

	createBody := gin.H{
		"client_name":  "Cliente Teste",
		"client_phone": "11999990000",
		"service_id":   1,
		"barber_id":    1,
		"date":         date,
		"time":         "10:00",
	}

	w := doJSON(r, http.MethodPost, "/api/me/appointments", token, createBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "confirmed", created.Status)

	// mesmo slot, mesmo barbeiro: conflito
	w = doJSON(r, http.MethodPost, "/api/me/appointments", token, createBody)
	assert.Equal(t, http.StatusConflict, w.Code)

	// mesmo slot, outro barbeiro: livre
	otherBarber := gin.H{}
	for k, v := range createBody {
		otherBarber[k] = v
	}
	otherBarber["barber_id"] = 2
	w = doJSON(r, http.MethodPost, "/api/me/appointments", token, otherBarber)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// cancelar libera o slot
	w = doJSON(r, http.MethodPatch, "/api/me/appointments/"+created.ID+"/cancel", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodPost, "/api/me/appointments", token, createBody)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestClientCannotTouchForeignAppointment(t *testing.T) {
	r := setupTestAPI(t)
	tokenA := registerAndLogin(t, r, "a@x.com")
	tokenB := registerAndLogin(t, r, "b@x.com")

	w := doJSON(r, http.MethodPost, "/api/me/appointments", tokenA, gin.H{
		"client_name":  "Cliente A",
		"client_phone": "11999990000",
		"service_id":   1,
		"barber_id":    1,
		"date":         futureBookableDate(),
		"time":         "11:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPatch, "/api/me/appointments/"+created.ID+"/cancel", tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHideRemovesFromClientListKeepsOwnerView(t *testing.T) {
	r := setupTestAPI(t)
	token := registerAndLogin(t, r, "a@x.com")
	owner := ownerLogin(t, r)

	w := doJSON(r, http.MethodPost, "/api/me/appointments", token, gin.H{
		"client_name":  "Cliente Teste",
		"client_phone": "11999990000",
		"service_id":   2,
		"barber_id":    1,
		"date":         futureBookableDate(),
		"time":         "15:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPatch, "/api/me/appointments/"+created.ID+"/hide", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/api/me/appointments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	// visão do dono mantém o registro
	w = doJSON(r, http.MethodGet, "/api/owner/appointments", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)
}

func TestOwnerGate(t *testing.T) {
	r := setupTestAPI(t)
	token := registerAndLogin(t, r, "a@x.com")

	// cliente não entra no painel do dono
	w := doJSON(r, http.MethodGet, "/api/owner/appointments", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// sem token não entra em rota privada
	w = doJSON(r, http.MethodGet, "/api/me/appointments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// senha errada do dono
	w = doJSON(r, http.MethodPost, "/api/auth/owner", "", gin.H{"password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOwnerManagesStaff(t *testing.T) {
	r := setupTestAPI(t)
	owner := ownerLogin(t, r)

	w := doJSON(r, http.MethodPost, "/api/owner/barbers", owner, gin.H{"name": "Miguel"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var barber struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &barber))
	assert.Greater(t, barber.ID, int64(2))

	w = doJSON(r, http.MethodGet, "/api/public/barbers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Miguel")

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/owner/barbers/%d", barber.ID), owner, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/api/public/barbers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Miguel")
}

func TestPublicCatalogAndAvailability(t *testing.T) {
	r := setupTestAPI(t)

	w := doJSON(r, http.MethodGet, "/api/public/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Corte Clássico")

	w = doJSON(r, http.MethodGet, "/api/public/availability?date="+futureBookableDate()+"&barber_id=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "09:00")

	w = doJSON(r, http.MethodGet, "/api/public/availability", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
