package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-grooming-manager/internal/router"
)

func TestHTTP_EndToEnd_GroomingFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "staff-1"

	// 1) Sin identidad no hay acceso a ninguna vista
	{
		st, _ := doReq(t, ts.URL, "GET", "/clients", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without identity, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/dashboard", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 dashboard without identity, got %d", st)
		}
	}

	// /health queda abierto
	{
		st, _ := doReq(t, ts.URL, "GET", "/health", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 health, got %d", st)
		}
	}

	// 2) Alta de dos clientes
	anaID := createClient(t, ts.URL, userID, map[string]any{
		"first_name": "Ana",
		"last_name":  "Benítez",
		"email":      "ana@example.com",
		"phone":      "555-123-4567",
		"is_active":  true,
	})
	zoeID := createClient(t, ts.URL, userID, map[string]any{
		"first_name": "Zoe",
		"last_name":  "Acosta",
		"email":      "zoe@example.com",
		"phone":      "+1 (555) 987-6543",
		"is_active":  true,
	})

	// 3) Listado ordenado por apellido
	{
		st, body := doReq(t, ts.URL, "GET", "/clients", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list clients, got %d body=%s", st, string(body))
		}
		var list []struct {
			ID string `json:"id"`
		}
		mustUnmarshal(t, body, &list)
		if len(list) != 2 || list[0].ID != zoeID || list[1].ID != anaID {
			t.Fatalf("expected [Acosta Benítez], got %s", string(body))
		}
	}

	// 4) Búsqueda por substring
	{
		st, body := doReq(t, ts.URL, "GET", "/clients?q=ben", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search clients, got %d", st)
		}
		var list []struct {
			ID string `json:"id"`
		}
		mustUnmarshal(t, body, &list)
		if len(list) != 1 || list[0].ID != anaID {
			t.Fatalf("expected only Ana for 'ben', got %s", string(body))
		}
	}

	// 5) Validación: mascota sin nombre => 422 con mensaje exacto
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", userID, map[string]any{
			"name":       "",
			"species":    "Dog",
			"breed":      "Poodle",
			"birth_date": "2022-05-10",
			"weight":     8.5,
			"client_id":  anaID,
			"status":     "active",
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d body=%s", st, string(body))
		}
		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Errors["name"] != "Pet name is required" {
			t.Fatalf("expected exact name message, got %s", string(body))
		}
	}

	// 6) Mascota con dueño inexistente => 422
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", userID, map[string]any{
			"name":       "Milo",
			"species":    "Dog",
			"breed":      "Poodle",
			"birth_date": "2022-05-10",
			"weight":     8.5,
			"client_id":  "no-such-client",
			"status":     "active",
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 unknown owner, got %d body=%s", st, string(body))
		}
		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Errors["client_id"] != "Owner not found" {
			t.Fatalf("expected owner not found, got %s", string(body))
		}
	}

	// 7) Alta de mascota válida
	petID := createPet(t, ts.URL, userID, anaID, "Milo")

	// 8) La ficha del cliente embebe el resumen de mascotas
	{
		st, body := doReq(t, ts.URL, "GET", "/clients/"+anaID, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get client, got %d", st)
		}
		var resp struct {
			Pets []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"pets"`
		}
		mustUnmarshal(t, body, &resp)
		if len(resp.Pets) != 1 || resp.Pets[0].ID != petID || resp.Pets[0].Name != "Milo" {
			t.Fatalf("expected embedded pet summary, got %s", string(body))
		}
	}

	// 9) Listado por dueño
	{
		st, body := doReq(t, ts.URL, "GET", "/clients/"+anaID+"/pets", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pets by client, got %d body=%s", st, string(body))
		}
		var list []struct {
			ID string `json:"id"`
		}
		mustUnmarshal(t, body, &list)
		if len(list) != 1 || list[0].ID != petID {
			t.Fatalf("expected Milo for Ana, got %s", string(body))
		}
	}

	// 10) Turno con duración inválida => 422
	{
		st, body := doReq(t, ts.URL, "POST", "/appointments", userID, map[string]any{
			"pet_id":           petID,
			"date_time":        "2026-03-15T10:30",
			"service_type":     "Grooming",
			"status":           "scheduled",
			"duration_minutes": 61,
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 bad duration, got %d body=%s", st, string(body))
		}
		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Errors["duration_minutes"] != "Duration must be in 15-minute increments" {
			t.Fatalf("expected duration message, got %s", string(body))
		}
	}

	// 11) Turno válido
	apptID := createAppointment(t, ts.URL, userID, petID, "2026-03-15T10:30")

	// 12) El listado de turnos trae mascota y dueño
	{
		st, body := doReq(t, ts.URL, "GET", "/appointments", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list appointments, got %d", st)
		}
		var list []struct {
			ID       string `json:"id"`
			DateTime string `json:"date_time"`
			Pet      *struct {
				Name  string `json:"name"`
				Owner struct {
					LastName string `json:"last_name"`
				} `json:"owner"`
			} `json:"pet"`
		}
		mustUnmarshal(t, body, &list)
		if len(list) != 1 || list[0].ID != apptID {
			t.Fatalf("expected 1 appointment, got %s", string(body))
		}
		if list[0].DateTime != "2026-03-15T10:30" {
			t.Fatalf("expected minute precision date_time, got %s", list[0].DateTime)
		}
		if list[0].Pet == nil || list[0].Pet.Name != "Milo" || list[0].Pet.Owner.LastName != "Benítez" {
			t.Fatalf("expected pet+owner join, got %s", string(body))
		}
	}

	// 13) Búsqueda de turnos por nombre de mascota
	{
		st, body := doReq(t, ts.URL, "GET", "/appointments?q=milo", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search appointments, got %d", st)
		}
		var list []struct {
			ID string `json:"id"`
		}
		mustUnmarshal(t, body, &list)
		if len(list) != 1 {
			t.Fatalf("expected 1 match for 'milo', got %s", string(body))
		}
	}

	// 14) Rango con formato inválido => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/appointments?from=2026-03-15&to=2026-03-16", userID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 bad range, got %d", st)
		}
	}

	// 15) Atajo de estado
	{
		st, body := doReq(t, ts.URL, "PATCH", "/appointments/"+apptID+"/status", userID, map[string]any{
			"status": "completed",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 status patch, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Status != "completed" {
			t.Fatalf("expected completed, got %s", string(body))
		}
	}

	// 16) Sugerencias de tipo de servicio
	{
		st, body := doReq(t, ts.URL, "GET", "/appointments/service-types", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 service types, got %d", st)
		}
		var types []string
		mustUnmarshal(t, body, &types)
		if len(types) == 0 || types[0] != "Grooming" {
			t.Fatalf("expected suggestions starting with Grooming, got %s", string(body))
		}
	}

	// 17) Dashboard
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d", st)
		}
		var resp struct {
			TotalClients      int `json:"total_clients"`
			ActiveClients     int `json:"active_clients"`
			TotalPets         int `json:"total_pets"`
			TotalAppointments int `json:"total_appointments"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.TotalClients != 2 || resp.ActiveClients != 2 || resp.TotalPets != 1 || resp.TotalAppointments != 1 {
			t.Fatalf("unexpected dashboard counts: %s", string(body))
		}
	}

	// 18) Borrado de turno y luego de mascota
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/appointments/"+apptID, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete appointment, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/appointments/"+apptID, userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+petID, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/clients/"+anaID+"/pets", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pets by client, got %d", st)
		}
	}
}

func TestHTTP_UpdateClient_Partial(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "staff-1"

	id := createClient(t, ts.URL, userID, map[string]any{
		"first_name": "Ana",
		"last_name":  "Benítez",
		"email":      "ana@example.com",
		"phone":      "555-123-4567",
		"is_active":  true,
	})

	// PATCH de un solo campo deja el resto intacto
	st, body := doReq(t, ts.URL, "PATCH", "/clients/"+id, userID, map[string]any{
		"phone": "(555) 987-6543",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
	}
	var resp struct {
		FirstName string `json:"first_name"`
		Phone     string `json:"phone"`
		IsActive  bool   `json:"is_active"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.Phone != "(555) 987-6543" || resp.FirstName != "Ana" || !resp.IsActive {
		t.Fatalf("expected partial update, got %s", string(body))
	}

	// un PATCH inválido se rechaza entero
	st, body = doReq(t, ts.URL, "PATCH", "/clients/"+id, userID, map[string]any{
		"email": "bad",
	})
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 invalid patch, got %d body=%s", st, string(body))
	}
}

func createClient(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/clients", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create client, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create client: missing id body=%s", string(body))
	}
	return resp.ID
}

func createPet(t *testing.T, baseURL, userID, clientID, name string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, map[string]any{
		"name":       name,
		"species":    "Dog",
		"breed":      "Poodle",
		"birth_date": "2022-05-10",
		"weight":     8.5,
		"client_id":  clientID,
		"status":     "active",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func createAppointment(t *testing.T, baseURL, userID, petID, dateTime string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/appointments", userID, map[string]any{
		"pet_id":           petID,
		"date_time":        dateTime,
		"service_type":     "Grooming",
		"status":           "scheduled",
		"duration_minutes": 60,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create appointment, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create appointment: missing id body=%s", string(body))
	}
	return resp.ID
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
