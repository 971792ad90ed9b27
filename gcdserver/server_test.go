package gcdserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func postForm(t *testing.T, server Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, "/gcd", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	server.Mux.ServeHTTP(recorder, request)
	return recorder
}

func TestGetFormServesTheCalculator(t *testing.T) {
	server := NewServer(Settings{})

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	server.Mux.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("GET / returned status %d, want 200", recorder.Code)
	}
	body, _ := io.ReadAll(recorder.Body)
	if !strings.Contains(string(body), `action="/gcd"`) {
		t.Error("form page does not post to /gcd")
	}
}

func TestPostGcdComputesOverEveryValue(t *testing.T) {
	server := NewServer(Settings{})

	recorder := postForm(t, server, url.Values{
		"n": {"12", "18"},
		"m": {"30"},
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("POST /gcd returned status %d, want 200", recorder.Code)
	}
	body, _ := io.ReadAll(recorder.Body)
	if !strings.Contains(string(body), "<b>6</b>") {
		t.Errorf("POST /gcd response %q does not contain the divisor 6", string(body))
	}
}

func TestPostGcdRejectsMissingParameter(t *testing.T) {
	server := NewServer(Settings{})

	recorder := postForm(t, server, url.Values{"n": {"12"}})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("POST /gcd without m returned status %d, want 400", recorder.Code)
	}
	body, _ := io.ReadAll(recorder.Body)
	if !strings.Contains(string(body), `"m"`) {
		t.Errorf("POST /gcd response %q does not name the missing parameter", string(body))
	}
}

func TestPostGcdRejectsOtherMethods(t *testing.T) {
	server := NewServer(Settings{})

	request := httptest.NewRequest(http.MethodGet, "/gcd", nil)
	recorder := httptest.NewRecorder()
	server.Mux.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /gcd returned status %d, want 405", recorder.Code)
	}
}

func TestPostGcdRejectsNonNumericValue(t *testing.T) {
	server := NewServer(Settings{})

	for _, value := range []string{"twelve", "-4", "0", ""} {
		recorder := postForm(t, server, url.Values{
			"n": {value},
			"m": {"30"},
		})
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("POST /gcd with n=%q returned status %d, want 400", value, recorder.Code)
		}
	}
}
