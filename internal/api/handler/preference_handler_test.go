package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/younivent/platform/internal/core/domain"
)

func TestPreferenceHandler_CurrencyRoundTrip(t *testing.T) {
	svcs := newTestServices()
	h := NewPreferenceHandler(svcs.prefs)
	e := newTestEcho()
	user := clientAdmin()

	c, rec := newTestContext(e, http.MethodPut, "/v1/preferences/currency",
		`{"symbol":"€","separator":"space","code":"EUR","decimals":2}`, user)
	if err := h.SetCurrency(c); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	requireCode(t, rec, http.StatusOK)

	c2, rec2 := newTestContext(e, http.MethodGet, "/v1/preferences/currency", "", user)
	if err := h.GetCurrency(c2); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	var cs domain.CurrencySettings
	if err := json.Unmarshal(rec2.Body.Bytes(), &cs); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if cs.Symbol != "€" || cs.Separator != domain.SeparatorSpace || cs.Code != "EUR" {
		t.Fatalf("round trip lost settings: %+v", cs)
	}
}

func TestPreferenceHandler_CurrencyValidation(t *testing.T) {
	svcs := newTestServices()
	h := NewPreferenceHandler(svcs.prefs)
	e := newTestEcho()

	c, _ := newTestContext(e, http.MethodPut, "/v1/preferences/currency",
		`{"symbol":"$","separator":"tab","code":"USD","decimals":2}`, clientAdmin())
	err := h.SetCurrency(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad separator, got %v", err)
	}
}

func TestPreferenceHandler_DefaultCurrencyForNewUser(t *testing.T) {
	svcs := newTestServices()
	h := NewPreferenceHandler(svcs.prefs)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/v1/preferences/currency", "", superAdmin())
	if err := h.GetCurrency(c); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	var cs domain.CurrencySettings
	if err := json.Unmarshal(rec.Body.Bytes(), &cs); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if cs != domain.DefaultCurrency {
		t.Fatalf("expected defaults, got %+v", cs)
	}
}

func TestPreferenceHandler_LanguageValidation(t *testing.T) {
	svcs := newTestServices()
	h := NewPreferenceHandler(svcs.prefs)
	e := newTestEcho()

	c, _ := newTestContext(e, http.MethodPut, "/v1/preferences/language", `{"language":"pt"}`, clientAdmin())
	err := h.SetLanguage(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unsupported locale, got %v", err)
	}
}

func TestPreferenceHandler_PeriodUnknownValue(t *testing.T) {
	svcs := newTestServices()
	h := NewPreferenceHandler(svcs.prefs)
	e := newTestEcho()

	c, _ := newTestContext(e, http.MethodPut, "/v1/preferences/period", `{"period":"quarterly"}`, clientAdmin())
	if err := h.SetPeriod(c); !errors.Is(err, domain.ErrUnknownPeriod) {
		t.Fatalf("expected ErrUnknownPeriod, got %v", err)
	}
}

func TestPreferenceHandler_Translations(t *testing.T) {
	svcs := newTestServices()
	h := NewPreferenceHandler(svcs.prefs)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/v1/i18n/fr", "", clientAdmin())
	c.SetParamNames("lang")
	c.SetParamValues("fr")
	if err := h.Translations(c); err != nil {
		t.Fatalf("translations failed: %v", err)
	}
	requireCode(t, rec, http.StatusOK)

	var table map[string]map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &table); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if table["nav"]["dashboard"] != "Tableau de bord" {
		t.Fatalf("expected French table, got %q", table["nav"]["dashboard"])
	}

	// Unsupported locales resolve to English.
	c2, rec2 := newTestContext(e, http.MethodGet, "/v1/i18n/pt", "", clientAdmin())
	c2.SetParamNames("lang")
	c2.SetParamValues("pt")
	if err := h.Translations(c2); err != nil {
		t.Fatalf("translations failed: %v", err)
	}
	if err := json.Unmarshal(rec2.Body.Bytes(), &table); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if table["nav"]["dashboard"] != "Dashboard" {
		t.Fatalf("expected English fallback, got %q", table["nav"]["dashboard"])
	}
}
