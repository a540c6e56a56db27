package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/i18n"
	"github.com/younivent/platform/internal/core/ports"
)

type PreferenceHandler struct {
	prefs ports.PreferenceService
}

func NewPreferenceHandler(prefs ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

type currencyRequest struct {
	Symbol    string `json:"symbol" validate:"required"`
	Separator string `json:"separator" validate:"required,oneof=none space"`
	Code      string `json:"code" validate:"required,len=3"`
	Decimals  int    `json:"decimals" validate:"oneof=0 2"`
}

type languageRequest struct {
	Language string `json:"language" validate:"required,oneof=en fr es de"`
}

type periodRequest struct {
	Period string `json:"period" validate:"required"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// GetCurrency returns the caller's currency settings.
//
// @Summary      Get currency preference
// @Tags         preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CurrencySettings
// @Router       /v1/preferences/currency [get]
func (h *PreferenceHandler) GetCurrency(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.prefs.Currency(c.Request().Context(), identity.ID))
}

// SetCurrency stores the caller's currency settings.
//
// @Summary      Set currency preference
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CurrencySettings
// @Failure      422  {object}  errorResponse
// @Router       /v1/preferences/currency [put]
func (h *PreferenceHandler) SetCurrency(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req currencyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	cs := domain.CurrencySettings{
		Symbol:    req.Symbol,
		Separator: domain.Separator(req.Separator),
		Code:      req.Code,
		Decimals:  req.Decimals,
	}
	if err := h.prefs.SetCurrency(c.Request().Context(), identity.ID, cs); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cs)
}

// GetLanguage returns the caller's locale.
func (h *PreferenceHandler) GetLanguage(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	lang := h.prefs.Language(c.Request().Context(), identity.ID)
	return c.JSON(http.StatusOK, map[string]string{"language": string(lang)})
}

// SetLanguage stores the caller's locale.
func (h *PreferenceHandler) SetLanguage(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req languageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.prefs.SetLanguage(c.Request().Context(), identity.ID, domain.Language(req.Language)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"language": req.Language})
}

// GetPeriod returns the caller's reporting window.
func (h *PreferenceHandler) GetPeriod(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	p := h.prefs.Period(c.Request().Context(), identity.ID)
	return c.JSON(http.StatusOK, map[string]string{"period": string(p)})
}

// SetPeriod stores the caller's reporting window.
func (h *PreferenceHandler) SetPeriod(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req periodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.prefs.SetPeriod(c.Request().Context(), identity.ID, domain.Period(req.Period)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"period": req.Period})
}

// GetTheme returns the caller's color theme.
func (h *PreferenceHandler) GetTheme(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	t := h.prefs.Theme(c.Request().Context(), identity.ID)
	return c.JSON(http.StatusOK, map[string]string{"theme": string(t)})
}

// SetTheme stores the caller's color theme.
func (h *PreferenceHandler) SetTheme(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.prefs.SetTheme(c.Request().Context(), identity.ID, domain.Theme(req.Theme)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"theme": req.Theme})
}

// Translations returns the resolved translation table for a locale.
// Unsupported locales resolve to English.
//
// @Summary      Get translation table
// @Tags         preferences
// @Produce      json
// @Param        lang  path  string  true  "Locale code"
// @Success      200   {object}  map[string]any
// @Router       /v1/i18n/{lang} [get]
func (h *PreferenceHandler) Translations(c echo.Context) error {
	lang := domain.Language(c.Param("lang"))
	return c.JSON(http.StatusOK, i18n.Table(lang))
}
