package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	portfolioUC "fundcircle-backend/internal/usecase/portfolio"
)

type PortfolioHandler struct{ uc *portfolioUC.Usecase }

func NewPortfolioHandler(uc *portfolioUC.Usecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

// Summary serves the fund-level rollup. On a fetch failure the dashboard gets
// an explicit error, never a silent zero row.
func (h *PortfolioHandler) Summary(c echo.Context) error {
	s, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "portfolio data unavailable"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *PortfolioHandler) Contributions(c echo.Context) error {
	contribs, err := h.uc.Contributions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "portfolio data unavailable"})
	}
	return c.JSON(http.StatusOK, contribs)
}

func (h *PortfolioHandler) Outstanding(c echo.Context) error {
	out, err := h.uc.Outstanding(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"loan_id":     c.Param("loan_id"),
		"outstanding": out,
	})
}
