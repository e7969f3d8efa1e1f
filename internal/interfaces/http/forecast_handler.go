package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pronostico-api/internal/application/dto"
	appfc "github.com/jhoicas/Pronostico-api/internal/application/forecast"
	"github.com/jhoicas/Pronostico-api/internal/domain"
)

// ForecastHandler expone el pronóstico por producto y el reporte de reposición.
type ForecastHandler struct {
	forecastUC *appfc.ForecastUseCase
	reportUC   *appfc.ReportUseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(forecastUC *appfc.ForecastUseCase, reportUC *appfc.ReportUseCase) *ForecastHandler {
	return &ForecastHandler{forecastUC: forecastUC, reportUC: reportUC}
}

// GetForecast godoc
// @Summary      Pronóstico de demanda de un producto
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Param        productId  path   string  true   "ID del producto"
// @Param        horizon    query  int     false  "Horizonte en días"  default(7)
// @Success      200  {object}  dto.ForecastResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/forecast/{productId} [get]
func (h *ForecastHandler) GetForecast(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	horizon := c.QueryInt("horizon", 0)

	out, err := h.forecastUC.GetForecast(companyID, productID, horizon)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInsufficientData):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_DATA", Message: "sin historial de ventas para pronosticar"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "parámetros de pronóstico inválidos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// GetReport godoc
// @Summary      Reporte de reposición de la tienda
// @Description  Una fila por producto activo; las filas con error llevan código y van al final.
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Param        lead_time  query  int  false  "Lead time en días (default: configuración)"
// @Param        horizon    query  int  false  "Horizonte en días"  default(7)
// @Success      200  {object}  dto.RecommendationReportDTO
// @Router       /api/forecast/report [get]
func (h *ForecastHandler) GetReport(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	leadTime := c.QueryInt("lead_time", -1)
	horizon := c.QueryInt("horizon", 0)

	out, err := h.reportUC.GenerateReport(companyID, leadTime, horizon)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
