package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/geo-directory-service/internal/pkg/errors"
	"github.com/geo-directory-service/internal/pkg/utils"
	"github.com/geo-directory-service/internal/pkg/validator"
	"github.com/geo-directory-service/internal/usecase"
	"github.com/geo-directory-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CountryHandler - обработчик запросов по странам
type CountryHandler struct {
	countryUC *usecase.CountryUseCase
	logger    *zap.Logger
}

// NewCountryHandler - создание нового CountryHandler
func NewCountryHandler(countryUC *usecase.CountryUseCase, logger *zap.Logger) *CountryHandler {
	return &CountryHandler{
		countryUC: countryUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Список стран
// @Description Возвращает страны постранично в порядке загрузки
// @Tags Countries
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(3)
// @Success 200 {array} domain.Country
// @Failure 400 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /countries [get]
func (h *CountryHandler) List(c *fiber.Ctx) error {
	req, err := pageRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	countries, err := h.countryUC.List(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, countries)
}

// Search godoc
// @Summary Поиск стран по имени
// @Description Регистрозависимый поиск по подстроке, спецсимволы шаблонов не интерпретируются
// @Tags Countries
// @Produce json
// @Param q query string true "Подстрока имени"
// @Success 200 {array} domain.Country
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /countries/search [get]
func (h *CountryHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{Query: c.Query("q")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	countries, err := h.countryUC.Search(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, countries)
}

// GetSummary godoc
// @Summary Сводка по стране
// @Description Код страны и количество её штатов и городов. Имя сравнивается точно
// @Tags Countries
// @Produce json
// @Produce plain
// @Param name query string true "Точное имя страны"
// @Success 200 {object} dto.CountrySummaryResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {string} string "Country not found"
// @Failure 500 {object} utils.ErrorResponse
// @Router /country [get]
func (h *CountryHandler) GetSummary(c *fiber.Ctx) error {
	req := dto.CountrySummaryRequest{Name: c.Query("name")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	summary, err := h.countryUC.GetSummary(c.UserContext(), req)
	if stderrors.Is(err, errors.ErrCountryNotFound) {
		return utils.SendText(c, fiber.StatusNotFound, errors.ErrCountryNotFound.Message)
	}
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, summary)
}
