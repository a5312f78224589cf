package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/geo-directory-service/internal/pkg/utils"
	"github.com/geo-directory-service/internal/pkg/validator"
	"github.com/geo-directory-service/internal/usecase"
	"github.com/geo-directory-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CityHandler - обработчик запросов по городам
type CityHandler struct {
	cityUC *usecase.CityUseCase
	logger *zap.Logger
}

// NewCityHandler - создание нового CityHandler
func NewCityHandler(cityUC *usecase.CityUseCase, logger *zap.Logger) *CityHandler {
	return &CityHandler{
		cityUC: cityUC,
		logger: logger,
	}
}

// Search godoc
// @Summary Поиск городов по имени
// @Tags Cities
// @Produce json
// @Param q query string true "Подстрока имени"
// @Success 200 {array} domain.City
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /cities/search [get]
func (h *CityHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{Query: c.Query("q")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	cities, err := h.cityUC.Search(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, cities)
}

// ListByState godoc
// @Summary Города штата
// @Tags Cities
// @Produce json
// @Param stateId query int true "ID штата"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(3)
// @Success 200 {array} domain.City
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /cities/by-state [get]
func (h *CityHandler) ListByState(c *fiber.Ctx) error {
	stateID, err := requiredInt64(c, "stateId")
	if err != nil {
		return utils.SendError(c, err)
	}

	page, err := pageRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.ListCitiesByStateRequest{StateID: stateID, PageRequest: page}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	cities, err := h.cityUC.ListByState(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, cities)
}
