package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/geo-directory-service/internal/pkg/utils"
	"github.com/geo-directory-service/internal/pkg/validator"
	"github.com/geo-directory-service/internal/usecase"
	"github.com/geo-directory-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// StateHandler - обработчик запросов по штатам
type StateHandler struct {
	stateUC *usecase.StateUseCase
	logger  *zap.Logger
}

// NewStateHandler - создание нового StateHandler
func NewStateHandler(stateUC *usecase.StateUseCase, logger *zap.Logger) *StateHandler {
	return &StateHandler{
		stateUC: stateUC,
		logger:  logger,
	}
}

// Search godoc
// @Summary Поиск штатов по имени
// @Tags States
// @Produce json
// @Param q query string true "Подстрока имени"
// @Success 200 {array} domain.State
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /states/search [get]
func (h *StateHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{Query: c.Query("q")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	states, err := h.stateUC.Search(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, states)
}

// ListByCountry godoc
// @Summary Штаты страны
// @Tags States
// @Produce json
// @Param countryId query int true "ID страны"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(3)
// @Success 200 {array} domain.State
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /states/by-country [get]
func (h *StateHandler) ListByCountry(c *fiber.Ctx) error {
	countryID, err := requiredInt64(c, "countryId")
	if err != nil {
		return utils.SendError(c, err)
	}

	page, err := pageRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.ListStatesByCountryRequest{CountryID: countryID, PageRequest: page}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	states, err := h.stateUC.ListByCountry(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, states)
}
