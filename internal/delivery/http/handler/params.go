package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/geo-directory-service/internal/pkg/errors"
	"github.com/geo-directory-service/internal/usecase/dto"
)

// queryInt читает целый query параметр; отсутствует - def, не число - INVALID_REQUEST
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ErrInvalidRequest.WithDetail(key, "must be an integer")
	}
	return v, nil
}

// requiredInt64 - обязательный целый query параметр (идентификатор)
func requiredInt64(c *fiber.Ctx, key string) (int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, errors.ErrInvalidRequest.WithDetail(key, "is required")
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidRequest.WithDetail(key, "must be an integer")
	}
	return v, nil
}

func pageRequest(c *fiber.Ctx) (dto.PageRequest, error) {
	page, err := queryInt(c, "page", dto.DefaultPage)
	if err != nil {
		return dto.PageRequest{}, err
	}

	limit, err := queryInt(c, "limit", dto.DefaultLimit)
	if err != nil {
		return dto.PageRequest{}, err
	}

	return dto.PageRequest{Page: page, Limit: limit}, nil
}
