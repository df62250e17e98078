package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var errNotPositive = errors.New("value must be a positive integer")

// positiveIntQuery parses an optional positive-integer query parameter.
// Returns 0 with no error when the parameter is absent.
func positiveIntQuery(c *fiber.Ctx, key string) (uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errNotPositive
	}
	return uint(n), nil
}

func positiveIntParam(c *fiber.Ctx, key string) (uint, error) {
	n, err := strconv.Atoi(c.Params(key))
	if err != nil || n <= 0 {
		return 0, errNotPositive
	}
	return uint(n), nil
}
