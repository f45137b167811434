package rest

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PayloadValidator plugs go-playground/validator into echo's Bind/Validate
// flow.
type PayloadValidator struct {
	validate *validator.Validate
}

func NewPayloadValidator() *PayloadValidator {
	return &PayloadValidator{validate: validator.New()}
}

func (v *PayloadValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
