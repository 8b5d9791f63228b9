package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/miasteczkole/backend/core/advent"
)

type adventApi struct {
	svc      *advent.Service
	validate *validator.Validate
}

func registerAdventAPI(g *echo.Group, svc *advent.Service, validate *validator.Validate) {
	api := adventApi{svc: svc, validate: validate}

	g.POST("/register", api.register)
	g.GET("/days", api.days)
	g.POST("/submit", api.submit)
}

// Handlers

func (api *adventApi) register(ctx echo.Context) error {
	var data advent.Registration
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Registration")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.Register(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "registering")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *adventApi) days(ctx echo.Context) error {
	days, unlocked := api.svc.Days()
	return ctx.JSON(http.StatusOK, DaysResponse{Days: days, Unlocked: unlocked})
}

func (api *adventApi) submit(ctx echo.Context) error {
	var data advent.Submission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Submission")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.Submit(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "submitting")
	}
	return ctx.JSON(http.StatusOK, res)
}

type DaysResponse struct {
	Days     []advent.Day `json:"days"`
	Unlocked int          `json:"unlocked"`
}
