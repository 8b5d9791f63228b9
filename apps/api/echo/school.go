package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miasteczkole/backend/core"
	"github.com/miasteczkole/backend/core/school"
)

type schoolApi struct {
	info school.Info
}

func registerSchoolAPI(g *echo.Group, conf *core.Config) {
	api := schoolApi{info: school.NewInfo(conf)}

	g.GET("/info", api.getInfo)
}

func (api *schoolApi) getInfo(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.info)
}
