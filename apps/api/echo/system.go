package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miasteczkole/backend/core"
)

// systemApi serves the connectivity diagnostic; not part of the functional core.
type systemApi struct {
	conf  *core.Config
	store core.DocumentStore
}

func registerSystemAPI(e *echo.Echo, conf *core.Config, store core.DocumentStore) {
	api := systemApi{conf: conf, store: store}

	e.GET("/test", api.test)
}

type TestResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	EmailConfigured  bool     `json:"emailjs_configured"`
}

func (api *systemApi) test(ctx echo.Context) error {
	res := TestResponse{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
		EmailConfigured:  api.conf.EmailConfigured(),
	}

	reqCtx := ctx.Request().Context()
	if api.store != nil {
		if err := api.store.Ping(reqCtx); err != nil {
			res.Database = "error: " + err.Error()
		} else {
			res.Database = "connected"
			res.ConnectionStatus = "connected"
			if cols, err := api.store.Collections(reqCtx); err != nil {
				res.Database = "connected but error: " + err.Error()
			} else {
				if len(cols) > 10 {
					cols = cols[:10]
				}
				res.Collections = cols
			}
		}
	}
	return ctx.JSON(http.StatusOK, res)
}
