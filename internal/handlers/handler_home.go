package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// statusResponse is the body of the root status route.
type statusResponse struct {
	Service           string `json:"service"`
	ReportingTimezone string `json:"reportingTimezone"`
	DataSource        string `json:"dataSource"`
}

// getHome godoc
// @Summary Show the status of server.
// @Description Reports the service name, the reporting time zone and the configured record source.
// @Tags root
// @Produce json
// @Success 200 {object} handlers.statusResponse
// @Router / [get]
func getHome(loc *time.Location, dataSource string) gin.HandlerFunc {
	status := statusResponse{
		Service:           "finance-dashboard",
		ReportingTimezone: loc.String(),
		DataSource:        dataSource,
	}
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, status)
	}
}
