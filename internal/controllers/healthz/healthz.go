package healthz

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/expenses/internal/httputil"
	"github.com/envelope-zero/expenses/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errUnhealthy = errors.New("the database is not reachable")

type httpError struct {
	Error string `json:"error" example:"the database is not reachable"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if models.DB == nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: errUnhealthy.Error()})
		return
	}

	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		log.Error().Err(err).Msg("healthz")
		c.JSON(http.StatusInternalServerError, httpError{Error: errUnhealthy.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
