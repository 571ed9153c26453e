// Package v1 implements the v1 API: storing expenses and presenting them
// with the budgets of the user.
package v1

import (
	"time"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/envelope-zero/expenses/internal/models"
	"github.com/envelope-zero/expenses/internal/report"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// Controller serves the v1 API.
type Controller struct {
	Engine   *budget.Engine
	Location *time.Location // Home location for week and month boundaries, UTC if nil
}

func (co Controller) location() *time.Location {
	if co.Location == nil {
		return time.UTC
	}

	return co.Location
}

func (co Controller) now() time.Time {
	return time.Now().In(co.location())
}

// user returns the name of the authenticated user. Budget catalogs are
// looked up with it.
func user(c *gin.Context) string {
	return c.GetString(string(models.ContextUser))
}

// collection returns the collection of expenses the authenticated user
// works on.
func collection(c *gin.Context) string {
	return c.GetString(string(models.ContextCollection))
}

func locale(c *gin.Context) language.Tag {
	return report.Tag(c.GetHeader("Accept-Language"))
}
