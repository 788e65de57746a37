package handlers

import (
	"net/http"

	"studiobook/models"

	"github.com/gin-gonic/gin"
)

// ListPackages returns the static catalog of bookable studio packages.
func ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, models.Packages)
}
