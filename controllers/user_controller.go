package controllers

import (
	"net/http"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.MustGet("email").(string)

	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(email, input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
