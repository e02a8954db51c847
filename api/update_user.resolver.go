package api

import (
	"papertrade/internal/service"

	"github.com/gin-gonic/gin"
)

// updateUserRequest is a partial update: absent fields keep their stored
// values.
type updateUserRequest struct {
	First  *string  `json:"first"`
	Last   *string  `json:"last"`
	Budget *float64 `json:"budget"`
}

func (m ApiHandler) updateUser(c *gin.Context) {
	username := c.Param("username")

	var requestBody updateUserRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	user, err := m.UserService.Update(c.Request.Context(), username, service.UpdateUserInput{
		First:  requestBody.First,
		Last:   requestBody.Last,
		Budget: requestBody.Budget,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"user":    newUserResponse(*user),
	})
}
