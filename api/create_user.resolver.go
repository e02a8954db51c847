package api

import (
	"papertrade/internal/db/models/sqlite/model"
	"papertrade/internal/service"

	"github.com/gin-gonic/gin"
)

type createUserRequest struct {
	Username string  `json:"username" binding:"required"`
	First    string  `json:"first"`
	Last     string  `json:"last"`
	Budget   float64 `json:"budget"`
}

type userResponse struct {
	Username string  `json:"username"`
	First    string  `json:"first"`
	Last     string  `json:"last"`
	Budget   float64 `json:"budget"`
}

func newUserResponse(user model.User) userResponse {
	return userResponse{
		Username: user.Username,
		First:    user.First,
		Last:     user.Last,
		Budget:   user.Budget,
	}
}

func (m ApiHandler) createUser(c *gin.Context) {
	var requestBody createUserRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	user, err := m.UserService.Create(c.Request.Context(), service.CreateUserInput{
		Username: requestBody.Username,
		First:    requestBody.First,
		Last:     requestBody.Last,
		Budget:   requestBody.Budget,
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
