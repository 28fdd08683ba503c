package todo

import (
	"errors"
	"net/http"

	"duit/dto"
	"duit/middleware"
	"duit/services"

	"github.com/gin-gonic/gin"
)

func CreateController(router *gin.Engine, auth gin.HandlerFunc, svc *services.TodoService) {
	router.POST("/todos", auth, func(c *gin.Context) {
		CreateTodo(c, svc)
	})
}

func CreateTodo(c *gin.Context, svc *services.TodoService) {
	session := middleware.SessionFrom(c)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := svc.Create(c.Request.Context(), session, services.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Recurring:   req.Recurring,
		Priority:    req.Priority,
		Tags:        req.Tags,
		Color:       req.Color,
		Expiry:      req.Expiry,
	})
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add todo: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Todo created successfully",
		"id":      created.ID,
	})
}
