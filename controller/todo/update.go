package todo

import (
	"net/http"

	"duit/dto"
	"duit/services"

	"github.com/gin-gonic/gin"
)

func UpdateController(router *gin.Engine, auth gin.HandlerFunc, svc *services.TodoService) {
	router.PATCH("/todos/:id/completed", auth, func(c *gin.Context) {
		ToggleCompleted(c, svc)
	})
	router.PATCH("/todos/:id/recurring", auth, func(c *gin.Context) {
		ToggleRecurring(c, svc)
	})
}

// ToggleCompleted writes the opposite of the completed value the client
// last saw.
func ToggleCompleted(c *gin.Context, svc *services.TodoService) {
	var req dto.ToggleCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := svc.ToggleCompleted(c.Request.Context(), c.Param("id"), *req.Completed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo updated successfully"})
}

func ToggleRecurring(c *gin.Context, svc *services.TodoService) {
	var req dto.ToggleRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := svc.ToggleRecurring(c.Request.Context(), c.Param("id"), *req.Recurring); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo updated successfully"})
}
