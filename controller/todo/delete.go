package todo

import (
	"net/http"

	"duit/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func DeleteController(router *gin.Engine, auth gin.HandlerFunc, svc *services.TodoService) {
	router.DELETE("/todos/:id", auth, func(c *gin.Context) {
		DeleteTodo(c, svc)
	})
}

// DeleteTodo removes a todo. Deleting an id that is already gone surfaces
// the store's NotFound instead of pretending it worked.
func DeleteTodo(c *gin.Context, svc *services.TodoService) {
	if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Failed to delete todo: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
