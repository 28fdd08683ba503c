package todo

import (
	"errors"
	"net/http"
	"time"

	"duit/dto"
	"duit/middleware"
	"duit/model"
	"duit/services"

	"github.com/gin-gonic/gin"
)

func ListController(router *gin.Engine, auth gin.HandlerFunc, svc *services.TodoService) {
	router.GET("/todos", auth, func(c *gin.Context) {
		ListTodos(c, svc)
	})
}

// ListTodos runs one refresh cycle and returns the reconciled todos grouped
// into the three views the client renders.
func ListTodos(c *gin.Context, svc *services.TodoService) {
	session := middleware.SessionFrom(c)

	res, err := svc.Refresh(c.Request.Context(), session)
	if err != nil {
		if errors.Is(err, services.ErrRefreshDropped) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Refresh already in flight"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos: " + err.Error()})
		return
	}

	doing := make([]dto.TodoResponse, 0)
	completed := make([]dto.TodoResponse, 0)
	recurring := make([]dto.TodoResponse, 0)
	for _, t := range res.Todos {
		if t.Completed {
			completed = append(completed, toResponse(t, len(completed), svc))
		} else {
			doing = append(doing, toResponse(t, len(doing), svc))
		}
		if t.Recurring {
			recurring = append(recurring, toResponse(t, len(recurring), svc))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"doing":     doing,
		"completed": completed,
		"recurring": recurring,
		"errors":    res.Failures,
	})
}

// toResponse maps a todo for display. Todos without a color get one by
// rotation over the palette, keyed by position within the section.
func toResponse(t model.Todo, idx int, svc *services.TodoService) dto.TodoResponse {
	color := t.Color
	if color == "" {
		color = model.Palette[idx%len(model.Palette)]
	}
	return dto.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Recurring:   t.Recurring,
		Priority:    t.Priority,
		Tags:        t.Tags,
		Color:       color,
		Due:         svc.DueTime(t.Expiry).Format(time.RFC3339),
	}
}
