package dto

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Recurring   bool   `json:"recurring"`
	Priority    string `json:"priority"`
	Tags        string `json:"tags"`
	Color       string `json:"color"`
	Expiry      string `json:"expiry"` // datetime-local string, optional
}

// Toggle requests carry the value the client last saw; the server writes the
// opposite. Pointers so that an omitted field fails binding instead of
// defaulting to false.
type ToggleCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type ToggleRecurringRequest struct {
	Recurring *bool `json:"recurring" binding:"required"`
}

type TodoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Recurring   bool   `json:"recurring"`
	Priority    string `json:"priority"`
	Tags        string `json:"tags"`
	Color       string `json:"color"`
	Due         string `json:"due"` // resolved instant, RFC3339
}

type DevTokenRequest struct {
	UserID string `json:"userId" binding:"required"`
}
