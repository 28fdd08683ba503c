package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"duit/model"
)

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrRefreshDropped = errors.New("refresh already in flight")
)

// TodoInput is the data needed to create a todo. Expiry is the raw value
// from the client (datetime-local string, may be empty).
type TodoInput struct {
	Title       string
	Description string
	Completed   bool
	Recurring   bool
	Priority    string
	Tags        string
	Color       string
	Expiry      string
}

// TodoService owns the refresh cycle and the four mutations. All durable
// state stays in the store; this type holds no todo data between calls.
type TodoService struct {
	store  TodoStore
	guards *GuardSet
	loc    *time.Location
	now    func() time.Time
}

func NewTodoService(store TodoStore, guards *GuardSet, loc *time.Location) *TodoService {
	return &TodoService{store: store, guards: guards, loc: loc, now: time.Now}
}

// Refresh fetches the session's todos and runs one reconciliation pass.
// Returns ErrRefreshDropped when a previous refresh for the same session is
// still in flight or cooling down; the dropped request is not queued.
func (s *TodoService) Refresh(ctx context.Context, session model.Session) (ReconcileResult, error) {
	guard := s.guards.For(session.UserID)
	if !guard.TryBegin() {
		return ReconcileResult{}, ErrRefreshDropped
	}
	defer guard.Finish()

	todos, err := s.store.FetchAll(ctx, session.UserID)
	if err != nil {
		return ReconcileResult{}, err
	}
	return Reconcile(ctx, s.store, todos, s.now(), s.loc), nil
}

// Create resolves the raw expiry to a canonical instant and writes the new
// todo. The store assigns the id.
func (s *TodoService) Create(ctx context.Context, session model.Session, input TodoInput) (model.Todo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Todo{}, ErrTitleRequired
	}

	todo := model.Todo{
		Title:       title,
		Description: input.Description,
		Completed:   input.Completed,
		Recurring:   input.Recurring,
		Priority:    input.Priority,
		Tags:        input.Tags,
		Color:       input.Color,
		User:        session.UserID,
	}
	// An unparseable expiry is stored as no due date, not as a guessed
	// timestamp; the default only applies when the record is read back.
	if input.Expiry != "" {
		if instant, ok := parseExpiry(input.Expiry, s.loc); ok {
			todo.Expiry = model.ExpiryFromTime(instant)
		}
	}

	id, err := s.store.Create(ctx, todo)
	if err != nil {
		return model.Todo{}, err
	}
	todo.ID = id
	return todo, nil
}

// ToggleCompleted flips the completed flag to the opposite of what the
// caller last saw.
func (s *TodoService) ToggleCompleted(ctx context.Context, id string, current bool) error {
	return s.store.Update(ctx, id, map[string]interface{}{"completed": !current})
}

// ToggleRecurring flips the recurring flag. No invariant check: a todo can
// become recurring with no expiry set.
func (s *TodoService) ToggleRecurring(ctx context.Context, id string, current bool) error {
	return s.store.Update(ctx, id, map[string]interface{}{"recurring": !current})
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// DueTime resolves an expiry for display.
func (s *TodoService) DueTime(e model.Expiry) time.Time {
	return ResolveInstant(e, s.now(), s.loc)
}
