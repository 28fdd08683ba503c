package services

import (
	"context"
	"fmt"
	"time"

	"duit/model"

	"cloud.google.com/go/firestore"
)

// TodoStore is the boundary to the document store. The reconciliation
// pipeline and the controllers only see this interface.
type TodoStore interface {
	FetchAll(ctx context.Context, userID string) ([]model.Todo, error)
	Create(ctx context.Context, todo model.Todo) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// SweepSource reads the whole collection in one pass. The background sweep
// groups the result by user rather than re-reading per user.
type SweepSource interface {
	FetchEveryone(ctx context.Context) ([]model.Todo, error)
}

// FirestoreTodoStore keeps todos in a single Firestore collection.
type FirestoreTodoStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreTodoStore(client *firestore.Client) *FirestoreTodoStore {
	return &FirestoreTodoStore{client: client, collection: "todos"}
}

// FetchAll reads the whole collection and filters to the given user on the
// client side; the store is queried without a per-user predicate. Order of
// the returned slice is whatever the store handed back.
func (s *FirestoreTodoStore) FetchAll(ctx context.Context, userID string) ([]model.Todo, error) {
	todos, err := s.fetchCollection(ctx)
	if err != nil {
		return nil, err
	}
	return FilterOwned(todos, userID), nil
}

// FetchEveryone returns the whole collection unfiltered.
func (s *FirestoreTodoStore) FetchEveryone(ctx context.Context) ([]model.Todo, error) {
	return s.fetchCollection(ctx)
}

func (s *FirestoreTodoStore) fetchCollection(ctx context.Context) ([]model.Todo, error) {
	docs, err := s.client.Collection(s.collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("fetch todos: %w", err)
	}

	var todos []model.Todo
	for _, doc := range docs {
		var t model.Todo
		if err := doc.DataTo(&t); err != nil {
			return nil, fmt.Errorf("decode todo %s: %w", doc.Ref.ID, err)
		}
		t.ID = doc.Ref.ID
		t.Expiry = model.ExpiryFromField(doc.Data()["expiry"])
		todos = append(todos, t)
	}
	return todos, nil
}

// FilterOwned keeps only the todos whose user field matches the caller. The
// store itself is queried without a per-user predicate, so visibility is
// enforced here.
func FilterOwned(todos []model.Todo, userID string) []model.Todo {
	var owned []model.Todo
	for _, t := range todos {
		if t.User == userID {
			owned = append(owned, t)
		}
	}
	return owned
}

// Create writes a new todo and returns the store-assigned id. The expiry
// leaves the client as a native timestamp or null, never as a string.
func (s *FirestoreTodoStore) Create(ctx context.Context, todo model.Todo) (string, error) {
	data := map[string]interface{}{
		"title":       todo.Title,
		"description": todo.Description,
		"completed":   todo.Completed,
		"recurring":   todo.Recurring,
		"priority":    todo.Priority,
		"tags":        todo.Tags,
		"color":       todo.Color,
		"user":        todo.User,
		"expiry":      nil,
	}
	if todo.Expiry.Kind == model.ExpiryTimestamp {
		data["expiry"] = time.Unix(todo.Expiry.Seconds, todo.Expiry.Nanos)
	}

	ref, _, err := s.client.Collection(s.collection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("create todo: %w", err)
	}
	return ref.ID, nil
}

// Update merges the given fields into the document. Invariants are not
// re-checked here; callers can set recurring without an expiry.
func (s *FirestoreTodoStore) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, err := s.client.Collection(s.collection).Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("update todo %s: %w", id, err)
	}
	return nil
}

// Delete removes the document. The Exists precondition makes a repeated
// delete fail with the store's NotFound instead of silently succeeding.
func (s *FirestoreTodoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.client.Collection(s.collection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	return nil
}
