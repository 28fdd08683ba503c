package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"duit/model"
)

type fakeUpdate struct {
	id     string
	fields map[string]interface{}
}

// fakeStore records writes and can be told to fail specific ids.
type fakeStore struct {
	todos      []model.Todo
	deleted    []string
	updates    []fakeUpdate
	failDelete map[string]error
	failUpdate map[string]error
}

func (f *fakeStore) FetchAll(ctx context.Context, userID string) ([]model.Todo, error) {
	return FilterOwned(f.todos, userID), nil
}

func (f *fakeStore) Create(ctx context.Context, todo model.Todo) (string, error) {
	todo.ID = "generated"
	f.todos = append(f.todos, todo)
	return todo.ID, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := f.failUpdate[id]; err != nil {
		return err
	}
	f.updates = append(f.updates, fakeUpdate{id: id, fields: fields})
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if err := f.failDelete[id]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func findTodo(todos []model.Todo, id string) (model.Todo, bool) {
	for _, t := range todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

func TestReconcileDeletesExpiredNonRecurring(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, bangkok)
	yesterday := model.ExpiryFromTime(now.AddDate(0, 0, -1))

	store := &fakeStore{}
	todos := []model.Todo{
		{ID: "t1", Title: "one-shot", Recurring: false, Completed: false, Expiry: yesterday},
	}

	res := Reconcile(context.Background(), store, todos, now, bangkok)

	if _, ok := findTodo(res.Todos, "t1"); ok {
		t.Error("expired non-recurring todo should be gone from the output set")
	}
	if len(store.deleted) != 1 || store.deleted[0] != "t1" {
		t.Errorf("deleted = %v, want [t1]", store.deleted)
	}
	if len(res.Failures) != 0 {
		t.Errorf("unexpected failures: %v", res.Failures)
	}
}

// Expiry dominates completion state: an expired non-recurring todo is
// deleted even if already completed.
func TestReconcileExpiryDominatesCompleted(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, bangkok)
	yesterday := model.ExpiryFromTime(now.AddDate(0, 0, -1))

	store := &fakeStore{}
	todos := []model.Todo{
		{ID: "t1", Recurring: false, Completed: true, Expiry: yesterday},
	}

	res := Reconcile(context.Background(), store, todos, now, bangkok)

	if _, ok := findTodo(res.Todos, "t1"); ok {
		t.Error("completed but expired todo should still be deleted")
	}
	if len(store.deleted) != 1 {
		t.Errorf("deleted = %v, want one delete", store.deleted)
	}
}

func TestReconcileReschedulesRecurring(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, bangkok)
	yesterday := model.ExpiryFromTime(now.AddDate(0, 0, -1))

	store := &fakeStore{}
	todos := []model.Todo{
		{ID: "t2", Title: "daily", Recurring: true, Completed: false, Expiry: yesterday},
	}

	res := Reconcile(context.Background(), store, todos, now, bangkok)

	got, ok := findTodo(res.Todos, "t2")
	if !ok {
		t.Fatal("recurring todo must stay in the output set")
	}
	if !got.Completed {
		t.Error("recurring todo should come back completed")
	}

	due := ResolveInstant(got.Expiry, now, bangkok)
	wantDue := time.Date(2024, 3, 11, 0, 0, 0, 0, bangkok)
	if due.UnixMilli() != wantDue.UnixMilli() {
		t.Errorf("new expiry = %v, want local midnight tomorrow %v", due, wantDue)
	}
	if due.UnixMilli() <= now.UnixMilli() {
		t.Error("new expiry must be strictly after now")
	}

	if len(store.updates) != 2 {
		t.Fatalf("want two independent updates, got %d", len(store.updates))
	}
	if _, ok := store.updates[0].fields["completed"]; !ok {
		t.Errorf("first update should set completed, got %v", store.updates[0].fields)
	}
	if _, ok := store.updates[1].fields["expiry"]; !ok {
		t.Errorf("second update should set expiry, got %v", store.updates[1].fields)
	}
	if len(store.deleted) != 0 {
		t.Errorf("recurring todo must never be deleted, got %v", store.deleted)
	}
}

func TestReconcileLeavesUnexpiredAlone(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, bangkok)

	store := &fakeStore{}
	todos := []model.Todo{
		{ID: "t3", Recurring: false, Expiry: model.ExpiryFromTime(now.AddDate(0, 0, 2))},
		{ID: "t4", Recurring: true, Expiry: model.ExpiryFromTime(now.Add(time.Hour))},
		// Absent expiry defaults to 23:59 today, which is still ahead of now.
		{ID: "t5", Recurring: false, Expiry: model.Expiry{Kind: model.ExpiryAbsent}},
	}

	res := Reconcile(context.Background(), store, todos, now, bangkok)

	if len(res.Todos) != 3 {
		t.Errorf("output set has %d todos, want 3", len(res.Todos))
	}
	if len(store.updates) != 0 || len(store.deleted) != 0 {
		t.Errorf("no writes expected, got updates=%v deleted=%v", store.updates, store.deleted)
	}
}

func TestReconcileFailedDeleteSurfacesError(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, bangkok)
	yesterday := model.ExpiryFromTime(now.AddDate(0, 0, -1))

	store := &fakeStore{failDelete: map[string]error{"t1": errors.New("store said no")}}
	todos := []model.Todo{
		{ID: "t1", Recurring: false, Expiry: yesterday},
		{ID: "t2", Recurring: false, Expiry: yesterday},
	}

	res := Reconcile(context.Background(), store, todos, now, bangkok)

	if _, ok := findTodo(res.Todos, "t1"); !ok {
		t.Error("todo whose delete failed must stay in the output set")
	}
	if len(res.Failures) != 1 {
		t.Fatalf("want one failure, got %v", res.Failures)
	}
	msg := res.Failures[0].Message
	if !strings.Contains(msg, "Failed to delete todo") || !strings.Contains(msg, "store said no") {
		t.Errorf("failure message %q should name the action and the cause", msg)
	}
	// The other todo's transition is unaffected.
	if len(store.deleted) != 1 || store.deleted[0] != "t2" {
		t.Errorf("deleted = %v, want [t2]", store.deleted)
	}
}

func TestReconcileFailedRecurringUpdateKeepsPreState(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, bangkok)
	yesterday := now.AddDate(0, 0, -1)

	store := &fakeStore{failUpdate: map[string]error{"t2": errors.New("quota exceeded")}}
	todos := []model.Todo{
		{ID: "t2", Recurring: true, Completed: false, Expiry: model.ExpiryFromTime(yesterday)},
	}

	res := Reconcile(context.Background(), store, todos, now, bangkok)

	got, ok := findTodo(res.Todos, "t2")
	if !ok {
		t.Fatal("todo must stay in the output set")
	}
	if got.Completed {
		t.Error("in-memory state must stay pre-failure")
	}
	if due := ResolveInstant(got.Expiry, now, bangkok); due.UnixMilli() != yesterday.UnixMilli() {
		t.Errorf("expiry changed to %v despite the failure", due)
	}
	if len(res.Failures) != 1 || !strings.Contains(res.Failures[0].Message, "Failed to update todo") {
		t.Errorf("failures = %v", res.Failures)
	}
}

func TestFilterOwned(t *testing.T) {
	todos := []model.Todo{
		{ID: "a", User: "u1"},
		{ID: "b", User: "u2"},
		{ID: "c", User: "u1"},
	}

	owned := FilterOwned(todos, "u1")
	if len(owned) != 2 {
		t.Fatalf("want 2 todos for u1, got %d", len(owned))
	}
	for _, o := range owned {
		if o.User != "u1" {
			t.Errorf("todo %s belongs to %s", o.ID, o.User)
		}
	}
	if got := FilterOwned(todos, "nobody"); got != nil {
		t.Errorf("want no todos for unknown user, got %v", got)
	}
}
