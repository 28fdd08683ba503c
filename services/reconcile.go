package services

import (
	"context"
	"time"

	"duit/model"
)

// Failure is a user-visible message about one todo the pipeline could not
// transition. The rest of the pass is unaffected.
type Failure struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ReconcileResult is the outcome of one pass: the locally computed
// post-transition set and the per-todo failures. The set can diverge from
// the store until the next refresh; the pipeline does not re-fetch.
type ReconcileResult struct {
	Todos    []model.Todo
	Failures []Failure
}

// Reconcile applies the expiry rules to one fetched batch.
//
// For every todo whose due instant has passed: non-recurring todos are
// deleted (expiry dominates completion state), recurring todos are marked
// completed and rescheduled to the next occurrence via two independent
// store updates. Todos not yet due pass through untouched with no writes.
func Reconcile(ctx context.Context, store TodoStore, todos []model.Todo, now time.Time, loc *time.Location) ReconcileResult {
	var res ReconcileResult
	for _, t := range todos {
		if !Expired(t.Expiry, now, loc) {
			res.Todos = append(res.Todos, t)
			continue
		}

		if !t.Recurring {
			if err := store.Delete(ctx, t.ID); err != nil {
				res.Failures = append(res.Failures, Failure{ID: t.ID, Message: "Failed to delete todo: " + err.Error()})
				res.Todos = append(res.Todos, t)
			}
			continue
		}

		// Two separate writes, not an atomic update. A partial failure can
		// leave the stored todo completed but still due at the old instant,
		// or rescheduled but not completed.
		next := NextOccurrence(now, loc)
		errDone := store.Update(ctx, t.ID, map[string]interface{}{"completed": true})
		errDue := store.Update(ctx, t.ID, map[string]interface{}{"expiry": next})
		if errDone != nil || errDue != nil {
			err := errDone
			if err == nil {
				err = errDue
			}
			res.Failures = append(res.Failures, Failure{ID: t.ID, Message: "Failed to update todo: " + err.Error()})
			res.Todos = append(res.Todos, t)
			continue
		}

		t.Completed = true
		t.Expiry = model.ExpiryFromTime(next)
		res.Todos = append(res.Todos, t)
	}
	return res
}
