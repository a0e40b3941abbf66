package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"nexar/pkg/errors"
)

// FirestoreRemediator is the best-effort security-policy repair hook. It
// files a document into the repair_requests collection; a server-side
// trigger owned by the backend project reapplies the access policies. The
// call succeeds once the request is filed, it does not wait for the trigger.
type FirestoreRemediator struct {
	client *firestore.Client
}

func NewFirestoreRemediator(client *firestore.Client) *FirestoreRemediator {
	return &FirestoreRemediator{client: client}
}

func (r *FirestoreRemediator) RequestRepair(ctx context.Context) error {
	doc := r.client.Collection("repair_requests").NewDoc()
	_, err := doc.Set(ctx, map[string]interface{}{
		"procedure":   "fix_access_policies",
		"requestedAt": time.Now(),
	})
	if err != nil {
		return errors.Internal("Failed to file repair request", err)
	}

	return nil
}
