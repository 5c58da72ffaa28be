// Package remote implements the cloud mirror of the local alarm store using
// Cloud Firestore.
package remote

import (
	"context"

	"chime/internal/domain/entity"
	"chime/internal/domain/service"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	alarmsCollection        = "alarms"
	notificationsCollection = "notifications"
)

// alarmDoc builds the Firestore document for an alarm. Merge writes require
// map data; updatedAt uses the server clock so cross-device ordering does not
// trust client time.
func alarmDoc(alarm *entity.Alarm) map[string]any {
	var doneAt any
	if alarm.DoneAt != nil {
		doneAt = *alarm.DoneAt
	}

	return map[string]any{
		"userId":     alarm.UserID.String(),
		"recordId":   alarm.RecordID.String(),
		"collection": alarm.Collection,
		"label":      alarm.Label,
		"note":       alarm.Note,
		"triggerAt":  alarm.TriggerAt,
		"fired":      alarm.Fired,
		"doneAt":     doneAt,
		"createdAt":  alarm.CreatedAt,
		"updatedAt":  firestore.ServerTimestamp,
	}
}

func notificationDoc(record *entity.NotificationRecord) map[string]any {
	return map[string]any{
		"userId":     record.UserID.String(),
		"title":      record.Title,
		"body":       record.Body,
		"recordId":   record.RecordID.String(),
		"collection": record.Collection,
		"createdAt":  record.CreatedAt,
		"updatedAt":  firestore.ServerTimestamp,
	}
}

// firestoreStore implements service.RemoteStore on Cloud Firestore. Documents
// share the local rows' client-generated IDs, so there is no key translation
// between the stores.
type firestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates the remote mirror from Firebase credentials.
func NewFirestoreStore(ctx context.Context, projectID, credentialsPath string) (service.RemoteStore, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	return &firestoreStore{
		client: client,
	}, nil
}

// SaveAlarm writes or merges the alarm document keyed by the alarm's ID.
func (s *firestoreStore) SaveAlarm(ctx context.Context, alarm *entity.Alarm) error {
	_, err := s.client.Collection(alarmsCollection).
		Doc(alarm.ID.String()).
		Set(ctx, alarmDoc(alarm), firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "failed to mirror alarm to Firestore")
	}

	return nil
}

// DeleteAlarm removes the alarm document. A missing document is not an error:
// another device may have mirrored the delete first.
func (s *firestoreStore) DeleteAlarm(ctx context.Context, id uuid.UUID) error {
	_, err := s.client.Collection(alarmsCollection).
		Doc(id.String()).
		Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return errors.Wrap(err, "failed to delete alarm from Firestore")
	}

	return nil
}

// SaveNotificationRecord writes or merges the notification history document.
func (s *firestoreStore) SaveNotificationRecord(ctx context.Context, record *entity.NotificationRecord) error {
	_, err := s.client.Collection(notificationsCollection).
		Doc(record.ID.String()).
		Set(ctx, notificationDoc(record), firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "failed to mirror notification record to Firestore")
	}

	return nil
}

// Close releases the Firestore client.
func (s *firestoreStore) Close() error {
	return errors.WithStack(s.client.Close())
}
