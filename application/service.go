package application

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bucketbridge/domain"
)

// Commit message templates for the mirrored repository. The trailing space in
// the plain creation message is part of the established history format.
const (
	createMessageFormat       = "Pipeline Creation - Object %s "
	copyMessageFormat         = "Pipeline Creation - Object %s via Copy"
	deleteMessageFormat       = "Pipeline Deletion - Object %s Removed"
	deleteMarkerMessageFormat = "Pipeline Deletion - Delete Marker Created for %s"
)

// SyncService mirrors S3 change notifications into the hosted repository:
// classify each record, fetch object bytes when the change is a write, and
// issue the matching file operation.
type SyncService struct {
	repository domain.FileRepository
	fetcher    domain.ObjectFetcher
}

// NewSyncService creates a new service with the given collaborators.
func NewSyncService(repository domain.FileRepository, fetcher domain.ObjectFetcher) *SyncService {
	return &SyncService{
		repository: repository,
		fetcher:    fetcher,
	}
}

// ProcessEvent routes every record of a notification batch in order. The
// first failing record aborts the batch; there is no partial-success report.
func (s *SyncService) ProcessEvent(ctx context.Context, event events.S3Event) error {
	logger.Infof("Received notification batch with %d record(s)", len(event.Records))

	for i, record := range event.Records {
		notification := NotificationFromRecord(record)
		if err := s.ProcessNotification(ctx, notification); err != nil {
			return fmt.Errorf("record %d (%s): %w", i, notification.EventName, err)
		}
	}

	return nil
}

// NotificationFromRecord reduces a raw S3 event record to the fields the
// bridge acts on. Object keys arrive percent-encoded and are decoded here;
// a key that fails to decode is passed through as-is.
func NotificationFromRecord(record events.S3EventRecord) domain.NotificationEvent {
	key := record.S3.Object.Key
	if decoded, err := url.QueryUnescape(key); err == nil {
		key = decoded
	}

	return domain.NotificationEvent{
		EventName:  record.EventName,
		BucketName: record.S3.Bucket.Name,
		ObjectKey:  key,
		VersionID:  record.S3.Object.VersionID,
	}
}

// ProcessNotification dispatches a single notification by category.
func (s *SyncService) ProcessNotification(ctx context.Context, notification domain.NotificationEvent) error {
	category := domain.Classify(notification.EventName)
	logger.Infof(
		"Processing %q for s3://%s/%s (category: %s)",
		notification.EventName, notification.BucketName, notification.ObjectKey, category,
	)

	switch category {
	case domain.CategoryCreate:
		return s.handleCreate(ctx, notification)
	case domain.CategoryRemove:
		return s.handleRemove(ctx, notification)
	case domain.CategoryRestore, domain.CategoryReducedRedundancyLoss, domain.CategoryReplication:
		logger.Infof("Ignoring %q: category %q requires no repository change", notification.EventName, category)
		return nil
	default:
		return &domain.UnknownEventError{EventName: notification.EventName}
	}
}

// handleCreate dispatches create-family events by exact operation suffix:
// only some of them carry new content that must be mirrored.
func (s *SyncService) handleCreate(ctx context.Context, notification domain.NotificationEvent) error {
	var message string
	switch domain.EventSuffix(notification.EventName) {
	case "Put", "Post":
		message = fmt.Sprintf(createMessageFormat, notification.ObjectKey)
	case "Copy":
		message = fmt.Sprintf(copyMessageFormat, notification.ObjectKey)
	case "CompleteMultipartUpload":
		logger.Infof("Ignoring multipart completion for %q", notification.ObjectKey)
		return nil
	default:
		return &domain.UnhandledEventError{EventName: notification.EventName}
	}

	content, err := s.fetcher.FetchContent(ctx, notification.BucketName, notification.ObjectKey)
	if err != nil {
		return fmt.Errorf("failed to fetch object content: %w", err)
	}

	return s.repository.UpsertFile(ctx, notification.ObjectKey, content, message)
}

func (s *SyncService) handleRemove(ctx context.Context, notification domain.NotificationEvent) error {
	var message string
	switch domain.EventSuffix(notification.EventName) {
	case "Delete":
		message = fmt.Sprintf(deleteMessageFormat, notification.ObjectKey)
	case "DeleteMarkerCreated":
		message = fmt.Sprintf(deleteMarkerMessageFormat, notification.ObjectKey)
		if notification.VersionID != "" {
			logger.Debugf("Delete marker version for %q: %s", notification.ObjectKey, notification.VersionID)
		}
	default:
		return &domain.UnhandledEventError{EventName: notification.EventName}
	}

	return s.repository.DeleteFile(ctx, notification.ObjectKey, message)
}
