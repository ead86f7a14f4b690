package alert

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/contacts"
	"github.com/rightsguard/backend/internal/metrics"
	"github.com/rightsguard/backend/internal/storage"
	"github.com/rightsguard/backend/internal/storage/models"
	"github.com/rightsguard/backend/pkg/logger"
)

const subject = "EMERGENCY ALERT"

// Message builds the text sent to every contact.
func Message(userName string, loc models.Location, incidentID string) string {
	where := loc.Address
	if where == "" {
		where = strconv.FormatFloat(loc.Latitude, 'f', -1, 64) + ", " + strconv.FormatFloat(loc.Longitude, 'f', -1, 64)
	}
	return fmt.Sprintf("EMERGENCY ALERT from %s: I am currently in a police interaction at %s. Incident ID: %s. Please monitor this situation.",
		userName, where, incidentID)
}

type Service struct {
	kv       storage.KV
	contacts *contacts.Service
	notifier Notifier
	now      func() time.Time
	newID    func() string

	mu sync.Mutex
}

func NewService(kv storage.KV, contactService *contacts.Service, notifier Notifier) *Service {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Service{
		kv:       kv,
		contacts: contactService,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Send notifies every stored contact and records the alert. Delivery
// failures for individual contacts are logged and do not fail the alert.
func (s *Service) Send(ctx context.Context, loc models.Location) (*models.Alert, error) {
	list, err := s.contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	userName, err := s.contacts.UserName(ctx)
	if err != nil {
		return nil, err
	}

	id := s.newID()
	a := &models.Alert{
		ID:        id,
		Timestamp: s.now().UTC(),
		Location:  loc,
		Contacts:  list,
		Message:   Message(userName, loc, id),
	}

	for _, c := range list {
		err := s.notifier.Notify(ctx, c, subject, a.Message)
		switch {
		case err == nil:
			a.Notified++
			metrics.AlertDeliveries.WithLabelValues("sent").Inc()
		case errors.Is(err, ErrNoChannel):
			metrics.AlertDeliveries.WithLabelValues("skipped").Inc()
		default:
			metrics.AlertDeliveries.WithLabelValues("failed").Inc()
			logger.Error("Alert delivery failed",
				zap.String("alert_id", id),
				zap.String("contact", c.Name),
				zap.Error(err),
			)
		}
	}

	if err := s.append(ctx, *a); err != nil {
		return nil, err
	}

	metrics.AlertsSent.Inc()
	logger.Info("Emergency alert raised",
		zap.String("alert_id", id),
		zap.Int("contacts", len(list)),
		zap.Int("notified", a.Notified),
	)

	return a, nil
}

func (s *Service) List(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if _, err := s.kv.Get(ctx, storage.KeyEmergencyAlerts, &alerts); err != nil {
		return nil, fmt.Errorf("load alerts: %w", err)
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	return alerts, nil
}

func (s *Service) append(ctx context.Context, a models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts, err := s.List(ctx)
	if err != nil {
		return err
	}
	alerts = append(alerts, a)
	if err := s.kv.Set(ctx, storage.KeyEmergencyAlerts, alerts); err != nil {
		return fmt.Errorf("store alert: %w", err)
	}
	return nil
}
