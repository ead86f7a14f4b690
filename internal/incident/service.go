package incident

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/metrics"
	"github.com/rightsguard/backend/internal/storage"
	"github.com/rightsguard/backend/internal/storage/models"
	"github.com/rightsguard/backend/pkg/logger"
)

var (
	ErrNotFound         = errors.New("incident not found")
	ErrAlreadyCompleted = errors.New("incident already completed")
)

// StopRequest carries what the client captured during the interaction.
// A recording is stored only when RecordingURL is set.
type StopRequest struct {
	Notes        string               `json:"notes"`
	RecordingURL string               `json:"recordingUrl"`
	Type         models.RecordingType `json:"type"`
	Duration     int                  `json:"duration"`
}

type Service struct {
	kv    storage.KV
	now   func() time.Time
	newID func() string

	mu sync.Mutex
}

// NewService seeds the active incidents gauge from storage.
func NewService(kv storage.KV) *Service {
	s := &Service{
		kv:    kv,
		now:   time.Now,
		newID: uuid.NewString,
	}

	incidents, err := s.List(context.Background())
	if err != nil {
		logger.Warn("Failed to load incidents for active gauge", zap.Error(err))
	} else {
		setActiveGauge(incidents)
	}
	return s
}

func (s *Service) Start(ctx context.Context, userID string, loc models.Location) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	incidents, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	inc := models.Incident{
		ID:        s.newID(),
		UserID:    userID,
		StartTime: s.now().UTC(),
		Location:  loc,
		Status:    models.IncidentActive,
	}
	incidents = append(incidents, inc)

	if err := s.kv.Set(ctx, storage.KeyIncidents, incidents); err != nil {
		return nil, fmt.Errorf("store incident: %w", err)
	}

	setActiveGauge(incidents)
	logger.Info("Incident started", zap.String("incident_id", inc.ID), zap.String("user_id", userID))
	return &inc, nil
}

// Stop completes an active incident and, when a recording URL is given,
// stores the recording linked to it.
func (s *Service) Stop(ctx context.Context, id string, req StopRequest) (*models.Incident, *models.Recording, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	incidents, err := s.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	idx := -1
	for i := range incidents {
		if incidents[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, ErrNotFound
	}
	if incidents[idx].Status == models.IncidentCompleted {
		return nil, nil, ErrAlreadyCompleted
	}

	end := s.now().UTC()
	inc := &incidents[idx]
	inc.EndTime = &end
	inc.Status = models.IncidentCompleted
	inc.Notes = req.Notes
	inc.RecordingURL = req.RecordingURL

	var rec *models.Recording
	if req.RecordingURL != "" {
		recType := req.Type
		if recType != models.RecordingVideo {
			recType = models.RecordingAudio
		}
		rec = &models.Recording{
			ID:         s.newID(),
			IncidentID: id,
			Type:       recType,
			URL:        req.RecordingURL,
			Duration:   req.Duration,
			CreatedAt:  end,
		}

		recordings, err := s.Recordings(ctx)
		if err != nil {
			return nil, nil, err
		}
		recordings = append(recordings, *rec)
		if err := s.kv.Set(ctx, storage.KeyRecordings, recordings); err != nil {
			return nil, nil, fmt.Errorf("store recording: %w", err)
		}
	}

	if err := s.kv.Set(ctx, storage.KeyIncidents, incidents); err != nil {
		return nil, nil, fmt.Errorf("store incident: %w", err)
	}

	setActiveGauge(incidents)
	logger.Info("Incident completed",
		zap.String("incident_id", id),
		zap.String("duration", FormatDuration(inc.StartTime, end)),
		zap.Bool("recording", rec != nil),
	)

	out := *inc
	return &out, rec, nil
}

func (s *Service) List(ctx context.Context) ([]models.Incident, error) {
	var incidents []models.Incident
	if _, err := s.kv.Get(ctx, storage.KeyIncidents, &incidents); err != nil {
		return nil, fmt.Errorf("load incidents: %w", err)
	}
	if incidents == nil {
		incidents = []models.Incident{}
	}
	return incidents, nil
}

// setActiveGauge sets the gauge to the number of active incidents in the
// stored list.
func setActiveGauge(incidents []models.Incident) {
	active := 0
	for _, inc := range incidents {
		if inc.Status == models.IncidentActive {
			active++
		}
	}
	metrics.IncidentsActive.Set(float64(active))
}

func (s *Service) Recordings(ctx context.Context) ([]models.Recording, error) {
	var recordings []models.Recording
	if _, err := s.kv.Get(ctx, storage.KeyRecordings, &recordings); err != nil {
		return nil, fmt.Errorf("load recordings: %w", err)
	}
	if recordings == nil {
		recordings = []models.Recording{}
	}
	return recordings, nil
}

// FormatDuration renders the elapsed time as "2m 5s", or "45s" under a minute.
func FormatDuration(start, end time.Time) string {
	total := int(end.Sub(start) / time.Second)
	if total < 0 {
		total = 0
	}
	minutes, seconds := total/60, total%60
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
