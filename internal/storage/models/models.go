package models

import "time"

type EmergencyContact struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email,omitempty"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	State     string  `json:"state,omitempty"`
	City      string  `json:"city,omitempty"`
	Address   string  `json:"address,omitempty"`
}

type Alert struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Location  Location           `json:"location"`
	Contacts  []EmergencyContact `json:"contacts"`
	Message   string             `json:"message"`
	Notified  int                `json:"notified"`
}

type IncidentStatus string

const (
	IncidentActive    IncidentStatus = "active"
	IncidentCompleted IncidentStatus = "completed"
)

type Incident struct {
	ID           string         `json:"incidentId"`
	UserID       string         `json:"userId"`
	StartTime    time.Time      `json:"startTime"`
	EndTime      *time.Time     `json:"endTime,omitempty"`
	Location     Location       `json:"location"`
	RecordingURL string         `json:"recordingUrl,omitempty"`
	Notes        string         `json:"notes"`
	Status       IncidentStatus `json:"status"`
}

type RecordingType string

const (
	RecordingAudio RecordingType = "audio"
	RecordingVideo RecordingType = "video"
)

type Recording struct {
	ID         string        `json:"id"`
	IncidentID string        `json:"incidentId"`
	Type       RecordingType `json:"type"`
	URL        string        `json:"url"`
	Duration   int           `json:"duration"`
	CreatedAt  time.Time     `json:"createdAt"`
}
