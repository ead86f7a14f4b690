package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/storage"
	"github.com/rightsguard/backend/internal/storage/models"
	"github.com/rightsguard/backend/pkg/logger"
	"github.com/rightsguard/backend/pkg/utils"
)

const DefaultUserName = "RightsGuard User"

// MaxContacts bounds how many people one alert fans out to.
const MaxContacts = 10

var ErrInvalidContact = errors.New("invalid emergency contact")

// Public numbers offered to every user alongside their own contacts.
var DefaultContacts = []models.EmergencyContact{
	{Name: "Emergency Services", PhoneNumber: "911"},
	{Name: "ACLU Hotline", PhoneNumber: "1-877-6-PROFILE"},
}

type Service struct {
	kv storage.KV
}

func NewService(kv storage.KV) *Service {
	return &Service{kv: kv}
}

func (s *Service) List(ctx context.Context) ([]models.EmergencyContact, error) {
	var list []models.EmergencyContact
	if _, err := s.kv.Get(ctx, storage.KeyEmergencyContacts, &list); err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	if list == nil {
		list = []models.EmergencyContact{}
	}
	return list, nil
}

// Replace validates and stores the full contact list.
func (s *Service) Replace(ctx context.Context, list []models.EmergencyContact) ([]models.EmergencyContact, error) {
	if len(list) > MaxContacts {
		return nil, fmt.Errorf("%w: at most %d contacts", ErrInvalidContact, MaxContacts)
	}

	cleaned := make([]models.EmergencyContact, 0, len(list))
	for i, c := range list {
		c.Name = strings.TrimSpace(c.Name)
		c.Email = strings.TrimSpace(c.Email)
		if c.Name == "" {
			return nil, fmt.Errorf("%w: contact %d has no name", ErrInvalidContact, i+1)
		}
		if !utils.IsValidPhoneNumber(c.PhoneNumber) {
			return nil, fmt.Errorf("%w: %q is not a valid phone number", ErrInvalidContact, c.PhoneNumber)
		}
		c.PhoneNumber = utils.FormatPhoneNumber(c.PhoneNumber)
		cleaned = append(cleaned, c)
	}

	if err := s.kv.Set(ctx, storage.KeyEmergencyContacts, cleaned); err != nil {
		return nil, fmt.Errorf("store contacts: %w", err)
	}

	logger.Info("Emergency contacts updated", zap.Int("count", len(cleaned)))
	return cleaned, nil
}

func (s *Service) UserName(ctx context.Context) (string, error) {
	var name string
	ok, err := s.kv.Get(ctx, storage.KeyUserName, &name)
	if err != nil {
		return "", fmt.Errorf("load user name: %w", err)
	}
	if !ok || strings.TrimSpace(name) == "" {
		return DefaultUserName, nil
	}
	return name, nil
}

// SetUserName stores the name used in alert messages; a blank name clears it.
func (s *Service) SetUserName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.kv.Remove(ctx, storage.KeyUserName)
	}
	return s.kv.Set(ctx, storage.KeyUserName, name)
}
