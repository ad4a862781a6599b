package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/ncc-uat/ncc-admin-services/models"
)

const regeneratedSuffix = " (regenerated)"

// NotificationStore holds notifications generated for NCC products.
type NotificationStore struct {
	mu    sync.RWMutex
	seq   int
	items []models.NotificationItem
	now   func() time.Time
}

func NewNotificationStore() *NotificationStore {
	s := &NotificationStore{seq: 1000, now: time.Now}
	fifty := 50.0
	s.items = []models.NotificationItem{
		{
			ID:               s.nextID(),
			NccID:            "CBU001",
			BusinessUnit:     models.BusinessUnitCBU,
			ResourceType:     models.ResourceData,
			Validity:         models.ValidityDaily,
			BundleType:       "Standard",
			NotificationType: "Activation",
			Price:            &fifty,
			Content:          "Daily data bundle content",
			Marketing:        models.Localized{En: "Daily data"},
			UpdatedAt:        timestamp(s.now),
			Author:           "System",
			Reason:           "Auto generated",
		},
	}
	return s
}

func (s *NotificationStore) nextID() string {
	id := strconv.Itoa(s.seq)
	s.seq++
	return id
}

func (s *NotificationStore) List(f models.NotificationFilter) []models.NotificationItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.NotificationItem, 0, len(s.items))
	for _, item := range s.items {
		if matchNotification(item, f) {
			out = append(out, item)
		}
	}
	return out
}

func matchNotification(item models.NotificationItem, f models.NotificationFilter) bool {
	if f.BusinessUnit != "" && item.BusinessUnit != f.BusinessUnit {
		return false
	}
	if f.ResourceType != "" && item.ResourceType != f.ResourceType {
		return false
	}
	if f.Validity != "" && item.Validity != f.Validity {
		return false
	}
	if f.BundleType != "" && !containsFold(item.BundleType, f.BundleType) {
		return false
	}
	if f.NotificationType != "" && !containsFold(item.NotificationType, f.NotificationType) {
		return false
	}
	if f.Search != "" && !containsFold(item.Content, f.Search) && !containsFold(item.NccID, f.Search) {
		return false
	}
	return true
}

func (s *NotificationStore) Get(id string) (models.NotificationItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.NotificationItem{}, ErrNotFound
	}
	return s.items[idx], nil
}

func (s *NotificationStore) Update(id string, patch models.NotificationPatch) (models.NotificationItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.NotificationItem{}, ErrNotFound
	}

	item := &s.items[idx]
	setString(&item.NccID, patch.NccID)
	setString(&item.BundleType, patch.BundleType)
	setString(&item.NotificationType, patch.NotificationType)
	setString(&item.Content, patch.Content)
	setString(&item.Author, patch.Author)
	setString(&item.Reason, patch.Reason)
	if patch.BusinessUnit != nil {
		item.BusinessUnit = *patch.BusinessUnit
	}
	if patch.ResourceType != nil {
		item.ResourceType = *patch.ResourceType
	}
	if patch.Validity != nil {
		item.Validity = *patch.Validity
	}
	if patch.Price != nil {
		p := *patch.Price
		item.Price = &p
	}
	patch.Marketing.Apply(&item.Marketing)
	item.UpdatedAt = timestamp(s.now)
	return *item, nil
}

func (s *NotificationStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return ErrNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

// Regenerate marks the notification content as regenerated.
func (s *NotificationStore) Regenerate(id string) (models.NotificationItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.NotificationItem{}, ErrNotFound
	}

	item := &s.items[idx]
	item.Content += regeneratedSuffix
	item.UpdatedAt = timestamp(s.now)
	return *item, nil
}

func (s *NotificationStore) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
