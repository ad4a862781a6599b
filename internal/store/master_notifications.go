package store

import (
	"strconv"
	"sync"

	"github.com/ncc-uat/ncc-admin-services/models"
)

// MasterNotificationStore holds the notification templates.
type MasterNotificationStore struct {
	mu    sync.RWMutex
	seq   int
	items []models.MasterNotification
}

func NewMasterNotificationStore() *MasterNotificationStore {
	s := &MasterNotificationStore{seq: 1}
	fifty := 50.0
	s.items = []models.MasterNotification{
		{
			ID:               s.nextID(),
			BusinessUnits:    []models.BusinessUnit{models.BusinessUnitCBU},
			ResourceType:     models.ResourceData,
			Validity:         models.ValidityDaily,
			BundleType:       "Standard",
			NotificationType: "Activation",
			Price:            &fifty,
			Name:             "Daily Data",
			Content:          models.Localized{En: "Daily data bundle"},
		},
		{
			ID:               s.nextID(),
			BusinessUnits:    []models.BusinessUnit{models.BusinessUnitEBU, models.BusinessUnitMPESA},
			ResourceType:     models.ResourceVoice,
			Validity:         models.ValidityUnlimited,
			BundleType:       "Unlimited Voice",
			NotificationType: "Renewal",
			DynamicPrice:     true,
			Name:             "Unlimited Voice",
			Content:          models.Localized{En: "Unlimited voice bundle"},
		},
	}
	return s
}

func (s *MasterNotificationStore) nextID() string {
	id := strconv.Itoa(s.seq)
	s.seq++
	return id
}

// PriceFor applies the template pricing rule: unlimited and mega bundles
// with dynamic pricing carry no price, everything else defaults to zero.
func PriceFor(validity models.Validity, dynamic bool, price *float64) *float64 {
	if dynamic && (validity == models.ValidityUnlimited || validity == models.ValidityMega) {
		return nil
	}
	p := 0.0
	if price != nil {
		p = *price
	}
	return &p
}

func (s *MasterNotificationStore) List(f models.MasterNotificationFilter) []models.MasterNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MasterNotification, 0, len(s.items))
	for _, item := range s.items {
		if matchMaster(item, f) {
			out = append(out, item)
		}
	}
	return out
}

func matchMaster(item models.MasterNotification, f models.MasterNotificationFilter) bool {
	if len(f.BusinessUnits) > 0 && !anyUnit(item.BusinessUnits, f.BusinessUnits) {
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
	if f.DynamicPrice != nil && item.DynamicPrice != *f.DynamicPrice {
		return false
	}
	if f.Search != "" && !containsFold(item.Name, f.Search) {
		return false
	}
	return true
}

func anyUnit(have, want []models.BusinessUnit) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (s *MasterNotificationStore) Get(id string) (models.MasterNotification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.MasterNotification{}, ErrNotFound
	}
	return s.items[idx], nil
}

// Create assigns an id and stores item at the front of the list.
func (s *MasterNotificationStore) Create(item models.MasterNotification) models.MasterNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextID()
	item.Price = PriceFor(item.Validity, item.DynamicPrice, item.Price)
	s.items = append([]models.MasterNotification{item}, s.items...)
	return item
}

func (s *MasterNotificationStore) Update(id string, patch models.MasterNotificationPatch) (models.MasterNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.MasterNotification{}, ErrNotFound
	}

	item := &s.items[idx]
	if patch.BusinessUnits != nil {
		item.BusinessUnits = patch.BusinessUnits
	}
	if patch.ResourceType != nil {
		item.ResourceType = *patch.ResourceType
	}
	if patch.Validity != nil {
		item.Validity = *patch.Validity
	}
	setString(&item.BundleType, patch.BundleType)
	setString(&item.NotificationType, patch.NotificationType)
	setString(&item.Name, patch.Name)
	if patch.DynamicPrice != nil {
		item.DynamicPrice = *patch.DynamicPrice
	}
	if patch.Price != nil {
		p := *patch.Price
		item.Price = &p
	}
	patch.Content.Apply(&item.Content)
	return *item, nil
}

func (s *MasterNotificationStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return ErrNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

func (s *MasterNotificationStore) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
