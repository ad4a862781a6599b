package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ncc-uat/ncc-admin-services/models"
)

type rateTable struct {
	datasets map[string][]models.RoamingRateRow
	versions []models.RateVersion
}

func (t *rateTable) newest() string {
	if len(t.versions) == 0 {
		return "v1"
	}
	return t.versions[0].ID
}

func (t *rateTable) add(rows []models.RoamingRateRow, createdAt string) models.RateVersion {
	v := models.RateVersion{ID: fmt.Sprintf("v%d", len(t.versions)+1), CreatedAt: createdAt}
	t.datasets[v.ID] = rows
	t.versions = append([]models.RateVersion{v}, t.versions...)
	return v
}

// RateStore holds versioned roaming and international rate sheets and the
// tariff mapping table.
type RateStore struct {
	mu            sync.RWMutex
	roaming       rateTable
	processed     []models.RoamingRateRow
	international rateTable
	mapping       []models.MappingRow
	now           func() time.Time
}

func NewRateStore() *RateStore {
	s := &RateStore{now: time.Now}
	s.Reseed()
	return s
}

func (s *RateStore) daysAgo(n int) string {
	return s.now().Add(-time.Duration(n) * 24 * time.Hour).UTC().Format(TimeFormat)
}

// Reseed restores the sample rate sheets and mapping table.
func (s *RateStore) Reseed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	v1 := []models.RoamingRateRow{
		{Country: "Kenya", CallToEthiopia: 35, CallToLocal: 15, CallToOther: 45, ReceivingCall: 10, DataMb: 2, SendingSms: 1, ReceivingSms: 0.5},
		{Country: "Tanzania", CallToEthiopia: 33, CallToLocal: 14, CallToOther: 44, ReceivingCall: 9, DataMb: 1.8, SendingSms: 1, ReceivingSms: 0.5},
	}
	v2 := []models.RoamingRateRow{
		{Country: "Kenya", CallToEthiopia: 36, CallToLocal: 16, CallToOther: 46, ReceivingCall: 10, DataMb: 2.1, SendingSms: 1.1, ReceivingSms: 0.5},
		{Country: "Tanzania", CallToEthiopia: 34, CallToLocal: 14, CallToOther: 44, ReceivingCall: 9, DataMb: 1.85, SendingSms: 1, ReceivingSms: 0.5},
		{Country: "Uganda", CallToEthiopia: 32, CallToLocal: 13, CallToOther: 42, ReceivingCall: 8.5, DataMb: 1.7, SendingSms: 0.9, ReceivingSms: 0.5},
	}
	s.roaming = rateTable{
		datasets: map[string][]models.RoamingRateRow{"v1": v1, "v2": v2},
		versions: []models.RateVersion{
			{ID: "v2", CreatedAt: s.daysAgo(1)},
			{ID: "v1", CreatedAt: s.daysAgo(30)},
		},
	}
	s.processed = v2

	iv1 := []models.RoamingRateRow{
		{Country: "Kenya", CallToEthiopia: 30, CallToLocal: 20, CallToOther: 40, ReceivingCall: 12, DataMb: 2.2, SendingSms: 1.2, ReceivingSms: 0.6},
		{Country: "Tanzania", CallToEthiopia: 29, CallToLocal: 19, CallToOther: 39, ReceivingCall: 11, DataMb: 2.0, SendingSms: 1.1, ReceivingSms: 0.6},
	}
	iv2 := []models.RoamingRateRow{
		{Country: "Kenya", CallToEthiopia: 31, CallToLocal: 21, CallToOther: 41, ReceivingCall: 12, DataMb: 2.3, SendingSms: 1.3, ReceivingSms: 0.6},
		{Country: "Tanzania", CallToEthiopia: 30, CallToLocal: 20, CallToOther: 40, ReceivingCall: 11, DataMb: 2.05, SendingSms: 1.15, ReceivingSms: 0.6},
		{Country: "Uganda", CallToEthiopia: 28, CallToLocal: 18, CallToOther: 38, ReceivingCall: 10, DataMb: 1.9, SendingSms: 1.0, ReceivingSms: 0.6},
	}
	s.international = rateTable{
		datasets: map[string][]models.RoamingRateRow{"v1": iv1, "v2": iv2},
		versions: []models.RateVersion{
			{ID: "v2", CreatedAt: s.daysAgo(2)},
			{ID: "v1", CreatedAt: s.daysAgo(40)},
		},
	}

	s.mapping = []models.MappingRow{
		{TariffPlanKey: "ROAM_STANDARD", CallTypeKey: "VOICE", OriginationTypeKey: "ROAMING", DestinationTypeKey: "ETH", PeakKey: "PEAK", RateIDValue: "RATE001"},
		{TariffPlanKey: "ROAM_STANDARD", CallTypeKey: "DATA", OriginationTypeKey: "ROAMING", DestinationTypeKey: "ANY", PeakKey: "OFFPEAK", RateIDValue: "RATE002"},
	}
}

// Roaming returns the rows of version, or the current sheet when version is
// unknown. An empty version selects the newest.
func (s *RateStore) Roaming(version string) ([]models.RoamingRateRow, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if version == "" {
		version = s.roaming.newest()
	}
	if rows, ok := s.roaming.datasets[version]; ok {
		return rows, version
	}
	return s.processed, version
}

// Processed is the sheet most recently uploaded.
func (s *RateStore) Processed() []models.RoamingRateRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.processed
}

func (s *RateStore) RoamingVersions() []models.RateVersion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.RateVersion(nil), s.roaming.versions...)
}

// AddRoamingVersion stores rows as a new newest version and makes it current.
func (s *RateStore) AddRoamingVersion(rows []models.RoamingRateRow) models.RateVersion {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.roaming.add(rows, timestamp(s.now))
	s.processed = rows
	return v
}

// International returns the rows of version, falling back to the newest.
func (s *RateStore) International(version string) ([]models.RoamingRateRow, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if version == "" {
		version = s.international.newest()
	}
	if rows, ok := s.international.datasets[version]; ok {
		return rows, version
	}
	if rows, ok := s.international.datasets[s.international.newest()]; ok {
		return rows, version
	}
	return []models.RoamingRateRow{}, version
}

func (s *RateStore) InternationalVersions() []models.RateVersion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.RateVersion(nil), s.international.versions...)
}

func (s *RateStore) AddInternationalVersion(rows []models.RoamingRateRow) models.RateVersion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.international.add(rows, timestamp(s.now))
}

func (s *RateStore) Mapping() []models.MappingRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MappingRow(nil), s.mapping...)
}

// MappingKey identifies a mapping row independently of its rate id.
func MappingKey(m models.MappingRow) string {
	return strings.Join([]string{m.TariffPlanKey, m.CallTypeKey, m.OriginationTypeKey, m.DestinationTypeKey, m.PeakKey}, "|")
}

// CompareMapping diffs candidate against the current mapping table. Without
// a candidate the reference comparison result is returned.
func (s *RateStore) CompareMapping(candidate []models.MappingRow) models.MappingDiff {
	if len(candidate) == 0 {
		return referenceDiff()
	}

	current := s.Mapping()
	byKey := make(map[string]models.MappingRow, len(current))
	for _, m := range current {
		byKey[MappingKey(m)] = m
	}

	diff := models.MappingDiff{
		Added:   []models.MappingRow{},
		Removed: []models.MappingRow{},
		Updated: []models.MappingUpdate{},
	}
	seen := make(map[string]bool, len(candidate))
	for _, c := range candidate {
		key := MappingKey(c)
		seen[key] = true
		old, ok := byKey[key]
		switch {
		case !ok:
			diff.Added = append(diff.Added, c)
		case old.RateIDValue != c.RateIDValue:
			diff.Updated = append(diff.Updated, models.MappingUpdate{Key: key, OldRateID: old.RateIDValue, NewRateID: c.RateIDValue})
		}
	}
	for _, m := range current {
		if !seen[MappingKey(m)] {
			diff.Removed = append(diff.Removed, m)
		}
	}

	diff.Summary = models.MappingDiffSummary{Added: len(diff.Added), Removed: len(diff.Removed), Updated: len(diff.Updated)}
	return diff
}

func referenceDiff() models.MappingDiff {
	return models.MappingDiff{
		Summary: models.MappingDiffSummary{Added: 1, Removed: 0, Updated: 2},
		Added: []models.MappingRow{
			{TariffPlanKey: "ROAM_PLUS", CallTypeKey: "SMS", OriginationTypeKey: "ROAMING", DestinationTypeKey: "ANY", PeakKey: "ANY", RateIDValue: "RATE100"},
		},
		Removed: []models.MappingRow{},
		Updated: []models.MappingUpdate{
			{Key: "ROAM_STANDARD|VOICE|ROAMING|ETH|PEAK", OldRateID: "RATE001", NewRateID: "RATE003"},
			{Key: "ROAM_STANDARD|DATA|ROAMING|ANY|OFFPEAK", OldRateID: "RATE002", NewRateID: "RATE004"},
		},
	}
}
