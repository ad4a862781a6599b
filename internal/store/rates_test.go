package store

import (
	"testing"
	"time"

	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateStoreRoaming(t *testing.T) {
	s := NewRateStore()

	rows, version := s.Roaming("")
	assert.Equal(t, "v2", version)
	assert.Len(t, rows, 3)

	rows, version = s.Roaming("v1")
	assert.Equal(t, "v1", version)
	assert.Len(t, rows, 2)

	rows, _ = s.Roaming("v9")
	assert.Equal(t, s.Processed(), rows, "unknown versions fall back to the current sheet")

	versions := s.RoamingVersions()
	require.Len(t, versions, 2)
	assert.Equal(t, "v2", versions[0].ID)
}

func TestRateStoreAddVersion(t *testing.T) {
	s := NewRateStore()
	s.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	upload := []models.RoamingRateRow{{Country: "Rwanda", CallToEthiopia: 40}}
	v := s.AddRoamingVersion(upload)
	assert.Equal(t, "v3", v.ID)
	assert.Equal(t, "2024-01-02T03:04:05.000Z", v.CreatedAt)
	assert.Equal(t, upload, s.Processed())

	rows, version := s.Roaming("")
	assert.Equal(t, "v3", version)
	assert.Equal(t, upload, rows)

	iv := s.AddInternationalVersion(upload)
	assert.Equal(t, "v3", iv.ID)
	assert.Equal(t, "v3", s.InternationalVersions()[0].ID)

	s.Reseed()
	assert.Len(t, s.RoamingVersions(), 2)
	assert.Len(t, s.InternationalVersions(), 2)
}

func TestRateStoreInternationalFallback(t *testing.T) {
	s := NewRateStore()

	rows, version := s.International("v7")
	assert.Equal(t, "v7", version)
	assert.Len(t, rows, 3, "unknown versions fall back to the newest sheet")
}

func TestCompareMappingReference(t *testing.T) {
	s := NewRateStore()

	diff := s.CompareMapping(nil)
	assert.Equal(t, models.MappingDiffSummary{Added: 1, Removed: 0, Updated: 2}, diff.Summary)
	assert.NotNil(t, diff.Removed)
	require.Len(t, diff.Updated, 2)
	assert.Equal(t, "RATE003", diff.Updated[0].NewRateID)
}

func TestCompareMappingCandidate(t *testing.T) {
	s := NewRateStore()
	current := s.Mapping()

	changed := current[0]
	changed.RateIDValue = "RATE009"
	added := models.MappingRow{TariffPlanKey: "ROAM_LITE", CallTypeKey: "SMS", OriginationTypeKey: "ROAMING", DestinationTypeKey: "ANY", PeakKey: "ANY", RateIDValue: "RATE010"}

	diff := s.CompareMapping([]models.MappingRow{changed, added})
	assert.Equal(t, models.MappingDiffSummary{Added: 1, Removed: 1, Updated: 1}, diff.Summary)
	assert.Equal(t, added, diff.Added[0])
	assert.Equal(t, current[1], diff.Removed[0])
	assert.Equal(t, models.MappingUpdate{Key: MappingKey(current[0]), OldRateID: "RATE001", NewRateID: "RATE009"}, diff.Updated[0])
}
