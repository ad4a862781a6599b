package mockgen

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ncc-uat/ncc-admin-services/models"
)

var (
	smsTemplates = []string{
		"Dear customer, your %s bundle has been activated successfully.",
		"ውድ ደንበኛ፣ የእርስዎ %s ጥቅል በተሳካ ሁኔታ ተነቅቷል።",
		"Maamila jaalala, paakeejiin %s keessan milkaa'inaan hojjetameera.",
		"ውድ ዓሚል፣ እቲ %s ፓኬጅኩም ብዓወት ተቐስቢሩ።",
		"Macamiil qaaliga ah, xirmada %s ayaa si guul leh loo hawlgeliyay.",
		"Yaabat maali, %s garbak-t raha oofin-t waqay.",
	}
	kafikaTemplates = []string{
		"Notification: Your %s bundle is ready. Check balance with *123#.",
		"ማሳወቂያ፡ የእርስዎ %s ጥቅል ዝግጁ ነው። ሚዛኑን በ*123# ይመልከቱ።",
		"Beeksisa: Paakeejiin %s keessan qophaa'eera. Madaala *123# tiin ilaalaa.",
		"መግለጺ፡ እቲ %s ፓኬጅኩም ድሉው እዩ። ሚዛን ብ*123# ተዓዘብዎ።",
		"Ogeysiis: Xirmada %s ayaa diyaar. Miisaanka *123# ku eeg.",
		"Maatit: %s garbak-t digay. Miisan-t *123# teela.",
	}
)

// Category names the product family encoded in an NCC id prefix.
func Category(nccID string) string {
	switch {
	case strings.HasPrefix(nccID, "CBU"):
		return "Core Banking"
	case strings.HasPrefix(nccID, "EBU"):
		return "Electronic Banking"
	case strings.HasPrefix(nccID, "MPE"):
		return "M-PESA"
	default:
		return "Standard"
	}
}

func (g *Generator) pick(p float64, yes, no string) string {
	if g.chance(p) {
		return yes
	}
	return no
}

// BundleDetails looks up the catalog entry for nccID. One lookup in ten
// finds nothing.
func (g *Generator) BundleDetails(nccID string) (*models.BundleInfo, error) {
	if g.chance(0.1) {
		return nil, fail(http.StatusNotFound, fmt.Sprintf("Bundle with NCC ID %q not found", nccID))
	}

	custom := map[string]any{
		"region":   g.pick(0.5, "East Africa", "West Africa"),
		"priority": g.pick(0.5, "High", "Standard"),
		"category": Category(nccID),
	}
	if g.chance(0.7) {
		custom["specialFeature"] = "Premium Access"
		custom["allocatedBandwidth"] = fmt.Sprintf("%d Mbps", g.between(100, 1000))
	}

	periodLength := 24
	if g.chance(0.5) {
		periodLength = 30
	}

	info := &models.BundleInfo{
		Name:        "Bundle " + nccID,
		Description: fmt.Sprintf("Comprehensive %s bundle with advanced features", nccID),
		QueueID:     fmt.Sprintf("QUEUE_%s_%d", nccID, g.dice.IntN(1000)),
		MaxRenewals: g.between(1, 5),
		Fee:         g.between(50, 500),
		ID:          fmt.Sprintf("ID_%s_%d", nccID, g.millis()),
		CustomData:  custom,
		PLC: &models.PeriodLifecycle{
			Name:         "PLC_" + nccID,
			PeriodType:   g.pick(0.5, "DAYS", "HOURS"),
			PeriodLength: periodLength,
			States: []models.LifecycleState{
				{
					Name: "ACTIVE",
					Actions: []models.LifecycleAction{
						{Type: "ChargeAction", DefaultValues: map[string]any{"amount": g.between(10, 100), "currency": "KES"}},
						{
							Type:                   "SendNotificationAction",
							DefaultValues:          map[string]any{"template": "activation_success", "channel": "SMS"},
							NotificationTemplateID: fmt.Sprintf("NOTIF_%d", g.dice.IntN(1000)),
						},
					},
				},
				{
					Name: "EXPIRED",
					Actions: []models.LifecycleAction{
						{
							Type:                   "SendNotificationAction",
							DefaultValues:          map[string]any{"template": "bundle_expired", "channel": "SMS"},
							NotificationTemplateID: fmt.Sprintf("NOTIF_%d", g.dice.IntN(1000)),
						},
					},
				},
				{
					Name: "SUSPENDED",
					Actions: []models.LifecycleAction{
						{Type: "BlockAction", DefaultValues: map[string]any{"reason": "Insufficient balance"}},
					},
				},
			},
		},
		ChargingLogic: []models.ChargingLogicInfo{
			g.chargingLogic(nccID, "DATA", "DATA_MB", g.between(1000, 5000), g.chance(0.5)),
			g.chargingLogic(nccID, "VOICE", "VOICE_MINUTES", g.between(50, 300), g.chance(0.7)),
		},
	}
	if g.chance(0.6) {
		info.ChargingLogic = append(info.ChargingLogic, g.chargingLogic(nccID, "SMS", "SMS_COUNT", g.between(10, 100), false))
	}
	return info, nil
}

func (g *Generator) chargingLogic(nccID, kind, bucketType string, initial int, carryOver bool) models.ChargingLogicInfo {
	return models.ChargingLogicInfo{
		CLName:                  fmt.Sprintf("CL_%s_%s", nccID, kind),
		Bucket:                  fmt.Sprintf("BUCKET_%s_%s", kind, nccID),
		InitialValue:            initial,
		BucketType:              bucketType,
		ThresholdProfileGroupID: fmt.Sprintf("THR_GRP_%d", g.dice.IntN(100)),
		IsCarryOver:             carryOver,
	}
}

// NotificationMessages renders the activation messages for nccID in every
// supported language, grouped by delivery channel.
func NotificationMessages(nccID, notificationID string) models.NotificationMessagesResponse {
	render := func(templates []string) []string {
		out := make([]string, len(templates))
		for i, t := range templates {
			out[i] = fmt.Sprintf(t, nccID)
		}
		return out
	}
	return models.NotificationMessagesResponse{
		NccID:          nccID,
		NotificationID: notificationID,
		MessagesByChannel: map[string][]string{
			"SMS":    render(smsTemplates),
			"Kafika": render(kafikaTemplates),
		},
	}
}

// Subscribe subscribes msisdn to nccID. Roughly one attempt in seven fails.
func (g *Generator) Subscribe(msisdn, nccID string) (models.SubscribeBundleResponse, error) {
	if g.chance(0.15) {
		return models.SubscribeBundleResponse{}, fail(http.StatusUnprocessableEntity, "Subscription failed. Insufficient balance or bundle not available.")
	}
	return models.SubscribeBundleResponse{
		Success:        true,
		Message:        fmt.Sprintf("Bundle %s successfully subscribed for MSISDN %s", nccID, msisdn),
		SubscriptionID: fmt.Sprintf("SUB_%d_%d", g.millis(), g.dice.IntN(1000)),
	}, nil
}

// Subscriptions lists the bundles a subscriber holds.
func Subscriptions() []models.Subscription {
	return []models.Subscription{
		{BundleName: "Daily Data", BucketName: "Data", Status: "Active", Validity: "1 day"},
		{BundleName: "Weekly Voice", BucketName: "Voice", Status: "Active", Validity: "7 days"},
		{BundleName: "SMS Pack", BucketName: "SMS", Status: "Expired", Validity: "30 days"},
	}
}

// CVMBuckets lists the configurable buckets of a CVM bundle.
func CVMBuckets() []models.CVMBucket {
	return []models.CVMBucket{
		{Name: "DataVolume", UnitType: "MB"},
		{Name: "VoiceMinutes", UnitType: "MIN"},
		{Name: "SMSCount", UnitType: "SMS"},
	}
}
