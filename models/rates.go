package models

// RoamingRateRow holds per-country tariffs in Birr per minute, MB or SMS.
// International rate rows share the same shape.
type RoamingRateRow struct {
	Country        string  `json:"country"`
	CallToEthiopia float64 `json:"callToEthiopia"`
	CallToLocal    float64 `json:"callToLocal"`
	CallToOther    float64 `json:"callToOther"`
	ReceivingCall  float64 `json:"receivingCall"`
	DataMb         float64 `json:"dataMb"`
	SendingSms     float64 `json:"sendingSms"`
	ReceivingSms   float64 `json:"receivingSms"`
}

type MappingRow struct {
	TariffPlanKey      string `json:"tariffPlanKey"`
	CallTypeKey        string `json:"callTypeKey"`
	OriginationTypeKey string `json:"originationTypeKey"`
	DestinationTypeKey string `json:"destinationTypeKey"`
	PeakKey            string `json:"peakKey"`
	RateIDValue        string `json:"rateIdValue"`
}

type RateVersion struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

type RatesResponse struct {
	Items   []RoamingRateRow `json:"items"`
	Version string           `json:"version"`
}

type RateVersionsResponse struct {
	Versions []RateVersion `json:"versions"`
}

type MappingUpdate struct {
	Key       string `json:"key"`
	OldRateID string `json:"oldRateId"`
	NewRateID string `json:"newRateId"`
}

type MappingDiffSummary struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
	Updated int `json:"updated"`
}

type MappingDiff struct {
	Summary MappingDiffSummary `json:"summary"`
	Added   []MappingRow       `json:"added"`
	Removed []MappingRow       `json:"removed"`
	Updated []MappingUpdate    `json:"updated"`
}

type UploadResponse struct {
	Message string       `json:"message"`
	Version *RateVersion `json:"version,omitempty"`
}
