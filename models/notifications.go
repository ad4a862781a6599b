package models

type BusinessUnit string

const (
	BusinessUnitCBU   BusinessUnit = "CBU"
	BusinessUnitEBU   BusinessUnit = "EBU"
	BusinessUnitMPESA BusinessUnit = "M-PESA"
)

func (b BusinessUnit) Valid() bool {
	return b == BusinessUnitCBU || b == BusinessUnitEBU || b == BusinessUnitMPESA
}

type ResourceType string

const (
	ResourceData  ResourceType = "DATA"
	ResourceVoice ResourceType = "VOICE"
	ResourceSMS   ResourceType = "SMS"
)

func (r ResourceType) Valid() bool {
	return r == ResourceData || r == ResourceVoice || r == ResourceSMS
}

type Validity string

const (
	ValidityDaily     Validity = "DAILY"
	ValidityWeekly    Validity = "WEEKLY"
	ValidityMonthly   Validity = "MONTHLY"
	ValidityUnlimited Validity = "UNLIMITED"
	ValidityMega      Validity = "MEGA"
)

func (v Validity) Valid() bool {
	switch v {
	case ValidityDaily, ValidityWeekly, ValidityMonthly, ValidityUnlimited, ValidityMega:
		return true
	}
	return false
}

// Localized holds one text per supported language: English, Amharic,
// Oromo, Somali and Tigrinya.
type Localized struct {
	En string `json:"en"`
	Am string `json:"am"`
	Om string `json:"om"`
	So string `json:"so"`
	Ti string `json:"ti"`
}

// LocalizedPatch updates only the languages that are present.
type LocalizedPatch struct {
	En *string `json:"en,omitempty"`
	Am *string `json:"am,omitempty"`
	Om *string `json:"om,omitempty"`
	So *string `json:"so,omitempty"`
	Ti *string `json:"ti,omitempty"`
}

// Apply merges the patch into l.
func (p *LocalizedPatch) Apply(l *Localized) {
	if p == nil {
		return
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&l.En, p.En)
	set(&l.Am, p.Am)
	set(&l.Om, p.Om)
	set(&l.So, p.So)
	set(&l.Ti, p.Ti)
}

// MasterNotification is a notification template keyed by product attributes.
type MasterNotification struct {
	ID               string         `json:"id"`
	BusinessUnits    []BusinessUnit `json:"businessUnits"`
	ResourceType     ResourceType   `json:"resourceType"`
	Validity         Validity       `json:"validity"`
	BundleType       string         `json:"bundleType"`
	NotificationType string         `json:"notificationType"`
	DynamicPrice     bool           `json:"dynamicPrice"`
	Price            *float64       `json:"price"`
	Name             string         `json:"name"`
	Content          Localized      `json:"content"`
}

// CreateMasterNotificationRequest uses pointers so that absent fields can be
// told apart from zero values.
type CreateMasterNotificationRequest struct {
	BusinessUnits    []BusinessUnit `json:"businessUnits"`
	ResourceType     *ResourceType  `json:"resourceType"`
	Validity         *Validity      `json:"validity"`
	BundleType       *string        `json:"bundleType"`
	NotificationType *string        `json:"notificationType"`
	DynamicPrice     bool           `json:"dynamicPrice"`
	Price            *float64       `json:"price"`
	Name             *string        `json:"name"`
	Content          *Localized     `json:"content"`
}

type MasterNotificationPatch struct {
	BusinessUnits    []BusinessUnit  `json:"businessUnits,omitempty"`
	ResourceType     *ResourceType   `json:"resourceType,omitempty"`
	Validity         *Validity       `json:"validity,omitempty"`
	BundleType       *string         `json:"bundleType,omitempty"`
	NotificationType *string         `json:"notificationType,omitempty"`
	DynamicPrice     *bool           `json:"dynamicPrice,omitempty"`
	Price            *float64        `json:"price,omitempty"`
	Name             *string         `json:"name,omitempty"`
	Content          *LocalizedPatch `json:"content,omitempty"`
}

// MasterNotificationFilter mirrors the list page query string.
type MasterNotificationFilter struct {
	BusinessUnits    []BusinessUnit
	ResourceType     ResourceType
	Validity         Validity
	BundleType       string
	NotificationType string
	DynamicPrice     *bool
	Search           string
}

// NotificationItem is a generated notification attached to one NCC product.
type NotificationItem struct {
	ID               string       `json:"id"`
	NccID            string       `json:"nccId"`
	BusinessUnit     BusinessUnit `json:"businessUnit"`
	ResourceType     ResourceType `json:"resourceType"`
	Validity         Validity     `json:"validity"`
	BundleType       string       `json:"bundleType"`
	NotificationType string       `json:"notificationType"`
	Price            *float64     `json:"price"`
	Content          string       `json:"content"`
	Marketing        Localized    `json:"marketing"`
	UpdatedAt        string       `json:"updatedAt"`
	Author           string       `json:"author"`
	Reason           string       `json:"reason,omitempty"`
}

type NotificationPatch struct {
	NccID            *string         `json:"nccId,omitempty"`
	BusinessUnit     *BusinessUnit   `json:"businessUnit,omitempty"`
	ResourceType     *ResourceType   `json:"resourceType,omitempty"`
	Validity         *Validity       `json:"validity,omitempty"`
	BundleType       *string         `json:"bundleType,omitempty"`
	NotificationType *string         `json:"notificationType,omitempty"`
	Price            *float64        `json:"price,omitempty"`
	Content          *string         `json:"content,omitempty"`
	Marketing        *LocalizedPatch `json:"marketing,omitempty"`
	Author           *string         `json:"author,omitempty"`
	Reason           *string         `json:"reason,omitempty"`
}

type NotificationFilter struct {
	BusinessUnit     BusinessUnit
	ResourceType     ResourceType
	Validity         Validity
	BundleType       string
	NotificationType string
	Search           string
}
