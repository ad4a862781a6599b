package models

// BundleInfo describes one catalog product as the charging system exposes it.
type BundleInfo struct {
	Name          string              `json:"name"`
	Description   string              `json:"description,omitempty"`
	QueueID       string              `json:"queueId"`
	MaxRenewals   int                 `json:"maxRenewals"`
	Fee           int                 `json:"fee"`
	ID            string              `json:"id"`
	CustomData    map[string]any      `json:"customData"`
	PLC           *PeriodLifecycle    `json:"plc,omitempty"`
	ChargingLogic []ChargingLogicInfo `json:"chargingLogic,omitempty"`
}

type PeriodLifecycle struct {
	Name         string           `json:"name"`
	PeriodType   string           `json:"periodType"`
	PeriodLength int              `json:"periodLength"`
	States       []LifecycleState `json:"states"`
}

type LifecycleState struct {
	Name    string            `json:"name"`
	Actions []LifecycleAction `json:"actions"`
}

type LifecycleAction struct {
	Type                   string         `json:"type"`
	DefaultValues          map[string]any `json:"defaultValues"`
	NotificationTemplateID string         `json:"notificationTemplateId,omitempty"`
}

type ChargingLogicInfo struct {
	CLName                  string `json:"clName"`
	Bucket                  string `json:"bucket"`
	InitialValue            int    `json:"initialValue"`
	BucketType              string `json:"bucketType"`
	ThresholdProfileGroupID string `json:"thresholdProfileGroupId"`
	IsCarryOver             bool   `json:"isCarryOver"`
}

type BundleDetailsResponse struct {
	Result *BundleInfo `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type NotificationMessagesResponse struct {
	NccID             string              `json:"nccId"`
	NotificationID    string              `json:"notificationId"`
	MessagesByChannel map[string][]string `json:"messagesByChannel"`
}

type SubscribeBundleRequest struct {
	MSISDN string `json:"msisdn"`
	NccID  string `json:"nccId"`
}

type SubscribeBundleResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
}

type GiftBundleRequest struct {
	Sender   string `json:"sender" validate:"msisdn"`
	Receiver string `json:"receiver" validate:"msisdn"`
	BundleID string `json:"bundleId"`
}

type LoanRequest struct {
	MSISDN string `json:"msisdn" validate:"msisdn"`
	LoanID string `json:"loanId"`
}

type Subscription struct {
	BundleName string `json:"bundleName"`
	BucketName string `json:"bucketName"`
	Status     string `json:"status"`
	Validity   string `json:"validity"`
}

type CVMBucket struct {
	Name     string `json:"name"`
	UnitType string `json:"unitType"`
}

type CVMBucketsResponse struct {
	Buckets []CVMBucket `json:"buckets"`
}

type CVMBucketValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type CVMSubscribeRequest struct {
	MSISDN   string           `json:"msisdn" validate:"msisdn"`
	BundleID string           `json:"bundleId"`
	Buckets  []CVMBucketValue `json:"buckets"`
}
