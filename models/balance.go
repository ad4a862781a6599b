package models

type TransferRequest struct {
	Sender   string `json:"sender" validate:"msisdn"`
	Receiver string `json:"receiver" validate:"msisdn"`
	Amount   any    `json:"amount"`
}

type AdjustBalanceRequest struct {
	PhoneNumber    string  `json:"phoneNumber" validate:"required"`
	Amount         float64 `json:"amount" validate:"gt=0"`
	AdjustmentType string  `json:"adjustmentType" validate:"required,oneof=credit debit"`
}

type AdjustBalanceResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Info    string            `json:"info,omitempty"`
}

type PinRechargeRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Pin         string `json:"pin" validate:"required"`
}

type PinRechargeResponse struct {
	Amount        int    `json:"amount"`
	TransactionID string `json:"transactionId"`
	NewBalance    int    `json:"newBalance"`
	Timestamp     string `json:"timestamp"`
}

type PinlessRechargeRequest struct {
	MSISDN    string  `json:"msisdn" validate:"e164_loose"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	ChannelID string  `json:"channelId" validate:"required"`
}

type PinlessRechargeResponse struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Channel       string  `json:"channel"`
	NewBalance    float64 `json:"newBalance"`
	Fee           float64 `json:"fee"`
}

type AccountInfo struct {
	CustomerName     string  `json:"customerName"`
	AccountType      string  `json:"accountType"`
	Status           string  `json:"status"`
	RegistrationDate string  `json:"registrationDate"`
	LastActivity     string  `json:"lastActivity"`
	MainBalance      float64 `json:"mainBalance"`
	BonusBalance     float64 `json:"bonusBalance"`
	AccountID        string  `json:"accountId"`
	State1           string  `json:"state1"`
	State2           string  `json:"state2"`
	AccountBalance   float64 `json:"accountBalance"`
	DeviceID         string  `json:"deviceId"`
	CreationTime     string  `json:"creationTime"`
	LastUpdateTime   string  `json:"lastUpdateTime"`
	ValidityTime     string  `json:"validityTime"`
}

type BundleBalance struct {
	ID           string `json:"id"`
	BundleName   string `json:"bundleName"`
	BucketName   string `json:"bucketName"`
	Measure      string `json:"measure"`
	InitialValue int    `json:"initialValue"`
	CurrentValue int    `json:"currentValue"`
	UnusedValue  int    `json:"unusedValue"`
}

type LoanInstance struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	ServiceFee    float64 `json:"serviceFee"`
	RemainingDebt float64 `json:"remainingDebt"`
	CreationTime  string  `json:"creationTime"`
}

type RechargeRecord struct {
	ID      string  `json:"id"`
	Time    string  `json:"time"`
	Amount  float64 `json:"amount"`
	Channel string  `json:"channel"`
	Bonus   string  `json:"bonus"`
}

// AccountData is the subscriber profile returned by a balance enquiry.
type AccountData struct {
	PhoneNumber     string           `json:"phoneNumber"`
	AccountInfo     AccountInfo      `json:"accountInfo"`
	BundlesDetails  []BundleBalance  `json:"bundles_details"`
	LoanInstances   []LoanInstance   `json:"loanInstances"`
	RechargeHistory []RechargeRecord `json:"recharge_history"`
}
