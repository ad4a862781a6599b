package mockgen

import (
	"fmt"
	"math"
	"net/http"

	"github.com/ncc-uat/ncc-admin-services/models"
)

const (
	// PinlessFeeRate is the share of a pinless recharge charged as fee.
	PinlessFeeRate = 0.02

	timeLayout = "2006-01-02 15:04:05"
)

// AdjustBalance credits or debits a subscriber's main balance.
func (g *Generator) AdjustBalance(req models.AdjustBalanceRequest) (models.AdjustBalanceResponse, error) {
	if !g.chance(0.85) {
		return models.AdjustBalanceResponse{}, &Failure{
			Status:  http.StatusInternalServerError,
			Message: "Failed to adjust balance. Please try again.",
			Details: map[string]string{"errorCode": "ADJ_001", "description": "Network timeout"},
		}
	}
	return models.AdjustBalanceResponse{
		Status:  "success",
		Message: "Balance adjustment completed successfully",
		Details: map[string]string{
			"transactionId":  fmt.Sprintf("TXN%d", g.millis()),
			"amount":         formatAmount(req.Amount),
			"adjustmentType": req.AdjustmentType,
			"phoneNumber":    req.PhoneNumber,
			"timestamp":      g.now().UTC().Format(timeLayout),
		},
		Info: "Customer has been notified via SMS",
	}, nil
}

// PinRecharge redeems a scratch card PIN.
func (g *Generator) PinRecharge(req models.PinRechargeRequest) (models.PinRechargeResponse, error) {
	if !g.chance(0.85) {
		return models.PinRechargeResponse{}, fail(http.StatusUnprocessableEntity, "Invalid PIN or PIN already used. Please check and try again.")
	}
	return models.PinRechargeResponse{
		Amount:        g.between(10, 500),
		TransactionID: fmt.Sprintf("TXN%d", g.millis()),
		NewBalance:    g.between(100, 1000),
		Timestamp:     g.now().UTC().Format(timeLayout),
	}, nil
}

// PinlessRecharge tops up an account directly from a channel.
func (g *Generator) PinlessRecharge(req models.PinlessRechargeRequest) (models.PinlessRechargeResponse, error) {
	roll := g.dice.Float64()
	switch {
	case roll >= 0.9:
		return models.PinlessRechargeResponse{}, fail(http.StatusBadRequest, "Invalid request or insufficient balance")
	case roll >= 0.85:
		return models.PinlessRechargeResponse{}, fail(http.StatusInternalServerError, "System error occurred")
	}
	return models.PinlessRechargeResponse{
		TransactionID: fmt.Sprintf("PNL%d", g.millis()),
		Amount:        req.Amount,
		Channel:       req.ChannelID,
		NewBalance:    float64(g.dice.IntN(1000)) + req.Amount,
		Fee:           math.Round(req.Amount*PinlessFeeRate*100) / 100,
	}, nil
}

// CheckBalance returns the account profile of msisdn.
func (g *Generator) CheckBalance(msisdn string) (models.AccountData, error) {
	if !g.chance(0.9) {
		return models.AccountData{}, fail(http.StatusNotFound, "Phone number not found or account inactive. Please check and try again.")
	}

	const mainBalance, bonusBalance = 245.5, 50.0
	return models.AccountData{
		PhoneNumber: msisdn,
		AccountInfo: models.AccountInfo{
			CustomerName:     "John Doe Mwangi",
			AccountType:      "Prepaid",
			Status:           "Active",
			RegistrationDate: "2022-03-15",
			LastActivity:     "2024-01-15 14:30",
			MainBalance:      mainBalance,
			BonusBalance:     bonusBalance,
			AccountID:        fmt.Sprintf("ACC%d", g.millis()),
			State1:           "Active",
			State2:           "Verified",
			AccountBalance:   mainBalance + bonusBalance,
			DeviceID:         "DEV-9843-XY",
			CreationTime:     "2022-03-15 10:05",
			LastUpdateTime:   g.now().UTC().Format(timeLayout),
			ValidityTime:     "2025-12-31 23:59",
		},
		BundlesDetails: []models.BundleBalance{
			{ID: "BDL-001", BundleName: "Data Starter", BucketName: "DATA_MAIN", Measure: "MB", InitialValue: 1024, CurrentValue: 750, UnusedValue: 274},
			{ID: "BDL-002", BundleName: "Voice Bundle", BucketName: "VOICE_MIN", Measure: "Minutes", InitialValue: 200, CurrentValue: 120, UnusedValue: 80},
		},
		LoanInstances: []models.LoanInstance{
			{ID: "LN-1001", Amount: 100, ServiceFee: 5, RemainingDebt: 105, CreationTime: "2024-01-10 09:20"},
		},
		RechargeHistory: []models.RechargeRecord{
			{ID: "RCG-001", Time: "2024-01-15 14:30", Amount: 100, Channel: "PIN", Bonus: "BDL-001"},
			{ID: "RCG-002", Time: "2024-01-12 16:00", Amount: 50, Channel: "MPESSA", Bonus: "BDL-002"},
			{ID: "RCG-003", Time: "2024-01-10 11:45", Amount: 200, Channel: "Bank", Bonus: "BDL-001"},
		},
	}, nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%g", v)
}
