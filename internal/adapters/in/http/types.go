package http

import "time"

// Error is the JSON error body returned by every failing route.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ContactPayload carries a party's directory record inside requests.
type ContactPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// CreateDeliveryRequest is the body of POST /api/v1/deliveries. The sender is
// the authenticated principal from the X-Account header.
type CreateDeliveryRequest struct {
	SenderContact   ContactPayload `json:"senderContact"`
	Receiver        string         `json:"receiver"`
	ReceiverContact ContactPayload `json:"receiverContact"`
	FromAddress     string         `json:"fromAddress"`
	ToAddress       string         `json:"toAddress"`
	Reward          uint64         `json:"reward"`
	CautionAmount   uint64         `json:"cautionAmount"`
	Deadline        time.Time      `json:"deadline"`
}

// CreateDeliveryResponse returns the derived delivery identifier.
type CreateDeliveryResponse struct {
	Hash string `json:"hash"`
}

// ApplyRequest is the body of POST /api/v1/deliveries/:hash/apply. Attached
// must equal the delivery's caution amount exactly.
type ApplyRequest struct {
	Contact  ContactPayload `json:"contact"`
	Attached uint64         `json:"attached"`
}

// StartRequest is the body of POST /api/v1/deliveries/:hash/start. Attached
// must equal the delivery's reward exactly.
type StartRequest struct {
	Attached uint64 `json:"attached"`
}

// StartResponse returns the recorded start time.
type StartResponse struct {
	StartTime time.Time `json:"startTime"`
}

// ReceiptResponse returns the recorded end time.
type ReceiptResponse struct {
	EndTime time.Time `json:"endTime"`
}

// OvertimeCheckResponse reports the outcome of a deadline probe.
type OvertimeCheckResponse struct {
	IsOnTime bool `json:"isOnTime"`
}

// DeliveryResponse is the public record of one delivery. Courier is empty
// until someone applies; startTime and endTime are omitted until set.
type DeliveryResponse struct {
	Hash           string     `json:"hash"`
	Sender         string     `json:"sender"`
	Receiver       string     `json:"receiver"`
	Courier        string     `json:"courier,omitempty"`
	FromAddress    string     `json:"fromAddress"`
	ToAddress      string     `json:"toAddress"`
	Reward         uint64     `json:"reward"`
	CautionAmount  uint64     `json:"cautionAmount"`
	Deadline       time.Time  `json:"deadline"`
	StartTime      *time.Time `json:"startTime,omitempty"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	CommissionRate int        `json:"commissionRate"`
	Commission     uint64     `json:"commission"`
	CourierPayout  uint64     `json:"courierPayout"`
	State          string     `json:"state"`
}

// ExistsResponse reports delivery existence.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// CountResponse reports the registry size.
type CountResponse struct {
	Count int64 `json:"count"`
}

// HashResponse resolves an enumeration index.
type HashResponse struct {
	Hash string `json:"hash"`
}

// UserResponse is the directory record of an account; fields are empty when
// the account never took part in a delivery.
type UserResponse struct {
	Account string `json:"account"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CommissionRateResponse reports a commission rate in percent.
type CommissionRateResponse struct {
	Rate int `json:"rate"`
}

// ChangeCommissionRateRequest is the body of PUT /api/v1/commission-rate.
type ChangeCommissionRateRequest struct {
	Rate int `json:"rate"`
}

// DepositRequest is the body of POST /api/v1/wallet/deposit.
type DepositRequest struct {
	Amount uint64 `json:"amount"`
}

// BalanceResponse reports a ledger balance.
type BalanceResponse struct {
	Balance uint64 `json:"balance"`
}
