package delivery

import "time"

// Notification is implemented by every event the service publishes after a
// committed transition. Kind is the channel/topic name the publisher routes on.
type Notification interface {
	Kind() string
}

// CreatedEvent announces a newly registered delivery and carries its identifier.
type CreatedEvent struct {
	Hash string `json:"hash"`
}

// Kind implements Notification.
func (CreatedEvent) Kind() string { return "delivery.created" }

// StartedEvent announces a funded, started delivery.
type StartedEvent struct {
	Hash      string    `json:"hash"`
	StartTime time.Time `json:"start_time"`
}

// Kind implements Notification.
func (StartedEvent) Kind() string { return "delivery.started" }

// EndedEvent announces a successfully settled delivery.
type EndedEvent struct {
	Hash    string    `json:"hash"`
	EndTime time.Time `json:"end_time"`
}

// Kind implements Notification.
func (EndedEvent) Kind() string { return "delivery.ended" }

// DeadlineCheckEvent reports the outcome of a sender's overtime check,
// whether or not it settled the delivery.
type DeadlineCheckEvent struct {
	Hash     string `json:"hash"`
	IsOnTime bool   `json:"is_on_time"`
}

// Kind implements Notification.
func (DeadlineCheckEvent) Kind() string { return "delivery.deadline_check" }

// OverdueNoticeEvent is published by the background deadline watch for started
// deliveries past their deadline. Informational only: funds move exclusively
// through the sender's explicit overtime check.
type OverdueNoticeEvent struct {
	Hash     string    `json:"hash"`
	Deadline time.Time `json:"deadline"`
}

// Kind implements Notification.
func (OverdueNoticeEvent) Kind() string { return "delivery.overdue_notice" }

// RateChangedEvent announces an owner change to the commission policy rate.
// Existing deliveries keep their creation-time snapshot.
type RateChangedEvent struct {
	NewRate int `json:"new_rate"`
}

// Kind implements Notification.
func (RateChangedEvent) Kind() string { return "commission.rate_changed" }
