package domain

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type EventStatus string

const (
	EventOpen   EventStatus = "OPEN"
	EventClosed EventStatus = "CLOSED"
)

type User struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Role    Role   `db:"role"`
	Credits int64  `db:"credits"`
	Score   int64  `db:"score"`
}

type Event struct {
	ID         int         `db:"id"`
	Home       string      `db:"home"`
	Away       string      `db:"away"`
	Kickoff    time.Time   `db:"kickoff"`
	Status     EventStatus `db:"status"`
	Cost       int64       `db:"cost"`
	IsFinal    bool        `db:"is_final"`
	ResultHome *int        `db:"result_home"`
	ResultAway *int        `db:"result_away"`
}

// HasResult reports whether an official result has been posted. Both result
// columns are set together or not at all.
func (e *Event) HasResult() bool {
	return e.ResultHome != nil && e.ResultAway != nil
}

type Prediction struct {
	ID          int   `db:"id"`
	UserID      int   `db:"user_id"`
	EventID     int   `db:"event_id"`
	Home        int   `db:"home"`
	Away        int   `db:"away"`
	CreditSpent int64 `db:"credit_spent"`
	Points      int   `db:"points"`
}

// EventPool holds the per-event prize money. Local accumulates the event
// share of every entry fee, Carried is pulled in from the previous settled
// event that paid nothing out, Distributed is the audited payout amount and
// PaidOut marks that winners have been credited.
type EventPool struct {
	ID          int   `db:"id"`
	EventID     int   `db:"event_id"`
	Local       int64 `db:"local"`
	Carried     int64 `db:"carried"`
	Distributed int64 `db:"distributed"`
	PaidOut     bool  `db:"paid_out"`
}

type GlobalPool struct {
	ID    int   `db:"id"`
	Total int64 `db:"total"`
}

// LocalShare is the part of an entry fee that stays in the event pool.
// The remainder goes to the championship-wide pool, so the two shares
// always reconstruct the fee exactly.
func LocalShare(cost int64) int64 {
	return cost * 60 / 100
}

func GlobalShare(cost int64) int64 {
	return cost - LocalShare(cost)
}
