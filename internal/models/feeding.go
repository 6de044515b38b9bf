package models

import "time"

type Feeding struct {
	Id        int64     `json:"id" db:"id"`
	CatId     int64     `json:"cat_id" db:"cat_id"`
	Amount    string    `json:"amount" db:"amount"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// NewFeeding is the creation payload. Timestamp is optional and defaults
// to the submission time.
type NewFeeding struct {
	CatId     int64      `json:"cat_id"`
	Amount    string     `json:"amount"`
	Timestamp *time.Time `json:"timestamp"`
}
