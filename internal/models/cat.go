package models

import "time"

type Cat struct {
	Id        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Feedings  []Feeding `json:"feedings"`
}

type NewCat struct {
	Name string `json:"name"`
}
