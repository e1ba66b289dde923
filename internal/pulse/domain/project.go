package domain

import (
	"errors"
	"time"
)

// Category selects the step template a project is created from.
type Category string

const (
	CategoryRealEstate Category = "real-estate"
	CategoryTraining   Category = "training"
)

// ErrUnknownCategory reports a category outside the closed set.
var ErrUnknownCategory = errors.New("domain: unknown project category")

// ParseCategory validates s against the closed category set.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryRealEstate, CategoryTraining:
		return Category(s), nil
	default:
		return "", ErrUnknownCategory
	}
}

// Project is one client engagement being tracked. The access token is the
// only credential a client or advance link carries, so it must stay unique
// across all projects.
type Project struct {
	ID              string
	AccessToken     string
	ClientName      string
	BrokerEmail     string
	Category        Category
	ProgressPercent int
	StatusText      string
	DriveFolder     string // optional external document folder reference
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
