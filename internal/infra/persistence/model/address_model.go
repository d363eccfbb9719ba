package model

import (
	"time"

	"gorm.io/gorm"
)

// AddressModel is the GORM-specific struct for the addresses table.
// Table and polymorphic column names are resolved by AddressNamingStrategy.
type AddressModel struct {
	ID                 uint64   `gorm:"primaryKey;autoIncrement"`
	OwnerType          string   `gorm:"type:varchar(255);not null;index:idx_addresses_on_owner,priority:1"`
	OwnerID            uint64   `gorm:"not null;index:idx_addresses_on_owner,priority:2"`
	Relation           string   `gorm:"type:varchar(255);not null;index:idx_addresses_on_owner,priority:3"`
	Label              string   `gorm:"type:varchar(255);not null"`
	Street             string   `gorm:"type:varchar(140)"`
	HouseNumber        string   `gorm:"column:housenumber;type:varchar(140)"`
	HouseNumberPostfix string   `gorm:"column:housenumber_postfix;type:varchar(140)"`
	PostalCode         string   `gorm:"type:varchar(140)"`
	City               string   `gorm:"type:varchar(140)"`
	State              string   `gorm:"type:varchar(140)"`
	Country            string   `gorm:"type:varchar(2)"`
	Latitude           *float64 `gorm:"type:decimal(10,8)"`
	Longitude          *float64 `gorm:"type:decimal(11,8)"`
	IsPublic           bool     `gorm:"not null"`
	IsPrimary          bool     `gorm:"not null"`
	IsBilling          bool     `gorm:"not null"`
	IsShipping         bool     `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}
