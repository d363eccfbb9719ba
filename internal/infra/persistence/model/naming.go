package model

import (
	"addressbook/config"

	"gorm.io/gorm/schema"
)

const addressModelName = "AddressModel"

// AddressNamingStrategy maps AddressModel onto the configured table and
// polymorphic link columns. Every other name falls through to the base namer.
type AddressNamingStrategy struct {
	schema.Namer

	table   string
	columns map[string]string
}

// NewAddressNamingStrategy wraps base (schema.NamingStrategy{} when nil) with the address schema of cfg.
func NewAddressNamingStrategy(cfg *config.AddressesConfig, base schema.Namer) *AddressNamingStrategy {
	if base == nil {
		base = schema.NamingStrategy{}
	}

	return &AddressNamingStrategy{
		Namer: base,
		table: cfg.TableName,
		columns: map[string]string{
			"OwnerType": cfg.Columns.OwnerType,
			"OwnerID":   cfg.Columns.OwnerID,
			"Relation":  cfg.Columns.Relation,
		},
	}
}

// TableName returns the configured table for AddressModel.
func (n *AddressNamingStrategy) TableName(str string) string {
	if str == addressModelName {
		return n.table
	}

	return n.Namer.TableName(str)
}

// ColumnName returns the configured column for the polymorphic link fields.
func (n *AddressNamingStrategy) ColumnName(table, column string) string {
	if table == n.table {
		if name, ok := n.columns[column]; ok && name != "" {
			return name
		}
	}

	return n.Namer.ColumnName(table, column)
}
