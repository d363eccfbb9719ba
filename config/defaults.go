package config

import (
	"maps"
	"time"
)

const (
	defaultAddressTable      = "addresses"
	defaultOwnerTypeColumn   = "owner_type"
	defaultOwnerIDColumn     = "owner_id"
	defaultRelationColumn    = "relation"
	defaultRelation          = "addresses"
	defaultCacheTTL          = 5 * time.Minute
	defaultCacheKeyPrefix    = "addressbook"
	defaultMetricsPath       = "/metrics"
	defaultHTTPPort          = 8080
	defaultLogLevel          = "info"
	defaultServiceName       = "addressbook"
)

// DefaultAddressFields returns the default field rule table.
// Values are go-playground/validator tags; is_string is registered by the address validator.
func DefaultAddressFields() map[string]string {
	return map[string]string{
		"label":               "required,is_string,max=255",
		"street":              "omitempty,is_string,max=140",
		"housenumber":         "omitempty,is_string,max=140",
		"housenumber_postfix": "omitempty,is_string,max=140",
		"postal_code":         "omitempty,is_string,max=140",
		"city":                "omitempty,is_string,max=140",
		"state":               "omitempty,is_string,max=140",
		"country":             "omitempty,is_string,alpha,len=2",
		"latitude":            "omitempty,numeric",
		"longitude":           "omitempty,numeric",
		"is_public":           "omitempty,boolean",
		"is_primary":          "omitempty,boolean",
		"is_billing":          "omitempty,boolean",
		"is_shipping":         "omitempty,boolean",
	}
}

// DefaultAddressesConfig returns an AddressesConfig with every default applied.
func DefaultAddressesConfig() *AddressesConfig {
	cfg := &AddressesConfig{}
	cfg.applyDefaults()

	return cfg
}

// ApplyDefaults fills in every unset value that has a default.
func (c *Config) ApplyDefaults() {
	if c.Env.ServiceName == "" {
		c.Env.ServiceName = defaultServiceName
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = defaultLogLevel
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}

	if c.Addresses == nil {
		c.Addresses = &AddressesConfig{}
	}
	c.Addresses.applyDefaults()

	if c.Redis != nil {
		if c.Redis.TTL <= 0 {
			c.Redis.TTL = defaultCacheTTL
		}
		if c.Redis.KeyPrefix == "" {
			c.Redis.KeyPrefix = defaultCacheKeyPrefix
		}
	}

	if c.Metrics != nil && c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
}

func (c *AddressesConfig) applyDefaults() {
	if c.TableName == "" {
		c.TableName = defaultAddressTable
	}
	if c.Columns.OwnerType == "" {
		c.Columns.OwnerType = defaultOwnerTypeColumn
	}
	if c.Columns.OwnerID == "" {
		c.Columns.OwnerID = defaultOwnerIDColumn
	}
	if c.Columns.Relation == "" {
		c.Columns.Relation = defaultRelationColumn
	}
	if c.Relation == "" {
		c.Relation = defaultRelation
	}

	// Configured rules override the defaults field by field.
	fields := DefaultAddressFields()
	maps.Copy(fields, c.Fields)
	c.Fields = fields
}

// AllowsOwnerType reports whether the owner type is accepted.
func (c *AddressesConfig) AllowsOwnerType(ownerType string) bool {
	if ownerType == "" {
		return false
	}
	if len(c.OwnerTypes) == 0 {
		return true
	}
	for _, t := range c.OwnerTypes {
		if t == ownerType {
			return true
		}
	}

	return false
}
