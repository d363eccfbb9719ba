package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsAddressSchema(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Addresses)
	assert.Equal(t, "addresses", cfg.Addresses.TableName)
	assert.Equal(t, "owner_type", cfg.Addresses.Columns.OwnerType)
	assert.Equal(t, "owner_id", cfg.Addresses.Columns.OwnerID)
	assert.Equal(t, "relation", cfg.Addresses.Columns.Relation)
	assert.Equal(t, "addresses", cfg.Addresses.Relation)
	assert.Equal(t, DefaultAddressFields(), cfg.Addresses.Fields)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Env.Log.Level)
	assert.Nil(t, cfg.Redis)
}

func TestApplyDefaults_ConfiguredRulesOverrideDefaults(t *testing.T) {
	cfg := &Config{
		Addresses: &AddressesConfig{
			TableName: "customer_addresses",
			Fields: map[string]string{
				"city":     "required,is_string,max=50",
				"province": "omitempty,is_string",
			},
		},
		Redis: &RedisConfig{Enabled: true},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "customer_addresses", cfg.Addresses.TableName)
	assert.Equal(t, "required,is_string,max=50", cfg.Addresses.Fields["city"])
	assert.Equal(t, "omitempty,is_string", cfg.Addresses.Fields["province"])
	assert.Equal(t, "required,is_string,max=255", cfg.Addresses.Fields["label"])
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "addressbook", cfg.Redis.KeyPrefix)
}

func TestAddressesConfig_AllowsOwnerType(t *testing.T) {
	open := DefaultAddressesConfig()
	assert.True(t, open.AllowsOwnerType("anything"))
	assert.False(t, open.AllowsOwnerType(""))

	restricted := DefaultAddressesConfig()
	restricted.OwnerTypes = []string{"customer", "organization"}
	assert.True(t, restricted.AllowsOwnerType("customer"))
	assert.False(t, restricted.AllowsOwnerType("merchant"))
}
