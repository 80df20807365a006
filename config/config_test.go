package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "SERVICE_PORT", "TOKEN_TRANSPORT", "ALLOWED_ORIGINS",
		"ORDER_TAX_RATE", "ORDER_PAYMENT_TIMEOUT", "STORAGE_PUBLIC_BASE_URL",
		"ELASTICSEARCH_HOST", "REDIS_TTL", "MIDTRANS_ENVIRONMENT",
	} {
		t.Setenv(key, "")
	}
}

func TestCreateNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	conf := CreateNewConfig()
	assert.Equal(t, "4000", conf.ServicePort)
	assert.Equal(t, TokenTransportHeader, conf.TokenTransport)
	assert.Equal(t, []string{"http://localhost:5173"}, conf.CORSConfig.AllowedOrigins)
	assert.Equal(t, 0.02, conf.OrderConfig.TaxRate)
	assert.Equal(t, 15*time.Minute, conf.OrderConfig.PaymentTimeout)
	assert.Equal(t, 5*time.Minute, conf.RedisConfig.TTL)
	assert.False(t, conf.IsProduction())
	assert.False(t, conf.MidtransConfig.Production)
}

func TestCreateNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("TOKEN_TRANSPORT", "Cookie")
	t.Setenv("ALLOWED_ORIGINS", "https://greennest.app, https://admin.greennest.app ,")
	t.Setenv("ORDER_TAX_RATE", "0.1")
	t.Setenv("ORDER_PAYMENT_TIMEOUT", "30m")
	t.Setenv("STORAGE_PUBLIC_BASE_URL", "https://cdn.greennest.app/")
	t.Setenv("ELASTICSEARCH_HOST", "http://es:9200/")

	conf := CreateNewConfig()
	assert.True(t, conf.IsProduction())
	assert.Equal(t, TokenTransportCookie, conf.TokenTransport)
	assert.Equal(t, []string{"https://greennest.app", "https://admin.greennest.app"}, conf.CORSConfig.AllowedOrigins)
	assert.Equal(t, 0.1, conf.OrderConfig.TaxRate)
	assert.Equal(t, 30*time.Minute, conf.OrderConfig.PaymentTimeout)
	assert.Equal(t, "https://cdn.greennest.app", conf.StorageConfig.PublicBaseURL)
	assert.Equal(t, "http://es:9200", conf.SearchConfig.ElasticsearchHost)
}

func TestCreateNewConfig_UnknownTransport(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_TRANSPORT", "query")
	t.Setenv("ORDER_PAYMENT_TIMEOUT", "soon")

	conf := CreateNewConfig()
	assert.Equal(t, TokenTransportHeader, conf.TokenTransport)
	assert.Equal(t, 15*time.Minute, conf.OrderConfig.PaymentTimeout)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"a", "b"}, splitList("a,,b"))
}
