package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenant_HasMailCredentials(t *testing.T) {
	assert.False(t, (&Tenant{}).HasMailCredentials())
	assert.False(t, (&Tenant{CompanyEmail: "sales@acme.example"}).HasMailCredentials())
	assert.False(t, (&Tenant{CompanyEmailSecret: "sealed"}).HasMailCredentials())
	assert.True(t, (&Tenant{CompanyEmail: "sales@acme.example", CompanyEmailSecret: "sealed"}).HasMailCredentials())
}
