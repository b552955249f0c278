package constant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"estateflow-be/internal/entity"
)

func TestDefaultPromptNameForRole(t *testing.T) {
	tests := []struct {
		role entity.UserRole
		want string
	}{
		{entity.UserRoleRenterBuyer, SystemPromptRenterBuyer},
		{entity.UserRolePrivateSeller, SystemPromptSellerAgency},
		{entity.UserRoleAgency, SystemPromptSellerAgency},
		{entity.UserRoleModerator, SystemPromptRenterBuyer},
		{entity.UserRoleAdmin, SystemPromptRenterBuyer},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultPromptNameForRole(tt.role))
		})
	}
}

func TestPromptContentsCarryLinkMandate(t *testing.T) {
	for name, content := range map[string]string{
		SystemPromptRenterBuyer:  RenterBuyerPromptContent,
		SystemPromptSellerAgency: SellerAgencyPromptContent,
	} {
		assert.True(t, strings.Contains(content, "listing-page?propertyId="),
			"prompt %s must mandate the listing link format", name)
		assert.True(t, strings.Contains(content, "NEVER include property IDs"),
			"prompt %s must forbid raw ids", name)
	}
}
