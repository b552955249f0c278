package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(UserRoleRenterBuyer))
	assert.True(t, ValidRole(UserRolePrivateSeller))
	assert.True(t, ValidRole(UserRoleAgency))
	assert.True(t, ValidRole(UserRoleModerator))
	assert.True(t, ValidRole(UserRoleAdmin))
	assert.False(t, ValidRole(UserRole("landlord")))
	assert.False(t, ValidRole(UserRole("")))
}

func TestListingLimitForRole(t *testing.T) {
	tests := []struct {
		role UserRole
		want int
	}{
		{UserRolePrivateSeller, 5},
		{UserRoleAgency, 1000},
		{UserRoleRenterBuyer, -1},
		{UserRoleModerator, -1},
		{UserRoleAdmin, -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, ListingLimitForRole(tt.role))
		})
	}
}
