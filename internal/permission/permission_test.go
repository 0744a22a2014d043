package permission

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name string
		role Role
		perm Permission
		want bool
	}{
		{"admin manages club", RoleAdministrator, ManageClub, true},
		{"admin views roster", RoleAdministrator, ViewRoster, true},
		{"admin suffixed token", RoleAdministrator, "manage_club_extra", false},
		{"admin prefix token", RoleAdministrator, "manage", false},
		{"admin empty token", RoleAdministrator, "", false},
		{"coach manages roster", RoleCoach, ManageRoster, true},
		{"coach records evaluations", RoleCoach, RecordEvaluations, true},
		{"coach cannot manage club", RoleCoach, ManageClub, false},
		{"coach cannot manage teams", RoleCoach, ManageTeams, false},
		{"player views statistics", RolePlayer, ViewStatistics, true},
		{"player cannot manage roster", RolePlayer, ManageRoster, false},
		{"case sensitive role", Role("Administrator"), ManageClub, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.perm))
		})
	}
}

func TestHasPermission_UnknownRoleDeniesEverything(t *testing.T) {
	unknown := []Role{"", "owner", "referee", "administrator "}
	perms := append([]Permission{"", "anything"}, allPermissions...)

	for _, role := range unknown {
		for _, perm := range perms {
			assert.False(t, HasPermission(role, perm), "role %q perm %q", role, perm)
		}
	}
}

func TestHasPermission_AdministratorListedOnly(t *testing.T) {
	granted := PermissionsOf(RoleAdministrator)
	require.Len(t, granted, len(allPermissions))
	for _, perm := range granted {
		assert.True(t, HasPermission(RoleAdministrator, perm))
		assert.False(t, HasPermission(RoleAdministrator, perm+"_extra"))
	}
}

func TestHasPermission_Deterministic(t *testing.T) {
	first := make(map[Role]map[Permission]bool)
	for _, role := range Roles() {
		first[role] = make(map[Permission]bool)
		for _, perm := range allPermissions {
			first[role][perm] = HasPermission(role, perm)
		}
	}

	// Interleave in reverse order and compare.
	roles := Roles()
	for i := len(roles) - 1; i >= 0; i-- {
		for j := len(allPermissions) - 1; j >= 0; j-- {
			role, perm := roles[i], allPermissions[j]
			assert.Equal(t, first[role][perm], HasPermission(role, perm))
			HasPermission(Role("owner"), perm)
		}
	}
}

func TestHasScopedPermission_IgnoresScope(t *testing.T) {
	scopes := []Scope{{}, {ClubId: "clubA"}, {ClubId: "clubA", TeamId: "teamB"}}
	for _, scope := range scopes {
		assert.True(t, HasScopedPermission(RoleCoach, ManageRoster, scope))
		assert.False(t, HasScopedPermission(RolePlayer, ManageRoster, scope))
	}
}

func TestEveryRoleHasEntry(t *testing.T) {
	for _, role := range Roles() {
		_, ok := table[role]
		assert.True(t, ok, "role %s missing from table", role)
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("coach")
	require.NoError(t, err)
	assert.Equal(t, RoleCoach, role)

	_, err = ParseRole("owner")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestParsePermission(t *testing.T) {
	perm, err := ParsePermission("manage_club")
	require.NoError(t, err)
	assert.Equal(t, ManageClub, perm)

	_, err = ParsePermission("manage_club_extra")
	assert.ErrorIs(t, err, ErrUnknownPermission)

	_, err = ParsePermission("")
	assert.ErrorIs(t, err, ErrUnknownPermission)
}

func TestPermissionsOf(t *testing.T) {
	assert.Equal(t, []Permission{ViewRoster, ViewStatistics}, PermissionsOf(RolePlayer))
	assert.Empty(t, PermissionsOf(Role("owner")))

	// Mutating the result must not leak into the table.
	perms := PermissionsOf(RolePlayer)
	perms[0] = ManageClub
	assert.False(t, HasPermission(RolePlayer, ManageClub))
}
