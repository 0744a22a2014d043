// Package permission resolves what each club role is allowed to do.
package permission

import (
	"errors"
	"fmt"
	"sort"
)

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleCoach         Role = "coach"
	RolePlayer        Role = "player"
)

type Permission string

const (
	ManageClub        Permission = "manage_club"
	ManageTeams       Permission = "manage_teams"
	ManageRoster      Permission = "manage_roster"
	ManageEvents      Permission = "manage_events"
	TrackMatches      Permission = "track_matches"
	RecordEvaluations Permission = "record_evaluations"
	ViewStatistics    Permission = "view_statistics"
	ViewRoster        Permission = "view_roster"
)

var (
	ErrUnknownRole       = errors.New("unknown role")
	ErrUnknownPermission = errors.New("unknown permission")
)

var allPermissions = []Permission{
	ManageClub, ManageTeams, ManageRoster, ManageEvents,
	TrackMatches, RecordEvaluations, ViewStatistics, ViewRoster,
}

// table is built once at init and never written afterwards.
var table = map[Role]map[Permission]struct{}{
	RoleAdministrator: setOf(allPermissions...),
	RoleCoach:         setOf(ManageRoster, ManageEvents, TrackMatches, RecordEvaluations, ViewStatistics, ViewRoster),
	RolePlayer:        setOf(ViewStatistics, ViewRoster),
}

// Scope narrows a permission check to a club or team.
//
// It is accepted but not consulted yet: the table cannot express rules such as
// "a coach manages players only on their own team".
type Scope struct {
	ClubId string
	TeamId string
}

// HasPermission reports whether role is granted perm. Roles missing from the
// table are granted nothing.
func HasPermission(role Role, perm Permission) bool {
	perms, ok := table[role]
	if !ok {
		return false
	}
	_, ok = perms[perm]
	return ok
}

// HasScopedPermission is HasPermission with a resource scope. The scope is
// currently ignored.
func HasScopedPermission(role Role, perm Permission, _ Scope) bool {
	return HasPermission(role, perm)
}

func ParseRole(s string) (Role, error) {
	role := Role(s)
	if _, ok := table[role]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return role, nil
}

func ParsePermission(s string) (Permission, error) {
	for _, p := range allPermissions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPermission, s)
}

// Roles returns every known role.
func Roles() []Role {
	return []Role{RoleAdministrator, RoleCoach, RolePlayer}
}

// PermissionsOf returns a sorted copy of the permissions granted to role.
func PermissionsOf(role Role) []Permission {
	perms := make([]Permission, 0, len(table[role]))
	for p := range table[role] {
		perms = append(perms, p)
	}
	sort.Slice(perms, func(i, j int) bool {
		return perms[i] < perms[j]
	})
	return perms
}

func setOf(perms ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}
