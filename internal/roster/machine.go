// Package roster loads a club's teams and the selected team's players as two
// dependent stages, each exposing idle, loading, empty, loaded or failed state.
package roster

import (
	"vision-coach/internal/repository/model"
)

const (
	TeamsFailedMessage   = "teams could not be loaded"
	PlayersFailedMessage = "players for this team could not be loaded"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusEmpty
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusLoading:
		return "LOADING"
	case StatusEmpty:
		return "EMPTY"
	case StatusLoaded:
		return "LOADED"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// StageState is the outcome of one stage. Items is only set when Status is
// StatusLoaded and Message only when it is StatusFailed.
type StageState[T any] struct {
	Status  Status
	Items   []T
	Message string
}

func idle[T any]() StageState[T] {
	return StageState[T]{Status: StatusIdle}
}

func loading[T any]() StageState[T] {
	return StageState[T]{Status: StatusLoading}
}

func failed[T any](message string) StageState[T] {
	return StageState[T]{Status: StatusFailed, Message: message}
}

func loaded[T any](items []T) StageState[T] {
	if len(items) == 0 {
		return StageState[T]{Status: StatusEmpty}
	}
	return StageState[T]{Status: StatusLoaded, Items: items}
}

// Snapshot is an immutable view of the loader. Slices in it are never
// written after the snapshot is published.
type Snapshot struct {
	ClubId         string
	SelectedTeamId string

	Teams   StageState[*model.Team]
	Players StageState[*model.Player]
}

// Settled reports whether no fetch is outstanding.
func (s Snapshot) Settled() bool {
	return s.Teams.Status != StatusLoading && s.Players.Status != StatusLoading
}

type Stage int

const (
	StageTeams Stage = iota
	StagePlayers
)

func (s Stage) String() string {
	if s == StageTeams {
		return "teams"
	}
	return "players"
}

// Request asks the driver to run a fetch. Seq tags it so a result can be
// matched against the stage's current request when it comes back.
type Request struct {
	Stage  Stage
	Seq    uint64
	ClubId string
	TeamId string
}

// Machine holds the two-stage state. It does no I/O and is not safe for
// concurrent use; Loader owns one on a single goroutine.
type Machine struct {
	snap Snapshot

	// preferredTeamId is the team to select once the pending teams fetch
	// resolves. It is not published until then.
	preferredTeamId string

	teamsSeq   uint64
	playersSeq uint64
}

func NewMachine() *Machine {
	return &Machine{}
}

func (m *Machine) Snapshot() Snapshot {
	return m.snap
}

// SetTenant switches the club. Any in-flight fetch for either stage becomes stale.
func (m *Machine) SetTenant(clubId string) []Request {
	if clubId == m.snap.ClubId {
		return nil
	}

	m.snap.ClubId = clubId
	m.teamsSeq++
	m.preferredTeamId = ""
	m.clearSelection()

	if clubId == "" {
		m.snap.Teams = idle[*model.Team]()
		return nil
	}

	m.snap.Teams = loading[*model.Team]()
	return []Request{m.teamsRequest()}
}

// SelectTeam changes the active team. An empty id clears the players stage.
// While teams are loading the id is only remembered as the preferred
// selection; it becomes SelectedTeamId once the teams arrive and contain it.
func (m *Machine) SelectTeam(teamId string) []Request {
	if m.snap.ClubId == "" {
		return nil
	}

	if m.snap.Teams.Status == StatusLoading {
		m.preferredTeamId = teamId
		return nil
	}

	if teamId == m.snap.SelectedTeamId {
		return nil
	}
	return m.selectTeam(teamId)
}

// Refresh reloads the teams of the current club, then the selected team's players.
func (m *Machine) Refresh() []Request {
	if m.snap.ClubId == "" {
		return nil
	}

	// A refresh while teams are loading keeps the pending preference.
	if m.snap.Teams.Status != StatusLoading {
		m.preferredTeamId = m.snap.SelectedTeamId
	}
	m.teamsSeq++
	m.snap.Teams = loading[*model.Team]()
	return []Request{m.teamsRequest()}
}

// TeamsFetched applies a teams result. It returns false when req is stale, in
// which case nothing changes.
func (m *Machine) TeamsFetched(req Request, teams []*model.Team, err error) ([]Request, bool) {
	if req.Stage != StageTeams || req.Seq != m.teamsSeq || req.ClubId != m.snap.ClubId {
		return nil, false
	}

	preferred := m.preferredTeamId
	m.preferredTeamId = ""

	if err != nil {
		m.snap.Teams = failed[*model.Team](TeamsFailedMessage)
		m.clearSelection()
		return nil, true
	}

	items := make([]*model.Team, len(teams))
	copy(items, teams)
	m.snap.Teams = loaded(items)

	// Keep the preferred selection when the club still has that team.
	selection := ""
	for _, team := range items {
		if team.Id == preferred {
			selection = team.Id
			break
		}
	}
	if selection == "" && len(items) > 0 {
		selection = items[0].Id
	}

	// Always restart the players stage: the team list changed under it.
	m.snap.SelectedTeamId = ""
	return m.selectTeam(selection), true
}

// PlayersFetched applies a players result. It returns false when req is
// stale, in which case nothing changes.
func (m *Machine) PlayersFetched(req Request, players []*model.Player, err error) bool {
	if req.Stage != StagePlayers || req.Seq != m.playersSeq ||
		req.ClubId != m.snap.ClubId || req.TeamId != m.snap.SelectedTeamId {
		return false
	}

	if err != nil {
		m.snap.Players = failed[*model.Player](PlayersFailedMessage)
		return true
	}

	items := make([]*model.Player, len(players))
	copy(items, players)
	model.SortPlayers(items)
	m.snap.Players = loaded(items)
	return true
}

func (m *Machine) selectTeam(teamId string) []Request {
	m.snap.SelectedTeamId = teamId
	m.playersSeq++

	if teamId == "" {
		m.snap.Players = idle[*model.Player]()
		return nil
	}

	m.snap.Players = loading[*model.Player]()
	return []Request{{Stage: StagePlayers, Seq: m.playersSeq, ClubId: m.snap.ClubId, TeamId: teamId}}
}

func (m *Machine) clearSelection() {
	m.snap.SelectedTeamId = ""
	m.playersSeq++
	m.snap.Players = idle[*model.Player]()
}

func (m *Machine) teamsRequest() Request {
	return Request{Stage: StageTeams, Seq: m.teamsSeq, ClubId: m.snap.ClubId}
}
