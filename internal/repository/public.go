package repository

import (
	"context"
	"vision-coach/internal/repository/model"
)

//go:generate mockgen -source=public.go -destination=mock_repository.go -package=repository

type Repository interface {
	GetTeams(ctx context.Context, clubId string) ([]*model.Team, error)
	GetPlayers(ctx context.Context, clubId string, teamId string) ([]*model.Player, error)

	DoesTeamExist(ctx context.Context, clubId string, teamId string) (bool, error)
	CreateTeam(ctx context.Context, team *model.Team) error

	CreatePlayer(ctx context.Context, player *model.Player) error
	DeletePlayer(ctx context.Context, clubId string, teamId string, playerId string) error
}
