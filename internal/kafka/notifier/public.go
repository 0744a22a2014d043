package notifier

import (
	"context"
	"vision-coach/internal/repository/model"
)

//go:generate mockgen -source=public.go -destination=mock_notifier.go -package=notifier

type ChangeType string

const (
	ChangeTypeCreate ChangeType = "CREATE"
	ChangeTypeDelete ChangeType = "DELETE"
)

type Notifier interface {
	TeamUpdate(ctx context.Context, team *model.Team, changeType ChangeType) error
	PlayerUpdate(ctx context.Context, player *model.Player, changeType ChangeType) error
}
