package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	mongoDb "go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"math"
	"strings"
	"vision-coach/internal/kafka/notifier"
	"vision-coach/internal/permission"
	"vision-coach/internal/repository"
	"vision-coach/internal/repository/model"
	"vision-coach/internal/roster"
)

// RoleMetadataKey carries the caller's role, set by the authenticating gateway.
const RoleMetadataKey = "x-vision-role"

const maxShirtNumber = 999

type rosterService struct {
	logger *zap.SugaredLogger
	repo   repository.Repository
	notif  notifier.Notifier

	newId func() string
}

func newRosterService(logger *zap.SugaredLogger, repo repository.Repository, notif notifier.Notifier) *rosterService {
	return &rosterService{
		logger: logger,
		repo:   repo,
		notif:  notif,
		newId:  uuid.NewString,
	}
}

func (s *rosterService) HasPermission(_ context.Context, req *structpb.Struct) (*wrapperspb.BoolValue, error) {
	role := permission.Role(stringField(req, "role"))
	perm := permission.Permission(stringField(req, "permission"))

	return wrapperspb.Bool(permission.HasScopedPermission(role, perm, scopeOf(req))), nil
}

func (s *rosterService) GetRoster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := s.authorize(ctx, permission.ViewRoster, scopeOf(req)); err != nil {
		return nil, err
	}

	loader := roster.NewLoader(ctx, s.logger, s.repo)
	defer loader.Close()

	loader.Open(stringField(req, "clubId"), stringField(req, "teamId"))

	snap, err := loader.AwaitSettled(ctx)
	if err != nil {
		return nil, status.FromContextError(err).Err()
	}

	return snapshotToProto(snap), nil
}

func (s *rosterService) CreateTeam(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := s.authorize(ctx, permission.ManageTeams, scopeOf(req)); err != nil {
		return nil, err
	}

	clubId, err := requiredString(req, "clubId")
	if err != nil {
		return nil, err
	}
	name, err := requiredString(req, "name")
	if err != nil {
		return nil, err
	}

	team := &model.Team{
		Id:     s.newId(),
		ClubId: clubId,
		Name:   name,
	}

	if err := s.repo.CreateTeam(ctx, team); err != nil {
		if mongoDb.IsDuplicateKeyError(err) {
			return nil, status.Error(codes.AlreadyExists, "team already exists")
		}
		s.logger.Errorw("error creating team", "clubId", clubId, "error", err)
		return nil, status.Error(codes.Internal, "failed to create team")
	}

	if err := s.notif.TeamUpdate(ctx, team, notifier.ChangeTypeCreate); err != nil {
		s.logger.Errorw("error sending team update notification", "error", err)
	}

	return team.ToProto(), nil
}

func (s *rosterService) CreatePlayer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := s.authorize(ctx, permission.ManageRoster, scopeOf(req)); err != nil {
		return nil, err
	}

	player, err := s.playerFromRequest(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.DoesTeamExist(ctx, player.ClubId, player.TeamId)
	if err != nil {
		s.logger.Errorw("error checking team", "clubId", player.ClubId, "teamId", player.TeamId, "error", err)
		return nil, status.Error(codes.Internal, "failed to create player")
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "team not found")
	}

	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		if mongoDb.IsDuplicateKeyError(err) {
			return nil, status.Error(codes.AlreadyExists, "player already exists")
		}
		s.logger.Errorw("error creating player", "clubId", player.ClubId, "teamId", player.TeamId, "error", err)
		return nil, status.Error(codes.Internal, "failed to create player")
	}

	if err := s.notif.PlayerUpdate(ctx, player, notifier.ChangeTypeCreate); err != nil {
		s.logger.Errorw("error sending player update notification", "error", err)
	}

	return player.ToProto(), nil
}

func (s *rosterService) RemovePlayer(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := s.authorize(ctx, permission.ManageRoster, scopeOf(req)); err != nil {
		return nil, err
	}

	clubId, err := requiredString(req, "clubId")
	if err != nil {
		return nil, err
	}
	teamId, err := requiredString(req, "teamId")
	if err != nil {
		return nil, err
	}
	playerId, err := requiredString(req, "playerId")
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeletePlayer(ctx, clubId, teamId, playerId); err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return nil, status.Error(codes.NotFound, "player not found")
		}
		s.logger.Errorw("error removing player", "clubId", clubId, "teamId", teamId, "error", err)
		return nil, status.Error(codes.Internal, "failed to remove player")
	}

	removed := &model.Player{Id: playerId, ClubId: clubId, TeamId: teamId}
	if err := s.notif.PlayerUpdate(ctx, removed, notifier.ChangeTypeDelete); err != nil {
		s.logger.Errorw("error sending player update notification", "error", err)
	}

	return &emptypb.Empty{}, nil
}

// authorize checks the caller's role from the incoming metadata.
func (s *rosterService) authorize(ctx context.Context, perm permission.Permission, scope permission.Scope) error {
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get(RoleMetadataKey)
	if len(values) == 0 || values[0] == "" {
		return status.Error(codes.Unauthenticated, "missing caller role")
	}

	role := permission.Role(values[0])
	if !permission.HasScopedPermission(role, perm, scope) {
		s.logger.Debugw("permission denied", "role", role, "permission", perm, "clubId", scope.ClubId)
		return status.Error(codes.PermissionDenied, fmt.Sprintf("role %q lacks %s", role, perm))
	}

	return nil
}

func (s *rosterService) playerFromRequest(req *structpb.Struct) (*model.Player, error) {
	player := &model.Player{Id: s.newId()}

	required := map[string]*string{
		"clubId":    &player.ClubId,
		"teamId":    &player.TeamId,
		"firstName": &player.FirstName,
		"lastName":  &player.LastName,
		"position":  &player.Position,
	}
	for _, name := range []string{"clubId", "teamId", "firstName", "lastName", "position"} {
		v, err := requiredString(req, name)
		if err != nil {
			return nil, err
		}
		*required[name] = v
	}

	if nickname := strings.TrimSpace(stringField(req, "nickname")); nickname != "" {
		player.Nickname = &nickname
	}

	number, err := shirtNumber(req)
	if err != nil {
		return nil, err
	}
	player.Number = number

	return player, nil
}

func shirtNumber(req *structpb.Struct) (*int32, error) {
	v, ok := req.GetFields()["number"]
	if !ok {
		return nil, nil
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) || n < 0 || n > maxShirtNumber {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("number must be a whole number between 0 and %d", maxShirtNumber))
		}
		number := int32(n)
		return &number, nil
	default:
		return nil, status.Error(codes.InvalidArgument, "number must be numeric")
	}
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func requiredString(req *structpb.Struct, name string) (string, error) {
	v := strings.TrimSpace(stringField(req, name))
	if v == "" {
		return "", status.Error(codes.InvalidArgument, fmt.Sprintf("%s is required", name))
	}
	return v, nil
}

func scopeOf(req *structpb.Struct) permission.Scope {
	return permission.Scope{
		ClubId: stringField(req, "clubId"),
		TeamId: stringField(req, "teamId"),
	}
}

func snapshotToProto(snap roster.Snapshot) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"clubId":         structpb.NewStringValue(snap.ClubId),
		"selectedTeamId": structpb.NewStringValue(snap.SelectedTeamId),
		"teams":          stageToProto(snap.Teams),
		"players":        stageToProto(snap.Players),
	}}
}

func stageToProto[T interface{ ToProto() *structpb.Struct }](stage roster.StageState[T]) *structpb.Value {
	items := make([]*structpb.Value, len(stage.Items))
	for i, item := range stage.Items {
		items[i] = structpb.NewStructValue(item.ToProto())
	}

	fields := map[string]*structpb.Value{
		"status": structpb.NewStringValue(stage.Status.String()),
		"items":  structpb.NewListValue(&structpb.ListValue{Values: items}),
	}
	if stage.Message != "" {
		fields["message"] = structpb.NewStringValue(stage.Message)
	}

	return structpb.NewStructValue(&structpb.Struct{Fields: fields})
}
