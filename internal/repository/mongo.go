package repository

import (
	"context"
	"errors"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"sync"
	"time"
	"vision-coach/internal/config"
	"vision-coach/internal/repository/model"
)

const (
	teamCollectionName   = "teams"
	playerCollectionName = "players"

	operationTimeout = 5 * time.Second
)

var (
	ErrPlayerNotFound = errors.New("player not found")
)

type mongoRepository struct {
	database *mongo.Database

	teamCollection   *mongo.Collection
	playerCollection *mongo.Collection
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	return newMongoRepository(ctx, logger, wg, client, cfg.Database)
}

// newMongoRepository takes ownership of client: it is disconnected when ctx
// is done, or straight away if setup fails.
func newMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, client *mongo.Client, databaseName string) (Repository, error) {
	database := client.Database(databaseName)
	repo := &mongoRepository{
		database:         database,
		teamCollection:   database.Collection(teamCollectionName),
		playerCollection: database.Collection(playerCollectionName),
	}

	if err := repo.createIndexes(ctx); err != nil {
		disconnect(logger, client)
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		disconnect(logger, client)
	}()

	return repo, nil
}

// disconnect runs on a fresh context, the caller's may already be cancelled.
func disconnect(logger *zap.SugaredLogger, client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Errorw("failed to disconnect from mongo", "error", err)
	}
}

func (m *mongoRepository) createIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	_, err := m.teamCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "clubId", Value: 1}, {Key: "name", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = m.playerCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "clubId", Value: 1}, {Key: "teamId", Value: 1}, {Key: "number", Value: 1}},
	})
	return err
}

func (m *mongoRepository) GetTeams(ctx context.Context, clubId string) ([]*model.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := m.teamCollection.Find(ctx, bson.M{"clubId": clubId}, opts)
	if err != nil {
		return nil, err
	}

	var mongoResult []model.Team
	if err := cursor.All(ctx, &mongoResult); err != nil {
		return nil, err
	}

	teams := make([]*model.Team, len(mongoResult))
	for i := range mongoResult {
		teams[i] = &mongoResult[i]
	}

	return teams, nil
}

func (m *mongoRepository) GetPlayers(ctx context.Context, clubId string, teamId string) ([]*model.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := m.playerCollection.Find(ctx, bson.M{"clubId": clubId, "teamId": teamId}, opts)
	if err != nil {
		return nil, err
	}

	var mongoResult []model.Player
	if err := cursor.All(ctx, &mongoResult); err != nil {
		return nil, err
	}

	players := make([]*model.Player, len(mongoResult))
	for i := range mongoResult {
		players[i] = &mongoResult[i]
	}

	// Mongo sorts missing numbers first, we want them last.
	model.SortPlayers(players)

	return players, nil
}

func (m *mongoRepository) DoesTeamExist(ctx context.Context, clubId string, teamId string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	count, err := m.teamCollection.CountDocuments(ctx, bson.M{"_id": teamId, "clubId": clubId}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *mongoRepository) CreateTeam(ctx context.Context, team *model.Team) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	_, err := m.teamCollection.InsertOne(ctx, team)
	return err
}

func (m *mongoRepository) CreatePlayer(ctx context.Context, player *model.Player) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	_, err := m.playerCollection.InsertOne(ctx, player)
	return err
}

func (m *mongoRepository) DeletePlayer(ctx context.Context, clubId string, teamId string, playerId string) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	result, err := m.playerCollection.DeleteOne(ctx, bson.M{"_id": playerId, "clubId": clubId, "teamId": teamId})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrPlayerNotFound
	}

	return nil
}
