package notifier

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"sync"
	"vision-coach/internal/config"
	"vision-coach/internal/repository/model"
)

const (
	teamUpdateType   = "TeamUpdate"
	playerUpdateType = "PlayerUpdate"
)

// messageWriter is the part of *kafka.Writer we use.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      messageWriter
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	k := &kafkaNotifier{logger: logger}

	// Async writes return before delivery, broker errors only reach Completion.
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       cfg.Topic,
		Async:       true,
		Balancer:    &kafka.Hash{},
		Completion:  k.onCompletion,
		ErrorLogger: zap.NewStdLog(logger.Desugar()),
	}
	k.w = w

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return k
}

func (k *kafkaNotifier) onCompletion(messages []kafka.Message, err error) {
	if err == nil {
		return
	}

	for _, msg := range messages {
		k.logger.Errorw("failed to deliver kafka message", "topic", msg.Topic, "clubId", string(msg.Key),
			"messageType", headerValue(msg, "X-Message-Type"), "eventId", headerValue(msg, "X-Event-Id"), "error", err)
	}
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (k *kafkaNotifier) TeamUpdate(ctx context.Context, team *model.Team, changeType ChangeType) error {
	msg := &structpb.Struct{Fields: map[string]*structpb.Value{
		"type":       structpb.NewStringValue(teamUpdateType),
		"changeType": structpb.NewStringValue(string(changeType)),
		"clubId":     structpb.NewStringValue(team.ClubId),
		"teamId":     structpb.NewStringValue(team.Id),
		"team":       structpb.NewStructValue(team.ToProto()),
	}}

	if err := k.publishMessage(ctx, team.ClubId, teamUpdateType, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (k *kafkaNotifier) PlayerUpdate(ctx context.Context, player *model.Player, changeType ChangeType) error {
	msg := &structpb.Struct{Fields: map[string]*structpb.Value{
		"type":       structpb.NewStringValue(playerUpdateType),
		"changeType": structpb.NewStringValue(string(changeType)),
		"clubId":     structpb.NewStringValue(player.ClubId),
		"teamId":     structpb.NewStringValue(player.TeamId),
		"playerId":   structpb.NewStringValue(player.Id),
		"player":     structpb.NewStructValue(player.ToProto()),
	}}

	if err := k.publishMessage(ctx, player.ClubId, playerUpdateType, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// publishMessage keys messages by club so one club's changes stay ordered on a partition.
func (k *kafkaNotifier) publishMessage(ctx context.Context, clubId string, messageType string, message proto.Message) error {
	bytes, err := proto.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := k.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(clubId),
		Value: bytes,
		Headers: []kafka.Header{
			{Key: "X-Proto-Type", Value: []byte(message.ProtoReflect().Descriptor().FullName())},
			{Key: "X-Message-Type", Value: []byte(messageType)},
			{Key: "X-Event-Id", Value: []byte(uuid.NewString())},
		},
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
