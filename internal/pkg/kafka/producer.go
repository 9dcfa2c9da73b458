package kafka

import (
	"Corkboard/internal/api/config"
	"Corkboard/internal/pkg/consts"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

const (
	EventTypeView    = "post_view"
	EventTypeLike    = "post_like"
	EventTypeComment = "post_comment"
)

// postEvent 领域事件载荷，时间戳在发布时生成
type postEvent struct {
	EventType string `json:"event_type"`
	UserID    uint64 `json:"user_id"`
	PostID    uint64 `json:"post_id"`
	CommentID uint64 `json:"comment_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// EventProducer 同步生产者的薄封装
// 初始化失败时降级为只报失败的空实现，不影响服务启动
type EventProducer struct {
	producer sarama.SyncProducer
}

func NewEventProducer(cfg config.KafkaConfig) *EventProducer {
	p, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		log.Error("Failed to initialize Kafka producer, events will be dropped", "err", err)
		return &EventProducer{}
	}

	log.Info("Kafka producer initialized", "brokers", cfg.Brokers)
	return &EventProducer{producer: p}
}

// SendViewEvent 首次浏览事件
func (s *EventProducer) SendViewEvent(userID, postID uint64) bool {
	return s.publish(consts.TopicPostViews, &postEvent{
		EventType: EventTypeView,
		UserID:    userID,
		PostID:    postID,
	})
}

// SendLikeEvent 点赞事件，取消点赞不发
func (s *EventProducer) SendLikeEvent(userID, postID uint64) bool {
	return s.publish(consts.TopicPostLikes, &postEvent{
		EventType: EventTypeLike,
		UserID:    userID,
		PostID:    postID,
	})
}

// SendCommentEvent 评论事件，携带新评论 id
func (s *EventProducer) SendCommentEvent(userID, postID, commentID uint64) bool {
	return s.publish(consts.TopicPostComments, &postEvent{
		EventType: EventTypeComment,
		UserID:    userID,
		PostID:    postID,
		CommentID: commentID,
	})
}

func (s *EventProducer) publish(topic string, event *postEvent) bool {
	if s.producer == nil {
		log.Error("Cannot send event: Kafka producer not initialized", "topic", topic)
		return false
	}

	event.Timestamp = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error("marshal event error", "topic", topic, "err", err)
		return false
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(event.PostID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		log.Error("Error sending event", "topic", topic, "err", err)
		return false
	}

	log.Info("Event sent", "topic", topic, "partition", partition, "offset", offset)
	return true
}

func (s *EventProducer) Close() {
	if s.producer == nil {
		return
	}
	if err := s.producer.Close(); err != nil {
		log.Error("Failed to close Kafka producer", "err", err)
	}
}
