package kafka

import (
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/goccy/go-json"
)

func newMockProducer(t *testing.T) (*EventProducer, *mocks.SyncProducer) {
	t.Helper()
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	mock := mocks.NewSyncProducer(t, cfg)
	return &EventProducer{producer: mock}, mock
}

func TestSendViewEvent(t *testing.T) {
	producer, mock := newMockProducer(t)

	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(payload []byte) error {
		var event postEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeView {
			return errors.New("wrong event_type " + event.EventType)
		}
		if event.UserID != 3 || event.PostID != 9 {
			return errors.New("wrong ids")
		}
		if _, err := time.Parse(time.RFC3339, event.Timestamp); err != nil {
			return err
		}
		return nil
	})

	if !producer.SendViewEvent(3, 9) {
		t.Fatalf("expected view event to be sent")
	}
}

func TestSendCommentEventCarriesCommentID(t *testing.T) {
	producer, mock := newMockProducer(t)

	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(payload []byte) error {
		var event postEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeComment || event.CommentID != 42 {
			return errors.New("comment id missing from payload")
		}
		return nil
	})

	if !producer.SendCommentEvent(3, 9, 42) {
		t.Fatalf("expected comment event to be sent")
	}
}

func TestSendFailureReturnsFalse(t *testing.T) {
	producer, mock := newMockProducer(t)
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	if producer.SendLikeEvent(1, 2) {
		t.Fatalf("broker failure must report false")
	}
}

// 初始化失败降级后的空实现只报失败，不 panic
func TestUninitializedProducer(t *testing.T) {
	producer := &EventProducer{}

	if producer.SendViewEvent(1, 2) || producer.SendLikeEvent(1, 2) || producer.SendCommentEvent(1, 2, 3) {
		t.Fatalf("degraded producer must report false")
	}
	producer.Close()
}
