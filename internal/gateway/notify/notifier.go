package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/domain"
)

// Notification is the message published for one found match. Downstream
// consumers (push/email dispatchers) read it off the notifications topic.
type Notification struct {
	Type        string    `json:"type"`
	JobID       string    `json:"job_id"`
	ForwarderID string    `json:"forwarder_id"`
	HaulierID   string    `json:"haulier_id"`
	HaulierName string    `json:"haulier_name"`
	Score       float64   `json:"score"`
	Reasons     []string  `json:"reasons"`
	CreatedAt   time.Time `json:"created_at"`
}

// KafkaNotifier publishes match notifications to a Kafka topic.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
}

// NewKafkaNotifier creates a notifier. Returns nil (disabled) when Kafka
// is not configured.
func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &KafkaNotifier{
		producer: producer,
		topic:    topic,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// MatchFound publishes a match.found notification keyed by job id.
func (n *KafkaNotifier) MatchFound(ctx context.Context, job domain.JobRequirements, m domain.MatchResult) error {
	if n == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	note := Notification{
		Type:        "match.found",
		JobID:       job.JobID,
		ForwarderID: job.ForwarderID,
		Score:       m.Score.TotalScore,
		Reasons:     m.Reasons,
		CreatedAt:   n.now(),
	}
	if m.Haulier != nil {
		note.HaulierID = m.Haulier.ID
		note.HaulierName = m.Haulier.Name
	}

	payload, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(job.JobID),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := n.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish notification for job %q: %w", job.JobID, err)
	}
	return nil
}

// Close shuts the underlying producer down.
func (n *KafkaNotifier) Close() error {
	if n == nil {
		return nil
	}
	return n.producer.Close()
}
