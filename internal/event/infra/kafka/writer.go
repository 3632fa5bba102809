package kafka

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/NARUBROWN/tether/pkg/boot"
	"github.com/NARUBROWN/tether/pkg/event/publish"
	"github.com/segmentio/kafka-go"
)

// Writer는 도메인 이벤트를 "<TopicPrefix><이벤트 이름>" 토픽으로 발행합니다.
type Writer struct {
	writer *kafka.Writer
	prefix string
}

func NewKafkaWriter(opts boot.KafkaOptions) (*Writer, error) {
	if len(opts.Brokers) == 0 {
		return nil, errors.New("Kafka Brokers가 설정되지 않았습니다")
	}
	if opts.Write == nil {
		return nil, errors.New("Kafka Write 옵션이 설정되지 않았습니다")
	}

	// Topic은 메시지 단위로 지정한다.
	writer := &kafka.Writer{
		Addr:     kafka.TCP(opts.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}

	return &Writer{
		writer: writer,
		prefix: opts.Write.TopicPrefix,
	}, nil
}

func (w *Writer) Publish(ctx context.Context, event publish.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return w.writer.WriteMessages(ctx, kafka.Message{
		Topic: w.prefix + event.Name(),
		Value: payload,
		Time:  event.OccurredAt(),
	})
}

func (w *Writer) Close() error {
	return w.writer.Close()
}
