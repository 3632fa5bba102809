package kafka

import (
	"context"
	"errors"

	"github.com/NARUBROWN/tether/internal/event/consumer"
	"github.com/NARUBROWN/tether/pkg/boot"
	"github.com/segmentio/kafka-go"
)

type Reader struct {
	reader *kafka.Reader
}

func NewKafkaReader(topic string, opts boot.KafkaOptions) (*Reader, error) {
	if len(opts.Brokers) == 0 {
		return nil, errors.New("Kafka Brokers가 설정되지 않았습니다")
	}
	if opts.Read == nil {
		return nil, errors.New("Kafka Read 옵션이 설정되지 않았습니다")
	}
	if opts.Read.GroupID == "" {
		return nil, errors.New("Kafka Read GroupID가 비어 있습니다")
	}
	if topic == "" {
		return nil, errors.New("Kafka topic이 비어 있습니다")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: opts.Brokers,
		Topic:   topic,
		GroupID: opts.Read.GroupID,
	})

	return &Reader{
		reader: reader,
	}, nil
}

func (r *Reader) Read(ctx context.Context) (consumer.Message, error) {
	m, err := r.reader.FetchMessage(ctx)
	if err != nil {
		return consumer.Message{}, err
	}

	// 커밋은 핸들러가 성공한 뒤(Ack)로 미룬다.
	return consumer.Message{
		EventName: m.Topic,
		Payload:   m.Value,
		AckFunc: func() error {
			return r.reader.CommitMessages(ctx, m)
		},
		// Kafka는 명시적 거부가 없으므로 커밋하지 않는 것으로 충분하다.
		NackFunc: func() error { return nil },
	}, nil
}

func (r *Reader) Close() error {
	return r.reader.Close()
}
