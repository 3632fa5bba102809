package rabbitmq

import (
	"context"
	"fmt"

	"github.com/NARUBROWN/tether/internal/event/consumer"
	"github.com/NARUBROWN/tether/pkg/boot"
	"github.com/rabbitmq/amqp091-go"
)

type Reader struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	topic      string
	deliveries <-chan amqp091.Delivery
}

func NewRabbitMqReader(topic string, opts boot.RabbitMqOptions) (*Reader, error) {
	if opts.Read == nil {
		return nil, fmt.Errorf("RabbitMQ Read 옵션이 설정되지 않았습니다")
	}
	if topic == "" {
		return nil, fmt.Errorf("RabbitMQ topic이 비어 있습니다")
	}

	conn, err := amqp091.Dial(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("RabbitMQ 접속 실패: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("RabbitMQ 채널 생성 실패: %w", err)
	}

	queueName := opts.Read.QueuePrefix + topic
	queue, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("RabbitMQ 큐 선언 실패: %w", err)
	}

	if opts.Read.Exchange != "" {
		if err := ch.QueueBind(queue.Name, topic, opts.Read.Exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("RabbitMQ 큐 바인딩 실패: %w", err)
		}
	}

	deliveries, err := ch.Consume(
		queue.Name,
		"",    // consumer tag 자동 생성
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("RabbitMQ 소비 시작 실패: %w", err)
	}

	return &Reader{
		conn:       conn,
		channel:    ch,
		topic:      topic,
		deliveries: deliveries,
	}, nil
}

func (r *Reader) Read(ctx context.Context) (consumer.Message, error) {
	select {
	case <-ctx.Done():
		return consumer.Message{}, ctx.Err()
	case delivery, ok := <-r.deliveries:
		if !ok {
			return consumer.Message{}, fmt.Errorf("RabbitMQ 소비 채널이 닫혔습니다 (%s)", r.topic)
		}

		return consumer.Message{
			EventName: r.topic,
			Payload:   delivery.Body,
			AckFunc: func() error {
				return delivery.Ack(false)
			},
			NackFunc: func() error {
				// 재전달 요청
				return delivery.Nack(false, true)
			},
		}, nil
	}
}

func (r *Reader) Close() error {
	if r.channel != nil {
		_ = r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
