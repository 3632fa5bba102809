package boot

import "time"

type Options struct {
	Address                string
	EnableGracefulShutdown bool
	ShutdownTimeout        time.Duration

	/*
		HTTP Transport 설정
		nil이면 HTTP 서버는 기동되지 않습니다.
	*/
	HTTP *HTTPOptions

	// 이벤트 브로커 설정 (nil이면 해당 브로커 비활성화)
	Kafka    *KafkaOptions
	RabbitMq *RabbitMqOptions
}

type HTTPOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Broker는 Consumer 등록 시 사용할 브로커 종류입니다.
type Broker string

const (
	BrokerKafka    Broker = "kafka"
	BrokerRabbitMQ Broker = "rabbitmq"
)
