package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NARUBROWN/tether/core"
	httpEngine "github.com/NARUBROWN/tether/internal/adapter/echo"
	"github.com/NARUBROWN/tether/internal/binding"
	"github.com/NARUBROWN/tether/internal/container"
	"github.com/NARUBROWN/tether/internal/event/consumer"
	"github.com/NARUBROWN/tether/internal/event/hook"
	kafkaInfra "github.com/NARUBROWN/tether/internal/event/infra/kafka"
	rabbitInfra "github.com/NARUBROWN/tether/internal/event/infra/rabbitmq"
	"github.com/NARUBROWN/tether/internal/handler"
	"github.com/NARUBROWN/tether/internal/invoker"
	"github.com/NARUBROWN/tether/internal/pipeline"
	"github.com/NARUBROWN/tether/internal/resolver"
	tetherRouter "github.com/NARUBROWN/tether/internal/router"
	"github.com/NARUBROWN/tether/internal/ws"
	pubBinding "github.com/NARUBROWN/tether/pkg/binding"
	"github.com/NARUBROWN/tether/pkg/boot"
	"github.com/NARUBROWN/tether/pkg/model"
	"github.com/labstack/echo/v4"
)

type ModelSpec struct {
	Name   string
	Source model.Source
}

type BindingSpec struct {
	Controller any
	Entity     string
	Options    pubBinding.Options
}

type ConsumerSpec struct {
	Broker  boot.Broker
	Topic   string
	Handler any
}

type SocketSpec struct {
	Path    string
	Handler any
}

type Config struct {
	Address      string
	Constructors []any
	Routes       []tetherRouter.RouteSpec
	Models       []ModelSpec
	Bindings     []BindingSpec
	Consumers    []ConsumerSpec
	Sockets      []SocketSpec
	Transports   []core.CustomTransport

	EnableGracefulShutdown bool
	ShutdownTimeout        time.Duration

	HTTP     *boot.HTTPOptions
	Kafka    *boot.KafkaOptions
	RabbitMq *boot.RabbitMqOptions

	// 테스트 등에서 내부 Transport를 관찰하기 위한 훅
	TransportProbe func(any)
}

/*
Run은 선언된 구성 전체를 검증하고 애플리케이션을 기동합니다.
잘못된 선언(모델 미등록, 중복 라우트, 잘못된 바인딩 범위 등)은
요청을 하나도 받기 전에 기동 실패로 이어집니다.
*/
func Run(config Config) error {
	// 컨테이너 생성
	di := container.New()
	for _, constructor := range config.Constructors {
		if err := di.RegisterConstructor(constructor); err != nil {
			return err
		}
	}

	// 모델 Registry 구성
	models := model.NewRegistry()
	for _, spec := range config.Models {
		if err := models.Register(spec.Name, spec.Source); err != nil {
			return err
		}
	}

	// Router 생성 및 라우트 등록
	routes := tetherRouter.NewRouter()
	for _, route := range config.Routes {
		meta, err := tetherRouter.NewHandlerMeta(route.Handler)
		if err != nil {
			return err
		}
		if err := routes.Register(route.Method, route.Path, meta); err != nil {
			return err
		}
	}

	// Consumer 핸들러도 동일한 라우트 테이블을 통해 실행된다.
	consumers := consumer.NewRegistry()
	for _, spec := range config.Consumers {
		meta, err := tetherRouter.NewHandlerMeta(spec.Handler)
		if err != nil {
			return err
		}
		if err := routes.Register(consumer.MethodConsume, consumer.TopicPath(spec.Topic), meta); err != nil {
			return err
		}
		consumers.Register(consumer.Registration{
			Broker: spec.Broker,
			Topic:  spec.Topic,
			Meta:   meta,
		})
	}

	// WebSocket 핸들러 등록
	sockets := ws.NewRegistry()
	for _, spec := range config.Sockets {
		meta, err := tetherRouter.NewHandlerMeta(spec.Handler)
		if err != nil {
			return err
		}
		if err := sockets.Register(spec.Path, spec.Handler); err != nil {
			return err
		}
		if err := routes.Register(ws.MethodWS, spec.Path, meta); err != nil {
			return err
		}
	}

	// 컨트롤러 인스턴스화 (생성자 누락을 조기에 발견)
	if err := di.WarmUp(routes.ControllerTypes()); err != nil {
		return err
	}

	// 바인딩 선언 검증 및 훅 설치
	registrar := binding.NewRegistrar(models)
	for _, spec := range config.Bindings {
		if err := registrar.Add(spec.Controller, spec.Entity, spec.Options); err != nil {
			return err
		}
	}
	bindingInterceptors, err := registrar.Build(di, routes.ActionsOf)
	if err != nil {
		return err
	}
	for _, it := range bindingInterceptors {
		decl := it.Declaration()
		routes.Attach(it, decl.Controller, decl.Only, decl.Except)
	}

	pipe := pipeline.NewPipeline(routes, invoker.NewInvoker(di))

	pipe.AddArgumentResolver(
		&resolver.ContextResolver{},
		&resolver.StdContextResolver{},
		&resolver.PathIntResolver{},
		&resolver.PathStringResolver{},
		&resolver.QueryValuesResolver{},
		&resolver.HeaderResolver{},
		&resolver.ConnIDResolver{},
		&resolver.DTOResolver{},
	)

	pipe.AddReturnValueHandler(
		&handler.StringReturnHandler{},
		&handler.JSONReturnHandler{},
		&handler.ErrorReturnHandler{},
	)

	// 이벤트 발행기 구성
	var writers []hook.Writer
	if config.Kafka != nil && config.Kafka.Write != nil {
		w, err := kafkaInfra.NewKafkaWriter(*config.Kafka)
		if err != nil {
			return err
		}
		writers = append(writers, w)
	}
	if config.RabbitMq != nil && config.RabbitMq.Write != nil {
		w, err := rabbitInfra.NewRabbitMqWriter(*config.RabbitMq)
		if err != nil {
			return err
		}
		writers = append(writers, w)
	}
	if len(writers) > 0 {
		pipe.AddPostHook(hook.NewPublishHook(writers...))
	}
	closeWriters := func() {
		for _, w := range writers {
			if err := w.Close(); err != nil {
				log.Printf("[Bootstrap] 이벤트 발행기 종료 실패: %v", err)
			}
		}
	}

	// Echo Adapter
	e := echo.New()
	e.HideBanner = true
	if config.HTTP != nil {
		e.Server.ReadTimeout = config.HTTP.ReadTimeout
		e.Server.WriteTimeout = config.HTTP.WriteTimeout
	}

	wsRuntime := ws.NewRuntime(sockets, pipe)
	wsRuntime.Mount(e)

	adapter := httpEngine.NewAdapter(pipe)
	adapter.Mount(e)

	if config.TransportProbe != nil {
		config.TransportProbe(http.Handler(e))
	}

	// Custom Transport 기동
	for _, t := range config.Transports {
		if err := t.Init(di); err != nil {
			return err
		}
		go func(t core.CustomTransport) {
			if err := t.Start(); err != nil {
				log.Printf("[Bootstrap] Custom Transport 실행 실패: %v", err)
			}
		}(t)
	}

	// Consumer Runtime 기동
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	var runtimes []*consumer.Runtime
	if config.Kafka != nil && config.Kafka.Read != nil {
		rt := consumer.NewRuntime(boot.BrokerKafka, consumers, kafkaInfra.NewRunnerFactory(*config.Kafka), pipe)
		rt.Start(rootCtx)
		runtimes = append(runtimes, rt)
	}
	if config.RabbitMq != nil && config.RabbitMq.Read != nil {
		rt := consumer.NewRuntime(boot.BrokerRabbitMQ, consumers, rabbitInfra.NewRunnerFactory(*config.RabbitMq), pipe)
		rt.Start(rootCtx)
		runtimes = append(runtimes, rt)
	}

	stopAll := func() {
		wsRuntime.Stop()
		for _, rt := range runtimes {
			rt.Stop()
		}
		for _, t := range config.Transports {
			stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			if err := t.Stop(stopCtx); err != nil {
				log.Printf("[Bootstrap] Custom Transport 종료 실패: %v", err)
			}
			cancel()
		}
		closeWriters()
	}

	startErr := make(chan error, 1)
	if config.HTTP != nil {
		go func() {
			startErr <- e.Start(config.Address)
		}()
	}

	if !config.EnableGracefulShutdown {
		if config.HTTP == nil {
			stopAll()
			return fmt.Errorf("bootstrap: HTTP 없이 기동하려면 EnableGracefulShutdown이 필요합니다")
		}
		err := <-startErr
		stopAll()
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-startErr:
		// Listen 자체가 실패한 경우
		stopAll()
		return err
	case <-quit:
	}

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stopAll()

	if config.HTTP != nil {
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
