/*
Package tether는 컨트롤러 파이프라인 위에 선언적 사전 조회(entity binding)를
얹은 경량 웹 프레임워크입니다.

	app := tether.New()
	app.Constructor(NewUserController)
	app.Model("user", userStore)
	app.Route("GET", "/users/:id", (*UserController).GetUser)
	app.Bind((*UserController)(nil), "user", binding.Options{Only: []string{"GetUser"}})
	app.Run(boot.Options{Address: ":8080", HTTP: &boot.HTTPOptions{}})

Bind 선언은 요청마다 "id" 파라미터로 모델을 조회해 ExecutionContext에
바인딩하고, 조회 결과가 없으면 Action을 호출하지 않고 404로 응답합니다.
*/
package tether

import (
	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/internal/bootstrap"
	"github.com/NARUBROWN/tether/internal/router"
	"github.com/NARUBROWN/tether/pkg/binding"
	"github.com/NARUBROWN/tether/pkg/boot"
	"github.com/NARUBROWN/tether/pkg/model"
)

type App interface {
	// 생성자 선언
	Constructor(constructors ...any)
	// 모델 Source 등록
	Model(name string, source model.Source)
	// 라우트 선언
	Route(method string, path string, handler any)
	// 바인딩 선언 (controller는 (*UserController)(nil) 형태)
	Bind(controller any, entity string, opts ...binding.Options)
	// 이벤트 Consumer 선언
	Consumer(broker boot.Broker, topic string, handler any)
	// WebSocket 핸들러 선언
	Socket(path string, handler any)
	// Custom Transport 등록
	CustomTransport(transports ...core.CustomTransport)
	// 내부 Transport 관찰 훅 (테스트용)
	Transport(probe func(any))
	// 실행
	Run(opts boot.Options) error
}

type app struct {
	constructors []any
	routes       []router.RouteSpec
	models       []bootstrap.ModelSpec
	bindings     []bootstrap.BindingSpec
	consumers    []bootstrap.ConsumerSpec
	sockets      []bootstrap.SocketSpec
	transports   []core.CustomTransport
	probe        func(any)
}

func New() App {
	return &app{}
}

func (a *app) Constructor(constructors ...any) {
	a.constructors = append(a.constructors, constructors...)
}

func (a *app) Model(name string, source model.Source) {
	a.models = append(a.models, bootstrap.ModelSpec{
		Name:   name,
		Source: source,
	})
}

func (a *app) Route(method string, path string, handler any) {
	a.routes = append(a.routes, router.RouteSpec{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
}

func (a *app) Bind(controller any, entity string, opts ...binding.Options) {
	var options binding.Options
	if len(opts) > 0 {
		options = opts[0]
	}
	a.bindings = append(a.bindings, bootstrap.BindingSpec{
		Controller: controller,
		Entity:     entity,
		Options:    options,
	})
}

func (a *app) Consumer(broker boot.Broker, topic string, handler any) {
	a.consumers = append(a.consumers, bootstrap.ConsumerSpec{
		Broker:  broker,
		Topic:   topic,
		Handler: handler,
	})
}

func (a *app) Socket(path string, handler any) {
	a.sockets = append(a.sockets, bootstrap.SocketSpec{
		Path:    path,
		Handler: handler,
	})
}

func (a *app) CustomTransport(transports ...core.CustomTransport) {
	a.transports = append(a.transports, transports...)
}

func (a *app) Transport(probe func(any)) {
	a.probe = probe
}

func (a *app) Run(opts boot.Options) error {
	internalConfig := bootstrap.Config{
		Address:                opts.Address,
		Constructors:           a.constructors,
		Routes:                 a.routes,
		Models:                 a.models,
		Bindings:               a.bindings,
		Consumers:              a.consumers,
		Sockets:                a.sockets,
		Transports:             a.transports,
		EnableGracefulShutdown: opts.EnableGracefulShutdown,
		ShutdownTimeout:        opts.ShutdownTimeout,
		HTTP:                   opts.HTTP,
		Kafka:                  opts.Kafka,
		RabbitMq:               opts.RabbitMq,
		TransportProbe:         a.probe,
	}

	return bootstrap.Run(internalConfig)
}
