package main

import (
	"log"
	"time"

	"github.com/NARUBROWN/tether"
	"github.com/NARUBROWN/tether/pkg/binding"
	"github.com/NARUBROWN/tether/pkg/boot"
	"github.com/NARUBROWN/tether/store/gormstore"
	"github.com/NARUBROWN/tether/store/memstore"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func main() {
	app := tether.New()

	// 메모리 저장소 (user)
	users := memstore.New()
	users.Put("1", &User{ID: 1, Name: "tether-user"})

	// GORM 저장소 (article)
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB 초기화 실패: %v", err)
	}
	if err := db.AutoMigrate(&Article{}); err != nil {
		log.Fatalf("스키마 마이그레이션 실패: %v", err)
	}
	db.Create(&Article{ID: 1, Slug: "hello-tether", Title: "Hello Tether"})

	// 생성자 등록
	app.Constructor(
		NewUserController,
		func() *ArticleController { return NewArticleController(db) },
	)

	// 모델 등록
	app.Model("user", users)
	app.Model("article", gormstore.New[Article](db))

	// 라우트 등록
	app.Route("GET", "/users/:id", (*UserController).GetUser)
	app.Route("GET", "/users", (*UserController).ListUsers)
	app.Route("GET", "/articles/:article_id", (*ArticleController).GetArticle)

	// 바인딩 선언
	app.Bind((*UserController)(nil), "user", binding.Options{Only: []string{"GetUser"}})
	app.Bind((*ArticleController)(nil), "article", binding.Options{Param: "article_id"})

	if err := app.Run(boot.Options{
		Address:                ":8080",
		EnableGracefulShutdown: true,
		ShutdownTimeout:        5 * time.Second,
		HTTP:                   &boot.HTTPOptions{},
	}); err != nil {
		log.Fatalf("앱 실행 실패: %v", err)
	}
}
