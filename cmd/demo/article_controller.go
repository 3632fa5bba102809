package main

import (
	"errors"
	"strconv"
	"time"

	"github.com/NARUBROWN/tether/core"
	"github.com/NARUBROWN/tether/pkg/binding"
	"github.com/NARUBROWN/tether/pkg/httperr"
	"gorm.io/gorm"
)

type Article struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Slug  string `json:"slug" gorm:"uniqueIndex"`
	Title string `json:"title"`
}

// ArticleViewed는 조회 성공 시 발행되는 도메인 이벤트입니다.
type ArticleViewed struct {
	ArticleID int64     `json:"article_id"`
	ViewedAt  time.Time `json:"viewed_at"`
}

func (e ArticleViewed) Name() string          { return "article.viewed" }
func (e ArticleViewed) OccurredAt() time.Time { return e.ViewedAt }

type ArticleController struct {
	db *gorm.DB
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{db: db}
}

/*
FindEntity는 숫자가 아닌 식별자를 slug 조회로 처리합니다.
숫자 식별자는 handled=false로 돌려보내 기본 식별자 조회에 맡깁니다.
*/
func (c *ArticleController) FindEntity(ctx core.ExecutionContext, name string) (any, bool, error) {
	if name != "article" {
		return nil, false, nil
	}

	raw := ctx.Params()["article_id"]
	if raw == "" {
		return nil, false, nil
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return nil, false, nil
	}

	var article Article
	err := c.db.WithContext(ctx.Context()).First(&article, "slug = ?", raw).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, true, nil
	}
	if err != nil {
		return nil, true, err
	}
	return &article, true, nil
}

func (c *ArticleController) GetArticle(ctx core.ExecutionContext) (*Article, error) {
	article, ok := binding.Bound[*Article](ctx, "article")
	if !ok {
		return nil, httperr.Internal("article 바인딩이 누락되었습니다", nil)
	}

	ctx.EventBus().Publish(ArticleViewed{
		ArticleID: article.ID,
		ViewedAt:  time.Now(),
	})
	return article, nil
}
