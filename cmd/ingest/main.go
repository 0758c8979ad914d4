package main

import (
	"Encore/config"
	"Encore/dao"
	"Encore/models"
	"Encore/pkg/database"
	"Encore/pkg/log"
	"Encore/pkg/snowflake"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// 采集任务入口: 把爬虫产出的 JSON 幂等导入剧目表
// source_url 是自然键，重跑不会产生重复数据
func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	cliApp := &cli.App{
		Name:  "ingest",
		Usage: "import scraped works into the catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "scraped works json file",
				Required: true,
			},
		},
		Action: run(cfg),
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("ingest failed", zap.Error(err))
	}
}

func run(cfg *config.Config) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		db := database.NewDB(cfg)
		workDAO := dao.NewWorkDAO(db)

		content, err := os.ReadFile(ctx.String("file"))
		if err != nil {
			return err
		}
		parsed := gjson.ParseBytes(content)
		if !parsed.IsArray() {
			return errors.New("ingest file must be a json array")
		}

		var imported, skipped int
		for _, item := range parsed.Array() {
			w := parseWork(item)
			if w == nil {
				skipped++
				continue
			}
			if err := workDAO.UpsertBySourceURL(ctx.Context, w); err != nil {
				log.L.Warn("upsert work failed",
					zap.String("source_url", w.SourceURL),
					zap.Error(err),
				)
				skipped++
				continue
			}
			imported++
		}

		log.L.Info("ingest done",
			zap.Int("imported", imported),
			zap.Int("skipped", skipped),
		)
		return nil
	}
}

func parseWork(item gjson.Result) *models.Work {
	title := item.Get("title").String()
	sourceURL := item.Get("source_url").String()
	if title == "" || sourceURL == "" {
		return nil
	}

	return &models.Work{
		ID:        snowflake.GenWorkID(),
		Title:     title,
		Category:  strPtr(item.Get("category")),
		Venue:     strPtr(item.Get("venue")),
		StartDate: datePtr(item.Get("start_date")),
		EndDate:   datePtr(item.Get("end_date")),
		PriceMin:  floatPtr(item.Get("price_min")),
		PriceMax:  floatPtr(item.Get("price_max")),
		ImageURL:  strPtr(item.Get("image_url")),
		SourceURL: sourceURL,
		Raw:       datatypes.JSON([]byte(item.Raw)),
	}
}

func strPtr(r gjson.Result) *string {
	if !r.Exists() || r.String() == "" {
		return nil
	}
	s := r.String()
	return &s
}

func floatPtr(r gjson.Result) *float64 {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	f := r.Float()
	return &f
}

func datePtr(r gjson.Result) *time.Time {
	if !r.Exists() || r.String() == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, r.String()); err == nil {
			return &t
		}
	}
	return nil
}
