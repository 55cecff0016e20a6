package main

import (
	"studio/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.GMBAccountModel{},
		model.GMBLocationModel{},
		model.GMBReviewModel{},
		model.GMBMediaModel{},
		model.JobLogModel{},
		model.OAuthStateModel{},
		model.OAuthTokenModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
