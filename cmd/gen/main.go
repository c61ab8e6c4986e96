package main

import (
	"ipay4u/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the ipay4u tables.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(model.All()...)

	gen.Execute()
}
