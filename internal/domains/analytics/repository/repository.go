package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"senateway/infras/otel"
	"senateway/infras/postgres"
	"senateway/internal/domains/analytics/model"
	"senateway/shared/constant"
	gDto "senateway/shared/dto"
	"senateway/shared/logger"
	gRepo "senateway/shared/repository"
)

type Analytics interface {
	Increment(ctx context.Context, counter string) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Counter, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Counter]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Analytics {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Counter](model.EntityName, model.TableName, model.FieldName, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Increment bumps a counter atomically through an upsert, so concurrent
// events never lose updates and missing rows are created on first use.
func (repo *repositoryImpl) Increment(ctx context.Context, counter string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Increment")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES (:name, 1) ON CONFLICT (%s) DO UPDATE SET %s = %s.%s + 1",
		model.TableName, model.FieldName, model.FieldValue, model.FieldName, model.FieldValue, model.TableName, model.FieldValue,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{"name": counter})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to increment counter (%s): %w", counter, err)
	}

	return nil
}
