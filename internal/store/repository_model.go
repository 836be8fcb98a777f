package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/models"
)

const modelsTable = "models"

// modelRepository is the SQL implementation of [ModelRepository].
type modelRepository struct {
	*DB
	logger *logger.Logger
}

// NewModelRepository constructs a [ModelRepository] backed by the provided
// database connection and logger.
func NewModelRepository(db *DB, logger *logger.Logger) ModelRepository {
	logger.Debug().Msg("creating model repository")
	return &modelRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *modelRepository) CreateModel(ctx context.Context, model models.Model) (models.Model, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(modelsTable).
		Columns(modelColumns...).
		Values(
			model.ID, model.Name, model.Description, model.ModelFile, model.Axis, model.Rotations, model.Size,
			nullString(model.Img), model.Tags, model.Listed, model.Sizes, model.InitialRotations, model.CreatedAt,
		).
		ToSql()
	if err != nil {
		return models.Model{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*modelRepository.CreateModel").Str("name", model.Name).Msg("error inserting model")
		return models.Model{}, r.statementError(err)
	}

	return model, nil
}

func (r *modelRepository) GetModel(ctx context.Context, id string) (models.Model, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(modelColumns...).
		From(modelsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Model{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	model, err := scanModel(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Model{}, ErrNotFound
		}
		log.Err(err).Str("func", "*modelRepository.GetModel").Str("model_id", id).Msg("error scanning model")
		return models.Model{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return model, nil
}

func (r *modelRepository) ListModels(ctx context.Context, listedOnly bool) ([]models.Model, error) {
	builder := r.builder.
		Select(modelColumns...).
		From(modelsTable).
		OrderBy("created_at DESC", "id DESC")
	if listedOnly {
		builder = builder.Where(sq.Eq{"listed": true})
	}

	return r.queryModels(ctx, "*modelRepository.ListModels", builder)
}

// UpdateModel overwrites every mutable column of the model row.
func (r *modelRepository) UpdateModel(ctx context.Context, model models.Model) error {
	log := logger.FromContext(ctx)

	err := r.execAffecting(ctx, r.DB, r.builder.
		Update(modelsTable).
		SetMap(map[string]any{
			"name":              model.Name,
			"description":       model.Description,
			"model_file":        model.ModelFile,
			"axis":              model.Axis,
			"rotations":         model.Rotations,
			"size":              model.Size,
			"img":               nullString(model.Img),
			"tags":              model.Tags,
			"listed":            model.Listed,
			"sizes":             model.Sizes,
			"initial_rotations": model.InitialRotations,
		}).
		Where(sq.Eq{"id": model.ID}))
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "*modelRepository.UpdateModel").Str("model_id", model.ID).Msg("error updating model")
	}

	return err
}

// DeleteModel removes the placements of the model and the model itself in
// one transaction.
func (r *modelRepository) DeleteModel(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.builder.Delete(roomModelsTable).Where(sq.Eq{"model_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return r.statementError(err)
		}

		return r.execAffecting(ctx, tx, r.builder.Delete(modelsTable).Where(sq.Eq{"id": id}))
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "*modelRepository.DeleteModel").Str("model_id", id).Msg("error deleting model")
	}

	return err
}

func (r *modelRepository) FindModelsByNameContaining(ctx context.Context, token string) ([]models.Model, error) {
	return r.queryModels(ctx, "*modelRepository.FindModelsByNameContaining", r.builder.
		Select(modelColumns...).
		From(modelsTable).
		Where(sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(token))).
		OrderBy("created_at ASC", "id ASC"))
}

func (r *modelRepository) FirstModels(ctx context.Context, limit uint64) ([]models.Model, error) {
	return r.queryModels(ctx, "*modelRepository.FirstModels", r.builder.
		Select(modelColumns...).
		From(modelsTable).
		OrderBy("created_at ASC", "id ASC").
		Limit(limit))
}

func (r *modelRepository) GetModelsByIDs(ctx context.Context, ids []string) ([]models.Model, error) {
	if len(ids) == 0 {
		return []models.Model{}, nil
	}

	return r.queryModels(ctx, "*modelRepository.GetModelsByIDs", r.builder.
		Select(modelColumns...).
		From(modelsTable).
		Where(sq.Eq{"id": ids}))
}

func (r *modelRepository) queryModels(ctx context.Context, funcName string, builder sq.SelectBuilder) ([]models.Model, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.Model, 0, 16)
	for rows.Next() {
		model, err := scanModel(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan model")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, model)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
