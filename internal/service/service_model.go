package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/store"
	"github.com/MKhiriev/go-room-design/internal/utils"
	"github.com/MKhiriev/go-room-design/internal/validators"
	"github.com/MKhiriev/go-room-design/models"
)

const (
	defaultMinSimilarity = 0.6
	defaultFallbackLimit = 1000
)

// modelService is the concrete implementation of ModelService.
type modelService struct {
	modelRepository store.ModelRepository
	validator       validators.Validator

	// minSimilarity is used by SearchByToken when the caller passes no
	// threshold.
	minSimilarity float64

	// fallbackLimit bounds the candidates scored when no model name
	// contains the search token.
	fallbackLimit uint64

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

func NewModelService(modelRepository store.ModelRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) ModelService {
	s := &modelService{
		modelRepository: modelRepository,
		validator:       validator,
		minSimilarity:   cfg.SearchMinSimilarity,
		fallbackLimit:   cfg.SearchFallbackLimit,
		newID:           utils.NewUUIDGenerator().Generate,
		now:             time.Now,
		logger:          logger,
	}
	if s.minSimilarity <= 0 {
		s.minSimilarity = defaultMinSimilarity
	}
	if s.fallbackLimit == 0 {
		s.fallbackLimit = defaultFallbackLimit
	}

	return s
}

func (s *modelService) List(ctx context.Context, listedOnly bool) ([]models.Model, error) {
	list, err := s.modelRepository.ListModels(ctx, listedOnly)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*modelService.List").Msg("error listing models")
		return nil, unexpectedError(msgInternalError, err)
	}

	return list, nil
}

func (s *modelService) Get(ctx context.Context, id string) (models.Model, error) {
	model, err := s.modelRepository.GetModel(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Model{}, notFoundError(msgModelNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*modelService.Get").Str("model_id", id).Msg("error getting model")
		return models.Model{}, unexpectedError(msgInternalError, err)
	}

	return model, nil
}

// Create validates the mandatory attributes and fills in defaults: empty
// geometry lists, size 1, no image, no tags and listed=true.
func (s *modelService) Create(ctx context.Context, newModel models.NewModel) (models.Model, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, newModel); err != nil {
		log.Debug().Err(err).Str("func", "*modelService.Create").Msg("invalid model data")
		if errors.Is(err, validators.ErrRequiredField) {
			return models.Model{}, validationError(msgModelFieldsRequired)
		}
		return models.Model{}, validationError(err.Error())
	}

	model := models.Model{
		ID:               s.newID(),
		Name:             newModel.Name,
		Description:      newModel.Description,
		ModelFile:        newModel.ModelFile,
		Axis:             orEmptyList(newModel.Axis),
		Rotations:        orEmptyList(newModel.Rotations),
		Size:             newModel.Size,
		Img:              newModel.Img,
		Tags:             newModel.Tags,
		Listed:           true,
		Sizes:            models.JSONList{},
		InitialRotations: models.JSONList{},
		CreatedAt:        s.now().UTC(),
	}
	if model.Size == 0 {
		model.Size = 1
	}
	if model.Tags == nil {
		model.Tags = models.StringList{}
	}
	if newModel.Listed != nil {
		model.Listed = *newModel.Listed
	}

	created, err := s.modelRepository.CreateModel(ctx, model)
	if err != nil {
		log.Err(err).Str("func", "*modelService.Create").Msg("error creating model")
		return models.Model{}, unexpectedError(msgInternalError, err)
	}

	return created, nil
}

// Update applies the non-nil fields of update to the model.
func (s *modelService) Update(ctx context.Context, id string, update models.ModelUpdate) (models.Model, error) {
	model, err := s.Get(ctx, id)
	if err != nil {
		return models.Model{}, err
	}

	if err = s.validator.Validate(ctx, update); err != nil {
		return models.Model{}, validationError(err.Error())
	}

	update.Apply(&model)
	if err = s.save(ctx, model); err != nil {
		return models.Model{}, err
	}

	return model, nil
}

// Delete removes the model together with all of its placements.
func (s *modelService) Delete(ctx context.Context, id string) (models.Model, error) {
	model, err := s.Get(ctx, id)
	if err != nil {
		return models.Model{}, err
	}

	err = s.modelRepository.DeleteModel(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Model{}, notFoundError(msgModelNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*modelService.Delete").Str("model_id", id).Msg("error deleting model")
		return models.Model{}, unexpectedError(msgInternalError, err)
	}

	return model, nil
}

// Unlist hides the model from the listed catalog. Unlisting an unlisted
// model succeeds.
func (s *modelService) Unlist(ctx context.Context, id string) (models.Model, error) {
	model, err := s.Get(ctx, id)
	if err != nil {
		return models.Model{}, err
	}

	model.Listed = false
	if err = s.save(ctx, model); err != nil {
		return models.Model{}, err
	}

	return model, nil
}

func (s *modelService) save(ctx context.Context, model models.Model) error {
	err := s.modelRepository.UpdateModel(ctx, model)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(msgModelNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*modelService.save").Str("model_id", model.ID).Msg("error updating model")
		return unexpectedError(msgInternalError, err)
	}

	return nil
}

func orEmptyList(l models.JSONList) models.JSONList {
	if l == nil {
		return models.JSONList{}
	}
	return l
}
