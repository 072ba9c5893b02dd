package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/material-catalog/internal/model"
	"github.com/you-humble/material-catalog/internal/staging"
	"github.com/you-humble/material-catalog/platform/logger"
	"github.com/you-humble/material-catalog/platform/metrics"
)

type MaterialRepository interface {
	List(ctx context.Context) ([]*model.Material, error)
	MaterialByID(ctx context.Context, id string) (*model.Material, error)
	Create(ctx context.Context, m *model.Material) (model.InsertResult, error)
	Update(ctx context.Context, id string, upd model.MaterialUpdate) (model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
}

type Stager interface {
	Stage(ctx context.Context, upload model.Upload) (*staging.File, error)
}

type ImageHost interface {
	Upload(ctx context.Context, path, name string) (string, error)
}

type EventSender interface {
	SendMaterialChanged(ctx context.Context, event model.MaterialChanged) error
}

type service struct {
	repo           MaterialRepository
	stager         Stager
	images         ImageHost
	events         EventSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewMaterialService(
	repo MaterialRepository,
	stager Stager,
	images ImageHost,
	events EventSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		stager:         stager,
		images:         images,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) List(ctx context.Context) ([]*model.Material, error) {
	const op = "material.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	out, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list materials", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (svc *service) Material(ctx context.Context, id string) (*model.Material, error) {
	const op = "material.service.Material"
	log := logger.With(
		logger.String("material_id", id),
	)

	if !model.IsValidMaterialID(id) {
		log.Warn(ctx, "validation: malformed material id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidID)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	m, err := svc.repo.MaterialByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrMaterialNotFound) {
			log.Info(ctx, "material not found")
		} else {
			log.Error(ctx, "repository material by id", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func (svc *service) Create(ctx context.Context, form model.MaterialForm) (model.InsertResult, error) {
	const op = "material.service.Create"
	log := logger.With(
		logger.Bool("with_image", form.Image != nil),
	)

	m, err := materialFromForm(form)
	if err != nil {
		log.Warn(ctx, "validation: create material", logger.ErrorF(err))
		return model.InsertResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if form.Image != nil {
		url, err := svc.uploadImage(ctx, *form.Image)
		if err != nil {
			log.Error(ctx, "upload image", logger.ErrorF(err))
			return model.InsertResult{}, fmt.Errorf("%s: %w", op, err)
		}
		m.ImageURL = url
	}

	wdbCtx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	res, err := svc.repo.Create(wdbCtx, m)
	if err != nil {
		if m.ImageURL != "" {
			log.Warn(ctx, "hosted image left without material", logger.String("image_url", m.ImageURL))
		}
		log.Error(ctx, "repository create material", logger.ErrorF(err))
		return model.InsertResult{}, fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, res.InsertedID, model.MaterialCreated, createdFields(m))

	return res, nil
}

func (svc *service) Update(ctx context.Context, id string, form model.MaterialForm) (model.UpdateResult, error) {
	const op = "material.service.Update"
	log := logger.With(
		logger.String("material_id", id),
		logger.Bool("with_image", form.Image != nil),
	)

	if !model.IsValidMaterialID(id) {
		log.Warn(ctx, "validation: malformed material id")
		return model.UpdateResult{}, fmt.Errorf("%s: %w", op, model.ErrInvalidID)
	}

	upd, err := updateFromForm(form)
	if err != nil {
		log.Warn(ctx, "validation: update material", logger.ErrorF(err))
		return model.UpdateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if form.Image != nil {
		url, err := svc.uploadImage(ctx, *form.Image)
		if err != nil {
			log.Error(ctx, "upload image", logger.ErrorF(err))
			return model.UpdateResult{}, fmt.Errorf("%s: %w", op, err)
		}
		upd.ImageURL = &url
	}

	wdbCtx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	res, err := svc.repo.Update(wdbCtx, id, upd)
	if err != nil {
		if upd.ImageURL != nil {
			log.Warn(ctx, "hosted image left without material", logger.String("image_url", *upd.ImageURL))
		}
		log.Error(ctx, "repository update material", logger.ErrorF(err))
		return model.UpdateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		if upd.ImageURL != nil {
			log.Warn(ctx, "hosted image left without material", logger.String("image_url", *upd.ImageURL))
		}
		log.Info(ctx, "material not found")
		return model.UpdateResult{}, fmt.Errorf("%s: %w", op, model.ErrMaterialNotFound)
	}

	if !upd.Empty() {
		svc.publish(ctx, id, model.MaterialUpdated, upd.Fields())
	}

	return res, nil
}

func (svc *service) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	const op = "material.service.Delete"
	log := logger.With(
		logger.String("material_id", id),
	)

	if !model.IsValidMaterialID(id) {
		log.Warn(ctx, "validation: malformed material id")
		return model.DeleteResult{}, fmt.Errorf("%s: %w", op, model.ErrInvalidID)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	res, err := svc.repo.Delete(ctx, id)
	if err != nil {
		log.Error(ctx, "repository delete material", logger.ErrorF(err))
		return model.DeleteResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		log.Info(ctx, "material not found")
		return model.DeleteResult{}, fmt.Errorf("%s: %w", op, model.ErrMaterialNotFound)
	}

	svc.publish(ctx, id, model.MaterialDeleted, nil)

	return res, nil
}

// uploadImage stages the upload, sends it to the image host and removes the
// staged copy regardless of the outcome.
func (svc *service) uploadImage(ctx context.Context, upload model.Upload) (string, error) {
	file, err := svc.stager.Stage(ctx, upload)
	if err != nil {
		if errors.Is(err, model.ErrInvalidArgument) {
			return "", err
		}
		return "", fmt.Errorf("%w: stage: %w", model.ErrImageUpload, err)
	}
	defer func() {
		if err := file.Remove(); err != nil {
			logger.Warn(ctx, "remove staged file", logger.String("path", file.Path), logger.ErrorF(err))
		}
	}()

	url, err := svc.images.Upload(ctx, file.Path, file.Name)
	metrics.RecordImageUpload(err)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrImageUpload, err)
	}

	return url, nil
}

func (svc *service) publish(ctx context.Context, id string, action model.MaterialAction, fields []string) {
	event := model.MaterialChanged{
		EventID:    uuid.New(),
		MaterialID: id,
		Action:     action,
		Fields:     fields,
		OccurredAt: time.Now().UTC(),
	}

	if err := svc.events.SendMaterialChanged(ctx, event); err != nil {
		logger.Error(ctx, "send material changed event",
			logger.String("material_id", id),
			logger.String("action", string(action)),
			logger.ErrorF(err),
		)
	}
}
