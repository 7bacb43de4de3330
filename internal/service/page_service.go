package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"gearshift/internal/config"
	"gearshift/internal/models"
	"gearshift/internal/repository"
	"gearshift/internal/state"
	"gearshift/internal/storage"
)

var (
	ErrUploadsDisabled = errors.New("image uploads are not configured")
	ErrUploadTooLarge  = errors.New("image exceeds the upload limit")
)

// ImageUpload is a hero image sent along with a ride submission.
type ImageUpload struct {
	FileName string
	Body     io.Reader
	Size     int64
}

type PageService interface {
	Snapshot(ctx context.Context, sessionID string) (state.State, error)
	Stats(ctx context.Context, sessionID string) (state.Stats, error)
	UpdateField(ctx context.Context, sessionID, form, field, value string) (state.State, error)
	SubmitRide(ctx context.Context, sessionID string, fields map[string]string, image *ImageUpload) (models.Ride, state.State, error)
	SubmitMeetup(ctx context.Context, sessionID string, fields map[string]string) (models.Meetup, state.State, error)
	Now() time.Time
}

type pageService struct {
	sessions repository.SessionRepository
	images   storage.ImageStorage
	cfg      *config.Config
	now      func() time.Time
}

func NewPageService(sessions repository.SessionRepository, images storage.ImageStorage, cfg *config.Config, now func() time.Time) PageService {
	return &pageService{
		sessions: sessions,
		images:   images,
		cfg:      cfg,
		now:      now,
	}
}

func (p *pageService) Now() time.Time {
	return p.now()
}

func (p *pageService) Snapshot(ctx context.Context, sessionID string) (state.State, error) {
	return p.sessions.Get(ctx, sessionID)
}

func (p *pageService) Stats(ctx context.Context, sessionID string) (state.Stats, error) {
	st, err := p.sessions.Get(ctx, sessionID)
	if err != nil {
		return state.Stats{}, err
	}
	return st.Stats(p.now()), nil
}

func (p *pageService) UpdateField(ctx context.Context, sessionID, form, field, value string) (state.State, error) {
	return p.sessions.Update(ctx, sessionID, func(cur state.State) (state.State, error) {
		return cur.UpdateField(form, field, value)
	})
}

// SubmitRide applies the posted fields to the ride draft and submits it.
// The typed fields are kept even when the submission fails validation, so
// the form comes back with what the visitor typed. The URL of an uploaded
// hero image is never kept, since that object is removed again.
func (p *pageService) SubmitRide(ctx context.Context, sessionID string, fields map[string]string, image *ImageUpload) (models.Ride, state.State, error) {
	typed := fields
	var objectName string
	if image != nil {
		name, url, err := p.uploadHero(ctx, fields["owner"], image)
		if err != nil {
			return models.Ride{}, state.State{}, err
		}
		objectName = name
		fields = withField(fields, "image", url)
	}

	var ride models.Ride
	var submitErr error
	st, err := p.sessions.Update(ctx, sessionID, func(cur state.State) (state.State, error) {
		applied, err := applyFields(cur, state.FormRide, fields)
		if err != nil {
			return cur, err
		}
		next, created, err := applied.SubmitRide(p.now())
		if err != nil {
			submitErr = err
			if objectName == "" {
				return applied, nil
			}
			return applyFields(cur, state.FormRide, typed)
		}
		ride = created
		return next, nil
	})
	if err == nil {
		err = submitErr
	}

	if err != nil {
		if objectName != "" {
			p.discardHero(ctx, objectName)
		}
		return models.Ride{}, st, err
	}

	log.Info().Str("session", sessionID).Str("ride", ride.ID).Msg("ride submitted")
	return ride, st, nil
}

func (p *pageService) SubmitMeetup(ctx context.Context, sessionID string, fields map[string]string) (models.Meetup, state.State, error) {
	var meetup models.Meetup
	var submitErr error
	st, err := p.sessions.Update(ctx, sessionID, func(cur state.State) (state.State, error) {
		cur, err := applyFields(cur, state.FormMeetup, fields)
		if err != nil {
			return cur, err
		}
		next, created, err := cur.SubmitMeetup(p.now())
		if err != nil {
			submitErr = err
			return cur, nil
		}
		meetup = created
		return next, nil
	})
	if err == nil {
		err = submitErr
	}
	if err != nil {
		return models.Meetup{}, st, err
	}

	log.Info().Str("session", sessionID).Str("meetup", meetup.ID).Msg("meetup submitted")
	return meetup, st, nil
}

func (p *pageService) uploadHero(ctx context.Context, owner string, image *ImageUpload) (string, string, error) {
	if p.images == nil {
		return "", "", ErrUploadsDisabled
	}
	if p.cfg != nil && p.cfg.MaxUploadSize > 0 && image.Size > p.cfg.MaxUploadSize {
		return "", "", ErrUploadTooLarge
	}

	name, url, err := p.images.UploadImage(ctx, state.Slug(owner), image.FileName, image.Body, image.Size)
	if err != nil {
		return "", "", fmt.Errorf("upload hero image: %w", err)
	}
	return name, url, nil
}

// discardHero removes an uploaded image whose ride was not created.
func (p *pageService) discardHero(ctx context.Context, objectName string) {
	if err := p.images.DeleteImage(ctx, objectName); err != nil {
		log.Warn().Err(err).Str("object", objectName).Msg("failed to remove orphaned hero image")
	}
}

func applyFields(cur state.State, form string, fields map[string]string) (state.State, error) {
	for field, value := range fields {
		var err error
		cur, err = cur.UpdateField(form, field, value)
		if err != nil {
			return cur, err
		}
	}
	return cur, nil
}

func withField(fields map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out[key] = value
	return out
}
