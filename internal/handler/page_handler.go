package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"gearshift/internal/models"
	"gearshift/internal/service"
	"gearshift/internal/session"
	"gearshift/internal/state"
	"gearshift/internal/view"
)

const heroFileField = "heroFile"

func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	st, err := h.PageService.Snapshot(r.Context(), session.IDFrom(r.Context()))
	if err != nil {
		h.renderFailure(w, err)
		return
	}
	h.renderPage(w, st, http.StatusOK, nil, nil)
}

// PostRideForm handles the plain form post of the ride form.
func (h *Handlers) PostRideForm(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.renderProblem(w, r, state.FormRide, "image", "Could not read the form: "+err.Error())
		return
	}

	image, closeImage, err := h.heroUpload(r)
	if err != nil {
		h.renderProblem(w, r, state.FormRide, "image", "Could not read the uploaded image")
		return
	}
	defer closeImage()

	fields := formFields(r, models.RideDraftFields)
	_, st, err := h.PageService.SubmitRide(r.Context(), session.IDFrom(r.Context()), fields, image)
	if err != nil {
		var verr *state.ValidationError
		switch {
		case errors.As(err, &verr):
			h.renderPage(w, st, http.StatusUnprocessableEntity, verr.Problems, nil)
		case errors.Is(err, service.ErrUploadsDisabled), errors.Is(err, service.ErrUploadTooLarge):
			h.renderProblem(w, r, state.FormRide, "image", err.Error())
		default:
			h.renderFailure(w, err)
		}
		return
	}

	http.Redirect(w, r, "/#rides", http.StatusSeeOther)
}

func (h *Handlers) PostMeetupForm(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.renderProblem(w, r, state.FormMeetup, "title", "Could not read the form: "+err.Error())
		return
	}

	fields := formFields(r, models.MeetupDraftFields)
	_, st, err := h.PageService.SubmitMeetup(r.Context(), session.IDFrom(r.Context()), fields)
	if err != nil {
		var verr *state.ValidationError
		if errors.As(err, &verr) {
			h.renderPage(w, st, http.StatusUnprocessableEntity, nil, verr.Problems)
			return
		}
		h.renderFailure(w, err)
		return
	}

	http.Redirect(w, r, "/#meetups", http.StatusSeeOther)
}

func (h *Handlers) parseForm(w http.ResponseWriter, r *http.Request) error {
	if h.Cfg != nil && h.Cfg.MaxUploadSize > 0 {
		// allow some room for the text fields on top of the image
		r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+1<<20)
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(1 << 20)
	}
	return r.ParseForm()
}

// heroUpload returns the uploaded hero image, or nil when none was sent.
func (h *Handlers) heroUpload(r *http.Request) (*service.ImageUpload, func(), error) {
	noop := func() {}
	if r.MultipartForm == nil {
		return nil, noop, nil
	}

	file, header, err := r.FormFile(heroFileField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	if header.Size == 0 {
		file.Close()
		return nil, noop, nil
	}

	return &service.ImageUpload{
		FileName: header.Filename,
		Body:     file,
		Size:     header.Size,
	}, func() { file.Close() }, nil
}

// formFields picks the known draft keys that were posted.
func formFields(r *http.Request, keys []string) map[string]string {
	fields := make(map[string]string, len(keys))
	for _, key := range keys {
		if values, ok := r.PostForm[key]; ok && len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields
}

func (h *Handlers) renderProblem(w http.ResponseWriter, r *http.Request, form, field, message string) {
	st, err := h.PageService.Snapshot(r.Context(), session.IDFrom(r.Context()))
	if err != nil {
		h.renderFailure(w, err)
		return
	}
	problems := []state.FieldProblem{{Field: field, Message: message}}
	if form == state.FormRide {
		h.renderPage(w, st, http.StatusBadRequest, problems, nil)
		return
	}
	h.renderPage(w, st, http.StatusBadRequest, nil, problems)
}

func (h *Handlers) renderPage(w http.ResponseWriter, st state.State, status int, rideErrors, meetupErrors []state.FieldProblem) {
	page := view.BuildPage(st, h.PageService.Now())
	page.RideErrors = rideErrors
	page.MeetupErrors = meetupErrors
	page.UploadsEnabled = h.UploadsEnabled

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.Renderer.RenderPage(w, page); err != nil {
		log.Error().Err(err).Msg("failed to render page")
	}
}

func (h *Handlers) renderFailure(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("page request failed")
	http.Error(w, "Something went wrong in the pit lane, try again", http.StatusInternalServerError)
}
