package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/you-humble/material-catalog/internal/converter"
	"github.com/you-humble/material-catalog/internal/model"
	"github.com/you-humble/material-catalog/platform/logger"
)

const (
	imageField = "imageUrl"

	// Room for the text fields on top of the file itself.
	formOverhead     = 1 << 20
	multipartMemory  = 8 << 20
	mediaJSON        = "application/json"
	mediaMultipart   = "multipart/form-data"
	mediaURLEncoding = "application/x-www-form-urlencoded"
)

var (
	errUnsupportedMedia = fmt.Errorf("%w: unsupported content type", model.ErrInvalidArgument)
	errTooManyFiles     = fmt.Errorf("%w: only one %s file is accepted", model.ErrInvalidArgument, imageField)
	errUnexpectedFile   = fmt.Errorf("%w: unexpected file field", model.ErrInvalidArgument)
	errMalformedBody    = fmt.Errorf("%w: malformed request body", model.ErrInvalidArgument)
)

func noop() {}

// decodeForm reads a create or update body. The returned cleanup releases
// any temporary files held by the multipart reader and must be called once
// the form is no longer used.
func (h *handler) decodeForm(w http.ResponseWriter, r *http.Request) (model.MaterialForm, func(), error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return model.MaterialForm{}, noop, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return model.MaterialForm{}, noop, errUnsupportedMedia
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+formOverhead)

	switch mediaType {
	case mediaJSON:
		form, err := decodeJSON(r.Body)
		return form, noop, err
	case mediaURLEncoding:
		if err := r.ParseForm(); err != nil {
			return model.MaterialForm{}, noop, bodyError(err)
		}
		return converter.FormValuesToMaterialForm(r.PostForm), noop, nil
	case mediaMultipart:
		return h.decodeMultipart(r)
	default:
		return model.MaterialForm{}, noop, errUnsupportedMedia
	}
}

func decodeJSON(body io.Reader) (model.MaterialForm, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return model.MaterialForm{}, nil
		}
		return model.MaterialForm{}, bodyError(err)
	}

	form, err := converter.JSONToMaterialForm(raw)
	if err != nil {
		return model.MaterialForm{}, fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	return form, nil
}

func (h *handler) decodeMultipart(r *http.Request) (model.MaterialForm, func(), error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return model.MaterialForm{}, noop, bodyError(err)
	}
	mf := r.MultipartForm

	release := func() {
		if err := mf.RemoveAll(); err != nil {
			logger.Warn(r.Context(), "remove multipart temp files", logger.ErrorF(err))
		}
	}

	form := converter.FormValuesToMaterialForm(mf.Value)

	for field, headers := range mf.File {
		if field != imageField {
			release()
			return model.MaterialForm{}, noop, fmt.Errorf("%w: %q", errUnexpectedFile, field)
		}
		if len(headers) > 1 {
			release()
			return model.MaterialForm{}, noop, errTooManyFiles
		}
	}

	headers := mf.File[imageField]
	if len(headers) == 0 {
		return form, release, nil
	}

	fh := headers[0]
	if fh.Size > h.maxUploadSize {
		release()
		return model.MaterialForm{}, noop, model.ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		release()
		return model.MaterialForm{}, noop, fmt.Errorf("open uploaded file: %w", err)
	}

	form.Image = &model.Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Content:  file,
	}

	return form, func() {
		closeFile(r, file)
		release()
	}, nil
}

func closeFile(r *http.Request, f multipart.File) {
	if err := f.Close(); err != nil {
		logger.Warn(r.Context(), "close uploaded file", logger.ErrorF(err))
	}
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return model.ErrFileTooLarge
	}
	return fmt.Errorf("%w: %w", errMalformedBody, err)
}
