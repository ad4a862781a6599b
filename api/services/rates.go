package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/internal/ratesheet"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/rs/zerolog"
)

const maxUploadSize = 10 << 20

// uploadedFile returns the multipart "file" field, or nil when the request
// carries no file.
func uploadedFile(r *http.Request) (multipart.File, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return nil, nil
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("invalid upload: %w", err)
	}
	f, _, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	return f, err
}

// uploadRates parses an uploaded rate sheet and hands it to add. Without a
// file the sample data is restored.
func uploadRates(svc *Service, w http.ResponseWriter, r *http.Request, entity, message string, add func([]models.RoamingRateRow) models.RateVersion) {

	logger := zerolog.Ctx(r.Context()).With().Str("sheet", entity).Logger()

	file, err := uploadedFile(r)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid rate upload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if file == nil {
		svc.Rates.Reseed()
		svc.audit(r, entity, "sample", events.ActionUpload)
		logger.Info().Msg("Rate sheets reseeded")
		WriteResponse(w, http.StatusOK, models.UploadResponse{Message: message})
		return
	}
	defer file.Close()

	rows, err := ratesheet.ParseRates(file)
	if err != nil {
		logger.Warn().Err(err).Msg("Rate sheet rejected")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	version := add(rows)
	svc.audit(r, entity, version.ID, events.ActionUpload)
	logger.Info().Str("version", version.ID).Int("rows", len(rows)).Msg("Rate sheet uploaded")
	WriteResponse(w, http.StatusCreated, models.UploadResponse{Message: message, Version: &version})
}

func UploadRoamingRatesService(svc *Service, w http.ResponseWriter, r *http.Request) {
	uploadRates(svc, w, r, "roaming_rates",
		"Upload received. File validated and processed successfully.",
		svc.Rates.AddRoamingVersion)
}

func UploadInternationalRatesService(svc *Service, w http.ResponseWriter, r *http.Request) {
	uploadRates(svc, w, r, "international_rates",
		"International rates uploaded successfully.",
		svc.Rates.AddInternationalVersion)
}

// RoamingRatesService returns the rows of ?version=, the newest by default.
func RoamingRatesService(svc *Service, w http.ResponseWriter, r *http.Request) {
	items, version := svc.Rates.Roaming(r.URL.Query().Get("version"))
	WriteResponse(w, http.StatusOK, models.RatesResponse{Items: items, Version: version})
}

func RoamingVersionsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, models.RateVersionsResponse{Versions: svc.Rates.RoamingVersions()})
}

func InternationalRatesService(svc *Service, w http.ResponseWriter, r *http.Request) {
	items, version := svc.Rates.International(r.URL.Query().Get("version"))
	WriteResponse(w, http.StatusOK, models.RatesResponse{Items: items, Version: version})
}

func InternationalVersionsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, models.RateVersionsResponse{Versions: svc.Rates.InternationalVersions()})
}

// sendFile renders the download into a buffer first so a failure can
// still produce an error response.
func sendFile(w http.ResponseWriter, r *http.Request, contentType, filename string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logger := zerolog.Ctx(r.Context())
		handleError(w, logger, err, "Failed to render "+filename)
		return
	}

	attachment(w, contentType, filename)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("file", filename).Msg("Failed to write download")
	}
}

// DownloadRoamingRatesService exports the current roaming sheet as CSV.
func DownloadRoamingRatesService(svc *Service, w http.ResponseWriter, r *http.Request) {
	rows := svc.Rates.Processed()
	sendFile(w, r, "text/csv", "roaming_rates.csv", func(out io.Writer) error {
		return ratesheet.WriteRates(out, rows)
	})
}

// DownloadRateIDsService exports the rate ids of every tariff plan as a zip.
func DownloadRateIDsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	rows := svc.Rates.Mapping()
	sendFile(w, r, "application/zip", "rate_ids.zip", func(out io.Writer) error {
		return ratesheet.WriteRateIDArchive(out, rows)
	})
}

func MappingService(svc *Service, w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, models.ItemsResponse[models.MappingRow]{Items: svc.Rates.Mapping()})
}

func DownloadMappingService(svc *Service, w http.ResponseWriter, r *http.Request) {
	rows := svc.Rates.Mapping()
	sendFile(w, r, "text/csv", "mapping_table.csv", func(out io.Writer) error {
		return ratesheet.WriteMapping(out, rows)
	})
}

// CompareMappingService diffs a candidate mapping table, sent as JSON
// {items} or as an uploaded CSV, against the current one.
func CompareMappingService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var candidate []models.MappingRow

	file, err := uploadedFile(r)
	switch {
	case err != nil:
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	case file != nil:
		defer file.Close()
		candidate, err = ratesheet.ParseMapping(file)
		if err != nil {
			logger.Warn().Err(err).Msg("Mapping table rejected")
			HandleErrResponse(w, http.StatusBadRequest, err)
			return
		}
	default:
		var body models.ItemsResponse[models.MappingRow]
		if err := decodeJSON(r, &body); err != nil {
			HandleErrResponse(w, http.StatusBadRequest, err)
			return
		}
		candidate = body.Items
	}

	diff := svc.Rates.CompareMapping(candidate)
	logger.Info().
		Int("added", diff.Summary.Added).
		Int("removed", diff.Summary.Removed).
		Int("updated", diff.Summary.Updated).
		Msg("Mapping tables compared")
	WriteResponse(w, http.StatusOK, diff)
}
