package handlers

import (
	"errors"
	request "measure_service/internal/adapter/http/dto/request"
	response "measure_service/internal/adapter/http/dto/response"
	"measure_service/internal/usecase"
	"measure_service/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidMeasurePayload = pkg.NewDomainErrorSimple("INVALID_DATA", "Invalid request payload", http.StatusBadRequest)
)

// MeasureHandler serves the upload, confirm and list endpoints.
type MeasureHandler struct {
	usecase usecase.IMeasureUseCase
	logger  *zap.Logger
}

func NewMeasureHandler(uc usecase.IMeasureUseCase, logger *zap.Logger) *MeasureHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeasureHandler{usecase: uc, logger: logger.Named("measure.handler")}
}

// UploadMeasure godoc
// @Summary      Upload a meter image
// @Description  Reads the meter value from the image and stores a pending measure. One measure per customer, type and month.
// @Tags         measures
// @Accept       json
// @Produce      json
// @Param        payload  body      request.UploadMeasureRequest  true  "Measure upload"
// @Success      200      {object}  response.UploadMeasureResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /upload [post]
func (h *MeasureHandler) UploadMeasure(c *gin.Context) {
	var payload request.UploadMeasureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMeasurePayload.HTTPStatus, errInvalidMeasurePayload.ToHTTPError())
		return
	}

	measure, err := h.usecase.Upload(c.Request.Context(), usecase.UploadMeasureInput{
		CustomerCode:    payload.CustomerCode,
		MeasureDatetime: payload.MeasureDatetime,
		MeasureType:     payload.MeasureType,
		Image:           payload.Image,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromUploadedMeasure(measure))
}

// ConfirmMeasure godoc
// @Summary      Confirm a measure
// @Description  Confirms a pending measure, replacing its value. A measure can be confirmed once.
// @Tags         measures
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ConfirmMeasureRequest  true  "Confirmation"
// @Success      200      {object}  response.ConfirmMeasureResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /confirm [patch]
// @Router       /confirm [post]
func (h *MeasureHandler) ConfirmMeasure(c *gin.Context) {
	var payload request.ConfirmMeasureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMeasurePayload.HTTPStatus, errInvalidMeasurePayload.ToHTTPError())
		return
	}

	measureUUID := payload.ResolveMeasureUUID()
	value, err := payload.ResolveConfirmedValue()
	if measureUUID == "" || err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATA", "Missing or invalid measure_uuid / confirmed_value", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if _, err := h.usecase.Confirm(c.Request.Context(), measureUUID, &value); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ConfirmMeasureResponse{Success: true})
}

// ListMeasures godoc
// @Summary      List a customer's measures
// @Tags         measures
// @Produce      json
// @Param        customer_code  path      string  true   "Customer code"
// @Param        measure_type   query     string  false  "WATER or GAS (case-insensitive)"
// @Success      200            {object}  response.ListMeasuresResponse
// @Failure      404            {object}  pkg.HTTPError
// @Failure      500            {object}  pkg.HTTPError
// @Router       /measures/{customer_code} [get]
func (h *MeasureHandler) ListMeasures(c *gin.Context) {
	customerCode := c.Param("customer_code")

	measures, err := h.usecase.ListByCustomer(c.Request.Context(), customerCode, c.Query("measure_type"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromMeasures(customerCode, measures))
}

func (h *MeasureHandler) writeError(c *gin.Context, err error) {
	appErr := mapMeasureError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("error_code", appErr.Code),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapMeasureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidType):
		return pkg.NewDomainErrorSimple("INVALID_TYPE", "Measure type not allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidData):
		return pkg.NewDomainErrorSimple("INVALID_DATA", "The request body data is invalid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileNotFound):
		return pkg.NewDomainErrorSimple("FILE_NOT_FOUND", "File not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDoubleReport):
		return pkg.NewDomainErrorSimple("DOUBLE_REPORT", "Reading for this month already done", http.StatusConflict)
	case errors.Is(err, usecase.ErrMeasureNotFound):
		return pkg.NewDomainErrorSimple("MEASURE_NOT_FOUND", "Measure not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConfirmationDuplicate):
		return pkg.NewDomainErrorSimple("CONFIRMATION_DUPLICATE", "Measure already confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrMeasuresNotFound):
		return pkg.NewDomainErrorSimple("MEASURES_NOT_FOUND", "No measures found for this customer", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage is unavailable", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
