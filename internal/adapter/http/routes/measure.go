package routes

import (
	"measure_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUpload   = "/upload"
	PathConfirm  = "/confirm"
	PathMeasures = "/measures"
)

func addMeasureRoutes(rg *gin.RouterGroup, measureHandler *handlers.MeasureHandler) {
	rg.POST(PathUpload, measureHandler.UploadMeasure)

	// PATCH is the documented verb; POST is kept for clients of the first release.
	rg.PATCH(PathConfirm, measureHandler.ConfirmMeasure)
	rg.POST(PathConfirm, measureHandler.ConfirmMeasure)

	rg.GET(PathMeasures+"/:customer_code", measureHandler.ListMeasures)
}
