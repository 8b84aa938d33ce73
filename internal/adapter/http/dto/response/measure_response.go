package response

import (
	"measure_service/internal/domain/entities"
	"time"
)

type UploadMeasureResponse struct {
	ImageURL     string `json:"image_url"`
	MeasureValue string `json:"measure_value"`
	MeasureUUID  string `json:"measure_uuid"`
}

func FromUploadedMeasure(m entities.Measure) UploadMeasureResponse {
	return UploadMeasureResponse{
		ImageURL:     m.ImageURL,
		MeasureValue: m.MeasureValue,
		MeasureUUID:  m.MeasureUUID,
	}
}

type ConfirmMeasureResponse struct {
	Success bool `json:"success"`
}

type MeasureResponse struct {
	MeasureUUID     string    `json:"measure_uuid"`
	MeasureDatetime time.Time `json:"measure_datetime"`
	MeasureType     string    `json:"measure_type"`
	HasConfirmed    bool      `json:"has_confirmed"`
	ImageURL        string    `json:"image_url"`
	MeasureValue    string    `json:"measure_value"`
}

type ListMeasuresResponse struct {
	CustomerCode string            `json:"customer_code"`
	Measures     []MeasureResponse `json:"measures"`
}

func FromMeasures(customerCode string, measures []entities.Measure) ListMeasuresResponse {
	out := ListMeasuresResponse{
		CustomerCode: customerCode,
		Measures:     make([]MeasureResponse, 0, len(measures)),
	}
	for _, m := range measures {
		out.Measures = append(out.Measures, MeasureResponse{
			MeasureUUID:     m.MeasureUUID,
			MeasureDatetime: m.MeasureDatetime,
			MeasureType:     string(m.MeasureType),
			HasConfirmed:    m.HasConfirmed,
			ImageURL:        m.ImageURL,
			MeasureValue:    m.MeasureValue,
		})
	}
	return out
}
