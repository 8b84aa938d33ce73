package interfaces

import "context"

// AnalysisResult is what the image-understanding service extracted.
type AnalysisResult struct {
	// RawValue is the model answer as returned by the provider.
	RawValue string
	// ImageURL references the uploaded copy of the image on the provider side.
	ImageURL string
}

// IAnalysisGateway abstracts the external image analysis provider (e.g. Gemini).
//
// Analyze uploads the image and asks the model to read the meter. It is a
// single blocking call; callers bound it with a context deadline.
type IAnalysisGateway interface {
	Analyze(ctx context.Context, image ResolvedImage, prompt string) (AnalysisResult, error)
}
