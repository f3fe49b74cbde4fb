package usecase

import (
	"context"

	"health-records-service/internal/authz"
	"health-records-service/internal/converter"
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/service"
)

type AnalysisUsecase interface {
	// Analyze never fails because of the prediction service; it degrades instead.
	Analyze(ctx context.Context, caller *authz.Caller, req *dto.AnalysisRequest) (*dto.AnalysisResponse, error)
}

type analysisUsecase struct {
	client service.AnalysisClient
}

func NewAnalysisUsecase(client service.AnalysisClient) AnalysisUsecase {
	return &analysisUsecase{client: client}
}

func (u *analysisUsecase) Analyze(ctx context.Context, caller *authz.Caller, req *dto.AnalysisRequest) (*dto.AnalysisResponse, error) {
	if err := authz.Check(caller, authz.OpRunAnalysis, ""); err != nil {
		return nil, err
	}

	result := u.client.Analyze(ctx, converter.AnalysisRequestToParams(req))
	return converter.AnalysisResultToResponse(result), nil
}
