package converter

import (
	"health-records-service/internal/delivery/dto"
	"health-records-service/internal/service"
)

func AnalysisRequestToParams(req *dto.AnalysisRequest) service.HealthParams {
	return service.HealthParams{
		Age:                    req.Age,
		Gender:                 req.Gender,
		BMI:                    req.BMI,
		BloodPressureSystolic:  req.BloodPressureSystolic,
		BloodPressureDiastolic: req.BloodPressureDiastolic,
		CholesterolLevel:       req.CholesterolLevel,
		GlucoseLevel:           req.GlucoseLevel,
		HeartRate:              req.HeartRate,
		OxygenSaturation:       req.OxygenSaturation,
	}
}

func AnalysisResultToResponse(result *service.AnalysisResult) *dto.AnalysisResponse {
	if result == nil {
		return nil
	}

	p := result.Prediction
	return &dto.AnalysisResponse{
		Prediction: dto.PredictionResponse{
			DiseaseRisk:     p.DiseaseRisk,
			Diagnosis:       p.Diagnosis,
			ConfidenceScore: p.ConfidenceScore,
			PathwayScores:   p.PathwayScores,
			Recommendations: p.Recommendations,
			KeyFactors:      p.KeyFactors,
			HealthScore:     p.HealthScore,
		},
		Degraded: result.Degraded,
		Source:   result.Source,
	}
}
