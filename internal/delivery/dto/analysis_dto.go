package dto

// Request DTOs

type AnalysisRequest struct {
	Age                    float64 `json:"age" validate:"gte=0,lte=150"`
	Gender                 string  `json:"gender" validate:"omitempty,oneof=male female other"`
	BMI                    float64 `json:"bmi" validate:"gte=0,lte=100"`
	BloodPressureSystolic  float64 `json:"blood_pressure_systolic" validate:"gte=0,lte=300"`
	BloodPressureDiastolic float64 `json:"blood_pressure_diastolic" validate:"gte=0,lte=200"`
	CholesterolLevel       float64 `json:"cholesterol_level" validate:"gte=0,lte=1000"`
	GlucoseLevel           float64 `json:"glucose_level" validate:"gte=0,lte=1000"`
	HeartRate              float64 `json:"heart_rate" validate:"gte=0,lte=300"`
	OxygenSaturation       float64 `json:"oxygen_saturation" validate:"gte=0,lte=100"`
}

// Response DTOs

type PredictionResponse struct {
	DiseaseRisk     string             `json:"disease_risk"`
	Diagnosis       string             `json:"diagnosis"`
	ConfidenceScore float64            `json:"confidence_score"`
	PathwayScores   map[string]float64 `json:"pathway_scores"`
	Recommendations []string           `json:"recommendations"`
	KeyFactors      []string           `json:"key_factors"`
	HealthScore     float64            `json:"health_score"`
}

type AnalysisResponse struct {
	Prediction PredictionResponse `json:"prediction"`
	Degraded   bool               `json:"degraded"`
	Source     string             `json:"source"`
}
