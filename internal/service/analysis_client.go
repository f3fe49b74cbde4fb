package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"health-records-service/config"

	"github.com/sirupsen/logrus"
)

const (
	AnalysisSourceRemote   = "remote"
	AnalysisSourceFallback = "local-fallback"

	maxPredictResponseBytes = 1 << 20
)

// HealthParams are the measurements sent for a risk prediction.
type HealthParams struct {
	Age                    float64 `json:"age"`
	Gender                 string  `json:"gender"`
	BMI                    float64 `json:"bmi"`
	BloodPressureSystolic  float64 `json:"blood_pressure_systolic"`
	BloodPressureDiastolic float64 `json:"blood_pressure_diastolic"`
	CholesterolLevel       float64 `json:"cholesterol_level"`
	GlucoseLevel           float64 `json:"glucose_level"`
	HeartRate              float64 `json:"heart_rate"`
	OxygenSaturation       float64 `json:"oxygen_saturation"`
}

type Prediction struct {
	DiseaseRisk     string             `json:"disease_risk"`
	Diagnosis       string             `json:"diagnosis"`
	ConfidenceScore float64            `json:"confidence_score"`
	PathwayScores   map[string]float64 `json:"pathway_scores"`
	Recommendations []string           `json:"recommendations"`
	KeyFactors      []string           `json:"key_factors"`
	HealthScore     float64            `json:"health_score"`
}

// AnalysisResult is always returned to the caller. Degraded marks a result
// computed locally because the prediction service could not be used.
type AnalysisResult struct {
	Prediction Prediction `json:"prediction"`
	Degraded   bool       `json:"degraded"`
	Source     string     `json:"source"`
}

type AnalysisClient interface {
	Analyze(ctx context.Context, params HealthParams) *AnalysisResult
}

type predictResponse struct {
	Success    bool        `json:"success"`
	Prediction *Prediction `json:"prediction"`
}

type httpAnalysisClient struct {
	log        *logrus.Logger
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewAnalysisClient(log *logrus.Logger, cfg config.AnalysisConfig) AnalysisClient {
	return &httpAnalysisClient{
		log:        log,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
	}
}

func (c *httpAnalysisClient) Analyze(ctx context.Context, params HealthParams) *AnalysisResult {
	if c.baseURL == "" {
		return FallbackAnalysis(params)
	}

	prediction, err := c.predict(ctx, params)
	if err != nil {
		c.log.Warnf("Analysis service unavailable, using local fallback: %+v", err)
		return FallbackAnalysis(params)
	}

	return &AnalysisResult{
		Prediction: *prediction,
		Source:     AnalysisSourceRemote,
	}
}

func (c *httpAnalysisClient) predict(ctx context.Context, params HealthParams) (*Prediction, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("predict returned status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPredictResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode predict response: %w", err)
	}
	if !out.Success || out.Prediction == nil {
		return nil, fmt.Errorf("predict reported failure")
	}

	return out.Prediction, nil
}

// FallbackAnalysis scores params with fixed clinical thresholds. It is
// deterministic and needs no network.
func FallbackAnalysis(p HealthParams) *AnalysisResult {
	var (
		factors         []string
		recommendations []string
		cardio          float64
		metabolic       float64
		respiratory     float64
	)

	flag := func(factor, advice string) {
		factors = append(factors, factor)
		recommendations = append(recommendations, advice)
	}

	if p.BloodPressureSystolic >= 140 || p.BloodPressureDiastolic >= 90 {
		cardio += 0.4
		flag("high blood pressure", "Monitor blood pressure regularly and reduce salt intake")
	} else if p.BloodPressureSystolic >= 130 || p.BloodPressureDiastolic >= 80 {
		cardio += 0.2
		flag("elevated blood pressure", "Recheck blood pressure within a month")
	}
	if p.CholesterolLevel >= 240 {
		cardio += 0.3
		flag("high cholesterol", "Discuss a lipid panel with your doctor")
	} else if p.CholesterolLevel >= 200 {
		cardio += 0.15
		flag("borderline cholesterol", "Limit saturated fats")
	}
	if p.HeartRate > 100 || (p.HeartRate > 0 && p.HeartRate < 50) {
		cardio += 0.2
		flag("abnormal heart rate", "Have your resting heart rate checked")
	}
	if p.GlucoseLevel >= 126 {
		metabolic += 0.5
		flag("high glucose", "Get tested for diabetes")
	} else if p.GlucoseLevel >= 100 {
		metabolic += 0.25
		flag("elevated glucose", "Reduce refined sugar intake")
	}
	if p.BMI >= 30 {
		metabolic += 0.3
		cardio += 0.1
		flag("obesity", "Aim for gradual weight loss with diet and exercise")
	} else if p.BMI >= 25 {
		metabolic += 0.15
		flag("overweight", "Increase daily physical activity")
	} else if p.BMI > 0 && p.BMI < 18.5 {
		metabolic += 0.1
		flag("underweight", "Consult a nutritionist")
	}
	if p.OxygenSaturation > 0 && p.OxygenSaturation < 92 {
		respiratory += 0.6
		flag("low oxygen saturation", "Seek medical attention for low oxygen levels")
	} else if p.OxygenSaturation > 0 && p.OxygenSaturation < 95 {
		respiratory += 0.3
		flag("reduced oxygen saturation", "Monitor oxygen saturation")
	}
	if p.Age >= 60 {
		cardio += 0.1
		metabolic += 0.1
		factors = append(factors, "age")
	}

	pathways := map[string]float64{
		"cardiovascular": round2(math.Min(cardio, 1)),
		"metabolic":      round2(math.Min(metabolic, 1)),
		"respiratory":    round2(math.Min(respiratory, 1)),
	}
	worst := math.Max(pathways["cardiovascular"], math.Max(pathways["metabolic"], pathways["respiratory"]))
	score := round2(math.Max(0, 100-100*(pathways["cardiovascular"]+pathways["metabolic"]+pathways["respiratory"])/3))

	risk, diagnosis := "low", "No significant risk factors detected"
	switch {
	case worst >= 0.6:
		risk, diagnosis = "high", "Multiple risk factors detected"
	case worst >= 0.3:
		risk, diagnosis = "moderate", "Some risk factors detected"
	}

	if len(recommendations) == 0 {
		recommendations = []string{"Maintain a balanced diet and regular exercise"}
	}
	if factors == nil {
		factors = []string{}
	}

	return &AnalysisResult{
		Prediction: Prediction{
			DiseaseRisk:     risk,
			Diagnosis:       diagnosis,
			ConfidenceScore: 0.5,
			PathwayScores:   pathways,
			Recommendations: recommendations,
			KeyFactors:      factors,
			HealthScore:     score,
		},
		Degraded: true,
		Source:   AnalysisSourceFallback,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
