package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-records-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleParams = HealthParams{
	Age:                    45,
	Gender:                 "male",
	BMI:                    31,
	BloodPressureSystolic:  150,
	BloodPressureDiastolic: 95,
	CholesterolLevel:       210,
	GlucoseLevel:           90,
	HeartRate:              72,
	OxygenSaturation:       98,
}

func TestAnalyzeUsesRemotePrediction(t *testing.T) {
	var got HealthParams
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"prediction":{"disease_risk":"moderate","diagnosis":"hypertension","confidence_score":0.82,"pathway_scores":{"cardiovascular":0.7},"recommendations":["exercise"],"key_factors":["bp"],"health_score":64}}`))
	}))
	defer srv.Close()

	client := NewAnalysisClient(quietLogger(), config.AnalysisConfig{BaseURL: srv.URL + "/", Timeout: time.Second})
	res := client.Analyze(context.Background(), sampleParams)

	require.NotNil(t, res)
	assert.False(t, res.Degraded)
	assert.Equal(t, AnalysisSourceRemote, res.Source)
	assert.Equal(t, "hypertension", res.Prediction.Diagnosis)
	assert.Equal(t, 0.82, res.Prediction.ConfidenceScore)
	assert.Equal(t, sampleParams, got)
}

func TestAnalyzeFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"reported failure", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false}`))
		}},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}},
		{"timeout", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewAnalysisClient(quietLogger(), config.AnalysisConfig{BaseURL: srv.URL, Timeout: 100 * time.Millisecond})
			res := client.Analyze(context.Background(), sampleParams)

			require.NotNil(t, res)
			assert.True(t, res.Degraded)
			assert.Equal(t, AnalysisSourceFallback, res.Source)
			assert.Equal(t, FallbackAnalysis(sampleParams), res)
		})
	}
}

func TestAnalyzeWithoutBaseURLIsLocal(t *testing.T) {
	client := NewAnalysisClient(quietLogger(), config.AnalysisConfig{})
	res := client.Analyze(context.Background(), HealthParams{})
	assert.True(t, res.Degraded)
	assert.Equal(t, "low", res.Prediction.DiseaseRisk)
	assert.Equal(t, float64(100), res.Prediction.HealthScore)
	assert.Empty(t, res.Prediction.KeyFactors)
}

func TestFallbackAnalysisScoresRiskFactors(t *testing.T) {
	res := FallbackAnalysis(sampleParams)

	assert.Equal(t, "high", res.Prediction.DiseaseRisk)
	assert.Contains(t, res.Prediction.KeyFactors, "high blood pressure")
	assert.Contains(t, res.Prediction.KeyFactors, "obesity")
	assert.NotContains(t, res.Prediction.KeyFactors, "high glucose")
	assert.Equal(t, 0.65, res.Prediction.PathwayScores["cardiovascular"])
	assert.Less(t, res.Prediction.HealthScore, float64(100))
}
