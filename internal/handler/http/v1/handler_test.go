package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/campus_cleanliness_system/internal/config"
	"github.com/shenikar/campus_cleanliness_system/internal/models"
	"github.com/shenikar/campus_cleanliness_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T, storeAvailable bool) (*mocks.MockDetectionService, *mocks.MockReportService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockDetection := mocks.NewMockDetectionService(ctrl)
	mockReport := mocks.NewMockReportService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		MongoDBName: "CampusCleanlinessDB",
	}

	handler := NewHandler(mockDetection, mockReport, logger, cfg, storeAvailable)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware())
	handler.RegisterRoutes(router)

	return mockDetection, mockReport, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// makeUploadRequest собирает multipart-форму загрузки снимка
func makeUploadRequest(router *gin.Engine, withImage bool, locationID string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if withImage {
		part, _ := writer.CreateFormFile("image", "evidence.jpg")
		_, _ = part.Write([]byte("fake jpeg bytes"))
	}
	if locationID != "" {
		_ = writer.WriteField("location_id", locationID)
	}
	writer.Close()

	return makeRequest(router, "POST", "/api/detect_and_report", body, writer.FormDataContentType())
}

func TestHome_StoreConnected(t *testing.T) {
	_, _, router := newTestHandler(t, true)

	w := makeRequest(router, "GET", "/", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Campus Cleanliness Monitoring API is running")
	assert.Contains(t, w.Body.String(), "store: connected")
}

func TestHome_StoreUnavailable(t *testing.T) {
	_, _, router := newTestHandler(t, false)

	w := makeRequest(router, "GET", "/", nil, "")

	// Деградированный режим не превращается в ошибку health-строки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "store: unavailable")
}

func TestDetectAndReport_Success(t *testing.T) {
	mockDetection, _, router := newTestHandler(t, true)
	outcome := &models.DetectionOutcome{
		IncidentID:    "665f1c0a9d3e2a0001a1b2c3",
		Location:      "Main Quad",
		DetectionType: "Overflowing Bin",
		Confidence:    96.4,
		IsAlert:       true,
	}

	mockDetection.EXPECT().
		DetectAndReport(gomock.Any(), gomock.Any(), "Main Quad").
		Return(outcome, nil).
		Times(1)

	w := makeUploadRequest(router, true, "Main Quad")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp DetectResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.IncidentID)
	assert.Equal(t, "665f1c0a9d3e2a0001a1b2c3", *resp.IncidentID)
	assert.Equal(t, "Overflowing Bin", resp.DetectionType)
	assert.Equal(t, 96.4, resp.Confidence)
	assert.True(t, resp.IsAlert)
}

func TestDetectAndReport_NotPersisted_NullIncidentID(t *testing.T) {
	mockDetection, _, router := newTestHandler(t, false)
	outcome := &models.DetectionOutcome{
		IncidentID:    "",
		Location:      "Unknown Zone",
		DetectionType: "Litter Detected",
		Confidence:    87.1,
		IsAlert:       false,
	}

	mockDetection.EXPECT().
		DetectAndReport(gomock.Any(), gomock.Any(), "").
		Return(outcome, nil).
		Times(1)

	w := makeUploadRequest(router, true, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	// Несохраненный инцидент отдается с incident_id = null
	assert.Contains(t, w.Body.String(), `"incident_id":null`)
}

func TestDetectAndReport_MissingImage(t *testing.T) {
	mockDetection, _, router := newTestHandler(t, true)

	mockDetection.EXPECT().DetectAndReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeUploadRequest(router, false, "Main Quad")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "No image file provided", resp.Message)
}

func TestDetectAndReport_LocationTooLong(t *testing.T) {
	mockDetection, _, router := newTestHandler(t, true)

	mockDetection.EXPECT().DetectAndReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeUploadRequest(router, true, strings.Repeat("x", 200))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'LocationID' failed on the 'max' tag")
}

func TestDetectAndReport_ServiceError(t *testing.T) {
	mockDetection, _, router := newTestHandler(t, true)
	serviceError := errors.New("inference failed")

	mockDetection.EXPECT().
		DetectAndReport(gomock.Any(), gomock.Any(), "Main Quad").
		Return(nil, serviceError).
		Times(1)

	w := makeUploadRequest(router, true, "Main Quad")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "inference failed")
}

func TestGetReports_Success(t *testing.T) {
	_, mockReport, router := newTestHandler(t, true)
	report := &models.Report{
		GeneratedAt: time.Now(),
		Summary: models.ReportSummary{
			TotalDetections: 7,
			TotalAlerts:     3,
			AvgConfidence:   "91.4%",
		},
		DetectionTypes: map[string]int{"Graffiti": 3, "Litter Detected": 4},
		HourlyData:     make([]int, 24),
		HeatmapData: []models.HeatmapEntry{
			{Location: "Main Quad", Score: 85},
		},
	}

	mockReport.EXPECT().BuildReport(gomock.Any()).Return(report, nil).Times(1)

	w := makeRequest(router, "GET", "/api/get_reports", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Summary.TotalDetections)
	assert.Equal(t, 3, resp.Summary.TotalAlerts)
	assert.Equal(t, "91.4%", resp.Summary.AvgConfidence)
	assert.Equal(t, 3, resp.DetectionTypes["Graffiti"])
	assert.Len(t, resp.HourlyData, 24)
	require.Len(t, resp.HeatmapData, 1)
	assert.Equal(t, "Main Quad", resp.HeatmapData[0].Location)
	assert.Equal(t, 85, resp.HeatmapData[0].Score)
}

func TestGetReports_ServiceError(t *testing.T) {
	_, mockReport, router := newTestHandler(t, true)
	serviceError := errors.New("aggregation failed")

	mockReport.EXPECT().BuildReport(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/get_reports", nil, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	_, _, router := newTestHandler(t, true)

	w := makeRequest(router, "OPTIONS", "/api/get_reports", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
