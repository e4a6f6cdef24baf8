package server

import (
	"crypto/subtle"
	"errors"
	"image"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/zuzik/neuroscan/config"
	"github.com/zuzik/neuroscan/service"
)

var (
	errUnauthorized = errors.New("unauthorized")
)

func authenticate(c *gin.Context) error {
	auth := c.GetHeader("Authorization")

	expectedToken := config.C().Token
	if expectedToken == "" {
		return nil
	}
	providedToken := ""
	if len(auth) > 7 && auth[:7] == "Bearer " {
		providedToken = auth[7:]
	}
	if subtle.ConstantTimeCompare([]byte(providedToken), []byte(expectedToken)) != 1 {
		return errUnauthorized
	}

	return nil
}

type predictResponse struct {
	Class         string             `json:"class"`
	Confidence    float32            `json:"confidence"`
	Probabilities map[string]float32 `json:"probabilities"`
	Info          service.TumorInfo  `json:"info"`
}

func PredictHandler(c *gin.Context) {
	if err := authenticate(c); err != nil {
		c.JSON(401, gin.H{"error": "authentication failed"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "no file uploaded"})
		return
	}
	if limit := config.C().MaxUploadBytes; limit > 0 && fileHeader.Size > limit {
		c.JSON(400, gin.H{"error": "uploaded file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(400, gin.H{"error": "cannot open uploaded file"})
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		c.JSON(400, gin.H{"error": "cannot decode image, upload a JPEG or PNG brain MRI scan"})
		return
	}

	pred, err := service.Predict(img)
	if err != nil {
		slog.Error("Prediction failed", slog.String("error", err.Error()))
		c.JSON(500, gin.H{"error": "inference failed"})
		return
	}

	info, _ := service.Explain(pred.Class)
	c.JSON(200, predictResponse{
		Class:         pred.Class,
		Confidence:    pred.Confidence,
		Probabilities: pred.Probabilities,
		Info:          info,
	})
}

func HealthHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy"})
}

// LabelsHandler exposes the label order contract and model input size,
// plus the per-class educational text the UI renders.
func LabelsHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"labels":     service.Labels,
		"image_size": service.ImageSize,
		"info":       service.Explanations,
	})
}
