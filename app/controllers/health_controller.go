package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/dto"
	"github.com/jaiswaranil8387/itsm-ticket-management/global"

	"gorm.io/gorm"
)

type HealthController struct{ DB *gorm.DB }

func NewHealthController(db *gorm.DB) *HealthController { return &HealthController{DB: db} }

// Check pings the database. No session required.
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sqlDB, err := c.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		global.Logger.Error().
			Str("event", "health_check_failed").
			Err(err).
			Msg("health check failed")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(dto.HealthResponse{Status: "unhealthy", Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(dto.HealthResponse{Status: "healthy", Database: "connected"})
}
