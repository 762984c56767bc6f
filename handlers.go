package main

import (
	"net/http"
	"strconv"

	"tradeshot/models"

	"github.com/gin-gonic/gin"
)

func setupRoutes(r *gin.Engine) {
	r.GET("/healthz", healthHandler)
	r.GET("/records", listRecordsHandler)
	r.GET("/records/:id", getRecordHandler)
	r.GET("/summary", summaryHandler)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listRecordsHandler returns ledger rows, optionally filtered by batch
// date and status, newest first.
func listRecordsHandler(c *gin.Context) {
	q := db.Model(&models.Shot{}).Order("id DESC")
	if date := c.Query("date"); date != "" {
		q = q.Where("batch_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		switch status {
		case models.ShotStatusOK, models.ShotStatusRejected, models.ShotStatusFailed:
			q = q.Where("status = ?", status)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
	}
	limit := 200
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}
	var rows []models.Shot
	if err := q.Limit(limit).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func getRecordHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var row models.Shot
	if err := db.First(&row, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// summaryHandler reports per-status counts for one batch date (all dates
// when the date query is omitted).
func summaryHandler(c *gin.Context) {
	type bucket struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	q := db.Model(&models.Shot{})
	date := c.Query("date")
	if date != "" {
		q = q.Where("batch_date = ?", date)
	}
	var buckets []bucket
	if err := q.Select("status, count(*) as count").Group("status").Scan(&buckets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var total int64
	for _, b := range buckets {
		total += b.Count
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "total": total, "by_status": buckets})
}
