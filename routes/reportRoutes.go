package routes

import (
	"safereport-be/controllers"
	"safereport-be/middlewares"

	"github.com/gin-gonic/gin"
)

// ReportRoutes sets up the report resource routes. The stats route is
// registered before /:id so gin does not treat "stats" as a report id.
// Extra middleware (the Redis submission limiter) applies to create
// only; everything else is a pure read or an inspector update.
func ReportRoutes(r *gin.Engine, rc *controllers.ReportController, submitMiddleware ...gin.HandlerFunc) {
	report := r.Group("/reports")
	{
		createChain := append([]gin.HandlerFunc{middlewares.OptionalAuth()}, submitMiddleware...)
		report.POST("", append(createChain, rc.CreateReport)...)
		report.GET("", rc.ListReports)
		report.GET("/stats", rc.GetReportStats)
		report.GET("/:id", rc.GetReport)
		report.PATCH("/:id", rc.UpdateReport)
	}
}
