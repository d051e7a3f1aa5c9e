// routes.go
//
// Residential society management data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of samuday.
// samuday is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// samuday is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with samuday.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package routes mounts the society API on a fiber app
package routes

import (
	"errors"
	"log"
	"time"

	"github.com/digisamuday/samuday/internal/config"
	"github.com/digisamuday/samuday/internal/handlers"
	"github.com/digisamuday/samuday/internal/middleware"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/types"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register mounts every /api route and the trailing 404 handler.
// Routes registered on app after this call are unreachable.
func Register(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	api := app.Group("/api", middleware.VersionMiddleware(), middleware.Authenticate(db))

	authenticated := middleware.Require(policy.IsAuthenticated)

	authHandler := &handlers.AuthHandler{DB: db, BcryptCost: cfg.BcryptCost}
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}

	// Public routes
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/health", healthHandler.Check)

	// Session routes
	api.Post("/logout", authenticated, authHandler.Logout)
	api.Get("/user-profile", authenticated, authHandler.Profile)
	api.Patch("/update-profile", authenticated, authHandler.UpdateProfile)

	residentHandler := &handlers.ResidentHandler{DB: db, BcryptCost: cfg.BcryptCost}
	residents := api.Group("/residents", middleware.Require(policy.IsAdmin))
	residents.Get("/", residentHandler.List)
	residents.Post("/", residentHandler.Create)
	residents.Get("/:id", residentHandler.Get)
	residents.Put("/:id", residentHandler.Update)
	residents.Patch("/:id", residentHandler.Update)
	residents.Delete("/:id", residentHandler.Delete)

	visitorHandler := &handlers.VisitorHandler{DB: db}
	visitors := api.Group("/visitors", middleware.Require(policy.IsSecurity))
	visitors.Get("/", visitorHandler.List)
	visitors.Post("/", visitorHandler.LogEntry)
	visitors.Get("/:id", visitorHandler.Get)
	visitors.Put("/:id", visitorHandler.Update)
	visitors.Patch("/:id", visitorHandler.Update)
	visitors.Delete("/:id", visitorHandler.Delete)

	complaintHandler := &handlers.ComplaintHandler{DB: db}
	complaints := api.Group("/complaints", authenticated)
	complaints.Get("/", complaintHandler.List)
	complaints.Post("/", complaintHandler.Create)
	complaints.Get("/:id", complaintHandler.Get)
	complaints.Put("/:id", complaintHandler.Update)
	complaints.Patch("/:id", complaintHandler.Update)
	complaints.Delete("/:id", complaintHandler.Delete)
	complaints.Patch("/:id/update-status", complaintHandler.UpdateStatus)
	complaints.Patch("/:id/update_status", complaintHandler.UpdateStatus)

	paymentHandler := &handlers.PaymentHandler{DB: db}
	payments := api.Group("/payments", authenticated)
	payments.Get("/", paymentHandler.List)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/:id", paymentHandler.Get)
	payments.Put("/:id", paymentHandler.Update)
	payments.Patch("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)
	payments.Patch("/:id/approve_payment", paymentHandler.Approve)

	facilityHandler := &handlers.FacilityHandler{DB: db}
	facilities := api.Group("/facilities", authenticated)
	facilities.Get("/", facilityHandler.List)
	facilities.Post("/", facilityHandler.Create)
	facilities.Get("/:id", facilityHandler.Get)
	facilities.Put("/:id", facilityHandler.Update)
	facilities.Patch("/:id", facilityHandler.Update)
	facilities.Delete("/:id", facilityHandler.Delete)

	bookingHandler := &handlers.BookingHandler{DB: db}
	bookings := api.Group("/facility-bookings", authenticated)
	bookings.Get("/", bookingHandler.List)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/:id", bookingHandler.Get)
	bookings.Put("/:id", bookingHandler.Update)
	bookings.Patch("/:id", bookingHandler.Update)
	bookings.Delete("/:id", bookingHandler.Delete)
	bookings.Patch("/:id/approve", bookingHandler.Approve)
	bookings.Patch("/:id/reject", bookingHandler.Reject)

	noticeHandler := &handlers.NoticeHandler{DB: db}
	notices := api.Group("/notices", authenticated)
	notices.Get("/", noticeHandler.List)
	notices.Post("/", noticeHandler.Create)
	notices.Get("/:id", noticeHandler.Get)
	notices.Put("/:id", noticeHandler.Update)
	notices.Patch("/:id", noticeHandler.Update)
	notices.Delete("/:id", noticeHandler.Delete)

	logHandler := &handlers.SecurityLogHandler{DB: db}
	logs := api.Group("/security-logs", authenticated)
	logs.Get("/", logHandler.List)
	logs.Get("/:id", logHandler.Get)
	logs.Patch("/:id/checkout", logHandler.Checkout)

	reportHandler := &handlers.ReportHandler{DB: db}
	api.Get("/reports/:type", middleware.Require(policy.IsAdmin), reportHandler.Generate)

	activityHandler := &handlers.ActivityHandler{DB: db}
	api.Get("/activity", middleware.Require(policy.IsAdmin), activityHandler.List)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})
}

// ErrorHandler renders errors returned by middleware and handlers in the API error envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ce *types.CustomError
	if errors.As(err, &ce) {
		return utils.HandleError(c, ce)
	}

	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorType := "unknown"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("%s %s failed: %v", c.Method(), c.OriginalURL(), err)
	}

	return utils.ErrorResponse(c, message, code, errorType)
}
