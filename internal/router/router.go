package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	ListTables(c *ginext.Context)
	SetTableAvailability(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", h.UpdateBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.DELETE("/bookings/:id", h.DeleteBooking)

		// Availability
		api.GET("/availability", h.CheckAvailability)

		// Tables
		api.GET("/tables", h.ListTables)
		api.PATCH("/tables/:id/availability", h.SetTableAvailability)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	return router
}
