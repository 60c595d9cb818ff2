package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/pkg/metrics"
	md "github.com/Astemirdum/shareit/pkg/middleware"
	"github.com/Astemirdum/shareit/pkg/validate"
)

type Handler struct {
	userSvc    UserService
	itemSvc    ItemService
	bookingSvc BookingService
	requestSvc RequestService
	log        *zap.Logger
}

func New(userSvc UserService, itemSvc ItemService, bookingSvc BookingService, requestSvc RequestService, log *zap.Logger) *Handler {
	return &Handler{
		userSvc:    userSvc,
		itemSvc:    itemSvc,
		bookingSvc: bookingSvc,
		requestSvc: requestSvc,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 200
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, md.XSharerUserID},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", metrics.Handler())

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		metrics.Middleware("server"),
	)

	users := api.Group("/users")
	users.POST("", h.CreateUser)
	users.GET("", h.ListUsers)
	users.GET("/:userId", h.GetUser)
	users.PATCH("/:userId", h.UpdateUser)
	users.DELETE("/:userId", h.DeleteUser)

	items := api.Group("/items")
	items.GET("/search", h.SearchItems)
	items.POST("", h.CreateItem, md.SharerUserID)
	items.GET("", h.ListOwnerItems, md.SharerUserID)
	items.GET("/:itemId", h.GetItem, md.SharerUserID)
	items.PATCH("/:itemId", h.UpdateItem, md.SharerUserID)
	items.DELETE("/:itemId", h.DeleteItem, md.SharerUserID)
	items.POST("/:itemId/comment", h.AddComment, md.SharerUserID)

	bookings := api.Group("/bookings", md.SharerUserID)
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookerBookings)
	bookings.GET("/owner", h.ListOwnerBookings)
	bookings.GET("/:bookingId", h.GetBooking)
	bookings.PATCH("/:bookingId", h.DecideBooking)
	bookings.PATCH("/:bookingId/cancel", h.CancelBooking)

	requests := api.Group("/requests", md.SharerUserID)
	requests.POST("", h.CreateRequest)
	requests.GET("", h.ListOwnRequests)
	requests.GET("/all", h.ListOtherRequests)
	requests.GET("/:requestId", h.GetRequest)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
