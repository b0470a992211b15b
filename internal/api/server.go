package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/tongmap/tong-api/docs"
	v1 "github.com/tongmap/tong-api/internal/api/handler/v1"
	"github.com/tongmap/tong-api/internal/api/middleware"
	"github.com/tongmap/tong-api/internal/config"
	"github.com/tongmap/tong-api/internal/geocoder"
	"github.com/tongmap/tong-api/internal/repository"
	"github.com/tongmap/tong-api/internal/repository/dao"
	"github.com/tongmap/tong-api/internal/service"
	"github.com/tongmap/tong-api/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	stallHandler := s.initStallHandler(db)
	reviewHandler := s.initReviewHandler(db)
	geocodeHandler := s.initGeocodeHandler()
	localeHandler := v1.NewLocaleHandler()
	s.MountHandlers(authHandler, userHandler, stallHandler, reviewHandler, geocodeHandler, localeHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initStallHandler(db *gorm.DB) *v1.StallHandler {
	repo := repository.NewStallRepository(dao.NewStallDAO(db), dao.NewReviewDAO(db))
	geo := geocoder.NewClient(s.Config.Geocoder.BaseURL, s.Config.Geocoder.UserAgent)
	store := storage.NewDiskStore(s.Config.Storage.RootDir, s.Config.Storage.PublicBaseURL)
	svc := service.NewStallService(repo, geo, store)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewStallHandler(svc, uSvc)

	return handler
}

func (s *Server) initReviewHandler(db *gorm.DB) *v1.ReviewHandler {
	repo := repository.NewReviewRepository(dao.NewReviewDAO(db))
	stallRepo := repository.NewStallRepository(dao.NewStallDAO(db), dao.NewReviewDAO(db))
	svc := service.NewReviewService(repo, stallRepo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewReviewHandler(svc, uSvc)

	return handler
}

func (s *Server) initGeocodeHandler() *v1.GeocodeHandler {
	geo := geocoder.NewClient(s.Config.Geocoder.BaseURL, s.Config.Geocoder.UserAgent)

	return v1.NewGeocodeHandler(geo)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	stallHandler *v1.StallHandler,
	reviewHandler *v1.ReviewHandler,
	geocodeHandler *v1.GeocodeHandler,
	localeHandler *v1.LocaleHandler,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	// Browsing works anonymously; a valid token widens visibility to
	// the caller's own pending submissions.
	public := s.Router.Group(basePath, authenticator.OptionalJWT())
	{
		public.GET("/stalls", stallHandler.HandleListStalls)
		public.GET("/stalls/:stallID", stallHandler.HandleGetStall)
		public.GET("/stalls/:stallID/reviews", reviewHandler.HandleGetReviews)
		public.GET("/divisions", localeHandler.HandleGetDivisions)
		public.GET("/translations/:lang", localeHandler.HandleGetTranslations)
		public.GET("/geocode/reverse", geocodeHandler.HandleReverseGeocode)
	}

	protected := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		protected.POST("/stalls", stallHandler.HandleCreateStall)
		protected.PATCH("/stalls/:stallID/status", stallHandler.HandleModerateStall)
		protected.POST("/stalls/:stallID/reviews", reviewHandler.HandleCreateReview)
		protected.POST("/stalls/:stallID/favorite", reviewHandler.HandleAddFavorite)
		protected.DELETE("/stalls/:stallID/favorite", reviewHandler.HandleRemoveFavorite)
		protected.POST("/stalls/:stallID/report", reviewHandler.HandleReportStall)
		protected.GET("/me/stalls", stallHandler.HandleListOwnStalls)
		protected.GET("/me/favorites", reviewHandler.HandleGetFavorites)
		protected.PUT("/me", userHandler.HandleUpdateProfile)
		protected.GET("/users/:userID", userHandler.HandleGetUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Uploaded stall photos are served straight off the blob store root.
	s.Router.Static("/uploads", s.Config.Storage.RootDir)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "TongMap API"
	docs.SwaggerInfo.Description = "Location discovery API for roadside tea stalls."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
