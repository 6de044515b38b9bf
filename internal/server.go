package catfoodtracker

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/RaoulHolzer/cat-food-tracker/internal/config"
	"github.com/RaoulHolzer/cat-food-tracker/internal/models"
	"github.com/RaoulHolzer/cat-food-tracker/internal/myerrors"
	"github.com/RaoulHolzer/cat-food-tracker/internal/services"
	"github.com/RaoulHolzer/cat-food-tracker/web"
	"github.com/gin-gonic/gin"
)

const SessionCookieName = "cat_tracker_session"

var Endpoints = struct {
	Login      string
	Logout     string
	AuthStatus string

	CatCreate string
	CatGetAll string
	CatDelete string

	FeedingCreate string
	FeedingDelete string

	PurchaseCreate string
	PurchaseGetAll string
	PurchaseDelete string

	LoginPage string
	AppPage   string
	Health    string
}{
	Login:      "/api/login",
	Logout:     "/api/logout",
	AuthStatus: "/api/auth/status",

	CatCreate: "/api/cats",
	CatGetAll: "/api/cats",
	CatDelete: "/api/cats/:id",

	FeedingCreate: "/api/feedings",
	FeedingDelete: "/api/feedings/:id",

	PurchaseCreate: "/api/can-purchases",
	PurchaseGetAll: "/api/can-purchases",
	PurchaseDelete: "/api/can-purchases/:id",

	LoginPage: "/",
	AppPage:   "/app",
	Health:    "/health",
}

type Server struct {
	router          *gin.Engine
	httpServer      *http.Server
	authService     services.AuthService
	catService      services.CatService
	feedingService  services.FeedingService
	purchaseService services.CanPurchaseService
	sessionTTL      time.Duration
	port            string
}

func NewServer(cfg *config.Config, authService services.AuthService, catService services.CatService,
	feedingService services.FeedingService, purchaseService services.CanPurchaseService) *Server {
	router := gin.Default()

	server := &Server{
		router:          router,
		authService:     authService,
		catService:      catService,
		feedingService:  feedingService,
		purchaseService: purchaseService,
		sessionTTL:      cfg.SessionTTL,
		port:            cfg.Port,
	}

	auth := server.requireAuth()

	router.POST(Endpoints.Login, server.handleLogin)
	router.POST(Endpoints.Logout, server.handleLogout)
	router.GET(Endpoints.AuthStatus, server.handleAuthStatus)

	router.GET(Endpoints.CatGetAll, auth, server.handleGetAllCats)
	router.POST(Endpoints.CatCreate, auth, server.handleAddCat)
	router.DELETE(Endpoints.CatDelete, auth, server.handleDeleteCat)

	router.POST(Endpoints.FeedingCreate, auth, server.handleAddFeeding)
	router.DELETE(Endpoints.FeedingDelete, auth, server.handleDeleteFeeding)

	router.GET(Endpoints.PurchaseGetAll, auth, server.handleGetAllPurchases)
	router.POST(Endpoints.PurchaseCreate, auth, server.handleAddPurchase)
	router.DELETE(Endpoints.PurchaseDelete, auth, server.handleDeletePurchase)

	router.GET(Endpoints.LoginPage, server.handleLoginPage)
	router.GET(Endpoints.AppPage, server.handleAppPage)
	router.StaticFS("/static", web.Static())
	router.GET(Endpoints.Health, server.handleHealth)

	return server
}

// requireAuth rejects requests without a valid session cookie before any
// handler runs. A missing session and an expired one look the same.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(SessionCookieName)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Nicht authentifiziert"})
			return
		}
		session, ok := s.authService.Authenticate(token)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Nicht authentifiziert"})
			return
		}
		ctx.Set("username", session.Username)
		ctx.Next()
	}
}

func (s *Server) handleLogin(ctx *gin.Context) {
	var creds models.Credentials
	if err := ctx.BindJSON(&creds); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	session, err := s.authService.Login(creds.Username, creds.Password)
	if err != nil {
		s.respondError(ctx, err)
		return
	}

	ctx.SetCookie(SessionCookieName, session.Token, int(s.sessionTTL.Seconds()), "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": session.Username,
	})
}

func (s *Server) handleLogout(ctx *gin.Context) {
	token, _ := ctx.Cookie(SessionCookieName)
	if err := s.authService.Logout(token); err != nil {
		s.respondError(ctx, err)
		return
	}

	ctx.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleAuthStatus(ctx *gin.Context) {
	token, err := ctx.Cookie(SessionCookieName)
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	session, ok := s.authService.Authenticate(token)
	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"username":      session.Username,
	})
}

func (s *Server) handleGetAllCats(ctx *gin.Context) {
	cats, err := s.catService.GetAll(ctx)
	if err != nil {
		s.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"cats": cats})
}

func (s *Server) handleAddCat(ctx *gin.Context) {
	var newCat models.NewCat
	if err := ctx.BindJSON(&newCat); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	cat, err := s.catService.Add(ctx, newCat)
	if err != nil {
		s.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"id":       cat.Id,
		"name":     cat.Name,
		"feedings": cat.Feedings,
	})
}

func (s *Server) handleDeleteCat(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Ungültige ID",
		})
		return
	}

	changes, err := s.catService.DeleteById(ctx, id)
	if err != nil {
		s.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Katze gelöscht",
		"changes": changes,
	})
}

func (s *Server) handleAddFeeding(ctx *gin.Context) {
	var newFeeding models.NewFeeding
	if err := ctx.BindJSON(&newFeeding); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	feeding, err := s.feedingService.Add(ctx, newFeeding)
	if err != nil {
		s.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feeding)
}

func (s *Server) handleDeleteFeeding(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Ungültige ID",
		})
		return
	}

	changes, err := s.feedingService.DeleteById(ctx, id)
	if err != nil {
		s.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Fütterung gelöscht",
		"changes": changes,
	})
}

func (s *Server) handleGetAllPurchases(ctx *gin.Context) {
	purchases, err := s.purchaseService.GetAll(ctx)
	if err != nil {
		s.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"purchases": purchases})
}

func (s *Server) handleAddPurchase(ctx *gin.Context) {
	var newPurchase models.NewCanPurchase
	if err := ctx.BindJSON(&newPurchase); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	purchase, err := s.purchaseService.Add(ctx, newPurchase)
	if err != nil {
		s.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, purchase)
}

func (s *Server) handleDeletePurchase(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Ungültige ID",
		})
		return
	}

	changes, err := s.purchaseService.DeleteById(ctx, id)
	if err != nil {
		s.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Dosenkauf gelöscht",
		"changes": changes,
	})
}

func (s *Server) handleLoginPage(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", web.LoginPage)
}

// handleAppPage serves the page unconditionally; the page itself checks
// /api/auth/status and bounces back to the login page.
func (s *Server) handleAppPage(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", web.AppPage)
}

func (s *Server) handleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"go":     runtime.Version(),
		"port":   s.port,
		"env":    gin.Mode(),
	})
}

func (s *Server) respondError(ctx *gin.Context, err error) {
	var reqErr *myerrors.RequestError
	if errors.As(err, &reqErr) {
		ctx.JSON(statusOf(reqErr.Kind), gin.H{"error": reqErr.Message})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func statusOf(kind myerrors.Kind) int {
	switch kind {
	case myerrors.KindUnauthorized:
		return http.StatusUnauthorized
	case myerrors.KindInternal:
		return http.StatusInternalServerError
	default:
		// conflicts go out as 400 like plain validation failures
		return http.StatusBadRequest
	}
}

func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Handler() http.Handler {
	return s.router
}
