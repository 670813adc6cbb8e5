package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/auth"
	"storefront/internal/cache"
	"storefront/internal/config"
	apperrors "storefront/internal/errors"
	"storefront/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	cacheClient *cache.Client,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Request DTO validation is the single validation layer; models carry
	// no duplicate rules.
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status": "ok",
			"redis":  cacheClient.Ping(c.Request().Context()),
		})
	})

	if cfg.SwaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// Public routes
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)

	// Secured routes (require a valid, unrevoked session token)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &auth.Claims{}
		},
	}), revokedSessionGuard(tokenStore))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/auth/me", authHandler.Me)

	// Admin status is enforced in the catalog service from the claims.
	secured.POST("/products", productHandler.Create)
	secured.PUT("/products/:id", productHandler.Update)
	secured.DELETE("/products/:id", productHandler.Delete)

	secured.GET("/cart", cartHandler.GetCart)
	secured.POST("/cart", cartHandler.AddItem)
	secured.PATCH("/cart", cartHandler.UpdateItem)
	secured.DELETE("/cart", cartHandler.RemoveOrClear)
}

// revokedSessionGuard rejects tokens whose JTI was denylisted by logout.
func revokedSessionGuard(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return unauthorized()
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return unauthorized()
			}
			if claims.ID != "" {
				revoked, _ := tokenStore.IsSessionRevoked(c.Request().Context(), claims.ID)
				if revoked {
					return unauthorized()
				}
			}
			return next(c)
		}
	}
}

func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: apperrors.ErrInvalidSession.Error(),
		Code:  "INVALID_SESSION",
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
