package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	domain "user-account-api/internal/domain/user"
	userDB "user-account-api/internal/infrastructure/db/postgres/user"
	"user-account-api/internal/infrastructure/jwt"
	"user-account-api/internal/interface/api/rest/dto/user"
	"user-account-api/internal/interface/api/rest/middleware"
	"user-account-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.POST(RouteUsers, uc.RegisterUserHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.GET(RouteUsers, middleware.AuthMiddleware(jwtService), uc.GetUserByUniqueFieldHandler)

	return uc
}

func (uc *UserController) RegisterUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUser(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	uCreate, err := user.ToDomainUserCreate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.RegisterUser(c.Request.Context(), uCreate)
	if err != nil {
		if errors.Is(err, userDB.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		uc.logger.Error("RegisterUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("user_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	spec, err := domain.NewIdSpecification(id)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), spec)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

// GetUserByUniqueFieldHandler resolves a user by exactly one of the unique
// columns, username or email.
func (uc *UserController) GetUserByUniqueFieldHandler(c *gin.Context) {
	username := c.Query("username")
	email := c.Query("email")
	if (username == "") == (email == "") {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "exactly one of username or email is required"},
		)
		return
	}

	var (
		u   *domain.User
		err error
	)
	if username != "" {
		spec, sErr := domain.NewUsernameSpecification(username)
		if sErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": sErr.Error()})
			return
		}
		u, err = uc.userService.FindByUsername(c.Request.Context(), spec)
	} else {
		spec, sErr := domain.NewEmailSpecification(email)
		if sErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": sErr.Error()})
			return
		}
		u, err = uc.userService.FindByEmail(c.Request.Context(), spec)
	}
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("unique field lookup error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}
