package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"petgallery/internal/config"
	"petgallery/internal/domain/models"
	"petgallery/internal/game"
	"petgallery/internal/lib/logger/sl"
	gallerysvc "petgallery/internal/services/gallery_service"
	guesssvc "petgallery/internal/services/guess_service"
	usersvc "petgallery/internal/services/user_service"
	"petgallery/internal/transport/http/dto"
	"petgallery/internal/transport/http/dto/request"
	"petgallery/internal/transport/http/dto/response"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type FeedService interface {
	Page(ctx context.Context, offset, limit int) (*models.FeedPage, error)
}

type NamesService interface {
	Names(ctx context.Context) ([]string, error)
}

type GalleryService interface {
	CreateItem(ctx context.Context, userID uuid.UUID, req dto.GenerateRequest) (uuid.UUID, error)
}

type GuessService interface {
	OpenSession(ctx context.Context, userID, itemID uuid.UUID) (*dto.GuessOptionsResponse, error)
	SubmitGuess(ctx context.Context, userID, itemID uuid.UUID, guessedName string) (*dto.GuessResultResponse, error)
	Stats(ctx context.Context, userID uuid.UUID) (models.UserStats, error)
}

type UserService interface {
	Login(ctx context.Context, identifier, password string) (*models.TokenPair, error)
	RegisterNewUser(ctx context.Context, input dto.UserRegisterInput) (uuid.UUID, error)
}

type AuthService interface {
	RefreshTokens(refreshToken string) (*models.TokenPair, error)
}

type Routers struct {
	log            *slog.Logger
	feedCfg        config.FeedConfig
	FeedService    FeedService
	NamesService   NamesService
	GalleryService GalleryService
	GuessService   GuessService
	UserService    UserService
	AuthService    AuthService
}

func NewRouter(
	log *slog.Logger,
	feedCfg config.FeedConfig,
	feedService FeedService,
	namesService NamesService,
	galleryService GalleryService,
	guessService GuessService,
	userService UserService,
	authService AuthService,
) *Routers {
	return &Routers{
		log:            log,
		feedCfg:        feedCfg,
		FeedService:    feedService,
		NamesService:   namesService,
		GalleryService: galleryService,
		GuessService:   guessService,
		UserService:    userService,
		AuthService:    authService,
	}
}

// GetGallery godoc
// @Summary Paginated public gallery feed
// @Description Returns public items newest-first. Prefers offset; falls back to legacy page param.
// @Tags gallery
// @Produce json
// @Param offset query int false "Item offset (preferred)"
// @Param page query int false "Legacy page number" default(1)
// @Param limit query int false "Page size" default(8)
// @Success 200 {object} dto.FeedPageResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/gallery [get]
func (r *Routers) GetGallery(c echo.Context) error {
	const op = "http.routers.GetGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = r.feedCfg.PageLimit
	}
	if limit > r.feedCfg.MaxLimit {
		limit = r.feedCfg.MaxLimit
	}

	// offset preferred; legacy page converted for backward compatibility
	var offset int
	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		offset, err = strconv.Atoi(offsetParam)
		if err != nil || offset < 0 {
			offset = 0
		}
	} else {
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil || page < 1 {
			page = 1
		}
		offset = (page - 1) * limit
	}

	feedPage, err := r.FeedService.Page(c.Request().Context(), offset, limit)
	if err != nil {
		log.Error("failed to get feed page", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get items"})
	}

	if feedPage.Items == nil {
		feedPage.Items = []models.GalleryItem{}
	}

	return c.JSON(http.StatusOK, dto.FeedPageResponse{
		Items:      feedPage.Items,
		Pagination: feedPage.Pagination,
	})
}

// GetNames godoc
// @Summary Name directory
// @Description Sorted, de-duplicated person names across public items. Fetched once per feed session by clients.
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.NamesResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/names [get]
func (r *Routers) GetNames(c echo.Context) error {
	const op = "http.routers.GetNames"

	log := r.log.With(
		slog.String("op", op),
	)

	names, err := r.NamesService.Names(c.Request().Context())
	if err != nil {
		log.Error("failed to fetch names", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch names"})
	}

	return c.JSON(http.StatusOK, dto.NamesResponse{
		Names: names,
		Count: len(names),
	})
}

// Generate godoc
// @Summary Publish a generated avatar
// @Description Creates one public gallery item for the authenticated user.
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Item data"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /api/v1/generate [post]
func (r *Routers) Generate(c echo.Context) error {
	const op = "http.routers.Generate"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, err := userIDFromContext(c)
	if err != nil {
		log.Warn("unauthenticated generate attempt", sl.Err(err))
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req dto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	itemID, err := r.GalleryService.CreateItem(c.Request().Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, gallerysvc.ErrNameRequired),
			errors.Is(err, gallerysvc.ErrImageRequired),
			errors.Is(err, gallerysvc.ErrImageTooLarge),
			errors.Is(err, gallerysvc.ErrBadImage):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			log.Error("failed to create gallery item", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create gallery item"})
		}
	}

	return c.JSON(http.StatusOK, dto.GenerateResponse{
		Success: true,
		ItemID:  itemID,
		Message: "Gallery item created successfully",
	})
}

// GuessOptions godoc
// @Summary Open a guess session
// @Description Starts (or restarts) a guessing round for an item and returns the 5-way choice set. Reopening resets attempts.
// @Tags game
// @Produce json
// @Param id path string true "Gallery item UUID" format(uuid)
// @Success 200 {object} dto.GuessOptionsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /api/v1/gallery/{id}/guesses/options [get]
func (r *Routers) GuessOptions(c echo.Context) error {
	const op = "http.routers.GuessOptions"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid item id", sl.Err(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item ID format"})
	}

	opts, err := r.GuessService.OpenSession(c.Request().Context(), userID, itemID)
	if err != nil {
		if errors.Is(err, guesssvc.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "item not found"})
		}
		log.Error("failed to open guess session", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to open guess session"})
	}

	return c.JSON(http.StatusOK, opts)
}

// SubmitGuess godoc
// @Summary Submit a guess
// @Description Evaluates a selection against the open session and persists the attempt.
// @Tags game
// @Accept json
// @Produce json
// @Param id path string true "Gallery item UUID" format(uuid)
// @Param request body dto.SubmitGuessRequest true "Selected name"
// @Success 200 {object} dto.GuessResultResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /api/v1/gallery/{id}/guesses [post]
func (r *Routers) SubmitGuess(c echo.Context) error {
	const op = "http.routers.SubmitGuess"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid item id", sl.Err(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item ID format"})
	}

	var req dto.SubmitGuessRequest
	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := r.GuessService.SubmitGuess(c.Request().Context(), userID, itemID, req.GuessedName)
	if err != nil {
		switch {
		case errors.Is(err, guesssvc.ErrNoSession):
			return c.JSON(http.StatusConflict, map[string]string{"error": "no active guess session, fetch options first"})
		case errors.Is(err, game.ErrRevealed):
			return c.JSON(http.StatusConflict, map[string]string{"error": "session already revealed"})
		case errors.Is(err, game.ErrNoSelection):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "selection is required"})
		default:
			log.Error("failed to submit guess", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to submit guess"})
		}
	}

	return c.JSON(http.StatusOK, result)
}

// GetUserStats godoc
// @Summary Guessing stats for a user
// @Tags game
// @Produce json
// @Param user_id path string true "User UUID" format(uuid)
// @Success 200 {object} dto.UserStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /api/v1/users/{user_id}/stats [get]
func (r *Routers) GetUserStats(c echo.Context) error {
	const op = "http.routers.GetUserStats"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		log.Warn("invalid user id", sl.Err(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user ID format"})
	}

	stats, err := r.GuessService.Stats(c.Request().Context(), userID)
	if err != nil {
		log.Error("failed to load stats", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load stats"})
	}

	return c.JSON(http.StatusOK, dto.UserStatsResponse{
		TotalGuesses:   stats.TotalGuesses,
		CorrectGuesses: stats.CorrectGuesses,
	})
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UserRegisterInput true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/register [post]
func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.UserRegisterInput

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRegisterRequest)
	}

	if err := c.Validate(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_register_request", err.Error()))
	}

	userID, err := r.UserService.RegisterNewUser(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, usersvc.ErrUserExist) {
			log.Warn("user already exists", slog.String("email", req.Email))
			return c.JSON(http.StatusConflict, response.ErrUserAlreadyExists)
		}

		log.Error("registration failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Status:  "error",
			Error:   "internal_error",
			Details: "Internal server error",
		})
	}

	log.Info("user registered successfully", slog.String("user_id", userID.String()))

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data: map[string]uuid.UUID{
			"user_id": userID,
		},
	})
}

// Login godoc
// @Summary Authenticate a user
// @Description Email + password login. Returns a JWT token pair.
// @Tags users
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid format request", slog.String("identifier", req.Identifier))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	pair, err := r.UserService.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		log.Warn("authentication failed", sl.Err(err))
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status: "success",
		Data: map[string]string{
			"user_id":       pair.UserID.String(),
			"access_token":  pair.AccessToken,
			"refresh_token": pair.RefreshToken,
		},
	})
}

func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.RefreshRequest

	if err := c.Bind(&req); err != nil {
		log.Error("validation bind", sl.Err(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	newTokens, err := r.AuthService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Error("error refresh tokens", sl.Err(err))
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}

	return c.JSON(http.StatusOK, newTokens)
}

// userIDFromContext extracts the authenticated user from the echo-jwt token.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return uuid.Nil, errors.New("missing jwt token")
	}

	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid jwt claims")
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing uid claim")
	}

	return uuid.Parse(uid)
}
