package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/auth/jwt"
	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/ecosedes/facilities/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the record store over HTTP.
type Handler struct {
	db         database.Database
	jwtService *jwt.Service // nil when bearer tokens are disabled
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewHandler creates a new handler. jwtService and m may be nil.
func NewHandler(db database.Database, jwtService *jwt.Service, m *metrics.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		db:         db,
		jwtService: jwtService,
		metrics:    m,
		logger:     logger.Named("handler"),
	}
}

// Welcome answers the root path.
func (h *Handler) Welcome(c *gin.Context) {
	i18n.Success(i18n.SuccessWelcome).Send(c)
}

// Health reports whether the process is serving.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) mutated(entity, action string) {
	h.metrics.Mutation(entity, action)
}

// bind decodes the JSON body into obj, responding on failure.
func bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		i18n.RespondWithError(c, dto.BindError(err))
		return false
	}
	return true
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || v == 0 {
		return 0, errorx.ErrInvalidID.With("Field", name)
	}
	return uint(v), nil
}

func intParam(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, errorx.Invalid(name, "must be an integer")
	}
	return v, nil
}

func floatValue(raw, field string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errorx.Invalid(field, "must be a number")
	}
	return v, nil
}

func dateValue(raw, field string) (database.Date, error) {
	d, err := database.ParseDate(raw)
	if err != nil {
		return d, errorx.ErrInvalidDate.With("Field", field)
	}
	return d, nil
}

// requiredDateQuery parses a mandatory YYYY-MM-DD query parameter.
func requiredDateQuery(c *gin.Context, name string) (database.Date, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return database.Date{}, errorx.Invalid(name, "is required")
	}
	return dateValue(raw, name)
}

// optionalDateQuery parses an optional YYYY-MM-DD query parameter.
func optionalDateQuery(c *gin.Context, name string) (*database.Date, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := dateValue(raw, name)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func respond(c *gin.Context, status int, payload any, err error) {
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	c.JSON(status, payload)
}

// respondFound sends items, or a not-found error naming entity when there
// are none.
func respondFound[T any](c *gin.Context, entity string, items []T, err error) {
	if err == nil && len(items) == 0 {
		err = errorx.NoResults(entity)
	}
	respond(c, http.StatusOK, items, err)
}

func getByID[T any](c *gin.Context, get func(context.Context, uint) (*T, error)) {
	id, err := idParam(c, "id")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	rec, err := get(c.Request.Context(), id)
	respond(c, http.StatusOK, rec, err)
}

func listAll[T any](c *gin.Context, list func(context.Context) ([]*T, error)) {
	recs, err := list(c.Request.Context())
	respond(c, http.StatusOK, recs, err)
}

// listByID runs a lookup keyed by the integer path parameter param.
func listByID[T any](c *gin.Context, param, entity string, list func(context.Context, uint) ([]*T, error)) {
	id, err := idParam(c, param)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	recs, err := list(c.Request.Context(), id)
	respondFound(c, entity, recs, err)
}

func (h *Handler) create(c *gin.Context, entity string, rec any, err error) {
	if err == nil {
		h.mutated(entity, "create")
	}
	respond(c, http.StatusCreated, rec, err)
}

// updateByID binds a patch of type P, runs it through normalize and applies
// it to the record named by the id path parameter.
func updateByID[T, P any](h *Handler, c *gin.Context, entity string, normalize func(P) (P, error), apply func(context.Context, uint, P) (*T, error)) {
	id, err := idParam(c, "id")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	var p P
	if !bind(c, &p) {
		return
	}
	if p, err = normalize(p); err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	rec, err := apply(c.Request.Context(), id, p)
	if err == nil {
		h.mutated(entity, "update")
	}
	respond(c, http.StatusOK, rec, err)
}

func deleteByID[T any](h *Handler, c *gin.Context, entity string, del func(context.Context, uint) (*T, error)) {
	id, err := idParam(c, "id")
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	rec, err := del(c.Request.Context(), id)
	h.deleted(c, entity, rec, err)
}

func (h *Handler) deleted(c *gin.Context, entity string, rec any, err error) {
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	h.mutated(entity, "delete")
	i18n.Success(i18n.SuccessRecordDeleted).With("entity", entity).WithPayload(rec).Send(c)
}
