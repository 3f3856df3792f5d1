package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	recordUC domain.RecordUsecase
}

func NewRecordHandler(recordUC domain.RecordUsecase) *RecordHandler {
	return &RecordHandler{recordUC: recordUC}
}

// Register mounts list, get, create and patch for one collection.
func (h *RecordHandler) Register(g *gin.RouterGroup, collection string) {
	g.GET("", h.List(collection))
	g.POST("", h.Create(collection))
	g.GET("/:id", h.Get(collection))
	g.PATCH("/:id", h.Patch(collection))
}

// List godoc
// @Summary      List records
// @Description  Returns every record of the collection ordered by id. Any query parameter is an equality filter on that field.
// @Tags         records
// @Produce      json
// @Param        collection  path      string  true  "Collection name"  Enums(users, jobs, jobapplications)
// @Success      200  {array}   object
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /{collection} [get]
func (h *RecordHandler) List(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := domain.Query{}
		for key, values := range c.Request.URL.Query() {
			// json-server control parameters (_sort, _page, ...) are not supported
			if strings.HasPrefix(key, "_") || len(values) == 0 {
				continue
			}
			filter[key] = values[0]
		}

		records, err := h.recordUC.List(c.Request.Context(), collection, filter)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// Get godoc
// @Summary      Get a record
// @Tags         records
// @Produce      json
// @Param        collection  path      string  true  "Collection name"
// @Param        id          path      int     true  "Record ID"
// @Success      200  {object}  object
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /{collection}/{id} [get]
func (h *RecordHandler) Get(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		rec, err := h.recordUC.Get(c.Request.Context(), collection, id)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// Create godoc
// @Summary      Create a record
// @Description  Stores the JSON object. The store assigns max(id)+1 unless the body carries an unused id.
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        collection  path      string  true  "Collection name"
// @Param        record      body      object  true  "Record JSON"
// @Success      201  {object}  object
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /{collection} [post]
func (h *RecordHandler) Create(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec domain.Record
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.Error(apperror.BadRequest("Request body must be a JSON object"))
			return
		}
		created, err := h.recordUC.Create(c.Request.Context(), collection, rec)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// Patch godoc
// @Summary      Update a record
// @Description  Shallow-merges the JSON object into the stored record. The id cannot change.
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        collection  path      string  true  "Collection name"
// @Param        id          path      int     true  "Record ID"
// @Param        fields      body      object  true  "Fields to update"
// @Success      200  {object}  object
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /{collection}/{id} [patch]
func (h *RecordHandler) Patch(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var fields domain.Record
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.Error(apperror.BadRequest("Request body must be a JSON object"))
			return
		}
		updated, err := h.recordUC.Patch(c.Request.Context(), collection, id, fields)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid id"))
		return 0, false
	}
	return id, true
}
