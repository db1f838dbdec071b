package review

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Robindeep5394188/Material-Review/internal/changes"
	"github.com/Robindeep5394188/Material-Review/internal/extract"
	"github.com/Robindeep5394188/Material-Review/internal/ingest"
)

// Handler exposes the review pipeline over HTTP.
type Handler struct {
	service   *Service
	sheets    *ingest.SheetsSource
	snapshots *SnapshotRepository
	history   *changes.HistoryRepository
	notes     *NotesRepository
	overrides *OverrideRepository
	logger    *zap.Logger
}

func NewHandler(
	service *Service,
	sheets *ingest.SheetsSource,
	snapshots *SnapshotRepository,
	history *changes.HistoryRepository,
	notes *NotesRepository,
	overrides *OverrideRepository,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		service:   service,
		sheets:    sheets,
		snapshots: snapshots,
		history:   history,
		notes:     notes,
		overrides: overrides,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/review/run", h.Run)
	router.GET("/review/view", h.GetView)
	router.GET("/review/changes", h.GetChanges)
	router.DELETE("/review/changes", h.ClearChanges)
	router.GET("/review/notes/:key", h.GetNote)
	router.PUT("/review/notes/:key", h.PutNote)
	router.PUT("/review/support/:key", h.PutOverride)
}

// Run ingests the uploaded order reports plus the extracted PO documents
// and executes the pipeline. Order reports arrive as CSV parts named
// "orders"; documents as one JSON part named "documents". An optional
// spreadsheet_id/range pair adds a Google Sheets source.
func (h *Handler) Run(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart payload", "details": err.Error()})
		return
	}

	var tables []ingest.Table
	for _, header := range form.File["orders"] {
		file, err := header.Open()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Could not open upload " + header.Filename, "details": err.Error()})
			return
		}
		table, err := ingest.ReadCSV(header.Filename, file)
		file.Close()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Could not read upload " + header.Filename, "details": err.Error()})
			return
		}
		tables = append(tables, table)
	}

	if spreadsheetID := c.PostForm("spreadsheet_id"); spreadsheetID != "" {
		if h.sheets == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Google Sheets source is not configured"})
			return
		}
		readRange := c.DefaultPostForm("range", "A1:Z9999")
		table, err := h.sheets.FetchTable(spreadsheetID, readRange)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Could not read spreadsheet", "details": err.Error()})
			return
		}
		tables = append(tables, table)
	}

	var documents []extract.Document
	if headers := form.File["documents"]; len(headers) > 0 {
		file, err := headers[0].Open()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Could not open documents upload", "details": err.Error()})
			return
		}
		err = json.NewDecoder(file).Decode(&documents)
		file.Close()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid documents payload", "details": err.Error()})
			return
		}
	}

	result, err := ingest.Combine(tables)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "Ingestion failed", "details": err.Error(), "skipped": result.Skipped})
		return
	}

	input := RunInput{Lines: result.Lines, Documents: documents}
	for _, skip := range result.Skipped {
		input.Skipped = append(input.Skipped, SkippedSource{Source: skip.Source, Reason: skip.Reason})
	}

	output, err := h.service.Run(input)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Review run failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, output)
}

// GetView returns the last persisted view snapshot.
func (h *Handler) GetView(c *gin.Context) {
	rows, err := h.snapshots.Load()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not load view", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetChanges lists the change history, optionally bounded by from/to
// (RFC 3339) and filtered by a q substring.
func (h *Handler) GetChanges(c *gin.Context) {
	var filter changes.ListFilter

	if raw := c.Query("from"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid from timestamp", "details": err.Error()})
			return
		}
		filter.From = &ts
	}
	if raw := c.Query("to"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid to timestamp", "details": err.Error()})
			return
		}
		filter.To = &ts
	}
	filter.POLine = c.Query("po_line")
	filter.Search = c.Query("q")

	records, err := h.history.List(filter)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list changes", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// ClearChanges wipes the change history.
func (h *Handler) ClearChanges(c *gin.Context) {
	if err := h.history.Clear(); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not clear changes", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Change history cleared"})
}

func (h *Handler) GetNote(c *gin.Context) {
	note, err := h.notes.Get(c.Param("key"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not load note", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"po_line": c.Param("key"), "note": note})
}

func (h *Handler) PutNote(c *gin.Context) {
	var payload struct {
		Note string `json:"note"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.notes.Set(c.Param("key"), payload.Note); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not save note", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"po_line": c.Param("key"), "note": payload.Note})
}

// PutOverride toggles the manual "supported" override for one PO line.
// The override only takes effect on lines the next run still flags as
// low availability; stale overrides are cleared automatically.
func (h *Handler) PutOverride(c *gin.Context) {
	var payload struct {
		Supported bool `json:"supported"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.overrides.Set(c.Param("key"), payload.Supported); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not save override", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"po_line": c.Param("key"), "supported": payload.Supported})
}
