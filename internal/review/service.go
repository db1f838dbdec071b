package review

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Robindeep5394188/Material-Review/internal/allocation"
	"github.com/Robindeep5394188/Material-Review/internal/changes"
	"github.com/Robindeep5394188/Material-Review/internal/demand"
	"github.com/Robindeep5394188/Material-Review/internal/extract"
	"github.com/Robindeep5394188/Material-Review/internal/flags"
	"github.com/Robindeep5394188/Material-Review/internal/incoming"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
	"github.com/Robindeep5394188/Material-Review/pkg/quantity"
)

// StockSource supplies the inventory position per component article,
// zero-filled for unknown articles.
type StockSource interface {
	Snapshot(articles []string) (map[string]models.StockRecord, error)
}

// ScreeningSource resolves the fragrance-screening status for a PO line.
type ScreeningSource interface {
	Lookup(order, line string) (models.ScreeningStatus, error)
}

// IncomingSource supplies the inbound shipment schedule per article.
type IncomingSource interface {
	ForArticles(articles []string) (map[string][]incoming.Shipment, error)
}

// SnapshotStore persists the tracked view between runs.
type SnapshotStore interface {
	Load() ([]models.ViewSnapshotRow, error)
	Replace(rows []models.ViewSnapshotRow) error
}

// HistoryStore receives the change batch of a run.
type HistoryStore interface {
	Append(records []models.ChangeRecord) error
}

// OverrideStore holds the manual "supported" overrides.
type OverrideStore interface {
	All() (map[string]bool, error)
	Delete(poLines []string) error
}

// NotesStore holds the planners' per-line notes.
type NotesStore interface {
	All() (map[string]string, error)
}

// Service runs the material-review pipeline end to end.
type Service struct {
	stock      StockSource
	screening  ScreeningSource
	incoming   IncomingSource
	snapshots  SnapshotStore
	history    HistoryStore
	overrides  OverrideStore
	notes      NotesStore
	thresholds allocation.Thresholds
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(
	stock StockSource,
	screening ScreeningSource,
	inbound IncomingSource,
	snapshots SnapshotStore,
	history HistoryStore,
	overrides OverrideStore,
	notes NotesStore,
	thresholds allocation.Thresholds,
	logger *zap.Logger,
) *Service {
	return &Service{
		stock:      stock,
		screening:  screening,
		incoming:   inbound,
		snapshots:  snapshots,
		history:    history,
		overrides:  overrides,
		notes:      notes,
		thresholds: thresholds,
		logger:     logger,
		now:        time.Now,
	}
}

// RunInput is one run's worth of source material: the ingested PO lines
// with their skipped sources, plus the extracted order documents.
type RunInput struct {
	Lines     []models.POLine
	Skipped   []SkippedSource
	Documents []extract.Document
}

// SkippedSource mirrors an ingestion skip for the run report.
type SkippedSource struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// RunOutput is the computed review view plus the differences against the
// previous run. PersistWarnings lists store failures that did not stop
// the computation.
type RunOutput struct {
	RunTS           time.Time             `json:"run_ts"`
	Rows            []models.ReviewRow    `json:"rows"`
	Skipped         []SkippedSource       `json:"skipped,omitempty"`
	Changes         []models.ChangeRecord `json:"changes,omitempty"`
	PersistWarnings []string              `json:"persist_warnings,omitempty"`
}

// Run executes the full pipeline: extraction join, demand normalization,
// allocation, flag composition, annotation and change detection. Store
// write failures are collected as warnings; the computed view is always
// returned.
func (s *Service) Run(input RunInput) (RunOutput, error) {
	runTS := s.now()
	out := RunOutput{RunTS: runTS, Skipped: input.Skipped}

	boms, metas := s.extractDocuments(input.Documents)
	demands := demand.Normalize(input.Lines, boms)

	articles := articleSet(demands)
	stock, err := s.stock.Snapshot(articles)
	if err != nil {
		return RunOutput{}, err
	}

	avail := make(map[string]float64, len(stock))
	for article, record := range stock {
		avail[article] = record.Available()
	}

	results := allocation.Allocate(demands, avail)
	outcomes := allocation.AggregateLines(results, s.thresholds)

	resultsByLine := make(map[string][]models.AllocationResult)
	for _, result := range results {
		resultsByLine[result.POLine] = append(resultsByLine[result.POLine], result)
	}

	shipments, err := s.incoming.ForArticles(articles)
	if err != nil {
		s.logger.Warn("incoming shipments unavailable", zap.Error(err))
		shipments = map[string][]incoming.Shipment{}
	}

	overrides, err := s.overrides.All()
	if err != nil {
		s.logger.Warn("support overrides unavailable", zap.Error(err))
		overrides = map[string]bool{}
	}
	notes, err := s.notes.All()
	if err != nil {
		s.logger.Warn("planner notes unavailable", zap.Error(err))
		notes = map[string]string{}
	}

	var staleOverrides []string
	for _, line := range input.Lines {
		row, overrideValid := s.buildRow(line, boms[line.Key], metas[line.Order], resultsByLine[line.Key], outcomes[line.Key], stock, shipments, overrides[line.Key], notes[line.Key])
		if overrides[line.Key] && !overrideValid {
			staleOverrides = append(staleOverrides, line.Key)
		}
		out.Rows = append(out.Rows, row)
	}

	out.Changes, out.PersistWarnings = s.persist(runTS, out.Rows, staleOverrides)
	return out, nil
}

// buildRow assembles one view row from the per-line pipeline outputs.
// The second return reports whether a manual override is still valid for
// this line.
func (s *Service) buildRow(
	line models.POLine,
	bom models.BOMLine,
	meta extract.Meta,
	results []models.AllocationResult,
	outcome models.LineOutcome,
	stock map[string]models.StockRecord,
	shipments map[string][]incoming.Shipment,
	override bool,
	note string,
) (models.ReviewRow, bool) {
	hasDemand := len(results) > 0

	row := models.ReviewRow{
		POLine:          line.Key,
		Article:         line.Article,
		Description:     line.Description,
		DeliveryDate:    line.DeliveryDate,
		StatisticalDate: line.StatisticalDate,
		QtyEA:           line.QtyEAText,
		Components:      bom,
		HasComponents:   bom.HasEntries(),
		PONotes:         meta.PONotes,
		FilledCandle:    meta.FilledCandle,
		Notes:           note,
	}

	if hasDemand {
		row.Status = outcome.Status
	}

	flag := flags.Compose(outcome, hasDemand, s.thresholds)
	flag, overrideValid := flags.ApplyOverride(flag, override)
	row.Flag = flag

	switch {
	case hasDemand && outcome.Status == models.StatusShort:
		row.ShortDetail = shortDetail(results, stock, shipments)
	case hasDemand:
		row.ShortDetail = supportedDetail
	}
	row.ShortDetail = withNotes(meta.PONotes, row.ShortDetail)

	if len(bom[models.CategoryFragrance]) > 0 {
		status, err := s.screening.Lookup(line.Order, line.Line)
		if err != nil {
			s.logger.Warn("screening lookup failed", zap.String("po_line", line.Key), zap.Error(err))
		} else {
			row.FSLot = status.Lot
			row.FSStatus = status.Status
			row.FSInfo = status.Info()
		}
	}

	return row, overrideValid
}

// persist runs change detection against the stored snapshot, then writes
// the history batch, the fresh snapshot and the override cleanup. Store
// failures become warnings; they never invalidate the computed rows.
func (s *Service) persist(runTS time.Time, rows []models.ReviewRow, staleOverrides []string) ([]models.ChangeRecord, []string) {
	var warnings []string

	snapshot := make([]models.ViewSnapshotRow, 0, len(rows))
	for _, row := range rows {
		snapshot = append(snapshot, row.Snapshot())
	}

	var detected []models.ChangeRecord
	previous, err := s.snapshots.Load()
	if err != nil {
		s.logger.Warn("previous view snapshot unavailable", zap.Error(err))
		warnings = append(warnings, "previous view snapshot unavailable: "+err.Error())
	} else {
		detected = changes.Detect(runTS, snapshot, previous)
		if len(detected) > 0 {
			if err := s.history.Append(detected); err != nil {
				s.logger.Warn("failed to append change history", zap.Error(err))
				warnings = append(warnings, "change history not persisted: "+err.Error())
			}
		}
	}

	if err := s.snapshots.Replace(snapshot); err != nil {
		s.logger.Warn("failed to replace view snapshot", zap.Error(err))
		warnings = append(warnings, "view snapshot not persisted: "+err.Error())
	}
	if err := s.overrides.Delete(staleOverrides); err != nil {
		s.logger.Warn("failed to clear stale overrides", zap.Error(err))
		warnings = append(warnings, "stale overrides not cleared: "+err.Error())
	}

	return detected, warnings
}

// extractDocuments runs BOM extraction per document and keys the results
// by PO-line. Document order numbers are normalized the same way the
// ingested lines are, so the join is exact.
func (s *Service) extractDocuments(docs []extract.Document) (map[string]models.BOMLine, map[string]extract.Meta) {
	boms := make(map[string]models.BOMLine)
	metas := make(map[string]extract.Meta)

	for _, doc := range docs {
		order := quantity.NormalizeOrder(doc.Order)
		if order == "" {
			continue
		}
		if _, ok := metas[order]; !ok {
			metas[order] = extract.ExtractMeta(doc)
		}
		for line, bom := range extract.BOM(doc) {
			key := order + "-" + line
			if _, ok := boms[key]; !ok {
				boms[key] = bom
			}
		}
	}
	return boms, metas
}

// articleSet collects the distinct demanded articles, sorted.
func articleSet(demands []models.DemandRecord) []string {
	seen := make(map[string]bool)
	var articles []string
	for _, record := range demands {
		if !seen[record.Article] {
			seen[record.Article] = true
			articles = append(articles, record.Article)
		}
	}
	sort.Strings(articles)
	return articles
}
