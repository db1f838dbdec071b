package container

import (
	"context"
	"database/sql"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Robindeep5394188/Material-Review/internal/allocation"
	"github.com/Robindeep5394188/Material-Review/internal/changes"
	"github.com/Robindeep5394188/Material-Review/internal/incoming"
	"github.com/Robindeep5394188/Material-Review/internal/ingest"
	"github.com/Robindeep5394188/Material-Review/internal/repository"
	"github.com/Robindeep5394188/Material-Review/internal/review"
	"github.com/Robindeep5394188/Material-Review/internal/screening"
	"github.com/Robindeep5394188/Material-Review/internal/stocklookup"
	"github.com/Robindeep5394188/Material-Review/internal/users"
	"github.com/Robindeep5394188/Material-Review/pkg/security"
)

// Container wires every handler of the service to its repositories.
// appDB holds review state; inventoryDB is the read-only stock mirror
// (the same connection when no separate mirror is configured).
type Container struct {
	Repository       *repository.Repository
	LoginHandler     *security.LoginHandler
	ReviewHandler    *review.Handler
	ScreeningHandler *screening.Handler
	IncomingHandler  *incoming.Handler
	UserHandler      *users.UsersHandler
}

func NewAppContainer(appDB, inventoryDB *sql.DB, logger *zap.Logger) *Container {
	repo := repository.NewRepository(appDB)
	inventoryRepo := repository.NewRepository(inventoryDB)

	stockService := stocklookup.NewService(
		stocklookup.NewStockRepository(inventoryRepo),
		stocklookup.NewCache(),
	)
	screeningRepo := screening.NewRepository(repo)
	incomingRepo := incoming.NewRepository(repo)
	snapshotRepo := review.NewSnapshotRepository(repo)
	historyRepo := changes.NewHistoryRepository(repo)
	overrideRepo := review.NewOverrideRepository(repo)
	notesRepo := review.NewNotesRepository(repo)

	service := review.NewService(
		stockService,
		screeningRepo,
		incomingRepo,
		snapshotRepo,
		historyRepo,
		overrideRepo,
		notesRepo,
		thresholdsFromEnv(),
		logger,
	)

	var sheets *ingest.SheetsSource
	if os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON") != "" {
		source, err := ingest.NewSheetsSource(context.Background())
		if err != nil {
			logger.Warn("google sheets source disabled", zap.Error(err))
		} else {
			sheets = source
		}
	}

	userRepo := users.NewRepository(repo)

	return &Container{
		Repository:       repo,
		LoginHandler:     security.NewLoginHandler(repo),
		ReviewHandler:    review.NewHandler(service, sheets, snapshotRepo, historyRepo, notesRepo, overrideRepo, logger),
		ScreeningHandler: screening.NewHandler(screeningRepo),
		IncomingHandler:  incoming.NewHandler(incomingRepo),
		UserHandler:      users.NewHandler(userRepo),
	}
}

// thresholdsFromEnv reads the allocation thresholds, falling back to the
// planner-agreed defaults.
func thresholdsFromEnv() allocation.Thresholds {
	th := allocation.DefaultThresholds()
	if raw := os.Getenv("LOW_STOCK_THRESHOLD"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			th.LowStock = f
		}
	}
	if raw := os.Getenv("SMALL_SHORT_THRESHOLD"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			th.SmallShort = f
		}
	}
	return th
}
