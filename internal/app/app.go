package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/config"
	"github.com/daymark-app/daymark/internal/db"
	"github.com/daymark-app/daymark/internal/repository"
	"github.com/daymark-app/daymark/internal/service"
	"github.com/daymark-app/daymark/internal/settings"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	DayService        *service.DayService
	PriorityService   *service.PriorityService
	DiscussionService *service.DiscussionService
	TimeBlockService  *service.TimeBlockService
	NoteService       *service.NoteService
	ReviewService     *service.ReviewService
	EisenhowerService *service.EisenhowerService
	LifeAreaService   *service.LifeAreaService
	DecisionService   *service.DecisionService
	PomodoroService   *service.PomodoroService
	Scheduler         *service.SchedulerService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	dayRepository := repository.NewDayRepository(database)
	priorityRepository := repository.NewPriorityRepository(database)
	discussionRepository := repository.NewDiscussionItemRepository(database)
	timeBlockRepository := repository.NewTimeBlockRepository(database)
	noteRepository := repository.NewQuickNoteRepository(database)
	reviewRepository := repository.NewDailyReviewRepository(database)
	eisenhowerRepository := repository.NewEisenhowerTaskRepository(database)
	lifeAreaRepository := repository.NewLifeAreaRepository(database)
	decisionRepository := repository.NewDecisionRepository(database)
	pomodoroRepository := repository.NewPomodoroSessionRepository(database)

	// The capacity ceiling comes from the settings service; this backend only
	// reads it. Static config stands in for the provider boundary.
	settingsProvider := settings.NewStatic(cfg.MaxTopPriorities)

	// Services
	emailService := service.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AppName, cfg.IsDevelopment())
	dayService := service.NewDayService(
		dayRepository,
		priorityRepository,
		discussionRepository,
		timeBlockRepository,
		noteRepository,
		reviewRepository,
	)
	priorityService := service.NewPriorityService(dayService, priorityRepository, settingsProvider)
	discussionService := service.NewDiscussionService(dayService, discussionRepository)
	timeBlockService := service.NewTimeBlockService(dayService, timeBlockRepository)
	noteService := service.NewNoteService(dayService, noteRepository)
	reviewService := service.NewReviewService(dayService, dayRepository, reviewRepository, priorityRepository, settingsProvider, emailService)
	eisenhowerService := service.NewEisenhowerService(eisenhowerRepository, dayService, priorityRepository)
	lifeAreaService := service.NewLifeAreaService(lifeAreaRepository)
	decisionService := service.NewDecisionService(decisionRepository)
	pomodoroService := service.NewPomodoroService(pomodoroRepository)

	var scheduler *service.SchedulerService
	if cfg.AutoCarryForward {
		scheduler = service.NewSchedulerService(reviewService, cfg.Location())
		err = scheduler.ScheduleCarryForward(cfg.AutoCarryForwardAt)
		if err != nil {
			return nil, fmt.Errorf("failed to schedule carry-forward: %v", err)
		}
		scheduler.Start()
	}

	return &App{
		Cfg:               cfg,
		DB:                database,
		DayService:        dayService,
		PriorityService:   priorityService,
		DiscussionService: discussionService,
		TimeBlockService:  timeBlockService,
		NoteService:       noteService,
		ReviewService:     reviewService,
		EisenhowerService: eisenhowerService,
		LifeAreaService:   lifeAreaService,
		DecisionService:   decisionService,
		PomodoroService:   pomodoroService,
		Scheduler:         scheduler,
	}, nil
}

func (a *App) Close() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
		slog.Info("scheduler stopped")
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
