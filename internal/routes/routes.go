package routes

import (
	"net/http"

	"github.com/daymark-app/daymark/internal/app"
	"github.com/daymark-app/daymark/internal/handler"
	"github.com/daymark-app/daymark/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	day := handler.NewDayHandler(app.DayService)
	priority := handler.NewPriorityHandler(app.PriorityService)
	discussion := handler.NewDiscussionHandler(app.DiscussionService)
	timeBlock := handler.NewTimeBlockHandler(app.TimeBlockService)
	note := handler.NewNoteHandler(app.NoteService)
	review := handler.NewReviewHandler(app.ReviewService)
	eisenhower := handler.NewEisenhowerHandler(app.EisenhowerService)
	lifeArea := handler.NewLifeAreaHandler(app.LifeAreaService)
	decision := handler.NewDecisionHandler(app.DecisionService)
	pomodoro := handler.NewPomodoroHandler(app.PomodoroService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /api/healthz", health.Health)

	// Day dashboard
	mux.HandleFunc("GET /api/days/{date}", middleware.RequireAuth(day.Show))

	// Top priorities
	mux.HandleFunc("POST /api/days/{date}/priorities", middleware.RequireAuth(priority.Create))
	mux.HandleFunc("PATCH /api/priorities/{id}", middleware.RequireAuth(priority.Update))
	mux.HandleFunc("DELETE /api/priorities/{id}", middleware.RequireAuth(priority.Delete))

	// Discussion items
	mux.HandleFunc("POST /api/days/{date}/discussions", middleware.RequireAuth(discussion.Create))
	mux.HandleFunc("PATCH /api/discussions/{id}", middleware.RequireAuth(discussion.Update))
	mux.HandleFunc("DELETE /api/discussions/{id}", middleware.RequireAuth(discussion.Delete))

	// Time blocks
	mux.HandleFunc("POST /api/days/{date}/time-blocks", middleware.RequireAuth(timeBlock.Create))
	mux.HandleFunc("PATCH /api/time-blocks/{id}", middleware.RequireAuth(timeBlock.Update))
	mux.HandleFunc("DELETE /api/time-blocks/{id}", middleware.RequireAuth(timeBlock.Delete))

	// Quick note + end-of-day review
	mux.HandleFunc("PUT /api/days/{date}/note", middleware.RequireAuth(note.Save))
	mux.HandleFunc("PUT /api/days/{date}/review", middleware.RequireAuth(review.Save))
	mux.HandleFunc("POST /api/days/{fromDate}/review/carry-forward", middleware.RequireAuth(review.CarryForward))

	// Eisenhower matrix
	mux.HandleFunc("GET /api/eisenhower", middleware.RequireAuth(eisenhower.List))
	mux.HandleFunc("POST /api/eisenhower", middleware.RequireAuth(eisenhower.Create))
	mux.HandleFunc("PATCH /api/eisenhower/{id}", middleware.RequireAuth(eisenhower.Update))
	mux.HandleFunc("DELETE /api/eisenhower/{id}", middleware.RequireAuth(eisenhower.Delete))
	mux.HandleFunc("POST /api/eisenhower/{id}/promote", middleware.RequireAuth(eisenhower.Promote))

	// Life areas
	mux.HandleFunc("GET /api/life-areas", middleware.RequireAuth(lifeArea.List))
	mux.HandleFunc("POST /api/life-areas", middleware.RequireAuth(lifeArea.Create))
	mux.HandleFunc("PATCH /api/life-areas/{id}", middleware.RequireAuth(lifeArea.Update))
	mux.HandleFunc("DELETE /api/life-areas/{id}", middleware.RequireAuth(lifeArea.Delete))

	// Decision log
	mux.HandleFunc("GET /api/decisions", middleware.RequireAuth(decision.List))
	mux.HandleFunc("POST /api/decisions", middleware.RequireAuth(decision.Create))
	mux.HandleFunc("PATCH /api/decisions/{id}", middleware.RequireAuth(decision.Update))
	mux.HandleFunc("DELETE /api/decisions/{id}", middleware.RequireAuth(decision.Delete))

	// Pomodoro sessions
	mux.HandleFunc("GET /api/pomodoro", middleware.RequireAuth(pomodoro.List))
	mux.HandleFunc("POST /api/pomodoro", middleware.RequireAuth(pomodoro.Start))
	mux.HandleFunc("POST /api/pomodoro/{id}/finish", middleware.RequireAuth(pomodoro.Finish))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.Cfg.JWTSecret),
	)
}
