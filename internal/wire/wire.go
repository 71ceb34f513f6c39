package wire

import (
	"net/http"

	"caregiver-booking/internal/adaptor"
	"caregiver-booking/internal/data/repository"
	"caregiver-booking/internal/gateway"
	"caregiver-booking/internal/usecase"
	"caregiver-booking/pkg/middleware"
	"caregiver-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles services, handlers, and routes into a ready router.
func Wiring(repo *repository.Repository, config *utils.Config, paystack gateway.Gateway, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, paystack, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, repo *repository.Repository, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireCaregiver(r, handler.Caregiver, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wirePayment(r, handler.Payment, repo, logger)
	wireReview(r, handler.Review, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
