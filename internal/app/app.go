package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/IT-Nick/interview-assistant/internal/app/handlers/http/candidates_handler"
	"github.com/IT-Nick/interview-assistant/internal/app/handlers/http/interview_handler"
	"github.com/IT-Nick/interview-assistant/internal/app/handlers/http/metrics_handler"
	"github.com/IT-Nick/interview-assistant/internal/app/handlers/http/questions_handler"
	"github.com/IT-Nick/interview-assistant/internal/app/handlers/http/resume_upload_handler"
	"github.com/IT-Nick/interview-assistant/internal/app/handlers/telegram/answer_handler"
	"github.com/IT-Nick/interview-assistant/internal/app/handlers/telegram/interview_chat"
	"github.com/IT-Nick/interview-assistant/internal/app/handlers/telegram/pending_choice_handler"
	"github.com/IT-Nick/interview-assistant/internal/app/handlers/telegram/start_handler"
	"github.com/IT-Nick/interview-assistant/internal/app/handlers/telegram/start_interview_handler"
	"github.com/IT-Nick/interview-assistant/internal/app/middleware"
	"github.com/IT-Nick/interview-assistant/internal/app/poller"
	candidatesService "github.com/IT-Nick/interview-assistant/internal/domain/candidates/service"
	interviewService "github.com/IT-Nick/interview-assistant/internal/domain/interview/service"
	questionsService "github.com/IT-Nick/interview-assistant/internal/domain/questions/service"
	"github.com/IT-Nick/interview-assistant/internal/domain/storage/repository"
	"github.com/IT-Nick/interview-assistant/internal/infra/config"
	"github.com/IT-Nick/interview-assistant/internal/infra/kv"
	"github.com/IT-Nick/interview-assistant/internal/infra/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/telebot.v4"
	tmiddleware "gopkg.in/telebot.v4/middleware"
)

type Services struct {
	bankService *questionsService.BankService
	selector    *questionsService.Selector
	ledger      *candidatesService.Ledger
	manager     *interviewService.Manager
}

type App struct {
	config *config.Config
	bot    *telebot.Bot
	db     *pgxpool.Pool
	store  kv.Store
	server *http.Server

	chat       *interview_chat.Chat
	stopNotify context.CancelFunc

	Services
}

func NewApp(ctx context.Context, configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	store, db, err := InitStorage(ctx, configImpl)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	app := &App{
		config: configImpl,
		db:     db,
		store:  store,
	}

	app.initServices(ctx)
	app.server = &http.Server{
		Addr:    configImpl.Addr(),
		Handler: app.Handler(),
	}

	if snapshot, ok := app.manager.Pending(ctx); ok {
		log.Printf("Found unfinished interview %s for %q at question %d of %d, waiting for resume or discard",
			snapshot.ID, snapshot.Candidate.Name, snapshot.CurrentIndex+1, len(snapshot.Questions))
	}

	return app, nil
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices(ctx context.Context) {
	sessionStore := repository.NewSessionStore(app.store)

	app.bankService = questionsService.NewBankService(ctx, sessionStore)
	app.selector = questionsService.NewSelector(app.config.Interview.QuestionsPerTier)
	app.ledger = candidatesService.NewLedger(ctx, sessionStore)
	app.manager = interviewService.NewManager(sessionStore, app.ledger, app.bankService, app.selector, interviewService.Options{
		TickInterval: app.config.Interview.TickInterval,
		Metrics:      metrics.NewMetrics(),
	})
}

// Handler маршруты HTTP API
func (app *App) Handler() http.Handler {
	mx := http.NewServeMux()

	mx.Handle("GET /questions", questions_handler.NewQuestionsHandler(app.bankService))
	mx.Handle("POST /questions", questions_handler.NewAddQuestionHandler(app.bankService))

	mx.Handle("GET /candidates", candidates_handler.NewCandidatesHandler(app.ledger))
	mx.Handle("GET /candidates/{id}", candidates_handler.NewCandidateDetailHandler(app.ledger))

	mx.Handle("GET /interview", interview_handler.NewCurrentInterviewHandler(app.manager))
	mx.Handle("GET /interview/pending", interview_handler.NewPendingInterviewHandler(app.manager))
	mx.Handle("POST /interview", interview_handler.NewStartInterviewHandler(app.manager))
	mx.Handle("PUT /interview/draft", interview_handler.NewDraftHandler(app.manager))
	mx.Handle("POST /interview/answer", interview_handler.NewSubmitAnswerHandler(app.manager))
	mx.Handle("POST /interview/resume", interview_handler.NewResumeInterviewHandler(app.manager))
	mx.Handle("POST /interview/discard", interview_handler.NewDiscardInterviewHandler(app.manager))

	mx.Handle("POST /resume-upload", resume_upload_handler.NewResumeUploadHandler())
	mx.Handle("GET /metrics", metrics_handler.NewMetricsHandler(app.manager))

	return mx
}

// ListenAndServeTelegram запускает Telegram бота, если задан токен
func (app *App) ListenAndServeTelegram() error {
	if app.config.TelegramBot.Token == "" {
		log.Println("Telegram bot token is not set, bot is disabled")
		return nil
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: poller.NewPoller(app.config),
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	app.chat = interview_chat.NewChat(bot)
	app.manager.Subscribe(app.chat.Notify)
	notifyCtx, cancel := context.WithCancel(context.Background())
	app.stopNotify = cancel
	go app.chat.Run(notifyCtx)

	app.bootstrapHandlersTelegram()

	go app.bot.Start()
	log.Printf("Telegram bot started in %s mode", app.config.TelegramBot.Mode)

	return nil
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	if app.config.Debug {
		app.bot.Use(middleware.Logger(log.New(os.Stdout, "[bot] ", log.LstdFlags)))
		app.bot.Use(middleware.DebugInterview(true, app.manager))
	}
	app.bot.Use(
		tmiddleware.AutoRespond(),
		middleware.Recover(),
	)

	app.bot.Handle("/start", start_handler.NewStartHandler(app.manager, app.chat).Handle)
	app.bot.Handle("/interview", start_interview_handler.NewStartInterviewHandler(app.manager, app.chat).Handle)

	app.bot.Handle(&interview_chat.ResumeButton, pending_choice_handler.NewResumeHandler(app.manager, app.chat).Handle)
	app.bot.Handle(&interview_chat.DiscardButton, pending_choice_handler.NewDiscardHandler(app.manager, app.chat).Handle)

	app.bot.Handle(telebot.OnText, answer_handler.NewAnswerHandler(app.manager, app.chat).Handle)
}

// ListenAndServeHTTP запускает HTTP сервер
func (app *App) ListenAndServeHTTP() error {
	log.Printf("HTTP server listening on %s", app.server.Addr)
	return app.server.ListenAndServe()
}

// ListenAndServe запускает оба сервера (Telegram и HTTP)
func (app *App) ListenAndServe() error {
	if err := app.ListenAndServeTelegram(); err != nil {
		return fmt.Errorf("failed to start Telegram bot: %w", err)
	}

	if err := app.ListenAndServeHTTP(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown останавливает таймер интервью, серверы и пул соединений.
// Снапшот интервью остается в хранилище, чтобы его можно было продолжить после перезапуска.
func (app *App) Shutdown(ctx context.Context) error {
	app.manager.Close()

	var err error
	if shutdownErr := app.server.Shutdown(ctx); shutdownErr != nil {
		err = fmt.Errorf("failed to shutdown HTTP server: %w", shutdownErr)
	}
	if app.bot != nil {
		app.bot.Stop()
	}
	if app.stopNotify != nil {
		app.stopNotify()
	}
	if app.db != nil {
		app.db.Close()
	}

	log.Println("Application stopped")
	return err
}
