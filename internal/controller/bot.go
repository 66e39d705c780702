package controller

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/admin_bot/internal/controller/handlers"
	"github.com/Freeeeeet/admin_bot/internal/controller/state"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	catalogService *service.CatalogService,
	bookingService *service.BookingService,
	questionBankService *service.QuestionBankService,
	courseService *service.CourseService,
	studyService *service.StudyService,
	isAdmin func(telegramID int64) bool,
	logger *zap.Logger,
) *BotController {
	// Общий менеджер состояний для команд и кнопок
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		catalogService,
		bookingService,
		questionBankService,
		courseService,
		studyService,
		stateManager,
		isAdmin,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		catalogService,
		bookingService,
		questionBankService,
		courseService,
		studyService,
		state.NewAdapter(stateManager),
		isAdmin,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд.
// Порядок важен: срабатывает первый подходящий обработчик.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	exact := map[string]bot.HandlerFunc{
		"/start":       c.handlers.HandleStart,
		"/help":        c.handlers.HandleHelp,
		"/cancel":      c.handlers.HandleCancel,
		"/services":    c.handlers.HandleServices,
		"/staff":       c.handlers.HandleStaff,
		"/book":        c.handlers.HandleBook,
		"/subjects":    c.handlers.HandleSubjects,
		"/exams":       c.handlers.HandleExams,
		"/instructors": c.handlers.HandleInstructors,
	}
	for command, handler := range exact {
		c.bot.RegisterHandler(bot.HandlerTypeMessageText, command, bot.MatchTypeExact, handler)
	}

	// Команды с аргументами
	withArgs := []struct {
		command string
		handler bot.HandlerFunc
	}{
		{"/addservice", c.handlers.HandleAddService},
		{"/addstaff", c.handlers.HandleAddStaff},
		{"/appointments", c.handlers.HandleAppointments},
		{"/schedule", c.handlers.HandleSchedule},
		{"/reviews", c.handlers.HandleReviews},
		{"/reply", c.handlers.HandleReply},
		{"/addsubject", c.handlers.HandleAddSubject},
		{"/questions", c.handlers.HandleQuestions},
		{"/addquestion", c.handlers.HandleAddQuestion},
		{"/genexam", c.handlers.HandleGenExam},
		{"/courses", c.handlers.HandleCourses},
		{"/addinstructor", c.handlers.HandleAddInstructor},
		{"/addcourse", c.handlers.HandleAddCourse},
		{"/setstudents", c.handlers.HandleSetStudents},
		{"/study", c.handlers.HandleStudy},
		{"/addstudysubject", c.handlers.HandleAddStudySubject},
		{"/logstudy", c.handlers.HandleLogStudy},
		{"/goal", c.handlers.HandleGoal},
	}
	for _, cmd := range withArgs {
		c.bot.RegisterHandler(bot.HandlerTypeMessageText, cmd.command, bot.MatchTypePrefix, cmd.handler)
	}

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "help", Description: "❓ Справка по командам"},
		{Command: "services", Description: "💇 Услуги и цены"},
		{Command: "staff", Description: "👥 Сотрудники и график"},
		{Command: "book", Description: "📅 Записаться"},
		{Command: "cancel", Description: "❌ Отменить текущее действие"},
		{Command: "appointments", Description: "📋 Записи (админ)"},
		{Command: "schedule", Description: "🗓 Расписание дня (админ)"},
		{Command: "reviews", Description: "⭐ Отзывы (админ)"},
		{Command: "subjects", Description: "📚 Банк вопросов (админ)"},
		{Command: "exams", Description: "📝 Экзамены (админ)"},
		{Command: "courses", Description: "🎓 Курсы"},
		{Command: "study", Description: "📒 Дневник занятий (админ)"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
