package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"orcamentos_api/internal/adapter/http/handlers"
	repository "orcamentos_api/internal/adapter/persistence/repository"
	"orcamentos_api/internal/infrastructure/database"
	"orcamentos_api/internal/usecase"
)

const (
	PathClients   = "/clients"
	PathBudgets   = "/budgets"
	PathFinances  = "/finances"
	PathMeetings  = "/meetings"
	PathMarketing = "/marketing"
	PathNotes     = "/notes"
	PathTexts     = "/texts"
)

func envPort() string {
	return os.Getenv("PORT")
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clientRepo := repository.NewClientDynamoRepository(ddb)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb)
	financeRepo := repository.NewFinanceDynamoRepository(ddb)
	meetingRepo := repository.NewMeetingDynamoRepository(ddb)
	marketingRepo := repository.NewMarketingDynamoRepository(ddb)
	noteRepo := repository.NewNoteDynamoRepository(ddb)
	textRepo := repository.NewTextDynamoRepository(ddb)

	clientHandler := handlers.NewClientHandler(usecase.NewClientUseCase(clientRepo))
	budgetHandler := handlers.NewBudgetHandler(usecase.NewBudgetUseCase(budgetRepo))
	financeHandler := handlers.NewFinanceHandler(usecase.NewFinanceUseCase(financeRepo))
	meetingHandler := handlers.NewMeetingHandler(usecase.NewMeetingUseCase(meetingRepo))
	marketingHandler := handlers.NewMarketingHandler(usecase.NewMarketingUseCase(marketingRepo))
	noteHandler := handlers.NewNoteHandler(usecase.NewNoteUseCase(noteRepo))
	textHandler := handlers.NewTextHandler(usecase.NewTextUseCase(textRepo))

	// Rotas publicas
	api := router.Group("/api")
	addPingRoutes(api)
	addClientRoutes(api, clientHandler)
	addBudgetRoutes(api, budgetHandler)
	addFinanceRoutes(api, financeHandler)
	addMeetingRoutes(api, meetingHandler)
	addMarketingRoutes(api, marketingHandler)
	addNoteRoutes(api, noteHandler)
	addTextRoutes(api, textHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.POST("", h.CreateClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler) {
	// O preview do número sequencial fica fora do grupo para não colidir com
	// /budgets/:id.
	rg.GET(PathBudgets+"-next-id", h.NextProposalID)

	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", h.ListBudgets)
		budgets.GET("/:id", h.GetBudget)
		budgets.POST("", h.CreateBudget)
		budgets.PUT("/:id", h.UpdateBudget)
		budgets.DELETE("/:id", h.DeleteBudget)
	}
}

func addFinanceRoutes(rg *gin.RouterGroup, h *handlers.FinanceHandler) {
	finances := rg.Group(PathFinances)
	{
		finances.GET("", h.ListFinances)
		finances.GET("/:id", h.GetFinance)
		finances.POST("", h.CreateFinance)
		finances.PUT("/:id", h.UpdateFinance)
		finances.DELETE("/:id", h.DeleteFinance)
	}
}

func addMeetingRoutes(rg *gin.RouterGroup, h *handlers.MeetingHandler) {
	meetings := rg.Group(PathMeetings)
	{
		meetings.GET("", h.ListMeetings)
		meetings.GET("/:id", h.GetMeeting)
		meetings.POST("", h.CreateMeeting)
		meetings.PUT("/:id", h.UpdateMeeting)
		meetings.DELETE("/:id", h.DeleteMeeting)
	}
}

func addMarketingRoutes(rg *gin.RouterGroup, h *handlers.MarketingHandler) {
	marketing := rg.Group(PathMarketing)
	{
		marketing.GET("", h.ListCampaigns)
		marketing.GET("/:id", h.GetCampaign)
		marketing.POST("", h.CreateCampaign)
		marketing.PUT("/:id", h.UpdateCampaign)
		marketing.DELETE("/:id", h.DeleteCampaign)
	}
}

func addNoteRoutes(rg *gin.RouterGroup, h *handlers.NoteHandler) {
	notes := rg.Group(PathNotes)
	{
		notes.GET("", h.ListNotes)
		notes.GET("/:id", h.GetNote)
		notes.POST("", h.CreateNote)
		notes.PUT("/:id", h.UpdateNote)
		notes.DELETE("/:id", h.DeleteNote)
	}
}

func addTextRoutes(rg *gin.RouterGroup, h *handlers.TextHandler) {
	texts := rg.Group(PathTexts)
	{
		texts.GET("", h.ListTexts)
		texts.GET("/:id", h.GetText)
		texts.POST("", h.CreateText)
		texts.PUT("/:id", h.UpdateText)
		texts.DELETE("/:id", h.DeleteText)
	}
}
