package routes

import (
	"engetrack/internal/adapter/http/handlers"
	"engetrack/internal/adapter/http/middleware"
	"engetrack/internal/domain/permissions"

	"github.com/gin-gonic/gin"
)

const (
	PathServicos     = "/servicos"
	PathTecnicos     = "/tecnicos"
	PathNotificacoes = "/notificacoes"
)

func addWorkflowRoutes(
	rg *gin.RouterGroup,
	servicoHandler *handlers.ServicoHandler,
	fichaHandler *handlers.FichaHandler,
	tecnicoHandler *handlers.TecnicoHandler,
	notificacaoHandler *handlers.NotificacaoHandler,
) {
	servicos := rg.Group(PathServicos)
	{
		// Leitura e avanço de etapa: qualquer setor autenticado; o handler
		// restringe identidades só-técnica aos próprios serviços.
		servicos.GET("", servicoHandler.ListServicos)
		servicos.GET("/atrasados", servicoHandler.ListAtrasados)
		servicos.GET("/:id", servicoHandler.GetServico)
		servicos.PUT("/:id/status", servicoHandler.AdvanceStage)

		// Cadastro, edição e agendamento pertencem à engenharia.
		engenharia := servicos.Group("", middleware.RequirePermission(permissions.Engenharia))
		{
			engenharia.POST("", servicoHandler.CreateServico)
			engenharia.PUT("/:id", servicoHandler.UpdateServico)
			engenharia.PUT("/:id/agendamento", servicoHandler.SetAgendamento)
			engenharia.POST("/:id/arquivar", servicoHandler.Archive)
			engenharia.POST("/:id/anexos", servicoHandler.UploadAnexo)
			engenharia.DELETE("/:id", servicoHandler.DeleteServico)
		}

		// Fichas são preenchidas em campo pela técnica; engenharia também edita.
		fichas := servicos.Group("/:id/fichas/:tipo", middleware.RequirePermission(permissions.Tecnica, permissions.Engenharia))
		{
			fichas.GET("", fichaHandler.ListFichas)
			fichas.POST("", fichaHandler.AppendFicha)
			fichas.PUT("/:fichaId", fichaHandler.UpdateFicha)
		}
	}

	tecnicos := rg.Group(PathTecnicos, middleware.RequirePermission(permissions.Engenharia))
	{
		tecnicos.POST("", tecnicoHandler.CreateTecnico)
		tecnicos.GET("", tecnicoHandler.ListTecnicos)
		tecnicos.GET("/:id", tecnicoHandler.GetTecnico)
		tecnicos.PUT("/:id", tecnicoHandler.UpdateTecnico)
		tecnicos.DELETE("/:id", tecnicoHandler.DeleteTecnico)
	}

	notificacoes := rg.Group(PathNotificacoes)
	{
		notificacoes.GET("", notificacaoHandler.GetCounts)
		notificacoes.POST("/:status/visto", notificacaoHandler.MarkViewing)
		notificacoes.DELETE("/:status/visto", notificacaoHandler.StopViewing)
	}
}
