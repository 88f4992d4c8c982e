package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const reportTimeout = 2 * time.Minute

// AccountsReportConfig representa a configuração do relatório periódico de contas
type AccountsReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// AccountsReportService agenda e executa o relatório de contas por plataforma e status
type AccountsReportService struct {
	scheduler   *gocron.Scheduler
	config      AccountsReportConfig
	accountRepo repository.AccountRepository

	mutex                 sync.Mutex
	running               bool
	lastReportStartedAt   time.Time
	lastReportCompletedAt time.Time
	lastError             string
	lastSummary           []*domain.AccountsSummaryItem
}

// NewAccountsReportService cria uma nova instância do serviço de relatório de contas
func NewAccountsReportService(accountRepo repository.AccountRepository, appConfig *config.Config) *AccountsReportService {
	reportConfig := AccountsReportConfig{
		CronSchedule: appConfig.AccountsReport.CronSchedule,
		Enabled:      appConfig.AccountsReport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do relatório de contas carregada")

	return &AccountsReportService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      reportConfig,
		accountRepo: accountRepo,
	}
}

// Start inicia o agendador. Não faz nada quando o relatório está desabilitado.
func (s *AccountsReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório de contas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório de contas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runReport()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de contas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório de contas")
		s.scheduler.Stop()
	}()

	return nil
}

// tryAcquire marca o relatório como em execução; retorna false se já houver um em andamento
func (s *AccountsReportService) tryAcquire() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastReportStartedAt = time.Now()
	return true
}

func (s *AccountsReportService) runReport() {
	if !s.tryAcquire() {
		logrus.Info("Relatório de contas já em andamento, ignorando")
		return
	}
	s.generate()
}

// generate consulta o resumo e guarda o resultado. Exige tryAcquire antes.
func (s *AccountsReportService) generate() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	summary, err := s.accountRepo.SummarizeAccounts(ctx)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.running = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao gerar relatório de contas")
		return
	}

	s.lastError = ""
	s.lastSummary = summary
	s.lastReportCompletedAt = time.Now()

	total := 0
	for _, item := range summary {
		total += item.Quantity
		logrus.WithFields(logrus.Fields{
			"platform": item.Platform,
			"status":   item.Status,
			"quantity": item.Quantity,
		}).Info("Contas por plataforma e status")
	}

	logrus.WithFields(logrus.Fields{
		"total":    total,
		"duration": s.lastReportCompletedAt.Sub(s.lastReportStartedAt).String(),
	}).Info("Relatório de contas concluído")
}

// TriggerManualSync dispara o relatório fora do agendamento.
// Retorna false quando já existe uma execução em andamento.
func (s *AccountsReportService) TriggerManualSync() bool {
	if !s.tryAcquire() {
		logrus.Info("Relatório de contas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando relatório manual de contas")
	go s.generate()
	return true
}

// GetStatus retorna o status atual do agendador e o último resumo gerado
func (s *AccountsReportService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":                  s.config.Enabled,
		"cron":                     s.config.CronSchedule,
		"running":                  s.running,
		"last_report_started_at":   s.lastReportStartedAt,
		"last_report_completed_at": s.lastReportCompletedAt,
		"last_error":               s.lastError,
		"last_summary":             s.lastSummary,
	}
}
