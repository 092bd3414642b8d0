package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/config"
	deliverycontext "github.com/sankalpsthakur/astronova-sub007/internal/delivery/context"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/lifecycle"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/infra/jyotish"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface. Generation runs on a
// single background worker fed by a bounded queue; requests return
// immediately with the report in pending status.
type reportService struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	ephemeris  service.EphemerisService
	chatModel  service.ChatModel
	queue      chan uuid.UUID
	done       chan struct{}
	logger     *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In
	fx.Lifecycle

	ReportRepo repository.ReportRepository
	UserRepo   repository.UserRepository
	Ephemeris  service.EphemerisService
	ChatModel  service.ChatModel
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService. It registers the
// background generation worker with the application lifecycle.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	queueSize := 64
	if params.Config != nil && params.Config.Reports != nil && params.Config.Reports.QueueSize > 0 {
		queueSize = params.Config.Reports.QueueSize
	}

	srv := &reportService{
		reportRepo: params.ReportRepo,
		userRepo:   params.UserRepo,
		ephemeris:  params.Ephemeris,
		chatModel:  params.ChatModel,
		queue:      make(chan uuid.UUID, queueSize),
		done:       make(chan struct{}),
		logger:     params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go srv.worker()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			close(srv.queue)

			select {
			case <-srv.done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})

	return srv
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReport enqueues generation of a report and returns it in pending status.
func (srv *reportService) RequestReport(ctx context.Context, userID uuid.UUID, reportType entity.ReportType) (*entity.DetailedReport, error) {
	if !reportType.IsValid() {
		return nil, domainerrors.ErrReportTypeInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.Profile.Complete() {
		return nil, domainerrors.ErrProfileIncomplete
	}

	report := &entity.DetailedReport{
		UserID: userID,
		Type:   reportType,
		Title:  reportTitle(reportType, user.Profile.FullName),
		Status: entity.ReportPending,
	}
	if err := srv.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to create report")
	}

	select {
	case srv.queue <- report.ID:
	default:
		srv.log(ctx).Warn("Report queue full", slog.Any("reportID", report.ID))

		report.Status = entity.ReportFailed
		if updateErr := srv.reportRepo.UpdateReport(ctx, report); updateErr != nil {
			srv.log(ctx).Error("Failed to mark report failed", slog.Any("error", updateErr))
		}

		return nil, domainerrors.ErrInternalError.WrapMessage("report generation queue is full")
	}

	srv.log(ctx).Info("Report enqueued", slog.Any("reportID", report.ID), slog.String("type", string(reportType)))

	return report, nil
}

// GetReport returns a report with its current status after checking ownership.
func (srv *reportService) GetReport(ctx context.Context, userID, reportID uuid.UUID) (*entity.DetailedReport, error) {
	report, err := srv.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	if report.UserID != userID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	return report, nil
}

// ListReports returns the user's reports, newest first.
func (srv *reportService) ListReports(ctx context.Context, userID uuid.UUID) ([]*entity.DetailedReport, error) {
	reports, err := srv.reportRepo.FindReportsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return reports, nil
}

// worker drains the generation queue until it is closed.
func (srv *reportService) worker() {
	defer close(srv.done)

	for reportID := range srv.queue {
		srv.generate(reportID)
	}
}

func (srv *reportService) generate(reportID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	report, err := srv.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		srv.logger.Error("Report vanished before generation", slog.Any("reportID", reportID), slog.Any("error", err))

		return
	}

	report.Status = entity.ReportGenerating
	if err := srv.reportRepo.UpdateReport(ctx, report); err != nil {
		srv.logger.Error("Failed to mark report generating", slog.Any("reportID", reportID), slog.Any("error", err))

		return
	}

	summary, content, err := srv.compose(ctx, report)
	if err != nil {
		srv.logger.Error("Report generation failed", slog.Any("reportID", reportID), slog.Any("error", err))

		report.Status = entity.ReportFailed
		if updateErr := srv.reportRepo.UpdateReport(ctx, report); updateErr != nil {
			srv.logger.Error("Failed to mark report failed", slog.Any("reportID", reportID), slog.Any("error", updateErr))
		}

		return
	}

	now := time.Now()
	report.Summary = summary
	report.Content = content
	report.Status = entity.ReportReady
	report.GeneratedAt = &now

	if err := srv.reportRepo.UpdateReport(ctx, report); err != nil {
		srv.logger.Error("Failed to store generated report", slog.Any("reportID", reportID), slog.Any("error", err))

		return
	}

	srv.logger.Info("Report generated", slog.Any("reportID", reportID), slog.String("type", string(report.Type)))
}

// compose builds the report text from the owner's chart.
func (srv *reportService) compose(ctx context.Context, report *entity.DetailedReport) (summary, content string, err error) {
	user, err := srv.userRepo.FindByID(ctx, report.UserID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to load report owner")
	}
	if !user.Profile.Complete() {
		return "", "", errors.New("profile incomplete")
	}

	profile := user.Profile
	moment, err := profile.Birth.Moment()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to resolve birth moment")
	}

	positions := srv.ephemeris.PositionsAt(moment, service.ZodiacSidereal)

	var moonLon float64
	var moonNakshatra string
	for _, pos := range positions {
		if pos.Planet == entity.Moon {
			moonLon = pos.Longitude
			moonNakshatra = pos.Nakshatra

			break
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Prepared for %s, born %s in %s.\n\n",
		profile.FullName, moment.Format("2 January 2006"), profile.Birth.Place)

	fmt.Fprintf(&b, "Planetary positions at birth:\n")
	for _, pos := range positions {
		retro := ""
		if pos.Retrograde {
			retro = " (retrograde)"
		}
		fmt.Fprintf(&b, "  %s in %s at %.1f degrees, %s pada %d%s\n",
			pos.Planet, pos.Sign, pos.SignDegree, pos.Nakshatra, pos.Pada, retro)
	}
	b.WriteString("\n")

	timeline := jyotish.VimshottariTimeline(moment, moonLon)
	if maha, antar := jyotish.CurrentDasha(timeline, time.Now()); maha != nil {
		fmt.Fprintf(&b, "You are running the %s mahadasha (until %s)",
			maha.Lord, maha.End.Format("January 2006"))
		if antar != nil {
			fmt.Fprintf(&b, " with the %s antardasha", antar.Lord)
		}
		b.WriteString(".\n\n")
	}

	b.WriteString(reportBody(report.Type, profile, moonNakshatra))

	content = b.String()
	summary = srv.summarize(ctx, report.Type, profile, moonNakshatra, content)

	return summary, content, nil
}

// summarize asks the chat model for a short summary of the composed report.
// Model failures fall back to a summary drawn directly from the chart.
func (srv *reportService) summarize(ctx context.Context, reportType entity.ReportType, profile *entity.Profile, moonNakshatra, content string) string {
	fallback := fmt.Sprintf("%s drawn from the Moon in %s (%s nakshatra).",
		reportSummaryLead(reportType), profile.MoonSign, moonNakshatra)

	prompt := fmt.Sprintf("Summarise this %s report in two sentences for the reader.", reportType)
	summary, err := srv.chatModel.Reply(ctx, content, nil, prompt)
	if err != nil {
		srv.log(ctx).Warn("Report summary model failed, using chart summary", slog.Any("error", err))

		return fallback
	}
	if strings.TrimSpace(summary) == "" {
		return fallback
	}

	return summary
}

func reportSummaryLead(reportType entity.ReportType) string {
	switch reportType {
	case entity.ReportCareer:
		return "Career insights"
	case entity.ReportLove:
		return "Relationship insights"
	case entity.ReportYearAhead:
		return "Year ahead insights"
	default:
		return "Natal chart insights"
	}
}

func reportTitle(reportType entity.ReportType, fullName string) string {
	switch reportType {
	case entity.ReportCareer:
		return fmt.Sprintf("Career path report for %s", fullName)
	case entity.ReportLove:
		return fmt.Sprintf("Love and relationships report for %s", fullName)
	case entity.ReportYearAhead:
		return fmt.Sprintf("Year ahead report for %s", fullName)
	default:
		return fmt.Sprintf("Natal chart report for %s", fullName)
	}
}

func reportBody(reportType entity.ReportType, profile *entity.Profile, moonNakshatra string) string {
	switch reportType {
	case entity.ReportCareer:
		return fmt.Sprintf("With your Moon in %s, your working style favours what %s placements do best. "+
			"The tenth house themes of your chart reward consistency over spectacle this cycle. "+
			"Watch the months when your antardasha lord changes for openings worth acting on.",
			profile.MoonSign, profile.MoonSign)
	case entity.ReportLove:
		return fmt.Sprintf("Venus and the seventh house describe how you bond. Your %s Moon in %s colours "+
			"your emotional needs in relationships. Partnerships formed under a supportive tara carry "+
			"more ease; the match feature can score a specific chart against yours.",
			profile.MoonSign, moonNakshatra)
	case entity.ReportYearAhead:
		return fmt.Sprintf("The year ahead unfolds in chapters set by your running dashas. With the Moon in %s "+
			"(%s), the months favouring launches are those when the transiting Moon returns to your "+
			"janma nakshatra. Keep the bigger commitments for those windows.",
			profile.MoonSign, moonNakshatra)
	default:
		return fmt.Sprintf("Your natal chart centres on a %s Sun, a %s Moon in %s nakshatra, and %s. "+
			"Together they describe a temperament that carries both the fixity of its sign lords and "+
			"the adaptability of its nakshatra. The positions above are the raw material for every "+
			"other reading in this app.",
			profile.SunSign, profile.MoonSign, moonNakshatra, risingLine(profile.RisingSign))
	}
}

func risingLine(rising string) string {
	if rising == "" {
		return "an ascendant left uncast for want of a birth time"
	}

	return fmt.Sprintf("a %s ascendant", rising)
}
