package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookkeeper/internal/config"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

// Advisory lock keys for the long-running matcher operations. Arbitrary but
// stable values; each operation excludes concurrent runs of itself across all
// service instances.
const (
	lockKeyReconcile  int64 = 74210001
	lockKeyDetectGaps int64 = 74210002
	lockKeySmartMatch int64 = 74210003
)

// ReconcileRunResult pairs the gateway's run summary with the refreshed
// workspace snapshot. Overview is nil when the run succeeded but the refresh
// failed; the run itself is not rolled back for a read failure.
type ReconcileRunResult struct {
	Results  *port.ReconcileResults `json:"results"`
	Overview *domain.Overview       `json:"overview,omitempty"`
}

// GapScanResult pairs gap-detection findings with the refreshed snapshot.
type GapScanResult struct {
	Results  *port.GapResults `json:"results"`
	Overview *domain.Overview `json:"overview,omitempty"`
}

// SmartMatchResult pairs a smart-match run summary with the refreshed snapshot.
type SmartMatchResult struct {
	Results  *port.SmartMatchResults `json:"results"`
	Overview *domain.Overview        `json:"overview,omitempty"`
}

// DetectGapsInput bounds a gap scan. Zero values mean "use the configured
// trailing window ending today".
type DetectGapsInput struct {
	StartDate string
	EndDate   string
}

// ReconcileService orchestrates the remote matcher operations. Each operation
// holds a cross-instance advisory lock for its duration and refreshes the
// workspace snapshot exactly once after a successful gateway call.
type ReconcileService interface {
	RunReconciliation(ctx context.Context, scope domain.ReconcileScope) (*ReconcileRunResult, error)
	DetectGaps(ctx context.Context, input *DetectGapsInput) (*GapScanResult, error)
	SmartMatch(ctx context.Context) (*SmartMatchResult, error)
}

type reconcileService struct {
	matcher      port.Matcher
	locker       port.AdvisoryLocker
	billRepo     port.BillRepository
	invoiceRepo  port.InvoiceRepository
	paymentRepo  port.PaymentRepository
	feedbackRepo port.FeedbackRepository
	overview     OverviewService
	matcherCfg   config.MatcherConfig
	gapsCfg      config.GapsConfig
}

// NewReconcileService creates a new ReconcileService implementation.
func NewReconcileService(
	matcher port.Matcher,
	locker port.AdvisoryLocker,
	billRepo port.BillRepository,
	invoiceRepo port.InvoiceRepository,
	paymentRepo port.PaymentRepository,
	feedbackRepo port.FeedbackRepository,
	overview OverviewService,
	matcherCfg config.MatcherConfig,
	gapsCfg config.GapsConfig,
) ReconcileService {
	return &reconcileService{
		matcher:      matcher,
		locker:       locker,
		billRepo:     billRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		feedbackRepo: feedbackRepo,
		overview:     overview,
		matcherCfg:   matcherCfg,
		gapsCfg:      gapsCfg,
	}
}

// acquire takes the advisory lock for key or reports the operation as already
// running. The returned release func must be called once.
func (s *reconcileService) acquire(ctx context.Context, op string, key int64) (func(), error) {
	ok, err := s.locker.TryLock(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reconcileService.%s: acquiring lock: %w", op, err)
	}
	if !ok {
		return nil, domain.ErrReconciliationInProgress
	}
	return func() {
		// Release must survive caller cancellation or the lock leaks until
		// the pinned connection dies.
		if err := s.locker.Unlock(context.WithoutCancel(ctx), key); err != nil {
			log.Printf("reconcileService.%s: releasing lock: %v", op, err)
		}
	}, nil
}

// refresh fetches the post-run snapshot. A refresh failure does not fail the
// run; the caller gets the run summary with a nil overview.
func (s *reconcileService) refresh(ctx context.Context, op string) *domain.Overview {
	ov, err := s.overview.Snapshot(ctx)
	if err != nil {
		log.Printf("reconcileService.%s: snapshot refresh failed: %v", op, err)
		return nil
	}
	return ov
}

func (s *reconcileService) RunReconciliation(ctx context.Context, scope domain.ReconcileScope) (*ReconcileRunResult, error) {
	if !domain.ValidReconcileScopes[scope] {
		return nil, domain.ErrInvalidReconcileScope
	}

	release, err := s.acquire(ctx, "RunReconciliation", lockKeyReconcile)
	if err != nil {
		return nil, err
	}
	defer release()

	results, err := s.matcher.Reconcile(ctx, &port.ReconcileRequest{
		Type:                 scope,
		AutoApproveThreshold: s.matcherCfg.AutoApproveThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("reconcileService.RunReconciliation: %w", err)
	}
	log.Printf("reconcileService.RunReconciliation: scope=%s autoMatched=%d needsReview=%d",
		scope, results.AutoMatched, results.NeedsReview)

	return &ReconcileRunResult{
		Results:  results,
		Overview: s.refresh(ctx, "RunReconciliation"),
	}, nil
}

func (s *reconcileService) DetectGaps(ctx context.Context, input *DetectGapsInput) (*GapScanResult, error) {
	start, end := input.StartDate, input.EndDate
	if start == "" || end == "" {
		now := time.Now()
		end = now.Format("2006-01-02")
		start = now.AddDate(0, 0, -s.gapsCfg.TrailingWindowDays).Format("2006-01-02")
	}

	release, err := s.acquire(ctx, "DetectGaps", lockKeyDetectGaps)
	if err != nil {
		return nil, err
	}
	defer release()

	results, err := s.matcher.DetectGaps(ctx, &port.GapRequest{StartDate: start, EndDate: end})
	if err != nil {
		return nil, fmt.Errorf("reconcileService.DetectGaps: %w", err)
	}
	log.Printf("reconcileService.DetectGaps: window=%s..%s riskScore=%.2f missingBills=%d missingInvoices=%d",
		start, end, results.RiskScore, len(results.MissingBills), len(results.MissingInvoices))

	return &GapScanResult{
		Results:  results,
		Overview: s.refresh(ctx, "DetectGaps"),
	}, nil
}

// SmartMatch ships the full unreconciled state plus a bounded sample of recent
// human feedback to the gateway. State is gathered before the gateway call so
// a slow matcher never holds repository reads open.
func (s *reconcileService) SmartMatch(ctx context.Context) (*SmartMatchResult, error) {
	release, err := s.acquire(ctx, "SmartMatch", lockKeySmartMatch)
	if err != nil {
		return nil, err
	}
	defer release()

	bills, err := s.billRepo.ListUnpaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcileService.SmartMatch: listing unpaid bills: %w", err)
	}
	invoices, err := s.invoiceRepo.ListUnpaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcileService.SmartMatch: listing unpaid invoices: %w", err)
	}
	payments, err := s.paymentRepo.ListUnbound(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcileService.SmartMatch: listing unbound payments: %w", err)
	}
	feedback, err := s.feedbackRepo.ListRecent(ctx, s.matcherCfg.FeedbackSampleSize)
	if err != nil {
		return nil, fmt.Errorf("reconcileService.SmartMatch: listing feedback: %w", err)
	}

	results, err := s.matcher.SmartMatch(ctx, &port.SmartMatchRequest{
		UnmatchedBills:    bills,
		UnmatchedInvoices: invoices,
		Payments:          payments,
		UserFeedback:      feedback,
	})
	if err != nil {
		return nil, fmt.Errorf("reconcileService.SmartMatch: %w", err)
	}
	log.Printf("reconcileService.SmartMatch: autoMatched=%d needsReview=%d warnings=%d",
		results.AutoMatched, results.NeedsReview, len(results.Warnings))

	return &SmartMatchResult{
		Results:  results,
		Overview: s.refresh(ctx, "SmartMatch"),
	}, nil
}
