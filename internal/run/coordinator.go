package run

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/automailer/internal/compose"
	"github.com/MKhiriev/automailer/internal/config"
	"github.com/MKhiriev/automailer/internal/delivery"
	"github.com/MKhiriev/automailer/internal/ledger"
	"github.com/MKhiriev/automailer/internal/logger"
	"github.com/MKhiriev/automailer/internal/portal"
	"github.com/MKhiriev/automailer/models"
)

// State labels one step of the run state machine.
type State string

const (
	StateIdle           State = "idle"
	StateAuthenticating State = "authenticating"
	StateSyncing        State = "syncing"
	StateProcessing     State = "processing"
	StateCommitting     State = "committing"
	StateDone           State = "done"
	StateFailed         State = "failed"
)

// Coordinator drives one run end to end. Statements are processed strictly
// sequentially: a failure on one must not leave its siblings partially
// dispatched.
type Coordinator struct {
	portal     portal.Client
	composer   compose.DocumentComposer
	dispatcher delivery.StatementDispatcher
	ledger     ledger.Repository

	statePath string
	watermark time.Time
	now       func() time.Time

	state  State
	logger *logger.Logger
}

// NewCoordinator wires a Coordinator. The watermark and artifact path come
// from cfg; every run gets a fresh run_id logging field.
func NewCoordinator(
	portalClient portal.Client,
	composer compose.DocumentComposer,
	dispatcher delivery.StatementDispatcher,
	repo ledger.Repository,
	cfg *config.StructuredConfig,
	log *logger.Logger,
) *Coordinator {
	runLog := &logger.Logger{Logger: log.With().Str("run_id", newRunID()).Logger()}

	return &Coordinator{
		portal:     portalClient,
		composer:   composer,
		dispatcher: dispatcher,
		ledger:     repo,
		statePath:  cfg.JSONFilePath,
		watermark:  cfg.State.LastDate,
		now:        time.Now,
		state:      StateIdle,
		logger:     runLog,
	}
}

// Run executes the pipeline. A nil return covers both a full dispatch run and
// "no new statements"; the watermark is committed only on the former.
func (c *Coordinator) Run(ctx context.Context) error {
	ctx = c.logger.WithContext(ctx)

	c.transition(StateAuthenticating)
	session, err := c.portal.Login(ctx)
	if err != nil {
		return c.fail(err)
	}

	c.transition(StateSyncing)
	records, err := c.portal.FetchNew(ctx, session, c.watermark)
	if err != nil {
		return c.fail(err)
	}

	if len(records) == 0 {
		c.logger.Info().Msg("no new statements")
		c.transition(StateDone)
		return nil
	}

	c.transition(StateProcessing)
	for _, record := range records {
		if err = c.process(ctx, record); err != nil {
			return c.fail(err)
		}
	}

	c.transition(StateCommitting)
	if err = config.CommitWatermark(c.statePath, c.now()); err != nil {
		return c.fail(err)
	}

	c.transition(StateDone)
	return nil
}

// process composes and dispatches one statement, recording it in the ledger.
// Statements already present in the ledger are skipped: they were delivered
// by a run that died before committing the watermark.
func (c *Coordinator) process(ctx context.Context, record models.StatementRecord) error {
	// record context only, never the document bytes
	recordLog := &logger.Logger{Logger: c.logger.With().
		Str("statement_id", record.ID).
		Time("created_at", record.CreatedAt).
		Logger()}
	ctx = recordLog.WithContext(ctx)

	dispatched, err := c.ledger.IsDispatched(ctx, record.ID)
	if err != nil {
		return err
	}
	if dispatched {
		recordLog.Info().Msg("statement already dispatched, skipping")
		return nil
	}

	recordLog.Info().Msg("composing document")
	document, err := c.composer.Compose(ctx, record.Document)
	if err != nil {
		return err
	}

	report, err := c.dispatcher.Dispatch(ctx, record.ID, document)
	if err != nil {
		return err
	}

	entry := models.DispatchEntry{
		StatementID:  record.ID,
		CreatedAt:    record.CreatedAt,
		DispatchedAt: c.now(),
		Channels:     deliveredChannels(report),
	}
	if err = c.ledger.RecordDispatch(ctx, entry); err != nil {
		return err
	}

	recordLog.Info().Msg("statement processed")
	return nil
}

// State returns the current run state.
func (c *Coordinator) State() State {
	return c.state
}

func (c *Coordinator) transition(next State) {
	c.logger.Debug().Str("from", string(c.state)).Str("to", string(next)).Msg("run state transition")
	c.state = next
}

func (c *Coordinator) fail(err error) error {
	c.state = StateFailed
	c.logger.Err(err).Msg("run failed")
	return err
}

func deliveredChannels(report models.DeliveryReport) string {
	names := make([]string, 0, len(report.Results))
	for _, res := range report.Results {
		if res.Err == nil {
			names = append(names, string(res.Channel))
		}
	}
	return strings.Join(names, ",")
}

func newRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
