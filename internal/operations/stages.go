package operations

import (
	"context"
	"fmt"

	"campaignclean/internal/config"
	"campaignclean/internal/dataprocessing"
	"campaignclean/internal/exporter"
	"campaignclean/internal/infrastructure"
	"campaignclean/pkg/contracts/domain"
)

// Step IDs in run order
const (
	StepIDLoad      = "load"
	StepIDSchema    = "schema"
	StepIDClient    = "client"
	StepIDCampaign  = "campaign"
	StepIDEconomics = "economics"
	StepIDWrite     = "write"
)

// Derived table names
const (
	TableClient    = "client"
	TableCampaign  = "campaign"
	TableEconomics = "economics"
)

// LoadStep reads every archive in the input directory
type LoadStep struct {
	BaseStep
	loader   *dataprocessing.Loader
	inputDir string
}

// NewLoadStep creates the load step
func NewLoadStep(loader *dataprocessing.Loader, inputDir string) *LoadStep {
	return &LoadStep{
		BaseStep: NewBaseStep(StepIDLoad, "Load archives"),
		loader:   loader,
		inputDir: inputDir,
	}
}

// Execute implements Step
func (s *LoadStep) Execute(ctx context.Context, state *RunState) error {
	set, err := s.loader.Load(ctx, s.inputDir)
	if err != nil {
		return err
	}
	state.Unified = set
	return nil
}

// SchemaStep checks that every consumed column is present before any
// transform runs
type SchemaStep struct {
	BaseStep
}

// NewSchemaStep creates the schema check step
func NewSchemaStep() *SchemaStep {
	return &SchemaStep{BaseStep: NewBaseStep(StepIDSchema, "Check columns")}
}

// Execute implements Step
func (s *SchemaStep) Execute(ctx context.Context, state *RunState) error {
	if state.Unified == nil {
		return ErrMissingInput
	}
	return dataprocessing.RequireColumns(state.Unified)
}

// TransformStep derives one table from the unified set
type TransformStep struct {
	BaseStep
	build func(set *domain.UnifiedSet) domain.Table
}

// Execute implements Step
func (s *TransformStep) Execute(ctx context.Context, state *RunState) error {
	if state.Unified == nil {
		return ErrMissingInput
	}
	state.AddTable(s.build(state.Unified))
	return nil
}

// NewClientStep creates the client table transform
func NewClientStep() *TransformStep {
	return &TransformStep{
		BaseStep: NewBaseStep(StepIDClient, "Build client table"),
		build: func(set *domain.UnifiedSet) domain.Table {
			return domain.NewTable(TableClient, domain.ClientColumns, dataprocessing.TransformClient(set))
		},
	}
}

// NewCampaignStep creates the campaign table transform
func NewCampaignStep() *TransformStep {
	return &TransformStep{
		BaseStep: NewBaseStep(StepIDCampaign, "Build campaign table"),
		build: func(set *domain.UnifiedSet) domain.Table {
			return domain.NewTable(TableCampaign, domain.CampaignColumns, dataprocessing.TransformCampaign(set))
		},
	}
}

// NewEconomicsStep creates the economics table transform
func NewEconomicsStep() *TransformStep {
	return &TransformStep{
		BaseStep: NewBaseStep(StepIDEconomics, "Build economics table"),
		build: func(set *domain.UnifiedSet) domain.Table {
			return domain.NewTable(TableEconomics, domain.EconomicsColumns, dataprocessing.TransformEconomics(set))
		},
	}
}

// WriteStep persists every derived table to its output file
type WriteStep struct {
	BaseStep
	writer  *exporter.CSVWriter
	targets map[string]string
	metrics *infrastructure.RunMetrics
}

// NewWriteStep creates the write step. Table destinations come from paths.
func NewWriteStep(writer *exporter.CSVWriter, paths *config.Paths, metrics *infrastructure.RunMetrics) *WriteStep {
	return &WriteStep{
		BaseStep: NewBaseStep(StepIDWrite, "Write tables"),
		writer:   writer,
		targets: map[string]string{
			TableClient:    paths.ClientCSV,
			TableCampaign:  paths.CampaignCSV,
			TableEconomics: paths.EconomicsCSV,
		},
		metrics: metrics,
	}
}

// Execute implements Step. Every table must have one row per unified record.
func (s *WriteStep) Execute(ctx context.Context, state *RunState) error {
	if state.Unified == nil || len(state.Tables) != len(s.targets) {
		return ErrMissingInput
	}

	for _, table := range state.Tables {
		if table.Len() != state.Unified.Len() {
			return fmt.Errorf("table %s has %d rows, expected %d", table.Name, table.Len(), state.Unified.Len())
		}
	}

	for _, table := range state.Tables {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, ok := s.targets[table.Name]
		if !ok {
			return fmt.Errorf("no output file configured for table %s", table.Name)
		}
		if err := s.writer.WriteTable(target, table); err != nil {
			return err
		}
		s.metrics.RowsWritten.WithLabelValues(table.Name).Add(float64(table.Len()))
	}
	return nil
}
