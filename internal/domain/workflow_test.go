package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sccremover.dev/pkg/sccremover/internal/adapter"
	adaptermocks "sccremover.dev/pkg/sccremover/internal/adapter/mocks"
	controllermocks "sccremover.dev/pkg/sccremover/internal/controller/mocks"
	"sccremover.dev/pkg/sccremover/internal/domain"
	domainmocks "sccremover.dev/pkg/sccremover/internal/domain/mocks"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

type workflowMocks struct {
	store   *adaptermocks.MockReportStore
	locker  *adaptermocks.MockRunLocker
	ui      *controllermocks.MockUI
	remover *domainmocks.MockRemover
}

func newWorkflowMocks() workflowMocks {
	return workflowMocks{
		store:   new(adaptermocks.MockReportStore),
		locker:  new(adaptermocks.MockRunLocker),
		ui:      new(controllermocks.MockUI),
		remover: new(domainmocks.MockRemover),
	}
}

func (w workflowMocks) workflow() domain.Workflow {
	return domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), w.store, w.locker, w.ui, w.remover)
}

func (w workflowMocks) assertExpectations(t *testing.T) {
	w.store.AssertExpectations(t)
	w.locker.AssertExpectations(t)
	w.ui.AssertExpectations(t)
	w.remover.AssertExpectations(t)
}

func trackedRelease(released *bool) func() error {
	return func() error {
		*released = true
		return nil
	}
}

func TestWorkflow_Remove_AssumeYes(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks()
	root := m.Path(t.TempDir())
	released := false

	var logged []string

	mocks.locker.EXPECT().Acquire(root).Return(trackedRelease(&released), nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Log(mock.Anything, mock.Anything).Run(func(_ context.Context, entry m.LogEntry) {
		logged = append(logged, entry.Message)
	}).Return()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(s m.Summary) bool {
		return s.Root == root
	})).Return(nil).Once()

	mocks.remover.EXPECT().Remove(mock.Anything, mock.MatchedBy(func(args domain.RemoveArgs) bool {
		return args.Root == root &&
			args.ExtraDirectories == "bin" &&
			args.DefaultFileTypes == "suo" &&
			args.DefaultDirectories == "TestResults" &&
			args.RunID != ""
	})).RunAndReturn(func(_ context.Context, args domain.RemoveArgs) m.Summary {
		args.Logger.Logf("Starting processing")
		return m.Summary{RunID: args.RunID, Root: args.Root}
	}).Once()

	wf := mocks.workflow()

	// Act
	summary, err := wf.Remove(context.Background(), domain.RunArgs{
		Root:               root,
		ExtraDirectories:   "bin",
		DefaultFileTypes:   "suo",
		DefaultDirectories: "TestResults",
		AssumeYes:          true,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, root, summary.Root)
	assert.True(t, released)
	assert.Equal(t, []string{"Start removing SCC content.", "Starting processing", "Removing SCC content finished"}, logged)
	mocks.assertExpectations(t)
}

func TestWorkflow_Remove_Confirmed(t *testing.T) {
	mocks := newWorkflowMocks()
	root := m.Path(t.TempDir())
	released := false

	mocks.locker.EXPECT().Acquire(root).Return(trackedRelease(&released), nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Confirm(mock.Anything, root).Return(true, nil).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Log(mock.Anything, mock.Anything).Return()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.remover.EXPECT().Remove(mock.Anything, mock.Anything).Return(m.Summary{Root: root}).Once()

	_, err := mocks.workflow().Remove(context.Background(), domain.RunArgs{Root: root})

	require.NoError(t, err)
	assert.True(t, released)
	mocks.assertExpectations(t)
}

func TestWorkflow_Remove_Declined(t *testing.T) {
	mocks := newWorkflowMocks()
	root := m.Path(t.TempDir())
	released := false

	mocks.locker.EXPECT().Acquire(root).Return(trackedRelease(&released), nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Confirm(mock.Anything, root).Return(false, nil).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	_, err := mocks.workflow().Remove(context.Background(), domain.RunArgs{Root: root})

	require.ErrorIs(t, err, domain.ErrRunCancelled)
	assert.True(t, released)
	mocks.remover.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	mocks.assertExpectations(t)
}

func TestWorkflow_Remove_ConfirmError(t *testing.T) {
	mocks := newWorkflowMocks()
	root := m.Path(t.TempDir())
	confirmErr := errors.New("stdin closed")

	mocks.locker.EXPECT().Acquire(root).Return(trackedRelease(new(bool)), nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Confirm(mock.Anything, root).Return(false, confirmErr).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	_, err := mocks.workflow().Remove(context.Background(), domain.RunArgs{Root: root})

	require.ErrorIs(t, err, confirmErr)
	mocks.assertExpectations(t)
}

func TestWorkflow_Remove_StartError(t *testing.T) {
	mocks := newWorkflowMocks()
	root := m.Path(t.TempDir())
	startErr := errors.New("no terminal")
	released := false

	mocks.locker.EXPECT().Acquire(root).Return(trackedRelease(&released), nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything).Return(startErr).Once()

	_, err := mocks.workflow().Remove(context.Background(), domain.RunArgs{Root: root, AssumeYes: true})

	require.ErrorIs(t, err, startErr)
	assert.True(t, released)
	mocks.assertExpectations(t)
}

func TestWorkflow_Remove_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    domain.RunArgs
		wantErr error
	}{
		{"missing root", domain.RunArgs{}, domain.ErrRootRequired},
		{"wildcard directory", domain.RunArgs{Root: "x", ExtraDirectories: "bin;*"}, domain.ErrInvalidPatternList},
		{"path file type", domain.RunArgs{Root: "x", DefaultFileTypes: "a/b"}, domain.ErrInvalidPatternList},
		{"parent default directory", domain.RunArgs{Root: "x", DefaultDirectories: ".."}, domain.ErrInvalidPatternList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newWorkflowMocks()

			_, err := mocks.workflow().Remove(context.Background(), tt.args)

			require.ErrorIs(t, err, tt.wantErr)
			mocks.assertExpectations(t)
		})
	}
}

func TestWorkflow_Remove_LockHeld(t *testing.T) {
	mocks := newWorkflowMocks()
	root := m.Path(t.TempDir())

	mocks.locker.EXPECT().Acquire(root).Return(nil, adapter.ErrRunInProgress).Once()

	_, err := mocks.workflow().Remove(context.Background(), domain.RunArgs{Root: root, AssumeYes: true})

	require.ErrorIs(t, err, adapter.ErrRunInProgress)
	mocks.assertExpectations(t)
}

func TestWorkflow_Remove_SavesReport(t *testing.T) {
	mocks := newWorkflowMocks()
	root := m.Path(t.TempDir())
	reportPath := m.Path("report.yaml")

	mocks.locker.EXPECT().Acquire(root).Return(trackedRelease(new(bool)), nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Log(mock.Anything, mock.Anything).Return()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.remover.EXPECT().Remove(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, args domain.RemoveArgs) m.Summary {
		args.Logger.Logf("Deleting file >%s<", "a.suo")
		return m.Summary{RunID: args.RunID, Root: args.Root, Aborted: true}
	}).Once()
	mocks.store.EXPECT().SaveReport(reportPath, mock.MatchedBy(func(report m.RunReport) bool {
		return report.Version == m.CurrentReportVersion &&
			report.Summary.Aborted &&
			len(report.Entries) == 3 &&
			report.Entries[1].Message == "Deleting file >a.suo<"
	})).Return(nil).Once()

	summary, err := mocks.workflow().Remove(context.Background(), domain.RunArgs{Root: root, AssumeYes: true, Report: reportPath})

	require.NoError(t, err)
	assert.True(t, summary.Aborted)
	mocks.assertExpectations(t)
}

func TestWorkflow_Remove_ReportSaveError(t *testing.T) {
	mocks := newWorkflowMocks()
	root := m.Path(t.TempDir())
	saveErr := errors.New("disk full")

	mocks.locker.EXPECT().Acquire(root).Return(trackedRelease(new(bool)), nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Log(mock.Anything, mock.Anything).Return()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.remover.EXPECT().Remove(mock.Anything, mock.Anything).Return(m.Summary{Root: root}).Once()
	mocks.store.EXPECT().SaveReport(m.Path("out.yaml"), mock.Anything).Return(saveErr).Once()

	summary, err := mocks.workflow().Remove(context.Background(), domain.RunArgs{Root: root, AssumeYes: true, Report: "out.yaml"})

	require.ErrorIs(t, err, saveErr)
	assert.Equal(t, root, summary.Root)
	mocks.assertExpectations(t)
}

func TestWorkflow_View(t *testing.T) {
	mocks := newWorkflowMocks()
	report := m.RunReport{Version: m.CurrentReportVersion, Summary: m.Summary{RunID: "r1"}}

	mocks.store.EXPECT().LoadReport(m.Path("r.yaml")).Return(report, nil).Once()
	mocks.ui.EXPECT().DisplayReport(mock.Anything, report).Return(nil).Once()

	err := mocks.workflow().View(context.Background(), domain.ViewArgs{Report: "r.yaml"})

	require.NoError(t, err)
	mocks.assertExpectations(t)
}

func TestWorkflow_View_LoadError(t *testing.T) {
	mocks := newWorkflowMocks()

	mocks.store.EXPECT().LoadReport(m.Path("r.yaml")).Return(m.RunReport{}, adapter.ErrUnsupportedReportVersion).Once()

	err := mocks.workflow().View(context.Background(), domain.ViewArgs{Report: "r.yaml"})

	require.ErrorIs(t, err, adapter.ErrUnsupportedReportVersion)
	mocks.assertExpectations(t)
}
