package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoflow/autoflow/pkg/model"
)

func newUser(email string) *model.User {
	return &model.User{ID: uuid.New(), Email: email, Name: "someone", PasswordHash: "x"}
}

func TestFirstUserBecomesAdmin(t *testing.T) {
	store := NewStore()

	first := newUser("first@example.com")
	require.NoError(t, store.CreateUser(first))
	assert.Equal(t, model.RoleAdmin, first.Role)

	second := newUser("second@example.com")
	require.NoError(t, store.CreateUser(second))
	assert.Equal(t, model.RoleUser, second.Role)
}

func TestDuplicateEmailRejected(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.CreateUser(newUser("dup@example.com")))

	err := store.CreateUser(newUser("dup@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestWorkflowOwnershipFiltering(t *testing.T) {
	store := NewStore()
	alice := uuid.New()
	bob := uuid.New()

	store.CreateWorkflow(&model.Workflow{ID: uuid.New(), UserID: alice, Name: "a1"})
	store.CreateWorkflow(&model.Workflow{ID: uuid.New(), UserID: alice, Name: "a2"})
	store.CreateWorkflow(&model.Workflow{ID: uuid.New(), UserID: bob, Name: "b1"})

	assert.Len(t, store.ListWorkflows(alice), 2)
	assert.Len(t, store.ListWorkflows(bob), 1)
	assert.Len(t, store.ListWorkflows(uuid.Nil), 3)
}

func TestWorkflowUpdateAndDelete(t *testing.T) {
	store := NewStore()
	workflow := &model.Workflow{ID: uuid.New(), UserID: uuid.New(), Name: "before"}
	store.CreateWorkflow(workflow)

	workflow.Name = "after"
	require.NoError(t, store.UpdateWorkflow(workflow))

	got, err := store.GetWorkflow(workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))

	require.NoError(t, store.DeleteWorkflow(workflow.ID))
	_, err = store.GetWorkflow(workflow.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.DeleteWorkflow(workflow.ID), ErrNotFound)
}

func TestStoreHandsOutCopies(t *testing.T) {
	store := NewStore()
	workflow := &model.Workflow{ID: uuid.New(), UserID: uuid.New(), Name: "wf", Actions: []string{"one"}}
	store.CreateWorkflow(workflow)

	got, err := store.GetWorkflow(workflow.ID)
	require.NoError(t, err)
	got.Actions[0] = "mutated"
	got.Name = "mutated"

	again, err := store.GetWorkflow(workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, "wf", again.Name)
	assert.Equal(t, []string{"one"}, again.Actions)
}

func TestCompleteExecution(t *testing.T) {
	store := NewStore()
	execution := &model.Execution{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		WorkflowID: uuid.New(),
		Status:     model.ExecutionRunning,
		Logs:       []string{"Execution started"},
	}
	store.CreateExecution(execution)

	require.NoError(t, store.CompleteExecution(execution.ID, []string{"done"}))

	got, err := store.GetExecution(execution.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ExecutionCompleted, got.Status)
	assert.Equal(t, []string{"Execution started", "done"}, got.Logs)
	require.NotNil(t, got.CompletedAt)

	// A second completion must not duplicate logs or move CompletedAt.
	completedAt := *got.CompletedAt
	require.NoError(t, store.CompleteExecution(execution.ID, []string{"again"}))
	got, err = store.GetExecution(execution.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Execution started", "done"}, got.Logs)
	assert.Equal(t, completedAt, *got.CompletedAt)
}

func TestCompleteUnknownExecution(t *testing.T) {
	store := NewStore()
	assert.ErrorIs(t, store.CompleteExecution(uuid.New(), nil), ErrNotFound)
}

func TestExecutionFiltering(t *testing.T) {
	store := NewStore()
	alice := uuid.New()
	workflowA := uuid.New()
	workflowB := uuid.New()

	store.CreateExecution(&model.Execution{ID: uuid.New(), UserID: alice, WorkflowID: workflowA, Status: model.ExecutionRunning})
	store.CreateExecution(&model.Execution{ID: uuid.New(), UserID: alice, WorkflowID: workflowB, Status: model.ExecutionRunning})
	store.CreateExecution(&model.Execution{ID: uuid.New(), UserID: uuid.New(), WorkflowID: workflowA, Status: model.ExecutionRunning})

	assert.Len(t, store.ListExecutions(alice, uuid.Nil), 2)
	assert.Len(t, store.ListExecutions(alice, workflowA), 1)
	assert.Len(t, store.ListExecutions(uuid.Nil, workflowA), 2)
	assert.Len(t, store.ListExecutions(uuid.Nil, uuid.Nil), 3)
}

func TestSeedCatalogs(t *testing.T) {
	store := NewStore()

	assert.NotEmpty(t, store.ListIntegrations())
	assert.NotEmpty(t, store.ListTemplates())

	stats := store.Stats()
	assert.Zero(t, stats.Users)
	assert.Zero(t, stats.Workflows)
	assert.Equal(t, len(store.ListIntegrations()), stats.Integrations)
	assert.Equal(t, len(store.ListTemplates()), stats.Templates)
}
