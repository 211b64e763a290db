package memory

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/autoflow/autoflow/pkg/model"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store keeps every record in memory behind a single RWMutex. Handlers run
// concurrently under gin, so all reads and writes go through the lock; the
// store hands out copies, never pointers into its maps. Everything resets on
// restart — durable storage is a roadmap item.
type Store struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]model.User
	workflows    map[uuid.UUID]model.Workflow
	integrations map[uuid.UUID]model.Integration
	templates    map[uuid.UUID]model.Template
	executions   map[uuid.UUID]model.Execution
}

func NewStore() *Store {
	s := &Store{
		users:        make(map[uuid.UUID]model.User),
		workflows:    make(map[uuid.UUID]model.Workflow),
		integrations: make(map[uuid.UUID]model.Integration),
		templates:    make(map[uuid.UUID]model.Template),
		executions:   make(map[uuid.UUID]model.Execution),
	}
	s.seed()
	return s
}

// CreateUser enforces email uniqueness and assigns roles: the first
// registered user becomes the admin, everyone after that a plain user. Both
// decisions happen under the lock so concurrent registrations cannot race.
func (s *Store) CreateUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	if len(s.users) == 0 {
		user.Role = model.RoleAdmin
	} else {
		user.Role = model.RoleUser
	}
	user.CreatedAt = time.Now().UTC()

	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetUserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) GetUserByID(id uuid.UUID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *Store) CreateWorkflow(workflow *model.Workflow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	workflow.CreatedAt = now
	workflow.UpdatedAt = now
	s.workflows[workflow.ID] = cloneWorkflow(*workflow)
}

func (s *Store) GetWorkflow(id uuid.UUID) (*model.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workflow, ok := s.workflows[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := cloneWorkflow(workflow)
	return &found, nil
}

// ListWorkflows returns every workflow owned by userID, or all workflows when
// userID is uuid.Nil (admin listing). Ordered newest first.
func (s *Store) ListWorkflows(userID uuid.UUID) []model.Workflow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Workflow, 0)
	for _, workflow := range s.workflows {
		if userID != uuid.Nil && workflow.UserID != userID {
			continue
		}
		result = append(result, cloneWorkflow(workflow))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *Store) UpdateWorkflow(workflow *model.Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workflows[workflow.ID]; !ok {
		return ErrNotFound
	}
	workflow.UpdatedAt = time.Now().UTC()
	s.workflows[workflow.ID] = cloneWorkflow(*workflow)
	return nil
}

func (s *Store) DeleteWorkflow(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workflows[id]; !ok {
		return ErrNotFound
	}
	delete(s.workflows, id)
	return nil
}

func (s *Store) CreateIntegration(integration *model.Integration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	integration.CreatedAt = time.Now().UTC()
	s.integrations[integration.ID] = *integration
}

func (s *Store) ListIntegrations() []model.Integration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Integration, 0, len(s.integrations))
	for _, integration := range s.integrations {
		result = append(result, integration)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func (s *Store) GetTemplate(id uuid.UUID) (*model.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	template, ok := s.templates[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := cloneTemplate(template)
	return &found, nil
}

func (s *Store) ListTemplates() []model.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Template, 0, len(s.templates))
	for _, template := range s.templates {
		result = append(result, cloneTemplate(template))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func (s *Store) CreateExecution(execution *model.Execution) {
	s.mu.Lock()
	defer s.mu.Unlock()

	execution.StartedAt = time.Now().UTC()
	s.executions[execution.ID] = cloneExecution(*execution)
}

func (s *Store) GetExecution(id uuid.UUID) (*model.Execution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	execution, ok := s.executions[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := cloneExecution(execution)
	return &found, nil
}

// ListExecutions filters by owner and optionally by workflow. uuid.Nil means
// "any" for either argument.
func (s *Store) ListExecutions(userID, workflowID uuid.UUID) []model.Execution {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Execution, 0)
	for _, execution := range s.executions {
		if userID != uuid.Nil && execution.UserID != userID {
			continue
		}
		if workflowID != uuid.Nil && execution.WorkflowID != workflowID {
			continue
		}
		result = append(result, cloneExecution(execution))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	return result
}

// CompleteExecution flips a running execution to completed, appending the
// supplied log lines and stamping CompletedAt. Completing an execution that
// is not running is a no-op so a late timer never clobbers newer state.
func (s *Store) CompleteExecution(id uuid.UUID, logs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	execution, ok := s.executions[id]
	if !ok {
		return ErrNotFound
	}
	if execution.Status != model.ExecutionRunning {
		return nil
	}

	execution.Logs = append(execution.Logs, logs...)
	execution.Status = model.ExecutionCompleted
	now := time.Now().UTC()
	execution.CompletedAt = &now
	s.executions[id] = execution
	return nil
}

type Stats struct {
	Users        int `json:"users"`
	Workflows    int `json:"workflows"`
	Integrations int `json:"integrations"`
	Templates    int `json:"templates"`
	Executions   int `json:"executions"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Users:        len(s.users),
		Workflows:    len(s.workflows),
		Integrations: len(s.integrations),
		Templates:    len(s.templates),
		Executions:   len(s.executions),
	}
}

func cloneWorkflow(workflow model.Workflow) model.Workflow {
	workflow.Actions = append([]string(nil), workflow.Actions...)
	return workflow
}

func cloneTemplate(template model.Template) model.Template {
	template.Triggers = append([]string(nil), template.Triggers...)
	template.Actions = append([]string(nil), template.Actions...)
	return template
}

func cloneExecution(execution model.Execution) model.Execution {
	execution.Logs = append([]string(nil), execution.Logs...)
	return execution
}
