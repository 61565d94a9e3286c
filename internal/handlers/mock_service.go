package handlers

import (
	"context"

	"checklist_api/internal/models"
	"checklist_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser models.User
	registerErr  error
	loginToken   string
	loginErr     error
	parseID      int
	parseErr     error

	lastRegisterName  string
	lastRegisterEmail string
	lastLoginEmail    string
	lastParseToken    string
}

func (m *mockAuth) Register(name, email, password string) (models.User, error) {
	m.lastRegisterName = name
	m.lastRegisterEmail = email
	return m.registerUser, m.registerErr
}
func (m *mockAuth) Login(email, password string) (string, error) {
	m.lastLoginEmail = email
	return m.loginToken, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockChecklists struct {
	createResp models.Checklist
	createErr  error
	listResp   []models.Checklist
	listErr    error
	getResp    models.Checklist
	getErr     error
	deleteErr  error

	lastUserID      int
	lastChecklistID int
	lastParams      service.ChecklistParams
	deleteCalls     int
}

func (m *mockChecklists) Create(ctx context.Context, userID int, p service.ChecklistParams) (models.Checklist, error) {
	m.lastUserID = userID
	m.lastParams = p
	return m.createResp, m.createErr
}
func (m *mockChecklists) List(ctx context.Context, userID int) ([]models.Checklist, error) {
	m.lastUserID = userID
	return m.listResp, m.listErr
}
func (m *mockChecklists) Get(ctx context.Context, userID, checklistID int) (models.Checklist, error) {
	m.lastUserID = userID
	m.lastChecklistID = checklistID
	return m.getResp, m.getErr
}
func (m *mockChecklists) Delete(ctx context.Context, userID, checklistID int) error {
	m.lastUserID = userID
	m.lastChecklistID = checklistID
	m.deleteCalls++
	return m.deleteErr
}

type mockItems struct {
	createResp models.Item
	createErr  error
	listResp   []models.Item
	listErr    error
	updateResp models.Item
	updateErr  error
	toggleResp models.Item
	toggleErr  error
	deleteErr  error

	lastUserID       int
	lastChecklistID  int
	lastItemID       int
	lastCreateParams service.ItemParams
	lastUpdateParams service.ItemUpdateParams
	toggleCalls      int
	deleteCalls      int
}

func (m *mockItems) Create(ctx context.Context, userID, checklistID int, p service.ItemParams) (models.Item, error) {
	m.lastUserID = userID
	m.lastChecklistID = checklistID
	m.lastCreateParams = p
	return m.createResp, m.createErr
}
func (m *mockItems) List(ctx context.Context, userID, checklistID int) ([]models.Item, error) {
	m.lastUserID = userID
	m.lastChecklistID = checklistID
	return m.listResp, m.listErr
}
func (m *mockItems) Update(ctx context.Context, userID, itemID int, p service.ItemUpdateParams) (models.Item, error) {
	m.lastUserID = userID
	m.lastItemID = itemID
	m.lastUpdateParams = p
	return m.updateResp, m.updateErr
}
func (m *mockItems) ToggleStatus(ctx context.Context, userID, itemID int) (models.Item, error) {
	m.lastUserID = userID
	m.lastItemID = itemID
	m.toggleCalls++
	return m.toggleResp, m.toggleErr
}
func (m *mockItems) Delete(ctx context.Context, userID, itemID int) error {
	m.lastUserID = userID
	m.lastItemID = itemID
	m.deleteCalls++
	return m.deleteErr
}

// newTestRouter builds the real router over mocked services.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}
