package handlers_test

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/handlers"
	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/models"
	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/store"
)

// Function-field stubs let each test wire only the calls it expects.

type stubUserStore struct {
	createFn     func(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	getByIDFn    func(ctx context.Context, id int) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	listFn       func(ctx context.Context, offset, limit int) ([]models.User, error)
	updateFn     func(ctx context.Context, id int, patch store.UserPatch) (*models.User, error)
	deleteFn     func(ctx context.Context, id int) (bool, error)
}

func (s *stubUserStore) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	return s.createFn(ctx, username, email, passwordHash)
}
func (s *stubUserStore) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *stubUserStore) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	return s.listFn(ctx, offset, limit)
}
func (s *stubUserStore) Update(ctx context.Context, id int, patch store.UserPatch) (*models.User, error) {
	return s.updateFn(ctx, id, patch)
}
func (s *stubUserStore) Delete(ctx context.Context, id int) (bool, error) {
	return s.deleteFn(ctx, id)
}

type stubProductStore struct {
	createFn         func(ctx context.Context, p models.Product) (*models.Product, error)
	getByIDFn        func(ctx context.Context, id int) (*models.Product, error)
	listFn           func(ctx context.Context, offset, limit int) ([]models.Product, error)
	listByCategoryFn func(ctx context.Context, category string) ([]models.Product, error)
	updateFn         func(ctx context.Context, id int, patch store.ProductPatch) (*models.Product, error)
	deleteFn         func(ctx context.Context, id int) (bool, error)
}

func (s *stubProductStore) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	return s.createFn(ctx, p)
}
func (s *stubProductStore) GetByID(ctx context.Context, id int) (*models.Product, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubProductStore) List(ctx context.Context, offset, limit int) ([]models.Product, error) {
	return s.listFn(ctx, offset, limit)
}
func (s *stubProductStore) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.listByCategoryFn(ctx, category)
}
func (s *stubProductStore) Update(ctx context.Context, id int, patch store.ProductPatch) (*models.Product, error) {
	return s.updateFn(ctx, id, patch)
}
func (s *stubProductStore) Delete(ctx context.Context, id int) (bool, error) {
	return s.deleteFn(ctx, id)
}

type stubOrderStore struct {
	createFn          func(ctx context.Context, userID int, totalAmount models.Money) (*models.Order, error)
	createWithItemsFn func(ctx context.Context, userID int, items []store.OrderItemInput) (*models.Order, error)
	getByIDFn         func(ctx context.Context, id int) (*models.Order, error)
	listByUserFn      func(ctx context.Context, userID int) ([]models.Order, error)
	updateStatusFn    func(ctx context.Context, id int, status string) (*models.Order, error)
	deleteFn          func(ctx context.Context, id int) (bool, error)
}

func (s *stubOrderStore) Create(ctx context.Context, userID int, totalAmount models.Money) (*models.Order, error) {
	return s.createFn(ctx, userID, totalAmount)
}
func (s *stubOrderStore) CreateWithItems(ctx context.Context, userID int, items []store.OrderItemInput) (*models.Order, error) {
	return s.createWithItemsFn(ctx, userID, items)
}
func (s *stubOrderStore) GetByID(ctx context.Context, id int) (*models.Order, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubOrderStore) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *stubOrderStore) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	return s.updateStatusFn(ctx, id, status)
}
func (s *stubOrderStore) Delete(ctx context.Context, id int) (bool, error) {
	return s.deleteFn(ctx, id)
}

type stubCartStore struct {
	addFn            func(ctx context.Context, userID, productID, quantity int) (*models.CartItem, error)
	getByIDFn        func(ctx context.Context, id int) (*models.CartItem, error)
	listByUserFn     func(ctx context.Context, userID int) ([]models.CartItem, error)
	updateQuantityFn func(ctx context.Context, id, quantity int) (*models.CartItem, error)
	removeFn         func(ctx context.Context, id int) (bool, error)
	clearFn          func(ctx context.Context, userID int) error
}

func (s *stubCartStore) Add(ctx context.Context, userID, productID, quantity int) (*models.CartItem, error) {
	return s.addFn(ctx, userID, productID, quantity)
}
func (s *stubCartStore) GetByID(ctx context.Context, id int) (*models.CartItem, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubCartStore) ListByUser(ctx context.Context, userID int) ([]models.CartItem, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *stubCartStore) UpdateQuantity(ctx context.Context, id, quantity int) (*models.CartItem, error) {
	return s.updateQuantityFn(ctx, id, quantity)
}
func (s *stubCartStore) Remove(ctx context.Context, id int) (bool, error) {
	return s.removeFn(ctx, id)
}
func (s *stubCartStore) Clear(ctx context.Context, userID int) error {
	return s.clearFn(ctx, userID)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func userRouter(s handlers.UserStore) *gin.Engine {
	r := newTestRouter()
	handlers.NewUserHandler(s).RegisterRoutes(r)
	return r
}

func productRouter(s handlers.ProductStore) *gin.Engine {
	r := newTestRouter()
	handlers.NewProductHandler(s).RegisterRoutes(r)
	return r
}

func orderRouter(s handlers.OrderStore) *gin.Engine {
	r := newTestRouter()
	handlers.NewOrderHandler(s).RegisterRoutes(r)
	return r
}

func cartRouter(s handlers.CartStore) *gin.Engine {
	r := newTestRouter()
	handlers.NewCartHandler(s).RegisterRoutes(r)
	return r
}
