package impl

import (
	"context"

	"qualifica/internal/domain/entity"
	"qualifica/internal/domain/repository"

	"github.com/google/uuid"
)

// Hand-rolled stubs: each method delegates to a function field, so a test
// configures only the calls it expects. An unconfigured call panics, which
// surfaces as a test failure.

type sellerRepoStub struct {
	findByPhone func(ctx context.Context, phone string) (*entity.Seller, error)
	create      func(ctx context.Context, seller *entity.Seller) error
	updatePhoto func(ctx context.Context, phone, photoURL string) (*entity.Seller, error)
}

func (s *sellerRepoStub) FindByPhone(ctx context.Context, phone string) (*entity.Seller, error) {
	return s.findByPhone(ctx, phone)
}

func (s *sellerRepoStub) Create(ctx context.Context, seller *entity.Seller) error {
	return s.create(ctx, seller)
}

func (s *sellerRepoStub) UpdatePhoto(ctx context.Context, phone, photoURL string) (*entity.Seller, error) {
	return s.updatePhoto(ctx, phone, photoURL)
}

type ratingRepoStub struct {
	findByID           func(ctx context.Context, id uuid.UUID) (*entity.Rating, error)
	findActiveBySeller func(ctx context.Context, sellerID uuid.UUID) ([]*entity.Rating, error)
	list               func(ctx context.Context, filter repository.RatingFilter, offset, limit int) ([]*entity.Rating, int64, error)
	create             func(ctx context.Context, rating *entity.Rating) error
	softDelete         func(ctx context.Context, id uuid.UUID, deletion entity.Deletion) error
	countByGroup       func(ctx context.Context, groupID uuid.UUID) (int64, error)
}

func (s *ratingRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	return s.findByID(ctx, id)
}

func (s *ratingRepoStub) FindActiveBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Rating, error) {
	return s.findActiveBySeller(ctx, sellerID)
}

func (s *ratingRepoStub) List(ctx context.Context, filter repository.RatingFilter, offset, limit int) ([]*entity.Rating, int64, error) {
	return s.list(ctx, filter, offset, limit)
}

func (s *ratingRepoStub) Create(ctx context.Context, rating *entity.Rating) error {
	return s.create(ctx, rating)
}

func (s *ratingRepoStub) SoftDelete(ctx context.Context, id uuid.UUID, deletion entity.Deletion) error {
	return s.softDelete(ctx, id, deletion)
}

func (s *ratingRepoStub) CountByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	return s.countByGroup(ctx, groupID)
}

type groupRepoStub struct {
	findByID  func(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	findAll   func(ctx context.Context) ([]*entity.Group, error)
	findByIDs func(ctx context.Context, ids []uuid.UUID) ([]*entity.Group, error)
	create    func(ctx context.Context, group *entity.Group) error
	update    func(ctx context.Context, group *entity.Group) error
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (s *groupRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	return s.findByID(ctx, id)
}

func (s *groupRepoStub) FindAll(ctx context.Context) ([]*entity.Group, error) {
	return s.findAll(ctx)
}

func (s *groupRepoStub) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Group, error) {
	return s.findByIDs(ctx, ids)
}

func (s *groupRepoStub) Create(ctx context.Context, group *entity.Group) error {
	return s.create(ctx, group)
}

func (s *groupRepoStub) Update(ctx context.Context, group *entity.Group) error {
	return s.update(ctx, group)
}

func (s *groupRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type adminRepoStub struct {
	findByID      func(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	findByEmail   func(ctx context.Context, email string) (*entity.Admin, error)
	findAll       func(ctx context.Context) ([]*entity.Admin, error)
	create        func(ctx context.Context, admin *entity.Admin) error
	update        func(ctx context.Context, admin *entity.Admin) error
	replaceGroups func(ctx context.Context, adminID uuid.UUID, groupIDs []uuid.UUID) error
}

func (s *adminRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	return s.findByID(ctx, id)
}

func (s *adminRepoStub) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return s.findByEmail(ctx, email)
}

func (s *adminRepoStub) FindAll(ctx context.Context) ([]*entity.Admin, error) {
	return s.findAll(ctx)
}

func (s *adminRepoStub) Create(ctx context.Context, admin *entity.Admin) error {
	return s.create(ctx, admin)
}

func (s *adminRepoStub) Update(ctx context.Context, admin *entity.Admin) error {
	return s.update(ctx, admin)
}

func (s *adminRepoStub) ReplaceGroups(ctx context.Context, adminID uuid.UUID, groupIDs []uuid.UUID) error {
	return s.replaceGroups(ctx, adminID, groupIDs)
}

type bannerRepoStub struct {
	findByID             func(ctx context.Context, id uuid.UUID) (*entity.Banner, error)
	findActive           func(ctx context.Context) ([]*entity.Banner, error)
	findAll              func(ctx context.Context) ([]*entity.Banner, error)
	create               func(ctx context.Context, banner *entity.Banner) error
	update               func(ctx context.Context, banner *entity.Banner) error
	delete               func(ctx context.Context, id uuid.UUID) error
	deactivateByPosition func(ctx context.Context, position entity.BannerPosition) error
	incrementVisits      func(ctx context.Context, id uuid.UUID) error
}

func (s *bannerRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	return s.findByID(ctx, id)
}

func (s *bannerRepoStub) FindActive(ctx context.Context) ([]*entity.Banner, error) {
	return s.findActive(ctx)
}

func (s *bannerRepoStub) FindAll(ctx context.Context) ([]*entity.Banner, error) {
	return s.findAll(ctx)
}

func (s *bannerRepoStub) Create(ctx context.Context, banner *entity.Banner) error {
	return s.create(ctx, banner)
}

func (s *bannerRepoStub) Update(ctx context.Context, banner *entity.Banner) error {
	return s.update(ctx, banner)
}

func (s *bannerRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

func (s *bannerRepoStub) DeactivateByPosition(ctx context.Context, position entity.BannerPosition) error {
	return s.deactivateByPosition(ctx, position)
}

func (s *bannerRepoStub) IncrementVisits(ctx context.Context, id uuid.UUID) error {
	return s.incrementVisits(ctx, id)
}

// txManagerStub runs the transactional function against a stub factory
// without any real transaction underneath.
type txManagerStub struct {
	factory *repoFactoryStub
}

func (s *txManagerStub) Execute(_ context.Context, fn func(factory repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

type repoFactoryStub struct {
	sellers *sellerRepoStub
	ratings *ratingRepoStub
	admins  *adminRepoStub
	banners *bannerRepoStub
	groups  *groupRepoStub
}

func (s *repoFactoryStub) SellerRepo() repository.SellerRepository { return s.sellers }
func (s *repoFactoryStub) RatingRepo() repository.RatingRepository { return s.ratings }
func (s *repoFactoryStub) AdminRepo() repository.AdminRepository   { return s.admins }
func (s *repoFactoryStub) BannerRepo() repository.BannerRepository { return s.banners }
func (s *repoFactoryStub) GroupRepo() repository.GroupRepository   { return s.groups }

type hasherStub struct {
	hash  func(password string) (string, error)
	check func(password, hash string) bool
}

func (s *hasherStub) Hash(password string) (string, error) {
	return s.hash(password)
}

func (s *hasherStub) Check(password, hash string) bool {
	return s.check(password, hash)
}

type tokenServiceStub struct {
	generate func(principal *entity.Principal) (string, error)
	validate func(tokenString string) (*entity.Principal, error)
}

func (s *tokenServiceStub) GenerateToken(principal *entity.Principal) (string, error) {
	return s.generate(principal)
}

func (s *tokenServiceStub) ValidateToken(tokenString string) (*entity.Principal, error) {
	return s.validate(tokenString)
}

type imageStorageStub struct {
	save func(ctx context.Context, data []byte, contentType, folder string) (string, error)
}

func (s *imageStorageStub) Save(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	return s.save(ctx, data, contentType, folder)
}

// Principal fixtures shared by the usecase tests.

func superPrincipal() *entity.Principal {
	return &entity.Principal{
		ID:   uuid.New(),
		Name: "Root",
		Role: entity.RoleSuperAdmin,
	}
}

func memberPrincipal(groupIDs ...uuid.UUID) *entity.Principal {
	return &entity.Principal{
		ID:       uuid.New(),
		Name:     "Membro",
		Role:     entity.RoleAdmin,
		GroupIDs: groupIDs,
	}
}
