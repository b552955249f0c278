package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/repository/contract"
	"estateflow-be/internal/repository/specification"
	"estateflow-be/internal/repository/unitofwork"
	"estateflow-be/pkg/events"
)

// In-memory repository fakes. Specifications are interpreted by type switch,
// covering the subset the services under test actually use.

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUow struct {
	users          *fakeUserRepo
	properties     *fakePropertyRepo
	views          *fakeViewRepo
	wishlist       *fakeWishlistRepo
	conversations  *fakeConversationRepo
	messages       *fakeMessageRepo
	prompts        *fakePromptRepo
	changeRequests *fakeChangeRequestRepo
	statistics     *fakeStatisticsRepo
	filters        *fakeFilterRepo

	begins    int
	commits   int
	rollbacks int
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		users:          &fakeUserRepo{users: map[uuid.UUID]*entity.User{}, refreshTokens: map[string]*entity.RefreshToken{}},
		properties:     &fakePropertyRepo{properties: map[uuid.UUID]*entity.Property{}},
		views:          &fakeViewRepo{views: map[string]*entity.PropertyView{}},
		wishlist:       &fakeWishlistRepo{items: map[string]*entity.WishlistItem{}},
		conversations:  &fakeConversationRepo{conversations: map[uuid.UUID]*entity.Conversation{}},
		messages:       &fakeMessageRepo{},
		prompts:        &fakePromptRepo{prompts: map[string]*entity.SystemPrompt{}},
		changeRequests: &fakeChangeRequestRepo{requests: map[string]*entity.ChangeRequest{}},
		statistics:     &fakeStatisticsRepo{},
		filters:        &fakeFilterRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { u.begins++; return nil }
func (u *fakeUow) Commit() error                   { u.commits++; return nil }
func (u *fakeUow) Rollback() error                 { u.rollbacks++; return nil }

func (u *fakeUow) UserRepository() contract.UserRepository                   { return u.users }
func (u *fakeUow) PropertyRepository() contract.PropertyRepository           { return u.properties }
func (u *fakeUow) PropertyViewRepository() contract.PropertyViewRepository   { return u.views }
func (u *fakeUow) WishlistRepository() contract.WishlistRepository           { return u.wishlist }
func (u *fakeUow) ConversationRepository() contract.ConversationRepository   { return u.conversations }
func (u *fakeUow) MessageRepository() contract.MessageRepository             { return u.messages }
func (u *fakeUow) SystemPromptRepository() contract.SystemPromptRepository   { return u.prompts }
func (u *fakeUow) ChangeRequestRepository() contract.ChangeRequestRepository { return u.changeRequests }
func (u *fakeUow) SubscriptionRepository() contract.SubscriptionRepository   { return nil }
func (u *fakeUow) StatisticsRepository() contract.StatisticsRepository       { return u.statistics }
func (u *fakeUow) FilterRepository() contract.FilterRepository               { return u.filters }

// --- Users ---

type fakeUserRepo struct {
	users         map[uuid.UUID]*entity.User
	refreshTokens map[string]*entity.RefreshToken

	verificationTokens []*entity.EmailVerificationToken
	creds              []*entity.OAuthCredential
	revokedAllFor      []uuid.UUID
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		case specification.ByUsername:
			if u.Username != sp.Username {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.Id] = user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.Id] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if matchUser(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var result []*entity.User
	for _, u := range r.users {
		if matchUser(u, specs) {
			result = append(result, u)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeUserRepo) MarkEmailVerified(ctx context.Context, userId uuid.UUID) error {
	if u, ok := r.users[userId]; ok {
		u.IsEmailVerified = true
	}
	return nil
}

func (r *fakeUserRepo) UpdateEmail(ctx context.Context, userId uuid.UUID, email string) error {
	if u, ok := r.users[userId]; ok {
		u.Email = email
		u.IsEmailVerified = true
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	if u, ok := r.users[userId]; ok {
		u.PasswordHash = &hash
	}
	return nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, userId uuid.UUID, role entity.UserRole, listingLimit int) error {
	if u, ok := r.users[userId]; ok {
		u.Role = role
		u.ListingLimit = listingLimit
	}
	return nil
}

func (r *fakeUserRepo) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	r.verificationTokens = append(r.verificationTokens, token)
	return nil
}

func (r *fakeUserRepo) FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	for _, t := range r.verificationTokens {
		match := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByToken); ok && t.Token != sp.Token {
				match = false
			}
		}
		if match {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error {
	for i, t := range r.verificationTokens {
		if t.Id == id {
			r.verificationTokens = append(r.verificationTokens[:i], r.verificationTokens[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	r.refreshTokens[token.TokenHash] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.RefreshToken, error) {
	for _, t := range r.refreshTokens {
		match := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByTokenHash); ok && t.TokenHash != sp.Hash {
				match = false
			}
		}
		if match && !t.Revoked {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	if t, ok := r.refreshTokens[tokenHash]; ok {
		t.Revoked = true
	}
	return nil
}

func (r *fakeUserRepo) RevokeAllRefreshTokens(ctx context.Context, userId uuid.UUID) error {
	r.revokedAllFor = append(r.revokedAllFor, userId)
	for _, t := range r.refreshTokens {
		if t.UserId == userId {
			t.Revoked = true
		}
	}
	return nil
}

func (r *fakeUserRepo) SaveOAuthCredential(ctx context.Context, cred *entity.OAuthCredential) error {
	r.creds = append(r.creds, cred)
	return nil
}

func (r *fakeUserRepo) FindOAuthCredential(ctx context.Context, provider, providerUserId string) (*entity.OAuthCredential, error) {
	for _, c := range r.creds {
		if c.Provider == provider && c.ProviderUserId == providerUserId {
			return c, nil
		}
	}
	return nil, nil
}

// --- Properties ---

type fakePropertyRepo struct {
	properties map[uuid.UUID]*entity.Property
}

func matchProperty(p *entity.Property, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if p.Id != sp.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range sp.IDs {
				if p.Id == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.ByOwner:
			if p.OwnerId != sp.OwnerId {
				return false
			}
		case specification.ActiveListings:
			if p.Status != entity.PropertyStatusActive {
				return false
			}
		}
	}
	return true
}

func (r *fakePropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	stored := *property
	stored.Images = nil
	stored.PricingHistory = nil
	r.properties[property.Id] = &stored
	return nil
}

func (r *fakePropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	existing, ok := r.properties[property.Id]
	if !ok {
		return nil
	}
	updated := *property
	updated.Images = existing.Images
	updated.PricingHistory = existing.PricingHistory
	r.properties[property.Id] = &updated
	return nil
}

func (r *fakePropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.properties, id)
	return nil
}

func (r *fakePropertyRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Property, error) {
	for _, p := range r.properties {
		if matchProperty(p, specs) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePropertyRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Property, error) {
	var result []*entity.Property
	for _, p := range r.properties {
		if matchProperty(p, specs) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePropertyRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakePropertyRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) error {
	if p, ok := r.properties[id]; ok {
		p.Status = status
	}
	return nil
}

func (r *fakePropertyRepo) SetVerification(ctx context.Context, id uuid.UUID, verified bool, comments string) error {
	if p, ok := r.properties[id]; ok {
		p.IsVerified = verified
		p.VerificationComments = comments
	}
	return nil
}

func (r *fakePropertyRepo) AddImage(ctx context.Context, image *entity.PropertyImage) error {
	if p, ok := r.properties[image.PropertyId]; ok {
		p.Images = append(p.Images, image)
	}
	return nil
}

func (r *fakePropertyRepo) DeleteImage(ctx context.Context, imageId uuid.UUID) error {
	for _, p := range r.properties {
		for i, img := range p.Images {
			if img.Id == imageId {
				p.Images = append(p.Images[:i], p.Images[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (r *fakePropertyRepo) FindImages(ctx context.Context, propertyId uuid.UUID) ([]*entity.PropertyImage, error) {
	if p, ok := r.properties[propertyId]; ok {
		return p.Images, nil
	}
	return nil, nil
}

func (r *fakePropertyRepo) AddPricingHistory(ctx context.Context, record *entity.PricingHistory) error {
	if p, ok := r.properties[record.PropertyId]; ok {
		p.PricingHistory = append(p.PricingHistory, record)
	}
	return nil
}

func (r *fakePropertyRepo) FindPricingHistory(ctx context.Context, propertyId uuid.UUID) ([]*entity.PricingHistory, error) {
	if p, ok := r.properties[propertyId]; ok {
		return p.PricingHistory, nil
	}
	return nil, nil
}

// --- Views ---

type fakeViewRepo struct {
	views map[string]*entity.PropertyView
}

func viewKey(userId, propertyId uuid.UUID) string {
	return userId.String() + "/" + propertyId.String()
}

func (r *fakeViewRepo) Upsert(ctx context.Context, view *entity.PropertyView) error {
	key := viewKey(view.UserId, view.PropertyId)
	if existing, ok := r.views[key]; ok {
		existing.ViewedAt = view.ViewedAt
		return nil
	}
	r.views[key] = view
	return nil
}

func (r *fakeViewRepo) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.PropertyView, error) {
	var result []*entity.PropertyView
	for _, v := range r.views {
		if v.UserId == userId {
			result = append(result, v)
		}
	}
	return result, nil
}

func (r *fakeViewRepo) CountByProperty(ctx context.Context, propertyId uuid.UUID) (int64, error) {
	var count int64
	for _, v := range r.views {
		if v.PropertyId == propertyId {
			count++
		}
	}
	return count, nil
}

// --- Wishlist ---

type fakeWishlistRepo struct {
	items map[string]*entity.WishlistItem
}

func (r *fakeWishlistRepo) Add(ctx context.Context, item *entity.WishlistItem) error {
	r.items[viewKey(item.UserId, item.PropertyId)] = item
	return nil
}

func (r *fakeWishlistRepo) Remove(ctx context.Context, userId, propertyId uuid.UUID) error {
	delete(r.items, viewKey(userId, propertyId))
	return nil
}

func (r *fakeWishlistRepo) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.WishlistItem, error) {
	var result []*entity.WishlistItem
	for _, item := range r.items {
		if item.UserId == userId {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *fakeWishlistRepo) Exists(ctx context.Context, userId, propertyId uuid.UUID) (bool, error) {
	_, ok := r.items[viewKey(userId, propertyId)]
	return ok, nil
}

// --- Conversations ---

type fakeConversationRepo struct {
	conversations map[uuid.UUID]*entity.Conversation
}

func (r *fakeConversationRepo) Create(ctx context.Context, c *entity.Conversation) error {
	r.conversations[c.Id] = c
	return nil
}

func (r *fakeConversationRepo) Update(ctx context.Context, c *entity.Conversation) error {
	r.conversations[c.Id] = c
	return nil
}

func (r *fakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	for _, c := range r.conversations {
		match := true
		for _, s := range specs {
			switch sp := s.(type) {
			case specification.ByID:
				if c.Id != sp.ID {
					match = false
				}
			case specification.OwnedBy:
				if c.UserId != sp.UserId {
					match = false
				}
			}
		}
		if match {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	var result []*entity.Conversation
	for _, c := range r.conversations {
		match := true
		for _, s := range specs {
			if sp, ok := s.(specification.OwnedBy); ok && c.UserId != sp.UserId {
				match = false
			}
		}
		if match {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeConversationRepo) FindActiveByUser(ctx context.Context, userId uuid.UUID) (*entity.Conversation, error) {
	for _, c := range r.conversations {
		if c.UserId == userId && c.IsActive {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) Deactivate(ctx context.Context, conversationId uuid.UUID) error {
	if c, ok := r.conversations[conversationId]; ok {
		c.IsActive = false
	}
	return nil
}

// --- Messages ---

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entity.Message
	for _, m := range r.messages {
		match := true
		for _, s := range specs {
			switch sp := s.(type) {
			case specification.ByConversation:
				if m.ConversationId != sp.ConversationId {
					match = false
				}
			case specification.VisibleOnly:
				if !m.IsVisible {
					match = false
				}
			}
		}
		if match {
			result = append(result, m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- System Prompts ---

type fakePromptRepo struct {
	prompts map[string]*entity.SystemPrompt
}

func (r *fakePromptRepo) Create(ctx context.Context, prompt *entity.SystemPrompt) error {
	r.prompts[prompt.Name] = prompt
	return nil
}

func (r *fakePromptRepo) UpdateContentByName(ctx context.Context, name, content string) error {
	if p, ok := r.prompts[name]; ok {
		p.Content = content
	}
	return nil
}

func (r *fakePromptRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SystemPrompt, error) {
	for _, p := range r.prompts {
		match := true
		for _, s := range specs {
			switch sp := s.(type) {
			case specification.ByName:
				if p.Name != sp.Name {
					match = false
				}
			case specification.ByID:
				if p.Id != sp.ID {
					match = false
				}
			}
		}
		if match {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePromptRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemPrompt, error) {
	var result []*entity.SystemPrompt
	for _, p := range r.prompts {
		result = append(result, p)
	}
	return result, nil
}

// --- Change Requests ---

type fakeChangeRequestRepo struct {
	requests map[string]*entity.ChangeRequest
}

func (r *fakeChangeRequestRepo) Create(ctx context.Context, request *entity.ChangeRequest) error {
	r.requests[request.Token] = request
	return nil
}

func (r *fakeChangeRequestRepo) FindByToken(ctx context.Context, token string) (*entity.ChangeRequest, error) {
	if req, ok := r.requests[token]; ok {
		return req, nil
	}
	return nil, nil
}

func (r *fakeChangeRequestRepo) Consume(ctx context.Context, token string) (bool, error) {
	if _, ok := r.requests[token]; !ok {
		return false, nil
	}
	delete(r.requests, token)
	return true, nil
}

func (r *fakeChangeRequestRepo) DeleteByUserAndType(ctx context.Context, userId uuid.UUID, reqType entity.ChangeRequestType) error {
	for token, req := range r.requests {
		if req.UserId == userId && req.Type == reqType {
			delete(r.requests, token)
		}
	}
	return nil
}

func (r *fakeChangeRequestRepo) DeleteExpired(ctx context.Context) (int64, error) {
	var deleted int64
	now := time.Now()
	for token, req := range r.requests {
		if !req.ExpiresAt.After(now) {
			delete(r.requests, token)
			deleted++
		}
	}
	return deleted, nil
}

// --- Statistics ---

type fakeStatisticsRepo struct {
	regionCounts map[string]int
	regionAvgs   map[string]*float64
}

func (r *fakeStatisticsRepo) CountPropertiesByRegion(ctx context.Context, region string, from, to time.Time) (int, error) {
	return r.regionCounts[region], nil
}

func (r *fakeStatisticsRepo) PriceStatsByRegion(ctx context.Context, region string, from, to time.Time) (*entity.RegionPriceStats, error) {
	return &entity.RegionPriceStats{Region: region, Avg: r.regionAvgs[region]}, nil
}

func (r *fakeStatisticsRepo) AveragePriceByRegion(ctx context.Context, region string, from, to time.Time) (*float64, error) {
	return r.regionAvgs[region], nil
}

func (r *fakeStatisticsRepo) CountPropertyViews(ctx context.Context, propertyId uuid.UUID, from, to time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeStatisticsRepo) TotalSales(ctx context.Context, from, to time.Time) (*entity.SalesTotals, error) {
	return &entity.SalesTotals{}, nil
}

func (r *fakeStatisticsRepo) TopViewedProperties(ctx context.Context, from, to time.Time, limit int) ([]*entity.ViewedProperty, error) {
	return nil, nil
}

func (r *fakeStatisticsRepo) NewUsersByRole(ctx context.Context, from, to time.Time) (*entity.NewUserStats, error) {
	return &entity.NewUserStats{}, nil
}

// --- Filters ---

type fakeFilterRepo struct {
	priceRange *entity.ValueRange
	areaRange  *entity.ValueRange
	rooms      []int
}

func (r *fakeFilterRepo) PriceRange(ctx context.Context) (*entity.ValueRange, error) {
	if r.priceRange == nil {
		return &entity.ValueRange{}, nil
	}
	return r.priceRange, nil
}

func (r *fakeFilterRepo) AreaRange(ctx context.Context) (*entity.ValueRange, error) {
	if r.areaRange == nil {
		return &entity.ValueRange{}, nil
	}
	return r.areaRange, nil
}

func (r *fakeFilterRepo) DistinctRooms(ctx context.Context) ([]int, error) {
	return r.rooms, nil
}

func (r *fakeFilterRepo) DistinctTransactionTypes(ctx context.Context) ([]string, error) {
	return []string{"rent", "sale"}, nil
}

func (r *fakeFilterRepo) DistinctPropertyTypes(ctx context.Context) ([]string, error) {
	return []string{"apartment", "house"}, nil
}

// --- Publisher / Mailer ---

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	return nil
}

func (p *fakePublisher) PublishEvent(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) published() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Event, len(p.events))
	copy(out, p.events)
	return out
}

type fakeMailer struct {
	mu            sync.Mutex
	verifications int
	emailChanges  int
	passwords     int
	resets        int
	receipts      int
}

func (m *fakeMailer) SendVerificationToken(toEmail, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verifications++
	return nil
}

func (m *fakeMailer) SendEmailChangeConfirmation(toEmail, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emailChanges++
	return nil
}

func (m *fakeMailer) SendPasswordChangeConfirmation(toEmail, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passwords++
	return nil
}

func (m *fakeMailer) SendPasswordResetLink(toEmail, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
	return nil
}

func (m *fakeMailer) SendSubscriptionReceipt(toEmail, planName string, amount float64, currency string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts++
	return nil
}
