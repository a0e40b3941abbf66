package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"nexar/internal/domain/entity"
	"nexar/internal/domain/repository"
	"nexar/pkg/errors"
)

// In-memory fakes for the ports the use cases depend on.

// testMaxUploadSize keeps upload-cap tests cheap: 1MB instead of the
// production default.
const testMaxUploadSize = int64(1 << 20)

type fakeProfileRepo struct {
	mu        sync.Mutex
	profiles  map[string]*entity.Profile
	probeErr  error
	failNext  bool
	updateErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*entity.Profile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return errors.Internal("store unavailable", nil)
	}
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, errors.NotFound("Profile", nil)
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Profile", nil)
}

func (r *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Profile", nil)
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.profiles[p.ID]; !ok {
		return errors.NotFound("Profile", nil)
	}
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, id)
	return nil
}

func (r *fakeProfileRepo) Probe(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.probeErr
}

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[string]*entity.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*entity.Listing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, l *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.listings[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, errors.NotFound("Listing", nil)
}

func (r *fakeListingRepo) ListAll(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Same status scoping as the real store: active unless told otherwise.
	listingStatus := filter.Status
	if listingStatus == "" && !filter.AnyStatus {
		listingStatus = "active"
	}

	var out []*entity.Listing
	for _, l := range r.listings {
		if listingStatus != "" && l.Status != listingStatus {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, l *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[l.ID]; !ok {
		return errors.NotFound("Listing", nil)
	}
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.listings[id]; ok {
		l.ViewsCount++
	}
	return nil
}

func (r *fakeListingRepo) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Listing
	for _, l := range r.listings {
		if l.SellerID == sellerID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []*entity.Review
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *review
	r.reviews = append(r.reviews, &cp)
	return nil
}

func (r *fakeReviewRepo) ListByReviewedID(ctx context.Context, reviewedID string) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Review
	for _, review := range r.reviews {
		if review.ReviewedID == reviewedID {
			cp := *review
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[string]*entity.Favorite
	listings  *fakeListingRepo
}

func newFakeFavoriteRepo(listings *fakeListingRepo) *fakeFavoriteRepo {
	return &fakeFavoriteRepo{
		favorites: make(map[string]*entity.Favorite),
		listings:  listings,
	}
}

func favKey(userID, listingID string) string {
	return userID + "_" + listingID
}

func (r *fakeFavoriteRepo) Add(ctx context.Context, userID, listingID string) (*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fav := &entity.Favorite{ID: favKey(userID, listingID), UserID: userID, ListingID: listingID}
	r.favorites[fav.ID] = fav
	return fav, nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, userID, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.favorites, favKey(userID, listingID))
	return nil
}

func (r *fakeFavoriteRepo) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.favorites[favKey(userID, listingID)]
	return ok, nil
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]entity.FavoriteWithListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.FavoriteWithListing
	for _, fav := range r.favorites {
		if fav.UserID != userID {
			continue
		}
		listing, err := r.listings.GetByID(ctx, fav.ListingID)
		if err != nil {
			continue
		}
		out = append(out, entity.FavoriteWithListing{
			ID:        fav.ID,
			UserID:    fav.UserID,
			ListingID: fav.ListingID,
			Listing:   listing,
		})
	}
	return out, nil
}

func (r *fakeFavoriteRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, fav := range r.favorites {
		if fav.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[string]*entity.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string]*entity.Message)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.messages[m.ID] = &cp
	return nil
}

func (r *fakeMessageRepo) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.messages[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, errors.NotFound("Message", nil)
}

func (r *fakeMessageRepo) ListForUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Message
	for _, m := range r.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.messages[id]; ok {
		m.Read = true
		return nil
	}
	return errors.NotFound("Message", nil)
}

// fakeAuthClient simulates the auth provider with an in-memory account map.
type fakeAuthClient struct {
	mu       sync.Mutex
	accounts map[string]string // email -> password
	uids     map[string]string // email -> uid
	names    map[string]string // uid -> display name
	nextUID  int
	resets   []string
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		accounts: make(map[string]string),
		uids:     make(map[string]string),
		names:    make(map[string]string),
	}
}

type emailExistsError struct{}

func (emailExistsError) Error() string { return "email already exists" }

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[email]; ok {
		return "", emailExistsError{}
	}
	f.nextUID++
	uid := fmt.Sprintf("uid-%d", f.nextUID)
	f.accounts[email] = password
	f.uids[email] = uid
	f.names[uid] = displayName
	return uid, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return token, nil
}

func (f *fakeAuthClient) GetIdentity(ctx context.Context, uid string) (*entity.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, id := range f.uids {
		if id == uid {
			return &entity.Identity{UID: uid, Email: email, DisplayName: f.names[uid]}, nil
		}
	}
	return nil, errors.NotFound("Identity", nil)
}

func (f *fakeAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, id := range f.uids {
		if id == uid {
			f.accounts[email] = newPassword
			return nil
		}
	}
	return errors.NotFound("Identity", nil)
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if stored, ok := f.accounts[email]; !ok || stored != password {
		return "", "", "", fmt.Errorf("sign in failed: INVALID_LOGIN_CREDENTIALS")
	}
	uid := f.uids[email]
	return "token-" + uid, "refresh-" + uid, uid, nil
}

func (f *fakeAuthClient) SendPasswordReset(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, email)
	return nil
}

func (f *fakeAuthClient) IsEmailExists(err error) bool {
	_, ok := err.(emailExistsError)
	return ok
}

// fakeFileService records uploads and can be told to fail specific files.
type fakeFileService struct {
	mu      sync.Mutex
	uploads int
	deleted []string
	failOn  map[int]bool // 1-based upload index -> fail
}

func newFakeFileService() *fakeFileService {
	return &fakeFileService{failOn: make(map[int]bool)}
}

func (f *fakeFileService) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	if f.failOn[f.uploads] {
		return "", errors.Internal("upload failed", nil)
	}
	return fmt.Sprintf("https://storage.example.com/%s/file-%d.jpg", folder, f.uploads), nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func (f *fakeFileService) Close() error { return nil }

type fakeRemediator struct {
	mu     sync.Mutex
	calls  int
	err    error
	onCall func()
}

func (r *fakeRemediator) RequestRepair(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.onCall != nil {
		r.onCall()
	}
	return r.err
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []string
	users  []string
}

func (n *fakeNotifier) NotifyUser(userID, event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, userID)
	n.events = append(n.events, event)
}
