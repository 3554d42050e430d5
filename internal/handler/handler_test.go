package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"mangosense/config"
	"mangosense/internal/classifier"
	"mangosense/internal/domain/user"
	"mangosense/internal/services"
	mango_errors "mangosense/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	key := strings.ToLower(u.Email)
	if _, ok := r.users[key]; ok {
		return mango_errors.ErrAlreadyExists
	}
	r.users[key] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, mango_errors.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return user.User{}, mango_errors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[strings.ToLower(email)]
	return ok, nil
}

type fakeSessions struct {
	sessions map[string]uuid.UUID
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]uuid.UUID)}
}

func (s *fakeSessions) Create(_ context.Context, userID uuid.UUID, _ string) (string, error) {
	id := uuid.NewString()
	s.sessions[id] = userID
	return id, nil
}

func (s *fakeSessions) Delete(_ context.Context, sessionID string) error {
	if _, ok := s.sessions[sessionID]; !ok {
		return mango_errors.ErrUnauthorized
	}
	delete(s.sessions, sessionID)
	return nil
}

type fakeClassifier struct {
	probs []float32
	calls int
}

func (c *fakeClassifier) Predict(_ []float32) ([]float32, error) {
	c.calls++
	return c.probs, nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, active, superuser bool) user.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		FirstName:    "Asha",
		LastName:     "Rahman",
		PasswordHash: string(hash),
		IsActive:     active,
		IsSuperuser:  superuser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	repo.users[strings.ToLower(email)] = u
	return u
}

func newAccountRouter(repo *fakeUserRepo, sessions *fakeSessions) *gin.Engine {
	h := NewAccountHandler(services.NewAccountService(repo, sessions))
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	return r
}

func newAdminRouter(repo *fakeUserRepo) *gin.Engine {
	svc := services.NewAdminAuthService(repo, &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiryMin:  15,
		RefreshExpiry: 14,
	})
	h := NewAdminAuthHandler(svc)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	return r
}

func newInferenceRouter(handle *classifier.Handle) *gin.Engine {
	h := NewInferenceHandler(services.NewInferenceService(handle, nil, nil))
	r := gin.New()
	r.POST("/predict", h.Predict)
	r.GET("/test-model", h.ModelStatus)
	return r
}

func postJSON(router *gin.Engine, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 90, G: 160, B: 70, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

// imageForm builds a multipart body with one "image" part carrying an
// explicit part content type, the way the mobile app uploads.
func imageForm(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="leaf.jpg"`)
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func postImage(router *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
