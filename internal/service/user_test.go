package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/CreatorKit/api-service/internal/repository"
	"github.com/CreatorKit/api-service/internal/repository/postgres"
	"github.com/CreatorKit/api-service/internal/repository/redisrepo"
	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type userFixture struct {
	svc    *userService
	users  *fakeUserRepo
	mail   *fakeMailer
	events *fakePublisher
	mr     *miniredis.Miniredis
}

func newUserFixture(t *testing.T) *userFixture {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	users := &fakeUserRepo{}
	mail := &fakeMailer{}
	events := &fakePublisher{}

	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{User: users},
		Redis:    redisrepo.NewRedisRepo(rdb),
	}

	return &userFixture{
		svc: &userService{
			logger:     zap.NewNop(),
			repo:       repo,
			mail:       mail,
			events:     events,
			httpClient: &http.Client{Timeout: time.Second},
		},
		users:  users,
		mail:   mail,
		events: events,
		mr:     mr,
	}
}

func TestSendMailOTPStoresDevCode(t *testing.T) {
	viper.Set("app.env", "development")
	f := newUserFixture(t)

	require.NoError(t, f.svc.SendMailOTP(context.Background(), "Ada@Test.dev"))

	stored, err := f.mr.Get("mail-otp:ada@test.dev")
	require.NoError(t, err)
	assert.Equal(t, "1234", stored)
	assert.Empty(t, f.mail.sent)
}

func TestSendMailOTPResendCooldown(t *testing.T) {
	viper.Set("app.env", "development")
	f := newUserFixture(t)

	require.NoError(t, f.svc.SendMailOTP(context.Background(), "ada@test.dev"))

	err := f.svc.SendMailOTP(context.Background(), "ada@test.dev")
	require.ErrorIs(t, err, ErrOTPCooldown)

	f.mr.FastForward(2 * time.Minute)
	require.NoError(t, f.svc.SendMailOTP(context.Background(), "ada@test.dev"))
}

func TestVerifyMailOTPInvalidCode(t *testing.T) {
	viper.Set("app.env", "development")
	f := newUserFixture(t)

	_, err := f.svc.VerifyMailOTP(context.Background(), "ada@test.dev", 1234)
	require.ErrorIs(t, err, ErrInvalidOTP)

	require.NoError(t, f.svc.SendMailOTP(context.Background(), "ada@test.dev"))

	_, err = f.svc.VerifyMailOTP(context.Background(), "ada@test.dev", 9999)
	require.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyMailOTPSignsUpNewUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	viper.Set("app.env", "development")
	f := newUserFixture(t)

	require.NoError(t, f.svc.SendMailOTP(context.Background(), "ada@test.dev"))

	data, err := f.svc.VerifyMailOTP(context.Background(), "ada@test.dev", 1234)
	require.NoError(t, err)
	assert.True(t, data.IsSignUp)
	assert.Equal(t, "ada", data.Name)
	assert.Equal(t, "ada@test.dev", data.EmailID)

	token, err := jwt.Parse(data.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, data.UserID, claims["userId"])

	assert.Len(t, f.events.byName("User Signed In"), 1)

	// codes are single use
	_, err = f.svc.VerifyMailOTP(context.Background(), "ada@test.dev", 1234)
	require.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyMailOTPExistingUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	viper.Set("app.env", "development")
	f := newUserFixture(t)
	f.users.users = []*model.User{{ID: testUserID, Name: "Ada", EmailID: "ada@test.dev"}}

	require.NoError(t, f.svc.SendMailOTP(context.Background(), "ada@test.dev"))

	data, err := f.svc.VerifyMailOTP(context.Background(), "ada@test.dev", 1234)
	require.NoError(t, err)
	assert.False(t, data.IsSignUp)
	assert.Equal(t, testUserID, data.UserID)
}

func TestVerifyGoogleLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	f := newUserFixture(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer google-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"sub":"g-123","name":"Ada Lovelace","picture":"https://pic.test/ada.png","email":"Ada@Test.dev"}`))
	}))
	defer srv.Close()
	viper.Set("google.userinfoURL", srv.URL)

	data, err := f.svc.VerifyGoogleLogin(context.Background(), "google-token")
	require.NoError(t, err)
	assert.True(t, data.IsSignUp)
	assert.Equal(t, "ada@test.dev", data.EmailID)
	assert.Equal(t, "Ada Lovelace", data.Name)
	assert.Equal(t, "https://pic.test/ada.png", data.ProfilePic)

	require.Len(t, f.users.users, 1)
	require.NotNil(t, f.users.users[0].GoogleID)
	assert.Equal(t, "g-123", *f.users.users[0].GoogleID)
}

func TestVerifyGoogleLoginRejected(t *testing.T) {
	f := newUserFixture(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	viper.Set("google.userinfoURL", srv.URL)

	_, err := f.svc.VerifyGoogleLogin(context.Background(), "bad-token")
	require.ErrorIs(t, err, ErrGoogleAuthFailed)
	assert.Empty(t, f.users.users)
}

func TestProfileCachesUser(t *testing.T) {
	f := newUserFixture(t)
	f.users.users = []*model.User{{ID: testUserID, Name: "Ada", EmailID: "ada@test.dev"}}

	data, err := f.svc.Profile(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", data.Name)
	assert.True(t, f.mr.Exists("user:"+testUserID))

	// subsequent reads come from the cache
	f.users.users[0].Name = "Renamed"
	data, err = f.svc.Profile(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", data.Name)
}

func TestProfileUnknownUser(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Profile(context.Background(), testUserID)
	require.ErrorIs(t, err, ErrUserNotFound)
}
