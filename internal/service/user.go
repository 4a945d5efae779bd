package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/CreatorKit/api-service/internal/analytics"
	"github.com/CreatorKit/api-service/internal/mailer"
	"github.com/CreatorKit/api-service/internal/model"
	"github.com/CreatorKit/api-service/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultProfilePic = "https://fastly.picsum.photos/id/1/5000/3333.jpg?hmac=Asv2DU3rA_5D1xSe22xZK47WEAN0wjWeFOhzd13ujW4"

	otpTTL            = time.Minute * 15
	otpResendCooldown = time.Minute
	devOTP            = 1234
)

type userService struct {
	logger     *zap.Logger
	repo       *repository.Repository
	mail       mailer.Sender
	events     analytics.Publisher
	httpClient *http.Client
}

func newUserService(logger *zap.Logger, repo *repository.Repository, mail mailer.Sender, events analytics.Publisher) User {
	return &userService{
		logger:     logger,
		repo:       repo,
		mail:       mail,
		events:     events,
		httpClient: &http.Client{Timeout: time.Second * 10},
	}
}

func (s *userService) SendMailOTP(ctx context.Context, emailID string) error {
	emailID = strings.ToLower(strings.TrimSpace(emailID))

	// a live code younger than the cooldown means a resend burst
	if ttl := s.repo.Redis.Default.TTL(ctx, MailOtpPrefix(emailID)); ttl > otpTTL-otpResendCooldown {
		return ErrOTPCooldown
	}

	otp := rand.Intn(900000) + 100000
	// fixed code outside production so local logins need no mailbox
	if viper.GetString("app.env") != "production" {
		otp = devOTP
	}

	if err := s.repo.Redis.Otp.Create(ctx, MailOtpPrefix(emailID), otp, otpTTL); err != nil {
		s.logger.Sugar().Errorf("failed to store otp for %s: %s", emailID, err.Error())
		return errInternal
	}

	if otp != devOTP {
		if err := s.mail.SendOTP(emailID, otp); err != nil {
			s.logger.Sugar().Errorf("failed to send otp mail to %s: %s", emailID, err.Error())
			return errInternal
		}
	}

	return nil
}

func (s *userService) VerifyMailOTP(ctx context.Context, emailID string, otp int) (*UserData, error) {
	emailID = strings.ToLower(strings.TrimSpace(emailID))

	stored, err := s.repo.Redis.Otp.Find(ctx, MailOtpPrefix(emailID))
	if err == redis.Nil {
		return nil, ErrInvalidOTP
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to get otp for %s from redis: %s", emailID, err.Error())
		return nil, errInternal
	}

	if stored != otp {
		return nil, ErrInvalidOTP
	}

	// single use
	if err := s.repo.Redis.Otp.Delete(ctx, MailOtpPrefix(emailID)); err != nil {
		s.logger.Sugar().Errorf("failed to delete otp for %s: %s", emailID, err.Error())
		return nil, errInternal
	}

	name := emailID
	if i := strings.Index(emailID, "@"); i > 0 {
		name = emailID[:i]
	}

	return s.checkAndCreateNewUser(ctx, newUserParams{EmailID: emailID, Name: name})
}

type googleUserInfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Email   string `json:"email"`
}

func (s *userService) VerifyGoogleLogin(ctx context.Context, accessToken string) (*UserData, error) {
	info, err := s.fetchGoogleUserInfo(ctx, accessToken)
	if err != nil {
		s.logger.Sugar().Warnf("failed to verify google login: %s", err.Error())
		return nil, ErrGoogleAuthFailed
	}

	return s.checkAndCreateNewUser(ctx, newUserParams{
		EmailID:    strings.ToLower(info.Email),
		Name:       info.Name,
		GoogleID:   info.Sub,
		ProfilePic: info.Picture,
	})
}

func (s *userService) fetchGoogleUserInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, viper.GetString("google.userinfoURL"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo responded with status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode google userinfo: %w", err)
	}

	if info.Email == "" {
		return nil, fmt.Errorf("google userinfo has no email")
	}

	return &info, nil
}

func (s *userService) Profile(ctx context.Context, userID string) (*ProfileData, error) {
	user, err := s.repo.Redis.User.Find(ctx, UserPrefix(userID))
	if err == redis.Nil {
		userDB, err := s.repo.Postgres.User.FindByID(ctx, userID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to find user(%s) in postgres: %s", userID, err.Error())
			return nil, errInternal
		}
		if userDB == nil {
			return nil, ErrUserNotFound
		}

		userJSON, err := json.Marshal(userDB)
		if err != nil {
			return nil, errInternal
		}

		if err := s.repo.Redis.User.Create(ctx, UserPrefix(userID), userJSON, time.Hour*12); err != nil {
			s.logger.Sugar().Errorf("failed to cache user(%s) in redis: %s", userID, err.Error())
			return nil, errInternal
		}

		user = userDB
	} else if err != nil {
		s.logger.Sugar().Errorf("failed to get user(%s) from redis: %s", userID, err.Error())
		return nil, errInternal
	}

	return &ProfileData{
		Name:                user.Name,
		Handle:              user.Handle,
		EmailID:             user.EmailID,
		IsVerified:          user.IsVerified,
		ProfilePic:          user.ProfilePic,
		OnboardingCompleted: user.OnboardingCompleted,
		CreatedAt:           user.CreatedAt,
	}, nil
}

type newUserParams struct {
	EmailID    string
	Name       string
	GoogleID   string
	ProfilePic string
}

func (s *userService) checkAndCreateNewUser(ctx context.Context, params newUserParams) (*UserData, error) {
	user, err := s.repo.Postgres.User.FindByEmail(ctx, params.EmailID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user by email in postgres: %s", err.Error())
		return nil, errInternal
	}

	isSignUp := false

	if user == nil {
		now := time.Now()
		profilePic := params.ProfilePic
		if profilePic == "" {
			profilePic = defaultProfilePic
		}

		user = &model.User{
			ID:         uuid.NewString(),
			Name:       params.Name,
			EmailID:    params.EmailID,
			IsVerified: true,
			ProfilePic: profilePic,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if params.GoogleID != "" {
			googleID := params.GoogleID
			user.GoogleID = &googleID
		}

		if err := s.repo.Postgres.User.Create(ctx, user); err != nil {
			s.logger.Sugar().Errorf("failed to create user in postgres: %s", err.Error())
			return nil, errInternal
		}
		isSignUp = true
	} else if params.GoogleID != "" {
		profilePic := params.ProfilePic
		if profilePic == "" {
			profilePic = user.ProfilePic
		}

		if err := s.repo.Redis.User.Delete(ctx, UserPrefix(user.ID)); err != nil {
			s.logger.Sugar().Errorf("failed to invalidate user(%s) cache: %s", user.ID, err.Error())
			return nil, errInternal
		}

		if err := s.repo.Postgres.User.UpdateGoogleInfo(ctx, user.ID, params.Name, profilePic, params.GoogleID); err != nil {
			s.logger.Sugar().Errorf("failed to update user(%s) google info: %s", user.ID, err.Error())
			return nil, errInternal
		}

		user.Name = params.Name
		user.ProfilePic = profilePic
	}

	token, err := issueToken(user.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to issue token for user(%s): %s", user.ID, err.Error())
		return nil, errInternal
	}

	mode := "emailotp"
	if params.GoogleID != "" {
		mode = "gmail"
	}
	s.events.Publish(model.AnalyticsEvent{
		UserID:    user.ID,
		EventName: "User Signed In",
		Properties: map[string]interface{}{
			"emailId": user.EmailID,
			"name":    user.Name,
			"mode":    mode,
		},
	})

	return &UserData{
		Name:       user.Name,
		IsSignUp:   isSignUp,
		UserID:     user.ID,
		EmailID:    user.EmailID,
		ProfilePic: user.ProfilePic,
		Token:      token,
	}, nil
}

func issueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"time":   time.Now().UnixMilli(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
