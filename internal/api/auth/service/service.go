package authService

import (
	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/bcrypt"
	"FinanceTracker/pkg/phone"
	"FinanceTracker/pkg/redis"
	"FinanceTracker/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.CreateUserRequest) (entity.User, error)
	GetByID(c context.Context, id string) (entity.User, error)
}

type AuthDomain interface {
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	// Logout revokes the caller's token until it would have expired.
	Logout(c context.Context, user entity.UserLoginData) error
}

type authService struct {
	userDomain UserDomain
	authDomain AuthDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	phoneParser phone.IPhone
	utils       utils.IUtils
}

type authDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	phoneParser phone.IPhone,
	utils utils.IUtils,
) AuthService {
	return &authService{
		userDomain: &userDomainImpl{
			log:         log,
			repo:        authRepo,
			bcryptUtils: bcryptUtils,
			phoneParser: phoneParser,
			utils:       utils,
		},
		authDomain: &authDomainImpl{
			log:         log,
			repo:        authRepo,
			redisServer: redisServer,
			bcryptUtils: bcryptUtils,
			utils:       utils,
		},
	}
}
