package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"user-account-api/internal/application/ports"
	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/mq"
	"user-account-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, spec domain.IdSpecification) (*domain.User, error) {
	u, err := us.userRepository.ReadByID(ctx, spec)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByUsername(ctx context.Context, spec domain.UsernameSpecification) (*domain.User, error) {
	u, err := us.userRepository.ReadByUsername(ctx, spec)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, spec domain.EmailSpecification) (*domain.User, error) {
	u, err := us.userRepository.ReadByEmail(ctx, spec)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) RegisterUser(ctx context.Context, req domain.UserCreate) (*domain.User, error) {
	uRet, err := us.userRepository.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionUserCreated,
			UserID:  uint64(uRet.ID),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}
