package repository

import (
	"github.com/Tastrnet/mainversion-sub000/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	Session        SessionRepository
	Restaurant     RestaurantRepository
	Cuisine        CuisineRepository
	Review         ReviewRepository
	List           ListRepository
	ListRestaurant ListRestaurantRepository
	ListLike       ListLikeRepository
	Follower       FollowerRepository
	Activity       ActivityRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		Session:        NewSessionRepository(db, log),
		Restaurant:     NewRestaurantRepository(db, log),
		Cuisine:        NewCuisineRepository(db, log),
		Review:         NewReviewRepository(db, log),
		List:           NewListRepository(db, log),
		ListRestaurant: NewListRestaurantRepository(db, log),
		ListLike:       NewListLikeRepository(db, log),
		Follower:       NewFollowerRepository(db, log),
		Activity:       NewActivityRepository(db, log),
	}
}
