package mesto

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*User
}

func NewUserRepository() UserRepository {
	return &userRepository{users: map[primitive.ObjectID]*User{}}
}

func (repo *userRepository) Store(u *User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, v := range repo.users {
		if v.Email == u.Email {
			return ErrEmailTaken
		}
	}

	cp := *u
	repo.users[u.ID] = &cp
	return nil
}

func (repo *userRepository) FindByID(id primitive.ObjectID) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if u, ok := repo.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, ErrUserNotFound
}

func (repo *userRepository) FindByEmail(email string) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, v := range repo.users {
		if v.Email == email {
			cp := *v
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (repo *userRepository) FindByIDs(ids []primitive.ObjectID) ([]User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	users := []User{}
	for _, id := range ids {
		if u, ok := repo.users[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (repo *userRepository) FindAll() ([]User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	users := []User{}
	for _, v := range repo.users {
		users = append(users, *v)
	}
	return users, nil
}

func (repo *userRepository) UpdateProfile(id primitive.ObjectID, name, about string) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	u, ok := repo.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	u.Name = name
	u.About = about
	cp := *u
	return &cp, nil
}

func (repo *userRepository) UpdateAvatar(id primitive.ObjectID, avatar string) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	u, ok := repo.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	u.Avatar = avatar
	cp := *u
	return &cp, nil
}

type cardRepository struct {
	mu    sync.Mutex
	cards map[primitive.ObjectID]*Card
}

func NewCardRepository() CardRepository {
	return &cardRepository{cards: map[primitive.ObjectID]*Card{}}
}

func (repo *cardRepository) Store(c *Card) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	cp := *c
	cp.Likes = append([]primitive.ObjectID{}, c.Likes...)
	repo.cards[c.ID] = &cp
	return nil
}

func (repo *cardRepository) FindByID(id primitive.ObjectID) (*Card, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	c, ok := repo.cards[id]
	if !ok {
		return nil, ErrCardNotFound
	}
	return copyCard(c), nil
}

func (repo *cardRepository) FindAll() ([]Card, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	cards := []Card{}
	for _, c := range repo.cards {
		cards = append(cards, *copyCard(c))
	}
	return cards, nil
}

func (repo *cardRepository) Delete(id primitive.ObjectID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.cards[id]; !ok {
		return ErrCardNotFound
	}
	delete(repo.cards, id)
	return nil
}

func (repo *cardRepository) AddLike(cardID, userID primitive.ObjectID) (*Card, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	c, ok := repo.cards[cardID]
	if !ok {
		return nil, ErrCardNotFound
	}

	for _, id := range c.Likes {
		if id == userID {
			return copyCard(c), nil
		}
	}
	c.Likes = append(c.Likes, userID)
	return copyCard(c), nil
}

func (repo *cardRepository) RemoveLike(cardID, userID primitive.ObjectID) (*Card, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	c, ok := repo.cards[cardID]
	if !ok {
		return nil, ErrCardNotFound
	}

	for i, id := range c.Likes {
		if id == userID {
			c.Likes = append(c.Likes[:i], c.Likes[i+1:]...)
			break
		}
	}
	return copyCard(c), nil
}

func copyCard(c *Card) *Card {
	cp := *c
	cp.Likes = append([]primitive.ObjectID{}, c.Likes...)
	return &cp
}
