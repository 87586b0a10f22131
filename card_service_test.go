package mesto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CardServiceTestSuite struct {
	suite.Suite
	cards  CardRepository
	svc    CardService
	owner  Profile
	liker  Profile
	userSv UserService
}

func (s *CardServiceTestSuite) SetupTest() {
	users := NewUserRepository()
	s.cards = NewCardRepository()
	s.userSv = NewUserService(users, testTokenIssuer())
	s.svc = NewCardService(s.cards, users)

	var err error
	s.owner, err = s.userSv.Register(signupRequest{Email: "owner@b.com", Password: "secret1"})
	assert.Nil(s.T(), err)
	s.liker, err = s.userSv.Register(signupRequest{Email: "liker@b.com", Password: "secret1"})
	assert.Nil(s.T(), err)
}

func (s *CardServiceTestSuite) createCard() CardView {
	card, err := s.svc.Create(s.owner.ID, createCardRequest{Name: "Cat", Link: "https://x.com/cat.jpg"})
	assert.Nil(s.T(), err)
	return card
}

func (s *CardServiceTestSuite) TestCreate() {
	card := s.createCard()

	assert.NotEmpty(s.T(), card.ID)
	assert.Equal(s.T(), "Cat", card.Name)
	assert.Equal(s.T(), "https://x.com/cat.jpg", card.Link)
	assert.Equal(s.T(), s.owner, card.Owner)
	assert.Empty(s.T(), card.Likes)
	assert.False(s.T(), card.CreatedAt.IsZero())
}

func (s *CardServiceTestSuite) TestCreate_InvalidInput() {
	tests := []struct {
		name string
		req  createCardRequest
	}{
		{"missing name", createCardRequest{Link: "https://x.com/cat.jpg"}},
		{"missing link", createCardRequest{Name: "Cat"}},
		{"bad link", createCardRequest{Name: "Cat", Link: "not-a-url"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Create(s.owner.ID, tt.req)
			assert.Equal(s.T(), KindValidation, KindOf(err))
		})
	}
}

func (s *CardServiceTestSuite) TestLike_IsIdempotent() {
	card := s.createCard()

	liked, err := s.svc.Like(s.liker.ID, card.ID)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []Profile{s.liker}, liked.Likes)

	likedAgain, err := s.svc.Like(s.liker.ID, card.ID)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []Profile{s.liker}, likedAgain.Likes)
}

func (s *CardServiceTestSuite) TestUnlike_IsIdempotent() {
	card := s.createCard()

	_, err := s.svc.Like(s.liker.ID, card.ID)
	assert.Nil(s.T(), err)

	unliked, err := s.svc.Unlike(s.liker.ID, card.ID)
	assert.Nil(s.T(), err)
	assert.Empty(s.T(), unliked.Likes)

	// removing an absent like is not an error
	unlikedAgain, err := s.svc.Unlike(s.liker.ID, card.ID)
	assert.Nil(s.T(), err)
	assert.Empty(s.T(), unlikedAgain.Likes)
}

func (s *CardServiceTestSuite) TestLike_AnyAuthenticatedUserMayLike() {
	card := s.createCard()

	liked, err := s.svc.Like(s.owner.ID, card.ID)
	assert.Nil(s.T(), err)

	liked, err = s.svc.Like(s.liker.ID, card.ID)
	assert.Nil(s.T(), err)
	assert.Len(s.T(), liked.Likes, 2)
}

func (s *CardServiceTestSuite) TestLikeUnlike_MissingCard() {
	_, err := s.svc.Like(s.liker.ID, "507f1f77bcf86cd799439011")
	assert.Equal(s.T(), ErrCardNotFound, err)

	_, err = s.svc.Unlike(s.liker.ID, "507f1f77bcf86cd799439011")
	assert.Equal(s.T(), ErrCardNotFound, err)
}

func (s *CardServiceTestSuite) TestLikeUnlike_MalformedID() {
	_, err := s.svc.Like(s.liker.ID, "not-an-id")
	assert.Equal(s.T(), ErrInvalidCardID, err)

	_, err = s.svc.Unlike(s.liker.ID, "not-an-id")
	assert.Equal(s.T(), ErrInvalidCardID, err)
}

func (s *CardServiceTestSuite) TestDelete_OnlyOwnerMayDelete() {
	card := s.createCard()

	err := s.svc.Delete(s.liker.ID, card.ID)
	assert.Equal(s.T(), ErrCardForbidden, err)

	// the card survives the forbidden attempt
	views, err := s.svc.List()
	assert.Nil(s.T(), err)
	assert.Len(s.T(), views, 1)

	err = s.svc.Delete(s.owner.ID, card.ID)
	assert.Nil(s.T(), err)

	views, err = s.svc.List()
	assert.Nil(s.T(), err)
	assert.Empty(s.T(), views)
}

func (s *CardServiceTestSuite) TestDelete_MissingBeforeForbidden() {
	err := s.svc.Delete(s.liker.ID, "507f1f77bcf86cd799439011")
	assert.Equal(s.T(), ErrCardNotFound, err)

	err = s.svc.Delete(s.liker.ID, "not-an-id")
	assert.Equal(s.T(), ErrInvalidCardID, err)
}

func (s *CardServiceTestSuite) TestList_ResolvesOwnersAndLikes() {
	card := s.createCard()

	_, err := s.svc.Like(s.liker.ID, card.ID)
	assert.Nil(s.T(), err)

	views, err := s.svc.List()
	assert.Nil(s.T(), err)
	assert.Len(s.T(), views, 1)
	assert.Equal(s.T(), s.owner, views[0].Owner)
	assert.Equal(s.T(), []Profile{s.liker}, views[0].Likes)
}

func TestCardServiceSuite(t *testing.T) {
	suite.Run(t, new(CardServiceTestSuite))
}
